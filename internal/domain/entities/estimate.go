package entities

// ContractType classifies the engagement recorded in an individual contract.
//
// Domain notes:
//   - FIXED (請負) obligates completion of a deliverable and is subject to
//     inspection and acceptance.
//   - QUASI (準委任) obligates diligent effort over a period, billed by time.
//   - HYBRID mixes both within a single engagement.
type ContractType string

const (
	ContractTypeFixed  ContractType = "FIXED"
	ContractTypeQuasi  ContractType = "QUASI"
	ContractTypeHybrid ContractType = "HYBRID"
)

// IPPattern selects how intellectual property in the deliverables is handled.
// Pattern A transfers all rights to the client; pattern B retains them with
// the provider and grants the client an unrestricted usage license.
type IPPattern string

const (
	IPPatternTransfer IPPattern = "A"
	IPPatternLicense  IPPattern = "B"
)

// PaymentType selects between a single post-acceptance invoice and a 50/50
// kickoff/completion milestone split.
type PaymentType string

const (
	PaymentTypeSingle    PaymentType = "SINGLE"
	PaymentTypeMilestone PaymentType = "MILESTONE"
)

// QuasiPatternKey identifies one of the four time-and-materials pricing
// templates carried on every record. Exactly one is selected at a time; the
// other three stay stored and editable but are never applied.
type QuasiPatternKey string

const (
	QuasiPatternA QuasiPatternKey = "A"
	QuasiPatternB QuasiPatternKey = "B"
	QuasiPatternC QuasiPatternKey = "C"
	QuasiPatternD QuasiPatternKey = "D"
)

// RightsHandling assigns responsibility for image-rights clearance when the
// engagement includes photography.
type RightsHandling string

const (
	RightsHandlingClient   RightsHandling = "CLIENT"
	RightsHandlingProvider RightsHandling = "PROVIDER"
)

// SubCategory values recognized when routing line items into the
// individual-contract fee tables. Anything else is free text.
const (
	SubCategoryFixed = "請負型業務"
	SubCategoryQuasi = "準委任型業務"
)

// LineItem is a single billable row of an estimate.
//
// UnitPrice is tax-exclusive yen. Quantity is decimal (person-days may be
// fractional). Unit is a free-text label such as 式 or 人日.
type LineItem struct {
	ID          string  `json:"id"`
	Category    string  `json:"category"`
	SubCategory string  `json:"subCategory"`
	Name        string  `json:"name"`
	Details     string  `json:"details"`
	UnitPrice   int64   `json:"unitPrice"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
}

// Amount is the tax-exclusive row total in yen.
func (i LineItem) Amount() int64 {
	return int64(float64(i.UnitPrice) * i.Quantity)
}

// ClientInfo is the commissioning party printed on every document.
type ClientInfo struct {
	CompanyName    string `json:"companyName"`
	Address        string `json:"address"`
	Representative string `json:"representative"`
	ProjectName    string `json:"projectName"`
}

// ProviderInfo is the contracted party. Defaults are seeded from a constant
// and remembered across sessions through the provider store.
type ProviderInfo struct {
	CompanyName    string `json:"companyName"`
	ZipCode        string `json:"zipCode"`
	Address        string `json:"address"`
	Building       string `json:"building"`
	Representative string `json:"representative"`
	Tel            string `json:"tel"`
	PersonInCharge string `json:"personInCharge"`
}

// QuasiPattern is one time-and-materials pricing template. All fields are
// display text, not computed values.
type QuasiPattern struct {
	Name      string `json:"name"`
	Price     string `json:"price"`
	Condition string `json:"condition"`
	Overtime  string `json:"overtime"`
}

// QuasiPatterns carries all four templates plus the active selection.
type QuasiPatterns struct {
	Selected QuasiPatternKey `json:"selected"`
	A        QuasiPattern    `json:"A"`
	B        QuasiPattern    `json:"B"`
	C        QuasiPattern    `json:"C"`
	D        QuasiPattern    `json:"D"`
}

// Get returns the template stored under key. Unknown keys fall back to A.
func (q QuasiPatterns) Get(key QuasiPatternKey) QuasiPattern {
	switch key {
	case QuasiPatternB:
		return q.B
	case QuasiPatternC:
		return q.C
	case QuasiPatternD:
		return q.D
	default:
		return q.A
	}
}

// Revisions bounds the correction work included in the fee.
type Revisions struct {
	Design int    `json:"design"`
	Coding int    `json:"coding"`
	Others string `json:"others"`
}

// Deliverables defines the scope of what is handed over on completion.
// SourceData drives a mutually exclusive checkbox pair in the individual
// contract: exactly one of 納品する / 納品しない is checked.
type Deliverables struct {
	Final        string `json:"final"`
	Intermediate string `json:"intermediate"`
	SourceData   bool   `json:"sourceData"`
	SourceFormat string `json:"sourceFormat"`
}

// PhotoDetails records the shooting conditions when HasPhotography is set.
// All values are free text supplied by the operator, never computed.
type PhotoDetails struct {
	Days           string         `json:"days"`
	Hours          string         `json:"hours"`
	Cuts           string         `json:"cuts"`
	ModelInfo      string         `json:"modelInfo"`
	RightsHandling RightsHandling `json:"rightsHandling"`
}

// Estimate is the root record describing one engagement. The same record
// feeds three documents: the master service agreement, the individual order
// contract and the quotation.
//
// Totals are never stored while editing; they are recomputed on every read
// and snapshotted only at save time.
type Estimate struct {
	ID             string        `json:"id"`
	EstimateNumber string        `json:"estimateNumber"`
	CreatedAt      string        `json:"createdAt"`
	DocumentDate   string        `json:"documentDate"`
	Client         ClientInfo    `json:"client"`
	Provider       ProviderInfo  `json:"provider"`
	Items          []LineItem    `json:"items"`
	Discount       int64         `json:"discount"`
	TaxRate        float64       `json:"taxRate"`
	ContractDate   string        `json:"contractDate"`
	WorkStartDate  string        `json:"workStartDate"`
	WorkEndDate    string        `json:"workEndDate"`
	DeliveryDate   string        `json:"deliveryDate"`
	ContractType   ContractType  `json:"contractType"`
	IPPattern      IPPattern     `json:"ipPattern"`
	Validity       string        `json:"estimateValidity"`
	PaymentType    PaymentType   `json:"paymentType"`
	Revisions      Revisions     `json:"revisions"`
	QuasiPatterns  QuasiPatterns `json:"quasiPatterns"`
	Deliverables   Deliverables  `json:"deliverables"`
	HasPhotography bool          `json:"hasPhotography"`
	PhotoDetails   PhotoDetails  `json:"photoDetails"`
	HasNotes       bool          `json:"hasNotes"`
	Notes          string        `json:"notes"`
}

// Normalized fills fields that older ledger rows may lack. Records saved
// before the tax rate became editable carry a zero rate.
func (e Estimate) Normalized() Estimate {
	if e.TaxRate == 0 {
		e.TaxRate = DefaultTaxRate
	}
	return e
}
