// Package documents projects an estimate record into the three paginated
// documents: the master service agreement, the individual order contract and
// the quotation.
//
// Every projector is a pure function from record to pages. Nothing is cached
// between renders and no projector mutates its input; the three documents
// always agree because they read the same record and the same derived totals.
package documents

// BlockKind discriminates the content blocks a page is assembled from. The
// rendering surface decides typography; the projector only decides structure.
type BlockKind string

const (
	BlockTitle     BlockKind = "title"
	BlockHeading   BlockKind = "heading"
	BlockParagraph BlockKind = "paragraph"
	BlockList      BlockKind = "list"
	BlockTable     BlockKind = "table"
	BlockChecks    BlockKind = "checks"
	BlockBanner    BlockKind = "banner"
	BlockKeyValue  BlockKind = "keyValue"
	BlockSignature BlockKind = "signature"
)

// Checkbox is a single printed checkbox with its label.
type Checkbox struct {
	Label   string `json:"label"`
	Checked bool   `json:"checked"`
}

// Table is a bordered grid. EmphasisCol marks the column highlighted for the
// active selection (-1 when none); EmphasisRows marks highlighted rows.
type Table struct {
	Header       []string   `json:"header,omitempty"`
	Rows         [][]string `json:"rows"`
	EmphasisCol  int        `json:"emphasisCol"`
	EmphasisRows []int      `json:"emphasisRows,omitempty"`
}

// KeyValue is one labelled line, used for signature slots and header fields.
type KeyValue struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Block is one content unit on a page. Exactly the fields implied by Kind are
// populated; the rest stay zero.
type Block struct {
	Kind     BlockKind  `json:"kind"`
	Text     string     `json:"text,omitempty"`
	Items    []string   `json:"items,omitempty"`
	Table    *Table     `json:"table,omitempty"`
	Checks   []Checkbox `json:"checks,omitempty"`
	Fields   []KeyValue `json:"fields,omitempty"`
	Emphasis bool       `json:"emphasis,omitempty"`
}

// Page is one fixed-size printed page. Numbers are sequential from 1 within a
// document; Footer carries the printed page marker.
type Page struct {
	Number int     `json:"number"`
	Header string  `json:"header,omitempty"`
	Blocks []Block `json:"blocks"`
	Footer string  `json:"footer"`
}

func title(text string) Block     { return Block{Kind: BlockTitle, Text: text} }
func heading(text string) Block   { return Block{Kind: BlockHeading, Text: text} }
func paragraph(text string) Block { return Block{Kind: BlockParagraph, Text: text} }
func list(items ...string) Block  { return Block{Kind: BlockList, Items: items} }
func checks(boxes ...Checkbox) Block {
	return Block{Kind: BlockChecks, Checks: boxes}
}
