package documents

import (
	"strconv"

	"fren_docs/internal/domain/entities"
	"fren_docs/internal/domain/totals"
)

const quotationTitle = "御 見 積 書"

// Quotation renders the customer-facing estimate: a summary page with the
// tax-inclusive banner, per-category overview and derived special notes,
// then a detail page listing every line item grouped by category.
func Quotation(e entities.Estimate) []Page {
	t := totals.Compute(e.Items, e.Discount, e.TaxRate)
	groups := totals.GroupByCategory(e.Items)

	pages := [][]Block{
		quotationSummary(e, t, groups),
		quotationDetail(groups),
	}

	out := make([]Page, 0, len(pages))
	for i, blocks := range pages {
		out = append(out, Page{
			Number: i + 1,
			Header: quotationTitle,
			Blocks: blocks,
			Footer: pageFooter(i + 1),
		})
	}
	return out
}

func quotationSummary(e entities.Estimate, t totals.Totals, groups []totals.CategoryGroup) []Block {
	client := e.Client.CompanyName
	if client == "" {
		client = "（企業名未入力）"
	}

	head := []KeyValue{
		{Key: "宛先", Value: client + " 御中"},
		{Key: "案件名", Value: e.Client.ProjectName},
		{Key: "見積番号", Value: e.EstimateNumber},
		{Key: "御見積日", Value: FormatDate(e.DocumentDate)},
		{Key: "有効期限", Value: e.Validity},
		{Key: "発行者", Value: e.Provider.CompanyName},
		{Key: "発行者住所", Value: "〒" + e.Provider.ZipCode + " " + e.Provider.Address},
	}
	if e.Provider.Building != "" {
		head = append(head, KeyValue{Key: "発行者住所2", Value: e.Provider.Building})
	}
	head = append(head,
		KeyValue{Key: "TEL", Value: e.Provider.Tel},
		KeyValue{Key: "担当", Value: e.Provider.PersonInCharge},
	)

	blocks := []Block{
		title(quotationTitle),
		{Kind: BlockKeyValue, Fields: head},
		{Kind: BlockBanner, Text: "御見積合計金額（税込）　" + FormatYen(t.TaxInclusive) + " -"},
		heading("■ 御見積概要"),
		summaryTable(e, t, groups),
		heading("【特記事項】"),
		list(specialNotes(e)...),
	}
	return blocks
}

func summaryTable(e entities.Estimate, t totals.Totals, groups []totals.CategoryGroup) Block {
	rows := make([][]string, 0, len(groups)+3)
	for _, g := range groups {
		rows = append(rows, []string{
			g.Category,
			strconv.Itoa(len(g.Items)) + " 項目",
			"1式",
			FormatYen(g.Subtotal),
		})
	}
	rows = append(rows, []string{"", "", "小計（税別）", FormatYen(t.Subtotal)})
	if e.Discount > 0 {
		rows = append(rows, []string{"", "", "出精お値引き", "- " + FormatYen(e.Discount)})
	}
	total := len(rows)
	rows = append(rows, []string{"", "", "合計（税込）", FormatYen(t.TaxInclusive)})

	return Block{Kind: BlockTable, Table: &Table{
		Header:       []string{"大項目", "内訳", "数量", "金額（税別）"},
		Rows:         rows,
		EmphasisCol:  -1,
		EmphasisRows: []int{total},
	}}
}

// specialNotes derives the notes list from the record's selectors on every
// render. Notes are never stored; the quotation cannot drift from the
// contract because both read the same selectors.
func specialNotes(e entities.Estimate) []string {
	var business string
	switch e.ContractType {
	case entities.ContractTypeFixed:
		business = "本件は「請負型業務」となります。"
	case entities.ContractTypeQuasi:
		business = "本件は「準委任型業務」となります。"
	default:
		business = "本件は「請負型業務」と「準委任型業務」を組み合わせたハイブリッド形式となります。"
	}

	deliverable := "デザイン元データの納品は含まず、最終成果物のみの納品となります。"
	if e.Deliverables.SourceData {
		deliverable = "デザイン元データの納品を含みます。"
	}

	payment := "検収完了月の翌月末一括払いにてお願い申し上げます。"
	if e.PaymentType == entities.PaymentTypeMilestone {
		payment = "着手時50% / 完了時50%の分割払いにてお願い申し上げます。"
	}

	notes := []string{
		"業務区分：" + business,
		"成果物：" + deliverable,
		"支払条件：" + payment,
	}
	if e.HasNotes && e.Notes != "" {
		notes = append(notes, "その他："+e.Notes)
	}
	return notes
}

func quotationDetail(groups []totals.CategoryGroup) []Block {
	blocks := []Block{heading("詳細御見積明細書")}
	for i, g := range groups {
		blocks = append(blocks, heading(strconv.Itoa(i+1)+". "+g.Category))

		rows := make([][]string, 0, len(g.Items)+1)
		for _, item := range g.Items {
			name := item.Name
			if item.SubCategory != "" {
				name += "（" + item.SubCategory + "）"
			}
			rows = append(rows, []string{
				name,
				item.Details,
				FormatYen(item.UnitPrice),
				FormatQuantity(item.Quantity) + item.Unit,
				FormatYen(item.Amount()),
			})
		}
		rows = append(rows, []string{"", "", "", g.Category + " 小計", FormatYen(g.Subtotal)})

		blocks = append(blocks, Block{Kind: BlockTable, Table: &Table{
			Header:       []string{"項目", "仕様詳細", "単価", "数量", "金額"},
			Rows:         rows,
			EmphasisCol:  -1,
			EmphasisRows: []int{len(rows) - 1},
		}})
	}
	return blocks
}
