package documents

import (
	"fmt"

	"fren_docs/internal/domain/entities"
	"fren_docs/internal/domain/totals"
)

const individualTitle = "個別契約書（発注書）"

// IndividualContract renders the per-order contract as five pages. Unlike the
// master agreement most of its content is record-driven: the contract type
// checkboxes, deliverable scope, quasi pattern grid, fee breakdown, payment
// schedule and photography terms all follow the record.
func IndividualContract(e entities.Estimate) []Page {
	t := totals.Compute(e.Items, e.Discount, e.TaxRate)
	split := totals.SplitByContractKind(e.Items)

	pages := [][]Block{
		individualPage1(e),
		individualPage2(e),
		individualPage3(e, t, split),
		individualPage4(e),
		individualPage5(e),
	}

	out := make([]Page, 0, len(pages))
	for i, blocks := range pages {
		out = append(out, Page{
			Number: i + 1,
			Header: individualTitle,
			Blocks: blocks,
			Footer: pageFooter(i + 1),
		})
	}
	return out
}

func individualPage1(e entities.Estimate) []Block {
	client := e.Client.CompanyName
	if client == "" {
		client = "（未入力）"
	}

	blocks := []Block{
		title(individualTitle),
		paragraph("委託者 " + client + "（以下「委託者」という。）と、受託者 " + e.Provider.CompanyName + "（以下「受託者」という。）は、両者間で締結された業務委託基本契約書（以下「基本契約」という。）に基づき、以下の通り個別契約（以下「本契約」という。）を締結する。"),
		{Kind: BlockKeyValue, Fields: []KeyValue{
			{Key: "案件名", Value: e.Client.ProjectName},
			{Key: "発注番号", Value: e.EstimateNumber},
			{Key: "発注日", Value: FormatDate(e.ContractDate)},
		}},
		heading("第1条 （業務の区分）"),
		paragraph("本契約における委託業務の性質は、以下の通りとする。"),
		checks(
			Checkbox{Label: "請負型業務", Checked: e.ContractType == entities.ContractTypeFixed},
			Checkbox{Label: "準委任型業務", Checked: e.ContractType == entities.ContractTypeQuasi},
			Checkbox{Label: "混合（ハイブリッド型）", Checked: e.ContractType == entities.ContractTypeHybrid},
		),
		heading("第2条 （業務内容・仕様）"),
		paragraph("受託者は、委託者の指示に基づき、以下の業務を遂行する。"),
	}

	if len(e.Items) > 0 {
		lines := make([]string, 0, len(e.Items))
		for i, item := range e.Items {
			lines = append(lines, fmt.Sprintf("%d. %s（%s）", i+1, item.Name, item.Details))
		}
		blocks = append(blocks, list(lines...))
	} else {
		blocks = append(blocks, paragraph("（明細項目が未入力です）"))
	}
	blocks = append(blocks,
		paragraph("※詳細な仕様は、別途合意した見積書（番号:"+e.EstimateNumber+"）または仕様書による。"),
		heading("第3条 （成果物の範囲）"),
		paragraph("本業務における納品対象となる成果物の範囲は以下の通りとする。"),
		deliverablesTable(e.Deliverables),
		heading("第4条 （修正回数・修正範囲）"),
		paragraph("委託料に含まれる修正対応の範囲は以下の通りとする。これを超える修正、または仕様確定後の大幅な変更については、第5条または第7条に基づき追加費用を請求する場合がある。"),
		list(
			fmt.Sprintf("デザイン修正： 初回提案後、%d ラウンドまで", e.Revisions.Design),
			fmt.Sprintf("コーディング修正： 実装・検証完了後の軽微な修正 %d 回まで", e.Revisions.Coding),
			"その他： "+e.Revisions.Others,
		),
	)
	return blocks
}

// deliverablesTable prints the scope rows plus the one-hot source data pair.
// Exactly one of the two source data checkboxes is ever marked.
func deliverablesTable(d entities.Deliverables) Block {
	return Block{Kind: BlockTable, Table: &Table{
		Header: []string{"区分", "内容・形式・納品可否"},
		Rows: [][]string{
			{"最終成果物（納品義務あり）", d.Final},
			{"中間成果物（確認用資料）", d.Intermediate},
			{"デザイン元データ（編集可能データ）",
				checkMark(d.SourceData) + " 納品する（形式：" + d.SourceFormat + "）　" +
					checkMark(!d.SourceData) + " 納品しない"},
		},
		EmphasisCol: -1,
	}}
}

func individualPage2(e entities.Estimate) []Block {
	return []Block{
		heading("第5条 （準委任型業務の稼働条件）"),
		paragraph("準委任型業務（ディレクション、PM等）の委託料および稼働条件は、以下のいずれかのパターンを適用する。"),
		quasiPatternTable(e.QuasiPatterns),
		paragraph("【役割別単価表（参考値）】\nQuality Manager: ¥ 2,500,000 〜 / Project Manager: ¥ 1,900,000 〜 / Design Strategist: ¥ 1,900,000 〜 / Art Director: ¥ 1,700,000 〜"),
		heading("第6条 （スケジュール・納期）"),
		list(
			"作業期間： "+FormatDate(e.WorkStartDate)+" 〜 "+FormatDate(e.WorkEndDate),
			"最終納期： "+FormatDate(e.DeliveryDate),
			"納入場所： 委託者指定サーバー または 電磁的記録媒体",
		),
	}
}

// quasiPatternTable always prints all four templates so the non-selected
// terms stay visible in the signed document; the selected column is marked
// and emphasised.
func quasiPatternTable(q entities.QuasiPatterns) Block {
	keys := []entities.QuasiPatternKey{
		entities.QuasiPatternA,
		entities.QuasiPatternB,
		entities.QuasiPatternC,
		entities.QuasiPatternD,
	}
	subtitles := []string{"人日ベース", "月額ベース", "固定月額", "該当なし"}

	selection := []string{"選択"}
	price := []string{"単価/月額"}
	condition := []string{"稼働条件"}
	overtime := []string{"超過精算"}
	header := []string{"項目"}

	emphasis := -1
	for i, k := range keys {
		p := q.Get(k)
		header = append(header, "パターン"+string(k)+"（"+subtitles[i]+"）")
		selection = append(selection, checkMark(q.Selected == k))
		price = append(price, p.Price)
		condition = append(condition, p.Condition)
		overtime = append(overtime, p.Overtime)
		if q.Selected == k {
			emphasis = i + 1
		}
	}

	return Block{Kind: BlockTable, Table: &Table{
		Header:      header,
		Rows:        [][]string{selection, price, condition, overtime},
		EmphasisCol: emphasis,
	}}
}

func individualPage3(e entities.Estimate, t totals.Totals, split totals.ContractSplit) []Block {
	blocks := []Block{
		heading("第7条 （委託料）"),
		paragraph("本契約の委託料総額および内訳は以下の通りとする。"),
		feeTable(e, t, split),
		heading("第8条 （支払方法・支払期日）"),
		checks(
			Checkbox{Label: "一括払い（検収完了月の翌月末払い）", Checked: e.PaymentType == entities.PaymentTypeSingle},
			Checkbox{Label: "分割払い（マイルストーン払い）", Checked: e.PaymentType == entities.PaymentTypeMilestone},
		),
	}
	if e.PaymentType == entities.PaymentTypeMilestone {
		kickoff, completion := totals.MilestoneSplit(t.TaxExclusive)
		blocks = append(blocks, Block{Kind: BlockTable, Table: &Table{
			Header: []string{"回数", "金額（税別）", "請求時期・条件"},
			Rows: [][]string{
				{"第1回（着手金）", FormatYen(kickoff) + "（50%）", "本契約締結後、7営業日以内に請求。請求月の翌月末払い"},
				{"第2回（完了金）", FormatYen(completion) + "（50%）", "最終成果物の検収完了後、7営業日以内に請求。請求月の翌月末払い"},
			},
			EmphasisCol: -1,
		}})
	}
	return blocks
}

func feeTable(e entities.Estimate, t totals.Totals, split totals.ContractSplit) Block {
	rows := [][]string{
		{"(1) 請負型業務", "（成果物完成責任あり・検収対象）", ""},
	}
	if len(split.Fixed) == 0 {
		rows = append(rows, []string{"-", "-", "-"})
	}
	for _, item := range split.Fixed {
		rows = append(rows, []string{item.Name, item.Details, FormatYen(item.Amount())})
	}
	rows = append(rows, []string{"", "請負小計", FormatYen(split.FixedSubtotal)})

	rows = append(rows, []string{"(2) 準委任型業務", "（善管注意義務・期間対応）", ""})
	if len(split.Quasi) == 0 {
		rows = append(rows, []string{"-", "-", "-"})
	}
	for _, item := range split.Quasi {
		detail := fmt.Sprintf("%s（%s%s）", item.Details, FormatQuantity(item.Quantity), item.Unit)
		rows = append(rows, []string{item.Name, detail, FormatYen(item.Amount())})
	}
	rows = append(rows, []string{"", "準委任小計", FormatYen(split.QuasiSubtotal)})

	if e.Discount > 0 {
		rows = append(rows, []string{"(3) その他", "出精お値引き、端数調整", "- " + FormatYen(e.Discount)})
	}
	total := len(rows)
	rows = append(rows, []string{"合計委託料", "（消費税別途）", FormatYen(t.TaxExclusive)})

	return Block{Kind: BlockTable, Table: &Table{
		Header:       []string{"業務区分", "内容", "金額（税別）"},
		Rows:         rows,
		EmphasisCol:  -1,
		EmphasisRows: []int{total},
	}}
}

func individualPage4(e entities.Estimate) []Block {
	blocks := []Block{
		heading("第9条 （費用負担）"),
		list(
			"委託業務の遂行に必要な交通費、宿泊費、素材購入費（ストックフォト、フォント等）、サーバー利用料等の実費は、委託料とは別に委託者が負担する。",
			"受託者は, 事前に費用の概算を提示し、委託者の承諾を得た上で支出するものとする。",
		),
		heading("第10条 （撮影条件）"),
		checks(
			Checkbox{Label: "撮影なし", Checked: !e.HasPhotography},
			Checkbox{Label: "撮影あり（以下の条件を適用）", Checked: e.HasPhotography},
		),
	}
	if e.HasPhotography {
		blocks = append(blocks, Block{Kind: BlockTable, Table: &Table{
			Rows: [][]string{
				{"撮影日数・時間", e.PhotoDetails.Days + "日間（拘束 " + e.PhotoDetails.Hours + "時間/日）"},
				{"納品カット数", "セレクト済み " + e.PhotoDetails.Cuts + " カット（※全データ納品は含まない）"},
				{"モデル手配", e.PhotoDetails.ModelInfo},
				{"肖像権処理",
					checkMark(e.PhotoDetails.RightsHandling == entities.RightsHandlingClient) + " 委託者の責任にて処理　" +
						checkMark(e.PhotoDetails.RightsHandling == entities.RightsHandlingProvider) + " 受託者にて代行（別途費用）"},
			},
			EmphasisCol: -1,
		}})
	}

	blocks = append(blocks,
		heading("第11条 （知的財産権の取扱い）"),
		paragraph("本業務に関する知的財産権の取扱いは、以下のいずれかを適用する。"),
		ipPatternBlock(entities.IPPatternTransfer, "パターンA：著作権移転型",
			"成果物の著作権（著作権法第27条及び第28条の権利を含む）は、全て委託者に帰属するものとし、権利の発生と同時に委託者に移転する。ただし、受託者が従前より有していた汎用的な知的財産権（プログラム、ノウハウ等）は受託者に留保される。",
			e.IPPattern),
		ipPatternBlock(entities.IPPatternLicense, "パターンB：受託者保有 + 利用権許諾型",
			"本業務を通じて受託者が新たに創作した部分の知的財産権は受託者に留保される。ただし、委託者は成果物を期限・地域・目的の制限なく、自ら知的財産権を保有するのと同等に利用する権利を許諾される。",
			e.IPPattern),
		heading("第12条 （特記事項）"),
	)

	notes := []string{
		"1. 中間成果物（デザイン元データ等）の納品は、第3条の定めに従う。",
		"2. 本契約に定めのない事項については、基本契約の定めに従うものとする。",
	}
	if e.HasNotes && e.Notes != "" {
		notes = append(notes, "3. "+e.Notes)
	}
	blocks = append(blocks, list(notes...))
	return blocks
}

// ipPatternBlock prints one of the two mutually exclusive rights clauses.
// Both patterns are always printed; only the active one carries emphasis.
func ipPatternBlock(key entities.IPPattern, label, body string, selected entities.IPPattern) Block {
	return Block{
		Kind:     BlockChecks,
		Text:     body,
		Checks:   []Checkbox{{Label: label, Checked: selected == key}},
		Emphasis: selected == key,
	}
}

func individualPage5(e entities.Estimate) []Block {
	fields := []KeyValue{
		{Key: "締結日", Value: FormatDate(e.DocumentDate)},
		{Key: "（委託者）住所", Value: blankIfEmpty(e.Client.Address)},
		{Key: "（委託者）社名", Value: blankIfEmpty(e.Client.CompanyName)},
		{Key: "（委託者）代表者職名・氏名", Value: blankIfEmpty(e.Client.Representative) + "　印"},
		{Key: "（受託者）住所", Value: "〒" + e.Provider.ZipCode + " " + e.Provider.Address},
	}
	if e.Provider.Building != "" {
		fields = append(fields, KeyValue{Key: "（受託者）住所2", Value: e.Provider.Building})
	}
	fields = append(fields,
		KeyValue{Key: "（受託者）社名", Value: e.Provider.CompanyName},
		KeyValue{Key: "（受託者）代表者職名・氏名", Value: "代表取締役　" + e.Provider.Representative + "　印"},
	)

	return []Block{
		paragraph("本契約の成立を証するため、本書2通を作成し、委託者及び受託者双方が記名押印の上、各1通を保有する。"),
		{Kind: BlockSignature, Fields: fields},
	}
}

func checkMark(checked bool) string {
	if checked {
		return "☑"
	}
	return "☐"
}
