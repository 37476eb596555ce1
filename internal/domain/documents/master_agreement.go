package documents

import (
	"strconv"

	"fren_docs/internal/domain/entities"
)

const (
	masterTitle = "業務委託基本契約書"

	// Printed when the client has not been filled in yet.
	clientPlaceholder = "株式会社●●"

	// Printed when no project name has been entered. Broad on purpose so the
	// standing agreement covers the usual engagement scope.
	projectPlaceholder = "コーポレートリブランディング業務、ブランドサイトの企画、設計、制作及びリニューアル業務、並びにこれらに付随関連するプロジェクトマネジメント業務等"
)

// MasterAgreement renders the standing service agreement as six fixed pages.
// Only the preamble, Article 1 and the signature block read from the record;
// all other articles are static text shared by every engagement.
func MasterAgreement(e entities.Estimate) []Page {
	client := e.Client.CompanyName
	if client == "" {
		client = clientPlaceholder
	}
	project := e.Client.ProjectName
	if project == "" {
		project = projectPlaceholder
	}

	page1 := []Block{
		paragraph("管理番号：" + e.EstimateNumber),
		title(masterTitle),
		paragraph(client + "（以下「委託者」という。）と" + e.Provider.CompanyName + "（以下「受託者」という。）とは, 以下のとおり, 業務委託契約（以下「本契約」という。）を締結する。"),
	}
	page1 = append(page1, masterArticles1to3(project)...)

	page6 := masterArticles30to38()
	page6 = append(page6, masterSignature(e))

	pages := [][]Block{
		page1,
		masterArticles4to8(),
		masterArticles9to14(),
		masterArticles15to21(),
		masterArticles22to29(),
		page6,
	}

	out := make([]Page, 0, len(pages))
	for i, blocks := range pages {
		out = append(out, Page{
			Number: i + 1,
			Header: masterTitle,
			Blocks: blocks,
			Footer: pageFooter(i + 1),
		})
	}
	return out
}

func masterSignature(e entities.Estimate) Block {
	fields := []KeyValue{
		{Key: "締結日", Value: FormatDate(e.DocumentDate)},
		{Key: "（委託者）住所", Value: blankIfEmpty(e.Client.Address)},
		{Key: "（委託者）社名", Value: blankIfEmpty(e.Client.CompanyName)},
		{Key: "（委託者）代表", Value: blankIfEmpty(e.Client.Representative) + "　印"},
		{Key: "（受託者）住所", Value: "〒" + e.Provider.ZipCode + " " + e.Provider.Address},
	}
	if e.Provider.Building != "" {
		fields = append(fields, KeyValue{Key: "（受託者）住所2", Value: e.Provider.Building})
	}
	fields = append(fields,
		KeyValue{Key: "（受託者）社名", Value: e.Provider.CompanyName},
		KeyValue{Key: "（受託者）代表", Value: e.Provider.Representative + "　印"},
	)
	return Block{Kind: BlockSignature, Fields: fields}
}

// blankIfEmpty keeps an ideographic space where a party field is still
// unknown, so the printed line stays visibly fillable.
func blankIfEmpty(s string) string {
	if s == "" {
		return "　"
	}
	return s
}

func pageFooter(n int) string {
	return "- " + strconv.Itoa(n) + " -"
}
