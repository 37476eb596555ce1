package documents

import (
	"strings"
	"testing"

	"fren_docs/internal/domain/entities"
)

func checkedLabels(pages []Page) map[string]bool {
	out := map[string]bool{}
	for _, p := range pages {
		for _, blk := range p.Blocks {
			for _, c := range blk.Checks {
				out[c.Label] = c.Checked
			}
		}
	}
	return out
}

func TestIndividualContract(t *testing.T) {
	t.Run("five pages", func(t *testing.T) {
		pages := IndividualContract(sampleEstimate())
		if len(pages) != 5 {
			t.Fatalf("expected 5 pages, got %d", len(pages))
		}
	})

	t.Run("contract type checkboxes are one hot", func(t *testing.T) {
		for _, ct := range []entities.ContractType{
			entities.ContractTypeFixed,
			entities.ContractTypeQuasi,
			entities.ContractTypeHybrid,
		} {
			e := sampleEstimate()
			e.ContractType = ct
			labels := checkedLabels(IndividualContract(e))
			checked := 0
			for _, l := range []string{"請負型業務", "準委任型業務", "混合（ハイブリッド型）"} {
				if labels[l] {
					checked++
				}
			}
			if checked != 1 {
				t.Errorf("%s: expected exactly one checked type, got %d", ct, checked)
			}
		}
	})

	t.Run("source data pair is mutually exclusive", func(t *testing.T) {
		e := sampleEstimate()
		e.Deliverables.SourceData = true
		text := allText(IndividualContract(e))
		if !strings.Contains(text, "☑ 納品する") || !strings.Contains(text, "☐ 納品しない") {
			t.Errorf("expected 納品する checked and 納品しない unchecked")
		}

		e.Deliverables.SourceData = false
		text = allText(IndividualContract(e))
		if !strings.Contains(text, "☐ 納品する") || !strings.Contains(text, "☑ 納品しない") {
			t.Errorf("expected 納品する unchecked and 納品しない checked")
		}
	})

	t.Run("quasi pattern grid shows all four with selection emphasised", func(t *testing.T) {
		e := sampleEstimate()
		e.QuasiPatterns.Selected = entities.QuasiPatternC
		pages := IndividualContract(e)

		var grid *Table
		for _, blk := range pages[1].Blocks {
			if blk.Kind == BlockTable && len(blk.Table.Header) == 5 {
				grid = blk.Table
			}
		}
		if grid == nil {
			t.Fatal("quasi pattern table not found on page 2")
		}
		if grid.EmphasisCol != 3 {
			t.Errorf("expected emphasis on column 3, got %d", grid.EmphasisCol)
		}
		if got := grid.Rows[0][3]; got != "☑" {
			t.Errorf("pattern C selection cell = %q", got)
		}
		if got := grid.Rows[0][1]; got != "☐" {
			t.Errorf("pattern A selection cell = %q", got)
		}
	})

	t.Run("milestone table only for milestone payment", func(t *testing.T) {
		e := sampleEstimate()
		e.PaymentType = entities.PaymentTypeSingle
		if strings.Contains(allText(IndividualContract(e)), "第1回（着手金）") {
			t.Errorf("single payment must not print a milestone schedule")
		}

		e.PaymentType = entities.PaymentTypeMilestone
		text := allText(IndividualContract(e))
		if !strings.Contains(text, "第1回（着手金）") || !strings.Contains(text, "第2回（完了金）") {
			t.Errorf("milestone payment must print both installments")
		}
	})

	t.Run("milestone installments reconcile on odd totals", func(t *testing.T) {
		e := sampleEstimate()
		e.PaymentType = entities.PaymentTypeMilestone
		e.Items = []entities.LineItem{
			{ID: "i1", SubCategory: entities.SubCategoryFixed, Name: "x", UnitPrice: 100001, Quantity: 1},
		}
		text := allText(IndividualContract(e))
		if !strings.Contains(text, "¥ 50,001") || !strings.Contains(text, "¥ 50,000") {
			t.Errorf("expected 50,001 + 50,000 split, got:\n%s", text)
		}
	})

	t.Run("photography table only when enabled", func(t *testing.T) {
		e := sampleEstimate()
		e.HasPhotography = false
		if strings.Contains(allText(IndividualContract(e)), "納品カット数") {
			t.Errorf("photography table printed without photography")
		}

		e.HasPhotography = true
		e.PhotoDetails = entities.PhotoDetails{
			Days: "2", Hours: "8", Cuts: "30",
			ModelInfo:      "委託者手配",
			RightsHandling: entities.RightsHandlingClient,
		}
		text := allText(IndividualContract(e))
		if !strings.Contains(text, "2日間（拘束 8時間/日）") {
			t.Errorf("missing shooting schedule row")
		}
		if !strings.Contains(text, "☑ 委託者の責任にて処理") {
			t.Errorf("rights handling checkbox not marked")
		}
	})

	t.Run("both ip patterns printed, selected emphasised", func(t *testing.T) {
		e := sampleEstimate()
		e.IPPattern = entities.IPPatternLicense
		pages := IndividualContract(e)

		var a, b *Block
		for i := range pages[3].Blocks {
			blk := &pages[3].Blocks[i]
			if len(blk.Checks) == 1 && strings.HasPrefix(blk.Checks[0].Label, "パターンA") {
				a = blk
			}
			if len(blk.Checks) == 1 && strings.HasPrefix(blk.Checks[0].Label, "パターンB") {
				b = blk
			}
		}
		if a == nil || b == nil {
			t.Fatal("expected both ip pattern blocks on page 4")
		}
		if a.Emphasis || a.Checks[0].Checked {
			t.Errorf("pattern A must not be active")
		}
		if !b.Emphasis || !b.Checks[0].Checked {
			t.Errorf("pattern B must be active")
		}
	})

	t.Run("fee table routes items by sub category", func(t *testing.T) {
		e := sampleEstimate()
		e.Items = append(e.Items, entities.LineItem{
			ID: "i3", Category: "その他", Name: "予備費", UnitPrice: 10000, Quantity: 1,
		})
		text := pageText(IndividualContract(e)[2])
		if !strings.Contains(text, "請負小計　¥ 150,000") {
			t.Errorf("fixed subtotal wrong:\n%s", text)
		}
		if !strings.Contains(text, "準委任小計　¥ 50,000") {
			t.Errorf("quasi subtotal wrong:\n%s", text)
		}
		// 予備費 has no recognized sub-category but still counts in the total
		if !strings.Contains(text, "¥ 210,000") {
			t.Errorf("grand total must include unrouted items:\n%s", text)
		}
		if strings.Contains(text, "予備費") {
			t.Errorf("unrouted item must not appear in either bucket")
		}
	})

	t.Run("extra note appended when enabled", func(t *testing.T) {
		e := sampleEstimate()
		e.HasNotes = true
		e.Notes = "検収は委託者オフィスにて実施する。"
		if !strings.Contains(allText(IndividualContract(e)), "3. 検収は委託者オフィスにて実施する。") {
			t.Errorf("expected third special note")
		}

		e.HasNotes = false
		if strings.Contains(allText(IndividualContract(e)), "3. ") {
			t.Errorf("unexpected third note when disabled")
		}
	})
}
