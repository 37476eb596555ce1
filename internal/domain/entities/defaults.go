package entities

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DefaultTaxRate is the consumption tax percentage applied when a record does
// not carry its own rate.
const DefaultTaxRate = 10

// DefaultProvider seeds the provider block of a fresh record when no
// remembered provider info exists yet.
var DefaultProvider = ProviderInfo{
	CompanyName:    "fren株式会社",
	ZipCode:        "152-0035",
	Address:        "東京都目黒区自由が丘3-14-10",
	Building:       "J-PRIDE SOUTH007",
	Representative: "中島 竜太郎",
	Tel:            "090-xxxx-xxxx",
	PersonInCharge: "中島 竜太郎",
}

// CategoryPresets are the line-item groupings offered by the editor.
var CategoryPresets = []string{
	"ブランド構築費用",
	"ブランドサイト制作費用",
	"全体ディレクション費用",
	"撮影・編集費用",
	"実費・その他",
}

// EstimateNumberFor derives the human-readable document number from a date.
// The sequence suffix is fixed at 01; it is editable, never incremented.
func EstimateNumberFor(t time.Time) string {
	return fmt.Sprintf("%04d%02d%02d-01", t.Year(), int(t.Month()), t.Day())
}

// NewEstimate builds a fresh record dated now, seeded with the given provider
// info and the standard starter items and pricing templates.
func NewEstimate(provider ProviderInfo, now time.Time) Estimate {
	today := now.Format("2006-01-02")
	return Estimate{
		ID:             uuid.NewString(),
		EstimateNumber: EstimateNumberFor(now),
		CreatedAt:      now.UTC().Format(time.RFC3339),
		DocumentDate:   today,
		Client:         ClientInfo{},
		Provider:       provider,
		Items: []LineItem{
			{ID: uuid.NewString(), Category: SubCategoryFixed, Name: "キービジュアル開発", Details: "ビジュアルアイデンティティ開発、展開", Unit: "式"},
			{ID: uuid.NewString(), Category: SubCategoryFixed, Name: "ブランドサイト制作", Details: "構成、デザイン、実装", Unit: "式"},
			{ID: uuid.NewString(), Category: SubCategoryQuasi, Name: "全体ディレクション", Details: "品質管理、情報設計、PM", Unit: "人日"},
		},
		Discount:     0,
		TaxRate:      DefaultTaxRate,
		ContractDate: today,
		ContractType: ContractTypeHybrid,
		IPPattern:    IPPatternTransfer,
		Validity:     "本見積書発行日より2週間",
		PaymentType:  PaymentTypeMilestone,
		Revisions: Revisions{
			Design: 2,
			Coding: 1,
			Others: "撮影後のレタッチは色調補正のみ（合成・変形は含まず）",
		},
		QuasiPatterns: QuasiPatterns{
			Selected: QuasiPatternA,
			A:        QuasiPattern{Name: "パターンA", Price: "¥ 30,000 /人日", Condition: "月 8 人日相当", Overtime: "あり"},
			B:        QuasiPattern{Name: "パターンB", Price: "役割別月額単価", Condition: "稼働率: __ %", Overtime: "あり"},
			C:        QuasiPattern{Name: "パターンC", Price: "月額: ¥ ____ /月", Condition: "制限なし", Overtime: "なし"},
			D:        QuasiPattern{Name: "該当なし", Price: "-", Condition: "-", Overtime: "-"},
		},
		Deliverables: Deliverables{
			Final:        "HTML/CSS/JS一式、提案資料（PDF形式）",
			Intermediate: "ワイヤーフレーム、デザインカンプ（画像またはFigma閲覧権限）",
			SourceData:   false,
			SourceFormat: ".fig, .ai",
		},
		HasPhotography: true,
		PhotoDetails: PhotoDetails{
			Days:           "1",
			Hours:          "8",
			Cuts:           "50",
			ModelInfo:      "委託者にて手配（社員様等）",
			RightsHandling: RightsHandlingClient,
		},
		HasNotes: false,
	}
}
