package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"fren_docs/internal/domain/entities"
	"fren_docs/internal/domain/totals"
	"fren_docs/internal/usecase/interfaces"
)

// ledgerExportHeaders is the fixed column order of both export formats.
var ledgerExportHeaders = []string{
	"作成日",
	"管理番号",
	"企業名",
	"案件名",
	"契約形態",
	"見積合計(税別)",
	"契約日",
	"納期",
}

// utf8BOM keeps spreadsheet applications from misreading the CSV as a
// legacy encoding.
const utf8BOM = "\uFEFF"

// IExportUseCase renders the saved ledger into downloadable files.

type IExportUseCase interface {
	CSV(ctx context.Context) ([]byte, error)
	XLSX(ctx context.Context) ([]byte, error)
}

type ExportUseCase struct {
	ledger interfaces.ILedgerRepository
}

var _ IExportUseCase = (*ExportUseCase)(nil)

func NewExportUseCase(ledger interfaces.ILedgerRepository) *ExportUseCase {
	return &ExportUseCase{ledger: ledger}
}

// CSV renders every saved record as one row, BOM-prefixed UTF-8. Totals are
// recomputed from the line items, not read from the snapshot column.
func (u *ExportUseCase) CSV(ctx context.Context) ([]byte, error) {
	records, err := u.ledger.List(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(utf8BOM)

	w := csv.NewWriter(&buf)
	if err := w.Write(ledgerExportHeaders); err != nil {
		return nil, err
	}
	for _, rec := range records {
		if err := w.Write(exportRow(rec)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// XLSX renders the same rows as a single-sheet workbook.
func (u *ExportUseCase) XLSX(ctx context.Context) ([]byte, error) {
	records, err := u.ledger.List(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "台帳"
	f.SetSheetName("Sheet1", sheet)

	headStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})

	for i, h := range ledgerExportHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := col + "1"
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, headStyle)
	}

	for idx, rec := range records {
		row := idx + 2
		cells := exportRow(rec)
		for i, v := range cells {
			col, _ := excelize.ColumnNumberToName(i + 1)
			f.SetCellValue(sheet, fmt.Sprintf("%s%d", col, row), v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func exportRow(rec entities.Estimate) []string {
	rec = rec.Normalized()
	total := totals.Compute(rec.Items, rec.Discount, rec.TaxRate).TaxExclusive
	return []string{
		createdDate(rec.CreatedAt),
		rec.EstimateNumber,
		rec.Client.CompanyName,
		rec.Client.ProjectName,
		string(rec.ContractType),
		fmt.Sprintf("%d", total),
		rec.ContractDate,
		rec.DeliveryDate,
	}
}

// createdDate shortens the stored RFC 3339 timestamp to a local-style date.
// Unparseable values pass through untouched so old rows still export.
func createdDate(createdAt string) string {
	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return createdAt
	}
	return t.Format("2006/1/2")
}
