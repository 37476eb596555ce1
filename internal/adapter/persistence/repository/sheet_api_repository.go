package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"fren_docs/internal/domain/entities"
	"fren_docs/internal/usecase/interfaces"
)

var ErrMissingSheetAPIURL = errors.New("missing SHEET_API_URL")

const defaultSheetTimeout = 30 * time.Second

// SheetAPIRepository talks to the spreadsheet web app that backs the ledger.
//
// Wire protocol:
//   - GET  {url}?key={accessKey}                       -> JSON array of records
//   - POST {url} {"action":"save","key":k,"data":{…}}  -> {"status","message"}
//   - POST {url} {"action":"delete","key":k,"id":id}   -> {"status","message"}
//
// Any status other than "success" is an error; its message is surfaced
// verbatim because the sheet script writes operator-facing Japanese text.

type SheetAPIRepository struct {
	httpClient *http.Client
	baseURL    string
	accessKey  string
}

var _ interfaces.ILedgerRepository = (*SheetAPIRepository)(nil)

func NewSheetAPIRepository(baseURL, accessKey string) (*SheetAPIRepository, error) {
	if baseURL == "" {
		log.Printf("[ledger][sheet] missing SHEET_API_URL")
		return nil, ErrMissingSheetAPIURL
	}
	return &SheetAPIRepository{
		httpClient: &http.Client{Timeout: defaultSheetTimeout},
		baseURL:    baseURL,
		accessKey:  accessKey,
	}, nil
}

// sheetRecord is the persisted shape: the record plus the denormalized total
// the sheet shows in its own columns.
type sheetRecord struct {
	entities.Estimate
	TotalAmount int64 `json:"totalAmount"`
}

type sheetResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (r *SheetAPIRepository) List(ctx context.Context) ([]entities.Estimate, error) {
	u := r.baseURL + "?key=" + url.QueryEscape(r.accessKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sheet api list: unexpected status %d", resp.StatusCode)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return []entities.Estimate{}, nil
	}

	var rows []sheetRecord
	if err := json.Unmarshal(body, &rows); err != nil {
		// The script answers {"status":"error",...} instead of an array when
		// the key is rejected.
		var res sheetResult
		if json.Unmarshal(body, &res) == nil && res.Message != "" {
			return nil, errors.New(res.Message)
		}
		return nil, err
	}

	out := make([]entities.Estimate, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.Estimate)
	}
	return out, nil
}

func (r *SheetAPIRepository) Save(ctx context.Context, e entities.Estimate, totalAmount int64) error {
	return r.post(ctx, map[string]any{
		"action": "save",
		"key":    r.accessKey,
		"data":   sheetRecord{Estimate: e, TotalAmount: totalAmount},
	})
}

func (r *SheetAPIRepository) Delete(ctx context.Context, id string) error {
	return r.post(ctx, map[string]any{
		"action": "delete",
		"key":    r.accessKey,
		"id":     id,
	})
}

func (r *SheetAPIRepository) post(ctx context.Context, payload map[string]any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL, bytes.NewReader(body))
	if err != nil {
		return err
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("sheet api %s: unexpected status %d", payload["action"], resp.StatusCode)
	}

	var res sheetResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return err
	}
	if res.Status != "success" {
		return errors.New(res.Message)
	}
	return nil
}
