package request

import (
	"encoding/json"
	"testing"

	"fren_docs/internal/usecase"
)

func TestEditRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    bool
	}{
		{"named action", `{"record":{},"op":{"action":"addItem","category":"デザイン"}}`, true},
		{"missing op", `{"record":{}}`, false},
		{"blank action", `{"record":{},"op":{"action":"   "}}`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req EditRequest
			if err := json.Unmarshal([]byte(tt.payload), &req); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got := req.Validate(); got != tt.want {
				t.Fatalf("Validate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEditRequest_BindsOp(t *testing.T) {
	payload := `{"record":{"id":"e-1"},"op":{"action":"updateItem","itemId":"i-1","item":{"unitPrice":30000}}}`
	var req EditRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if req.Op.Action != usecase.EditUpdateItem {
		t.Fatalf("expected updateItem action, got %q", req.Op.Action)
	}
	if req.Op.Item == nil || req.Op.Item.UnitPrice == nil || *req.Op.Item.UnitPrice != 30000 {
		t.Fatalf("expected unitPrice patch bound")
	}
}

func TestSaveEstimateRequest_Record(t *testing.T) {
	payload := `{"id":"e-1","estimateNumber":"20250703-01","items":[{"id":"i-1","unitPrice":1000,"quantity":2}]}`
	var req SaveEstimateRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	rec := req.Record()
	if rec.ID != "e-1" || rec.EstimateNumber != "20250703-01" {
		t.Fatalf("unexpected record header %q %q", rec.ID, rec.EstimateNumber)
	}
	if len(rec.Items) != 1 || rec.Items[0].Amount() != 2000 {
		t.Fatalf("unexpected items %+v", rec.Items)
	}
}
