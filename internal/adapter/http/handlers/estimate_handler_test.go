package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fren_docs/internal/adapter/http/handlers/mocks"
	"fren_docs/internal/domain/entities"
	"fren_docs/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func stubRecord(id string) entities.Estimate {
	e := entities.NewEstimate(entities.DefaultProvider, time.Date(2025, 7, 3, 10, 0, 0, 0, time.UTC))
	e.ID = id
	return e
}

func TestEstimateHandler_NewDraft(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/drafts", h.NewDraft)

		draft := stubRecord("d-1")
		uc.EXPECT().NewDraft(gomock.Any()).Return(draft, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/drafts", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if got["id"] != "d-1" {
			t.Fatalf("expected id d-1, got %v", got["id"])
		}
		if _, ok := got["totalAmount"]; !ok {
			t.Fatalf("expected totalAmount in response body")
		}
	})

	t.Run("usecase failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/drafts", h.NewDraft)

		uc.EXPECT().NewDraft(gomock.Any()).Return(entities.Estimate{}, errors.New("store unavailable"))

		req := httptest.NewRequest(http.MethodPost, "/v1/drafts", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_Preview(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/preview", h.Preview)

		req := httptest.NewRequest(http.MethodPost, "/v1/preview", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/preview", h.Preview)

		uc.EXPECT().Preview(gomock.Any(), gomock.Any()).Return(usecase.DocumentBundle{}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/preview", bytes.NewBufferString(`{"id":"e-1","companyName":""}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_Edit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing action", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/edits", h.Edit)

		req := httptest.NewRequest(http.MethodPost, "/v1/edits", bytes.NewBufferString(`{"record":{},"op":{}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("item not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/edits", h.Edit)

		uc.EXPECT().Edit(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Estimate{}, usecase.ErrItemNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/edits", bytes.NewBufferString(`{"record":{"id":"e-1"},"op":{"action":"removeItem","itemId":"missing"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("unknown action", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/edits", h.Edit)

		uc.EXPECT().Edit(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Estimate{}, usecase.ErrUnknownEditAction)

		req := httptest.NewRequest(http.MethodPost, "/v1/edits", bytes.NewBufferString(`{"record":{"id":"e-1"},"op":{"action":"explode"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success echoes updated record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/edits", h.Edit)

		updated := stubRecord("e-1")
		updated.Client.CompanyName = "株式会社サンプル"
		uc.EXPECT().Edit(gomock.Any(), gomock.Any(), gomock.Any()).Return(updated, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/edits", bytes.NewBufferString(`{"record":{"id":"e-1"},"op":{"action":"updateClient","client":{"companyName":"株式会社サンプル"}}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got struct {
			Client entities.ClientInfo `json:"client"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if got.Client.CompanyName != "株式会社サンプル" {
			t.Fatalf("expected updated client name, got %q", got.Client.CompanyName)
		}
	})
}

func TestEstimateHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.GET("/v1/estimates", h.List)

		uc.EXPECT().List(gomock.Any()).Return([]entities.Estimate{
			stubRecord("e-1"),
			stubRecord("e-2"),
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/estimates", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 records, got %d", len(got))
		}
	})

	t.Run("ledger failure keeps message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.GET("/v1/estimates", h.List)

		uc.EXPECT().List(gomock.Any()).Return(nil, errors.New("アクセスキーが不正です"))

		req := httptest.NewRequest(http.MethodGet, "/v1/estimates", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		var got map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if got["message"] != "アクセスキーが不正です" {
			t.Fatalf("expected ledger message in body, got %q", got["message"])
		}
	})
}

func TestEstimateHandler_Save(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates", h.Save)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates", h.Save)

		saved := stubRecord("e-1")
		uc.EXPECT().Save(gomock.Any(), gomock.Any()).Return(saved, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(`{"id":"e-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.DELETE("/v1/estimates/:id", h.Delete)

		uc.EXPECT().Delete(gomock.Any(), " ").Return(usecase.ErrRecordIDRequired)

		req := httptest.NewRequest(http.MethodDelete, "/v1/estimates/%20", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.DELETE("/v1/estimates/:id", h.Delete)

		uc.EXPECT().Delete(gomock.Any(), "e-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/estimates/e-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}
