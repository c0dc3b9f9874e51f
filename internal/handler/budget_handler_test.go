package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/starke/backend/internal/model"
	"github.com/starke/backend/internal/pagination"
	"github.com/starke/backend/internal/validate"
)

// ---------------------------------------------------------------------------
// Mock BudgetService
// ---------------------------------------------------------------------------

type mockBudgetService struct {
	submitFunc func(ctx context.Context, b *model.Budget) error
	listFunc   func(ctx context.Context, p pagination.Params) ([]*model.Budget, int, error)
}

func (m *mockBudgetService) Submit(ctx context.Context, b *model.Budget) error {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, b)
	}
	return nil
}

func (m *mockBudgetService) List(ctx context.Context, p pagination.Params) ([]*model.Budget, int, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, p)
	}
	return nil, 0, nil
}

// ---------------------------------------------------------------------------
// POST /api/budgets tests
// ---------------------------------------------------------------------------

// TestBudgetHandler_Submit_NoCompany verifies a request without company is
// accepted and stored with an empty string.
func TestBudgetHandler_Submit_NoCompany(t *testing.T) {
	var captured *model.Budget
	mock := &mockBudgetService{
		submitFunc: func(ctx context.Context, b *model.Budget) error {
			captured = b
			return nil
		},
	}
	h := NewBudgetHandler(mock)

	body := `{"name":"Bob","email":"bob@x.com","phone":"555-0100","service":"web","details":"New site","city":"Porto"}`
	req := httptest.NewRequest(http.MethodPost, "/api/budgets", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d — body: %s", rec.Code, rec.Body.String())
	}
	if captured == nil {
		t.Fatal("expected Submit to be called")
	}
	if captured.Company != "" {
		t.Errorf("expected empty company, got %q", captured.Company)
	}
}

func TestBudgetHandler_Submit_WithCompany(t *testing.T) {
	var captured *model.Budget
	mock := &mockBudgetService{
		submitFunc: func(ctx context.Context, b *model.Budget) error {
			captured = b
			return nil
		},
	}
	h := NewBudgetHandler(mock)

	body := `{"name":"Bob","email":"bob@x.com","phone":"555-0100","service":"web","details":"New site","company":"ACME","city":"Porto"}`
	req := httptest.NewRequest(http.MethodPost, "/api/budgets", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if captured.Company != "ACME" {
		t.Errorf("expected company=ACME, got %q", captured.Company)
	}
}

func TestBudgetHandler_Submit_MissingCity(t *testing.T) {
	mock := &mockBudgetService{
		submitFunc: func(ctx context.Context, b *model.Budget) error {
			return &validate.Error{Missing: []string{"city"}}
		},
	}
	h := NewBudgetHandler(mock)

	body := `{"name":"Bob","email":"bob@x.com","phone":"555-0100","service":"web","details":"New site"}`
	req := httptest.NewRequest(http.MethodPost, "/api/budgets", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var resp map[string]string
	_ = json.NewDecoder(rec.Body).Decode(&resp)
	if resp["error"] != "Missing fields: city" {
		t.Errorf("expected error naming city, got %q", resp["error"])
	}
}

func TestBudgetHandler_Submit_InvalidJSON(t *testing.T) {
	h := NewBudgetHandler(&mockBudgetService{})

	req := httptest.NewRequest(http.MethodPost, "/api/budgets", strings.NewReader("not json"))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for invalid JSON, got %d", rec.Code)
	}
}

// ---------------------------------------------------------------------------
// GET /api/budgets tests
// ---------------------------------------------------------------------------

func TestBudgetHandler_List_CompanySerializedWhenEmpty(t *testing.T) {
	budgets := []*model.Budget{
		{ID: 1, Name: "Bob", Email: "bob@x.com", Phone: "555-0100", Service: "web",
			Details: "New site", Company: "", City: "Porto", CreatedAt: time.Now().UTC()},
	}
	mock := &mockBudgetService{
		listFunc: func(ctx context.Context, p pagination.Params) ([]*model.Budget, int, error) {
			return budgets, 1, nil
		},
	}
	h := NewBudgetHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/budgets?page=1&page_size=10", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Items []map[string]any `json:"items"`
		Total int              `json:"total"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Total != 1 || len(resp.Items) != 1 {
		t.Fatalf("expected one item, got %d (total=%d)", len(resp.Items), resp.Total)
	}
	company, present := resp.Items[0]["company"]
	if !present {
		t.Fatal("expected company key present even when empty")
	}
	if company != "" {
		t.Errorf("expected company == \"\", got %v", company)
	}
}

func TestBudgetHandler_List_InvalidPagination(t *testing.T) {
	h := NewBudgetHandler(&mockBudgetService{})

	req := httptest.NewRequest(http.MethodGet, "/api/budgets?page_size=ten", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestBudgetHandler_List_EmptyIsArray(t *testing.T) {
	mock := &mockBudgetService{
		listFunc: func(ctx context.Context, p pagination.Params) ([]*model.Budget, int, error) {
			return nil, 0, nil
		},
	}
	h := NewBudgetHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/budgets", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if !strings.Contains(rec.Body.String(), `"items":[]`) {
		t.Errorf("expected items to serialize as [], body: %s", rec.Body.String())
	}
}
