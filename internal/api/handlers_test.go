package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/mmrzaf/dataforge/internal/app"
	"github.com/mmrzaf/dataforge/internal/columns"
	"github.com/mmrzaf/dataforge/internal/domain"
	"github.com/mmrzaf/dataforge/internal/logging"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	service := app.NewGenerateService(columns.DefaultRegistry(), nil, logging.NewLogger("error"), 1000000, 1000, 0)
	return NewHandler(service)
}

func TestGenerate_Download(t *testing.T) {
	h := newTestHandler(t)

	body := `{"record_count":2,"columns":["person_age","credit_score"],"format":"csv"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Generate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Type"); got != "text/csv" {
		t.Fatalf("unexpected content type: %s", got)
	}
	if got := rec.Header().Get("Content-Disposition"); got != "attachment; filename=generated_data.csv" {
		t.Fatalf("unexpected disposition: %s", got)
	}

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "person_age,credit_score" {
		t.Fatalf("unexpected header line: %s", lines[0])
	}
}

func TestGenerate_InvalidJSON(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", strings.NewReader("{nope"))
	rec := httptest.NewRecorder()
	h.Generate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestGenerate_EmptySelection(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate",
		strings.NewReader(`{"record_count":1,"columns":[],"format":"csv"}`))
	rec := httptest.NewRecorder()
	h.Generate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestGenerate_UnsupportedFormat(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate",
		strings.NewReader(`{"record_count":1,"columns":["uuid"],"format":"pdf"}`))
	rec := httptest.NewRecorder()
	h.Generate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestGenerateForm(t *testing.T) {
	h := newTestHandler(t)

	form := url.Values{}
	form.Set("recordCount", "3")
	form.Set("outputFormat", "json")
	form.Add("columns", "person_age")
	form.Add("columns", "loan_intent")

	req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.GenerateForm(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}

	var parsed []domain.Record
	if err := json.Unmarshal(rec.Body.Bytes(), &parsed); err != nil {
		t.Fatal(err)
	}
	if len(parsed) != 3 {
		t.Fatalf("expected 3 records, got %d", len(parsed))
	}
	for _, r := range parsed {
		if len(r.Columns) != 2 || r.Columns[0] != "person_age" || r.Columns[1] != "loan_intent" {
			t.Fatalf("unexpected record columns: %v", r.Columns)
		}
	}
}

func TestGenerateForm_NonNumericCountFallsBack(t *testing.T) {
	h := newTestHandler(t)

	form := url.Values{}
	form.Set("recordCount", "lots")
	form.Set("outputFormat", "csv")
	form.Add("columns", "uuid")

	req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.GenerateForm(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	if len(lines) != 1001 {
		t.Fatalf("expected default 1000 rows + header, got %d lines", len(lines))
	}
}

func TestListColumns(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/columns", nil)
	rec := httptest.NewRecorder()
	h.ListColumns(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var infos []domain.ColumnInfo
	if err := json.Unmarshal(rec.Body.Bytes(), &infos); err != nil {
		t.Fatal(err)
	}
	if len(infos) == 0 {
		t.Fatal("expected non-empty column list")
	}

	found := false
	for _, info := range infos {
		if info.Name == "person_emp_exp" {
			found = true
			if len(info.Prerequisites) != 1 || info.Prerequisites[0] != "person_age" {
				t.Fatalf("unexpected prerequisites: %v", info.Prerequisites)
			}
		}
	}
	if !found {
		t.Fatal("person_emp_exp missing from column list")
	}
}

func TestListFormats(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/formats", nil)
	rec := httptest.NewRecorder()
	h.ListFormats(rec, req)

	var formats []domain.Format
	if err := json.Unmarshal(rec.Body.Bytes(), &formats); err != nil {
		t.Fatal(err)
	}
	if len(formats) != 4 {
		t.Fatalf("expected 4 formats, got %v", formats)
	}
}
