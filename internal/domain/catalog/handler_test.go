package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestHandler_GetCatalog(t *testing.T) {
	cat, err := New(SchemeWeighted)
	if err != nil {
		t.Fatal(err)
	}
	h := NewHandler(cat)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	if err := h.GetCatalog(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body struct {
		Scheme    string     `json:"scheme"`
		AgeBlocks []AgeBlock `json:"age_blocks"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Scheme != string(SchemeWeighted) {
		t.Errorf("scheme = %q, want %q", body.Scheme, SchemeWeighted)
	}
	if len(body.AgeBlocks) != 13 {
		t.Errorf("blocks = %d, want 13", len(body.AgeBlocks))
	}
	total := 0
	for _, b := range body.AgeBlocks {
		total += len(b.Items)
	}
	if total != 89 {
		t.Errorf("items = %d, want 89", total)
	}
}
