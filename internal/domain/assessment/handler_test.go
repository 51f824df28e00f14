package assessment

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func newTestHandler(store *mockStore) (*Handler, *echo.Echo) {
	h := NewHandler(newTestService(store))
	e := echo.New()
	return h, e
}

const validSubmitBody = `{
	"child_name": "Asha Kumar",
	"therapist_name": "Dr. Rao",
	"patient_id": "VIN100",
	"patient_type": "new",
	"age_level": "6-7",
	"responses": {"1": "YES", "2": "NO"}
}`

func TestHandler_SubmitAssessment(t *testing.T) {
	store := &mockStore{}
	h, e := newTestHandler(store)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(validSubmitBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.SubmitAssessment(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", rec.Code)
	}
	if len(store.records) != 1 {
		t.Fatalf("store holds %d records, want 1", len(store.records))
	}
	var body Record
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Totals.Grand != 1 {
		t.Errorf("grand = %v, want 1 (one YES)", body.Totals.Grand)
	}
}

func TestHandler_SubmitAssessment_FirstGateOnly(t *testing.T) {
	h, e := newTestHandler(&mockStore{})
	body := `{"therapist_name":"Dr. Rao","responses":{"1":"YES"}}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())

	err := h.SubmitAssessment(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("error = %T, want *echo.HTTPError", err)
	}
	if httpErr.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", httpErr.Code)
	}
	msg, _ := httpErr.Message.(string)
	if msg != "child name required" {
		t.Errorf("message = %q, want first failing gate only", msg)
	}
	if strings.Contains(msg, "patient id") {
		t.Error("later gates must not be aggregated into the message")
	}
}

func TestHandler_SubmitAssessment_InvalidItemID(t *testing.T) {
	h, e := newTestHandler(&mockStore{})
	body := strings.Replace(validSubmitBody, `"1": "YES"`, `"400": "YES"`, 1)
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())

	err := h.SubmitAssessment(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("error = %v, want 400", err)
	}
}

func TestHandler_SubmitAssessment_StoreDown(t *testing.T) {
	store := &mockStore{submitErr: echo.ErrServiceUnavailable}
	h, e := newTestHandler(store)
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(validSubmitBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())

	err := h.SubmitAssessment(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadGateway {
		t.Fatalf("error = %v, want 502", err)
	}
}

func TestHandler_NextPatientID(t *testing.T) {
	store := &mockStore{}
	h, e := newTestHandler(store)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.NextPatientID(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var body map[string]string
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body["patient_id"] != "VIN100" {
		t.Errorf("patient_id = %q, want VIN100", body["patient_id"])
	}
}
