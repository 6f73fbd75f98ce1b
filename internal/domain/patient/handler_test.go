package patient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func newTestHandler() (*Handler, *Service) {
	svc, _, _, _ := newTestService()
	return NewHandler(svc), svc
}

func TestCreatePatientHandler(t *testing.T) {
	h, _ := newTestHandler()
	e := echo.New()

	body := `{"age": 54, "gender": "female"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/patients", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreatePatient(c); err != nil {
		t.Fatalf("CreatePatient() error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var p Patient
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if p.ID == uuid.Nil {
		t.Error("expected server-assigned patient id")
	}
	if p.Age == nil || *p.Age != 54 {
		t.Errorf("expected age 54, got %v", p.Age)
	}
}

func TestCreatePatientHandler_NegativeAge(t *testing.T) {
	h, _ := newTestHandler()
	e := echo.New()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/patients", strings.NewReader(`{"age": -1}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.CreatePatient(c)
	if err == nil {
		t.Fatal("expected error for negative age")
	}
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestGetPatientHandler_NotFound(t *testing.T) {
	h, _ := newTestHandler()
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/v1/patients/:id")
	c.SetParamNames("id")
	c.SetParamValues(uuid.New().String())

	err := h.GetPatient(c)
	if err == nil {
		t.Fatal("expected error for unknown patient")
	}
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 HTTPError, got %v", err)
	}
}

func TestGetPatientHandler_InvalidID(t *testing.T) {
	h, _ := newTestHandler()
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/v1/patients/:id")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := h.GetPatient(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestCreateVisitHandler(t *testing.T) {
	h, svc := newTestHandler()
	e := echo.New()

	p := &Patient{Age: ptrInt(41)}
	if err := svc.CreatePatient(context.Background(), p); err != nil {
		t.Fatalf("seed patient: %v", err)
	}

	body := `{"patient_id": "` + p.ID.String() + `", "chief_complaint": "persistent cough",
		"vitals": {"heart_rate": 96},
		"symptoms": [{"symptom_name": "cough", "severity_score": 2}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/visits", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateVisit(c); err != nil {
		t.Fatalf("CreateVisit() error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var v Visit
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if v.PatientID != p.ID {
		t.Errorf("expected patient id %s, got %s", p.ID, v.PatientID)
	}
	if v.ChiefComplaint != "persistent cough" {
		t.Errorf("unexpected chief complaint: %s", v.ChiefComplaint)
	}
}

func TestCreateVisitHandler_UnknownPatient(t *testing.T) {
	h, _ := newTestHandler()
	e := echo.New()

	body := `{"patient_id": "` + uuid.New().String() + `", "chief_complaint": "headache"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/visits", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.CreateVisit(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 HTTPError, got %v", err)
	}
}

func TestListVisitsHandler_FilterByPatient(t *testing.T) {
	h, svc := newTestHandler()
	e := echo.New()

	p1 := &Patient{Age: ptrInt(30)}
	p2 := &Patient{Age: ptrInt(60)}
	if err := svc.CreatePatient(context.Background(), p1); err != nil {
		t.Fatalf("seed patient: %v", err)
	}
	if err := svc.CreatePatient(context.Background(), p2); err != nil {
		t.Fatalf("seed patient: %v", err)
	}
	if _, err := svc.CreateVisit(context.Background(), &VisitInput{PatientID: p1.ID, ChiefComplaint: "fever"}); err != nil {
		t.Fatalf("seed visit: %v", err)
	}
	if _, err := svc.CreateVisit(context.Background(), &VisitInput{PatientID: p2.ID, ChiefComplaint: "dizziness"}); err != nil {
		t.Fatalf("seed visit: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/visits?patient_id="+p1.ID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListVisits(c); err != nil {
		t.Fatalf("ListVisits() error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Data  []Visit `json:"data"`
		Total int     `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Total != 1 || len(resp.Data) != 1 {
		t.Fatalf("expected exactly 1 visit for patient, got total=%d len=%d", resp.Total, len(resp.Data))
	}
	if resp.Data[0].PatientID != p1.ID {
		t.Errorf("expected visit for patient %s, got %s", p1.ID, resp.Data[0].PatientID)
	}
}
