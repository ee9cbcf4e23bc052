package appointment

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/clinica/clinica/pkg/pagination"
)

func newTestHandler(cedulas ...string) (*Handler, *mockRepo) {
	repo := newMockRepo()
	svc := NewService(repo, newMockDirectory(cedulas...))
	return NewHandler(svc, pagination.Limits{Default: 100, Max: 200}), repo
}

func statusOf(t *testing.T, err error, rec *httptest.ResponseRecorder) int {
	t.Helper()
	if err != nil {
		var he *echo.HTTPError
		if errors.As(err, &he) {
			return he.Code
		}
		t.Fatalf("unexpected error: %v", err)
	}
	return rec.Code
}

func postJSON(t *testing.T, e *echo.Echo, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandler_Reserve(t *testing.T) {
	h, _ := newTestHandler()
	e := echo.New()

	body := `{"cedula":"1710034065","nombres":"Maria Perez","fecha":"2026-09-15","hora":"09:30","motivo":"chequeo"}`
	c, rec := postJSON(t, e, "/citas/reservar", body)

	if code := statusOf(t, h.Reserve(c), rec); code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", code, rec.Body.String())
	}

	var got Appointment
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.ID == 0 || got.AgendadaPorMedico {
		t.Errorf("unexpected appointment: %+v", got)
	}
}

func TestHandler_Reserve_Conflict(t *testing.T) {
	h, _ := newTestHandler("1710034065", "0926687856")
	e := echo.New()

	c, rec := postJSON(t, e, "/citas/reservar",
		`{"cedula":"1710034065","fecha":"2026-09-15","hora":"09:30","motivo":"chequeo"}`)
	if code := statusOf(t, h.Reserve(c), rec); code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", code)
	}

	c, rec = postJSON(t, e, "/citas/reservar",
		`{"cedula":"0926687856","fecha":"2026-09-15","hora":"09:30:00","motivo":"control"}`)
	if code := statusOf(t, h.Reserve(c), rec); code != http.StatusBadRequest {
		t.Errorf("expected 400 for taken slot, got %d", code)
	}
}

func TestHandler_Schedule(t *testing.T) {
	h, _ := newTestHandler("1710034065")
	e := echo.New()

	body := `{"fecha":"2026-09-16","hora":"11:00","motivo":"seguimiento","cedula_paciente":"1710034065"}`
	c, rec := postJSON(t, e, "/citas/agendar", body)

	if code := statusOf(t, h.Schedule(c), rec); code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", code, rec.Body.String())
	}

	var got Appointment
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !got.AgendadaPorMedico {
		t.Error("expected agendada_por_medico=true")
	}
}

func TestHandler_Get_InvalidID(t *testing.T) {
	h, _ := newTestHandler()
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/citas/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	if code := statusOf(t, h.Get(c), rec); code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", code)
	}
}

func TestHandler_Get_NotFound(t *testing.T) {
	h, _ := newTestHandler()
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/citas/42", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("42")

	if code := statusOf(t, h.Get(c), rec); code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", code)
	}
}

func TestHandler_List_FilterByFecha(t *testing.T) {
	h, repo := newTestHandler()
	e := echo.New()

	repo.appointments[1] = &Appointment{ID: 1, Fecha: "2026-09-15", Hora: "09:00:00", CedulaPaciente: "1710034065"}
	repo.appointments[2] = &Appointment{ID: 2, Fecha: "2026-09-16", Hora: "09:00:00", CedulaPaciente: "1710034065"}

	req := httptest.NewRequest(http.MethodGet, "/citas?fecha=2026-09-15", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if code := statusOf(t, h.List(c), rec); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	var items []Appointment
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(items) != 1 || items[0].ID != 1 {
		t.Errorf("unexpected filter result: %+v", items)
	}
}

func TestHandler_Delete(t *testing.T) {
	h, repo := newTestHandler()
	e := echo.New()

	repo.appointments[5] = &Appointment{ID: 5, Fecha: "2026-09-15", Hora: "09:00:00"}

	req := httptest.NewRequest(http.MethodDelete, "/citas/5", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("5")

	if code := statusOf(t, h.Delete(c), rec); code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", code)
	}
	if _, ok := repo.appointments[5]; ok {
		t.Error("appointment still present after delete")
	}
}
