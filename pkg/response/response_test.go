package response_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/saboracademico/backend/pkg/response"
)

func TestText(t *testing.T) {
	rec := httptest.NewRecorder()
	response.Text(rec, http.StatusNotFound, "No hay usuarios a los que enviar un mensaje")

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "text/plain; charset=utf-8" {
		t.Errorf("unexpected content type %q", got)
	}
	if rec.Body.String() != "No hay usuarios a los que enviar un mensaje" {
		t.Errorf("unexpected body %q", rec.Body.String())
	}
}

func TestOK(t *testing.T) {
	rec := httptest.NewRecorder()
	response.OK(rec, map[string]bool{"seEnvio": true})

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("unexpected content type %q", got)
	}

	var body map[string]bool
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if !body["seEnvio"] {
		t.Error("expected seEnvio true")
	}
}

func TestBadRequest(t *testing.T) {
	rec := httptest.NewRecorder()
	response.BadRequest(rec, "invalid request body")

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rec.Code)
	}
	if rec.Body.String() != "invalid request body" {
		t.Errorf("unexpected body %q", rec.Body.String())
	}
}
