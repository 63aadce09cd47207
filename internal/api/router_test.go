package api_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/saboracademico/backend/internal/api"
	"github.com/saboracademico/backend/internal/domain"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	push := &stubPush{sendID: "msg-1", multicastResult: domain.MulticastResult{SuccessCount: 1}}
	store := &stubStore{users: []domain.UserRecord{{Role: "chef", Token: "tok-1"}}}
	mailer := &stubMailer{}

	notifySvc := domain.NewNotificationService(push, store, zap.NewNop())
	mailSvc := domain.NewMailService(mailer, zap.NewNop())

	rt := api.NewRouter(
		api.NewNotifyHandler(notifySvc, zap.NewNop()),
		api.NewMailHandler(mailSvc, zap.NewNop()),
		api.NewHealthHandler(),
		"https://localhost",
		zap.NewNop(),
	)
	return rt.Setup()
}

func TestRouter_Routes(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
		body   string
		status int
	}{
		{http.MethodGet, "/health", "", http.StatusOK},
		{http.MethodGet, "/health/ready", "", http.StatusOK},
		{http.MethodGet, "/health/live", "", http.StatusOK},
		{http.MethodPost, "/notify", `{"token":"t","title":"T","body":"B"}`, http.StatusOK},
		{http.MethodPost, "/notify-role", `{"title":"T","body":"B","role":"chef"}`, http.StatusOK},
		{http.MethodPost, "/smend-ail", `{"aceptacion":true,"nombreUsuario":"A","mail":"a@b.c"}`, http.StatusOK},
		{http.MethodPost, "/rechazo-mail", `{"nombreUsuario":"A","mail":"a@b.c"}`, http.StatusOK},
		{http.MethodGet, "/notify", "", http.StatusMethodNotAllowed},
		{http.MethodPost, "/unknown", "{}", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/notify", nil)
	req.Header.Set("Origin", "https://localhost")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "https://localhost", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_CORSRejectsOtherOrigins(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/notify", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_SetsRequestID(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
