package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/saboracademico/backend/internal/api"
	"github.com/saboracademico/backend/internal/domain"
)

type stubMailer struct {
	err     error
	to      string
	subject string
}

func (s *stubMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	s.to = to
	s.subject = subject
	return s.err
}

func newMailHandler(mailer domain.MailSender) *api.MailHandler {
	svc := domain.NewMailService(mailer, zap.NewNop())
	return api.NewMailHandler(svc, zap.NewNop())
}

func TestSendDecision_AcceptedSubject(t *testing.T) {
	mailer := &stubMailer{}
	h := newMailHandler(mailer)

	rec := postJSON(t, h.SendDecision, `{"aceptacion":true,"nombreUsuario":"Ana","mail":"ana@example.com"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.SubjectAccepted, mailer.subject)

	var receipt domain.MailReceipt
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &receipt))
	assert.True(t, receipt.SeEnvio)
	assert.Equal(t, "ana@example.com", receipt.Destinatario)
}

func TestSendDecision_PendingSubjectWhenFlagAbsent(t *testing.T) {
	mailer := &stubMailer{}
	h := newMailHandler(mailer)

	rec := postJSON(t, h.SendDecision, `{"nombreUsuario":"Luis","mail":"luis@example.com"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.SubjectPending, mailer.subject)
}

func TestSendDecision_FailureStillReturns200(t *testing.T) {
	mailer := &stubMailer{err: errors.New("535 authentication failed")}
	h := newMailHandler(mailer)

	rec := postJSON(t, h.SendDecision, `{"aceptacion":true,"nombreUsuario":"Ana","mail":"ana@example.com"}`)

	// Failure travels in the body, never in the status code.
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Mensaje string `json:"mensaje"`
		SeEnvio bool   `json:"seEnvio"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.SeEnvio)
	assert.Contains(t, body.Mensaje, "authentication failed")
}

func TestSendRejection_IgnoresAcceptanceFlag(t *testing.T) {
	for _, body := range []string{
		`{"aceptacion":true,"nombreUsuario":"Eva","mail":"eva@example.com"}`,
		`{"aceptacion":false,"nombreUsuario":"Eva","mail":"eva@example.com"}`,
	} {
		mailer := &stubMailer{}
		h := newMailHandler(mailer)

		rec := postJSON(t, h.SendRejection, body)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, domain.SubjectRejection, mailer.subject)
	}
}

func TestSendRejection_FailureStillReturns200(t *testing.T) {
	mailer := &stubMailer{err: errors.New("connection refused")}
	h := newMailHandler(mailer)

	rec := postJSON(t, h.SendRejection, `{"nombreUsuario":"Eva","mail":"eva@example.com"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Mensaje string `json:"mensaje"`
		SeEnvio bool   `json:"seEnvio"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.SeEnvio)
}

func TestSendDecision_MalformedBody(t *testing.T) {
	h := newMailHandler(&stubMailer{})

	rec := postJSON(t, h.SendDecision, `{`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
