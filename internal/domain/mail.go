package domain

import "context"

// MailRequest carries the fields posted by the account-review flow. The
// field names are part of the wire contract with the existing client.
type MailRequest struct {
	Aceptacion    bool   `json:"aceptacion"`
	NombreUsuario string `json:"nombreUsuario"`
	Mail          string `json:"mail"`
}

// MailReceipt is the success body for both mail endpoints.
type MailReceipt struct {
	Destinatario string `json:"destinatario"`
	Asunto       string `json:"asunto"`
	SeEnvio      bool   `json:"seEnvio"`
}

// MailSender is the outbound mail transport. Recipient validation is the
// transport's concern; a malformed address surfaces as a send error.
type MailSender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}
