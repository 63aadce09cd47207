package domain

import (
	"context"

	"go.uber.org/zap"
)

// MailService renders the fixed account-status messages and hands them to
// the mail transport. It holds no state beyond its dependencies.
type MailService struct {
	mailer MailSender
	logger *zap.Logger
}

func NewMailService(mailer MailSender, logger *zap.Logger) *MailService {
	return &MailService{
		mailer: mailer,
		logger: logger,
	}
}

// SendDecision mails the accepted or pending-approval message depending on
// the request's acceptance flag.
func (s *MailService) SendDecision(ctx context.Context, req MailRequest) (MailReceipt, error) {
	subject, body, err := DecisionMessage(req.Aceptacion, req.NombreUsuario)
	if err != nil {
		return MailReceipt{}, err
	}
	return s.send(ctx, req.Mail, subject, body)
}

// SendRejection always mails the rejection message. The acceptance flag on
// the request is ignored here on purpose.
func (s *MailService) SendRejection(ctx context.Context, req MailRequest) (MailReceipt, error) {
	subject, body, err := RejectionMessage(req.NombreUsuario)
	if err != nil {
		return MailReceipt{}, err
	}
	return s.send(ctx, req.Mail, subject, body)
}

func (s *MailService) send(ctx context.Context, to, subject, body string) (MailReceipt, error) {
	if err := s.mailer.Send(ctx, to, subject, body); err != nil {
		return MailReceipt{}, err
	}

	s.logger.Info("mail sent",
		zap.String("to", to),
		zap.String("subject", subject),
	)
	return MailReceipt{
		Destinatario: to,
		Asunto:       subject,
		SeEnvio:      true,
	}, nil
}
