package email

import (
	"context"
	"fmt"

	"github.com/authify-dev/authify/internal/pkg/instrument"
	"github.com/authify-dev/authify/internal/pkg/mail"
	"go.opentelemetry.io/otel/codes"
)

type Mail struct {
	client mail.Mail
	ins    instrument.Instrumentation
}

func New(client mail.Mail, ins instrument.Instrumentation) *Mail {
	return &Mail{client: client, ins: ins}
}

// SendPasswordResetCode emails the one-time password reset code.
func (m *Mail) SendPasswordResetCode(ctx context.Context, email, code string) error {
	return m.send(ctx, "SendPasswordResetCode", mail.Message{
		To:      []string{email},
		Subject: "Reset your password",
		TextBody: fmt.Sprintf(
			"Your password reset code is %s. It expires in 15 minutes. "+
				"If you did not request this, you can ignore this email.", code),
		HTMLBody: fmt.Sprintf(
			"<p>Your password reset code is <strong>%s</strong>.</p>"+
				"<p>It expires in 15 minutes. If you did not request this, you can ignore this email.</p>", code),
	})
}

// SendVerificationCode emails the one-time email verification code.
func (m *Mail) SendVerificationCode(ctx context.Context, email, code string) error {
	return m.send(ctx, "SendVerificationCode", mail.Message{
		To:      []string{email},
		Subject: "Verify your email address",
		TextBody: fmt.Sprintf(
			"Your verification code is %s. It expires in 24 hours.", code),
		HTMLBody: fmt.Sprintf(
			"<p>Your verification code is <strong>%s</strong>.</p>"+
				"<p>It expires in 24 hours.</p>", code),
	})
}

func (m *Mail) send(ctx context.Context, name string, msg mail.Message) error {
	ctx, span := m.ins.Tracer("account.outbound.email").Start(ctx, name)
	defer span.End()

	if err := m.client.Send(ctx, msg); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
