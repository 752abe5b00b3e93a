package usecase

import (
	"context"

	"github.com/authify-dev/authify/internal/account/entity"
	"github.com/authify-dev/authify/internal/pkg/clock"
	"github.com/authify-dev/authify/internal/pkg/config"
	"github.com/authify-dev/authify/internal/pkg/hash"
	"github.com/authify-dev/authify/internal/pkg/instrument"
	"github.com/authify-dev/authify/internal/pkg/jwt"
	"github.com/authify-dev/authify/internal/pkg/otp"
	"github.com/authify-dev/authify/internal/pkg/uid"
	"github.com/authify-dev/authify/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type repoDB interface {
	GetAccountByEmail(ctx context.Context, email string) (*entity.Account, error)
	CreateAccount(ctx context.Context, acc entity.Account) error

	SetResetChallenge(ctx context.Context, email string, ch entity.Challenge) error
	SetVerifyChallenge(ctx context.Context, email string, ch entity.Challenge) error

	// ConsumeResetChallenge atomically clears the reset slot and replaces the
	// password hash, guarded on the stored code still being the given one.
	// It reports false when another confirm already consumed the code.
	ConsumeResetChallenge(ctx context.Context, email, code, newPasswordHash string) (bool, error)

	// ConsumeVerifyChallenge atomically clears the verify slot and marks the
	// account verified, with the same guard semantics.
	ConsumeVerifyChallenge(ctx context.Context, email, code string) (bool, error)
}

type notifier interface {
	SendPasswordResetCode(ctx context.Context, email, code string) error
	SendVerificationCode(ctx context.Context, email, code string) error
}

// Usecase implements the account workflows: registration, login, profile,
// password reset, and email verification.
type Usecase struct {
	repoDB    repoDB
	notifier  notifier
	validator validator.Validator
	cfg       config.Config
	bcrypt    hash.Hash
	uuid      uid.StringID
	codes     otp.Generator
	clock     clock.Clocker
	jwt       jwt.JWT
	ins       instrument.Instrumentation
}

// Dependency lists everything a Usecase needs.
type Dependency struct {
	RepoDB     repoDB
	Notifier   notifier
	Validator  validator.Validator
	Config     config.Config
	Bcrypt     hash.Hash
	UUID       uid.StringID
	Codes      otp.Generator
	Clock      clock.Clocker
	JWT        jwt.JWT
	Instrument instrument.Instrumentation
}

// New wires a Usecase from its dependencies.
func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:    dep.RepoDB,
		notifier:  dep.Notifier,
		validator: dep.Validator,
		cfg:       dep.Config,
		bcrypt:    dep.Bcrypt,
		uuid:      dep.UUID,
		codes:     dep.Codes,
		clock:     dep.Clock,
		jwt:       dep.JWT,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("account.usecase").Start(ctx, name)
}
