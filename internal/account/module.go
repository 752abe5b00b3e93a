package account

import (
	"github.com/authify-dev/authify/internal/account/inbound"
	"github.com/authify-dev/authify/internal/account/outbound/db"
	"github.com/authify-dev/authify/internal/account/outbound/email"
	"github.com/authify-dev/authify/internal/account/usecase"
	"github.com/authify-dev/authify/internal/pkg/clock"
	"github.com/authify-dev/authify/internal/pkg/config"
	"github.com/authify-dev/authify/internal/pkg/hash"
	"github.com/authify-dev/authify/internal/pkg/instrument"
	"github.com/authify-dev/authify/internal/pkg/jwt"
	"github.com/authify-dev/authify/internal/pkg/mail"
	"github.com/authify-dev/authify/internal/pkg/otp"
	"github.com/authify-dev/authify/internal/pkg/router"
	"github.com/authify-dev/authify/internal/pkg/uid"
	"github.com/authify-dev/authify/internal/pkg/validator"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Mailer     mail.Mail                  `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	UUID       uid.StringID               `validate:"required"`
	Bcrypt     hash.Hash                  `validate:"required"`
	Codes      otp.Generator              `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
	JWT        jwt.JWT                    `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	dbAccount := db.NewDB(dep.DBConn, dep.Instrument)
	mailAccount := email.New(dep.Mailer, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:     dbAccount,
		Notifier:   mailAccount,
		Validator:  dep.Validator,
		Config:     dep.Config,
		Bcrypt:     dep.Bcrypt,
		UUID:       dep.UUID,
		Codes:      dep.Codes,
		Clock:      dep.Clock,
		JWT:        dep.JWT,
		Instrument: dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
