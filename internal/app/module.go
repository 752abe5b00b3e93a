package app

import (
	"log/slog"
	"os"

	"github.com/authify-dev/authify/internal/account"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.account.enabled") {
		if err := account.New(account.Dependency{
			DBConn:     a.dbConn,
			Router:     a.router,
			Mailer:     a.mail,
			Config:     a.config,
			Instrument: a.ins,
			UUID:       a.uuid,
			Bcrypt:     a.bcrypt,
			Codes:      a.codes,
			Clock:      a.clock,
			Validator:  a.validator,
			JWT:        a.jwt,
		}); err != nil {
			slog.Error("failed to init module account", "error", err)
			os.Exit(1)
		}
	}
}
