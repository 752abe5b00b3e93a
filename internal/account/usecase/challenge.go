package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/authify-dev/authify/internal/account/entity"
	"github.com/authify-dev/authify/internal/pkg/goerror"
)

// issueChallenge mints a fresh one-time code expiring after window. The expiry
// is fixed at issue time and is never extended afterwards.
func (s *Usecase) issueChallenge(ctx context.Context, window time.Duration) (entity.Challenge, error) {
	code, err := s.codes.Generate()
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate one-time code", "error", err)
		return entity.Challenge{}, goerror.NewServer(err)
	}

	return entity.Challenge{
		Code:      code,
		ExpiresAt: s.clock.Now().Add(window).UnixMilli(),
	}, nil
}

// checkChallenge runs the validation ladder shared by both confirm flows.
// A missing or mismatched code is rejected before expiry is ever looked at,
// so a caller probing with a wrong code learns nothing about expiry.
func checkChallenge(ch *entity.Challenge, code string, now time.Time, invalidMsg, expiredMsg string) error {
	if !ch.Matches(code) {
		return goerror.NewBusiness(invalidMsg, goerror.CodeUnauthorized)
	}

	if ch.Expired(now) {
		return goerror.NewBusiness(expiredMsg, goerror.CodeGone)
	}

	return nil
}
