package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/authify-dev/authify/internal/account/entity"
	"github.com/authify-dev/authify/internal/pkg/config"
	"github.com/authify-dev/authify/internal/pkg/goerror"
	"github.com/authify-dev/authify/internal/pkg/hash"
	"github.com/authify-dev/authify/internal/pkg/instrument"
	"github.com/authify-dev/authify/internal/pkg/jwt"
	"github.com/authify-dev/authify/internal/pkg/validator"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestConfig() (config.Config, error) {
	return config.NewViperFromBytes("yaml", []byte(`
modules:
  account:
    reset_code_ttl_minutes: 15
    verify_code_ttl_hours: 24
`))
}

type fakeRepo struct {
	accounts map[string]*entity.Account

	getErr     error
	createErr  error
	setErr     error
	consumeErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{accounts: make(map[string]*entity.Account)}
}

func (f *fakeRepo) GetAccountByEmail(_ context.Context, email string) (*entity.Account, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}

	acc, ok := f.accounts[email]
	if !ok {
		return nil, goerror.ErrNotFound
	}

	cp := *acc
	if acc.ResetChallenge != nil {
		ch := *acc.ResetChallenge
		cp.ResetChallenge = &ch
	}
	if acc.VerifyChallenge != nil {
		ch := *acc.VerifyChallenge
		cp.VerifyChallenge = &ch
	}
	return &cp, nil
}

func (f *fakeRepo) CreateAccount(_ context.Context, acc entity.Account) error {
	if f.createErr != nil {
		return f.createErr
	}

	if _, ok := f.accounts[acc.Email]; ok {
		return goerror.ErrConflict
	}

	f.accounts[acc.Email] = &acc
	return nil
}

func (f *fakeRepo) SetResetChallenge(_ context.Context, email string, ch entity.Challenge) error {
	if f.setErr != nil {
		return f.setErr
	}

	acc, ok := f.accounts[email]
	if !ok {
		return goerror.ErrNotFound
	}

	acc.ResetChallenge = &ch
	return nil
}

func (f *fakeRepo) SetVerifyChallenge(_ context.Context, email string, ch entity.Challenge) error {
	if f.setErr != nil {
		return f.setErr
	}

	acc, ok := f.accounts[email]
	if !ok {
		return goerror.ErrNotFound
	}

	acc.VerifyChallenge = &ch
	return nil
}

func (f *fakeRepo) ConsumeResetChallenge(_ context.Context, email, code, newPasswordHash string) (bool, error) {
	if f.consumeErr != nil {
		return false, f.consumeErr
	}

	acc, ok := f.accounts[email]
	if !ok || !acc.ResetChallenge.Matches(code) {
		return false, nil
	}

	acc.Password = newPasswordHash
	acc.ResetChallenge = nil
	return true, nil
}

func (f *fakeRepo) ConsumeVerifyChallenge(_ context.Context, email, code string) (bool, error) {
	if f.consumeErr != nil {
		return false, f.consumeErr
	}

	acc, ok := f.accounts[email]
	if !ok || !acc.VerifyChallenge.Matches(code) {
		return false, nil
	}

	acc.IsVerified = true
	acc.VerifyChallenge = nil
	return true, nil
}

type sentMail struct {
	kind  string
	email string
	code  string
}

type fakeNotifier struct {
	sent    []sentMail
	sendErr error
}

func (f *fakeNotifier) SendPasswordResetCode(_ context.Context, email, code string) error {
	if f.sendErr != nil {
		return f.sendErr
	}

	f.sent = append(f.sent, sentMail{kind: "reset", email: email, code: code})
	return nil
}

func (f *fakeNotifier) SendVerificationCode(_ context.Context, email, code string) error {
	if f.sendErr != nil {
		return f.sendErr
	}

	f.sent = append(f.sent, sentMail{kind: "verify", email: email, code: code})
	return nil
}

type fakeClock struct {
	at time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.at
}

type fakeCodes struct {
	code string
	err  error
}

func (f *fakeCodes) Generate() (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.code, nil
}

type fakeUUID struct {
	id string
}

func (f *fakeUUID) Generate() string {
	return f.id
}

type fakeJWT struct {
	token string
	err   error
}

func (f *fakeJWT) Generate(string, string) (string, error) {
	return f.token, f.err
}

func (f *fakeJWT) Verify(string) (jwt.Claims, error) {
	return jwt.Claims{}, errors.New("not implemented")
}

type fixture struct {
	uc       *Usecase
	repo     *fakeRepo
	notifier *fakeNotifier
	clock    *fakeClock
	codes    *fakeCodes
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	v, err := validator.NewV10Validator()
	require.NoError(t, err)

	cfg, err := newTestConfig()
	require.NoError(t, err)

	repo := newFakeRepo()
	notif := &fakeNotifier{}
	clk := &fakeClock{at: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)}
	codes := &fakeCodes{code: "123456"}

	uc := New(Dependency{
		RepoDB:     repo,
		Notifier:   notif,
		Validator:  v,
		Config:     cfg,
		Bcrypt:     hash.NewBcrypt(bcrypt.MinCost, ""),
		UUID:       &fakeUUID{id: "0195d7a0-0000-7000-8000-000000000001"},
		Codes:      codes,
		Clock:      clk,
		JWT:        &fakeJWT{token: "signed-token"},
		Instrument: instrument.NewNoop(),
	})

	return &fixture{uc: uc, repo: repo, notifier: notif, clock: clk, codes: codes}
}

// seedAccount inserts an account with a known bcrypt-hashed password.
func (f *fixture) seedAccount(t *testing.T, email, password string, verified bool) *entity.Account {
	t.Helper()

	hashed, err := hash.NewBcrypt(bcrypt.MinCost, "").Hash(password)
	require.NoError(t, err)

	acc := &entity.Account{
		ID:         "acc-" + email,
		Email:      email,
		FullName:   "Seed Account",
		Password:   string(hashed),
		IsVerified: verified,
	}
	f.repo.accounts[email] = acc
	return acc
}

func assertCode(t *testing.T, err error, code goerror.Code) {
	t.Helper()

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	require.Equal(t, code, gerr.Code())
}
