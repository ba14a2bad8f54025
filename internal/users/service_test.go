package users

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/accountkeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// errRepo fails every call with a fixed error, for the storage-failure tier.
type errRepo struct {
	err error
}

func (r *errRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	return nil, r.err
}
func (r *errRepo) Create(ctx context.Context, user *User) (*User, error) {
	return nil, r.err
}
func (r *errRepo) Activate(ctx context.Context, email string, at time.Time) error {
	return r.err
}
func (r *errRepo) UpdatePassword(ctx context.Context, email string, passwordHash string) error {
	return r.err
}

// raceRepo simulates losing the insert race: the uniqueness pre-check sees no
// user, but the insert hits the unique constraint.
type raceRepo struct {
	InMemoryRepository
}

func (r *raceRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	return nil, common.ErrorNotFound
}
func (r *raceRepo) Create(ctx context.Context, user *User) (*User, error) {
	return nil, common.ErrorDuplicateEmail
}

func newTestService() (*Service, *InMemoryRepository) {
	repo := NewInMemoryRepository()
	return NewService(repo, SHA256Hasher{}), repo
}

func TestRegister_Success(t *testing.T) {
	s, repo := newTestService()
	ctx := context.Background()

	res, err := s.Register(ctx, "u@x.com", "Password123!")
	require.NoError(t, err)
	assert.True(t, res.OK())
	assert.Equal(t, MsgRegistrationSuccessful, res.Message)

	stored, err := repo.GetByEmail(ctx, "u@x.com")
	require.NoError(t, err)
	assert.False(t, stored.IsActive, "new accounts start inactive")
	assert.False(t, stored.ActivationDate.Valid)
	assert.NotEqual(t, "Password123!", stored.PasswordHash, "plaintext must never be stored")
	assert.Len(t, stored.PasswordHash, 64)
	assert.False(t, stored.RegistrationDate.IsZero())
}

func TestRegister_CheckOrder(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
		wantCode Code
		wantMsg  string
	}{
		{
			name:     "bad email wins over bad password",
			email:    "bad-email",
			password: "no-digits",
			wantCode: CodeInvalidEmail,
			wantMsg:  MsgInvalidEmail,
		},
		{
			name:     "bad email with good password",
			email:    "bad-email",
			password: "Password123!",
			wantCode: CodeInvalidEmail,
			wantMsg:  MsgInvalidEmail,
		},
		{
			name:     "weak password on good email",
			email:    "a@b.com",
			password: "password",
			wantCode: CodeWeakPassword,
			wantMsg:  MsgWeakPassword,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := s.Register(ctx, tc.email, tc.password)
			require.NoError(t, err)
			assert.False(t, res.OK())
			assert.Equal(t, tc.wantCode, res.Code)
			assert.Equal(t, tc.wantMsg, res.Message)
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()

	res, err := s.Register(ctx, "u@x.com", "Password123!")
	require.NoError(t, err)
	require.True(t, res.OK())

	// same email, different password: still rejected
	res, err = s.Register(ctx, "u@x.com", "Other456?")
	require.NoError(t, err)
	assert.Equal(t, CodeDuplicateEmail, res.Code)
	assert.Equal(t, MsgDuplicateEmail, res.Message)
}

func TestRegister_LostInsertRace(t *testing.T) {
	s := NewService(&raceRepo{}, SHA256Hasher{})

	res, err := s.Register(context.Background(), "u@x.com", "Password123!")
	require.NoError(t, err, "a lost race is a business outcome, not a storage failure")
	assert.Equal(t, CodeDuplicateEmail, res.Code)
	assert.Equal(t, MsgDuplicateEmail, res.Message)
}

func TestActivate(t *testing.T) {
	s, repo := newTestService()
	ctx := context.Background()

	res, err := s.Activate(ctx, "ghost@x.com")
	require.NoError(t, err)
	assert.Equal(t, CodeNotFound, res.Code)
	assert.Equal(t, MsgUserNotFound, res.Message)

	_, err = s.Register(ctx, "u@x.com", "Password123!")
	require.NoError(t, err)

	res, err = s.Activate(ctx, "u@x.com")
	require.NoError(t, err)
	assert.True(t, res.OK())
	assert.Equal(t, MsgUserActivated, res.Message)

	stored, err := repo.GetByEmail(ctx, "u@x.com")
	require.NoError(t, err)
	assert.True(t, stored.IsActive)
	assert.True(t, stored.ActivationDate.Valid, "activation date set iff active")
}

func TestActivate_AgainRestampsDate(t *testing.T) {
	s, repo := newTestService()
	ctx := context.Background()

	_, err := s.Register(ctx, "u@x.com", "Password123!")
	require.NoError(t, err)

	t1 := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)

	orig := nowFn
	t.Cleanup(func() { nowFn = orig })

	nowFn = func() time.Time { return t1 }
	res, err := s.Activate(ctx, "u@x.com")
	require.NoError(t, err)
	require.True(t, res.OK())

	nowFn = func() time.Time { return t2 }
	res, err = s.Activate(ctx, "u@x.com")
	require.NoError(t, err)
	require.True(t, res.OK(), "re-activation is not an error")

	stored, err := repo.GetByEmail(ctx, "u@x.com")
	require.NoError(t, err)
	assert.Equal(t, t2, stored.ActivationDate.Time.UTC())
}

func TestAuthenticate_Lifecycle(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()

	res, err := s.Register(ctx, "u@x.com", "Password123!")
	require.NoError(t, err)
	require.True(t, res.OK())

	// before activation
	res, err = s.Authenticate(ctx, "u@x.com", "Password123!")
	require.NoError(t, err)
	assert.Equal(t, CodeInvalidCredentials, res.Code)
	assert.Equal(t, MsgInvalidCredentials, res.Message)

	res, err = s.Activate(ctx, "u@x.com")
	require.NoError(t, err)
	require.True(t, res.OK())

	// after activation
	res, err = s.Authenticate(ctx, "u@x.com", "Password123!")
	require.NoError(t, err)
	assert.True(t, res.OK())
	assert.Equal(t, MsgAuthenticationSuccessful, res.Message)
}

func TestAuthenticate_UniformFailureMessage(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()

	_, err := s.Register(ctx, "u@x.com", "Password123!")
	require.NoError(t, err)
	_, err = s.Activate(ctx, "u@x.com")
	require.NoError(t, err)
	_, err = s.Register(ctx, "inactive@x.com", "Password123!")
	require.NoError(t, err)

	// unknown user, wrong password, and inactive account must be
	// indistinguishable from the caller's side
	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "unknown email", email: "ghost@x.com", password: "Password123!"},
		{name: "wrong password", email: "u@x.com", password: "Wrong123!"},
		{name: "inactive account", email: "inactive@x.com", password: "Password123!"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := s.Authenticate(ctx, tc.email, tc.password)
			require.NoError(t, err)
			assert.Equal(t, CodeInvalidCredentials, res.Code)
			assert.Equal(t, MsgInvalidCredentials, res.Message)
		})
	}
}

func TestResetPassword(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()

	// complexity is checked before existence
	res, err := s.ResetPassword(ctx, "ghost@x.com", "weak")
	require.NoError(t, err)
	assert.Equal(t, CodeWeakPassword, res.Code)
	assert.Equal(t, MsgWeakPassword, res.Message)

	res, err = s.ResetPassword(ctx, "ghost@x.com", "Password123!")
	require.NoError(t, err)
	assert.Equal(t, CodeNotFound, res.Code)
	assert.Equal(t, MsgUserNotFound, res.Message)

	_, err = s.Register(ctx, "u@x.com", "Old123!")
	require.NoError(t, err)
	_, err = s.Activate(ctx, "u@x.com")
	require.NoError(t, err)

	res, err = s.ResetPassword(ctx, "u@x.com", "New456?")
	require.NoError(t, err)
	assert.True(t, res.OK())
	assert.Equal(t, MsgPasswordReset, res.Message)

	// old credential no longer works, new one does
	res, err = s.Authenticate(ctx, "u@x.com", "Old123!")
	require.NoError(t, err)
	assert.False(t, res.OK())

	res, err = s.Authenticate(ctx, "u@x.com", "New456?")
	require.NoError(t, err)
	assert.True(t, res.OK())
}

func TestService_StorageFailuresAreErrors(t *testing.T) {
	boom := errors.New("db down")
	s := NewService(&errRepo{err: boom}, SHA256Hasher{})
	ctx := context.Background()

	tests := []struct {
		name string
		call func() (Result, error)
	}{
		{name: "register", call: func() (Result, error) { return s.Register(ctx, "u@x.com", "Password123!") }},
		{name: "activate", call: func() (Result, error) { return s.Activate(ctx, "u@x.com") }},
		{name: "authenticate", call: func() (Result, error) { return s.Authenticate(ctx, "u@x.com", "Password123!") }},
		{name: "reset", call: func() (Result, error) { return s.ResetPassword(ctx, "u@x.com", "Password123!") }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := tc.call()
			require.Error(t, err)
			assert.ErrorIs(t, err, boom)
			assert.Equal(t, Result{}, res, "no business message on storage failure")
		})
	}
}

func TestService_WithArgon2idHasher(t *testing.T) {
	s := NewService(NewInMemoryRepository(), NewArgon2idHasher())
	ctx := context.Background()

	res, err := s.Register(ctx, "u@x.com", "Password123!")
	require.NoError(t, err)
	require.True(t, res.OK())

	_, err = s.Activate(ctx, "u@x.com")
	require.NoError(t, err)

	res, err = s.Authenticate(ctx, "u@x.com", "Password123!")
	require.NoError(t, err)
	assert.True(t, res.OK())

	res, err = s.Authenticate(ctx, "u@x.com", "Wrong123!")
	require.NoError(t, err)
	assert.False(t, res.OK())
}
