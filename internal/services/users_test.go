package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/wellnest/wellnest-server/internal/auth"
	"github.com/wellnest/wellnest-server/internal/model"
	"github.com/wellnest/wellnest-server/internal/store/storetest"
)

func newUserService() *UserService {
	signer := auth.NewSigner([]byte("test-secret"), 72*time.Hour)
	return NewUserService(storetest.NewMemory(), signer, bcrypt.MinCost)
}

func TestUserService_RegisterThenLogin(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	u, token, err := svc.Register(ctx, RegisterInput{Name: "A", Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.NotEmpty(t, u.UserID)
	assert.NotEqual(t, "secret1", u.PasswordHash)

	got, token2, err := svc.Login(ctx, "a@x.com", "secret1")
	require.NoError(t, err)
	require.NotEmpty(t, token2)
	assert.Equal(t, u.UserID, got.UserID)
}

func TestUserService_LoginFailuresIndistinguishable(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	_, _, err := svc.Register(ctx, RegisterInput{Name: "A", Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	_, _, errWrongPassword := svc.Login(ctx, "a@x.com", "wrong")
	_, _, errUnknownEmail := svc.Login(ctx, "nobody@x.com", "secret1")

	assert.ErrorIs(t, errWrongPassword, model.ErrInvalidCredentials)
	assert.ErrorIs(t, errUnknownEmail, model.ErrInvalidCredentials)
	assert.Equal(t, errWrongPassword.Error(), errUnknownEmail.Error())
}

func TestUserService_DuplicateEmailCaseInsensitive(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	_, _, err := svc.Register(ctx, RegisterInput{Name: "A", Email: "A@X.com", Password: "secret1"})
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, RegisterInput{Name: "B", Email: "a@x.com  ", Password: "secret2"})
	assert.ErrorIs(t, err, model.ErrDuplicateEmail)
}

func TestUserService_RejectsShortPassword(t *testing.T) {
	svc := newUserService()

	_, _, err := svc.Register(context.Background(), RegisterInput{Name: "A", Email: "a@x.com", Password: "abc"})
	assert.ErrorIs(t, err, model.ErrValidation)
}

func TestUserService_UpdateProfilePartial(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	u, _, err := svc.Register(ctx, RegisterInput{Name: "A", Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	sport := "cycling"
	goals := []string{"sleep more"}
	got, err := svc.UpdateProfile(ctx, u.UserID, model.UserUpdate{Sport: &sport, WellnessGoals: &goals})
	require.NoError(t, err)
	require.NotNil(t, got.Sport)
	assert.Equal(t, "cycling", *got.Sport)
	assert.Equal(t, goals, got.WellnessGoals)
	assert.Equal(t, "A", got.Name)
	assert.Equal(t, u.PasswordHash, got.PasswordHash)

	_, err = svc.UpdateProfile(ctx, "no-such-user", model.UserUpdate{Sport: &sport})
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestUserService_TokenResolvesBackToUser(t *testing.T) {
	signer := auth.NewSigner([]byte("test-secret"), 72*time.Hour)
	svc := NewUserService(storetest.NewMemory(), signer, bcrypt.MinCost)

	u, token, err := svc.Register(context.Background(), RegisterInput{Name: "A", Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	uid, err := signer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, u.UserID, uid)
}
