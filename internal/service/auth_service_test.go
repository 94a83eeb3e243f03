package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/campushq/college-portal-api/internal/models"
	"github.com/campushq/college-portal-api/internal/repository"
	"github.com/campushq/college-portal-api/pkg/config"
	appErrors "github.com/campushq/college-portal-api/pkg/errors"
)

func testSessionConfig() config.SessionConfig {
	return config.SessionConfig{
		Secret:      "test_secret",
		TokenExpiry: time.Hour,
		Issuer:      "college-portal-api",
	}
}

func authFixture(t *testing.T) (*AuthService, *repository.Store) {
	t.Helper()
	store := repository.New()
	hash, err := bcrypt.GenerateFromPassword([]byte("student123"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, store.InsertUser(models.User{
		ID: "u1", Email: "alice@college.edu", PasswordHash: string(hash),
		Role: models.RoleStudent, Name: "Alice",
	}))
	return NewAuthService(store, nil, nil, testSessionConfig()), store
}

func TestLoginIssuesValidToken(t *testing.T) {
	svc, _ := authFixture(t)

	res, err := svc.Login(context.Background(), models.LoginRequest{Email: "alice@college.edu", Password: "student123"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, int64(3600), res.ExpiresIn)
	assert.Equal(t, models.RoleStudent, res.User.Role)

	claims, err := svc.ValidateToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, models.RoleStudent, claims.Role)
	assert.Equal(t, "Alice", claims.Name)
}

func TestLoginWrongPasswordAndUnknownEmailLookAlike(t *testing.T) {
	svc, _ := authFixture(t)

	_, badPass := svc.Login(context.Background(), models.LoginRequest{Email: "alice@college.edu", Password: "nope12"})
	require.Error(t, badPass)
	_, badEmail := svc.Login(context.Background(), models.LoginRequest{Email: "nobody@college.edu", Password: "student123"})
	require.Error(t, badEmail)

	assert.Equal(t, appErrors.FromError(badPass).Code, appErrors.FromError(badEmail).Code)
	assert.Equal(t, appErrors.FromError(badPass).Status, appErrors.FromError(badEmail).Status)
}

func TestLoginCaseSensitiveEmail(t *testing.T) {
	svc, _ := authFixture(t)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "Alice@college.edu", Password: "student123"})
	assert.Error(t, err)
}

func TestLoginRejectsMalformedPayload(t *testing.T) {
	svc, _ := authFixture(t)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "not-an-email", Password: "x"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	svc, _ := authFixture(t)

	res, err := svc.Login(context.Background(), models.LoginRequest{Email: "alice@college.edu", Password: "student123"})
	require.NoError(t, err)

	_, err = svc.ValidateToken(res.Token + "x")
	assert.Error(t, err)

	other := NewAuthService(repository.New(), nil, nil, config.SessionConfig{Secret: "different", TokenExpiry: time.Hour})
	_, err = other.ValidateToken(res.Token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	cfg := testSessionConfig()
	cfg.TokenExpiry = -time.Minute
	store := repository.New()
	hash, err := bcrypt.GenerateFromPassword([]byte("student123"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, store.InsertUser(models.User{
		ID: "u1", Email: "alice@college.edu", PasswordHash: string(hash), Role: models.RoleStudent,
	}))
	svc := NewAuthService(store, nil, nil, cfg)

	res, err := svc.Login(context.Background(), models.LoginRequest{Email: "alice@college.edu", Password: "student123"})
	require.NoError(t, err)

	_, err = svc.ValidateToken(res.Token)
	assert.Error(t, err)
}
