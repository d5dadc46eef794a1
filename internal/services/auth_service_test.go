package services

import (
	"testing"

	"unigig_backend/internal/auth"
	"unigig_backend/internal/models"
	"unigig_backend/internal/services/dto"
	"unigig_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	auth.InitJWT("test-secret", 60)
}

func TestRegisterAndLogin(t *testing.T) {
	sc, _ := newTestContainer(t)

	reg, err := sc.AuthService.Register(&dto.RegisterRequest{
		Name:     "Aigerim",
		Email:    "Aigerim@Test.IO",
		Password: "sup3r-secret",
		Role:     models.UserRoleStudent,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, reg.Token)
	assert.Equal(t, "aigerim@test.io", reg.User.Email)
	assert.Equal(t, models.UserRoleStudent, reg.User.Role)

	claims, err := auth.ParseToken(reg.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, claims.UserID)
	assert.Equal(t, string(models.UserRoleStudent), claims.Role)

	login, err := sc.AuthService.Login(&dto.LoginRequest{
		Email:    "aigerim@test.io",
		Password: "sup3r-secret",
	})
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, login.User.ID)
}

func TestRegisterDuplicateEmailCaseInsensitive(t *testing.T) {
	sc, _ := newTestContainer(t)

	_, err := sc.AuthService.Register(&dto.RegisterRequest{
		Name:     "First",
		Email:    "taken@test.io",
		Password: "sup3r-secret",
		Role:     models.UserRoleStudent,
	})
	require.NoError(t, err)

	_, err = sc.AuthService.Register(&dto.RegisterRequest{
		Name:     "Second",
		Email:    "TAKEN@test.io",
		Password: "an0ther-secret",
		Role:     models.UserRoleProvider,
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestRegisterWeakPassword(t *testing.T) {
	sc, _ := newTestContainer(t)

	_, err := sc.AuthService.Register(&dto.RegisterRequest{
		Name:     "Short",
		Email:    "short@test.io",
		Password: "1234567",
		Role:     models.UserRoleStudent,
	})
	assert.ErrorIs(t, err, apperrors.ErrWeakPassword)
}

func TestRegisterInvalidRole(t *testing.T) {
	sc, _ := newTestContainer(t)

	_, err := sc.AuthService.Register(&dto.RegisterRequest{
		Name:     "Nobody",
		Email:    "nobody@test.io",
		Password: "sup3r-secret",
		Role:     models.UserRole("admin"),
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidUserRole)
}

func TestLoginWrongPassword(t *testing.T) {
	sc, _ := newTestContainer(t)

	_, err := sc.AuthService.Register(&dto.RegisterRequest{
		Name:     "Victim",
		Email:    "victim@test.io",
		Password: "sup3r-secret",
		Role:     models.UserRoleStudent,
	})
	require.NoError(t, err)

	_, err = sc.AuthService.Login(&dto.LoginRequest{
		Email:    "victim@test.io",
		Password: "wrong-pass",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = sc.AuthService.Login(&dto.LoginRequest{
		Email:    "stranger@test.io",
		Password: "sup3r-secret",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestGetMeIncludesPrivateFields(t *testing.T) {
	sc, db := newTestContainer(t)

	user := createTestUser(t, db, "Private", "private@test.io", models.UserRoleStudent)
	require.NoError(t, db.Model(user).Updates(map[string]interface{}{
		"visibility": models.VisibilityPrivate,
		"bio":        "hidden bio",
	}).Error)

	me, err := sc.AuthService.GetMe(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "hidden bio", me.Bio)
	assert.Equal(t, "private@test.io", me.Email)
}
