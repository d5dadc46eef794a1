package services

import (
	"testing"

	"unigig_backend/internal/models"
	"unigig_backend/internal/services/dto"
	"unigig_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfileVisibility(t *testing.T) {
	sc, db := newTestContainer(t)

	owner := createTestUser(t, db, "Owner", "owner@test.io", models.UserRoleStudent)
	require.NoError(t, db.Model(owner).Updates(map[string]interface{}{
		"visibility": models.VisibilityPrivate,
		"bio":        "secret bio",
		"job_title":  "intern",
	}).Error)
	stranger := createTestUser(t, db, "Stranger", "stranger@test.io", models.UserRoleProvider)

	// владелец видит всё
	own, err := sc.UserService.GetProfile(owner.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "secret bio", own.Bio)
	assert.Equal(t, "owner@test.io", own.Email)

	// посторонний — только имя, роль и счётчик
	public, err := sc.UserService.GetProfile(owner.ID, stranger.ID)
	require.NoError(t, err)
	assert.Equal(t, "Owner", public.Name)
	assert.Empty(t, public.Bio)
	assert.Empty(t, public.JobTitle)
	assert.Empty(t, public.Email)
}

func TestGetProfilePublicShowsBio(t *testing.T) {
	sc, db := newTestContainer(t)

	owner := createTestUser(t, db, "Open", "open@test.io", models.UserRoleStudent)
	require.NoError(t, db.Model(owner).Update("bio", "visible bio").Error)

	resp, err := sc.UserService.GetProfile(owner.ID, "")
	require.NoError(t, err)
	assert.Equal(t, "visible bio", resp.Bio)
	// email никогда не показывается посторонним
	assert.Empty(t, resp.Email)
}

func TestGetProfileMissingUser(t *testing.T) {
	sc, _ := newTestContainer(t)

	_, err := sc.UserService.GetProfile("no-such-user", "")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUpdateProfileMergesOnlyProvidedFields(t *testing.T) {
	sc, db := newTestContainer(t)

	user := createTestUser(t, db, "Before", "before@test.io", models.UserRoleStudent)
	require.NoError(t, db.Model(user).Update("bio", "keep me").Error)

	newName := "After"
	visibility := models.VisibilityPrivate
	resp, err := sc.UserService.UpdateProfile(user.ID, &dto.UpdateUserRequest{
		Name:       &newName,
		Visibility: &visibility,
		Links:      []string{"https://github.com/after"},
	})
	require.NoError(t, err)
	assert.Equal(t, "After", resp.Name)
	assert.Equal(t, models.VisibilityPrivate, resp.Visibility)
	assert.Equal(t, "keep me", resp.Bio)
	assert.Equal(t, []string{"https://github.com/after"}, resp.Links)
}

func TestUpdateProfileRejectsUnknownVisibility(t *testing.T) {
	sc, db := newTestContainer(t)
	user := createTestUser(t, db, "User", "user@test.io", models.UserRoleStudent)

	bad := models.Visibility("friends-only")
	_, err := sc.UserService.UpdateProfile(user.ID, &dto.UpdateUserRequest{Visibility: &bad})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.HTTPCode)
}

func TestGetPopularityRecomputesFresh(t *testing.T) {
	sc, db := newTestContainer(t)

	author := createTestUser(t, db, "Author", "author@test.io", models.UserRoleStudent)
	fan := createTestUser(t, db, "Fan", "fan@test.io", models.UserRoleProvider)
	post := createTestPost(t, db, author.ID, "popular")
	addLike(t, db, post.ID, fan.ID)

	// устаревшее значение в сторе не должно пережить запрос
	require.NoError(t, db.Model(author).Update("popularity_score", 99).Error)

	score, err := sc.UserService.GetPopularity(author.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, score)

	var stored models.User
	require.NoError(t, db.First(&stored, "id = ?", author.ID).Error)
	assert.Equal(t, 1, stored.PopularityScore)
}
