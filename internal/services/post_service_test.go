package services

import (
	"testing"

	"unigig_backend/internal/models"
	"unigig_backend/internal/services/dto"
	"unigig_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikePostIsIdempotent(t *testing.T) {
	sc, db := newTestContainer(t)

	author := createTestUser(t, db, "Author", "author@test.io", models.UserRoleStudent)
	fan := createTestUser(t, db, "Fan", "fan@test.io", models.UserRoleProvider)
	post := createTestPost(t, db, author.ID, "likeable")

	require.NoError(t, sc.PostService.LikePost(fan.ID, post.ID))
	// повторный лайк — no-op, не ошибка
	require.NoError(t, sc.PostService.LikePost(fan.ID, post.ID))

	resp, err := sc.PostService.GetPost(post.ID, fan.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, resp.Likes)
	assert.True(t, resp.LikedByViewer)
}

func TestLikeOwnPostRejected(t *testing.T) {
	sc, db := newTestContainer(t)

	author := createTestUser(t, db, "Author", "author@test.io", models.UserRoleStudent)
	post := createTestPost(t, db, author.ID, "mine")

	err := sc.PostService.LikePost(author.ID, post.ID)
	assert.ErrorIs(t, err, apperrors.ErrCannotLikeOwnPost)
}

func TestUnlikePostIsIdempotent(t *testing.T) {
	sc, db := newTestContainer(t)

	author := createTestUser(t, db, "Author", "author@test.io", models.UserRoleStudent)
	fan := createTestUser(t, db, "Fan", "fan@test.io", models.UserRoleProvider)
	post := createTestPost(t, db, author.ID, "toggle")

	// снятие несуществующего лайка — no-op
	require.NoError(t, sc.PostService.UnlikePost(fan.ID, post.ID))

	require.NoError(t, sc.PostService.LikePost(fan.ID, post.ID))
	require.NoError(t, sc.PostService.UnlikePost(fan.ID, post.ID))
	require.NoError(t, sc.PostService.UnlikePost(fan.ID, post.ID))

	resp, err := sc.PostService.GetPost(post.ID, fan.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, resp.Likes)
	assert.False(t, resp.LikedByViewer)
}

func TestLikeMissingPost(t *testing.T) {
	sc, db := newTestContainer(t)
	fan := createTestUser(t, db, "Fan", "fan@test.io", models.UserRoleStudent)

	err := sc.PostService.LikePost(fan.ID, "no-such-post")
	assert.ErrorIs(t, err, apperrors.ErrPostNotFound)
}

func TestUpdatePostOwnerGate(t *testing.T) {
	sc, db := newTestContainer(t)

	author := createTestUser(t, db, "Author", "author@test.io", models.UserRoleStudent)
	intruder := createTestUser(t, db, "Intruder", "intruder@test.io", models.UserRoleStudent)
	post := createTestPost(t, db, author.ID, "original")

	newTitle := "edited"
	_, err := sc.PostService.UpdatePost(post.ID, intruder.ID, &dto.UpdatePostRequest{Title: &newTitle})
	assert.ErrorIs(t, err, apperrors.ErrNotOwner)

	updated, err := sc.PostService.UpdatePost(post.ID, author.ID, &dto.UpdatePostRequest{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Title)
}

func TestDeletePostRemovesLikes(t *testing.T) {
	sc, db := newTestContainer(t)

	author := createTestUser(t, db, "Author", "author@test.io", models.UserRoleStudent)
	fan := createTestUser(t, db, "Fan", "fan@test.io", models.UserRoleProvider)
	post := createTestPost(t, db, author.ID, "short-lived")
	addLike(t, db, post.ID, fan.ID)

	require.NoError(t, sc.PostService.DeletePost(post.ID, author.ID))

	var count int64
	require.NoError(t, db.Model(&models.PostLike{}).Where("post_id = ?", post.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestCreateAndListPosts(t *testing.T) {
	sc, db := newTestContainer(t)
	author := createTestUser(t, db, "Author", "author@test.io", models.UserRoleStudent)

	created, err := sc.PostService.CreatePost(author.ID, &dto.CreatePostRequest{
		Title:   "hello",
		Content: "world",
		Tags:    []string{"go", "intro"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "intro"}, created.Tags)

	posts, err := sc.PostService.ListPosts("")
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "hello", posts[0].Title)
	assert.False(t, posts[0].LikedByViewer)
}
