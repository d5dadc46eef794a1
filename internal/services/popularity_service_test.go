package services

import (
	"testing"

	"unigig_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecomputeSumsAllSources(t *testing.T) {
	sc, db := newTestContainer(t)

	owner := createTestUser(t, db, "Owner", "owner@test.io", models.UserRoleProvider)
	fan1 := createTestUser(t, db, "Fan One", "fan1@test.io", models.UserRoleStudent)
	fan2 := createTestUser(t, db, "Fan Two", "fan2@test.io", models.UserRoleStudent)

	post := createTestPost(t, db, owner.ID, "first")
	addLike(t, db, post.ID, fan1.ID)
	addLike(t, db, post.ID, fan2.ID)

	gig := createTestGig(t, db, owner, "internship", models.GigTypeInternship)
	addApplication(t, db, gig.ID, fan1.ID)

	card := createTestSkillCard(t, db, owner.ID, "Leadership")
	addEndorsement(t, db, card.ID, fan1.ID)
	addEndorsement(t, db, card.ID, fan2.ID)

	score, err := sc.PopularityService.Recompute(owner.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, score)

	var stored models.User
	require.NoError(t, db.First(&stored, "id = ?", owner.ID).Error)
	assert.Equal(t, 5, stored.PopularityScore)
}

func TestRecomputeIsIdempotent(t *testing.T) {
	sc, db := newTestContainer(t)

	owner := createTestUser(t, db, "Owner", "owner@test.io", models.UserRoleStudent)
	fan := createTestUser(t, db, "Fan", "fan@test.io", models.UserRoleProvider)
	post := createTestPost(t, db, owner.ID, "only post")
	addLike(t, db, post.ID, fan.ID)

	first, err := sc.PopularityService.Recompute(owner.ID)
	require.NoError(t, err)
	second, err := sc.PopularityService.Recompute(owner.ID)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, second)
}

func TestRecomputeCountsOnlyOwnResources(t *testing.T) {
	sc, db := newTestContainer(t)

	owner := createTestUser(t, db, "Owner", "owner@test.io", models.UserRoleStudent)
	other := createTestUser(t, db, "Other", "other@test.io", models.UserRoleStudent)
	fan := createTestUser(t, db, "Fan", "fan@test.io", models.UserRoleProvider)

	otherPost := createTestPost(t, db, other.ID, "someone else")
	addLike(t, db, otherPost.ID, fan.ID)

	score, err := sc.PopularityService.Recompute(owner.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, score)
}

func TestRecomputeMissingUserReturnsZero(t *testing.T) {
	sc, _ := newTestContainer(t)

	score, err := sc.PopularityService.Recompute("no-such-user")
	require.NoError(t, err)
	assert.Equal(t, 0, score)
}

func TestRecomputeReflectsRemovedFacts(t *testing.T) {
	sc, db := newTestContainer(t)

	owner := createTestUser(t, db, "Owner", "owner@test.io", models.UserRoleStudent)
	fan := createTestUser(t, db, "Fan", "fan@test.io", models.UserRoleProvider)
	post := createTestPost(t, db, owner.ID, "liked then unliked")
	addLike(t, db, post.ID, fan.ID)

	score, err := sc.PopularityService.Recompute(owner.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, score)

	require.NoError(t, db.Where("post_id = ?", post.ID).Delete(&models.PostLike{}).Error)

	score, err = sc.PopularityService.Recompute(owner.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, score)
}
