package services

import (
	"testing"

	"unigig_backend/internal/models"
	"unigig_backend/internal/repositories"
	"unigig_backend/internal/services/dto"
	"unigig_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyToGigSuccess(t *testing.T) {
	sc, db := newTestContainer(t)

	provider := createTestUser(t, db, "Provider", "provider@test.io", models.UserRoleProvider)
	student := createTestUser(t, db, "Student", "student@test.io", models.UserRoleStudent)
	gig := createTestGig(t, db, provider, "Backend Intern", models.GigTypeInternship)

	resp, err := sc.GigService.ApplyToGig(student.ID, gig.ID, &dto.ApplyToGigRequest{})
	require.NoError(t, err)
	assert.Equal(t, gig.ID, resp.GigID)
	assert.Equal(t, student.ID, resp.ApplicantID)
	assert.Equal(t, models.ApplicationStatusInterested, resp.Status)

	applicants, err := sc.GigService.GetApplicants(gig.ID, provider.ID)
	require.NoError(t, err)
	require.Len(t, applicants, 1)
	assert.Equal(t, student.ID, applicants[0].ApplicantID)
}

func TestApplyToOwnGigRejected(t *testing.T) {
	sc, db := newTestContainer(t)

	student := createTestUser(t, db, "Student", "student@test.io", models.UserRoleStudent)
	gig := createTestGig(t, db, student, "My freelance gig", models.GigTypeFreelance)

	_, err := sc.GigService.ApplyToGig(student.ID, gig.ID, &dto.ApplyToGigRequest{})
	assert.ErrorIs(t, err, apperrors.ErrCannotApplyToOwnGig)
}

func TestApplyToInternshipRequiresStudent(t *testing.T) {
	sc, db := newTestContainer(t)

	owner := createTestUser(t, db, "Owner", "owner@test.io", models.UserRoleProvider)
	other := createTestUser(t, db, "Another Provider", "other@test.io", models.UserRoleProvider)
	gig := createTestGig(t, db, owner, "Internship", models.GigTypeInternship)

	_, err := sc.GigService.ApplyToGig(other.ID, gig.ID, &dto.ApplyToGigRequest{})
	assert.ErrorIs(t, err, apperrors.ErrOnlyStudentsCanApply)
}

func TestApplyTwiceIsConflict(t *testing.T) {
	sc, db := newTestContainer(t)

	provider := createTestUser(t, db, "Provider", "provider@test.io", models.UserRoleProvider)
	student := createTestUser(t, db, "Student", "student@test.io", models.UserRoleStudent)
	gig := createTestGig(t, db, provider, "Internship", models.GigTypeInternship)

	_, err := sc.GigService.ApplyToGig(student.ID, gig.ID, &dto.ApplyToGigRequest{})
	require.NoError(t, err)

	_, err = sc.GigService.ApplyToGig(student.ID, gig.ID, &dto.ApplyToGigRequest{})
	assert.ErrorIs(t, err, apperrors.ErrAlreadyApplied)

	count, countErr := repositories.NewApplicationRepository(db).CountByGig(gig.ID)
	require.NoError(t, countErr)
	assert.EqualValues(t, 1, count)
}

func TestApplyWithForeignSkillCardRejected(t *testing.T) {
	sc, db := newTestContainer(t)

	provider := createTestUser(t, db, "Provider", "provider@test.io", models.UserRoleProvider)
	student := createTestUser(t, db, "Student", "student@test.io", models.UserRoleStudent)
	other := createTestUser(t, db, "Other", "other@test.io", models.UserRoleStudent)
	gig := createTestGig(t, db, provider, "Internship", models.GigTypeInternship)
	foreignCard := createTestSkillCard(t, db, other.ID, "Not yours")

	_, err := sc.GigService.ApplyToGig(student.ID, gig.ID, &dto.ApplyToGigRequest{SkillCardID: &foreignCard.ID})
	assert.ErrorIs(t, err, apperrors.ErrSkillCardNotYours)
}

func TestApplyWithOwnSkillCard(t *testing.T) {
	sc, db := newTestContainer(t)

	provider := createTestUser(t, db, "Provider", "provider@test.io", models.UserRoleProvider)
	student := createTestUser(t, db, "Student", "student@test.io", models.UserRoleStudent)
	gig := createTestGig(t, db, provider, "Internship", models.GigTypeInternship)
	card := createTestSkillCard(t, db, student.ID, "Go")

	resp, err := sc.GigService.ApplyToGig(student.ID, gig.ID, &dto.ApplyToGigRequest{SkillCardID: &card.ID})
	require.NoError(t, err)
	require.NotNil(t, resp.SkillCardID)
	assert.Equal(t, card.ID, *resp.SkillCardID)
}

func TestApplyToMissingGig(t *testing.T) {
	sc, db := newTestContainer(t)
	student := createTestUser(t, db, "Student", "student@test.io", models.UserRoleStudent)

	_, err := sc.GigService.ApplyToGig(student.ID, "no-such-gig", &dto.ApplyToGigRequest{})
	assert.ErrorIs(t, err, apperrors.ErrGigNotFound)
}

func TestCreateInternshipRequiresProvider(t *testing.T) {
	sc, db := newTestContainer(t)
	student := createTestUser(t, db, "Student", "student@test.io", models.UserRoleStudent)

	_, err := sc.GigService.CreateGig(student.ID, &dto.CreateGigRequest{
		Title:   "Not allowed",
		GigType: models.GigTypeInternship,
	})
	assert.ErrorIs(t, err, apperrors.ErrOnlyProvidersPostInternships)
}

func TestCreateGigStampsOwnership(t *testing.T) {
	sc, db := newTestContainer(t)
	student := createTestUser(t, db, "Student", "student@test.io", models.UserRoleStudent)

	resp, err := sc.GigService.CreateGig(student.ID, &dto.CreateGigRequest{
		Title:   "Logo design",
		GigType: models.GigTypeFreelance,
		Rate:    "$20/h",
		Skills:  []string{"design", "figma"},
	})
	require.NoError(t, err)
	assert.Equal(t, student.ID, resp.CreatedByID)
	assert.Equal(t, models.UserRoleStudent, resp.PostedByRole)
	assert.Equal(t, []string{"design", "figma"}, resp.Skills)
}

func TestApplicantsVisibleOnlyToOwner(t *testing.T) {
	sc, db := newTestContainer(t)

	provider := createTestUser(t, db, "Provider", "provider@test.io", models.UserRoleProvider)
	student := createTestUser(t, db, "Student", "student@test.io", models.UserRoleStudent)
	gig := createTestGig(t, db, provider, "Internship", models.GigTypeInternship)
	addApplication(t, db, gig.ID, student.ID)

	_, err := sc.GigService.GetApplicants(gig.ID, student.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotOwner)
}

func TestUpdateGigOwnerGate(t *testing.T) {
	sc, db := newTestContainer(t)

	provider := createTestUser(t, db, "Provider", "provider@test.io", models.UserRoleProvider)
	intruder := createTestUser(t, db, "Intruder", "intruder@test.io", models.UserRoleProvider)
	gig := createTestGig(t, db, provider, "Internship", models.GigTypeInternship)

	newTitle := "Hacked"
	_, err := sc.GigService.UpdateGig(gig.ID, intruder.ID, &dto.UpdateGigRequest{Title: &newTitle})
	assert.ErrorIs(t, err, apperrors.ErrNotOwner)

	updated, err := sc.GigService.UpdateGig(gig.ID, provider.ID, &dto.UpdateGigRequest{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "Hacked", updated.Title)
	assert.Equal(t, models.GigTypeInternship, updated.GigType)
}

func TestRepositoryUpdateKeepsGigType(t *testing.T) {
	_, db := newTestContainer(t)

	provider := createTestUser(t, db, "Provider", "provider@test.io", models.UserRoleProvider)
	gig := createTestGig(t, db, provider, "Internship", models.GigTypeInternship)

	// Даже если в репозиторий попала запись с изменённым типом,
	// хранилище его не перезаписывает.
	repo := repositories.NewGigRepository(db)
	gig.Title = "Renamed"
	gig.GigType = models.GigTypeFreelance
	require.NoError(t, repo.Update(gig))

	stored, err := repo.FindByID(gig.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", stored.Title)
	assert.Equal(t, models.GigTypeInternship, stored.GigType)
}

func TestDeleteGigRemovesApplications(t *testing.T) {
	sc, db := newTestContainer(t)

	provider := createTestUser(t, db, "Provider", "provider@test.io", models.UserRoleProvider)
	student := createTestUser(t, db, "Student", "student@test.io", models.UserRoleStudent)
	gig := createTestGig(t, db, provider, "Internship", models.GigTypeInternship)
	addApplication(t, db, gig.ID, student.ID)

	require.NoError(t, sc.GigService.DeleteGig(gig.ID, provider.ID))

	var count int64
	require.NoError(t, db.Model(&models.Application{}).Where("gig_id = ?", gig.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestListGigsFilters(t *testing.T) {
	sc, db := newTestContainer(t)

	provider := createTestUser(t, db, "Provider", "provider@test.io", models.UserRoleProvider)
	student := createTestUser(t, db, "Student", "student@test.io", models.UserRoleStudent)
	createTestGig(t, db, provider, "Internship A", models.GigTypeInternship)
	createTestGig(t, db, student, "Freelance B", models.GigTypeFreelance)

	all, err := sc.GigService.ListGigs(repositories.GigFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	internships, err := sc.GigService.ListGigs(repositories.GigFilter{GigType: models.GigTypeInternship})
	require.NoError(t, err)
	require.Len(t, internships, 1)
	assert.Equal(t, "Internship A", internships[0].Title)

	byStudent, err := sc.GigService.ListGigs(repositories.GigFilter{PostedByRole: models.UserRoleStudent})
	require.NoError(t, err)
	require.Len(t, byStudent, 1)
	assert.Equal(t, "Freelance B", byStudent[0].Title)
}
