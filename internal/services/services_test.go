package services

import (
	"testing"

	"unigig_backend/internal/cache"
	"unigig_backend/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB поднимает in-memory SQLite со всей схемой.
// TranslateError включён, как в продовом подключении: дубликаты по
// уникальным индексам должны приходить как gorm.ErrDuplicatedKey.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	// одно соединение, иначе пул раздаст каждому коннекту свою пустую БД
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.PostLike{},
		&models.Gig{},
		&models.Application{},
		&models.SkillCard{},
		&models.Endorsement{},
		&models.Message{},
	))
	return db
}

// newTestContainer собирает сервисы без Redis, почты и websocket-хаба.
func newTestContainer(t *testing.T) (*ServiceContainer, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	sc := NewServiceContainer(db, cache.New("", "", 0), nil, nil)
	return sc, db
}

func createTestUser(t *testing.T, db *gorm.DB, name, email string, role models.UserRole) *models.User {
	t.Helper()
	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: "x",
		Role:         role,
		Visibility:   models.VisibilityPublic,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestPost(t *testing.T, db *gorm.DB, authorID, title string) *models.Post {
	t.Helper()
	post := &models.Post{AuthorID: authorID, Title: title, Content: "content of " + title}
	require.NoError(t, db.Create(post).Error)
	return post
}

func createTestGig(t *testing.T, db *gorm.DB, owner *models.User, title string, gigType models.GigType) *models.Gig {
	t.Helper()
	gig := &models.Gig{
		Title:        title,
		Description:  "description",
		CreatedByID:  owner.ID,
		PostedByRole: owner.Role,
		GigType:      gigType,
	}
	require.NoError(t, db.Create(gig).Error)
	return gig
}

func createTestSkillCard(t *testing.T, db *gorm.DB, ownerID, title string) *models.SkillCard {
	t.Helper()
	card := &models.SkillCard{OwnerID: ownerID, Title: title, Level: models.SkillLevelBeginner}
	require.NoError(t, db.Create(card).Error)
	return card
}

// прямые вставки фактов, мимо сервисного слоя
func addLike(t *testing.T, db *gorm.DB, postID, userID string) {
	t.Helper()
	require.NoError(t, db.Create(&models.PostLike{PostID: postID, UserID: userID}).Error)
}

func addApplication(t *testing.T, db *gorm.DB, gigID, applicantID string) {
	t.Helper()
	require.NoError(t, db.Create(&models.Application{
		GigID:       gigID,
		ApplicantID: applicantID,
		Status:      models.ApplicationStatusInterested,
	}).Error)
}

func addEndorsement(t *testing.T, db *gorm.DB, cardID, endorserID string) {
	t.Helper()
	require.NoError(t, db.Create(&models.Endorsement{SkillCardID: cardID, EndorserID: endorserID}).Error)
}
