package repositories

import (
	"errors"

	"unigig_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrPostNotFound = errors.New("post not found")
	ErrAlreadyLiked = errors.New("post already liked")
)

type PostRepository interface {
	Create(post *models.Post) error
	FindByID(id string) (*models.Post, error)
	FindAll() ([]models.Post, error)
	FindByAuthor(authorID string) ([]models.Post, error)
	Update(post *models.Post) error
	Delete(id string) error

	// Лайки — строки в post_likes, дубликаты режет уникальный индекс.
	AddLike(postID, userID string) error
	RemoveLike(postID, userID string) (bool, error)
	IsLiked(postID, userID string) (bool, error)
	CountLikes(postID string) (int64, error)
	CountLikesByAuthor(authorID string) (int64, error)
}

type PostRepositoryImpl struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &PostRepositoryImpl{db: db}
}

func (r *PostRepositoryImpl) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

func (r *PostRepositoryImpl) FindByID(id string) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("Author").First(&post, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (r *PostRepositoryImpl) FindAll() ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Preload("Author").Order("created_at DESC").Find(&posts).Error
	return posts, err
}

func (r *PostRepositoryImpl) FindByAuthor(authorID string) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Where("author_id = ?", authorID).Order("created_at DESC").Find(&posts).Error
	return posts, err
}

func (r *PostRepositoryImpl) Update(post *models.Post) error {
	result := r.db.Model(post).Updates(map[string]interface{}{
		"title":   post.Title,
		"content": post.Content,
		"tags":    post.Tags,
		"images":  post.Images,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPostNotFound
	}
	return nil
}

func (r *PostRepositoryImpl) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.PostLike{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&models.Post{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrPostNotFound
		}
		return nil
	})
}

func (r *PostRepositoryImpl) AddLike(postID, userID string) error {
	like := &models.PostLike{PostID: postID, UserID: userID}
	err := r.db.Create(like).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrAlreadyLiked
	}
	return err
}

func (r *PostRepositoryImpl) RemoveLike(postID, userID string) (bool, error) {
	result := r.db.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&models.PostLike{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *PostRepositoryImpl) IsLiked(postID, userID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.PostLike{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *PostRepositoryImpl) CountLikes(postID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.PostLike{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

// CountLikesByAuthor считает лайки по всем постам автора (вход popularity engine).
func (r *PostRepositoryImpl) CountLikesByAuthor(authorID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.PostLike{}).
		Joins("JOIN posts ON posts.id = post_likes.post_id").
		Where("posts.author_id = ?", authorID).
		Count(&count).Error
	return count, err
}
