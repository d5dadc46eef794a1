package services

import (
	"context"
	"errors"

	"unigig_backend/internal/cache"
	"unigig_backend/internal/logger"
	"unigig_backend/internal/models"
	"unigig_backend/internal/repositories"
	"unigig_backend/internal/services/dto"
	"unigig_backend/pkg/apperrors"
)

type PostService struct {
	postRepo   repositories.PostRepository
	popularity *PopularityService
	feedCache  *cache.Cache
}

func NewPostService(postRepo repositories.PostRepository, popularity *PopularityService, feedCache *cache.Cache) *PostService {
	return &PostService{postRepo: postRepo, popularity: popularity, feedCache: feedCache}
}

func (s *PostService) CreatePost(authorID string, req *dto.CreatePostRequest) (*dto.PostResponse, error) {
	post := &models.Post{
		AuthorID: authorID,
		Title:    req.Title,
		Content:  req.Content,
		Tags:     stringsToJSON(req.Tags),
		Images:   stringsToJSON(req.Images),
	}
	if err := s.postRepo.Create(post); err != nil {
		return nil, apperrors.InternalError(err)
	}
	s.invalidateFeed()
	return s.buildPostResponse(post, authorID)
}

func (s *PostService) GetPost(postID, viewerID string) (*dto.PostResponse, error) {
	post, err := s.postRepo.FindByID(postID)
	if err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return s.buildPostResponse(post, viewerID)
}

// ListPosts — все посты, новые первыми.
func (s *PostService) ListPosts(viewerID string) ([]dto.PostResponse, error) {
	posts, err := s.postRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	responses := make([]dto.PostResponse, 0, len(posts))
	for i := range posts {
		resp, err := s.buildPostResponse(&posts[i], viewerID)
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

func (s *PostService) UpdatePost(postID, requesterID string, req *dto.UpdatePostRequest) (*dto.PostResponse, error) {
	post, err := s.postRepo.FindByID(postID)
	if err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if post.AuthorID != requesterID {
		return nil, apperrors.ErrNotOwner
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.Tags != nil {
		post.Tags = stringsToJSON(req.Tags)
	}
	if req.Images != nil {
		post.Images = stringsToJSON(req.Images)
	}

	if err := s.postRepo.Update(post); err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	s.invalidateFeed()
	return s.buildPostResponse(post, requesterID)
}

func (s *PostService) DeletePost(postID, requesterID string) error {
	post, err := s.postRepo.FindByID(postID)
	if err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return apperrors.ErrPostNotFound
		}
		return apperrors.InternalError(err)
	}
	if post.AuthorID != requesterID {
		return apperrors.ErrNotOwner
	}
	if err := s.postRepo.Delete(postID); err != nil {
		return apperrors.InternalError(err)
	}
	s.invalidateFeed()
	go s.popularity.RecomputeAsync(post.AuthorID)
	return nil
}

// LikePost — идемпотентное добавление: повторный лайк не ошибка и не
// меняет состояние. Лайк собственного поста запрещён.
func (s *PostService) LikePost(userID, postID string) error {
	post, err := s.postRepo.FindByID(postID)
	if err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return apperrors.ErrPostNotFound
		}
		return apperrors.InternalError(err)
	}
	if post.AuthorID == userID {
		return apperrors.ErrCannotLikeOwnPost
	}

	if err := s.postRepo.AddLike(postID, userID); err != nil {
		if errors.Is(err, repositories.ErrAlreadyLiked) {
			return nil
		}
		return apperrors.InternalError(err)
	}

	go s.popularity.RecomputeAsync(post.AuthorID)
	return nil
}

// UnlikePost — идемпотентное снятие; пересчёт только при реальном удалении.
func (s *PostService) UnlikePost(userID, postID string) error {
	post, err := s.postRepo.FindByID(postID)
	if err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return apperrors.ErrPostNotFound
		}
		return apperrors.InternalError(err)
	}

	removed, err := s.postRepo.RemoveLike(postID, userID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if removed {
		go s.popularity.RecomputeAsync(post.AuthorID)
	}
	return nil
}

func (s *PostService) buildPostResponse(post *models.Post, viewerID string) (*dto.PostResponse, error) {
	likes, err := s.postRepo.CountLikes(post.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	likedByViewer := false
	if viewerID != "" {
		likedByViewer, err = s.postRepo.IsLiked(post.ID, viewerID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
	}
	return &dto.PostResponse{
		ID:            post.ID,
		AuthorID:      post.AuthorID,
		Title:         post.Title,
		Content:       post.Content,
		Tags:          stringsFromJSON(post.Tags),
		Images:        stringsFromJSON(post.Images),
		Likes:         likes,
		LikedByViewer: likedByViewer,
		Author:        toUserSummary(post.Author),
		CreatedAt:     post.CreatedAt,
		UpdatedAt:     post.UpdatedAt,
	}, nil
}

func (s *PostService) invalidateFeed() {
	if err := s.feedCache.Delete(context.Background(), cache.FeedKey("public")); err != nil {
		logger.Warn("feed cache invalidation failed", "error", err)
	}
}
