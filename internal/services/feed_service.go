package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"unigig_backend/internal/cache"
	"unigig_backend/internal/logger"
	"unigig_backend/internal/models"
	"unigig_backend/internal/repositories"
	"unigig_backend/internal/services/dto"
	"unigig_backend/pkg/apperrors"
)

// unknownAuthor подставляется при висячей ссылке на удалённого владельца.
const unknownAuthor = "Unknown"

// FeedService собирает смешанную ленту из постов и гигов,
// обратно-хронологически. Лента read-only: никакие мутации здесь не живут.
type FeedService struct {
	postRepo  repositories.PostRepository
	gigRepo   repositories.GigRepository
	userRepo  repositories.UserRepository
	appRepo   repositories.ApplicationRepository
	feedCache *cache.Cache
}

func NewFeedService(
	postRepo repositories.PostRepository,
	gigRepo repositories.GigRepository,
	userRepo repositories.UserRepository,
	appRepo repositories.ApplicationRepository,
	feedCache *cache.Cache,
) *FeedService {
	return &FeedService{
		postRepo:  postRepo,
		gigRepo:   gigRepo,
		userRepo:  userRepo,
		appRepo:   appRepo,
		feedCache: feedCache,
	}
}

// GetFeed строит ленту для зрителя. viewerID == "" — анонимная лента,
// она кэшируется в Redis с коротким TTL; персональная собирается всегда
// заново, потому что affordances зависят от зрителя.
func (s *FeedService) GetFeed(ctx context.Context, viewerID string) (*dto.FeedResponse, error) {
	if viewerID == "" {
		var cached dto.FeedResponse
		if err := s.feedCache.GetJSON(ctx, cache.FeedKey("public"), &cached); err == nil {
			return &cached, nil
		} else if !errors.Is(err, cache.ErrCacheMiss) {
			logger.Warn("feed cache read failed", "error", err)
		}
	}

	var viewer *models.User
	if viewerID != "" {
		u, err := s.userRepo.FindByID(viewerID)
		if err != nil && !errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.InternalError(err)
		}
		viewer = u
	}

	posts, err := s.postRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	gigs, err := s.gigRepo.FindAll(repositories.GigFilter{})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]dto.FeedItem, 0, len(posts)+len(gigs))
	for i := range posts {
		item, err := s.buildPostItem(&posts[i], viewer)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	for i := range gigs {
		item, err := s.buildGigItem(&gigs[i], viewer)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})

	resp := &dto.FeedResponse{Items: items, GeneratedAt: time.Now().UTC()}

	if viewerID == "" {
		if err := s.feedCache.SetJSON(ctx, cache.FeedKey("public"), resp, cache.FeedTTL); err != nil {
			logger.Warn("feed cache write failed", "error", err)
		}
	}
	return resp, nil
}

func (s *FeedService) buildPostItem(post *models.Post, viewer *models.User) (*dto.FeedItem, error) {
	likes, err := s.postRepo.CountLikes(post.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	postedBy := unknownAuthor
	if post.Author != nil {
		postedBy = post.Author.Name
	}

	likedByViewer := false
	if viewer != nil {
		likedByViewer, err = s.postRepo.IsLiked(post.ID, viewer.ID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	return &dto.FeedItem{
		Type:      dto.FeedItemPost,
		ID:        post.ID,
		PostedBy:  postedBy,
		CreatedAt: post.CreatedAt,
		Post: &dto.PostResponse{
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
		},
		CanMessage: viewer != nil && viewer.ID != post.AuthorID,
	}, nil
}

func (s *FeedService) buildGigItem(gig *models.Gig, viewer *models.User) (*dto.FeedItem, error) {
	applicants, err := s.appRepo.CountByGig(gig.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	postedBy := unknownAuthor
	if gig.CreatedBy != nil {
		postedBy = gig.CreatedBy.Name
	}

	itemType := dto.FeedItemGig
	if gig.GigType == models.GigTypeInternship {
		itemType = dto.FeedItemInternship
	}

	canApply := false
	canMessage := false
	if viewer != nil && viewer.ID != gig.CreatedByID {
		canMessage = true
		if gig.GigType == models.GigTypeInternship {
			canApply = viewer.Role == models.UserRoleStudent
		} else {
			canApply = true
		}
	}

	return &dto.FeedItem{
		Type:      itemType,
		ID:        gig.ID,
		PostedBy:  postedBy,
		CreatedAt: gig.CreatedAt,
		Gig: &dto.GigResponse{
			ID:           gig.ID,
			Title:        gig.Title,
			Description:  gig.Description,
			Location:     gig.Location,
			GigType:      gig.GigType,
			PostedByRole: gig.PostedByRole,
			Stipend:      gig.Stipend,
			Duration:     gig.Duration,
			Rate:         gig.Rate,
			Availability: gig.Availability,
			Skills:       stringsFromJSON(gig.Skills),
			CreatedByID:  gig.CreatedByID,
			CreatedBy:    toUserSummary(gig.CreatedBy),
			Applicants:   applicants,
			CreatedAt:    gig.CreatedAt,
			UpdatedAt:    gig.UpdatedAt,
		},
		CanApply:   canApply,
		CanMessage: canMessage,
	}, nil
}
