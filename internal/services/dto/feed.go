package dto

import (
	"time"
)

// Типы элементов ленты.
const (
	FeedItemPost       = "post"
	FeedItemGig        = "gig"
	FeedItemInternship = "internship"
)

// FeedItem - один элемент смешанной ленты. Заполнено ровно одно из Post/Gig.
type FeedItem struct {
	Type      string    `json:"_type"`
	ID        string    `json:"id"`
	PostedBy  string    `json:"posted_by"`
	CreatedAt time.Time `json:"created_at"`

	Post *PostResponse `json:"post,omitempty"`
	Gig  *GigResponse  `json:"gig,omitempty"`

	CanApply   bool `json:"can_apply"`
	CanMessage bool `json:"can_message"`
}

type FeedResponse struct {
	Items       []FeedItem `json:"items"`
	GeneratedAt time.Time  `json:"generated_at"`
}
