package models

import (
	"gorm.io/datatypes"
)

type Post struct {
	BaseModel
	AuthorID string `gorm:"type:uuid;not null;index" json:"authorId"`
	Title    string `json:"title"`
	Content  string `gorm:"not null" json:"content"`
	Tags     datatypes.JSON `gorm:"type:jsonb" json:"tags,omitempty"`
	Images   datatypes.JSON `gorm:"type:jsonb" json:"images,omitempty"`

	Author *User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

// PostLike — бинарный факт "пользователь лайкнул пост".
// Уникальный составной индекс закрывает дубликаты на уровне стора.
type PostLike struct {
	BaseModel
	PostID string `gorm:"type:uuid;not null;uniqueIndex:idx_post_likes_post_user" json:"postId"`
	UserID string `gorm:"type:uuid;not null;uniqueIndex:idx_post_likes_post_user" json:"userId"`
}
