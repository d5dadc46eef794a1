package models

type Message struct {
	BaseModel
	SenderID   string `gorm:"type:uuid;not null;index" json:"senderId"`
	ReceiverID string `gorm:"type:uuid;not null;index" json:"receiverId"`
	Content    string `gorm:"not null" json:"content"`

	// best-effort метаданные, гарантий доставки нет
	Delivered bool `gorm:"default:false" json:"delivered"`
	Read      bool `gorm:"default:false" json:"read"`

	Sender   *User `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	Receiver *User `gorm:"foreignKey:ReceiverID" json:"receiver,omitempty"`
}
