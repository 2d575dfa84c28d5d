package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment is a reader response on a published post. Comments are created
// unapproved and stay out of public listings until approved.
type Comment struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Approved  bool      `gorm:"not null;default:false" json:"approved"`
	AuthorID  string    `gorm:"type:uuid;not null;index" json:"author_id"`
	PostID    string    `gorm:"type:uuid;not null;index" json:"post_id"`
	Author    User      `gorm:"foreignKey:AuthorID" json:"author"`
	Post      Post      `gorm:"foreignKey:PostID" json:"post,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Comment) BeforeCreate(_ *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
