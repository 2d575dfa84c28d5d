package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Post is a blog entry authored by a User. The slug is globally unique.
// PublishedAt is stamped exactly once, on the first transition to
// published, and is never cleared or moved afterwards.
type Post struct {
	ID          string     `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string     `gorm:"size:200;not null" json:"title"`
	Slug        string     `gorm:"uniqueIndex;size:250;not null" json:"slug"`
	Content     string     `gorm:"type:text;not null" json:"content"`
	Excerpt     string     `gorm:"size:500" json:"excerpt,omitempty"`
	Published   bool       `gorm:"not null;default:false" json:"published"`
	ViewCount   int64      `gorm:"not null;default:0" json:"view_count"`
	PublishedAt *time.Time `json:"published_at"`
	AuthorID    string     `gorm:"type:uuid;not null;index" json:"author_id"`
	Author      User       `gorm:"foreignKey:AuthorID" json:"author"`
	Categories  []Category `gorm:"many2many:post_categories" json:"categories"`
	Comments    []Comment  `gorm:"foreignKey:PostID" json:"comments,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (p *Post) BeforeCreate(_ *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
