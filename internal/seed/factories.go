// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"inkwell/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by the seeder and tests.
type Factory struct {
	db *gorm.DB
	r  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db: db,
		r:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateUser constructs and persists a sample user. Optional override
// functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		Email:    gofakeit.Email(),
		Name:     gofakeit.Name(),
		Password: string(hashedPassword),
		Bio:      gofakeit.Sentence(10),
		IsActive: true,
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateCategory constructs and persists a sample category.
func (f *Factory) CreateCategory(overrides ...func(*models.Category)) (*models.Category, error) {
	name := gofakeit.BuzzWord() + " " + gofakeit.Noun()
	category := &models.Category{
		Name:        name,
		Slug:        slugify(name),
		Description: gofakeit.Sentence(8),
	}

	for _, override := range overrides {
		override(category)
	}

	if err := f.db.Create(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

// CreatePost constructs and persists a sample post for the author.
// Roughly three in four generated posts are published with a creation
// date spread over the last 90 days.
func (f *Factory) CreatePost(author *models.User, categories []models.Category, overrides ...func(*models.Post)) (*models.Post, error) {
	title := gofakeit.Sentence(5)
	created := time.Now().Add(-time.Duration(f.r.Intn(90*24)) * time.Hour)

	post := &models.Post{
		Title:      strings.TrimSuffix(title, "."),
		Slug:       slugify(title) + fmt.Sprintf("-%d", gofakeit.Number(1000, 9999)),
		Content:    gofakeit.Paragraph(2, 4, 8, "\n\n"),
		Excerpt:    gofakeit.Sentence(12),
		AuthorID:   author.ID,
		Categories: categories,
		CreatedAt:  created,
	}
	if f.r.Intn(4) > 0 {
		post.Published = true
		publishedAt := created.Add(time.Duration(f.r.Intn(48)) * time.Hour)
		post.PublishedAt = &publishedAt
		post.ViewCount = int64(f.r.Intn(5000))
	}

	for _, override := range overrides {
		override(post)
	}

	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateComment constructs and persists a sample comment. About half of
// the generated comments are pre-approved.
func (f *Factory) CreateComment(author *models.User, post *models.Post, overrides ...func(*models.Comment)) (*models.Comment, error) {
	comment := &models.Comment{
		Content:  gofakeit.Sentence(15),
		Approved: f.r.Intn(2) == 0,
		AuthorID: author.ID,
		PostID:   post.ID,
	}

	for _, override := range overrides {
		override(comment)
	}

	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// slugify lowers a phrase into slug form: lowercase alphanumeric
// segments joined by single hyphens.
func slugify(s string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
