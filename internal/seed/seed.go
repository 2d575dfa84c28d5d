package seed

import (
	"fmt"
	"log"

	"inkwell/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers      int
	NumCategories int
	NumPosts      int
	NumComments   int
	ShouldClean   bool
}

// Seeder populates the database with demo content.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db, factory: NewFactory(db)}
}

// ClearAll removes all seeded content. Order matters: comments and join
// rows go before the tables they reference.
func (s *Seeder) ClearAll() error {
	statements := []string{
		"DELETE FROM comments",
		"DELETE FROM post_categories",
		"DELETE FROM posts",
		"DELETE FROM categories",
		"DELETE FROM users",
	}
	for _, stmt := range statements {
		if err := s.db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("cleanup failed on %q: %w", stmt, err)
		}
	}
	return nil
}

// Seed populates the database with test data.
func (s *Seeder) Seed(opts Options) error {
	log.Printf("Seeding %d users, %d categories, %d posts, %d comments...",
		opts.NumUsers, opts.NumCategories, opts.NumPosts, opts.NumComments)

	if opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			return err
		}
	}

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		users = append(users, user)
	}
	log.Printf("created %d users", len(users))

	categories := make([]models.Category, 0, opts.NumCategories)
	for i := 0; i < opts.NumCategories; i++ {
		category, err := s.factory.CreateCategory()
		if err != nil {
			return fmt.Errorf("failed to create category: %w", err)
		}
		categories = append(categories, *category)
	}
	log.Printf("created %d categories", len(categories))

	posts := make([]*models.Post, 0, opts.NumPosts)
	for i := 0; i < opts.NumPosts; i++ {
		author := users[s.factory.r.Intn(len(users))]
		assigned := pickCategories(s.factory.r.Intn(3), categories, s.factory)
		post, err := s.factory.CreatePost(author, assigned)
		if err != nil {
			return fmt.Errorf("failed to create post: %w", err)
		}
		posts = append(posts, post)
	}
	log.Printf("created %d posts", len(posts))

	published := make([]*models.Post, 0, len(posts))
	for _, p := range posts {
		if p.Published {
			published = append(published, p)
		}
	}

	created := 0
	for i := 0; i < opts.NumComments && len(published) > 0; i++ {
		author := users[s.factory.r.Intn(len(users))]
		post := published[s.factory.r.Intn(len(published))]
		if _, err := s.factory.CreateComment(author, post); err != nil {
			return fmt.Errorf("failed to create comment: %w", err)
		}
		created++
	}
	log.Printf("created %d comments", created)

	log.Println("Seeding complete")
	return nil
}

func pickCategories(n int, categories []models.Category, f *Factory) []models.Category {
	if n == 0 || len(categories) == 0 {
		return nil
	}
	if n > len(categories) {
		n = len(categories)
	}
	picked := make([]models.Category, 0, n)
	perm := f.r.Perm(len(categories))
	for _, idx := range perm[:n] {
		picked = append(picked, categories[idx])
	}
	return picked
}
