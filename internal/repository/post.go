package repository

import (
	"context"
	"errors"

	"inkwell/internal/models"
	"inkwell/internal/observability"

	"gorm.io/gorm"
)

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id string) (*models.Post, error)
	ListAll(ctx context.Context, params models.PageParams) ([]models.Post, int64, error)
	ListPublished(ctx context.Context, params models.PageParams) ([]models.Post, int64, error)
	Update(ctx context.Context, post *models.Post) error
	ReplaceCategories(ctx context.Context, post *models.Post, categories []models.Category) error
	IncrementViewCount(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type postRepository struct {
	db      *gorm.DB
	metrics *observability.DatabaseMetrics
	log     *observability.RepoLogger
	trace   *observability.TraceLayer
}

// NewPostRepository returns a new PostRepository implementation.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{
		db:      db,
		metrics: observability.NewDatabaseMetrics(db),
		log:     observability.NewRepoLogger("posts"),
		trace:   observability.GetTraceLayer(),
	}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Post slug already exists")
		}
		r.log.LogError(ctx, err, "create")
		return models.NewInternalError(err)
	}
	r.log.LogWrite(ctx, "create", map[string]interface{}{"post_id": post.ID, "slug": post.Slug})
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Categories").
		Preload("Comments").
		Where("id = ?", id).
		First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

func (r *postRepository) ListAll(ctx context.Context, params models.PageParams) ([]models.Post, int64, error) {
	ctx, span := r.trace.TraceRepositoryMethod(ctx, "list_all", "posts")
	defer span.End()
	defer r.metrics.TrackQuery("list_all", "posts")()

	var posts []models.Post
	var total int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Post{}).Count(&total).Error; err != nil {
			return err
		}
		return tx.Preload("Author").
			Preload("Categories").
			Order("created_at DESC").
			Limit(params.Limit).
			Offset(params.Offset()).
			Find(&posts).Error
	})
	if err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return posts, total, nil
}

// ListPublished returns published posts by active authors, newest
// publication first.
func (r *postRepository) ListPublished(ctx context.Context, params models.PageParams) ([]models.Post, int64, error) {
	ctx, span := r.trace.TraceRepositoryMethod(ctx, "list_published", "posts")
	defer span.End()
	defer r.metrics.TrackQuery("list_published", "posts")()

	var posts []models.Post
	var total int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		base := tx.Model(&models.Post{}).
			Joins("JOIN users ON users.id = posts.author_id").
			Where("posts.published = ?", true).
			Where("users.is_active = ?", true)
		if err := base.Count(&total).Error; err != nil {
			return err
		}
		return tx.Preload("Author").
			Preload("Categories").
			Joins("JOIN users ON users.id = posts.author_id").
			Where("posts.published = ?", true).
			Where("users.is_active = ?", true).
			Order("posts.published_at DESC").
			Limit(params.Limit).
			Offset(params.Offset()).
			Find(&posts).Error
	})
	if err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return posts, total, nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Omit("Categories", "Author", "Comments").Save(post).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Post slug already exists")
		}
		r.log.LogError(ctx, err, "update")
		return models.NewInternalError(err)
	}
	r.log.LogWrite(ctx, "update", map[string]interface{}{"post_id": post.ID})
	return nil
}

// ReplaceCategories swaps the post's category set for the given one.
func (r *postRepository) ReplaceCategories(ctx context.Context, post *models.Post, categories []models.Category) error {
	if err := r.db.WithContext(ctx).Model(post).Association("Categories").Replace(categories); err != nil {
		r.log.LogError(ctx, err, "replace_categories")
		return models.NewInternalError(err)
	}
	return nil
}

// IncrementViewCount bumps the counter in a single UPDATE so concurrent
// views never lose increments.
func (r *postRepository) IncrementViewCount(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Model(&models.Post{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1))
	if res.Error != nil {
		r.log.LogError(ctx, res.Error, "increment_view")
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Post", id)
	}
	observability.PostViews.Inc()
	return nil
}

// Delete removes the post, its comments, and its category associations in
// one transaction.
func (r *postRepository) Delete(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM post_categories WHERE post_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&models.Post{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.NewNotFoundError("Post", id)
		}
		return nil
	})
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) {
			return appErr
		}
		r.log.LogError(ctx, err, "delete")
		return models.NewInternalError(err)
	}
	r.log.LogWrite(ctx, "delete", map[string]interface{}{"post_id": id})
	return nil
}
