package repository

import (
	"context"
	"errors"

	"inkwell/internal/models"

	"gorm.io/gorm"
)

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id string) (*models.Comment, error)
	ListAll(ctx context.Context, params models.PageParams) ([]models.Comment, int64, error)
	ListApproved(ctx context.Context, params models.PageParams) ([]models.Comment, int64, error)
	ListByPost(ctx context.Context, postID string, params models.PageParams) ([]models.Comment, int64, error)
	Update(ctx context.Context, comment *models.Comment) error
	Approve(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository returns a new CommentRepository implementation.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Post").
		Where("id = ?", id).
		First(&comment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Comment", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &comment, nil
}

func (r *commentRepository) ListAll(ctx context.Context, params models.PageParams) ([]models.Comment, int64, error) {
	var comments []models.Comment
	var total int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Comment{}).Count(&total).Error; err != nil {
			return err
		}
		return tx.Preload("Author").
			Order("created_at DESC").
			Limit(params.Limit).
			Offset(params.Offset()).
			Find(&comments).Error
	})
	if err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return comments, total, nil
}

// ListApproved returns approved comments whose authors are still active.
// A deactivated commenter drops out of the public listing with their
// account.
func (r *commentRepository) ListApproved(ctx context.Context, params models.PageParams) ([]models.Comment, int64, error) {
	var comments []models.Comment
	var total int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		base := tx.Model(&models.Comment{}).
			Joins("JOIN users ON users.id = comments.author_id").
			Where("comments.approved = ?", true).
			Where("users.is_active = ?", true)
		if err := base.Count(&total).Error; err != nil {
			return err
		}
		return tx.Preload("Author").
			Joins("JOIN users ON users.id = comments.author_id").
			Where("comments.approved = ?", true).
			Where("users.is_active = ?", true).
			Order("comments.created_at DESC").
			Limit(params.Limit).
			Offset(params.Offset()).
			Find(&comments).Error
	})
	if err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return comments, total, nil
}

// ListByPost returns approved comments on the post in conversation order,
// oldest first.
func (r *commentRepository) ListByPost(ctx context.Context, postID string, params models.PageParams) ([]models.Comment, int64, error) {
	var comments []models.Comment
	var total int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Comment{}).
			Where("post_id = ? AND approved = ?", postID, true).
			Count(&total).Error; err != nil {
			return err
		}
		return tx.Preload("Author").
			Where("post_id = ? AND approved = ?", postID, true).
			Order("created_at ASC").
			Limit(params.Limit).
			Offset(params.Offset()).
			Find(&comments).Error
	})
	if err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return comments, total, nil
}

func (r *commentRepository) Update(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Omit("Author", "Post").Save(comment).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Approve flips the flag in a single UPDATE; re-approving is a no-op.
func (r *commentRepository) Approve(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Model(&models.Comment{}).
		Where("id = ?", id).
		UpdateColumn("approved", true)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	return nil
}

func (r *commentRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Comment{})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Comment", id)
	}
	return nil
}
