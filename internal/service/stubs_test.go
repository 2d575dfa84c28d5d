package service

import (
	"context"

	"inkwell/internal/models"
)

// Function-field stubs for the repository interfaces. Unset fields fall
// back to an empty-store behavior so each test only wires what it needs.

type stubUserRepo struct {
	createFn     func(ctx context.Context, user *models.User) error
	getByIDFn    func(ctx context.Context, id string) (*models.User, error)
	getByEmailFn func(ctx context.Context, email string) (*models.User, error)
	listFn       func(ctx context.Context, params models.PageParams) ([]models.User, int64, error)
	updateFn     func(ctx context.Context, user *models.User) error
}

func (s *stubUserRepo) Create(ctx context.Context, user *models.User) error {
	if s.createFn != nil {
		return s.createFn(ctx, user)
	}
	return nil
}

func (s *stubUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, models.NewNotFoundError("User", id)
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if s.getByEmailFn != nil {
		return s.getByEmailFn(ctx, email)
	}
	return nil, nil
}

func (s *stubUserRepo) List(ctx context.Context, params models.PageParams) ([]models.User, int64, error) {
	if s.listFn != nil {
		return s.listFn(ctx, params)
	}
	return nil, 0, nil
}

func (s *stubUserRepo) Update(ctx context.Context, user *models.User) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, user)
	}
	return nil
}

type stubCategoryRepo struct {
	createFn   func(ctx context.Context, category *models.Category) error
	getByIDFn  func(ctx context.Context, id string) (*models.Category, error)
	getByIDsFn func(ctx context.Context, ids []string) ([]models.Category, error)
	listFn     func(ctx context.Context, params models.PageParams) ([]models.Category, int64, error)
	updateFn   func(ctx context.Context, category *models.Category) error
	deleteFn   func(ctx context.Context, id string) error
}

func (s *stubCategoryRepo) Create(ctx context.Context, category *models.Category) error {
	if s.createFn != nil {
		return s.createFn(ctx, category)
	}
	return nil
}

func (s *stubCategoryRepo) GetByID(ctx context.Context, id string) (*models.Category, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, models.NewNotFoundError("Category", id)
}

func (s *stubCategoryRepo) GetByIDs(ctx context.Context, ids []string) ([]models.Category, error) {
	if s.getByIDsFn != nil {
		return s.getByIDsFn(ctx, ids)
	}
	return []models.Category{}, nil
}

func (s *stubCategoryRepo) List(ctx context.Context, params models.PageParams) ([]models.Category, int64, error) {
	if s.listFn != nil {
		return s.listFn(ctx, params)
	}
	return nil, 0, nil
}

func (s *stubCategoryRepo) Update(ctx context.Context, category *models.Category) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, category)
	}
	return nil
}

func (s *stubCategoryRepo) Delete(ctx context.Context, id string) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

type stubPostRepo struct {
	createFn             func(ctx context.Context, post *models.Post) error
	getByIDFn            func(ctx context.Context, id string) (*models.Post, error)
	listAllFn            func(ctx context.Context, params models.PageParams) ([]models.Post, int64, error)
	listPublishedFn      func(ctx context.Context, params models.PageParams) ([]models.Post, int64, error)
	updateFn             func(ctx context.Context, post *models.Post) error
	replaceCategoriesFn  func(ctx context.Context, post *models.Post, categories []models.Category) error
	incrementViewCountFn func(ctx context.Context, id string) error
	deleteFn             func(ctx context.Context, id string) error
}

func (s *stubPostRepo) Create(ctx context.Context, post *models.Post) error {
	if s.createFn != nil {
		return s.createFn(ctx, post)
	}
	return nil
}

func (s *stubPostRepo) GetByID(ctx context.Context, id string) (*models.Post, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, models.NewNotFoundError("Post", id)
}

func (s *stubPostRepo) ListAll(ctx context.Context, params models.PageParams) ([]models.Post, int64, error) {
	if s.listAllFn != nil {
		return s.listAllFn(ctx, params)
	}
	return nil, 0, nil
}

func (s *stubPostRepo) ListPublished(ctx context.Context, params models.PageParams) ([]models.Post, int64, error) {
	if s.listPublishedFn != nil {
		return s.listPublishedFn(ctx, params)
	}
	return nil, 0, nil
}

func (s *stubPostRepo) Update(ctx context.Context, post *models.Post) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, post)
	}
	return nil
}

func (s *stubPostRepo) ReplaceCategories(ctx context.Context, post *models.Post, categories []models.Category) error {
	if s.replaceCategoriesFn != nil {
		return s.replaceCategoriesFn(ctx, post, categories)
	}
	return nil
}

func (s *stubPostRepo) IncrementViewCount(ctx context.Context, id string) error {
	if s.incrementViewCountFn != nil {
		return s.incrementViewCountFn(ctx, id)
	}
	return nil
}

func (s *stubPostRepo) Delete(ctx context.Context, id string) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

type stubCommentRepo struct {
	createFn       func(ctx context.Context, comment *models.Comment) error
	getByIDFn      func(ctx context.Context, id string) (*models.Comment, error)
	listAllFn      func(ctx context.Context, params models.PageParams) ([]models.Comment, int64, error)
	listApprovedFn func(ctx context.Context, params models.PageParams) ([]models.Comment, int64, error)
	listByPostFn   func(ctx context.Context, postID string, params models.PageParams) ([]models.Comment, int64, error)
	updateFn       func(ctx context.Context, comment *models.Comment) error
	approveFn      func(ctx context.Context, id string) error
	deleteFn       func(ctx context.Context, id string) error
}

func (s *stubCommentRepo) Create(ctx context.Context, comment *models.Comment) error {
	if s.createFn != nil {
		return s.createFn(ctx, comment)
	}
	return nil
}

func (s *stubCommentRepo) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, models.NewNotFoundError("Comment", id)
}

func (s *stubCommentRepo) ListAll(ctx context.Context, params models.PageParams) ([]models.Comment, int64, error) {
	if s.listAllFn != nil {
		return s.listAllFn(ctx, params)
	}
	return nil, 0, nil
}

func (s *stubCommentRepo) ListApproved(ctx context.Context, params models.PageParams) ([]models.Comment, int64, error) {
	if s.listApprovedFn != nil {
		return s.listApprovedFn(ctx, params)
	}
	return nil, 0, nil
}

func (s *stubCommentRepo) ListByPost(ctx context.Context, postID string, params models.PageParams) ([]models.Comment, int64, error) {
	if s.listByPostFn != nil {
		return s.listByPostFn(ctx, postID, params)
	}
	return nil, 0, nil
}

func (s *stubCommentRepo) Update(ctx context.Context, comment *models.Comment) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, comment)
	}
	return nil
}

func (s *stubCommentRepo) Approve(ctx context.Context, id string) error {
	if s.approveFn != nil {
		return s.approveFn(ctx, id)
	}
	return nil
}

func (s *stubCommentRepo) Delete(ctx context.Context, id string) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}
