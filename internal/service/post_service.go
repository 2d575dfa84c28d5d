package service

import (
	"context"
	"errors"
	"time"

	"inkwell/internal/models"
	"inkwell/internal/observability"
	"inkwell/internal/repository"
	"inkwell/internal/validation"
)

type PostService struct {
	postRepo   repository.PostRepository
	userRepo   repository.UserRepository
	categories *CategoryService
	log        *observability.StructuredLogger
}

type CreatePostInput struct {
	AuthorID    string
	Title       string
	Slug        string
	Content     string
	Excerpt     string
	Published   bool
	CategoryIDs []string
}

type UpdatePostInput struct {
	ActorID     string
	PostID      string
	Title       *string
	Slug        *string
	Content     *string
	Excerpt     *string
	Published   *bool
	CategoryIDs *[]string
}

func NewPostService(
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	categories *CategoryService,
) *PostService {
	return &PostService{
		postRepo:   postRepo,
		userRepo:   userRepo,
		categories: categories,
		log:        observability.NewStructuredLogger(),
	}
}

func (s *PostService) validateCreate(in CreatePostInput) error {
	if err := validation.ValidatePostTitle(in.Title); err != nil {
		return models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePostSlug(in.Slug); err != nil {
		return models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePostContent(in.Content); err != nil {
		return models.NewValidationError(err.Error())
	}
	if err := validation.ValidateExcerpt(in.Excerpt); err != nil {
		return models.NewValidationError(err.Error())
	}
	return nil
}

// resolveCategoriesStrict maps ids to categories and rejects the request
// if any id is unknown.
func (s *PostService) resolveCategoriesStrict(ctx context.Context, ids []string) ([]models.Category, error) {
	categories, err := s.categories.ResolveByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(categories) != len(ids) {
		return nil, models.NewValidationError("One or more category IDs are invalid")
	}
	return categories, nil
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if err := s.validateCreate(in); err != nil {
		return nil, err
	}

	author, err := s.userRepo.GetByID(ctx, in.AuthorID)
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) && appErr.Code == models.CodeNotFound {
			return nil, models.NewValidationError("Author does not exist")
		}
		return nil, err
	}
	if !author.IsActive {
		return nil, models.NewValidationError("Author account is not active")
	}

	categories, err := s.resolveCategoriesStrict(ctx, in.CategoryIDs)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:      in.Title,
		Slug:       in.Slug,
		Content:    in.Content,
		Excerpt:    in.Excerpt,
		Published:  in.Published,
		AuthorID:   in.AuthorID,
		Categories: categories,
	}
	if in.Published {
		now := time.Now()
		post.PublishedAt = &now
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	s.log.LogServiceCall(ctx, "post_service", "create", map[string]interface{}{
		"post_id":   post.ID,
		"author_id": post.AuthorID,
		"published": post.Published,
	})
	if in.Published {
		observability.PostsPublished.Inc()
	}
	return s.postRepo.GetByID(ctx, post.ID)
}

func (s *PostService) ListAllPosts(ctx context.Context, params models.PageParams) ([]models.Post, int64, error) {
	return s.postRepo.ListAll(ctx, params)
}

func (s *PostService) ListPublishedPosts(ctx context.Context, params models.PageParams) ([]models.Post, int64, error) {
	return s.postRepo.ListPublished(ctx, params)
}

func (s *PostService) GetPostByID(ctx context.Context, id string) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != in.ActorID {
		return nil, models.NewForbiddenError("You can only update your own posts")
	}

	if in.Title != nil {
		if err := validation.ValidatePostTitle(*in.Title); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		post.Title = *in.Title
	}
	if in.Slug != nil {
		if err := validation.ValidatePostSlug(*in.Slug); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		post.Slug = *in.Slug
	}
	if in.Content != nil {
		if err := validation.ValidatePostContent(*in.Content); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		post.Content = *in.Content
	}
	if in.Excerpt != nil {
		if err := validation.ValidateExcerpt(*in.Excerpt); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		post.Excerpt = *in.Excerpt
	}

	// Publishing is one-way. The timestamp records the first transition
	// and never moves; published=false on a published post is ignored.
	if in.Published != nil && *in.Published && !post.Published {
		post.Published = true
		if post.PublishedAt == nil {
			now := time.Now()
			post.PublishedAt = &now
		}
		observability.PostsPublished.Inc()
		s.log.LogWithCorrelation(ctx, "post published", map[string]interface{}{
			"post_id": post.ID,
		})
	}

	var replacement []models.Category
	if in.CategoryIDs != nil {
		replacement, err = s.resolveCategoriesStrict(ctx, *in.CategoryIDs)
		if err != nil {
			return nil, err
		}
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	if in.CategoryIDs != nil {
		if err := s.postRepo.ReplaceCategories(ctx, post, replacement); err != nil {
			return nil, err
		}
	}
	return s.postRepo.GetByID(ctx, post.ID)
}

// RecordView bumps the post's view counter.
func (s *PostService) RecordView(ctx context.Context, id string) error {
	return s.postRepo.IncrementViewCount(ctx, id)
}

// DeletePost removes the post and everything hanging off it. Only the
// author may delete.
func (s *PostService) DeletePost(ctx context.Context, actorID, postID string) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.AuthorID != actorID {
		return models.NewForbiddenError("You can only delete your own posts")
	}
	if err := s.postRepo.Delete(ctx, postID); err != nil {
		return err
	}
	s.log.LogServiceCall(ctx, "post_service", "delete", map[string]interface{}{
		"post_id": postID,
	})
	return nil
}
