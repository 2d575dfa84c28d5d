package service

import (
	"context"

	"inkwell/internal/models"
	"inkwell/internal/observability"
	"inkwell/internal/repository"
	"inkwell/internal/validation"

	"go.opentelemetry.io/otel/attribute"
)

type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

type CreateCommentInput struct {
	AuthorID string
	PostID   string
	Content  string
}

type UpdateCommentInput struct {
	CommentID string
	Content   string
}

type DeleteCommentInput struct {
	ActorID   string
	CommentID string
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// CreateComment records a comment on a published post. Every comment
// starts unapproved regardless of what the caller sends.
func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	ctx, span := observability.GetTraceLayer().TraceServiceCall(ctx, "comment_service", "create")
	defer span.End()

	if err := validation.ValidateCommentContent(in.Content); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	if !post.Published {
		return nil, models.NewValidationError("Cannot comment on unpublished posts")
	}

	comment := &models.Comment{
		Content:  in.Content,
		Approved: false,
		AuthorID: in.AuthorID,
		PostID:   in.PostID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return s.commentRepo.GetByID(ctx, comment.ID)
}

func (s *CommentService) ListAllComments(ctx context.Context, params models.PageParams) ([]models.Comment, int64, error) {
	return s.commentRepo.ListAll(ctx, params)
}

func (s *CommentService) ListApprovedComments(ctx context.Context, params models.PageParams) ([]models.Comment, int64, error) {
	return s.commentRepo.ListApproved(ctx, params)
}

// ListCommentsByPost returns the approved conversation on a post, oldest
// first. A post id with no comments, including one that never existed or
// was deleted, yields an empty page rather than an error.
func (s *CommentService) ListCommentsByPost(ctx context.Context, postID string, params models.PageParams) ([]models.Comment, int64, error) {
	return s.commentRepo.ListByPost(ctx, postID, params)
}

func (s *CommentService) GetCommentByID(ctx context.Context, id string) (*models.Comment, error) {
	return s.commentRepo.GetByID(ctx, id)
}

// UpdateComment replaces the comment text verbatim. Edits do not reset
// the approval state.
func (s *CommentService) UpdateComment(ctx context.Context, in UpdateCommentInput) (*models.Comment, error) {
	if err := validation.ValidateCommentContent(in.Content); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	comment, err := s.commentRepo.GetByID(ctx, in.CommentID)
	if err != nil {
		return nil, err
	}

	comment.Content = in.Content
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}
	return s.commentRepo.GetByID(ctx, comment.ID)
}

// ApproveComment marks the comment visible. Approving an already
// approved comment is a no-op, not an error.
func (s *CommentService) ApproveComment(ctx context.Context, id string) (*models.Comment, error) {
	span, ctx := observability.NewSpan(ctx, "comment_service.approve")
	defer span.End()
	span.AddAttributes(attribute.String("comment.id", id))

	if _, err := s.commentRepo.GetByID(ctx, id); err != nil {
		span.SetError(err)
		return nil, err
	}
	if err := s.commentRepo.Approve(ctx, id); err != nil {
		span.SetError(err)
		return nil, err
	}
	observability.CommentsModerated.WithLabelValues("approve").Inc()
	return s.commentRepo.GetByID(ctx, id)
}

// DeleteComment removes a comment. Only its author may delete it.
func (s *CommentService) DeleteComment(ctx context.Context, in DeleteCommentInput) error {
	comment, err := s.commentRepo.GetByID(ctx, in.CommentID)
	if err != nil {
		return err
	}
	if comment.AuthorID != in.ActorID {
		return models.NewForbiddenError("You can only delete your own comments")
	}
	if err := s.commentRepo.Delete(ctx, in.CommentID); err != nil {
		return err
	}
	observability.CommentsModerated.WithLabelValues("delete").Inc()
	return nil
}
