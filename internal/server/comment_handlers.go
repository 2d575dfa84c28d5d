package server

import (
	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateComment handles POST /api/comments. The authenticated user
// becomes the comment's author; the comment starts unapproved.
func (s *Server) CreateComment(c *fiber.Ctx) error {
	var req struct {
		PostID  string `json:"post_id"`
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if err := validateBodyUUID(c, req.PostID, "post_id"); err != nil {
		return nil
	}

	comment, err := s.commentService.CreateComment(c.Context(), service.CreateCommentInput{
		AuthorID: s.actorID(c),
		PostID:   req.PostID,
		Content:  req.Content,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

// ListComments handles GET /api/comments
func (s *Server) ListComments(c *fiber.Ctx) error {
	params, err := s.parsePageParams(c)
	if err != nil {
		return nil
	}

	comments, total, err := s.commentService.ListAllComments(c.Context(), params)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.NewPage(comments, total, params))
}

// ListApprovedComments handles GET /api/comments/approved
func (s *Server) ListApprovedComments(c *fiber.Ctx) error {
	params, err := s.parsePageParams(c)
	if err != nil {
		return nil
	}

	comments, total, err := s.commentService.ListApprovedComments(c.Context(), params)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.NewPage(comments, total, params))
}

// ListCommentsByPost handles GET /api/comments/post/:postId
func (s *Server) ListCommentsByPost(c *fiber.Ctx) error {
	postID, err := s.parseUUID(c, "postId")
	if err != nil {
		return nil
	}
	params, err := s.parsePageParams(c)
	if err != nil {
		return nil
	}

	comments, total, err := s.commentService.ListCommentsByPost(c.Context(), postID, params)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.NewPage(comments, total, params))
}

// GetComment handles GET /api/comments/:id
func (s *Server) GetComment(c *fiber.Ctx) error {
	id, err := s.parseUUID(c, "id")
	if err != nil {
		return nil
	}

	comment, err := s.commentService.GetCommentByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(comment)
}

// UpdateComment handles PATCH /api/comments/:id
func (s *Server) UpdateComment(c *fiber.Ctx) error {
	id, err := s.parseUUID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.UpdateComment(c.Context(), service.UpdateCommentInput{
		CommentID: id,
		Content:   req.Content,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(comment)
}

// ApproveComment handles PUT /api/comments/:id/approve
func (s *Server) ApproveComment(c *fiber.Ctx) error {
	id, err := s.parseUUID(c, "id")
	if err != nil {
		return nil
	}

	comment, err := s.commentService.ApproveComment(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(comment)
}

// DeleteComment handles DELETE /api/comments/:id
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	id, err := s.parseUUID(c, "id")
	if err != nil {
		return nil
	}

	err = s.commentService.DeleteComment(c.Context(), service.DeleteCommentInput{
		ActorID:   s.actorID(c),
		CommentID: id,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
