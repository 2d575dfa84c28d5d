package server

import (
	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreatePost handles POST /api/posts. The authenticated user becomes the
// post's author.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		Title       string   `json:"title"`
		Slug        string   `json:"slug"`
		Content     string   `json:"content"`
		Excerpt     string   `json:"excerpt"`
		Published   bool     `json:"published"`
		CategoryIDs []string `json:"category_ids"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.Context(), service.CreatePostInput{
		AuthorID:    s.actorID(c),
		Title:       req.Title,
		Slug:        req.Slug,
		Content:     req.Content,
		Excerpt:     req.Excerpt,
		Published:   req.Published,
		CategoryIDs: req.CategoryIDs,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// ListPosts handles GET /api/posts
func (s *Server) ListPosts(c *fiber.Ctx) error {
	params, err := s.parsePageParams(c)
	if err != nil {
		return nil
	}

	posts, total, err := s.postService.ListAllPosts(c.Context(), params)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.NewPage(posts, total, params))
}

// ListPublishedPosts handles GET /api/posts/published
func (s *Server) ListPublishedPosts(c *fiber.Ctx) error {
	params, err := s.parsePageParams(c)
	if err != nil {
		return nil
	}

	posts, total, err := s.postService.ListPublishedPosts(c.Context(), params)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.NewPage(posts, total, params))
}

// GetPost handles GET /api/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseUUID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPostByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(post)
}

// UpdatePost handles PATCH /api/posts/:id
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	id, err := s.parseUUID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Title       *string   `json:"title"`
		Slug        *string   `json:"slug"`
		Content     *string   `json:"content"`
		Excerpt     *string   `json:"excerpt"`
		Published   *bool     `json:"published"`
		CategoryIDs *[]string `json:"category_ids"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.UpdatePost(c.Context(), service.UpdatePostInput{
		ActorID:     s.actorID(c),
		PostID:      id,
		Title:       req.Title,
		Slug:        req.Slug,
		Content:     req.Content,
		Excerpt:     req.Excerpt,
		Published:   req.Published,
		CategoryIDs: req.CategoryIDs,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(post)
}

// RecordPostView handles PUT /api/posts/:id/view
func (s *Server) RecordPostView(c *fiber.Ctx) error {
	id, err := s.parseUUID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.RecordView(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeletePost handles DELETE /api/posts/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	id, err := s.parseUUID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(c.Context(), s.actorID(c), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
