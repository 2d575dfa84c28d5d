package validation

import (
	"fmt"
	"regexp"
)

// Slugs are lowercase alphanumeric segments joined by single hyphens.
var slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// ValidatePostTitle checks post title length.
func ValidatePostTitle(title string) error {
	if len(title) < 5 {
		return fmt.Errorf("title must be at least 5 characters long")
	}
	if len(title) > 200 {
		return fmt.Errorf("title must not exceed 200 characters")
	}
	return nil
}

// ValidatePostSlug checks post slug length and format.
func ValidatePostSlug(slug string) error {
	if len(slug) < 5 {
		return fmt.Errorf("slug must be at least 5 characters long")
	}
	if len(slug) > 250 {
		return fmt.Errorf("slug must not exceed 250 characters")
	}
	if !slugRegex.MatchString(slug) {
		return fmt.Errorf("slug must contain only lowercase letters, numbers, and single hyphens")
	}
	return nil
}

// ValidatePostContent checks post body length.
func ValidatePostContent(content string) error {
	if len(content) < 10 {
		return fmt.Errorf("content must be at least 10 characters long")
	}
	return nil
}

// ValidateExcerpt checks the optional post excerpt.
func ValidateExcerpt(excerpt string) error {
	if len(excerpt) > 500 {
		return fmt.Errorf("excerpt must not exceed 500 characters")
	}
	return nil
}

// ValidateCategoryName checks category name length.
func ValidateCategoryName(name string) error {
	if len(name) < 2 {
		return fmt.Errorf("category name must be at least 2 characters long")
	}
	if len(name) > 50 {
		return fmt.Errorf("category name must not exceed 50 characters")
	}
	return nil
}

// ValidateCategorySlug checks category slug length and format.
func ValidateCategorySlug(slug string) error {
	if len(slug) < 2 {
		return fmt.Errorf("category slug must be at least 2 characters long")
	}
	if len(slug) > 50 {
		return fmt.Errorf("category slug must not exceed 50 characters")
	}
	if !slugRegex.MatchString(slug) {
		return fmt.Errorf("category slug must contain only lowercase letters, numbers, and single hyphens")
	}
	return nil
}

// ValidateDescription checks the optional category description.
func ValidateDescription(description string) error {
	if len(description) > 500 {
		return fmt.Errorf("description must not exceed 500 characters")
	}
	return nil
}

// ValidateCommentContent checks comment body length.
func ValidateCommentContent(content string) error {
	if len(content) < 1 {
		return fmt.Errorf("comment content must not be empty")
	}
	if len(content) > 1000 {
		return fmt.Errorf("comment content must not exceed 1000 characters")
	}
	return nil
}
