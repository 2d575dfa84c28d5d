package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePostTitle(t *testing.T) {
	assert.NoError(t, ValidatePostTitle("Hello World"))
	assert.NoError(t, ValidatePostTitle(strings.Repeat("t", 200)))
	assert.Error(t, ValidatePostTitle("Hey"))
	assert.Error(t, ValidatePostTitle(""))
	assert.Error(t, ValidatePostTitle(strings.Repeat("t", 201)))
}

func TestValidatePostSlug(t *testing.T) {
	tests := []struct {
		name    string
		slug    string
		wantErr bool
	}{
		{name: "simple slug", slug: "hello-world", wantErr: false},
		{name: "with numbers", slug: "go-1-24-release-notes", wantErr: false},
		{name: "too short", slug: "abcd", wantErr: true},
		{name: "uppercase rejected", slug: "Hello-World", wantErr: true},
		{name: "double hyphen rejected", slug: "hello--world", wantErr: true},
		{name: "leading hyphen rejected", slug: "-hello-world", wantErr: true},
		{name: "trailing hyphen rejected", slug: "hello-world-", wantErr: true},
		{name: "spaces rejected", slug: "hello world", wantErr: true},
		{name: "too long", slug: strings.Repeat("a", 251), wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidatePostSlug(tt.slug)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePostContent(t *testing.T) {
	assert.NoError(t, ValidatePostContent("0123456789"))
	assert.Error(t, ValidatePostContent("too short"))
	assert.Error(t, ValidatePostContent(""))
}

func TestValidateExcerpt(t *testing.T) {
	assert.NoError(t, ValidateExcerpt(""))
	assert.NoError(t, ValidateExcerpt(strings.Repeat("e", 500)))
	assert.Error(t, ValidateExcerpt(strings.Repeat("e", 501)))
}

func TestValidateCategoryName(t *testing.T) {
	assert.NoError(t, ValidateCategoryName("Go"))
	assert.NoError(t, ValidateCategoryName("Distributed Systems"))
	assert.Error(t, ValidateCategoryName("G"))
	assert.Error(t, ValidateCategoryName(strings.Repeat("c", 51)))
}

func TestValidateCategorySlug(t *testing.T) {
	assert.NoError(t, ValidateCategorySlug("go"))
	assert.NoError(t, ValidateCategorySlug("distributed-systems"))
	assert.Error(t, ValidateCategorySlug("g"))
	assert.Error(t, ValidateCategorySlug("Go"))
	assert.Error(t, ValidateCategorySlug("go--lang"))
	assert.Error(t, ValidateCategorySlug(strings.Repeat("s", 51)))
}

func TestValidateCommentContent(t *testing.T) {
	assert.NoError(t, ValidateCommentContent("x"))
	assert.NoError(t, ValidateCommentContent(strings.Repeat("c", 1000)))
	assert.Error(t, ValidateCommentContent(""))
	assert.Error(t, ValidateCommentContent(strings.Repeat("c", 1001)))
}
