package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsUniqueConstraintError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{
			name: "postgres duplicate key",
			err:  errors.New(`duplicate key value violates unique constraint "idx_users_email"`),
			want: true,
		},
		{
			name: "postgres sqlstate",
			err:  fmt.Errorf("pq: error (SQLSTATE 23505)"),
			want: true,
		},
		{
			name: "sqlite unique constraint",
			err:  errors.New("UNIQUE constraint failed: users.email"),
			want: true,
		},
		{
			name: "unrelated error",
			err:  errors.New("connection refused"),
			want: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, isUniqueConstraintError(tt.err))
		})
	}
}
