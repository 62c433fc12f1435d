package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestUserConflict(t *testing.T) {
	emailViolation := &pgconn.PgError{Code: "23505", ConstraintName: "idx_users_email"}
	usernameViolation := &pgconn.PgError{Code: "23505", ConstraintName: "idx_users_username"}

	assert.ErrorIs(t, userConflict(emailViolation), ErrDuplicateEmail)
	assert.ErrorIs(t, userConflict(usernameViolation), ErrDuplicateKey)
	assert.NotErrorIs(t, userConflict(usernameViolation), ErrDuplicateEmail)

	// the email sentinel still reads as a generic duplicate
	assert.ErrorIs(t, userConflict(emailViolation), ErrDuplicateKey)

	// wrapped violations are still recognized
	wrapped := fmt.Errorf("insert: %w", emailViolation)
	assert.ErrorIs(t, userConflict(wrapped), ErrDuplicateEmail)

	// anything else is not a conflict
	assert.Nil(t, userConflict(errors.New("connection reset")))
	assert.Nil(t, userConflict(&pgconn.PgError{Code: "23503"}))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505", ConstraintName: "idx_post_likes_user_post"}))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "40001"}))
	assert.False(t, isUniqueViolation(errors.New("timeout")))
}
