package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestErrorIs(t *testing.T) {
	req := require.New(t)

	req.ErrorIs(ErrUsernameTaken, ErrConflict)
	req.ErrorIs(ErrEmailTaken, ErrConflict)
	req.NotErrorIs(ErrEmailTaken, ErrUsernameTaken)
	req.ErrorIs(ErrInvalidCredentials, ErrAuth)
	req.ErrorIs(ErrSelfMessage, ErrSelfMessage)
	req.NotErrorIs(ErrSelfMessage, ErrValidation)
	req.ErrorIs(fmt.Errorf("wrapped: %w", ErrListingNotFound), ErrNotFound)
	req.ErrorIs(Validation("Title must be at most 200 characters."), ErrValidation)
}

func TestNewDerivesKind(t *testing.T) {
	cases := map[int]Kind{
		http.StatusBadRequest:          KindValidation,
		http.StatusConflict:            KindConflict,
		http.StatusUnauthorized:        KindAuth,
		http.StatusForbidden:           KindSelfMessage,
		http.StatusNotFound:            KindNotFound,
		http.StatusInternalServerError: KindInternal,
	}
	for status, kind := range cases {
		require.Equal(t, kind, New("x", status).Kind, "status %d", status)
	}
}

func TestGetUniqueContraintError(t *testing.T) {
	t.Run("should map sqlite username violation", func(t *testing.T) {
		err := errors.New("UNIQUE constraint failed: users.username")
		require.Equal(t, ErrUsernameTaken, GetUniqueContraintError(err))
	})

	t.Run("should map postgres email violation", func(t *testing.T) {
		err := pkgerrors.Wrap(errors.New(`ERROR: duplicate key value violates unique constraint "idx_users_email" (SQLSTATE 23505)`), "create user")
		require.Equal(t, ErrEmailTaken, GetUniqueContraintError(err))
	})

	t.Run("should pass through api errors", func(t *testing.T) {
		require.Equal(t, ErrUsernameTaken, GetUniqueContraintError(ErrUsernameTaken))
	})

	t.Run("should treat other failures as internal", func(t *testing.T) {
		require.Equal(t, ErrInternalServerError, GetUniqueContraintError(errors.New("connection reset")))
	})
}

func TestStatusAndMessageOf(t *testing.T) {
	req := require.New(t)

	req.Equal(http.StatusForbidden, StatusOf(ErrSelfMessage))
	req.Equal(http.StatusInternalServerError, StatusOf(errors.New("boom")))
	req.Equal("Passwords do not match.", MessageOf(fmt.Errorf("register: %w", ErrPasswordMismatch)))
	req.Equal(ErrInternalServerError.Message, MessageOf(errors.New("pq: relation does not exist")))
}
