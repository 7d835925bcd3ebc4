package db

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	apiError "github.com/techagentng/bookxchange/errors"
	"github.com/techagentng/bookxchange/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestAuthRepoUniqueness(t *testing.T) {
	repo := NewAuthRepo(newTestDB(t))
	alice := seedUser(t, repo, "alice")
	require.NotZero(t, alice.ID)

	require.ErrorIs(t, repo.IsUsernameExist("alice"), apiError.ErrUsernameTaken)
	require.NoError(t, repo.IsUsernameExist("Alice"))
	require.ErrorIs(t, repo.IsEmailExist("alice@example.com"), apiError.ErrEmailTaken)
	require.NoError(t, repo.IsEmailExist("bob@example.com"))

	_, err := repo.CreateUser(&models.User{Username: "alice", Email: "other@example.com", HashedPassword: "x"})
	require.ErrorIs(t, err, apiError.ErrUsernameTaken)

	_, err = repo.CreateUser(&models.User{Username: "alice2", Email: "alice@example.com", HashedPassword: "x"})
	require.ErrorIs(t, err, apiError.ErrEmailTaken)
}

func TestAuthRepoFind(t *testing.T) {
	repo := NewAuthRepo(newTestDB(t))
	alice := seedUser(t, repo, "alice")
	bob := seedUser(t, repo, "bob")

	got, err := repo.FindUserByUsername("alice")
	require.NoError(t, err)
	require.Equal(t, alice.ID, got.ID)

	_, err = repo.FindUserByUsername("ALICE")
	require.ErrorIs(t, err, apiError.ErrUserNotFound)

	got, err = repo.FindUserByID(bob.ID)
	require.NoError(t, err)
	require.Equal(t, "bob", got.Username)

	_, err = repo.FindUserByID(4242)
	require.ErrorIs(t, err, apiError.ErrNotFound)

	users, err := repo.FindUsersByIDs([]uint{alice.ID, bob.ID})
	require.NoError(t, err)
	require.Len(t, users, 2)

	users, err = repo.FindUsersByIDs(nil)
	require.NoError(t, err)
	require.Empty(t, users)
}

func TestAuthRepoBlacklist(t *testing.T) {
	repo := NewAuthRepo(newTestDB(t))
	require.False(t, repo.IsTokenInBlacklist("abc"))
	require.NoError(t, repo.AddToBlackList(&models.Blacklist{Token: " abc "}))
	require.True(t, repo.IsTokenInBlacklist("abc"))
	require.NoError(t, repo.AddToBlackList(&models.Blacklist{Token: "abc"}))
}

func newPostgresMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return gdb, mock
}

func TestAuthRepoPostgresDuplicateEmail(t *testing.T) {
	gdb, mock := newPostgresMock(t)
	repo := &authRepo{DB: gdb}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "users"`)).
		WillReturnError(&duplicateKeyError{constraint: "idx_users_email"})
	mock.ExpectRollback()

	_, err := repo.CreateUser(&models.User{Username: "alice", Email: "alice@example.com", HashedPassword: "x"})
	require.ErrorIs(t, err, apiError.ErrEmailTaken)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthRepoPostgresFindUserByUsername(t *testing.T) {
	gdb, mock := newPostgresMock(t)
	repo := &authRepo{DB: gdb}

	rows := sqlmock.NewRows([]string{"id", "username", "email", "hashed_password"}).
		AddRow(7, "alice", "alice@example.com", "hash")
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE username = \$1 ORDER BY "users"\."id" LIMIT .*`).
		WillReturnRows(rows)

	user, err := repo.FindUserByUsername("alice")
	require.NoError(t, err)
	require.Equal(t, uint(7), user.ID)
	require.Equal(t, "alice@example.com", user.Email)
	require.NoError(t, mock.ExpectationsWereMet())
}

type duplicateKeyError struct {
	constraint string
}

func (e *duplicateKeyError) Error() string {
	return `ERROR: duplicate key value violates unique constraint "` + e.constraint + `" (SQLSTATE 23505)`
}
