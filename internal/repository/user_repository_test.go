package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// These tests pin the SQL shape the Postgres backend sees, which the
// sqlite-backed handler tests cannot observe.

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db, mock
}

func userRows() *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "username", "email", "password_hash", "role", "avatar_url", "created_at", "updated_at",
	}).AddRow("u1", "alice", "a@x.com", "hash", "Artist", "", now, now)
}

func TestUserRepository_FindByIdentifier_LowercasesEmail(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1 OR username = \$2`).
		WithArgs("a@x.com", "A@X.com", 1).
		WillReturnRows(userRows())

	user, err := repo.FindByIdentifier("A@X.com")
	require.NoError(t, err)
	require.Equal(t, "alice", user.Username)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_SearchByUsername_CaseInsensitiveWithLimit(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE LOWER\(username\) LIKE \$1`).
		WithArgs("%ali%", 10).
		WillReturnRows(userRows())

	users, err := repo.SearchByUsername("ALI", 10)
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_ExistsByEmailOrUsername(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE email = \$1 OR username = \$2`).
		WithArgs("a@x.com", "alice").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	taken, err := repo.ExistsByEmailOrUsername("a@x.com", "alice")
	require.NoError(t, err)
	require.True(t, taken)
	require.NoError(t, mock.ExpectationsWereMet())
}
