package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"servidoc/internal/model"
	"servidoc/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

var userCols = []string{"id", "name", "email", "password_hash", "role", "created_at"}

func TestUserPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewUserPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	u := &model.User{
		ID:           "test-uuid",
		Name:         "Maria",
		Email:        "maria@example.com",
		PasswordHash: "$2a$10$hash",
		Role:         model.RoleManager,
		CreatedAt:    now,
	}

	t.Run("success", func(t *testing.T) {
		rows := sqlmock.NewRows(userCols).
			AddRow(u.ID, u.Name, u.Email, u.PasswordHash, u.Role, u.CreatedAt)

		mock.ExpectQuery("INSERT INTO users").
			WithArgs(u.ID, u.Name, u.Email, u.PasswordHash, u.Role, u.CreatedAt).
			WillReturnRows(rows)

		result, err := repo.Create(ctx, u)

		assert.NoError(t, err)
		assert.Equal(t, u.Email, result.Email)
	})

	t.Run("duplicate email", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO users").
			WithArgs(u.ID, u.Name, u.Email, u.PasswordHash, u.Role, u.CreatedAt).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

		result, err := repo.Create(ctx, u)

		assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
		assert.Nil(t, result)
	})
}

func TestUserPostgres_FindByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewUserPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows(userCols).
			AddRow("test-id", "Maria", "maria@example.com", "$2a$10$hash", "manager", time.Now())

		mock.ExpectQuery("SELECT (.+) FROM users WHERE email = ?").
			WithArgs("maria@example.com").
			WillReturnRows(rows)

		u, err := repo.FindByEmail(ctx, "maria@example.com")

		assert.NoError(t, err)
		assert.Equal(t, "test-id", u.ID)
		assert.Equal(t, "manager", u.Role)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM users WHERE email = ?").
			WithArgs("ghost@example.com").
			WillReturnError(sql.ErrNoRows)

		u, err := repo.FindByEmail(ctx, "ghost@example.com")

		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.Nil(t, u)
	})
}
