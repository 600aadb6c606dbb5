package service

import (
	"context"
	"testing"

	"servidoc/internal/auth"
	"servidoc/internal/model"
	"servidoc/internal/repository"
	repoMocks "servidoc/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testBcryptCost = 4 // minimum cost, keeps the tests fast

func newUserService(repo repository.UserRepository) (UserService, *auth.TokenIssuer) {
	issuer := auth.NewTokenIssuer("test-secret", 60)
	return NewUserService(repo, issuer, testBcryptCost), issuer
}

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		inName     string
		email      string
		password   string
		role       string
		setupMocks func(mRepo *repoMocks.MockUserRepository)
		wantErr    error
	}{
		{
			name:     "happy path",
			inName:   "Maria",
			email:    "Maria@Example.com",
			password: "s3cret",
			role:     model.RoleManager,
			setupMocks: func(mRepo *repoMocks.MockUserRepository) {
				mRepo.On("Create", ctx, mock.MatchedBy(func(u *model.User) bool {
					// email lowered, password hashed, id assigned
					return u.Email == "maria@example.com" &&
						u.ID != "" &&
						u.PasswordHash != "" &&
						u.PasswordHash != "s3cret" &&
						auth.VerifyPassword(u.PasswordHash, "s3cret")
				})).Return(&model.User{ID: "gen-id", Email: "maria@example.com", Role: model.RoleManager}, nil)
			},
		},
		{
			name:     "missing name",
			email:    "maria@example.com",
			password: "s3cret",
			role:     model.RoleCommon,
			wantErr:  ErrMissingFields,
		},
		{
			name:     "missing password",
			inName:   "Maria",
			email:    "maria@example.com",
			role:     model.RoleCommon,
			wantErr:  ErrMissingFields,
		},
		{
			name:     "invalid role",
			inName:   "Maria",
			email:    "maria@example.com",
			password: "s3cret",
			role:     "admin",
			wantErr:  ErrInvalidRole,
		},
		{
			name:     "duplicate email",
			inName:   "Maria",
			email:    "maria@example.com",
			password: "s3cret",
			role:     model.RoleCommon,
			setupMocks: func(mRepo *repoMocks.MockUserRepository) {
				mRepo.On("Create", ctx, mock.Anything).Return(nil, repository.ErrDuplicateEmail)
			},
			wantErr: ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockUserRepository)
			if tt.setupMocks != nil {
				tt.setupMocks(mRepo)
			}
			svc, _ := newUserService(mRepo)

			u, err := svc.Register(ctx, tt.inName, tt.email, tt.password, tt.role)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, u)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, u)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()

	hash, err := auth.HashPassword("s3cret", testBcryptCost)
	require.NoError(t, err)
	stored := &model.User{
		ID:           "user-1",
		Email:        "maria@example.com",
		PasswordHash: hash,
		Role:         model.RoleManager,
	}

	t.Run("token encodes the stored id and role", func(t *testing.T) {
		mRepo := new(repoMocks.MockUserRepository)
		mRepo.On("FindByEmail", ctx, "maria@example.com").Return(stored, nil)
		svc, issuer := newUserService(mRepo)

		tok, err := svc.Login(ctx, "maria@example.com", "s3cret")
		require.NoError(t, err)

		id, err := issuer.Parse(tok)
		require.NoError(t, err)
		assert.Equal(t, "user-1", id.UserID)
		assert.Equal(t, model.RoleManager, id.Role)
	})

	t.Run("email is normalized before lookup", func(t *testing.T) {
		mRepo := new(repoMocks.MockUserRepository)
		mRepo.On("FindByEmail", ctx, "maria@example.com").Return(stored, nil)
		svc, _ := newUserService(mRepo)

		_, err := svc.Login(ctx, "  MARIA@example.com ", "s3cret")
		assert.NoError(t, err)
		mRepo.AssertExpectations(t)
	})

	t.Run("wrong password", func(t *testing.T) {
		mRepo := new(repoMocks.MockUserRepository)
		mRepo.On("FindByEmail", ctx, "maria@example.com").Return(stored, nil)
		svc, _ := newUserService(mRepo)

		// Close but wrong passwords still fail.
		_, err := svc.Login(ctx, "maria@example.com", "s3cret ")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email looks like wrong password", func(t *testing.T) {
		mRepo := new(repoMocks.MockUserRepository)
		mRepo.On("FindByEmail", ctx, "ghost@example.com").Return(nil, repository.ErrNotFound)
		svc, _ := newUserService(mRepo)

		_, err := svc.Login(ctx, "ghost@example.com", "whatever")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("missing fields", func(t *testing.T) {
		mRepo := new(repoMocks.MockUserRepository)
		svc, _ := newUserService(mRepo)

		_, err := svc.Login(ctx, "", "pw")
		assert.ErrorIs(t, err, ErrMissingFields)

		_, err = svc.Login(ctx, "maria@example.com", "")
		assert.ErrorIs(t, err, ErrMissingFields)
	})
}
