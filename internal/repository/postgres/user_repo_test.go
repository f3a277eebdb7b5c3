package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/aiguilog/aiguilog/internal/domain"
	"github.com/aiguilog/aiguilog/internal/repository/postgres"
	"github.com/aiguilog/aiguilog/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func newUser(pseudo string) *domain.User {
	return &domain.User{
		ID:           uuid.New(),
		FirstName:    "Jean",
		LastName:     "Testeur",
		Pseudo:       pseudo,
		BirthDate:    datatypes.Date(time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC)),
		PasswordHash: "hashedpassword",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}

func TestUserRepository_Create(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewUserRepository(testDB.DB)
	ctx := context.Background()

	tests := []struct {
		name    string
		user    *domain.User
		wantErr error
	}{
		{
			name: "successful creation",
			user: newUser("testuser"),
		},
		{
			name:    "duplicate pseudo",
			user:    newUser("testuser"),
			wantErr: domain.ErrPseudoTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.Create(ctx, tt.user)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestUserRepository_GetByID(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewUserRepository(testDB.DB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().
		WithPseudo("getbyid_user").
		Build(t, testDB.DB)

	t.Run("existing user", func(t *testing.T) {
		got, err := repo.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
		assert.Equal(t, user.Pseudo, got.Pseudo)
	})

	t.Run("non-existent user", func(t *testing.T) {
		_, err := repo.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestUserRepository_GetByPseudo(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewUserRepository(testDB.DB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().
		WithPseudo("pseudo_user").
		Build(t, testDB.DB)

	t.Run("existing pseudo", func(t *testing.T) {
		got, err := repo.GetByPseudo(ctx, "pseudo_user")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
	})

	t.Run("non-existent pseudo", func(t *testing.T) {
		_, err := repo.GetByPseudo(ctx, "nonexistent")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
