package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/org"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
)

type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (plainHasher) Verify(password, hash string) error {
	if hash != "hashed:"+password {
		return errors.NewUnauthorizedError("password verification failed")
	}
	return nil
}

func createTestUser(t *testing.T, repo user.Repository, email string, orgID uint) *user.User {
	u, err := user.NewUser(email, "secret123", orgID, plainHasher{})
	require.NoError(t, err)
	err = repo.Create(context.Background(), u)
	require.NoError(t, err)
	return u
}

func TestUserRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	t.Run("create assigns ID", func(t *testing.T) {
		u := createTestUser(t, repo, "alice@example.com", 1)
		assert.NotZero(t, u.ID())
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		createTestUser(t, repo, "bob@example.com", 1)

		dup, err := user.NewUser("bob@example.com", "secret123", 2, plainHasher{})
		require.NoError(t, err)
		err = repo.Create(ctx, dup)
		assert.True(t, errors.IsConflictError(err))
	})
}

func TestUserRepository_GetByEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	created := createTestUser(t, repo, "carol@example.com", 1)

	t.Run("existing email", func(t *testing.T) {
		found, err := repo.GetByEmail(ctx, "carol@example.com")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, created.ID(), found.ID())
	})

	t.Run("absent email returns nil without error", func(t *testing.T) {
		found, err := repo.GetByEmail(ctx, "nobody@example.com")
		assert.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestUserRepository_Update_AttachOrg(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := createTestUser(t, repo, "dave@example.com", 1)
	u.AttachOrg(1)

	err := repo.Update(ctx, u)
	require.NoError(t, err)

	found, err := repo.GetByID(ctx, u.ID())
	require.NoError(t, err)
	require.NotNil(t, found.OrgID())
	assert.Equal(t, uint(1), *found.OrgID())
}

func TestOrgRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrgRepository(db)
	ctx := context.Background()

	t.Run("create and get by name", func(t *testing.T) {
		o, err := org.NewOrg("acme")
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, o))
		assert.NotZero(t, o.ID())

		found, err := repo.GetByName(ctx, "acme")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, o.ID(), found.ID())
	})

	t.Run("absent name returns nil without error", func(t *testing.T) {
		found, err := repo.GetByName(ctx, "ghost corp")
		assert.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("duplicate name conflicts", func(t *testing.T) {
		dup, err := org.NewOrg("acme")
		require.NoError(t, err)
		err = repo.Create(ctx, dup)
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("delete", func(t *testing.T) {
		o, err := org.NewOrg("shortlived")
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, o))

		require.NoError(t, repo.Delete(ctx, o.ID()))
		err = repo.Delete(ctx, o.ID())
		assert.True(t, errors.IsNotFoundError(err))
	})
}
