package repositories_test

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Totarae/SecondBrain/internal/apperr"
	"github.com/Totarae/SecondBrain/internal/database"
	"github.com/Totarae/SecondBrain/internal/model"
	"github.com/Totarae/SecondBrain/internal/repositories"
)

// Тесты требуют PostgreSQL: TEST_DATABASE_DSN=postgres://...
func setupRepo(t *testing.T) *repositories.BrainRepository {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN is not set")
	}

	logger := zap.NewNop()
	require.NoError(t, database.Migrate(dsn, logger))

	db, err := database.NewDB(context.Background(), dsn, logger)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	return repositories.NewBrainRepository(db)
}

func newUser(t *testing.T, repo *repositories.BrainRepository) *model.User {
	t.Helper()
	u := &model.User{ID: uuid.NewString(), Username: "user-" + uuid.NewString()[:8], PasswordHash: "hash", Created: time.Now()}
	require.NoError(t, repo.CreateUser(context.Background(), u))
	return u
}

func TestBrainRepository_Users(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	u := newUser(t, repo)
	err := repo.CreateUser(ctx, &model.User{ID: uuid.NewString(), Username: u.Username, PasswordHash: "x", Created: time.Now()})
	assert.ErrorIs(t, err, apperr.ErrConflict)

	got, err := repo.GetUserByUsername(ctx, u.Username)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = repo.GetUserByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestBrainRepository_Content(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	alice := newUser(t, repo)
	bob := newUser(t, repo)

	tags, err := repo.EnsureTags(ctx, []string{"go-" + alice.ID[:8], "db-" + alice.ID[:8]})
	require.NoError(t, err)
	require.Len(t, tags, 2)

	c1 := &model.Content{ID: uuid.NewString(), Title: "one", Link: "https://x/1", Type: model.ContentTwitter, OwnerID: alice.ID, Tags: tags, Created: time.Now()}
	c2 := &model.Content{ID: uuid.NewString(), Title: "two", Link: "https://x/2", Type: model.ContentYoutube, OwnerID: alice.ID, Created: time.Now()}
	c3 := &model.Content{ID: uuid.NewString(), Title: "bob", Link: "https://x/3", Type: model.ContentYoutube, OwnerID: bob.ID, Created: time.Now()}
	for _, c := range []*model.Content{c1, c2, c3} {
		require.NoError(t, repo.SaveContent(ctx, c))
	}

	items, err := repo.GetContentByOwner(ctx, alice.ID, "")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, c1.ID, items[0].ID)
	assert.Len(t, items[0].Tags, 2)
	assert.Equal(t, c2.ID, items[1].ID)

	yt, err := repo.GetContentByOwner(ctx, alice.ID, model.ContentYoutube)
	require.NoError(t, err)
	require.Len(t, yt, 1)

	assert.ErrorIs(t, repo.DeleteContent(ctx, c3.ID, alice.ID), apperr.ErrNotFound)
	require.NoError(t, repo.DeleteContent(ctx, c1.ID, alice.ID))
	_, err = repo.GetContent(ctx, c1.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	// метки переживают удаление записи
	again, err := repo.EnsureTags(ctx, []string{tags[0].Title})
	require.NoError(t, err)
	assert.Equal(t, tags[0].ID, again[0].ID)
}

func TestBrainRepository_ShareLinks(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	u := newUser(t, repo)
	hash := "h-" + uuid.NewString()
	require.NoError(t, repo.SaveShareLink(ctx, &model.ShareLink{ID: uuid.NewString(), Hash: hash, OwnerID: u.ID, Created: time.Now()}))

	err := repo.SaveShareLink(ctx, &model.ShareLink{ID: uuid.NewString(), Hash: "other-" + hash, OwnerID: u.ID, Created: time.Now()})
	assert.ErrorIs(t, err, apperr.ErrConflict)

	l, err := repo.GetShareLinkByHash(ctx, hash)
	require.NoError(t, err)
	assert.Equal(t, u.ID, l.OwnerID)

	require.NoError(t, repo.DeleteShareLink(ctx, u.ID))
	assert.ErrorIs(t, repo.DeleteShareLink(ctx, u.ID), apperr.ErrNotFound)
}

// Встречный порядок меток в параллельных транзакциях не должен приводить к deadlock.
func TestBrainRepository_EnsureTagsOppositeOrder(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	a, b := "tag-a-"+uuid.NewString()[:8], "tag-b-"+uuid.NewString()[:8]

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := repo.EnsureTags(ctx, []string{a, b})
			errs <- err
		}()
		go func() {
			defer wg.Done()
			_, err := repo.EnsureTags(ctx, []string{b, a})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
}

func TestBrainRepository_Ping(t *testing.T) {
	repo := setupRepo(t)
	assert.NoError(t, repo.Ping(context.Background()))
}
