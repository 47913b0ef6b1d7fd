package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/Totarae/SecondBrain/internal/apperr"
	"github.com/Totarae/SecondBrain/internal/mocks"
	"github.com/Totarae/SecondBrain/internal/model"
	"github.com/Totarae/SecondBrain/internal/service"
	"github.com/Totarae/SecondBrain/internal/storage"
)

func newContentService(t *testing.T) (*service.ContentService, *storage.MemoryStore) {
	t.Helper()
	store, err := storage.NewMemoryStore("", zap.NewNop())
	require.NoError(t, err)
	return service.NewContentService(store, zap.NewNop()), store
}

func TestAddContent_CreatesTagsOnce(t *testing.T) {
	ctx := context.Background()
	s, _ := newContentService(t)

	_, err := s.AddContent(ctx, "alice", "t1", "https://x/1", model.ContentTwitter, []string{"go", " go ", "db"})
	require.NoError(t, err)
	_, err = s.AddContent(ctx, "alice", "t2", "https://x/2", model.ContentYoutube, []string{"db"})
	require.NoError(t, err)

	items, err := s.ListContent(ctx, "alice", "")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, []string{"go", "db"}, items[0].TagTitles())
	assert.Equal(t, items[0].Tags[1].ID, items[1].Tags[0].ID)
}

func TestAddContent_RejectsUnknownType(t *testing.T) {
	s, _ := newContentService(t)
	_, err := s.AddContent(context.Background(), "alice", "t", "https://x", model.ContentType("myspace"), nil)
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestListContent_OwnerIsolation(t *testing.T) {
	ctx := context.Background()
	s, _ := newContentService(t)

	_, err := s.AddContent(ctx, "alice", "a", "https://x/a", model.ContentTwitter, nil)
	require.NoError(t, err)
	_, err = s.AddContent(ctx, "bob", "b", "https://x/b", model.ContentTwitter, nil)
	require.NoError(t, err)

	items, err := s.ListContent(ctx, "alice", "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	for _, c := range items {
		assert.Equal(t, "alice", c.OwnerID)
	}

	none, err := s.ListContent(ctx, "alice", model.ContentReddit)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestDeleteContent_ForbiddenLeavesRecord(t *testing.T) {
	ctx := context.Background()
	s, _ := newContentService(t)

	id, err := s.AddContent(ctx, "alice", "a", "https://x/a", model.ContentMedium, nil)
	require.NoError(t, err)

	err = s.DeleteContent(ctx, "bob", id)
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	items, err := s.ListContent(ctx, "alice", "")
	require.NoError(t, err)
	assert.Len(t, items, 1)

	require.NoError(t, s.DeleteContent(ctx, "alice", id))
	items, err = s.ListContent(ctx, "alice", "")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestDeleteContent_NotFound(t *testing.T) {
	s, _ := newContentService(t)

	assert.ErrorIs(t, s.DeleteContent(context.Background(), "alice", uuid.NewString()), apperr.ErrNotFound)
	assert.ErrorIs(t, s.DeleteContent(context.Background(), "alice", "not-a-uuid"), apperr.ErrNotFound)
}

func TestShareLink_Idempotent(t *testing.T) {
	ctx := context.Background()
	s, _ := newContentService(t)

	h1, err := s.GetOrCreateShareLink(ctx, "alice")
	require.NoError(t, err)
	h2, err := s.GetOrCreateShareLink(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, h1, h2)

	other, err := s.GetOrCreateShareLink(ctx, "bob")
	require.NoError(t, err)
	assert.NotEqual(t, h1, other)
}

func TestShareLink_DisableThenRecreate(t *testing.T) {
	ctx := context.Background()
	s, _ := newContentService(t)

	h1, err := s.GetOrCreateShareLink(ctx, "alice")
	require.NoError(t, err)
	require.NoError(t, s.DisableShareLink(ctx, "alice"))
	require.NoError(t, s.DisableShareLink(ctx, "alice"))

	_, _, err = s.ResolveShareLink(ctx, h1)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	h2, err := s.GetOrCreateShareLink(ctx, "alice")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}

func TestShareLink_ConcurrentCreateConverges(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)

	existing := &model.ShareLink{Hash: "winner", OwnerID: "alice"}
	gomock.InOrder(
		repo.EXPECT().GetShareLinkByOwner(gomock.Any(), "alice").Return(nil, apperr.NotFound("share link not found")),
		repo.EXPECT().SaveShareLink(gomock.Any(), gomock.Any()).Return(apperr.Conflict("share link already exists")),
		repo.EXPECT().GetShareLinkByOwner(gomock.Any(), "alice").Return(existing, nil),
	)

	s := service.NewContentService(repo, zap.NewNop())
	hash, err := s.GetOrCreateShareLink(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "winner", hash)
}

func TestResolveShareLink(t *testing.T) {
	ctx := context.Background()
	s, store := newContentService(t)

	require.NoError(t, store.CreateUser(ctx, &model.User{ID: "alice-id", Username: "alice"}))
	_, err := s.AddContent(ctx, "alice-id", "a", "https://x/a", model.ContentYoutube, nil)
	require.NoError(t, err)
	_, err = s.AddContent(ctx, "bob-id", "b", "https://x/b", model.ContentYoutube, nil)
	require.NoError(t, err)

	hash, err := s.GetOrCreateShareLink(ctx, "alice-id")
	require.NoError(t, err)

	username, items, err := s.ResolveShareLink(ctx, hash)
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
	require.Len(t, items, 1)
	assert.Equal(t, "a", items[0].Title)

	_, _, err = s.ResolveShareLink(ctx, "missing")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestListContent_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	repo.EXPECT().GetContentByOwner(gomock.Any(), "alice", model.ContentType("")).Return(nil, errors.New("timeout"))

	s := service.NewContentService(repo, zap.NewNop())
	_, err := s.ListContent(context.Background(), "alice", "")
	require.Error(t, err)
	assert.Equal(t, apperr.CodeInternal, apperr.From(err).Code)
}
