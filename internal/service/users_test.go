package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/Totarae/SecondBrain/internal/apperr"
	"github.com/Totarae/SecondBrain/internal/auth"
	"github.com/Totarae/SecondBrain/internal/mocks"
	"github.com/Totarae/SecondBrain/internal/model"
	"github.com/Totarae/SecondBrain/internal/service"
	"github.com/Totarae/SecondBrain/internal/storage"
)

func newUserService(t *testing.T) *service.UserService {
	t.Helper()
	store, err := storage.NewMemoryStore("", zap.NewNop())
	require.NoError(t, err)
	return service.NewUserService(store, auth.New("test-secret", time.Hour), zap.NewNop())
}

func TestCreateUser_DuplicateConflict(t *testing.T) {
	ctx := context.Background()
	s := newUserService(t)

	id, err := s.CreateUser(ctx, "alice", "pw1")
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	_, err = s.CreateUser(ctx, "alice", "pw2")
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestCreateUser_StoresOnlyHash(t *testing.T) {
	ctx := context.Background()
	s := newUserService(t)

	_, err := s.CreateUser(ctx, "alice", "pw1")
	require.NoError(t, err)

	u, err := s.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.NotEqual(t, "pw1", u.PasswordHash)
	assert.True(t, auth.VerifyPassword(u.PasswordHash, "pw1"))
}

func TestAuthenticate_TokenDecodesToUser(t *testing.T) {
	ctx := context.Background()
	s := newUserService(t)

	id, err := s.CreateUser(ctx, "alice", "pw1")
	require.NoError(t, err)

	before := time.Now()
	token, expires, err := s.Authenticate(ctx, "alice", "pw1")
	require.NoError(t, err)
	assert.WithinDuration(t, before.Add(time.Hour), expires, 5*time.Second)

	userID, err := s.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, id, userID)
}

func TestAuthenticate_FailuresIndistinguishable(t *testing.T) {
	ctx := context.Background()
	s := newUserService(t)

	_, err := s.CreateUser(ctx, "alice", "pw1")
	require.NoError(t, err)

	_, _, wrongPw := s.Authenticate(ctx, "alice", "nope")
	_, _, unknown := s.Authenticate(ctx, "mallory", "pw1")

	require.Error(t, wrongPw)
	require.Error(t, unknown)
	assert.ErrorIs(t, wrongPw, apperr.ErrAuth)
	assert.ErrorIs(t, unknown, apperr.ErrAuth)
	assert.Equal(t, wrongPw.Error(), unknown.Error())
}

func TestAuthenticate_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	repo.EXPECT().GetUserByUsername(gomock.Any(), "alice").Return(nil, errors.New("connection refused"))

	s := service.NewUserService(repo, auth.New("test-secret", time.Hour), zap.NewNop())
	_, _, err := s.Authenticate(context.Background(), "alice", "pw1")
	require.Error(t, err)
	assert.False(t, errors.Is(err, apperr.ErrAuth))
}

func TestCreateUser_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.AssignableToTypeOf(&model.User{})).Return(errors.New("disk full"))

	s := service.NewUserService(repo, auth.New("test-secret", time.Hour), zap.NewNop())
	_, err := s.CreateUser(context.Background(), "alice", "pw1")
	require.Error(t, err)
	assert.Equal(t, apperr.CodeInternal, apperr.From(err).Code)
}

func TestVerify_Expired(t *testing.T) {
	store, err := storage.NewMemoryStore("", zap.NewNop())
	require.NoError(t, err)
	issuer := &auth.Auth{SecretKey: []byte("test-secret"), TTL: -time.Minute}
	s := service.NewUserService(store, issuer, zap.NewNop())

	token, _, err := issuer.Issue("u1")
	require.NoError(t, err)

	_, err = s.Verify(token)
	assert.ErrorIs(t, err, apperr.ErrAuth)
	assert.Contains(t, err.Error(), "token expired")
}

func TestFindByUsername(t *testing.T) {
	ctx := context.Background()
	s := newUserService(t)

	id, err := s.CreateUser(ctx, "alice", "pw1")
	require.NoError(t, err)

	u, err := s.FindByUsername(ctx, " alice ")
	require.NoError(t, err)
	assert.Equal(t, id, u.ID)

	_, err = s.FindByUsername(ctx, "bob")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
