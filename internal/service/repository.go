package service

import (
	"context"

	"github.com/Totarae/SecondBrain/internal/model"
)

//go:generate mockgen -destination=../mocks/repository_mock.go -package=mocks github.com/Totarae/SecondBrain/internal/service Repository

// Repository хранилище пользователей, меток, ссылок и публичных ссылок.
// Отсутствие записи возвращается как apperr.ErrNotFound, нарушение уникальности как apperr.ErrConflict.
type Repository interface {
	CreateUser(ctx context.Context, u *model.User) error
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	GetUserByID(ctx context.Context, id string) (*model.User, error)

	// EnsureTags возвращает метки с указанными названиями, создавая недостающие.
	EnsureTags(ctx context.Context, titles []string) ([]model.Tag, error)
	SaveContent(ctx context.Context, c *model.Content) error
	GetContent(ctx context.Context, id string) (*model.Content, error)
	// GetContentByOwner возвращает записи владельца в порядке добавления.
	// Пустой contentType означает «все типы».
	GetContentByOwner(ctx context.Context, ownerID string, contentType model.ContentType) ([]*model.Content, error)
	DeleteContent(ctx context.Context, id, ownerID string) error

	GetShareLinkByOwner(ctx context.Context, ownerID string) (*model.ShareLink, error)
	GetShareLinkByHash(ctx context.Context, hash string) (*model.ShareLink, error)
	SaveShareLink(ctx context.Context, l *model.ShareLink) error
	DeleteShareLink(ctx context.Context, ownerID string) error

	Ping(ctx context.Context) error
}
