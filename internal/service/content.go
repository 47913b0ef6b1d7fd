package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Totarae/SecondBrain/internal/apperr"
	"github.com/Totarae/SecondBrain/internal/model"
	"github.com/Totarae/SecondBrain/internal/util"
)

const shareHashAttempts = 3

// ContentService управляет сохранёнными ссылками и публичным доступом к ним.
type ContentService struct {
	Repo   Repository
	Logger *zap.Logger
}

func NewContentService(repo Repository, logger *zap.Logger) *ContentService {
	return &ContentService{Repo: repo, Logger: logger}
}

// AddContent сохраняет ссылку и создаёт недостающие метки.
func (s *ContentService) AddContent(ctx context.Context, ownerID, title, link string, contentType model.ContentType, tags []string) (string, error) {
	if !contentType.Valid() {
		return "", apperr.Validation(fmt.Sprintf("unsupported content type %q", contentType))
	}

	var tagRecords []model.Tag
	if titles := util.NormalizeTags(tags); len(titles) > 0 {
		var err error
		tagRecords, err = s.Repo.EnsureTags(ctx, titles)
		if err != nil {
			return "", fmt.Errorf("ensure tags: %w", err)
		}
	}

	c := &model.Content{
		ID:      uuid.NewString(),
		Title:   title,
		Link:    link,
		Type:    contentType,
		Tags:    tagRecords,
		OwnerID: ownerID,
		Created: time.Now(),
	}
	if err := s.Repo.SaveContent(ctx, c); err != nil {
		return "", fmt.Errorf("save content: %w", err)
	}
	return c.ID, nil
}

// ListContent возвращает только записи владельца, в порядке добавления.
func (s *ContentService) ListContent(ctx context.Context, ownerID string, contentType model.ContentType) ([]*model.Content, error) {
	if contentType != "" && !contentType.Valid() {
		return nil, apperr.Validation(fmt.Sprintf("unsupported content type %q", contentType))
	}
	items, err := s.Repo.GetContentByOwner(ctx, ownerID, contentType)
	if err != nil {
		return nil, fmt.Errorf("list content: %w", err)
	}
	return items, nil
}

// DeleteContent удаляет запись владельца. Чужая запись даёт apperr.ErrForbidden
// и остаётся нетронутой.
func (s *ContentService) DeleteContent(ctx context.Context, ownerID, contentID string) error {
	if _, err := uuid.Parse(contentID); err != nil {
		return apperr.NotFound("content not found")
	}

	c, err := s.Repo.GetContent(ctx, contentID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return apperr.NotFound("content not found")
		}
		return fmt.Errorf("get content: %w", err)
	}
	if c.OwnerID != ownerID {
		s.Logger.Warn("delete of foreign content rejected",
			zap.String("user_id", ownerID),
			zap.String("content_id", contentID),
		)
		return apperr.Forbidden("content belongs to another user")
	}

	if err := s.Repo.DeleteContent(ctx, contentID, ownerID); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return apperr.NotFound("content not found")
		}
		return fmt.Errorf("delete content: %w", err)
	}
	return nil
}

// GetOrCreateShareLink возвращает существующий hash владельца или создаёт новый.
func (s *ContentService) GetOrCreateShareLink(ctx context.Context, ownerID string) (string, error) {
	for attempt := 0; attempt < shareHashAttempts; attempt++ {
		existing, err := s.Repo.GetShareLinkByOwner(ctx, ownerID)
		if err == nil {
			return existing.Hash, nil
		}
		if !errors.Is(err, apperr.ErrNotFound) {
			return "", fmt.Errorf("get share link: %w", err)
		}

		hash, err := util.GenerateShareHash()
		if err != nil {
			return "", err
		}
		link := &model.ShareLink{
			ID:      uuid.NewString(),
			Hash:    hash,
			OwnerID: ownerID,
			Created: time.Now(),
		}
		err = s.Repo.SaveShareLink(ctx, link)
		if err == nil {
			s.Logger.Info("share link created", zap.String("user_id", ownerID))
			return hash, nil
		}
		// конфликт: параллельный запрос уже создал ссылку либо совпал hash
		if !errors.Is(err, apperr.ErrConflict) {
			return "", fmt.Errorf("save share link: %w", err)
		}
	}
	return "", apperr.Internal("could not allocate share link", nil)
}

// DisableShareLink удаляет публичную ссылку владельца, если она есть.
func (s *ContentService) DisableShareLink(ctx context.Context, ownerID string) error {
	if err := s.Repo.DeleteShareLink(ctx, ownerID); err != nil && !errors.Is(err, apperr.ErrNotFound) {
		return fmt.Errorf("delete share link: %w", err)
	}
	return nil
}

// ResolveShareLink возвращает имя владельца и его записи по hash.
func (s *ContentService) ResolveShareLink(ctx context.Context, hash string) (string, []*model.Content, error) {
	link, err := s.Repo.GetShareLinkByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return "", nil, apperr.NotFound("share link not found")
		}
		return "", nil, fmt.Errorf("get share link: %w", err)
	}

	owner, err := s.Repo.GetUserByID(ctx, link.OwnerID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return "", nil, apperr.NotFound("share link not found")
		}
		return "", nil, fmt.Errorf("get owner: %w", err)
	}

	items, err := s.Repo.GetContentByOwner(ctx, link.OwnerID, "")
	if err != nil {
		return "", nil, fmt.Errorf("list shared content: %w", err)
	}
	return owner.Username, items, nil
}

// Ping проверяет доступность хранилища.
func (s *ContentService) Ping(ctx context.Context) error {
	return s.Repo.Ping(ctx)
}
