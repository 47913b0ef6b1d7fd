package repositories

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Totarae/SecondBrain/internal/apperr"
	"github.com/Totarae/SecondBrain/internal/database"
	"github.com/Totarae/SecondBrain/internal/model"
)

const uniqueViolation = "23505"

const contentSelect = `
	SELECT c.id::text, c.title, c.link, c.type, c.user_id::text, c.created,
	       COALESCE(array_agg(t.id::text ORDER BY t.title) FILTER (WHERE t.id IS NOT NULL), '{}'),
	       COALESCE(array_agg(t.title ORDER BY t.title) FILTER (WHERE t.id IS NOT NULL), '{}')
	FROM content c
	LEFT JOIN content_tags ct ON ct.content_id = c.id
	LEFT JOIN tags t ON t.id = ct.tag_id`

// BrainRepository реализует service.Repository поверх PostgreSQL.
type BrainRepository struct {
	DB *database.DB
}

// NewBrainRepository создаёт новый экземпляр BrainRepository.
func NewBrainRepository(db *database.DB) *BrainRepository {
	return &BrainRepository{DB: db}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// CreateUser сохраняет пользователя. Занятое имя даёт apperr.ErrConflict.
func (r *BrainRepository) CreateUser(ctx context.Context, u *model.User) error {
	query := `INSERT INTO users (id, username, password_hash, created) VALUES ($1, $2, $3, $4)`
	if _, err := r.DB.Pool.Exec(ctx, query, u.ID, u.Username, u.PasswordHash, u.Created); err != nil {
		if isUniqueViolation(err) {
			return apperr.Conflict("username already exists").WithCause(err)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *BrainRepository) getUser(ctx context.Context, where string, arg any) (*model.User, error) {
	query := `SELECT id::text, username, password_hash, created FROM users WHERE ` + where
	u := &model.User{}
	err := r.DB.Pool.QueryRow(ctx, query, arg).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Created)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, fmt.Errorf("select user: %w", err)
	}
	return u, nil
}

func (r *BrainRepository) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.getUser(ctx, "username = $1", username)
}

func (r *BrainRepository) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperr.NotFound("user not found")
	}
	return r.getUser(ctx, "id = $1", id)
}

// EnsureTags создаёт недостающие метки в одной транзакции.
func (r *BrainRepository) EnsureTags(ctx context.Context, titles []string) ([]model.Tag, error) {
	tx, err := r.DB.Pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// DO UPDATE нужен, чтобы RETURNING вернул уже существующую строку
	query := `INSERT INTO tags (id, title) VALUES ($1, $2)
	          ON CONFLICT (title) DO UPDATE SET title = EXCLUDED.title
	          RETURNING id::text, title`

	// одинаковый порядок блокировок строк у параллельных транзакций
	ordered := slices.Clone(titles)
	slices.Sort(ordered)

	tags := make([]model.Tag, 0, len(ordered))
	for _, title := range ordered {
		var t model.Tag
		if err := tx.QueryRow(ctx, query, uuid.NewString(), title).Scan(&t.ID, &t.Title); err != nil {
			return nil, fmt.Errorf("upsert tag %q: %w", title, err)
		}
		tags = append(tags, t)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return tags, nil
}

// SaveContent сохраняет запись и её связи с метками в рамках транзакции.
func (r *BrainRepository) SaveContent(ctx context.Context, c *model.Content) error {
	tx, err := r.DB.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `INSERT INTO content (id, title, link, type, user_id, created) VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := tx.Exec(ctx, query, c.ID, c.Title, c.Link, string(c.Type), c.OwnerID, c.Created); err != nil {
		if isUniqueViolation(err) {
			return apperr.Conflict("content already exists").WithCause(err)
		}
		return fmt.Errorf("insert content: %w", err)
	}

	for _, t := range c.Tags {
		if _, err := tx.Exec(ctx, `INSERT INTO content_tags (content_id, tag_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`, c.ID, t.ID); err != nil {
			return fmt.Errorf("link tag %q: %w", t.Title, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func scanContent(row pgx.Row) (*model.Content, error) {
	var (
		c         model.Content
		typ       string
		tagIDs    []string
		tagTitles []string
	)
	if err := row.Scan(&c.ID, &c.Title, &c.Link, &typ, &c.OwnerID, &c.Created, &tagIDs, &tagTitles); err != nil {
		return nil, err
	}
	c.Type = model.ContentType(typ)
	c.Tags = make([]model.Tag, 0, len(tagIDs))
	for i := range tagIDs {
		c.Tags = append(c.Tags, model.Tag{ID: tagIDs[i], Title: tagTitles[i]})
	}
	return &c, nil
}

func (r *BrainRepository) GetContent(ctx context.Context, id string) (*model.Content, error) {
	query := contentSelect + ` WHERE c.id = $1 GROUP BY c.id`
	c, err := scanContent(r.DB.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("content not found")
		}
		return nil, fmt.Errorf("select content: %w", err)
	}
	return c, nil
}

// GetContentByOwner возвращает записи пользователя в порядке добавления.
func (r *BrainRepository) GetContentByOwner(ctx context.Context, ownerID string, contentType model.ContentType) ([]*model.Content, error) {
	query := contentSelect + `
		WHERE c.user_id = $1 AND ($2 = '' OR c.type = $2)
		GROUP BY c.id
		ORDER BY c.seq`
	rows, err := r.DB.Pool.Query(ctx, query, ownerID, string(contentType))
	if err != nil {
		return nil, fmt.Errorf("failed to query content by user: %w", err)
	}
	defer rows.Close()

	var results []*model.Content
	for rows.Next() {
		c, err := scanContent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		results = append(results, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate content: %w", err)
	}
	return results, nil
}

// DeleteContent удаляет запись только если она принадлежит ownerID.
func (r *BrainRepository) DeleteContent(ctx context.Context, id, ownerID string) error {
	tag, err := r.DB.Pool.Exec(ctx, `DELETE FROM content WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete content: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("content not found")
	}
	return nil
}

func (r *BrainRepository) getShareLink(ctx context.Context, where string, arg any) (*model.ShareLink, error) {
	query := `SELECT id::text, hash, user_id::text, created FROM links WHERE ` + where
	l := &model.ShareLink{}
	if err := r.DB.Pool.QueryRow(ctx, query, arg).Scan(&l.ID, &l.Hash, &l.OwnerID, &l.Created); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("share link not found")
		}
		return nil, fmt.Errorf("select share link: %w", err)
	}
	return l, nil
}

func (r *BrainRepository) GetShareLinkByOwner(ctx context.Context, ownerID string) (*model.ShareLink, error) {
	return r.getShareLink(ctx, "user_id = $1", ownerID)
}

func (r *BrainRepository) GetShareLinkByHash(ctx context.Context, hash string) (*model.ShareLink, error) {
	return r.getShareLink(ctx, "hash = $1", hash)
}

// SaveShareLink сохраняет ссылку. Вторая ссылка того же пользователя даёт apperr.ErrConflict.
func (r *BrainRepository) SaveShareLink(ctx context.Context, l *model.ShareLink) error {
	query := `INSERT INTO links (id, hash, user_id, created) VALUES ($1, $2, $3, $4)`
	if _, err := r.DB.Pool.Exec(ctx, query, l.ID, l.Hash, l.OwnerID, l.Created); err != nil {
		if isUniqueViolation(err) {
			return apperr.Conflict("share link already exists").WithCause(err)
		}
		return fmt.Errorf("insert share link: %w", err)
	}
	return nil
}

func (r *BrainRepository) DeleteShareLink(ctx context.Context, ownerID string) error {
	tag, err := r.DB.Pool.Exec(ctx, `DELETE FROM links WHERE user_id = $1`, ownerID)
	if err != nil {
		return fmt.Errorf("delete share link: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("share link not found")
	}
	return nil
}

// Ping проверяет доступность базы данных с таймаутом database.DB.Ping.
func (r *BrainRepository) Ping(ctx context.Context) error {
	return r.DB.Ping(ctx)
}
