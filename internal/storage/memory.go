// Package storage реализует service.Repository в памяти
// с необязательным журналом в файле (JSON, одна запись на строку).
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Totarae/SecondBrain/internal/apperr"
	"github.com/Totarae/SecondBrain/internal/model"
)

type userRecord struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"password_hash"`
	Created      time.Time `json:"created"`
}

type contentRecord struct {
	ID      string            `json:"id"`
	Title   string            `json:"title"`
	Link    string            `json:"link"`
	Type    model.ContentType `json:"type"`
	TagIDs  []string          `json:"tag_ids"`
	OwnerID string            `json:"owner_id"`
	Created time.Time         `json:"created"`
}

type shareRecord struct {
	ID      string    `json:"id"`
	Hash    string    `json:"hash"`
	OwnerID string    `json:"owner_id"`
	Created time.Time `json:"created"`
}

type deletedRecord struct {
	ID      string `json:"id,omitempty"`
	OwnerID string `json:"owner_id,omitempty"`
}

// MemoryStore потокобезопасное хранилище в памяти.
type MemoryStore struct {
	mutex sync.RWMutex
	file  string
	log   *zap.Logger

	users     map[string]userRecord
	usernames map[string]string
	tags      map[string]model.Tag
	tagTitles map[string]string
	content   map[string]contentRecord
	order     []string
	byOwner   map[string]shareRecord
	byHash    map[string]string
}

// NewMemoryStore создаёт хранилище. Если file не пуст, состояние
// восстанавливается из журнала, а изменения дописываются в него.
func NewMemoryStore(file string, logger *zap.Logger) (*MemoryStore, error) {
	s := &MemoryStore{
		file:      file,
		log:       logger,
		users:     make(map[string]userRecord),
		usernames: make(map[string]string),
		tags:      make(map[string]model.Tag),
		tagTitles: make(map[string]string),
		content:   make(map[string]contentRecord),
		byOwner:   make(map[string]shareRecord),
		byHash:    make(map[string]string),
	}

	if err := s.LoadFromFile(); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadFromFile проигрывает журнал при старте сервера.
func (s *MemoryStore) LoadFromFile() error {
	if s.file == "" {
		return nil
	}
	file, err := os.Open(s.file)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // файл ещё не создан
		}
		return fmt.Errorf("open journal: %w", err)
	}
	defer file.Close()

	s.mutex.Lock()
	defer s.mutex.Unlock()

	// строки журнала не ограничены по длине, поэтому читаем потоком
	dec := json.NewDecoder(file)
	entries := 0
	for {
		var entry model.Entry
		if err := dec.Decode(&entry); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return fmt.Errorf("decode journal entry %d: %w", entries+1, err)
		}
		if err := s.apply(entry); err != nil {
			return fmt.Errorf("apply journal entry %d: %w", entries+1, err)
		}
		entries++
	}

	if s.log != nil {
		s.log.Info("journal loaded",
			zap.String("file", s.file),
			zap.Int("entries", entries),
			zap.Int("users", len(s.users)),
			zap.Int("content", len(s.content)),
		)
	}
	return nil
}

func (s *MemoryStore) apply(entry model.Entry) error {
	switch entry.Op {
	case model.OpUserCreated:
		var u userRecord
		if err := json.Unmarshal(entry.Payload, &u); err != nil {
			return err
		}
		s.putUser(u)
	case model.OpTagCreated:
		var t model.Tag
		if err := json.Unmarshal(entry.Payload, &t); err != nil {
			return err
		}
		s.putTag(t)
	case model.OpContentAdded:
		var c contentRecord
		if err := json.Unmarshal(entry.Payload, &c); err != nil {
			return err
		}
		s.putContent(c)
	case model.OpContentDeleted:
		var d deletedRecord
		if err := json.Unmarshal(entry.Payload, &d); err != nil {
			return err
		}
		s.removeContent(d.ID)
	case model.OpShareCreated:
		var l shareRecord
		if err := json.Unmarshal(entry.Payload, &l); err != nil {
			return err
		}
		s.putShare(l)
	case model.OpShareDeleted:
		var d deletedRecord
		if err := json.Unmarshal(entry.Payload, &d); err != nil {
			return err
		}
		s.removeShare(d.OwnerID)
	default:
		return fmt.Errorf("unknown op %q", entry.Op)
	}
	return nil
}

// appendToFile добавляет запись в журнал. Вызывается под блокировкой.
func (s *MemoryStore) appendToFile(op string, payload any) error {
	if s.file == "" {
		return nil
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	data, err := json.Marshal(model.Entry{Op: op, Payload: raw})
	if err != nil {
		return err
	}

	file, err := os.OpenFile(s.file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer file.Close()

	if _, err := file.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write journal: %w", err)
	}
	return nil
}

func (s *MemoryStore) putUser(u userRecord) {
	s.users[u.ID] = u
	s.usernames[u.Username] = u.ID
}

func (s *MemoryStore) putTag(t model.Tag) {
	s.tags[t.ID] = t
	s.tagTitles[t.Title] = t.ID
}

func (s *MemoryStore) putContent(c contentRecord) {
	if _, ok := s.content[c.ID]; !ok {
		s.order = append(s.order, c.ID)
	}
	s.content[c.ID] = c
}

func (s *MemoryStore) removeContent(id string) {
	delete(s.content, id)
	s.order = slices.DeleteFunc(s.order, func(v string) bool { return v == id })
}

func (s *MemoryStore) putShare(l shareRecord) {
	s.byOwner[l.OwnerID] = l
	s.byHash[l.Hash] = l.OwnerID
}

func (s *MemoryStore) removeShare(ownerID string) {
	if l, ok := s.byOwner[ownerID]; ok {
		delete(s.byHash, l.Hash)
		delete(s.byOwner, ownerID)
	}
}

func (s *MemoryStore) CreateUser(_ context.Context, u *model.User) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.usernames[u.Username]; exists {
		return apperr.Conflict("username already exists")
	}
	rec := userRecord{ID: u.ID, Username: u.Username, PasswordHash: u.PasswordHash, Created: u.Created}
	if err := s.appendToFile(model.OpUserCreated, rec); err != nil {
		return err
	}
	s.putUser(rec)
	return nil
}

func (s *MemoryStore) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	id, ok := s.usernames[username]
	if !ok {
		return nil, apperr.NotFound("user not found")
	}
	return s.users[id].toModel(), nil
}

func (s *MemoryStore) GetUserByID(_ context.Context, id string) (*model.User, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, apperr.NotFound("user not found")
	}
	return u.toModel(), nil
}

func (s *MemoryStore) EnsureTags(_ context.Context, titles []string) ([]model.Tag, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	out := make([]model.Tag, 0, len(titles))
	for _, title := range titles {
		if id, ok := s.tagTitles[title]; ok {
			out = append(out, s.tags[id])
			continue
		}
		t := model.Tag{ID: uuid.NewString(), Title: title}
		if err := s.appendToFile(model.OpTagCreated, t); err != nil {
			return nil, err
		}
		s.putTag(t)
		out = append(out, t)
	}
	return out, nil
}

func (s *MemoryStore) SaveContent(_ context.Context, c *model.Content) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.content[c.ID]; exists {
		return apperr.Conflict("content already exists")
	}
	rec := contentRecord{
		ID:      c.ID,
		Title:   c.Title,
		Link:    c.Link,
		Type:    c.Type,
		TagIDs:  make([]string, 0, len(c.Tags)),
		OwnerID: c.OwnerID,
		Created: c.Created,
	}
	for _, t := range c.Tags {
		rec.TagIDs = append(rec.TagIDs, t.ID)
	}
	if err := s.appendToFile(model.OpContentAdded, rec); err != nil {
		return err
	}
	s.putContent(rec)
	return nil
}

func (s *MemoryStore) GetContent(_ context.Context, id string) (*model.Content, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	c, ok := s.content[id]
	if !ok {
		return nil, apperr.NotFound("content not found")
	}
	return s.toModel(c), nil
}

func (s *MemoryStore) GetContentByOwner(_ context.Context, ownerID string, contentType model.ContentType) ([]*model.Content, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var results []*model.Content
	for _, id := range s.order {
		c := s.content[id]
		if c.OwnerID != ownerID {
			continue
		}
		if contentType != "" && c.Type != contentType {
			continue
		}
		results = append(results, s.toModel(c))
	}
	return results, nil
}

func (s *MemoryStore) DeleteContent(_ context.Context, id, ownerID string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	c, ok := s.content[id]
	if !ok || c.OwnerID != ownerID {
		return apperr.NotFound("content not found")
	}
	if err := s.appendToFile(model.OpContentDeleted, deletedRecord{ID: id}); err != nil {
		return err
	}
	s.removeContent(id)
	return nil
}

func (s *MemoryStore) GetShareLinkByOwner(_ context.Context, ownerID string) (*model.ShareLink, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	l, ok := s.byOwner[ownerID]
	if !ok {
		return nil, apperr.NotFound("share link not found")
	}
	return l.toModel(), nil
}

func (s *MemoryStore) GetShareLinkByHash(_ context.Context, hash string) (*model.ShareLink, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	ownerID, ok := s.byHash[hash]
	if !ok {
		return nil, apperr.NotFound("share link not found")
	}
	return s.byOwner[ownerID].toModel(), nil
}

func (s *MemoryStore) SaveShareLink(_ context.Context, l *model.ShareLink) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.byOwner[l.OwnerID]; exists {
		return apperr.Conflict("share link already exists")
	}
	if _, exists := s.byHash[l.Hash]; exists {
		return apperr.Conflict("share hash already taken")
	}
	rec := shareRecord{ID: l.ID, Hash: l.Hash, OwnerID: l.OwnerID, Created: l.Created}
	if err := s.appendToFile(model.OpShareCreated, rec); err != nil {
		return err
	}
	s.putShare(rec)
	return nil
}

func (s *MemoryStore) DeleteShareLink(_ context.Context, ownerID string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, ok := s.byOwner[ownerID]; !ok {
		return apperr.NotFound("share link not found")
	}
	if err := s.appendToFile(model.OpShareDeleted, deletedRecord{OwnerID: ownerID}); err != nil {
		return err
	}
	s.removeShare(ownerID)
	return nil
}

// Ping проверяет, что журнал доступен для записи.
func (s *MemoryStore) Ping(_ context.Context) error {
	if s.file == "" {
		return nil
	}
	file, err := os.OpenFile(s.file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return errors.Join(errors.New("journal is not writable"), err)
	}
	return file.Close()
}

func (u userRecord) toModel() *model.User {
	return &model.User{ID: u.ID, Username: u.Username, PasswordHash: u.PasswordHash, Created: u.Created}
}

func (l shareRecord) toModel() *model.ShareLink {
	return &model.ShareLink{ID: l.ID, Hash: l.Hash, OwnerID: l.OwnerID, Created: l.Created}
}

// toModel собирает Content с метками. Вызывается под блокировкой.
func (s *MemoryStore) toModel(c contentRecord) *model.Content {
	out := &model.Content{
		ID:      c.ID,
		Title:   c.Title,
		Link:    c.Link,
		Type:    c.Type,
		OwnerID: c.OwnerID,
		Created: c.Created,
		Tags:    make([]model.Tag, 0, len(c.TagIDs)),
	}
	for _, id := range c.TagIDs {
		if t, ok := s.tags[id]; ok {
			out.Tags = append(out.Tags, t)
		}
	}
	return out
}
