package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Totarae/SecondBrain/internal/apperr"
	"github.com/Totarae/SecondBrain/internal/auth"
	"github.com/Totarae/SecondBrain/internal/model"
)

// TokenIssuer выдаёт и проверяет токены доступа.
type TokenIssuer interface {
	Issue(userID string) (string, time.Time, error)
	Verify(token string) (string, error)
}

// UserService хранит учётные данные и выдаёт сессии.
type UserService struct {
	Repo   Repository
	Tokens TokenIssuer
	Logger *zap.Logger
}

func NewUserService(repo Repository, tokens TokenIssuer, logger *zap.Logger) *UserService {
	return &UserService{Repo: repo, Tokens: tokens, Logger: logger}
}

// CreateUser регистрирует пользователя. Занятое имя даёт apperr.ErrConflict.
func (s *UserService) CreateUser(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", apperr.Validation("username and password are required")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", apperr.Validation(err.Error())
	}

	u := &model.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		Created:      time.Now(),
	}
	if err := s.Repo.CreateUser(ctx, u); err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			return "", apperr.Conflict("user already exists")
		}
		return "", fmt.Errorf("create user: %w", err)
	}

	s.Logger.Info("user created", zap.String("user_id", u.ID), zap.String("username", u.Username))
	return u.ID, nil
}

// FindByUsername возвращает пользователя или apperr.ErrNotFound.
func (s *UserService) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	u, err := s.Repo.GetUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, err
	}
	return u, nil
}

// Authenticate проверяет пароль и выдаёт токен вместе со временем его истечения.
// Неизвестное имя и неверный пароль неразличимы для вызывающего.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (string, time.Time, error) {
	invalid := apperr.Auth("invalid username or password")

	u, err := s.FindByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, apperr.ErrNotFound) {
			return "", time.Time{}, fmt.Errorf("lookup user: %w", err)
		}
		auth.BurnPasswordCheck(password)
		s.Logger.Info("sign-in failed", zap.String("username", username))
		return "", time.Time{}, invalid
	}

	if !auth.VerifyPassword(u.PasswordHash, password) {
		s.Logger.Info("sign-in failed", zap.String("username", username))
		return "", time.Time{}, invalid
	}

	token, expires, err := s.Tokens.Issue(u.ID)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("issue token: %w", err)
	}
	return token, expires, nil
}

// Verify возвращает ID пользователя из токена или apperr.ErrAuth.
func (s *UserService) Verify(token string) (string, error) {
	userID, err := s.Tokens.Verify(token)
	if err != nil {
		if errors.Is(err, auth.ErrTokenExpired) {
			return "", apperr.Auth("token expired").WithCause(err)
		}
		return "", apperr.Auth("invalid token").WithCause(err)
	}
	return userID, nil
}
