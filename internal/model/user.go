package model

import "time"

// User представляет зарегистрированного пользователя.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Created      time.Time `json:"-"`
}

// SignupRequest тело запроса на регистрацию.
type SignupRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=3,max=1024"`
}

// SignupResponse ответ на успешную регистрацию.
type SignupResponse struct {
	ID string `json:"id"`
}

// SigninRequest тело запроса на вход.
type SigninRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SigninResponse содержит выданный токен.
type SigninResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
