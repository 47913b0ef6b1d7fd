package model

import "time"

// ShareLink публичная ссылка на «мозг» пользователя. У пользователя не более одной.
type ShareLink struct {
	ID      string
	Hash    string
	OwnerID string
	Created time.Time
}
