package model

import "encoding/json"

// Операции журнала файлового хранилища.
const (
	OpUserCreated    = "user_created"
	OpTagCreated     = "tag_created"
	OpContentAdded   = "content_added"
	OpContentDeleted = "content_deleted"
	OpShareCreated   = "share_created"
	OpShareDeleted   = "share_deleted"
)

// Entry представляет структуру записи журнала в файле.
// Payload зависит от Op.
type Entry struct {
	Op      string          `json:"op"`
	Payload json.RawMessage `json:"payload"`
}
