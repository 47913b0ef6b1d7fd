package model

// AddContentRequest тело запроса на добавление ссылки.
type AddContentRequest struct {
	Title string   `json:"title" validate:"required,max=512"`
	Link  string   `json:"link" validate:"required,max=2048,url"`
	Type  string   `json:"type" validate:"required,oneof=youtube twitter medium reddit"`
	Tags  []string `json:"tags" validate:"omitempty,max=32,dive,max=64"`
}

// AddContentResponse возвращает идентификатор созданной записи.
type AddContentResponse struct {
	ID string `json:"id"`
}

// DeleteContentRequest тело запроса на удаление.
type DeleteContentRequest struct {
	ContentID string `json:"contentId" validate:"required"`
}

// ContentItem представление Content в API.
type ContentItem struct {
	ID     string      `json:"id"`
	Title  string      `json:"title"`
	Link   string      `json:"link"`
	Type   ContentType `json:"type"`
	Tags   []string    `json:"tags"`
	UserID string      `json:"userId"`
}

// NewContentItem переводит доменную запись в представление API.
func NewContentItem(c *Content) ContentItem {
	return ContentItem{
		ID:     c.ID,
		Title:  c.Title,
		Link:   c.Link,
		Type:   c.Type,
		Tags:   c.TagTitles(),
		UserID: c.OwnerID,
	}
}

// ContentListResponse ответ со списком ссылок.
type ContentListResponse struct {
	Content []ContentItem `json:"content"`
}

// NewContentListResponse never returns a nil slice so the client always sees [].
func NewContentListResponse(items []*Content) ContentListResponse {
	resp := ContentListResponse{Content: make([]ContentItem, 0, len(items))}
	for _, c := range items {
		resp.Content = append(resp.Content, NewContentItem(c))
	}
	return resp
}

// ShareRequest включает или выключает публичный доступ. Отсутствие поля равно true.
type ShareRequest struct {
	Share *bool `json:"share"`
}

// Enabled сообщает, нужно ли выдать ссылку.
func (r ShareRequest) Enabled() bool {
	return r.Share == nil || *r.Share
}

// ShareResponse содержит hash публичной ссылки.
type ShareResponse struct {
	Hash string `json:"hash"`
}

// SharedBrainResponse то, что видит посетитель публичной ссылки.
type SharedBrainResponse struct {
	Username string        `json:"username"`
	Content  []ContentItem `json:"content"`
}

// MessageResponse простой ответ с сообщением.
type MessageResponse struct {
	Message string `json:"message"`
}
