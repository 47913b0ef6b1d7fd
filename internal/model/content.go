package model

import "time"

// ContentType платформа, с которой сохранена ссылка.
type ContentType string

const (
	ContentYoutube ContentType = "youtube"
	ContentTwitter ContentType = "twitter"
	ContentMedium  ContentType = "medium"
	ContentReddit  ContentType = "reddit"
)

// Valid сообщает, входит ли тип в список поддерживаемых платформ.
func (t ContentType) Valid() bool {
	switch t {
	case ContentYoutube, ContentTwitter, ContentMedium, ContentReddit:
		return true
	}
	return false
}

// Tag метка, общая для всех пользователей. Title уникален.
type Tag struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Content сохранённая пользователем ссылка.
type Content struct {
	ID      string
	Title   string
	Link    string
	Type    ContentType
	Tags    []Tag
	OwnerID string
	Created time.Time
}

// TagTitles возвращает названия меток в порядке хранения.
func (c *Content) TagTitles() []string {
	titles := make([]string, 0, len(c.Tags))
	for _, t := range c.Tags {
		titles = append(titles, t.Title)
	}
	return titles
}
