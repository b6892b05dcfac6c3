package domain

import (
	"time"
)

// MediaType values seen in practice. Type is stored as free text.
const (
	MediaTypeImage    = "image"
	MediaTypeVideo    = "video"
	MediaTypeDocument = "document"
)

// MediaItem is a standalone uploaded asset. It has no relation to Department
// or Project; rows are created by file upload, never updated, and deleted by
// id. The underlying stored object is not removed on delete.
type MediaItem struct {
	BaseModel
	Title       string     `gorm:"type:varchar(255);not null" json:"title"`
	Type        string     `gorm:"type:varchar(50);not null;default:'image'" json:"type"`
	FileKey     string     `gorm:"type:text;not null" json:"file"`
	URL         string     `gorm:"type:text;not null" json:"url"`
	Body        string     `gorm:"type:text" json:"body"`
	Author      string     `gorm:"type:varchar(255);not null" json:"author"`
	Hero        bool       `gorm:"not null;default:false" json:"hero"`
	PublishedAt *time.Time `gorm:"type:timestamp" json:"published_at"`
}

// TableName specifies the table name for MediaItem
func (MediaItem) TableName() string {
	return "media_items"
}
