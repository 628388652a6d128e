package models

import "time"

type ContentKind string

const (
	ContentKindNews    ContentKind = "news"
	ContentKindArticle ContentKind = "article"
	ContentKindVideo   ContentKind = "video"
)

type ContentStatus string

const (
	ContentStatusDraft         ContentStatus = "DRAFT"
	ContentStatusPendingReview ContentStatus = "PENDING_REVIEW"
	ContentStatusPublished     ContentStatus = "PUBLISHED"
	ContentStatusArchived      ContentStatus = "ARCHIVED"
)

// Content is an editorial entity (news, article or video); all three kinds
// share the same approval lifecycle.
type Content struct {
	ID       uint          `gorm:"primaryKey;column:id" json:"id"`
	AuthorID uint          `gorm:"not null;index" json:"author_id"`
	Kind     ContentKind   `gorm:"type:content_kind;not null" json:"kind"`
	Status   ContentStatus `gorm:"type:content_status;default:'DRAFT';not null;index" json:"status"`

	Title    string `gorm:"size:255;not null" json:"title"`
	Body     string `gorm:"type:text" json:"body"`
	MediaURL string `gorm:"size:255" json:"media_url"`

	PublishedAt *time.Time `json:"published_at"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	Author *User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}
