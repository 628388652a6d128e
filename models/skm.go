package models

import "time"

// SkmQuestion is one entry of the fixed satisfaction-survey catalog
// (Survei Kepuasan Masyarakat). Seeded once at startup and never mutated.
type SkmQuestion struct {
	ID        uint   `gorm:"primaryKey;column:id" json:"id"`
	Code      string `gorm:"size:10;not null;unique" json:"code"`
	Text      string `gorm:"type:text;not null" json:"text"`
	Category  string `gorm:"size:100" json:"category"`
	SortOrder int    `gorm:"not null" json:"sort_order"`
}

// SkmResponse joins one DataRequest to one SkmQuestion with a 1-5 rating.
// Unique per (request, question); resubmission updates the row in place.
type SkmResponse struct {
	ID         uint      `gorm:"primaryKey;column:id" json:"id"`
	RequestID  uint      `gorm:"not null;uniqueIndex:idx_skm_request_question" json:"request_id"`
	QuestionID uint      `gorm:"not null;uniqueIndex:idx_skm_request_question" json:"question_id"`
	Rating     int       `gorm:"not null" json:"rating"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Question *SkmQuestion `gorm:"foreignKey:QuestionID" json:"question,omitempty"`
}
