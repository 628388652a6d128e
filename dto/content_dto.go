package dto

type CreateContentDTO struct {
	Kind     string `json:"kind" binding:"required"`
	Title    string `json:"title" binding:"required"`
	Body     string `json:"body"`
	MediaURL string `json:"media_url"`
}

type UpdateContentDTO struct {
	Title    *string `json:"title"`
	Body     *string `json:"body"`
	MediaURL *string `json:"media_url"`
}
