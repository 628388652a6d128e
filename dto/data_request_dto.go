package dto

type RequestItemDTO struct {
	ServiceID   uint   `json:"service_id" binding:"required"`
	ServiceName string `json:"service_name" binding:"required"`
	Unit        string `json:"unit"`
	UnitPrice   int64  `json:"unit_price"`
	Quantity    int    `json:"quantity" binding:"required,min=1"`
}

type CreateDataRequestDTO struct {
	RequestType string           `json:"request_type" binding:"required"`
	Purpose     string           `json:"purpose" binding:"required"`
	LetterURL   string           `json:"letter_url"`
	Items       []RequestItemDTO `json:"items"`
}

// ReviewRequestDTO carries the staff decision. Conditional requirements
// (billing code, rejection reason) are enforced by the lifecycle engine,
// not by binding tags.
type ReviewRequestDTO struct {
	Decision        string `json:"decision" binding:"required"`
	BillingCode     string `json:"billing_code"`
	RejectionReason string `json:"rejection_reason"`
	AdminNotes      string `json:"admin_notes"`
	PenanggungJawab string `json:"penanggung_jawab"`
}

type UploadPaymentDTO struct {
	ProofURL string `json:"proof_url"`
}

type ConfirmPaymentDTO struct {
	AdminNotes string `json:"admin_notes"`
}

type UploadDataDTO struct {
	FileURL string `json:"file_url"`
}

type QuestionRatingDTO struct {
	QuestionID uint `json:"question_id"`
	Rating     int  `json:"rating"`
}

type SubmitSkmDTO struct {
	Rating          int                 `json:"rating"`
	Feedback        string              `json:"feedback"`
	QuestionRatings []QuestionRatingDTO `json:"question_ratings"`
}
