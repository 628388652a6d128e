package models

import "time"

type RequestType string

const (
	RequestTypeInformasi RequestType = "INFORMASI"
	RequestTypeNolRupiah RequestType = "NOL_RUPIAH"
)

type RequestStatus string

const (
	RequestStatusSubmitted        RequestStatus = "SUBMITTED"
	RequestStatusBillingIssued    RequestStatus = "BILLING_ISSUED"
	RequestStatusPaymentUploaded  RequestStatus = "PAYMENT_UPLOADED"
	RequestStatusPaymentConfirmed RequestStatus = "PAYMENT_CONFIRMED"
	RequestStatusDataUploaded     RequestStatus = "DATA_UPLOADED"
	RequestStatusCompleted        RequestStatus = "COMPLETED"
	RequestStatusRejected         RequestStatus = "REJECTED"
)

// DataRequest is one citizen request for meteorological/climatological data.
// Status moves exclusively through the lifecycle engine; rows are never
// deleted, terminal states are retained for audit.
type DataRequest struct {
	ID          uint        `gorm:"primaryKey;column:id" json:"id"`
	RequesterID uint        `gorm:"not null;index" json:"requester_id"`
	RequestType RequestType `gorm:"type:request_type;not null" json:"request_type"`

	Status  RequestStatus `gorm:"type:request_status;default:'SUBMITTED';not null;index" json:"status"`
	Purpose string        `gorm:"type:text" json:"purpose"`

	// TotalAmount is fixed at creation: sum of item subtotals, 0 for NOL_RUPIAH.
	TotalAmount int64  `gorm:"not null;default:0" json:"total_amount"`
	BillingCode string `gorm:"size:50" json:"billing_code"`

	LetterURL       string `gorm:"size:255" json:"letter_url"`
	PaymentProofURL string `gorm:"size:255" json:"payment_proof_url"`
	DataFileURL     string `gorm:"size:255" json:"data_file_url"`

	AdminNotes      string `gorm:"type:text" json:"admin_notes"`
	RejectionReason string `gorm:"type:text" json:"rejection_reason"`
	PenanggungJawab string `gorm:"size:100" json:"penanggung_jawab"`

	SkmRating   *int   `json:"skm_rating"`
	SkmFeedback string `gorm:"type:text" json:"skm_feedback"`

	ReviewedAt  *time.Time `json:"reviewed_at"`
	CompletedAt *time.Time `json:"completed_at"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	Requester *User             `gorm:"foreignKey:RequesterID" json:"requester,omitempty"`
	Items     []DataRequestItem `gorm:"foreignKey:RequestID" json:"items,omitempty"`
}

// DataRequestItem is one priced line of an INFORMASI request. Items are
// immutable after creation and Subtotal always equals UnitPrice * Quantity.
type DataRequestItem struct {
	ID          uint   `gorm:"primaryKey;column:id" json:"id"`
	RequestID   uint   `gorm:"not null;index" json:"request_id"`
	ServiceID   uint   `gorm:"not null" json:"service_id"`
	ServiceName string `gorm:"size:150;not null" json:"service_name"`
	Unit        string `gorm:"size:50" json:"unit"`
	UnitPrice   int64  `gorm:"not null" json:"unit_price"`
	Quantity    int    `gorm:"not null" json:"quantity"`
	Subtotal    int64  `gorm:"not null" json:"subtotal"`
}
