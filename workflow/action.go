package workflow

import (
	"fmt"
	"strings"

	"github.com/pelayanandata/portal-go/models"
)

type Action string

const (
	ActionReview         Action = "REVIEW"
	ActionUploadPayment  Action = "UPLOAD_PAYMENT"
	ActionConfirmPayment Action = "CONFIRM_PAYMENT"
	ActionUploadData     Action = "UPLOAD_DATA"
	ActionSubmitSKM      Action = "SUBMIT_SKM"
)

type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

// RequestAction is the tagged union of everything an actor can do to a
// DataRequest after submission. Each variant carries its own payload and
// knows how to validate it against the request's category.
type RequestAction interface {
	Action() Action
	Validate(t models.RequestType) error
}

// Review is the staff decision on a SUBMITTED request.
type Review struct {
	Decision        Decision
	BillingCode     string
	RejectionReason string
	AdminNotes      string
	PenanggungJawab string
}

func (Review) Action() Action { return ActionReview }

func (r Review) Validate(t models.RequestType) error {
	switch r.Decision {
	case DecisionApprove:
		if t == models.RequestTypeInformasi && strings.TrimSpace(r.BillingCode) == "" {
			return fmt.Errorf("%w: billing code is required to approve an INFORMASI request", ErrValidation)
		}
	case DecisionReject:
		if strings.TrimSpace(r.RejectionReason) == "" {
			return fmt.Errorf("%w: rejection reason is required", ErrValidation)
		}
	default:
		return fmt.Errorf("%w: decision must be approve or reject", ErrValidation)
	}
	return nil
}

// UploadPayment is the requester attaching proof of payment.
type UploadPayment struct {
	ProofURL string
}

func (UploadPayment) Action() Action { return ActionUploadPayment }

func (p UploadPayment) Validate(models.RequestType) error {
	if strings.TrimSpace(p.ProofURL) == "" {
		return fmt.Errorf("%w: payment proof url is required", ErrValidation)
	}
	return nil
}

// ConfirmPayment is the staff acknowledgement of an uploaded proof.
type ConfirmPayment struct {
	AdminNotes string
}

func (ConfirmPayment) Action() Action { return ActionConfirmPayment }

func (ConfirmPayment) Validate(models.RequestType) error { return nil }

// UploadData attaches the fulfilled data deliverable. Re-uploading from
// DATA_UPLOADED replaces the previous revision.
type UploadData struct {
	FileURL string
}

func (UploadData) Action() Action { return ActionUploadData }

func (d UploadData) Validate(models.RequestType) error {
	if strings.TrimSpace(d.FileURL) == "" {
		return fmt.Errorf("%w: data file url is required", ErrValidation)
	}
	return nil
}

// SubmitSKM is the requester's satisfaction survey: an overall rating,
// free-text feedback and one rating per catalog question. Catalog coverage
// is checked by the survey gate, not here.
type SubmitSKM struct {
	Rating   int
	Feedback string
	Ratings  map[uint]int
}

func (SubmitSKM) Action() Action { return ActionSubmitSKM }

func (s SubmitSKM) Validate(models.RequestType) error {
	if s.Rating < SkmRatingMin || s.Rating > SkmRatingMax {
		return fmt.Errorf("%w: overall rating must be between %d and %d", ErrValidation, SkmRatingMin, SkmRatingMax)
	}
	if strings.TrimSpace(s.Feedback) == "" {
		return fmt.Errorf("%w: survey feedback is required", ErrValidation)
	}
	if len(s.Ratings) == 0 {
		return fmt.Errorf("%w: survey ratings are required", ErrValidation)
	}
	return nil
}

type ContentAction string

const (
	ContentActionSubmitForReview ContentAction = "SUBMIT_FOR_REVIEW"
	ContentActionApprove         ContentAction = "APPROVE"
	ContentActionReject          ContentAction = "REJECT"
	ContentActionArchive         ContentAction = "ARCHIVE"
)
