package services

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pelayanandata/portal-go/dto"
	"github.com/pelayanandata/portal-go/models"
	"github.com/pelayanandata/portal-go/repositories"
	"github.com/pelayanandata/portal-go/utils"
	"github.com/pelayanandata/portal-go/workflow"
	"gorm.io/gorm"
)

// Notifier receives every successfully transitioned request. Delivery is
// fire-and-forget; the engine does not depend on the outcome.
type Notifier interface {
	NotifyRequest(req models.DataRequest)
}

// RequestService owns the data-request lifecycle: creation, role-gated
// transitions, and the satisfaction-survey gate in front of completion.
// It holds no state between calls; everything lives on the persisted row.
type RequestService struct {
	Repos    *repositories.Repos
	Gate     workflow.RoleGate
	Survey   *workflow.SurveyGate
	Notifier Notifier
}

func NewRequestService(repos *repositories.Repos, gate workflow.RoleGate, survey *workflow.SurveyGate, notifier Notifier) *RequestService {
	return &RequestService{
		Repos:    repos,
		Gate:     gate,
		Survey:   survey,
		Notifier: notifier,
	}
}

// CreateRequest files a new request as SUBMITTED. TotalAmount is computed
// here, once: the sum of unit price times quantity over the submitted
// items for INFORMASI, always zero for NOL_RUPIAH. It is never recomputed.
func (s *RequestService) CreateRequest(c *gin.Context, requesterID uint, input dto.CreateDataRequestDTO) (models.DataRequest, error) {
	reqType := models.RequestType(input.RequestType)

	req := models.DataRequest{
		RequesterID: requesterID,
		RequestType: reqType,
		Status:      models.RequestStatusSubmitted,
		Purpose:     input.Purpose,
		LetterURL:   input.LetterURL,
	}

	switch reqType {
	case models.RequestTypeInformasi:
		if len(input.Items) == 0 {
			return models.DataRequest{}, fmt.Errorf("%w: an INFORMASI request needs at least one item", workflow.ErrValidation)
		}
		for _, item := range input.Items {
			if item.Quantity < 1 {
				return models.DataRequest{}, fmt.Errorf("%w: item quantity must be positive", workflow.ErrValidation)
			}
			if item.UnitPrice < 0 {
				return models.DataRequest{}, fmt.Errorf("%w: item unit price cannot be negative", workflow.ErrValidation)
			}
			subtotal := item.UnitPrice * int64(item.Quantity)
			req.Items = append(req.Items, models.DataRequestItem{
				ServiceID:   item.ServiceID,
				ServiceName: item.ServiceName,
				Unit:        item.Unit,
				UnitPrice:   item.UnitPrice,
				Quantity:    item.Quantity,
				Subtotal:    subtotal,
			})
			req.TotalAmount += subtotal
		}
	case models.RequestTypeNolRupiah:
		if len(input.Items) > 0 {
			return models.DataRequest{}, fmt.Errorf("%w: a NOL_RUPIAH request carries no priced items", workflow.ErrValidation)
		}
	default:
		return models.DataRequest{}, fmt.Errorf("%w: unknown request type %q", workflow.ErrValidation, input.RequestType)
	}

	if err := s.Repos.DataRequest.Create(&req); err != nil {
		return models.DataRequest{}, err
	}

	utils.LogAuditWithConsole(c, requesterID, "CREATE_REQUEST", "data_request",
		strconv.FormatUint(uint64(req.ID), 10), nil, req,
		fmt.Sprintf("submitted %s request", req.RequestType), s.Repos.Audit)

	return req, nil
}

// Transition applies one lifecycle action. Guards run in a fixed order,
// first failure wins: existence, authorization, payload completeness,
// category branch plus state match. Everything from the row lock to the
// audit write commits as one unit; on any failure the row is untouched.
func (s *RequestService) Transition(c *gin.Context, requestID uint, actor workflow.Actor, act workflow.RequestAction) (models.DataRequest, error) {
	var updated models.DataRequest

	err := s.Repos.Transaction(func(r *repositories.Repos) error {
		req, err := r.DataRequest.GetByIDForUpdate(requestID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: data request %d", workflow.ErrNotFound, requestID)
			}
			return err
		}

		if !s.Gate.AllowRequest(actor, act.Action(), req.RequesterID) {
			return fmt.Errorf("%w: %s is not permitted for this actor", workflow.ErrForbidden, act.Action())
		}

		if err := act.Validate(req.RequestType); err != nil {
			return err
		}

		var aggregate int
		if skm, ok := act.(workflow.SubmitSKM); ok {
			if aggregate, err = s.Survey.Aggregate(skm.Ratings); err != nil {
				return err
			}
		}

		var decision workflow.Decision
		if review, ok := act.(workflow.Review); ok {
			decision = review.Decision
		}

		next, err := workflow.NextRequestStatus(req.Status, act.Action(), req.RequestType, decision)
		if err != nil {
			return err
		}

		before := req
		now := time.Now()

		switch a := act.(type) {
		case workflow.Review:
			req.AdminNotes = a.AdminNotes
			req.PenanggungJawab = a.PenanggungJawab
			req.ReviewedAt = &now
			if a.Decision == workflow.DecisionApprove {
				if req.RequestType == models.RequestTypeInformasi {
					req.BillingCode = a.BillingCode
				}
			} else {
				req.RejectionReason = a.RejectionReason
			}
		case workflow.UploadPayment:
			req.PaymentProofURL = a.ProofURL
		case workflow.ConfirmPayment:
			if a.AdminNotes != "" {
				req.AdminNotes = a.AdminNotes
			}
		case workflow.UploadData:
			req.DataFileURL = a.FileURL
		case workflow.SubmitSKM:
			for _, q := range s.Survey.Questions() {
				resp := models.SkmResponse{
					RequestID:  req.ID,
					QuestionID: q.ID,
					Rating:     a.Ratings[q.ID],
				}
				if err := r.Skm.UpsertResponse(&resp); err != nil {
					return err
				}
			}
			req.SkmRating = &aggregate
			req.SkmFeedback = a.Feedback
			req.CompletedAt = &now
		}

		req.Status = next

		if err := r.DataRequest.Update(&req); err != nil {
			return err
		}

		utils.LogAuditWithConsole(c, actor.ID, string(act.Action()), "data_request",
			strconv.FormatUint(uint64(req.ID), 10), before, req,
			fmt.Sprintf("request %d: %s -> %s", req.ID, before.Status, next), r.Audit)

		updated = req
		return nil
	})
	if err != nil {
		return models.DataRequest{}, err
	}

	if s.Notifier != nil {
		s.Notifier.NotifyRequest(updated)
	}
	return updated, nil
}

// ListRequests shows staff everything (optionally filtered by status) and
// requesters only their own.
func (s *RequestService) ListRequests(actor workflow.Actor, status *models.RequestStatus) ([]models.DataRequest, error) {
	if s.Gate.IsDataOfficer(actor) {
		return s.Repos.DataRequest.ListAll(status)
	}
	return s.Repos.DataRequest.ListByRequesterID(actor.ID)
}

func (s *RequestService) GetRequest(requestID uint, actor workflow.Actor) (models.DataRequest, error) {
	req, err := s.Repos.DataRequest.GetByID(requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.DataRequest{}, fmt.Errorf("%w: data request %d", workflow.ErrNotFound, requestID)
		}
		return models.DataRequest{}, err
	}
	if req.RequesterID != actor.ID && !s.Gate.IsDataOfficer(actor) {
		return models.DataRequest{}, fmt.Errorf("%w: not your request", workflow.ErrForbidden)
	}
	return req, nil
}

func (s *RequestService) CountByStatus(actor workflow.Actor) (map[models.RequestStatus]int64, error) {
	if !s.Gate.IsDataOfficer(actor) {
		return nil, fmt.Errorf("%w: staff only", workflow.ErrForbidden)
	}
	return s.Repos.DataRequest.CountByStatus()
}

// SurveyQuestions exposes the immutable catalog for rendering the survey.
func (s *RequestService) SurveyQuestions() []models.SkmQuestion {
	return s.Survey.Questions()
}
