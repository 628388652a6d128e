package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pelayanandata/portal-go/dto"
	"github.com/pelayanandata/portal-go/models"
	"github.com/pelayanandata/portal-go/response"
	"github.com/pelayanandata/portal-go/services"
	"github.com/pelayanandata/portal-go/utils"
	"github.com/pelayanandata/portal-go/workflow"
)

type RequestHandler struct {
	service *services.RequestService
}

func NewRequestHandler(service *services.RequestService) *RequestHandler {
	return &RequestHandler{service: service}
}

// CreateRequest godoc
// @Summary Submit a new data request
// @Tags requests
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body dto.CreateDataRequestDTO true "Request info"
// @Success 201 {object} models.DataRequest
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Router /requests [post]
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	var input dto.CreateDataRequestDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	req, err := h.service.CreateRequest(c, userID, input)
	if err != nil {
		respondWorkflowError(c, err)
		return
	}

	c.JSON(http.StatusCreated, req)
}

// ListRequests godoc
// @Summary List data requests
// @Description Staff see every request, optionally filtered by status; requesters see their own.
// @Tags requests
// @Security BearerAuth
// @Produce json
// @Param status query string false "Status filter (staff only)"
// @Success 200 {array} models.DataRequest
// @Router /requests [get]
func (h *RequestHandler) ListRequests(c *gin.Context) {
	actor, err := utils.ActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var status *models.RequestStatus
	if s := c.Query("status"); s != "" {
		st := models.RequestStatus(s)
		status = &st
	}

	requests, err := h.service.ListRequests(actor, status)
	if err != nil {
		respondWorkflowError(c, err)
		return
	}

	c.JSON(http.StatusOK, requests)
}

// GetRequest godoc
// @Summary Get one data request
// @Tags requests
// @Security BearerAuth
// @Produce json
// @Param id path int true "Request ID"
// @Success 200 {object} models.DataRequest
// @Failure 403 {object} response.ErrorResponse "Not your request"
// @Failure 404 {object} response.ErrorResponse "Request not found"
// @Router /requests/{id} [get]
func (h *RequestHandler) GetRequest(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid request id"})
		return
	}
	actor, err := utils.ActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	req, err := h.service.GetRequest(id, actor)
	if err != nil {
		respondWorkflowError(c, err)
		return
	}

	c.JSON(http.StatusOK, req)
}

// Review godoc
// @Summary Review a submitted request
// @Description Approve (issuing billing for INFORMASI) or reject with a reason.
// @Tags requests
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Request ID"
// @Param input body dto.ReviewRequestDTO true "Decision"
// @Success 200 {object} models.DataRequest
// @Failure 400 {object} response.ErrorResponse "Incomplete decision payload"
// @Failure 403 {object} response.ErrorResponse "Staff only"
// @Failure 409 {object} response.ErrorResponse "Request is not awaiting review"
// @Router /requests/{id}/review [post]
func (h *RequestHandler) Review(c *gin.Context) {
	var input dto.ReviewRequestDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	h.transition(c, workflow.Review{
		Decision:        workflow.Decision(input.Decision),
		BillingCode:     input.BillingCode,
		RejectionReason: input.RejectionReason,
		AdminNotes:      input.AdminNotes,
		PenanggungJawab: input.PenanggungJawab,
	})
}

// UploadPayment godoc
// @Summary Attach payment proof
// @Tags requests
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Request ID"
// @Param input body dto.UploadPaymentDTO true "Proof URL"
// @Success 200 {object} models.DataRequest
// @Router /requests/{id}/payment [post]
func (h *RequestHandler) UploadPayment(c *gin.Context) {
	var input dto.UploadPaymentDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	h.transition(c, workflow.UploadPayment{ProofURL: input.ProofURL})
}

// ConfirmPayment godoc
// @Summary Confirm an uploaded payment
// @Tags requests
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Request ID"
// @Param input body dto.ConfirmPaymentDTO false "Optional notes"
// @Success 200 {object} models.DataRequest
// @Router /requests/{id}/confirm-payment [post]
func (h *RequestHandler) ConfirmPayment(c *gin.Context) {
	var input dto.ConfirmPaymentDTO
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
			return
		}
	}

	h.transition(c, workflow.ConfirmPayment{AdminNotes: input.AdminNotes})
}

// UploadData godoc
// @Summary Attach the fulfilled data deliverable
// @Description Allowed from PAYMENT_CONFIRMED and again from DATA_UPLOADED to replace a revision.
// @Tags requests
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Request ID"
// @Param input body dto.UploadDataDTO true "File URL"
// @Success 200 {object} models.DataRequest
// @Router /requests/{id}/data [post]
func (h *RequestHandler) UploadData(c *gin.Context) {
	var input dto.UploadDataDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	h.transition(c, workflow.UploadData{FileURL: input.FileURL})
}

// SubmitSkm godoc
// @Summary Submit the satisfaction survey and complete the request
// @Description Every catalog question needs a rating in [1,5]; completion is blocked otherwise.
// @Tags requests
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Request ID"
// @Param input body dto.SubmitSkmDTO true "Survey answers"
// @Success 200 {object} models.DataRequest
// @Failure 400 {object} response.ErrorResponse "Incomplete survey"
// @Router /requests/{id}/skm [post]
func (h *RequestHandler) SubmitSkm(c *gin.Context) {
	var input dto.SubmitSkmDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	ratings := make(map[uint]int, len(input.QuestionRatings))
	for _, qr := range input.QuestionRatings {
		ratings[qr.QuestionID] = qr.Rating
	}

	h.transition(c, workflow.SubmitSKM{
		Rating:   input.Rating,
		Feedback: input.Feedback,
		Ratings:  ratings,
	})
}

func (h *RequestHandler) transition(c *gin.Context, act workflow.RequestAction) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid request id"})
		return
	}
	actor, err := utils.ActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	req, err := h.service.Transition(c, id, actor, act)
	if err != nil {
		respondWorkflowError(c, err)
		return
	}

	c.JSON(http.StatusOK, req)
}

// GetStats godoc
// @Summary Request counts per status
// @Tags requests
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.RequestStatsResponse
// @Failure 403 {object} response.ErrorResponse "Staff only"
// @Router /requests/stats [get]
func (h *RequestHandler) GetStats(c *gin.Context) {
	actor, err := utils.ActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	counts, err := h.service.CountByStatus(actor)
	if err != nil {
		respondWorkflowError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.RequestStatsResponse{Counts: counts})
}

// GetSkmQuestions godoc
// @Summary Satisfaction survey question catalog
// @Tags skm
// @Produce json
// @Success 200 {array} models.SkmQuestion
// @Router /skm/questions [get]
func (h *RequestHandler) GetSkmQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.SurveyQuestions())
}
