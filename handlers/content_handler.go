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

type ContentHandler struct {
	service *services.ContentService
}

func NewContentHandler(service *services.ContentService) *ContentHandler {
	return &ContentHandler{service: service}
}

// CreateContent godoc
// @Summary Draft a news item, article or video
// @Tags contents
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body dto.CreateContentDTO true "Content info"
// @Success 201 {object} models.Content
// @Router /contents [post]
func (h *ContentHandler) CreateContent(c *gin.Context) {
	var input dto.CreateContentDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	content, err := h.service.CreateContent(c, userID, input)
	if err != nil {
		respondWorkflowError(c, err)
		return
	}

	c.JSON(http.StatusCreated, content)
}

// UpdateContent godoc
// @Summary Edit a draft
// @Tags contents
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Content ID"
// @Param input body dto.UpdateContentDTO true "Fields to change"
// @Success 200 {object} models.Content
// @Failure 409 {object} response.ErrorResponse "Content is past DRAFT"
// @Router /contents/{id} [put]
func (h *ContentHandler) UpdateContent(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid content id"})
		return
	}
	var input dto.UpdateContentDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	actor, err := utils.ActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	content, err := h.service.UpdateContent(c, id, actor, input)
	if err != nil {
		respondWorkflowError(c, err)
		return
	}

	c.JSON(http.StatusOK, content)
}

// ListPublished godoc
// @Summary Public content catalog
// @Tags contents
// @Produce json
// @Param kind query string false "news, article or video"
// @Success 200 {array} models.Content
// @Router /contents [get]
func (h *ContentHandler) ListPublished(c *gin.Context) {
	var kind *models.ContentKind
	if k := c.Query("kind"); k != "" {
		ck := models.ContentKind(k)
		kind = &ck
	}

	contents, err := h.service.ListPublished(kind)
	if err != nil {
		respondWorkflowError(c, err)
		return
	}

	c.JSON(http.StatusOK, contents)
}

// ListMine godoc
// @Summary Editorial workbench listing
// @Description Editorial admins see everything, authors see their own items.
// @Tags contents
// @Security BearerAuth
// @Produce json
// @Param status query string false "Status filter (admin only)"
// @Success 200 {array} models.Content
// @Router /contents/mine [get]
func (h *ContentHandler) ListMine(c *gin.Context) {
	actor, err := utils.ActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var status *models.ContentStatus
	if s := c.Query("status"); s != "" {
		cs := models.ContentStatus(s)
		status = &cs
	}

	contents, err := h.service.ListContents(actor, status)
	if err != nil {
		respondWorkflowError(c, err)
		return
	}

	c.JSON(http.StatusOK, contents)
}

// GetContent godoc
// @Summary Read one content item
// @Description Published items are public; drafts are visible to their author and editorial admins.
// @Tags contents
// @Produce json
// @Param id path int true "Content ID"
// @Success 200 {object} models.Content
// @Failure 404 {object} response.ErrorResponse "Content not found"
// @Router /contents/{id} [get]
func (h *ContentHandler) GetContent(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid content id"})
		return
	}

	var actor *workflow.Actor
	if a, err := utils.ActorFromContext(c); err == nil {
		actor = &a
	}

	content, err := h.service.GetContent(id, actor)
	if err != nil {
		respondWorkflowError(c, err)
		return
	}

	c.JSON(http.StatusOK, content)
}

// Submit godoc
// @Summary Submit a draft for review
// @Tags contents
// @Security BearerAuth
// @Produce json
// @Param id path int true "Content ID"
// @Success 200 {object} models.Content
// @Router /contents/{id}/submit [post]
func (h *ContentHandler) Submit(c *gin.Context) {
	h.transition(c, workflow.ContentActionSubmitForReview)
}

// Approve godoc
// @Summary Publish a pending item
// @Tags contents
// @Security BearerAuth
// @Produce json
// @Param id path int true "Content ID"
// @Success 200 {object} models.Content
// @Router /contents/{id}/approve [post]
func (h *ContentHandler) Approve(c *gin.Context) {
	h.transition(c, workflow.ContentActionApprove)
}

// Reject godoc
// @Summary Send a pending item back to draft
// @Tags contents
// @Security BearerAuth
// @Produce json
// @Param id path int true "Content ID"
// @Success 200 {object} models.Content
// @Router /contents/{id}/reject [post]
func (h *ContentHandler) Reject(c *gin.Context) {
	h.transition(c, workflow.ContentActionReject)
}

// Archive godoc
// @Summary Archive a published item
// @Tags contents
// @Security BearerAuth
// @Produce json
// @Param id path int true "Content ID"
// @Success 200 {object} models.Content
// @Router /contents/{id}/archive [post]
func (h *ContentHandler) Archive(c *gin.Context) {
	h.transition(c, workflow.ContentActionArchive)
}

func (h *ContentHandler) transition(c *gin.Context, action workflow.ContentAction) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid content id"})
		return
	}
	actor, err := utils.ActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	content, err := h.service.Transition(c, id, actor, action)
	if err != nil {
		respondWorkflowError(c, err)
		return
	}

	c.JSON(http.StatusOK, content)
}
