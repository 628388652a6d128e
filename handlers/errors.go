package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pelayanandata/portal-go/response"
	"github.com/pelayanandata/portal-go/workflow"
)

// respondWorkflowError maps engine error kinds onto HTTP statuses. The
// guard order inside the services decides which kind wins; this only
// translates.
func respondWorkflowError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, workflow.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, workflow.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, workflow.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, workflow.ErrInvalidTransition):
		status = http.StatusConflict
	}
	c.JSON(status, response.ErrorResponse{Error: err.Error()})
}
