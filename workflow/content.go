package workflow

import (
	"fmt"

	"github.com/pelayanandata/portal-go/models"
)

type contentKey struct {
	From   models.ContentStatus
	Action ContentAction
}

// Rejection returns content to DRAFT so the author can revise and resubmit;
// there is no separate rejected state on the editorial side.
var contentTargets = map[contentKey]models.ContentStatus{
	{models.ContentStatusDraft, ContentActionSubmitForReview}:  models.ContentStatusPendingReview,
	{models.ContentStatusPendingReview, ContentActionApprove}:  models.ContentStatusPublished,
	{models.ContentStatusPendingReview, ContentActionReject}:   models.ContentStatusDraft,
	{models.ContentStatusPublished, ContentActionArchive}:      models.ContentStatusArchived,
}

// NextContentStatus answers the editorial approval table for one step.
func NextContentStatus(from models.ContentStatus, action ContentAction) (models.ContentStatus, error) {
	next, ok := contentTargets[contentKey{from, action}]
	if !ok {
		return "", fmt.Errorf("%w: %s is not allowed while content is %s", ErrInvalidTransition, action, from)
	}
	return next, nil
}
