package workflow

import (
	"fmt"

	"github.com/pelayanandata/portal-go/models"
)

type requestKey struct {
	From   models.RequestStatus
	Action Action
}

// requestTargets resolves the next status for a legal (status, action)
// pair. The REVIEW entry branches on decision and on request category:
// NOL_RUPIAH skips the payment states entirely, so approval lands straight
// on PAYMENT_CONFIRMED, while INFORMASI must pass through billing.
var requestTargets = map[requestKey]func(t models.RequestType, d Decision) models.RequestStatus{
	{models.RequestStatusSubmitted, ActionReview}: func(t models.RequestType, d Decision) models.RequestStatus {
		if d == DecisionReject {
			return models.RequestStatusRejected
		}
		if t == models.RequestTypeNolRupiah {
			return models.RequestStatusPaymentConfirmed
		}
		return models.RequestStatusBillingIssued
	},
	{models.RequestStatusBillingIssued, ActionUploadPayment}:    to(models.RequestStatusPaymentUploaded),
	{models.RequestStatusPaymentUploaded, ActionConfirmPayment}: to(models.RequestStatusPaymentConfirmed),
	{models.RequestStatusPaymentConfirmed, ActionUploadData}:    to(models.RequestStatusDataUploaded),
	// Idempotent revision: staff may replace the deliverable.
	{models.RequestStatusDataUploaded, ActionUploadData}: to(models.RequestStatusDataUploaded),
	{models.RequestStatusDataUploaded, ActionSubmitSKM}:  to(models.RequestStatusCompleted),
}

func to(s models.RequestStatus) func(models.RequestType, Decision) models.RequestStatus {
	return func(models.RequestType, Decision) models.RequestStatus { return s }
}

// NextRequestStatus answers the transition table for one DataRequest step.
// COMPLETED and REJECTED are terminal: no entry leaves them.
func NextRequestStatus(from models.RequestStatus, action Action, t models.RequestType, d Decision) (models.RequestStatus, error) {
	target, ok := requestTargets[requestKey{from, action}]
	if !ok {
		return "", fmt.Errorf("%w: %s is not allowed while request is %s", ErrInvalidTransition, action, from)
	}
	return target(t, d), nil
}

// RequestActionAllowed reports whether the action has any entry from the
// given status, regardless of category or decision.
func RequestActionAllowed(from models.RequestStatus, action Action) bool {
	_, ok := requestTargets[requestKey{from, action}]
	return ok
}

// IsTerminalRequestStatus reports whether no transition leaves the status.
func IsTerminalRequestStatus(s models.RequestStatus) bool {
	for key := range requestTargets {
		if key.From == s {
			return false
		}
	}
	return true
}
