package workflow_test

import (
	"testing"

	"github.com/pelayanandata/portal-go/workflow"
)

func testGate() workflow.RoleGate {
	return workflow.RoleGate{
		DataOfficerRoles:    []string{"petugas_ppid", "admin"},
		EditorialAdminRoles: []string{"admin"},
	}
}

func TestAllowRequest(t *testing.T) {
	gate := testGate()
	owner := workflow.Actor{ID: 7, Role: "pemohon"}
	stranger := workflow.Actor{ID: 8, Role: "pemohon"}
	officer := workflow.Actor{ID: 9, Role: "petugas_ppid"}

	t.Run("owner may upload payment and submit skm", func(t *testing.T) {
		if !gate.AllowRequest(owner, workflow.ActionUploadPayment, 7) {
			t.Error("owner denied UPLOAD_PAYMENT")
		}
		if !gate.AllowRequest(owner, workflow.ActionSubmitSKM, 7) {
			t.Error("owner denied SUBMIT_SKM")
		}
	})

	t.Run("non-owner non-staff denied requester actions", func(t *testing.T) {
		if gate.AllowRequest(stranger, workflow.ActionUploadPayment, 7) {
			t.Error("stranger allowed UPLOAD_PAYMENT")
		}
		if gate.AllowRequest(stranger, workflow.ActionSubmitSKM, 7) {
			t.Error("stranger allowed SUBMIT_SKM")
		}
	})

	t.Run("staff role does not cover requester actions", func(t *testing.T) {
		if gate.AllowRequest(officer, workflow.ActionSubmitSKM, 7) {
			t.Error("officer allowed SUBMIT_SKM on someone else's request")
		}
	})

	t.Run("staff actions need a data-office role", func(t *testing.T) {
		for _, action := range []workflow.Action{
			workflow.ActionReview,
			workflow.ActionConfirmPayment,
			workflow.ActionUploadData,
		} {
			if !gate.AllowRequest(officer, action, 7) {
				t.Errorf("officer denied %s", action)
			}
			if gate.AllowRequest(owner, action, 7) {
				t.Errorf("owner allowed %s on own request", action)
			}
		}
	})
}

func TestAllowContent(t *testing.T) {
	gate := testGate()
	author := workflow.Actor{ID: 3, Role: "petugas_ppid"}
	admin := workflow.Actor{ID: 4, Role: "admin"}
	other := workflow.Actor{ID: 5, Role: "pemohon"}

	if !gate.AllowContent(author, workflow.ContentActionSubmitForReview, 3) {
		t.Error("author denied SUBMIT_FOR_REVIEW")
	}
	if gate.AllowContent(other, workflow.ContentActionSubmitForReview, 3) {
		t.Error("non-author allowed SUBMIT_FOR_REVIEW")
	}
	for _, action := range []workflow.ContentAction{
		workflow.ContentActionApprove,
		workflow.ContentActionReject,
		workflow.ContentActionArchive,
	} {
		if !gate.AllowContent(admin, action, 3) {
			t.Errorf("admin denied %s", action)
		}
		if gate.AllowContent(author, action, 3) {
			t.Errorf("author allowed %s on own content", action)
		}
	}
}
