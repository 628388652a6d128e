package services

import (
	"errors"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/pelayanandata/portal-go/dto"
	"github.com/pelayanandata/portal-go/models"
	"github.com/pelayanandata/portal-go/repositories"
	"github.com/pelayanandata/portal-go/repositories/mock_repositories"
	"github.com/pelayanandata/portal-go/utils"
	"github.com/pelayanandata/portal-go/workflow"
	"gorm.io/gorm"
)

var testGate = workflow.RoleGate{
	DataOfficerRoles:    []string{"petugas_ppid", "admin"},
	EditorialAdminRoles: []string{"admin"},
}

func testSurveyGate() *workflow.SurveyGate {
	questions := make([]models.SkmQuestion, 9)
	for i := range questions {
		questions[i] = models.SkmQuestion{ID: uint(i + 1)}
	}
	return workflow.NewSurveyGate(questions)
}

func muteAudit(t *testing.T) {
	orig := utils.LogAuditWithConsole
	utils.LogAuditWithConsole = func(*gin.Context, uint, string, string, string, interface{}, interface{}, string, repositories.AuditRepo) {
	}
	t.Cleanup(func() { utils.LogAuditWithConsole = orig })
}

type recordingNotifier struct {
	got []models.DataRequest
}

func (n *recordingNotifier) NotifyRequest(req models.DataRequest) {
	n.got = append(n.got, req)
}

func newRequestService(ctrl *gomock.Controller, notifier Notifier) (*RequestService, *mock_repositories.MockDataRequestRepo, *mock_repositories.MockSkmRepo) {
	requests := mock_repositories.NewMockDataRequestRepo(ctrl)
	skm := mock_repositories.NewMockSkmRepo(ctrl)
	repos := &repositories.Repos{
		DataRequest: requests,
		Skm:         skm,
		Audit:       mock_repositories.NewMockAuditRepo(ctrl),
	}
	return NewRequestService(repos, testGate, testSurveyGate(), notifier), requests, skm
}

func TestCreateRequest(t *testing.T) {
	muteAudit(t)

	t.Run("informasi computes item subtotals and total once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, requests, _ := newRequestService(ctrl, nil)

		var created models.DataRequest
		requests.EXPECT().Create(gomock.Any()).DoAndReturn(func(req *models.DataRequest) error {
			req.ID = 7
			created = *req
			return nil
		})

		_, err := svc.CreateRequest(nil, 3, dto.CreateDataRequestDTO{
			RequestType: "INFORMASI",
			Purpose:     "penelitian",
			Items: []dto.RequestItemDTO{
				{ServiceID: 1, ServiceName: "Data Curah Hujan", Unit: "dataset", UnitPrice: 25000, Quantity: 2},
				{ServiceID: 2, ServiceName: "Peta Tematik", Unit: "lembar", UnitPrice: 10000, Quantity: 3},
			},
		})
		if err != nil {
			t.Fatalf("CreateRequest: %v", err)
		}
		if created.Status != models.RequestStatusSubmitted {
			t.Errorf("status = %s, want SUBMITTED", created.Status)
		}
		if created.TotalAmount != 80000 {
			t.Errorf("total = %d, want 80000", created.TotalAmount)
		}
		if created.Items[0].Subtotal != 50000 || created.Items[1].Subtotal != 30000 {
			t.Errorf("subtotals = %d, %d", created.Items[0].Subtotal, created.Items[1].Subtotal)
		}
	})

	t.Run("nol rupiah carries no items and zero total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, requests, _ := newRequestService(ctrl, nil)

		requests.EXPECT().Create(gomock.Any()).DoAndReturn(func(req *models.DataRequest) error {
			if req.TotalAmount != 0 {
				t.Errorf("total = %d, want 0", req.TotalAmount)
			}
			return nil
		})

		_, err := svc.CreateRequest(nil, 3, dto.CreateDataRequestDTO{
			RequestType: "NOL_RUPIAH",
			Purpose:     "skripsi",
		})
		if err != nil {
			t.Fatalf("CreateRequest: %v", err)
		}
	})

	t.Run("informasi without items is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, _, _ := newRequestService(ctrl, nil)

		_, err := svc.CreateRequest(nil, 3, dto.CreateDataRequestDTO{RequestType: "INFORMASI"})
		if !errors.Is(err, workflow.ErrValidation) {
			t.Errorf("err = %v, want ErrValidation", err)
		}
	})

	t.Run("nol rupiah with items is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, _, _ := newRequestService(ctrl, nil)

		_, err := svc.CreateRequest(nil, 3, dto.CreateDataRequestDTO{
			RequestType: "NOL_RUPIAH",
			Items:       []dto.RequestItemDTO{{ServiceID: 1, Quantity: 1}},
		})
		if !errors.Is(err, workflow.ErrValidation) {
			t.Errorf("err = %v, want ErrValidation", err)
		}
	})

	t.Run("unknown request type is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, _, _ := newRequestService(ctrl, nil)

		_, err := svc.CreateRequest(nil, 3, dto.CreateDataRequestDTO{RequestType: "GRATIS"})
		if !errors.Is(err, workflow.ErrValidation) {
			t.Errorf("err = %v, want ErrValidation", err)
		}
	})
}

func TestTransitionReview(t *testing.T) {
	muteAudit(t)
	officer := workflow.Actor{ID: 9, Role: "petugas_ppid"}

	t.Run("approving informasi issues billing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		notifier := &recordingNotifier{}
		svc, requests, _ := newRequestService(ctrl, notifier)

		stored := models.DataRequest{ID: 1, RequesterID: 3, RequestType: models.RequestTypeInformasi, Status: models.RequestStatusSubmitted}
		requests.EXPECT().GetByIDForUpdate(uint(1)).Return(stored, nil)
		requests.EXPECT().Update(gomock.Any()).Return(nil)

		updated, err := svc.Transition(nil, 1, officer, workflow.Review{
			Decision:    workflow.DecisionApprove,
			BillingCode: "BILL-2026-0001",
		})
		if err != nil {
			t.Fatalf("Transition: %v", err)
		}
		if updated.Status != models.RequestStatusBillingIssued {
			t.Errorf("status = %s, want BILLING_ISSUED", updated.Status)
		}
		if updated.BillingCode != "BILL-2026-0001" {
			t.Errorf("billing code = %q", updated.BillingCode)
		}
		if updated.ReviewedAt == nil {
			t.Error("ReviewedAt not set")
		}
		if len(notifier.got) != 1 {
			t.Errorf("notifier calls = %d, want 1", len(notifier.got))
		}
	})

	t.Run("approving nol rupiah skips payment entirely", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, requests, _ := newRequestService(ctrl, nil)

		stored := models.DataRequest{ID: 2, RequesterID: 3, RequestType: models.RequestTypeNolRupiah, Status: models.RequestStatusSubmitted}
		requests.EXPECT().GetByIDForUpdate(uint(2)).Return(stored, nil)
		requests.EXPECT().Update(gomock.Any()).Return(nil)

		updated, err := svc.Transition(nil, 2, officer, workflow.Review{Decision: workflow.DecisionApprove})
		if err != nil {
			t.Fatalf("Transition: %v", err)
		}
		if updated.Status != models.RequestStatusPaymentConfirmed {
			t.Errorf("status = %s, want PAYMENT_CONFIRMED", updated.Status)
		}
		if updated.BillingCode != "" {
			t.Errorf("billing code = %q, want empty", updated.BillingCode)
		}
	})

	t.Run("rejecting without a reason fails validation before any write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, requests, _ := newRequestService(ctrl, nil)

		stored := models.DataRequest{ID: 1, RequesterID: 3, RequestType: models.RequestTypeInformasi, Status: models.RequestStatusSubmitted}
		requests.EXPECT().GetByIDForUpdate(uint(1)).Return(stored, nil)

		_, err := svc.Transition(nil, 1, officer, workflow.Review{Decision: workflow.DecisionReject})
		if !errors.Is(err, workflow.ErrValidation) {
			t.Errorf("err = %v, want ErrValidation", err)
		}
	})

	t.Run("rejecting records the reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, requests, _ := newRequestService(ctrl, nil)

		stored := models.DataRequest{ID: 1, RequesterID: 3, RequestType: models.RequestTypeInformasi, Status: models.RequestStatusSubmitted}
		requests.EXPECT().GetByIDForUpdate(uint(1)).Return(stored, nil)
		requests.EXPECT().Update(gomock.Any()).Return(nil)

		updated, err := svc.Transition(nil, 1, officer, workflow.Review{
			Decision:        workflow.DecisionReject,
			RejectionReason: "surat permohonan tidak lengkap",
		})
		if err != nil {
			t.Fatalf("Transition: %v", err)
		}
		if updated.Status != models.RequestStatusRejected {
			t.Errorf("status = %s, want REJECTED", updated.Status)
		}
		if updated.RejectionReason == "" {
			t.Error("rejection reason not recorded")
		}
	})

	t.Run("requester cannot review", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, requests, _ := newRequestService(ctrl, nil)

		stored := models.DataRequest{ID: 1, RequesterID: 3, RequestType: models.RequestTypeInformasi, Status: models.RequestStatusSubmitted}
		requests.EXPECT().GetByIDForUpdate(uint(1)).Return(stored, nil)

		_, err := svc.Transition(nil, 1, workflow.Actor{ID: 3, Role: "pemohon"}, workflow.Review{
			Decision:    workflow.DecisionApprove,
			BillingCode: "BILL-X",
		})
		if !errors.Is(err, workflow.ErrForbidden) {
			t.Errorf("err = %v, want ErrForbidden", err)
		}
	})
}

func TestTransitionGuardOrder(t *testing.T) {
	muteAudit(t)

	t.Run("missing request wins over everything else", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, requests, _ := newRequestService(ctrl, nil)

		requests.EXPECT().GetByIDForUpdate(uint(99)).Return(models.DataRequest{}, gorm.ErrRecordNotFound)

		_, err := svc.Transition(nil, 99, workflow.Actor{ID: 1, Role: "pemohon"}, workflow.Review{Decision: workflow.DecisionApprove})
		if !errors.Is(err, workflow.ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})

	t.Run("terminal states admit no action", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, requests, _ := newRequestService(ctrl, nil)

		stored := models.DataRequest{ID: 1, RequesterID: 3, RequestType: models.RequestTypeInformasi, Status: models.RequestStatusCompleted}
		requests.EXPECT().GetByIDForUpdate(uint(1)).Return(stored, nil)

		_, err := svc.Transition(nil, 1, workflow.Actor{ID: 9, Role: "admin"}, workflow.Review{
			Decision:    workflow.DecisionApprove,
			BillingCode: "BILL-X",
		})
		if !errors.Is(err, workflow.ErrInvalidTransition) {
			t.Errorf("err = %v, want ErrInvalidTransition", err)
		}
	})

	t.Run("only the owner uploads payment proof", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, requests, _ := newRequestService(ctrl, nil)

		stored := models.DataRequest{ID: 1, RequesterID: 3, RequestType: models.RequestTypeInformasi, Status: models.RequestStatusBillingIssued}
		requests.EXPECT().GetByIDForUpdate(uint(1)).Return(stored, nil)

		_, err := svc.Transition(nil, 1, workflow.Actor{ID: 9, Role: "admin"}, workflow.UploadPayment{ProofURL: "https://files/proof.pdf"})
		if !errors.Is(err, workflow.ErrForbidden) {
			t.Errorf("err = %v, want ErrForbidden", err)
		}
	})
}

func TestTransitionSubmitSKM(t *testing.T) {
	muteAudit(t)
	owner := workflow.Actor{ID: 3, Role: "pemohon"}

	fullRatings := func() map[uint]int {
		// nine answers summing to 43; 43/9 rounds to 5
		r := map[uint]int{}
		for id := uint(1); id <= 9; id++ {
			r[id] = 5
		}
		r[4] = 4
		r[7] = 4
		return r
	}

	t.Run("complete survey completes the request with the rounded aggregate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, requests, skm := newRequestService(ctrl, nil)

		stored := models.DataRequest{ID: 5, RequesterID: 3, RequestType: models.RequestTypeNolRupiah, Status: models.RequestStatusDataUploaded}
		requests.EXPECT().GetByIDForUpdate(uint(5)).Return(stored, nil)
		skm.EXPECT().UpsertResponse(gomock.Any()).Return(nil).Times(9)
		requests.EXPECT().Update(gomock.Any()).Return(nil)

		updated, err := svc.Transition(nil, 5, owner, workflow.SubmitSKM{
			Rating:   5,
			Feedback: "pelayanan cepat dan jelas",
			Ratings:  fullRatings(),
		})
		if err != nil {
			t.Fatalf("Transition: %v", err)
		}
		if updated.Status != models.RequestStatusCompleted {
			t.Errorf("status = %s, want COMPLETED", updated.Status)
		}
		if updated.SkmRating == nil || *updated.SkmRating != 5 {
			t.Errorf("skm rating = %v, want 5", updated.SkmRating)
		}
		if updated.CompletedAt == nil {
			t.Error("CompletedAt not set")
		}
	})

	t.Run("a missing answer fails validation, not the transition table", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, requests, _ := newRequestService(ctrl, nil)

		stored := models.DataRequest{ID: 5, RequesterID: 3, RequestType: models.RequestTypeNolRupiah, Status: models.RequestStatusDataUploaded}
		requests.EXPECT().GetByIDForUpdate(uint(5)).Return(stored, nil)

		partial := fullRatings()
		delete(partial, 9)
		_, err := svc.Transition(nil, 5, owner, workflow.SubmitSKM{
			Rating:   5,
			Feedback: "hampir selesai",
			Ratings:  partial,
		})
		if !errors.Is(err, workflow.ErrValidation) {
			t.Errorf("err = %v, want ErrValidation", err)
		}
	})

	t.Run("staff cannot submit the survey for the requester", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, requests, _ := newRequestService(ctrl, nil)

		stored := models.DataRequest{ID: 5, RequesterID: 3, RequestType: models.RequestTypeNolRupiah, Status: models.RequestStatusDataUploaded}
		requests.EXPECT().GetByIDForUpdate(uint(5)).Return(stored, nil)

		_, err := svc.Transition(nil, 5, workflow.Actor{ID: 9, Role: "admin"}, workflow.SubmitSKM{
			Rating:   5,
			Feedback: "bagus",
			Ratings:  fullRatings(),
		})
		if !errors.Is(err, workflow.ErrForbidden) {
			t.Errorf("err = %v, want ErrForbidden", err)
		}
	})
}

func TestTransitionUploadFlow(t *testing.T) {
	muteAudit(t)

	t.Run("payment proof moves billing to payment uploaded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, requests, _ := newRequestService(ctrl, nil)

		stored := models.DataRequest{ID: 1, RequesterID: 3, RequestType: models.RequestTypeInformasi, Status: models.RequestStatusBillingIssued}
		requests.EXPECT().GetByIDForUpdate(uint(1)).Return(stored, nil)
		requests.EXPECT().Update(gomock.Any()).Return(nil)

		updated, err := svc.Transition(nil, 1, workflow.Actor{ID: 3, Role: "pemohon"}, workflow.UploadPayment{ProofURL: "https://files/proof.pdf"})
		if err != nil {
			t.Fatalf("Transition: %v", err)
		}
		if updated.Status != models.RequestStatusPaymentUploaded {
			t.Errorf("status = %s, want PAYMENT_UPLOADED", updated.Status)
		}
		if updated.PaymentProofURL == "" {
			t.Error("proof url not recorded")
		}
	})

	t.Run("re-uploading data keeps the state and replaces the file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, requests, _ := newRequestService(ctrl, nil)

		stored := models.DataRequest{
			ID: 1, RequesterID: 3,
			RequestType: models.RequestTypeInformasi,
			Status:      models.RequestStatusDataUploaded,
			DataFileURL: "https://files/rev1.zip",
		}
		requests.EXPECT().GetByIDForUpdate(uint(1)).Return(stored, nil)
		requests.EXPECT().Update(gomock.Any()).Return(nil)

		updated, err := svc.Transition(nil, 1, workflow.Actor{ID: 9, Role: "petugas_ppid"}, workflow.UploadData{FileURL: "https://files/rev2.zip"})
		if err != nil {
			t.Fatalf("Transition: %v", err)
		}
		if updated.Status != models.RequestStatusDataUploaded {
			t.Errorf("status = %s, want DATA_UPLOADED", updated.Status)
		}
		if updated.DataFileURL != "https://files/rev2.zip" {
			t.Errorf("data file url = %q", updated.DataFileURL)
		}
	})
}

func TestListAndStats(t *testing.T) {
	muteAudit(t)

	t.Run("staff list everything", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, requests, _ := newRequestService(ctrl, nil)

		requests.EXPECT().ListAll(gomock.Nil()).Return([]models.DataRequest{{ID: 1}, {ID: 2}}, nil)

		got, err := svc.ListRequests(workflow.Actor{ID: 9, Role: "petugas_ppid"}, nil)
		if err != nil || len(got) != 2 {
			t.Fatalf("got %d requests, err %v", len(got), err)
		}
	})

	t.Run("requesters list only their own", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, requests, _ := newRequestService(ctrl, nil)

		requests.EXPECT().ListByRequesterID(uint(3)).Return([]models.DataRequest{{ID: 1, RequesterID: 3}}, nil)

		got, err := svc.ListRequests(workflow.Actor{ID: 3, Role: "pemohon"}, nil)
		if err != nil || len(got) != 1 {
			t.Fatalf("got %d requests, err %v", len(got), err)
		}
	})

	t.Run("requesters cannot read foreign requests", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, requests, _ := newRequestService(ctrl, nil)

		requests.EXPECT().GetByID(uint(1)).Return(models.DataRequest{ID: 1, RequesterID: 3}, nil)

		_, err := svc.GetRequest(1, workflow.Actor{ID: 4, Role: "pemohon"})
		if !errors.Is(err, workflow.ErrForbidden) {
			t.Errorf("err = %v, want ErrForbidden", err)
		}
	})

	t.Run("stats are staff only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, _, _ := newRequestService(ctrl, nil)

		_, err := svc.CountByStatus(workflow.Actor{ID: 3, Role: "pemohon"})
		if !errors.Is(err, workflow.ErrForbidden) {
			t.Errorf("err = %v, want ErrForbidden", err)
		}
	})
}
