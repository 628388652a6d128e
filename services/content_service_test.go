package services

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pelayanandata/portal-go/dto"
	"github.com/pelayanandata/portal-go/models"
	"github.com/pelayanandata/portal-go/repositories"
	"github.com/pelayanandata/portal-go/repositories/mock_repositories"
	"github.com/pelayanandata/portal-go/workflow"
	"gorm.io/gorm"
)

func newContentService(ctrl *gomock.Controller) (*ContentService, *mock_repositories.MockContentRepo) {
	contents := mock_repositories.NewMockContentRepo(ctrl)
	repos := &repositories.Repos{
		Content: contents,
		Audit:   mock_repositories.NewMockAuditRepo(ctrl),
	}
	return NewContentService(repos, testGate), contents
}

func TestCreateContent(t *testing.T) {
	muteAudit(t)

	t.Run("new content starts as a draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, contents := newContentService(ctrl)

		contents.EXPECT().Create(gomock.Any()).DoAndReturn(func(content *models.Content) error {
			if content.Status != models.ContentStatusDraft {
				t.Errorf("status = %s, want DRAFT", content.Status)
			}
			content.ID = 11
			return nil
		})

		created, err := svc.CreateContent(nil, 2, dto.CreateContentDTO{
			Kind:  "news",
			Title: "Peringatan Dini Cuaca Ekstrem",
			Body:  "...",
		})
		if err != nil {
			t.Fatalf("CreateContent: %v", err)
		}
		if created.AuthorID != 2 {
			t.Errorf("author = %d, want 2", created.AuthorID)
		}
	})

	t.Run("unknown kind is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, _ := newContentService(ctrl)

		_, err := svc.CreateContent(nil, 2, dto.CreateContentDTO{Kind: "podcast", Title: "x"})
		if !errors.Is(err, workflow.ErrValidation) {
			t.Errorf("err = %v, want ErrValidation", err)
		}
	})
}

func TestUpdateContent(t *testing.T) {
	muteAudit(t)

	t.Run("author edits own draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, contents := newContentService(ctrl)

		stored := models.Content{ID: 11, AuthorID: 2, Status: models.ContentStatusDraft, Title: "old"}
		contents.EXPECT().GetByID(uint(11)).Return(stored, nil)
		contents.EXPECT().Update(gomock.Any()).Return(nil)

		title := "new title"
		updated, err := svc.UpdateContent(nil, 11, workflow.Actor{ID: 2, Role: "pemohon"}, dto.UpdateContentDTO{Title: &title})
		if err != nil {
			t.Fatalf("UpdateContent: %v", err)
		}
		if updated.Title != "new title" {
			t.Errorf("title = %q", updated.Title)
		}
	})

	t.Run("non-draft content is frozen", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, contents := newContentService(ctrl)

		stored := models.Content{ID: 11, AuthorID: 2, Status: models.ContentStatusPendingReview}
		contents.EXPECT().GetByID(uint(11)).Return(stored, nil)

		title := "x"
		_, err := svc.UpdateContent(nil, 11, workflow.Actor{ID: 2, Role: "pemohon"}, dto.UpdateContentDTO{Title: &title})
		if !errors.Is(err, workflow.ErrInvalidTransition) {
			t.Errorf("err = %v, want ErrInvalidTransition", err)
		}
	})

	t.Run("strangers cannot edit a draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, contents := newContentService(ctrl)

		stored := models.Content{ID: 11, AuthorID: 2, Status: models.ContentStatusDraft}
		contents.EXPECT().GetByID(uint(11)).Return(stored, nil)

		title := "x"
		_, err := svc.UpdateContent(nil, 11, workflow.Actor{ID: 5, Role: "pemohon"}, dto.UpdateContentDTO{Title: &title})
		if !errors.Is(err, workflow.ErrForbidden) {
			t.Errorf("err = %v, want ErrForbidden", err)
		}
	})
}

func TestContentTransition(t *testing.T) {
	muteAudit(t)

	t.Run("author submits draft for review", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, contents := newContentService(ctrl)

		stored := models.Content{ID: 11, AuthorID: 2, Status: models.ContentStatusDraft}
		contents.EXPECT().GetByIDForUpdate(uint(11)).Return(stored, nil)
		contents.EXPECT().Update(gomock.Any()).Return(nil)

		updated, err := svc.Transition(nil, 11, workflow.Actor{ID: 2, Role: "pemohon"}, workflow.ContentActionSubmitForReview)
		if err != nil {
			t.Fatalf("Transition: %v", err)
		}
		if updated.Status != models.ContentStatusPendingReview {
			t.Errorf("status = %s, want PENDING_REVIEW", updated.Status)
		}
	})

	t.Run("approval publishes and stamps the time", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, contents := newContentService(ctrl)

		stored := models.Content{ID: 11, AuthorID: 2, Status: models.ContentStatusPendingReview}
		contents.EXPECT().GetByIDForUpdate(uint(11)).Return(stored, nil)
		contents.EXPECT().Update(gomock.Any()).Return(nil)

		updated, err := svc.Transition(nil, 11, workflow.Actor{ID: 9, Role: "admin"}, workflow.ContentActionApprove)
		if err != nil {
			t.Fatalf("Transition: %v", err)
		}
		if updated.Status != models.ContentStatusPublished {
			t.Errorf("status = %s, want PUBLISHED", updated.Status)
		}
		if updated.PublishedAt == nil {
			t.Error("PublishedAt not set")
		}
	})

	t.Run("rejection returns the item to draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, contents := newContentService(ctrl)

		stored := models.Content{ID: 11, AuthorID: 2, Status: models.ContentStatusPendingReview}
		contents.EXPECT().GetByIDForUpdate(uint(11)).Return(stored, nil)
		contents.EXPECT().Update(gomock.Any()).Return(nil)

		updated, err := svc.Transition(nil, 11, workflow.Actor{ID: 9, Role: "admin"}, workflow.ContentActionReject)
		if err != nil {
			t.Fatalf("Transition: %v", err)
		}
		if updated.Status != models.ContentStatusDraft {
			t.Errorf("status = %s, want DRAFT", updated.Status)
		}
	})

	t.Run("authors cannot approve their own work", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, contents := newContentService(ctrl)

		stored := models.Content{ID: 11, AuthorID: 2, Status: models.ContentStatusPendingReview}
		contents.EXPECT().GetByIDForUpdate(uint(11)).Return(stored, nil)

		_, err := svc.Transition(nil, 11, workflow.Actor{ID: 2, Role: "pemohon"}, workflow.ContentActionApprove)
		if !errors.Is(err, workflow.ErrForbidden) {
			t.Errorf("err = %v, want ErrForbidden", err)
		}
	})

	t.Run("archive only applies to published items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, contents := newContentService(ctrl)

		stored := models.Content{ID: 11, AuthorID: 2, Status: models.ContentStatusDraft}
		contents.EXPECT().GetByIDForUpdate(uint(11)).Return(stored, nil)

		_, err := svc.Transition(nil, 11, workflow.Actor{ID: 9, Role: "admin"}, workflow.ContentActionArchive)
		if !errors.Is(err, workflow.ErrInvalidTransition) {
			t.Errorf("err = %v, want ErrInvalidTransition", err)
		}
	})

	t.Run("missing content maps to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, contents := newContentService(ctrl)

		contents.EXPECT().GetByIDForUpdate(uint(404)).Return(models.Content{}, gorm.ErrRecordNotFound)

		_, err := svc.Transition(nil, 404, workflow.Actor{ID: 9, Role: "admin"}, workflow.ContentActionApprove)
		if !errors.Is(err, workflow.ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})
}

func TestContentVisibility(t *testing.T) {
	t.Run("anonymous readers only see published items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, contents := newContentService(ctrl)

		stored := models.Content{ID: 11, AuthorID: 2, Status: models.ContentStatusDraft}
		contents.EXPECT().GetByID(uint(11)).Return(stored, nil)

		_, err := svc.GetContent(11, nil)
		if !errors.Is(err, workflow.ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})

	t.Run("authors see their own drafts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, contents := newContentService(ctrl)

		stored := models.Content{ID: 11, AuthorID: 2, Status: models.ContentStatusDraft}
		contents.EXPECT().GetByID(uint(11)).Return(stored, nil)

		got, err := svc.GetContent(11, &workflow.Actor{ID: 2, Role: "pemohon"})
		if err != nil || got.ID != 11 {
			t.Fatalf("got %v, err %v", got.ID, err)
		}
	})

	t.Run("published filter narrows by kind", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, contents := newContentService(ctrl)

		contents.EXPECT().ListByStatus(models.ContentStatusPublished).Return([]models.Content{
			{ID: 1, Kind: models.ContentKindNews, Status: models.ContentStatusPublished},
			{ID: 2, Kind: models.ContentKindVideo, Status: models.ContentStatusPublished},
		}, nil)

		kind := models.ContentKindVideo
		got, err := svc.ListPublished(&kind)
		if err != nil {
			t.Fatalf("ListPublished: %v", err)
		}
		if len(got) != 1 || got[0].ID != 2 {
			t.Errorf("got %d items", len(got))
		}
	})
}
