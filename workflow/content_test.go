package workflow_test

import (
	"errors"
	"testing"

	"github.com/pelayanandata/portal-go/models"
	"github.com/pelayanandata/portal-go/workflow"
)

func TestNextContentStatus(t *testing.T) {
	cases := []struct {
		name    string
		from    models.ContentStatus
		action  workflow.ContentAction
		want    models.ContentStatus
		wantErr bool
	}{
		{"submit draft", models.ContentStatusDraft, workflow.ContentActionSubmitForReview, models.ContentStatusPendingReview, false},
		{"approve pending", models.ContentStatusPendingReview, workflow.ContentActionApprove, models.ContentStatusPublished, false},
		{"reject returns to draft", models.ContentStatusPendingReview, workflow.ContentActionReject, models.ContentStatusDraft, false},
		{"archive published", models.ContentStatusPublished, workflow.ContentActionArchive, models.ContentStatusArchived, false},
		{"approve draft is illegal", models.ContentStatusDraft, workflow.ContentActionApprove, "", true},
		{"submit pending again is illegal", models.ContentStatusPendingReview, workflow.ContentActionSubmitForReview, "", true},
		{"archive draft is illegal", models.ContentStatusDraft, workflow.ContentActionArchive, "", true},
		{"archived accepts nothing", models.ContentStatusArchived, workflow.ContentActionApprove, "", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := workflow.NextContentStatus(tc.from, tc.action)
			if tc.wantErr {
				if !errors.Is(err, workflow.ErrInvalidTransition) {
					t.Fatalf("expected ErrInvalidTransition, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}
