//go:build integration
// +build integration

package integration

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pelayanandata/portal-go/dto"
	"github.com/pelayanandata/portal-go/models"
)

func TestContentApprovalFlow(t *testing.T) {
	// Draft
	w := doJSON(t, http.MethodPost, "/contents", testCtx.OfficerTok, dto.CreateContentDTO{
		Kind:  "news",
		Title: "Buletin Iklim Bulanan",
		Body:  "Ringkasan kondisi iklim bulan ini.",
	})
	requireStatus(t, w, http.StatusCreated)

	var content models.Content
	decodeBody(t, w, &content)
	require.Equal(t, models.ContentStatusDraft, content.Status)

	base := fmt.Sprintf("/contents/%d", content.ID)

	// Drafts are invisible to the public
	w = doJSON(t, http.MethodGet, base, "", nil)
	requireStatus(t, w, http.StatusNotFound)

	// Author edits, then submits
	title := "Buletin Iklim Bulanan (Edisi Agustus)"
	w = doJSON(t, http.MethodPut, base, testCtx.OfficerTok, dto.UpdateContentDTO{Title: &title})
	requireStatus(t, w, http.StatusOK)

	w = doJSON(t, http.MethodPost, base+"/submit", testCtx.OfficerTok, nil)
	requireStatus(t, w, http.StatusOK)
	decodeBody(t, w, &content)
	require.Equal(t, models.ContentStatusPendingReview, content.Status)

	// Pending items are frozen
	w = doJSON(t, http.MethodPut, base, testCtx.OfficerTok, dto.UpdateContentDTO{Title: &title})
	requireStatus(t, w, http.StatusConflict)

	// Only editorial admins decide
	w = doJSON(t, http.MethodPost, base+"/approve", testCtx.OfficerTok, nil)
	requireStatus(t, w, http.StatusForbidden)

	w = doJSON(t, http.MethodPost, base+"/approve", testCtx.AdminTok, nil)
	requireStatus(t, w, http.StatusOK)
	decodeBody(t, w, &content)
	require.Equal(t, models.ContentStatusPublished, content.Status)
	require.NotNil(t, content.PublishedAt)

	// Published items are public
	w = doJSON(t, http.MethodGet, base, "", nil)
	requireStatus(t, w, http.StatusOK)

	w = doJSON(t, http.MethodGet, "/contents?kind=news", "", nil)
	requireStatus(t, w, http.StatusOK)
	var published []models.Content
	decodeBody(t, w, &published)
	require.NotEmpty(t, published)

	// Archive removes it from the catalog
	w = doJSON(t, http.MethodPost, base+"/archive", testCtx.AdminTok, nil)
	requireStatus(t, w, http.StatusOK)
	decodeBody(t, w, &content)
	require.Equal(t, models.ContentStatusArchived, content.Status)
}

func TestContentRejectionReturnsToDraft(t *testing.T) {
	w := doJSON(t, http.MethodPost, "/contents", testCtx.OfficerTok, dto.CreateContentDTO{
		Kind:  "article",
		Title: "Cara Membaca Peta Curah Hujan",
	})
	requireStatus(t, w, http.StatusCreated)

	var content models.Content
	decodeBody(t, w, &content)
	base := fmt.Sprintf("/contents/%d", content.ID)

	w = doJSON(t, http.MethodPost, base+"/submit", testCtx.OfficerTok, nil)
	requireStatus(t, w, http.StatusOK)

	w = doJSON(t, http.MethodPost, base+"/reject", testCtx.AdminTok, nil)
	requireStatus(t, w, http.StatusOK)
	decodeBody(t, w, &content)
	require.Equal(t, models.ContentStatusDraft, content.Status)

	// Back in draft the author can rework and resubmit
	body := "Panduan langkah demi langkah."
	w = doJSON(t, http.MethodPut, base, testCtx.OfficerTok, dto.UpdateContentDTO{Body: &body})
	requireStatus(t, w, http.StatusOK)

	w = doJSON(t, http.MethodPost, base+"/submit", testCtx.OfficerTok, nil)
	requireStatus(t, w, http.StatusOK)
}
