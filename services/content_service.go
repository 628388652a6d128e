package services

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pelayanandata/portal-go/dto"
	"github.com/pelayanandata/portal-go/models"
	"github.com/pelayanandata/portal-go/repositories"
	"github.com/pelayanandata/portal-go/utils"
	"github.com/pelayanandata/portal-go/workflow"
	"gorm.io/gorm"
)

// ContentService manages editorial items (news, articles, videos) through
// the approval gate: DRAFT -> PENDING_REVIEW -> PUBLISHED -> ARCHIVED,
// with rejection sending the item back to DRAFT for rework.
type ContentService struct {
	Repos *repositories.Repos
	Gate  workflow.RoleGate
}

func NewContentService(repos *repositories.Repos, gate workflow.RoleGate) *ContentService {
	return &ContentService{Repos: repos, Gate: gate}
}

func (s *ContentService) CreateContent(c *gin.Context, authorID uint, input dto.CreateContentDTO) (models.Content, error) {
	kind := models.ContentKind(input.Kind)
	switch kind {
	case models.ContentKindNews, models.ContentKindArticle, models.ContentKindVideo:
	default:
		return models.Content{}, fmt.Errorf("%w: unknown content kind %q", workflow.ErrValidation, input.Kind)
	}

	content := models.Content{
		AuthorID: authorID,
		Kind:     kind,
		Status:   models.ContentStatusDraft,
		Title:    input.Title,
		Body:     input.Body,
		MediaURL: input.MediaURL,
	}
	if err := s.Repos.Content.Create(&content); err != nil {
		return models.Content{}, err
	}

	utils.LogAuditWithConsole(c, authorID, "CREATE_CONTENT", "content",
		strconv.FormatUint(uint64(content.ID), 10), nil, content,
		fmt.Sprintf("drafted %s %q", content.Kind, content.Title), s.Repos.Audit)

	return content, nil
}

// UpdateContent edits a draft in place. Items past DRAFT are frozen until
// a reviewer sends them back.
func (s *ContentService) UpdateContent(c *gin.Context, contentID uint, actor workflow.Actor, input dto.UpdateContentDTO) (models.Content, error) {
	content, err := s.Repos.Content.GetByID(contentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Content{}, fmt.Errorf("%w: content %d", workflow.ErrNotFound, contentID)
		}
		return models.Content{}, err
	}
	if content.AuthorID != actor.ID && !s.Gate.IsEditorialAdmin(actor) {
		return models.Content{}, fmt.Errorf("%w: not your draft", workflow.ErrForbidden)
	}
	if content.Status != models.ContentStatusDraft {
		return models.Content{}, fmt.Errorf("%w: content in %s cannot be edited", workflow.ErrInvalidTransition, content.Status)
	}

	before := content
	if input.Title != nil {
		content.Title = *input.Title
	}
	if input.Body != nil {
		content.Body = *input.Body
	}
	if input.MediaURL != nil {
		content.MediaURL = *input.MediaURL
	}
	if err := s.Repos.Content.Update(&content); err != nil {
		return models.Content{}, err
	}

	utils.LogAuditWithConsole(c, actor.ID, "UPDATE_CONTENT", "content",
		strconv.FormatUint(uint64(content.ID), 10), before, content,
		fmt.Sprintf("edited draft %q", content.Title), s.Repos.Audit)

	return content, nil
}

// Transition moves a content item through the approval gate. Same guard
// order as the request engine: existence, authorization, state match.
func (s *ContentService) Transition(c *gin.Context, contentID uint, actor workflow.Actor, action workflow.ContentAction) (models.Content, error) {
	var updated models.Content

	err := s.Repos.Transaction(func(r *repositories.Repos) error {
		content, err := r.Content.GetByIDForUpdate(contentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: content %d", workflow.ErrNotFound, contentID)
			}
			return err
		}

		if !s.Gate.AllowContent(actor, action, content.AuthorID) {
			return fmt.Errorf("%w: %s is not permitted for this actor", workflow.ErrForbidden, action)
		}

		next, err := workflow.NextContentStatus(content.Status, action)
		if err != nil {
			return err
		}

		before := content
		now := time.Now()

		switch action {
		case workflow.ContentActionApprove:
			content.PublishedAt = &now
		case workflow.ContentActionReject:
			content.PublishedAt = nil
		}
		content.Status = next

		if err := r.Content.Update(&content); err != nil {
			return err
		}

		utils.LogAuditWithConsole(c, actor.ID, string(action), "content",
			strconv.FormatUint(uint64(content.ID), 10), before, content,
			fmt.Sprintf("content %d: %s -> %s", content.ID, before.Status, next), r.Audit)

		updated = content
		return nil
	})
	if err != nil {
		return models.Content{}, err
	}
	return updated, nil
}

// ListPublished is the public catalog: PUBLISHED items only, optionally
// narrowed to one kind.
func (s *ContentService) ListPublished(kind *models.ContentKind) ([]models.Content, error) {
	contents, err := s.Repos.Content.ListByStatus(models.ContentStatusPublished)
	if err != nil || kind == nil {
		return contents, err
	}
	filtered := contents[:0]
	for _, content := range contents {
		if content.Kind == *kind {
			filtered = append(filtered, content)
		}
	}
	return filtered, nil
}

// ListContents shows editorial admins everything and authors their own
// items regardless of status.
func (s *ContentService) ListContents(actor workflow.Actor, status *models.ContentStatus) ([]models.Content, error) {
	if s.Gate.IsEditorialAdmin(actor) {
		if status != nil {
			return s.Repos.Content.ListByStatus(*status)
		}
		return s.Repos.Content.ListAll()
	}
	return s.Repos.Content.ListByAuthorID(actor.ID)
}

func (s *ContentService) GetContent(contentID uint, actor *workflow.Actor) (models.Content, error) {
	content, err := s.Repos.Content.GetByID(contentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Content{}, fmt.Errorf("%w: content %d", workflow.ErrNotFound, contentID)
		}
		return models.Content{}, err
	}
	if content.Status == models.ContentStatusPublished {
		return content, nil
	}
	if actor == nil || (content.AuthorID != actor.ID && !s.Gate.IsEditorialAdmin(*actor)) {
		return models.Content{}, fmt.Errorf("%w: content %d", workflow.ErrNotFound, contentID)
	}
	return content, nil
}
