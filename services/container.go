package services

import (
	"github.com/pelayanandata/portal-go/repositories"
	"github.com/pelayanandata/portal-go/workflow"
)

type Services struct {
	User    *UserService
	Request *RequestService
	Content *ContentService
	Audit   *AuditService
}

func New(repos *repositories.Repos, gate workflow.RoleGate, survey *workflow.SurveyGate, notifier Notifier) *Services {
	return &Services{
		User:    NewUserService(repos),
		Request: NewRequestService(repos, gate, survey, notifier),
		Content: NewContentService(repos, gate),
		Audit:   NewAuditService(repos),
	}
}
