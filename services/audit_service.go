package services

import (
	"github.com/pelayanandata/portal-go/models"
	"github.com/pelayanandata/portal-go/repositories"
)

type AuditService struct {
	Repos *repositories.Repos
}

func NewAuditService(repos *repositories.Repos) *AuditService {
	return &AuditService{Repos: repos}
}

func (s *AuditService) GetAuditLogs(params repositories.AuditQueryParams) ([]models.AuditLog, error) {
	if params.Limit <= 0 || params.Limit > 200 {
		params.Limit = 50
	}
	return s.Repos.Audit.GetAuditLogs(params)
}
