package repositories

import (
	"github.com/pelayanandata/portal-go/db"
	"github.com/pelayanandata/portal-go/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SkmRepo interface {
	ListQuestions() ([]models.SkmQuestion, error)
	UpsertResponse(resp *models.SkmResponse) error
	ListResponsesByRequestID(requestID uint) ([]models.SkmResponse, error)
}

type DBSkmRepo struct {
	DB *gorm.DB
}

func (r *DBSkmRepo) conn() *gorm.DB {
	if r.DB != nil {
		return r.DB
	}
	return db.DB
}

func (r *DBSkmRepo) ListQuestions() ([]models.SkmQuestion, error) {
	var questions []models.SkmQuestion
	err := r.conn().Order("sort_order ASC").Find(&questions).Error
	return questions, err
}

// UpsertResponse writes one rating, replacing a prior rating for the same
// (request, question) pair instead of duplicating it.
func (r *DBSkmRepo) UpsertResponse(resp *models.SkmResponse) error {
	return r.conn().Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "request_id"}, {Name: "question_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"rating", "updated_at"}),
	}).Create(resp).Error
}

func (r *DBSkmRepo) ListResponsesByRequestID(requestID uint) ([]models.SkmResponse, error) {
	var responses []models.SkmResponse
	err := r.conn().
		Preload("Question").
		Where("request_id = ?", requestID).
		Find(&responses).Error
	return responses, err
}
