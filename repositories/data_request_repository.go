package repositories

import (
	"github.com/pelayanandata/portal-go/db"
	"github.com/pelayanandata/portal-go/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DataRequestRepo interface {
	Create(req *models.DataRequest) error
	Update(req *models.DataRequest) error
	GetByID(id uint) (models.DataRequest, error)
	GetByIDForUpdate(id uint) (models.DataRequest, error)
	ListAll(status *models.RequestStatus) ([]models.DataRequest, error)
	ListByRequesterID(requesterID uint) ([]models.DataRequest, error)
	CountByStatus() (map[models.RequestStatus]int64, error)
}

type DBDataRequestRepo struct {
	DB *gorm.DB
}

func (r *DBDataRequestRepo) conn() *gorm.DB {
	if r.DB != nil {
		return r.DB
	}
	return db.DB
}

func (r *DBDataRequestRepo) Create(req *models.DataRequest) error {
	return r.conn().Create(req).Error
}

func (r *DBDataRequestRepo) Update(req *models.DataRequest) error {
	return r.conn().Omit("Items", "Requester").Save(req).Error
}

func (r *DBDataRequestRepo) GetByID(id uint) (models.DataRequest, error) {
	var req models.DataRequest
	err := r.conn().Preload("Items").First(&req, id).Error
	return req, err
}

// GetByIDForUpdate locks the row for the duration of the surrounding
// transaction so concurrent transitions on one request serialize.
func (r *DBDataRequestRepo) GetByIDForUpdate(id uint) (models.DataRequest, error) {
	var req models.DataRequest
	err := r.conn().
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&req, id).Error
	if err != nil {
		return req, err
	}
	err = r.conn().Where("request_id = ?", id).Find(&req.Items).Error
	return req, err
}

func (r *DBDataRequestRepo) ListAll(status *models.RequestStatus) ([]models.DataRequest, error) {
	var reqs []models.DataRequest
	query := r.conn().Preload("Items").Order("created_at DESC")
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	err := query.Find(&reqs).Error
	return reqs, err
}

func (r *DBDataRequestRepo) ListByRequesterID(requesterID uint) ([]models.DataRequest, error) {
	var reqs []models.DataRequest
	err := r.conn().
		Preload("Items").
		Where("requester_id = ?", requesterID).
		Order("created_at DESC").
		Find(&reqs).Error
	return reqs, err
}

func (r *DBDataRequestRepo) CountByStatus() (map[models.RequestStatus]int64, error) {
	type row struct {
		Status models.RequestStatus
		Count  int64
	}
	var rows []row
	err := r.conn().
		Model(&models.DataRequest{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.RequestStatus]int64, len(rows))
	for _, rw := range rows {
		counts[rw.Status] = rw.Count
	}
	return counts, nil
}
