package repositories

import (
	"github.com/pelayanandata/portal-go/db"
	"github.com/pelayanandata/portal-go/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ContentRepo interface {
	Create(content *models.Content) error
	Update(content *models.Content) error
	GetByID(id uint) (models.Content, error)
	GetByIDForUpdate(id uint) (models.Content, error)
	ListAll() ([]models.Content, error)
	ListByStatus(status models.ContentStatus) ([]models.Content, error)
	ListByAuthorID(authorID uint) ([]models.Content, error)
}

type DBContentRepo struct {
	DB *gorm.DB
}

func (r *DBContentRepo) conn() *gorm.DB {
	if r.DB != nil {
		return r.DB
	}
	return db.DB
}

func (r *DBContentRepo) Create(content *models.Content) error {
	return r.conn().Create(content).Error
}

func (r *DBContentRepo) Update(content *models.Content) error {
	return r.conn().Omit("Author").Save(content).Error
}

func (r *DBContentRepo) GetByID(id uint) (models.Content, error) {
	var content models.Content
	err := r.conn().First(&content, id).Error
	return content, err
}

func (r *DBContentRepo) GetByIDForUpdate(id uint) (models.Content, error) {
	var content models.Content
	err := r.conn().
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&content, id).Error
	return content, err
}

func (r *DBContentRepo) ListAll() ([]models.Content, error) {
	var contents []models.Content
	err := r.conn().Order("created_at DESC").Find(&contents).Error
	return contents, err
}

func (r *DBContentRepo) ListByStatus(status models.ContentStatus) ([]models.Content, error) {
	var contents []models.Content
	err := r.conn().
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&contents).Error
	return contents, err
}

func (r *DBContentRepo) ListByAuthorID(authorID uint) ([]models.Content, error) {
	var contents []models.Content
	err := r.conn().
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Find(&contents).Error
	return contents, err
}
