package repositories

import (
	"github.com/pelayanandata/portal-go/db"
	"github.com/pelayanandata/portal-go/models"
	"gorm.io/gorm"
)

type UserRepo interface {
	Create(user *models.User) error
	GetByID(id uint) (models.User, error)
	GetByUsername(username string) (models.User, error)
}

type DBUserRepo struct {
	DB *gorm.DB
}

func (r *DBUserRepo) conn() *gorm.DB {
	if r.DB != nil {
		return r.DB
	}
	return db.DB
}

func (r *DBUserRepo) Create(user *models.User) error {
	return r.conn().Create(user).Error
}

func (r *DBUserRepo) GetByID(id uint) (models.User, error) {
	var user models.User
	err := r.conn().First(&user, id).Error
	return user, err
}

func (r *DBUserRepo) GetByUsername(username string) (models.User, error) {
	var user models.User
	err := r.conn().Where("username = ?", username).First(&user).Error
	return user, err
}
