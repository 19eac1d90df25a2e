package repositories

import (
	"github.com/graylake-dev/postureguard/database/models"
	"github.com/graylake-dev/postureguard/dtos"
	"github.com/graylake-dev/postureguard/shared"
	"github.com/graylake-dev/postureguard/utils"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
	utils.Repository[uint, models.User, *gorm.DB]
}

func NewUserRepository(db *gorm.DB) *userRepository {
	return &userRepository{
		db:         db,
		Repository: newGormRepository[uint, models.User](db),
	}
}

func (r *userRepository) FindByFilter(filter dtos.UserFilter, opts shared.ListOptions) ([]models.User, error) {
	var users []models.User
	q := r.db.Model(&models.User{})

	if filter.Role != nil {
		q = q.Where("role = ?", *filter.Role)
	}
	if filter.IsActive != nil {
		q = q.Where("is_active = ?", *filter.IsActive)
	}

	err := opts.ApplyOnDB(q.Order("created_at DESC")).Find(&users).Error
	return users, err
}
