package repositories

import (
	"github.com/graylake-dev/postureguard/database/models"
	"github.com/graylake-dev/postureguard/dtos"
	"github.com/graylake-dev/postureguard/shared"
	"github.com/graylake-dev/postureguard/utils"
	"gorm.io/gorm"
)

type securityControlRepository struct {
	db *gorm.DB
	utils.Repository[uint, models.SecurityControl, *gorm.DB]
}

func NewSecurityControlRepository(db *gorm.DB) *securityControlRepository {
	return &securityControlRepository{
		db:         db,
		Repository: newGormRepository[uint, models.SecurityControl](db),
	}
}

func (r *securityControlRepository) FindByFilter(filter dtos.SecurityControlFilter, opts shared.ListOptions) ([]models.SecurityControl, error) {
	var controls []models.SecurityControl
	q := r.db.Model(&models.SecurityControl{})

	if filter.ImplementationStatus != nil {
		q = q.Where("implementation_status = ?", *filter.ImplementationStatus)
	}
	if filter.ControlType != nil {
		q = q.Where("control_type = ?", *filter.ControlType)
	}
	if filter.FrameworkReference != nil {
		q = q.Where("framework_reference = ?", *filter.FrameworkReference)
	}
	if filter.ControlFamily != nil {
		q = q.Where("control_family = ?", *filter.ControlFamily)
	}
	if filter.ContainerID != nil {
		q = q.Where("container_id = ?", *filter.ContainerID)
	}
	if filter.IsActive != nil {
		q = q.Where("is_active = ?", *filter.IsActive)
	}

	err := opts.ApplyOnDB(q.Order("created_at DESC")).Find(&controls).Error
	return controls, err
}

func (r *securityControlRepository) FindByContainerID(containerID uint, opts shared.ListOptions) ([]models.SecurityControl, error) {
	var controls []models.SecurityControl
	q := r.db.Where("container_id = ?", containerID).Order("created_at DESC")

	err := opts.ApplyOnDB(q).Find(&controls).Error
	return controls, err
}
