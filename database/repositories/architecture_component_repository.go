package repositories

import (
	"github.com/graylake-dev/postureguard/database/models"
	"github.com/graylake-dev/postureguard/dtos"
	"github.com/graylake-dev/postureguard/shared"
	"github.com/graylake-dev/postureguard/utils"
	"gorm.io/gorm"
)

type architectureComponentRepository struct {
	db *gorm.DB
	utils.Repository[uint, models.ArchitectureComponent, *gorm.DB]
}

func NewArchitectureComponentRepository(db *gorm.DB) *architectureComponentRepository {
	return &architectureComponentRepository{
		db:         db,
		Repository: newGormRepository[uint, models.ArchitectureComponent](db),
	}
}

func (r *architectureComponentRepository) FindByFilter(filter dtos.ArchitectureComponentFilter, opts shared.ListOptions) ([]models.ArchitectureComponent, error) {
	var components []models.ArchitectureComponent
	q := r.db.Model(&models.ArchitectureComponent{})

	if filter.ComponentType != nil {
		q = q.Where("component_type = ?", *filter.ComponentType)
	}
	if filter.SecurityDomain != nil {
		q = q.Where("security_domain = ?", *filter.SecurityDomain)
	}
	if filter.ContainerID != nil {
		q = q.Where("container_id = ?", *filter.ContainerID)
	}
	if filter.TrustBoundary != nil {
		q = q.Where("trust_boundary = ?", *filter.TrustBoundary)
	}
	if filter.NetworkZone != nil {
		q = q.Where("network_zone = ?", *filter.NetworkZone)
	}
	if filter.IsActive != nil {
		q = q.Where("is_active = ?", *filter.IsActive)
	}

	err := opts.ApplyOnDB(q.Order("created_at DESC")).Find(&components).Error
	return components, err
}

func (r *architectureComponentRepository) FindByContainerID(containerID uint, opts shared.ListOptions) ([]models.ArchitectureComponent, error) {
	var components []models.ArchitectureComponent
	q := r.db.Where("container_id = ?", containerID).Order("created_at DESC")

	err := opts.ApplyOnDB(q).Find(&components).Error
	return components, err
}
