package repositories

import (
	"github.com/graylake-dev/postureguard/database/models"
	"github.com/graylake-dev/postureguard/dtos"
	"github.com/graylake-dev/postureguard/shared"
	"gorm.io/gorm"
)

// containerRepository embeds the concrete generic repository instead of the
// utils.Repository interface so the seeding CLI can reach Upsert.
type containerRepository struct {
	db *gorm.DB
	*GormRepository[uint, models.Container]
}

func NewContainerRepository(db *gorm.DB) *containerRepository {
	return &containerRepository{
		db:             db,
		GormRepository: newGormRepository[uint, models.Container](db),
	}
}

// FindActive lists active containers unless the filter asks for inactive ones
// explicitly.
func (r *containerRepository) FindActive(filter dtos.ContainerFilter, opts shared.ListOptions) ([]models.Container, error) {
	var containers []models.Container
	q := r.db.Model(&models.Container{})

	if filter.Type != nil {
		q = q.Where("type = ?", *filter.Type)
	}
	if filter.IsActive != nil {
		q = q.Where("is_active = ?", *filter.IsActive)
	} else {
		q = q.Where("is_active = ?", true)
	}

	err := opts.ApplyOnDB(q.Order("created_at DESC")).Find(&containers).Error
	return containers, err
}

func (r *containerRepository) FindBySlug(slug string) (models.Container, error) {
	var container models.Container
	err := r.db.First(&container, "slug = ?", slug).Error
	return container, err
}
