package repositories

import (
	"github.com/graylake-dev/postureguard/database/models"
	"github.com/graylake-dev/postureguard/dtos"
	"github.com/graylake-dev/postureguard/shared"
	"github.com/graylake-dev/postureguard/utils"
	"gorm.io/gorm"
)

type securityReviewRepository struct {
	db *gorm.DB
	utils.Repository[uint, models.SecurityReview, *gorm.DB]
}

func NewSecurityReviewRepository(db *gorm.DB) *securityReviewRepository {
	return &securityReviewRepository{
		db:         db,
		Repository: newGormRepository[uint, models.SecurityReview](db),
	}
}

func (r *securityReviewRepository) FindByFilter(filter dtos.ReviewFilter, opts shared.ListOptions) ([]models.SecurityReview, error) {
	var reviews []models.SecurityReview
	q := r.db.Model(&models.SecurityReview{})

	if filter.Status != nil {
		q = q.Where("status = ?", *filter.Status)
	}
	if filter.ContainerID != nil {
		q = q.Where("container_id = ?", *filter.ContainerID)
	}
	if filter.ReviewerID != nil {
		q = q.Where("reviewer_id = ?", *filter.ReviewerID)
	}

	err := opts.ApplyOnDB(q.Order("created_at DESC")).Find(&reviews).Error
	return reviews, err
}

func (r *securityReviewRepository) FindByContainerID(containerID uint, opts shared.ListOptions) ([]models.SecurityReview, error) {
	var reviews []models.SecurityReview
	q := r.db.Where("container_id = ?", containerID).Order("created_at DESC")

	err := opts.ApplyOnDB(q).Find(&reviews).Error
	return reviews, err
}
