package repositories

import (
	"time"

	"github.com/graylake-dev/postureguard/database/models"
	"github.com/graylake-dev/postureguard/dtos"
	"github.com/graylake-dev/postureguard/shared"
	"github.com/graylake-dev/postureguard/utils"
	"gorm.io/gorm"
)

// severityRankSQL sorts Critical before High before Medium before Low.
// Alphabetical ordering on the text column would put High first.
const severityRankSQL = `CASE security_violations.severity WHEN 'Critical' THEN 4 WHEN 'High' THEN 3 WHEN 'Medium' THEN 2 WHEN 'Low' THEN 1 ELSE 0 END DESC`

type securityViolationRepository struct {
	db *gorm.DB
	utils.Repository[uint, models.SecurityViolation, *gorm.DB]
}

func NewSecurityViolationRepository(db *gorm.DB) *securityViolationRepository {
	return &securityViolationRepository{
		db:         db,
		Repository: newGormRepository[uint, models.SecurityViolation](db),
	}
}

func applyViolationFilter(q *gorm.DB, filter dtos.SecurityViolationFilter) *gorm.DB {
	if filter.ViolationType != nil {
		q = q.Where("security_violations.violation_type = ?", *filter.ViolationType)
	}
	if filter.Severity != nil {
		q = q.Where("security_violations.severity = ?", *filter.Severity)
	}
	if filter.Status != nil {
		q = q.Where("security_violations.status = ?", *filter.Status)
	}
	if filter.AssignedToID != nil {
		q = q.Where("security_violations.assigned_to_id = ?", *filter.AssignedToID)
	}
	if filter.ContainerID != nil {
		q = q.Where("security_violations.container_id = ?", *filter.ContainerID)
	}
	if filter.CreatedAfter != nil {
		q = q.Where("security_violations.created_at >= ?", *filter.CreatedAfter)
	}
	if filter.CreatedBefore != nil {
		q = q.Where("security_violations.created_at <= ?", *filter.CreatedBefore)
	}
	if filter.IncidentAfter != nil {
		q = q.Where("security_violations.incident_date >= ?", *filter.IncidentAfter)
	}
	if filter.IncidentBefore != nil {
		q = q.Where("security_violations.incident_date <= ?", *filter.IncidentBefore)
	}

	return q
}

func (r *securityViolationRepository) FindByFilter(filter dtos.SecurityViolationFilter, opts shared.ListOptions) ([]models.SecurityViolation, error) {
	var violations []models.SecurityViolation
	q := applyViolationFilter(r.db.Model(&models.SecurityViolation{}), filter).
		Order(severityRankSQL).
		Order("incident_date DESC")

	err := opts.ApplyOnDB(q).Find(&violations).Error
	return violations, err
}

func (r *securityViolationRepository) FindActive(opts shared.ListOptions) ([]models.SecurityViolation, error) {
	var violations []models.SecurityViolation
	q := r.db.Model(&models.SecurityViolation{}).
		Where("status IN ?", []dtos.Status{dtos.StatusOpen, dtos.StatusInProgress}).
		Order(severityRankSQL).
		Order("incident_date DESC")

	err := opts.ApplyOnDB(q).Find(&violations).Error
	return violations, err
}

// FindWithDetails resolves the container, assignee, creator and related issue
// names in a single query instead of four preloads.
func (r *securityViolationRepository) FindWithDetails(filter dtos.SecurityViolationFilter, opts shared.ListOptions) ([]dtos.SecurityViolationDetailDTO, error) {
	var details []dtos.SecurityViolationDetailDTO
	q := r.db.Model(&models.SecurityViolation{}).
		Select(`security_violations.*,
		containers.name as container_name,
		containers.slug as container_slug,
		assignee.full_name as assigned_to_name,
		creator.full_name as created_by_name,
		security_issues.title as related_issue_name`).
		Joins("LEFT JOIN containers ON containers.id = security_violations.container_id").
		Joins("LEFT JOIN users assignee ON assignee.id = security_violations.assigned_to_id").
		Joins("LEFT JOIN users creator ON creator.id = security_violations.created_by_id").
		Joins("LEFT JOIN security_issues ON security_issues.id = security_violations.related_issue_id")

	q = applyViolationFilter(q, filter).
		Order(severityRankSQL).
		Order("security_violations.incident_date DESC")

	err := opts.ApplyOnDB(q).Scan(&details).Error
	return details, err
}

func (r *securityViolationRepository) FindSince(incidentDate time.Time, limit int) ([]models.SecurityViolation, error) {
	var violations []models.SecurityViolation
	err := r.db.Where("incident_date >= ?", incidentDate).
		Order("incident_date DESC").
		Limit(limit).
		Find(&violations).Error
	return violations, err
}
