package repositories

import (
	"github.com/graylake-dev/postureguard/database/models"
	"github.com/graylake-dev/postureguard/dtos"
	"github.com/graylake-dev/postureguard/shared"
	"gorm.io/gorm"
)

// hierarchyRankSQL orders epics before stories before tasks. Issues created
// before the hierarchy level existed rank last.
const hierarchyRankSQL = `CASE hierarchy_level WHEN 'Epic' THEN 3 WHEN 'Story' THEN 2 WHEN 'Task' THEN 1 ELSE 0 END DESC`

// securityIssueRepository embeds the concrete generic repository instead of
// the utils.Repository interface so the seeding CLI can reach
// SaveBatchBestEffort.
type securityIssueRepository struct {
	db *gorm.DB
	*GormRepository[uint, models.SecurityIssue]
}

func NewSecurityIssueRepository(db *gorm.DB) *securityIssueRepository {
	return &securityIssueRepository{
		db:             db,
		GormRepository: newGormRepository[uint, models.SecurityIssue](db),
	}
}

func (r *securityIssueRepository) FindByFilter(filter dtos.SecurityIssueFilter, opts shared.ListOptions, sort []shared.SortQuery) ([]models.SecurityIssue, error) {
	var issues []models.SecurityIssue
	q := r.db.Model(&models.SecurityIssue{})

	if filter.ContainerID != nil {
		q = q.Where("container_id = ?", *filter.ContainerID)
	}
	if filter.Severity != nil {
		q = q.Where("severity = ?", *filter.Severity)
	}
	if filter.Status != nil {
		q = q.Where("status = ?", *filter.Status)
	}
	if filter.Classification != nil {
		q = q.Where("classification = ?", *filter.Classification)
	}
	if filter.AssignedToID != nil {
		q = q.Where("assigned_to_id = ?", *filter.AssignedToID)
	}
	if filter.IsAutomatedFinding != nil {
		q = q.Where("is_automated_finding = ?", *filter.IsAutomatedFinding)
	}
	if filter.CreatedAfter != nil {
		q = q.Where("created_at >= ?", *filter.CreatedAfter)
	}
	if filter.CreatedBefore != nil {
		q = q.Where("created_at <= ?", *filter.CreatedBefore)
	}
	if filter.RiskScoreMin != nil {
		q = q.Where("risk_score >= ?", *filter.RiskScoreMin)
	}
	if filter.RiskScoreMax != nil {
		q = q.Where("risk_score <= ?", *filter.RiskScoreMax)
	}

	// apply sorting
	if len(sort) > 0 {
		for _, s := range sort {
			q = q.Order(s.SQL())
		}
	} else {
		q = q.Order("risk_score DESC, created_at DESC")
	}

	err := opts.ApplyOnDB(q).Find(&issues).Error
	return issues, err
}

func (r *securityIssueRepository) FindByContainerID(containerID uint, opts shared.ListOptions) ([]models.SecurityIssue, error) {
	var issues []models.SecurityIssue
	q := r.db.Model(&models.SecurityIssue{}).
		Where("container_id = ?", containerID).
		Order(hierarchyRankSQL).
		Order("created_at DESC")

	err := opts.ApplyOnDB(q).Find(&issues).Error
	return issues, err
}

func (r *securityIssueRepository) GetAllByContainerID(containerID uint) ([]models.SecurityIssue, error) {
	var issues []models.SecurityIssue
	err := r.db.Where("container_id = ?", containerID).Find(&issues).Error
	return issues, err
}

func (r *securityIssueRepository) CountOpenBySeverity(containerID uint) (dtos.SeverityDistribution, error) {
	var dist dtos.SeverityDistribution
	err := r.db.Raw(`SELECT COUNT(*) as total,
	COUNT(*) filter (where severity = 'Critical') as critical,
	COUNT(*) filter (where severity = 'High') as high,
	COUNT(*) filter (where severity = 'Medium') as medium,
	COUNT(*) filter (where severity = 'Low') as low
	FROM security_issues WHERE container_id = ? AND status IN ('Open', 'In-progress')`, containerID).Scan(&dist).Error
	return dist, err
}
