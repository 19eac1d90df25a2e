package repositories

import (
	"gorm.io/gorm"

	"github.com/graylake-dev/postureguard/dtos"
)

type statisticsRepository struct {
	db *gorm.DB
}

func NewStatisticsRepository(db *gorm.DB) *statisticsRepository {
	return &statisticsRepository{
		db: db,
	}
}

func (r *statisticsRepository) IssueSeverityDistribution() (dtos.SeverityDistribution, error) {
	distribution := dtos.SeverityDistribution{}
	err := r.db.Raw(`
	SELECT
		COUNT(*) as total,
		COUNT(*) filter (where severity = 'Critical') as critical,
		COUNT(*) filter (where severity = 'High') as high,
		COUNT(*) filter (where severity = 'Medium') as medium,
		COUNT(*) filter (where severity = 'Low') as low
	FROM security_issues;`).Find(&distribution).Error
	if err != nil {
		return distribution, err
	}
	return distribution, nil
}

func (r *statisticsRepository) IssueStatusBuckets() (dtos.StatusBuckets, error) {
	buckets := dtos.StatusBuckets{}
	err := r.db.Raw(`
	SELECT
		COUNT(*) filter (where status IN ('Open', 'In-progress')) as open,
		COUNT(*) filter (where status IN ('Resolved', 'Closed')) as resolved
	FROM security_issues;`).Find(&buckets).Error
	return buckets, err
}

func (r *statisticsRepository) AverageIssueRiskScore() (float64, error) {
	var result struct {
		Avg float64 `gorm:"column:avg"`
	}

	err := r.db.Raw(`SELECT COALESCE(AVG(risk_score), 0) as avg FROM security_issues;`).Find(&result).Error
	if err != nil {
		return 0, err
	}
	return result.Avg, nil
}

// TopRiskContainers ranks active containers by the average risk score of their
// issues. Containers without issues do not show up.
func (r *statisticsRepository) TopRiskContainers(limit int) ([]dtos.ContainerRiskSummary, error) {
	containers := []dtos.ContainerRiskSummary{}
	err := r.db.Raw(`SELECT c.id, c.name, c.slug,
			 ROUND(AVG(i.risk_score), 2) as avg_risk_score,
			 COUNT(*) as issue_count
			 FROM security_issues i
			 JOIN containers c ON c.id = i.container_id
			 WHERE c.is_active = true
			 GROUP BY c.id, c.name, c.slug
			 ORDER BY avg_risk_score DESC LIMIT ?;`, limit).Find(&containers).Error
	return containers, err
}

func (r *statisticsRepository) ControlCoverage() (dtos.ControlCoverage, error) {
	coverage := dtos.ControlCoverage{}
	err := r.db.Raw(`
	SELECT
		COUNT(*) filter (where implementation_status = 'Existing') as existing,
		COUNT(*) filter (where implementation_status = 'Planned') as planned,
		COUNT(*) filter (where implementation_status = 'NotSpecified') as not_specified
	FROM security_controls WHERE is_active = true;`).Find(&coverage).Error
	return coverage, err
}

func (r *statisticsRepository) ContainerSeverityCounts(containerID uint) (map[string]int, error) {
	var rows []struct {
		Severity string `gorm:"column:severity"`
		Count    int    `gorm:"column:count"`
	}

	err := r.db.Raw(`SELECT severity, COUNT(*) as count
			 FROM security_issues
			 WHERE container_id = ?
			 GROUP BY severity;`, containerID).Find(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Severity] = row.Count
	}
	return counts, nil
}

func (r *statisticsRepository) ContainerRiskTimeline(containerID uint) ([]dtos.RiskTimelinePoint, error) {
	timeline := []dtos.RiskTimelinePoint{}
	err := r.db.Raw(`SELECT to_char(created_at, 'YYYY-MM-DD') as day,
			 ROUND(AVG(risk_score), 2) as avg_risk_score,
			 COUNT(*) as issue_count
			 FROM security_issues
			 WHERE container_id = ?
			 GROUP BY day
			 ORDER BY day ASC;`, containerID).Find(&timeline).Error
	return timeline, err
}

func (r *statisticsRepository) ContainerTopIssues(containerID uint, limit int) ([]dtos.IssueRiskSummary, error) {
	issues := []dtos.IssueRiskSummary{}
	err := r.db.Raw(`SELECT id, title, risk_score
			 FROM security_issues
			 WHERE container_id = ?
			 ORDER BY risk_score DESC, created_at DESC LIMIT ?;`, containerID, limit).Find(&issues).Error
	return issues, err
}
