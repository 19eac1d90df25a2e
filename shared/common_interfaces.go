package shared

import (
	"time"

	"github.com/graylake-dev/postureguard/database/models"
	"github.com/graylake-dev/postureguard/dtos"
	"github.com/graylake-dev/postureguard/utils"
)

type UserRepository interface {
	utils.Repository[uint, models.User, DB]
	FindByFilter(filter dtos.UserFilter, opts ListOptions) ([]models.User, error)
}

type ContainerRepository interface {
	utils.Repository[uint, models.Container, DB]
	FindActive(filter dtos.ContainerFilter, opts ListOptions) ([]models.Container, error)
	FindBySlug(slug string) (models.Container, error)
}

type SecurityIssueRepository interface {
	utils.Repository[uint, models.SecurityIssue, DB]
	FindByFilter(filter dtos.SecurityIssueFilter, opts ListOptions, sort []SortQuery) ([]models.SecurityIssue, error)
	FindByContainerID(containerID uint, opts ListOptions) ([]models.SecurityIssue, error)
	// GetAllByContainerID returns every issue of the container without paging,
	// as the risk aggregation needs the complete set.
	GetAllByContainerID(containerID uint) ([]models.SecurityIssue, error)
	CountOpenBySeverity(containerID uint) (dtos.SeverityDistribution, error)
}

type SecurityReviewRepository interface {
	utils.Repository[uint, models.SecurityReview, DB]
	FindByFilter(filter dtos.ReviewFilter, opts ListOptions) ([]models.SecurityReview, error)
	FindByContainerID(containerID uint, opts ListOptions) ([]models.SecurityReview, error)
}

type SecurityViolationRepository interface {
	utils.Repository[uint, models.SecurityViolation, DB]
	FindByFilter(filter dtos.SecurityViolationFilter, opts ListOptions) ([]models.SecurityViolation, error)
	// FindActive returns violations in Open or In-progress status.
	FindActive(opts ListOptions) ([]models.SecurityViolation, error)
	FindWithDetails(filter dtos.SecurityViolationFilter, opts ListOptions) ([]dtos.SecurityViolationDetailDTO, error)
	FindSince(incidentDate time.Time, limit int) ([]models.SecurityViolation, error)
}

type SecurityControlRepository interface {
	utils.Repository[uint, models.SecurityControl, DB]
	FindByFilter(filter dtos.SecurityControlFilter, opts ListOptions) ([]models.SecurityControl, error)
	FindByContainerID(containerID uint, opts ListOptions) ([]models.SecurityControl, error)
}

type ArchitectureComponentRepository interface {
	utils.Repository[uint, models.ArchitectureComponent, DB]
	FindByFilter(filter dtos.ArchitectureComponentFilter, opts ListOptions) ([]models.ArchitectureComponent, error)
	FindByContainerID(containerID uint, opts ListOptions) ([]models.ArchitectureComponent, error)
}

type StatisticsRepository interface {
	IssueSeverityDistribution() (dtos.SeverityDistribution, error)
	IssueStatusBuckets() (dtos.StatusBuckets, error)
	AverageIssueRiskScore() (float64, error)
	TopRiskContainers(limit int) ([]dtos.ContainerRiskSummary, error)
	ControlCoverage() (dtos.ControlCoverage, error)

	ContainerSeverityCounts(containerID uint) (map[string]int, error)
	ContainerRiskTimeline(containerID uint) ([]dtos.RiskTimelinePoint, error)
	ContainerTopIssues(containerID uint, limit int) ([]dtos.IssueRiskSummary, error)
}

type UserService interface {
	Create(req dtos.UserCreateRequest) (models.User, error)
	List(filter dtos.UserFilter, opts ListOptions) ([]models.User, error)
}

type ContainerService interface {
	Create(req dtos.ContainerCreateRequest) (models.Container, error)
	List(filter dtos.ContainerFilter, opts ListOptions) ([]models.Container, error)
	Read(id uint) (models.Container, error)
	// UpdateRiskScore recomputes and persists the severity-weighted score over
	// the container's open issues.
	UpdateRiskScore(containerID uint) (models.Container, error)
	// RefreshRiskScore recomputes and persists the plain mean over all issues.
	// It runs as a side effect of issue writes.
	RefreshRiskScore(containerID uint) error
	GetSeverityBadgeSVG(distribution dtos.SeverityDistribution) string
}

type SecurityIssueService interface {
	Create(req dtos.SecurityIssueCreateRequest) (models.SecurityIssue, error)
	Update(id uint, patch dtos.SecurityIssuePatchRequest) (models.SecurityIssue, error)
	List(filter dtos.SecurityIssueFilter, opts ListOptions, sort []SortQuery) ([]models.SecurityIssue, error)
	ListByContainer(containerID uint, opts ListOptions) ([]models.SecurityIssue, error)
}

type SecurityReviewService interface {
	Create(req dtos.SecurityReviewCreateRequest) (models.SecurityReview, error)
	Read(id uint) (models.SecurityReview, error)
	List(filter dtos.ReviewFilter, opts ListOptions) ([]models.SecurityReview, error)
	ListByContainer(containerID uint, opts ListOptions) ([]models.SecurityReview, error)
	// RunDocumentAnalysis classifies the review document and persists the
	// result, completing the review.
	RunDocumentAnalysis(id uint) (models.SecurityReview, error)
}

type SecurityViolationService interface {
	Create(req dtos.SecurityViolationCreateRequest) (models.SecurityViolation, error)
	List(filter dtos.SecurityViolationFilter, opts ListOptions) ([]models.SecurityViolation, error)
	ListActive(opts ListOptions) ([]models.SecurityViolation, error)
	ListWithDetails(filter dtos.SecurityViolationFilter, opts ListOptions) ([]dtos.SecurityViolationDetailDTO, error)
}

type SecurityControlService interface {
	Create(req dtos.SecurityControlCreateRequest) (models.SecurityControl, error)
	List(filter dtos.SecurityControlFilter, opts ListOptions) ([]models.SecurityControl, error)
	ListByContainer(containerID uint, opts ListOptions) ([]models.SecurityControl, error)
}

type ArchitectureComponentService interface {
	Create(req dtos.ArchitectureComponentCreateRequest) (models.ArchitectureComponent, error)
	List(filter dtos.ArchitectureComponentFilter, opts ListOptions) ([]models.ArchitectureComponent, error)
	ListByContainer(containerID uint, opts ListOptions) ([]models.ArchitectureComponent, error)
}

type StatisticsService interface {
	GetDashboardAnalytics() (dtos.DashboardAnalytics, error)
	GetContainerRiskAnalytics(containerID uint) (dtos.ContainerRiskAnalytics, error)
}
