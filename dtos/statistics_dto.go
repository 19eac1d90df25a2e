package dtos

// SeverityDistribution is scanned from a single-row rollup query using
// COUNT(*) filter clauses.
type SeverityDistribution struct {
	Total    int `json:"total"`
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
}

// StatusBuckets folds the four lifecycle states into two reporting buckets:
// open covers Open and In-progress, resolved covers Resolved and Closed.
type StatusBuckets struct {
	Open     int `json:"open"`
	Resolved int `json:"resolved"`
}

type ContainerRiskSummary struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Slug         string  `json:"slug"`
	AvgRiskScore float64 `json:"avgRiskScore"`
	IssueCount   int     `json:"issueCount"`
}

// ControlCoverage only counts active controls.
type ControlCoverage struct {
	Existing     int `json:"existing"`
	Planned      int `json:"planned"`
	NotSpecified int `json:"notSpecified"`
}

type DashboardAnalytics struct {
	TotalIssues          int                    `json:"totalIssues"`
	SeverityDistribution SeverityDistribution   `json:"severityDistribution"`
	StatusBuckets        StatusBuckets          `json:"statusBuckets"`
	AverageRiskScore     float64                `json:"averageRiskScore"`
	TopRiskContainers    []ContainerRiskSummary `json:"topRiskContainers"`
	RecentViolations     []SecurityViolationDTO `json:"recentViolations"`
	ControlCoverage      ControlCoverage        `json:"controlCoverage"`
}

type RiskTimelinePoint struct {
	Day          string  `json:"day"`
	AvgRiskScore float64 `json:"avgRiskScore"`
	IssueCount   int     `json:"issueCount"`
}

type IssueRiskSummary struct {
	ID        uint    `json:"id"`
	Title     string  `json:"title"`
	RiskScore float64 `json:"riskScore"`
}

type ContainerRiskAnalytics struct {
	ContainerID    uint                `json:"containerId"`
	RiskScore      float64             `json:"riskScore"`
	SeverityCounts map[string]int      `json:"severityCounts"`
	RiskTimeline   []RiskTimelinePoint `json:"riskTimeline"`
	TopIssues      []IssueRiskSummary  `json:"topIssues"`
}
