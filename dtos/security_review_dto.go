package dtos

import (
	"time"

	databasetypes "github.com/graylake-dev/postureguard/database/types"
)

type ReviewStatus string

const (
	ReviewStatusPending   ReviewStatus = "Pending"
	ReviewStatusInReview  ReviewStatus = "InReview"
	ReviewStatusCompleted ReviewStatus = "Completed"
	ReviewStatusRejected  ReviewStatus = "Rejected"
)

type SecurityReviewCreateRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`

	DocumentName *string `json:"documentName"`
	DocumentType *string `json:"documentType"`
	DocumentSize *int64  `json:"documentSize"`

	ContainerID *uint `json:"containerId"`
	ReviewerID  *uint `json:"reviewerId"`
	CreatedByID uint  `json:"createdById" validate:"required"`
}

type SecurityReviewDTO struct {
	ID          uint         `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Status      ReviewStatus `json:"status"`

	DocumentID   *string `json:"documentId"`
	DocumentName *string `json:"documentName"`
	DocumentType *string `json:"documentType"`
	DocumentSize *int64  `json:"documentSize"`

	AIAnalysis         databasetypes.JSONB `json:"aiAnalysis"`
	AIAnalysisComplete bool                `json:"aiAnalysisComplete"`

	ContainerID *uint `json:"containerId"`
	ReviewerID  *uint `json:"reviewerId"`
	CreatedByID uint  `json:"createdById"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ReviewFilter struct {
	Status      *ReviewStatus `query:"status" validate:"omitempty,oneof=Pending InReview Completed Rejected"`
	ContainerID *uint         `query:"containerId"`
	ReviewerID  *uint         `query:"reviewerId"`
}

// AIAnalysisResult is the canned document classification persisted on a
// review. Which variant is returned depends on the document name.
type AIAnalysisResult struct {
	DocumentClassification string   `json:"documentClassification"`
	RiskIndicators         []string `json:"riskIndicators"`
	ComplianceFrameworks   []string `json:"complianceFrameworks"`
	RecommendedControls    []string `json:"recommendedControls"`
	ConfidenceScore        float64  `json:"confidenceScore"`
	Summary                string   `json:"summary"`
}
