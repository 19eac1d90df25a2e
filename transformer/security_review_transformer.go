package transformer

import (
	"github.com/graylake-dev/postureguard/database/models"
	"github.com/graylake-dev/postureguard/dtos"
	"github.com/graylake-dev/postureguard/utils"
)

func SecurityReviewCreateRequestToModel(c dtos.SecurityReviewCreateRequest) models.SecurityReview {
	return models.SecurityReview{
		Title:       c.Title,
		Description: c.Description,
		Status:      dtos.ReviewStatusPending,

		DocumentName: c.DocumentName,
		DocumentType: c.DocumentType,
		DocumentSize: c.DocumentSize,

		ContainerID: c.ContainerID,
		ReviewerID:  c.ReviewerID,
		CreatedByID: c.CreatedByID,
	}
}

func SecurityReviewDTOFromModel(review models.SecurityReview) dtos.SecurityReviewDTO {
	var documentID *string
	if review.DocumentID != nil {
		documentID = utils.Ptr(review.DocumentID.String())
	}

	return dtos.SecurityReviewDTO{
		ID:          review.ID,
		Title:       review.Title,
		Description: review.Description,
		Status:      review.Status,

		DocumentID:   documentID,
		DocumentName: review.DocumentName,
		DocumentType: review.DocumentType,
		DocumentSize: review.DocumentSize,

		AIAnalysis:         review.AIAnalysis,
		AIAnalysisComplete: review.AIAnalysisComplete,

		ContainerID: review.ContainerID,
		ReviewerID:  review.ReviewerID,
		CreatedByID: review.CreatedByID,

		CreatedAt: review.CreatedAt,
		UpdatedAt: review.UpdatedAt,
	}
}
