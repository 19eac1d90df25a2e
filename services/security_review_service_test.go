package services

import (
	"fmt"
	"testing"

	"github.com/graylake-dev/postureguard/database/models"
	"github.com/graylake-dev/postureguard/dtos"
	"github.com/graylake-dev/postureguard/mocks"
	"github.com/graylake-dev/postureguard/utils"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSecurityReviewCreate(t *testing.T) {
	t.Run("should assign a document id when document metadata is supplied", func(t *testing.T) {
		securityReviewRepository := mocks.NewSecurityReviewRepository(t)
		containerRepository := mocks.NewContainerRepository(t)
		userRepository := mocks.NewUserRepository(t)

		userRepository.On("Read", uint(7)).Return(models.User{}, nil)
		securityReviewRepository.On("Create", mock.Anything, mock.Anything).Return(nil)

		s := NewSecurityReviewService(securityReviewRepository, containerRepository, userRepository)

		review, err := s.Create(dtos.SecurityReviewCreateRequest{
			Title:        "Q3 design review",
			DocumentName: utils.Ptr("Threat Model Q3.pdf"),
			DocumentType: utils.Ptr("application/pdf"),
			CreatedByID:  7,
		})

		assert.NoError(t, err)
		assert.NotNil(t, review.DocumentID)
		assert.Equal(t, dtos.ReviewStatusPending, review.Status)
	})

	t.Run("should leave the document id empty without document metadata", func(t *testing.T) {
		securityReviewRepository := mocks.NewSecurityReviewRepository(t)
		containerRepository := mocks.NewContainerRepository(t)
		userRepository := mocks.NewUserRepository(t)

		userRepository.On("Read", uint(7)).Return(models.User{}, nil)
		securityReviewRepository.On("Create", mock.Anything, mock.Anything).Return(nil)

		s := NewSecurityReviewService(securityReviewRepository, containerRepository, userRepository)

		review, err := s.Create(dtos.SecurityReviewCreateRequest{
			Title:       "Q3 design review",
			CreatedByID: 7,
		})

		assert.NoError(t, err)
		assert.Nil(t, review.DocumentID)
	})

	t.Run("should fail with a not found error naming the reviewer id", func(t *testing.T) {
		securityReviewRepository := mocks.NewSecurityReviewRepository(t)
		containerRepository := mocks.NewContainerRepository(t)
		userRepository := mocks.NewUserRepository(t)

		userRepository.On("Read", uint(7)).Return(models.User{}, nil)
		userRepository.On("Read", uint(999999)).Return(models.User{}, fmt.Errorf("record not found"))

		s := NewSecurityReviewService(securityReviewRepository, containerRepository, userRepository)

		_, err := s.Create(dtos.SecurityReviewCreateRequest{
			Title:       "Q3 design review",
			ReviewerID:  utils.Ptr(uint(999999)),
			CreatedByID: 7,
		})

		httpError := &echo.HTTPError{}
		assert.ErrorAs(t, err, &httpError)
		assert.Equal(t, 404, httpError.Code)
		assert.Equal(t, "user 999999 not found", httpError.Message)
	})
}

func TestRunDocumentAnalysis(t *testing.T) {
	t.Run("should complete a pending review with an attached document", func(t *testing.T) {
		securityReviewRepository := mocks.NewSecurityReviewRepository(t)
		containerRepository := mocks.NewContainerRepository(t)
		userRepository := mocks.NewUserRepository(t)

		stored := models.SecurityReview{
			Title:        "Q3 design review",
			Status:       dtos.ReviewStatusPending,
			DocumentName: utils.Ptr("Threat Model Q3.pdf"),
		}
		securityReviewRepository.On("Read", uint(5)).Return(stored, nil)
		securityReviewRepository.On("Save", mock.Anything, mock.Anything).Return(nil)

		s := NewSecurityReviewService(securityReviewRepository, containerRepository, userRepository)

		review, err := s.RunDocumentAnalysis(5)

		assert.NoError(t, err)
		assert.Equal(t, dtos.ReviewStatusCompleted, review.Status)
		assert.True(t, review.AIAnalysisComplete)
		assert.Equal(t, "Threat Model", review.AIAnalysis["documentClassification"])
	})

	t.Run("should refuse to rerun a completed review", func(t *testing.T) {
		securityReviewRepository := mocks.NewSecurityReviewRepository(t)
		containerRepository := mocks.NewContainerRepository(t)
		userRepository := mocks.NewUserRepository(t)

		stored := models.SecurityReview{
			Title:        "Q3 design review",
			Status:       dtos.ReviewStatusCompleted,
			DocumentName: utils.Ptr("Threat Model Q3.pdf"),
		}
		securityReviewRepository.On("Read", uint(5)).Return(stored, nil)

		s := NewSecurityReviewService(securityReviewRepository, containerRepository, userRepository)

		_, err := s.RunDocumentAnalysis(5)

		httpError := &echo.HTTPError{}
		assert.ErrorAs(t, err, &httpError)
		assert.Equal(t, 409, httpError.Code)
		assert.Equal(t, "security review 5 is already Completed", httpError.Message)
	})

	t.Run("should refuse a review without a document", func(t *testing.T) {
		securityReviewRepository := mocks.NewSecurityReviewRepository(t)
		containerRepository := mocks.NewContainerRepository(t)
		userRepository := mocks.NewUserRepository(t)

		stored := models.SecurityReview{
			Title:  "Q3 design review",
			Status: dtos.ReviewStatusPending,
		}
		securityReviewRepository.On("Read", uint(5)).Return(stored, nil)

		s := NewSecurityReviewService(securityReviewRepository, containerRepository, userRepository)

		_, err := s.RunDocumentAnalysis(5)

		httpError := &echo.HTTPError{}
		assert.ErrorAs(t, err, &httpError)
		assert.Equal(t, 400, httpError.Code)
		assert.Equal(t, "security review 5 has no document attached", httpError.Message)
	})

	t.Run("should fail with a not found error for an unknown review", func(t *testing.T) {
		securityReviewRepository := mocks.NewSecurityReviewRepository(t)
		containerRepository := mocks.NewContainerRepository(t)
		userRepository := mocks.NewUserRepository(t)

		securityReviewRepository.On("Read", uint(999999)).Return(models.SecurityReview{}, fmt.Errorf("record not found"))

		s := NewSecurityReviewService(securityReviewRepository, containerRepository, userRepository)

		_, err := s.RunDocumentAnalysis(999999)

		httpError := &echo.HTTPError{}
		assert.ErrorAs(t, err, &httpError)
		assert.Equal(t, 404, httpError.Code)
		assert.Equal(t, "security review 999999 not found", httpError.Message)
	})
}

func TestClassifyDocument(t *testing.T) {
	t.Run("should classify threat and architecture documents as threat models", func(t *testing.T) {
		result := ClassifyDocument("Threat Model Q3.pdf", "application/pdf")
		assert.Equal(t, "Threat Model", result.DocumentClassification)
		assert.Equal(t, 0.92, result.ConfidenceScore)
		assert.NotEmpty(t, result.RiskIndicators)

		result = ClassifyDocument("system-ARCHITECTURE-overview.png", "image/png")
		assert.Equal(t, "Threat Model", result.DocumentClassification)

		result = ClassifyDocument("diagram.vsdx", "architecture diagram")
		assert.Equal(t, "Threat Model", result.DocumentClassification)
	})

	t.Run("should classify everything else as a security policy", func(t *testing.T) {
		result := ClassifyDocument("Acceptable Use Policy.docx", "application/msword")
		assert.Equal(t, "Security Policy", result.DocumentClassification)
		assert.Equal(t, 0.85, result.ConfidenceScore)
		assert.NotEmpty(t, result.RecommendedControls)

		result = ClassifyDocument("", "")
		assert.Equal(t, "Security Policy", result.DocumentClassification)
	})
}
