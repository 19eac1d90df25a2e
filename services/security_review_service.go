package services

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/graylake-dev/postureguard/database/models"
	databasetypes "github.com/graylake-dev/postureguard/database/types"
	"github.com/graylake-dev/postureguard/dtos"
	"github.com/graylake-dev/postureguard/monitoring"
	"github.com/graylake-dev/postureguard/shared"
	"github.com/graylake-dev/postureguard/transformer"
	"github.com/graylake-dev/postureguard/utils"
	"github.com/labstack/echo/v4"
)

type securityReviewService struct {
	securityReviewRepository shared.SecurityReviewRepository
	containerRepository      shared.ContainerRepository
	userRepository           shared.UserRepository
}

func NewSecurityReviewService(securityReviewRepository shared.SecurityReviewRepository, containerRepository shared.ContainerRepository, userRepository shared.UserRepository) *securityReviewService {
	return &securityReviewService{
		securityReviewRepository: securityReviewRepository,
		containerRepository:      containerRepository,
		userRepository:           userRepository,
	}
}

func (s *securityReviewService) Create(req dtos.SecurityReviewCreateRequest) (models.SecurityReview, error) {
	if req.ContainerID != nil {
		if _, err := s.containerRepository.Read(*req.ContainerID); err != nil {
			return models.SecurityReview{}, echo.NewHTTPError(404, fmt.Sprintf("container %d not found", *req.ContainerID)).WithInternal(err)
		}
	}

	if _, err := s.userRepository.Read(req.CreatedByID); err != nil {
		return models.SecurityReview{}, echo.NewHTTPError(404, fmt.Sprintf("user %d not found", req.CreatedByID)).WithInternal(err)
	}

	if req.ReviewerID != nil {
		if _, err := s.userRepository.Read(*req.ReviewerID); err != nil {
			return models.SecurityReview{}, echo.NewHTTPError(404, fmt.Sprintf("user %d not found", *req.ReviewerID)).WithInternal(err)
		}
	}

	review := transformer.SecurityReviewCreateRequestToModel(req)
	// a document id only exists once document metadata was uploaded alongside
	// the review
	if review.DocumentName != nil {
		review.DocumentID = utils.Ptr(uuid.New())
	}

	if err := s.securityReviewRepository.Create(nil, &review); err != nil {
		return models.SecurityReview{}, echo.NewHTTPError(500, "could not create security review").WithInternal(err)
	}

	return review, nil
}

func (s *securityReviewService) Read(id uint) (models.SecurityReview, error) {
	review, err := s.securityReviewRepository.Read(id)
	if err != nil {
		return models.SecurityReview{}, echo.NewHTTPError(404, fmt.Sprintf("security review %d not found", id)).WithInternal(err)
	}
	return review, nil
}

func (s *securityReviewService) List(filter dtos.ReviewFilter, opts shared.ListOptions) ([]models.SecurityReview, error) {
	reviews, err := s.securityReviewRepository.FindByFilter(filter, opts)
	if err != nil {
		return nil, echo.NewHTTPError(500, "could not list security reviews").WithInternal(err)
	}
	return reviews, nil
}

func (s *securityReviewService) ListByContainer(containerID uint, opts shared.ListOptions) ([]models.SecurityReview, error) {
	if _, err := s.containerRepository.Read(containerID); err != nil {
		return nil, echo.NewHTTPError(404, fmt.Sprintf("container %d not found", containerID)).WithInternal(err)
	}

	reviews, err := s.securityReviewRepository.FindByContainerID(containerID, opts)
	if err != nil {
		return nil, echo.NewHTTPError(500, "could not list security reviews").WithInternal(err)
	}
	return reviews, nil
}

func (s *securityReviewService) RunDocumentAnalysis(id uint) (models.SecurityReview, error) {
	review, err := s.securityReviewRepository.Read(id)
	if err != nil {
		return models.SecurityReview{}, echo.NewHTTPError(404, fmt.Sprintf("security review %d not found", id)).WithInternal(err)
	}

	if review.Status != dtos.ReviewStatusPending && review.Status != dtos.ReviewStatusInReview {
		return models.SecurityReview{}, echo.NewHTTPError(409, fmt.Sprintf("security review %d is already %s", id, review.Status))
	}

	if review.DocumentName == nil {
		return models.SecurityReview{}, echo.NewHTTPError(400, fmt.Sprintf("security review %d has no document attached", id))
	}

	monitoring.DocumentAnalysisAmount.Inc()

	result := ClassifyDocument(*review.DocumentName, utils.SafeDereference(review.DocumentType))

	analysis, err := databasetypes.JSONBFromStruct(result)
	if err != nil {
		monitoring.DocumentAnalysisFailedAmount.Inc()
		return models.SecurityReview{}, echo.NewHTTPError(500, "could not encode analysis result").WithInternal(err)
	}

	review.AIAnalysis = analysis
	review.AIAnalysisComplete = true
	review.Status = dtos.ReviewStatusCompleted

	if err := s.securityReviewRepository.Save(nil, &review); err != nil {
		monitoring.DocumentAnalysisFailedAmount.Inc()
		return models.SecurityReview{}, echo.NewHTTPError(500, "could not save analysis result").WithInternal(err)
	}

	slog.Info("document analysis completed", "reviewID", review.ID, "classification", result.DocumentClassification)

	return review, nil
}

// ClassifyDocument returns one of two canned analysis results based on the
// document name and type. There is no inference behind this, documents that
// look like threat models or architecture descriptions get the architecture
// variant, everything else is treated as a policy document.
func ClassifyDocument(documentName string, documentType string) dtos.AIAnalysisResult {
	haystack := documentName + " " + documentType

	if utils.ContainsInsensitive(haystack, "threat") || utils.ContainsInsensitive(haystack, "architecture") {
		return dtos.AIAnalysisResult{
			DocumentClassification: "Threat Model",
			RiskIndicators: []string{
				"unauthenticated ingress path",
				"shared database credentials",
				"missing network segmentation",
			},
			ComplianceFrameworks: []string{"ISO 27001", "NIST CSF"},
			RecommendedControls: []string{
				"enforce mutual TLS between internal services",
				"rotate shared credentials",
				"segment internal networks by trust zone",
			},
			ConfidenceScore: 0.92,
			Summary:         "The document describes system architecture and data flows. Several trust boundary crossings lack documented controls.",
		}
	}

	return dtos.AIAnalysisResult{
		DocumentClassification: "Security Policy",
		RiskIndicators: []string{
			"review cycle not defined",
			"no incident escalation path",
		},
		ComplianceFrameworks: []string{"ISO 27001"},
		RecommendedControls: []string{
			"define a yearly policy review cycle",
			"document the incident escalation path",
		},
		ConfidenceScore: 0.85,
		Summary:         "The document reads as an organizational security policy. Operational procedures are referenced but not included.",
	}
}
