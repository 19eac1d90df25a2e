package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/graylake-dev/postureguard/database/models"
	"github.com/graylake-dev/postureguard/dtos"
	"github.com/graylake-dev/postureguard/mocks"
	"github.com/graylake-dev/postureguard/shared"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSecurityIssueControllerCreate(t *testing.T) {
	t.Run("should serialize the risk score as a json number", func(t *testing.T) {
		securityIssueService := mocks.NewSecurityIssueService(t)
		securityIssueService.On("Create", mock.Anything).Return(models.SecurityIssue{
			Title:                 "Unpatched base image",
			Severity:              dtos.SeverityHigh,
			Status:                dtos.StatusOpen,
			Classification:        dtos.ClassificationVulnerability,
			ConfidentialityImpact: 80,
			IntegrityImpact:       70,
			AvailabilityImpact:    60,
			ComplianceRelevance:   10,
			ThirdPartyRisk:        5,
			RiskScore:             54.5,
			ContainerID:           1,
			CreatedByID:           7,
		}, nil)

		e := echo.New()
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/security-issues/", strings.NewReader(`{"title": "Unpatched base image", "severity": "High", "classification": "Vulnerability", "confidentialityImpact": 80, "integrityImpact": 70, "availabilityImpact": 60, "complianceRelevance": 10, "thirdPartyRisk": 5, "containerId": 1, "createdById": 7}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		ctx := e.NewContext(req, rec)

		h := NewSecurityIssueController(securityIssueService)

		err := h.Create(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 200, rec.Code)
		assert.Contains(t, rec.Body.String(), `"riskScore":54.5`)
	})

	t.Run("should fail validation for an impact outside the 0 to 100 range", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/security-issues/", strings.NewReader(`{"title": "Unpatched base image", "severity": "High", "classification": "Vulnerability", "confidentialityImpact": 120, "containerId": 1, "createdById": 7}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		ctx := e.NewContext(req, httptest.NewRecorder())

		h := NewSecurityIssueController(nil)

		err := h.Create(ctx)

		httpError := &echo.HTTPError{}
		assert.ErrorAs(t, err, &httpError)
		assert.Equal(t, 400, httpError.Code)
	})
}

func TestSecurityIssueControllerList(t *testing.T) {
	t.Run("should bind the risk score range and cap the limit", func(t *testing.T) {
		securityIssueService := mocks.NewSecurityIssueService(t)
		securityIssueService.On("List", mock.MatchedBy(func(filter dtos.SecurityIssueFilter) bool {
			return filter.RiskScoreMin != nil && *filter.RiskScoreMin == 50 &&
				filter.RiskScoreMax != nil && *filter.RiskScoreMax == 90
		}), shared.ListOptions{Limit: 100, Offset: 0}, mock.Anything).Return([]models.SecurityIssue{}, nil)

		e := echo.New()
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/security-issues/?riskScoreMin=50&riskScoreMax=90&limit=200", nil)
		ctx := e.NewContext(req, rec)

		h := NewSecurityIssueController(securityIssueService)

		err := h.List(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 200, rec.Code)
	})
}

func TestSecurityIssueControllerUpdate(t *testing.T) {
	t.Run("should only pass the fields present in the body", func(t *testing.T) {
		securityIssueService := mocks.NewSecurityIssueService(t)
		securityIssueService.On("Update", uint(12), mock.MatchedBy(func(patch dtos.SecurityIssuePatchRequest) bool {
			return patch.ConfidentialityImpact != nil && *patch.ConfidentialityImpact == 90 &&
				patch.IntegrityImpact == nil && patch.Status == nil
		})).Return(models.SecurityIssue{RiskScore: 41.5}, nil)

		e := echo.New()
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/security-issues/12/", strings.NewReader(`{"confidentialityImpact": 90, "complianceRelevance": 40}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		ctx := e.NewContext(req, rec)
		ctx.SetParamNames("issueID")
		ctx.SetParamValues("12")

		h := NewSecurityIssueController(securityIssueService)

		err := h.Update(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 200, rec.Code)
		assert.Contains(t, rec.Body.String(), `"riskScore":41.5`)
	})

	t.Run("should fail validation for an unknown status", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodPatch, "/security-issues/12/", strings.NewReader(`{"status": "Done"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		ctx := e.NewContext(req, httptest.NewRecorder())
		ctx.SetParamNames("issueID")
		ctx.SetParamValues("12")

		h := NewSecurityIssueController(nil)

		err := h.Update(ctx)

		httpError := &echo.HTTPError{}
		assert.ErrorAs(t, err, &httpError)
		assert.Equal(t, 400, httpError.Code)
	})
}
