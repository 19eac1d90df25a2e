package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/graylake-dev/postureguard/dtos"
	"github.com/graylake-dev/postureguard/mocks"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestStatisticsControllerGetDashboardAnalytics(t *testing.T) {
	t.Run("should return the dashboard as json", func(t *testing.T) {
		statisticsService := mocks.NewStatisticsService(t)
		statisticsService.On("GetDashboardAnalytics").Return(dtos.DashboardAnalytics{
			TotalIssues:      4,
			AverageRiskScore: 61.25,
			SeverityDistribution: dtos.SeverityDistribution{
				Total: 4, Critical: 1, High: 1, Medium: 1, Low: 1,
			},
		}, nil)

		e := echo.New()
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/statistics/dashboard/", nil)
		ctx := e.NewContext(req, rec)

		h := NewStatisticsController(statisticsService)

		err := h.GetDashboardAnalytics(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 200, rec.Code)

		var response dtos.DashboardAnalytics
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, 4, response.TotalIssues)
		assert.Equal(t, 61.25, response.AverageRiskScore)
	})
}

func TestStatisticsControllerGetContainerRiskAnalytics(t *testing.T) {
	t.Run("should return the analytics of the requested container", func(t *testing.T) {
		statisticsService := mocks.NewStatisticsService(t)
		statisticsService.On("GetContainerRiskAnalytics", uint(3)).Return(dtos.ContainerRiskAnalytics{
			ContainerID: 3,
			RiskScore:   50,
		}, nil)

		e := echo.New()
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/containers/3/risk-analytics/", nil)
		ctx := e.NewContext(req, rec)
		ctx.SetParamNames("containerID")
		ctx.SetParamValues("3")

		h := NewStatisticsController(statisticsService)

		err := h.GetContainerRiskAnalytics(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 200, rec.Code)

		var response dtos.ContainerRiskAnalytics
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, uint(3), response.ContainerID)
		assert.Equal(t, 50.0, response.RiskScore)
	})

	t.Run("should fail for a non numeric container id", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/containers/fantasy/risk-analytics/", nil)
		ctx := e.NewContext(req, httptest.NewRecorder())
		ctx.SetParamNames("containerID")
		ctx.SetParamValues("fantasy")

		h := NewStatisticsController(nil)

		err := h.GetContainerRiskAnalytics(ctx)

		httpError := &echo.HTTPError{}
		assert.ErrorAs(t, err, &httpError)
		assert.Equal(t, 400, httpError.Code)
	})
}
