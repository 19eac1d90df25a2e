package controllers

import (
	"bytes"
	"encoding/json"
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
)

func TestContainerControllerCreate(t *testing.T) {
	t.Run("should fail if the body is not json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/containers/", bytes.NewBufferString("fantasy"))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

		e := echo.New()
		ctx := e.NewContext(req, httptest.NewRecorder())

		h := NewContainerController(nil, nil)

		err := h.Create(ctx)
		if err == nil {
			t.Fail()
		}
	})

	t.Run("should fail validation for an unknown container type", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/containers/", strings.NewReader(`{"name": "Payment Gateway", "type": "Spaceship", "createdById": 7}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

		e := echo.New()
		ctx := e.NewContext(req, httptest.NewRecorder())

		h := NewContainerController(nil, nil)

		err := h.Create(ctx)

		httpError := &echo.HTTPError{}
		assert.ErrorAs(t, err, &httpError)
		assert.Equal(t, 400, httpError.Code)
	})

	t.Run("should return the created container as dto", func(t *testing.T) {
		containerService := mocks.NewContainerService(t)
		containerService.On("Create", dtos.ContainerCreateRequest{
			Name:        "Payment Gateway",
			Type:        dtos.ContainerTypeService,
			CreatedByID: 7,
		}).Return(models.Container{
			Name:        "Payment Gateway",
			Slug:        "payment-gateway",
			Type:        dtos.ContainerTypeService,
			IsActive:    true,
			CreatedByID: 7,
		}, nil)

		e := echo.New()
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/containers/", strings.NewReader(`{"name": "Payment Gateway", "type": "Service", "createdById": 7}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		ctx := e.NewContext(req, rec)

		h := NewContainerController(containerService, nil)

		err := h.Create(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 200, rec.Code)

		var response dtos.ContainerDTO
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, "payment-gateway", response.Slug)
		assert.True(t, response.IsActive)
	})
}

func TestContainerControllerGetBadge(t *testing.T) {
	t.Run("should serve the badge as svg with caching disabled", func(t *testing.T) {
		containerService := mocks.NewContainerService(t)
		securityIssueRepository := mocks.NewSecurityIssueRepository(t)

		distribution := dtos.SeverityDistribution{Total: 3, Critical: 2, High: 1}
		containerService.On("Read", uint(3)).Return(models.Container{Name: "Payment Gateway"}, nil)
		securityIssueRepository.On("CountOpenBySeverity", uint(3)).Return(distribution, nil)
		containerService.On("GetSeverityBadgeSVG", distribution).Return("<svg>C:2 H:1</svg>")

		e := echo.New()
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/containers/3/badge/", nil)
		ctx := e.NewContext(req, rec)
		ctx.SetParamNames("containerID")
		ctx.SetParamValues("3")

		h := NewContainerController(containerService, securityIssueRepository)

		err := h.GetBadge(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 200, rec.Code)
		assert.Equal(t, "image/svg+xml", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, "no-cache, no-store", rec.Header().Get(echo.HeaderCacheControl))
		assert.Contains(t, rec.Body.String(), "C:2")
	})

	t.Run("should fail for a non numeric container id", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/containers/fantasy/badge/", nil)
		ctx := e.NewContext(req, httptest.NewRecorder())
		ctx.SetParamNames("containerID")
		ctx.SetParamValues("fantasy")

		h := NewContainerController(nil, nil)

		err := h.GetBadge(ctx)

		httpError := &echo.HTTPError{}
		assert.ErrorAs(t, err, &httpError)
		assert.Equal(t, 400, httpError.Code)
	})
}

func TestContainerControllerList(t *testing.T) {
	t.Run("should cap the limit at 100", func(t *testing.T) {
		containerService := mocks.NewContainerService(t)
		containerService.On("List", dtos.ContainerFilter{}, shared.ListOptions{Limit: 100, Offset: 0}).Return([]models.Container{}, nil)

		e := echo.New()
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/containers/?limit=5000", nil)
		ctx := e.NewContext(req, rec)

		h := NewContainerController(containerService, nil)

		err := h.List(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 200, rec.Code)
	})
}
