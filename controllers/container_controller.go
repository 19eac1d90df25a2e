package controllers

import (
	"fmt"

	"github.com/graylake-dev/postureguard/dtos"
	"github.com/graylake-dev/postureguard/shared"
	"github.com/graylake-dev/postureguard/transformer"
	"github.com/graylake-dev/postureguard/utils"
	"github.com/labstack/echo/v4"
)

type ContainerController struct {
	containerService        shared.ContainerService
	securityIssueRepository shared.SecurityIssueRepository
}

func NewContainerController(containerService shared.ContainerService, securityIssueRepository shared.SecurityIssueRepository) *ContainerController {
	return &ContainerController{
		containerService:        containerService,
		securityIssueRepository: securityIssueRepository,
	}
}

func (c *ContainerController) Create(ctx shared.Context) error {
	var req dtos.ContainerCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	container, err := c.containerService.Create(req)
	if err != nil {
		return err
	}

	return ctx.JSON(200, transformer.ContainerDTOFromModel(container))
}

func (c *ContainerController) List(ctx shared.Context) error {
	var filter dtos.ContainerFilter
	if err := ctx.Bind(&filter); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	if err := shared.V.Struct(filter); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	containers, err := c.containerService.List(filter, shared.GetListOptions(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(200, utils.Map(containers, transformer.ContainerDTOFromModel))
}

func (c *ContainerController) Read(ctx shared.Context) error {
	id, err := shared.GetParamID(ctx, "containerID")
	if err != nil {
		return err
	}

	container, err := c.containerService.Read(id)
	if err != nil {
		return err
	}

	return ctx.JSON(200, transformer.ContainerDTOFromModel(container))
}

// UpdateRiskScore triggers the severity weighted recompute over the open
// issues of the container and returns the updated row.
func (c *ContainerController) UpdateRiskScore(ctx shared.Context) error {
	id, err := shared.GetParamID(ctx, "containerID")
	if err != nil {
		return err
	}

	container, err := c.containerService.UpdateRiskScore(id)
	if err != nil {
		return err
	}

	return ctx.JSON(200, transformer.ContainerDTOFromModel(container))
}

// GetBadge serves the open issue count of a container as an SVG badge,
// grouped by severity.
func (c *ContainerController) GetBadge(ctx shared.Context) error {
	id, err := shared.GetParamID(ctx, "containerID")
	if err != nil {
		return err
	}

	if _, err := c.containerService.Read(id); err != nil {
		return err
	}

	distribution, err := c.securityIssueRepository.CountOpenBySeverity(id)
	if err != nil {
		return echo.NewHTTPError(500, "could not count open security issues").WithInternal(err)
	}

	svg := c.containerService.GetSeverityBadgeSVG(distribution)

	ctx.Response().Header().Set(echo.HeaderContentType, "image/svg+xml")
	ctx.Response().Header().Set(echo.HeaderCacheControl, "no-cache, no-store")

	return ctx.String(200, svg)
}
