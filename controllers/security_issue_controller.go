package controllers

import (
	"fmt"

	"github.com/graylake-dev/postureguard/dtos"
	"github.com/graylake-dev/postureguard/shared"
	"github.com/graylake-dev/postureguard/transformer"
	"github.com/graylake-dev/postureguard/utils"
	"github.com/labstack/echo/v4"
)

type SecurityIssueController struct {
	securityIssueService shared.SecurityIssueService
}

func NewSecurityIssueController(securityIssueService shared.SecurityIssueService) *SecurityIssueController {
	return &SecurityIssueController{securityIssueService: securityIssueService}
}

func (c *SecurityIssueController) Create(ctx shared.Context) error {
	var req dtos.SecurityIssueCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	issue, err := c.securityIssueService.Create(req)
	if err != nil {
		return err
	}

	return ctx.JSON(200, transformer.SecurityIssueDTOFromModel(issue))
}

func (c *SecurityIssueController) Update(ctx shared.Context) error {
	id, err := shared.GetParamID(ctx, "issueID")
	if err != nil {
		return err
	}

	var patch dtos.SecurityIssuePatchRequest
	if err := ctx.Bind(&patch); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	if err := shared.V.Struct(patch); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	issue, err := c.securityIssueService.Update(id, patch)
	if err != nil {
		return err
	}

	return ctx.JSON(200, transformer.SecurityIssueDTOFromModel(issue))
}

func (c *SecurityIssueController) List(ctx shared.Context) error {
	var filter dtos.SecurityIssueFilter
	if err := ctx.Bind(&filter); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	if err := shared.V.Struct(filter); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	issues, err := c.securityIssueService.List(filter, shared.GetListOptions(ctx), shared.GetSortQuery(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(200, utils.Map(issues, transformer.SecurityIssueDTOFromModel))
}

func (c *SecurityIssueController) ListByContainer(ctx shared.Context) error {
	containerID, err := shared.GetParamID(ctx, "containerID")
	if err != nil {
		return err
	}

	issues, err := c.securityIssueService.ListByContainer(containerID, shared.GetListOptions(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(200, utils.Map(issues, transformer.SecurityIssueDTOFromModel))
}
