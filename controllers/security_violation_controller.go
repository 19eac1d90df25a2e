package controllers

import (
	"fmt"

	"github.com/graylake-dev/postureguard/dtos"
	"github.com/graylake-dev/postureguard/shared"
	"github.com/graylake-dev/postureguard/transformer"
	"github.com/graylake-dev/postureguard/utils"
	"github.com/labstack/echo/v4"
)

type SecurityViolationController struct {
	securityViolationService shared.SecurityViolationService
}

func NewSecurityViolationController(securityViolationService shared.SecurityViolationService) *SecurityViolationController {
	return &SecurityViolationController{securityViolationService: securityViolationService}
}

func (c *SecurityViolationController) Create(ctx shared.Context) error {
	var req dtos.SecurityViolationCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	violation, err := c.securityViolationService.Create(req)
	if err != nil {
		return err
	}

	return ctx.JSON(200, transformer.SecurityViolationDTOFromModel(violation))
}

func (c *SecurityViolationController) List(ctx shared.Context) error {
	var filter dtos.SecurityViolationFilter
	if err := ctx.Bind(&filter); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	if err := shared.V.Struct(filter); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	violations, err := c.securityViolationService.List(filter, shared.GetListOptions(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(200, utils.Map(violations, transformer.SecurityViolationDTOFromModel))
}

// ListActive returns violations that are still open or being worked on.
func (c *SecurityViolationController) ListActive(ctx shared.Context) error {
	violations, err := c.securityViolationService.ListActive(shared.GetListOptions(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(200, utils.Map(violations, transformer.SecurityViolationDTOFromModel))
}

// ListWithDetails returns violations joined with the names of their
// container, assignee, creator and related issue.
func (c *SecurityViolationController) ListWithDetails(ctx shared.Context) error {
	var filter dtos.SecurityViolationFilter
	if err := ctx.Bind(&filter); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	if err := shared.V.Struct(filter); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	details, err := c.securityViolationService.ListWithDetails(filter, shared.GetListOptions(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(200, details)
}
