package controllers

import (
	"fmt"

	"github.com/graylake-dev/postureguard/dtos"
	"github.com/graylake-dev/postureguard/shared"
	"github.com/graylake-dev/postureguard/transformer"
	"github.com/graylake-dev/postureguard/utils"
	"github.com/labstack/echo/v4"
)

type SecurityControlController struct {
	securityControlService shared.SecurityControlService
}

func NewSecurityControlController(securityControlService shared.SecurityControlService) *SecurityControlController {
	return &SecurityControlController{securityControlService: securityControlService}
}

func (c *SecurityControlController) Create(ctx shared.Context) error {
	var req dtos.SecurityControlCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	control, err := c.securityControlService.Create(req)
	if err != nil {
		return err
	}

	return ctx.JSON(200, transformer.SecurityControlDTOFromModel(control))
}

func (c *SecurityControlController) List(ctx shared.Context) error {
	var filter dtos.SecurityControlFilter
	if err := ctx.Bind(&filter); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	if err := shared.V.Struct(filter); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	controls, err := c.securityControlService.List(filter, shared.GetListOptions(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(200, utils.Map(controls, transformer.SecurityControlDTOFromModel))
}

func (c *SecurityControlController) ListByContainer(ctx shared.Context) error {
	containerID, err := shared.GetParamID(ctx, "containerID")
	if err != nil {
		return err
	}

	controls, err := c.securityControlService.ListByContainer(containerID, shared.GetListOptions(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(200, utils.Map(controls, transformer.SecurityControlDTOFromModel))
}
