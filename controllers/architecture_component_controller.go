package controllers

import (
	"fmt"

	"github.com/graylake-dev/postureguard/dtos"
	"github.com/graylake-dev/postureguard/shared"
	"github.com/graylake-dev/postureguard/transformer"
	"github.com/graylake-dev/postureguard/utils"
	"github.com/labstack/echo/v4"
)

type ArchitectureComponentController struct {
	architectureComponentService shared.ArchitectureComponentService
}

func NewArchitectureComponentController(architectureComponentService shared.ArchitectureComponentService) *ArchitectureComponentController {
	return &ArchitectureComponentController{architectureComponentService: architectureComponentService}
}

func (c *ArchitectureComponentController) Create(ctx shared.Context) error {
	var req dtos.ArchitectureComponentCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	component, err := c.architectureComponentService.Create(req)
	if err != nil {
		return err
	}

	return ctx.JSON(200, transformer.ArchitectureComponentDTOFromModel(component))
}

func (c *ArchitectureComponentController) List(ctx shared.Context) error {
	var filter dtos.ArchitectureComponentFilter
	if err := ctx.Bind(&filter); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	if err := shared.V.Struct(filter); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	components, err := c.architectureComponentService.List(filter, shared.GetListOptions(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(200, utils.Map(components, transformer.ArchitectureComponentDTOFromModel))
}

func (c *ArchitectureComponentController) ListByContainer(ctx shared.Context) error {
	containerID, err := shared.GetParamID(ctx, "containerID")
	if err != nil {
		return err
	}

	components, err := c.architectureComponentService.ListByContainer(containerID, shared.GetListOptions(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(200, utils.Map(components, transformer.ArchitectureComponentDTOFromModel))
}
