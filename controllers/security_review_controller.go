package controllers

import (
	"fmt"

	"github.com/graylake-dev/postureguard/dtos"
	"github.com/graylake-dev/postureguard/shared"
	"github.com/graylake-dev/postureguard/transformer"
	"github.com/graylake-dev/postureguard/utils"
	"github.com/labstack/echo/v4"
)

type SecurityReviewController struct {
	securityReviewService shared.SecurityReviewService
}

func NewSecurityReviewController(securityReviewService shared.SecurityReviewService) *SecurityReviewController {
	return &SecurityReviewController{securityReviewService: securityReviewService}
}

func (c *SecurityReviewController) Create(ctx shared.Context) error {
	var req dtos.SecurityReviewCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	review, err := c.securityReviewService.Create(req)
	if err != nil {
		return err
	}

	return ctx.JSON(200, transformer.SecurityReviewDTOFromModel(review))
}

func (c *SecurityReviewController) Read(ctx shared.Context) error {
	id, err := shared.GetParamID(ctx, "reviewID")
	if err != nil {
		return err
	}

	review, err := c.securityReviewService.Read(id)
	if err != nil {
		return err
	}

	return ctx.JSON(200, transformer.SecurityReviewDTOFromModel(review))
}

func (c *SecurityReviewController) List(ctx shared.Context) error {
	var filter dtos.ReviewFilter
	if err := ctx.Bind(&filter); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	if err := shared.V.Struct(filter); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	reviews, err := c.securityReviewService.List(filter, shared.GetListOptions(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(200, utils.Map(reviews, transformer.SecurityReviewDTOFromModel))
}

func (c *SecurityReviewController) ListByContainer(ctx shared.Context) error {
	containerID, err := shared.GetParamID(ctx, "containerID")
	if err != nil {
		return err
	}

	reviews, err := c.securityReviewService.ListByContainer(containerID, shared.GetListOptions(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(200, utils.Map(reviews, transformer.SecurityReviewDTOFromModel))
}

// ProcessDocumentAnalysis runs the canned document classification on a
// pending review and returns the completed row.
func (c *SecurityReviewController) ProcessDocumentAnalysis(ctx shared.Context) error {
	id, err := shared.GetParamID(ctx, "reviewID")
	if err != nil {
		return err
	}

	review, err := c.securityReviewService.RunDocumentAnalysis(id)
	if err != nil {
		return err
	}

	return ctx.JSON(200, transformer.SecurityReviewDTOFromModel(review))
}
