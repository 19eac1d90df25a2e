package controllers

import (
	"github.com/graylake-dev/postureguard/shared"
)

type StatisticsController struct {
	statisticsService shared.StatisticsService
}

func NewStatisticsController(statisticsService shared.StatisticsService) *StatisticsController {
	return &StatisticsController{statisticsService: statisticsService}
}

func (c *StatisticsController) GetDashboardAnalytics(ctx shared.Context) error {
	analytics, err := c.statisticsService.GetDashboardAnalytics()
	if err != nil {
		return err
	}

	return ctx.JSON(200, analytics)
}

func (c *StatisticsController) GetContainerRiskAnalytics(ctx shared.Context) error {
	containerID, err := shared.GetParamID(ctx, "containerID")
	if err != nil {
		return err
	}

	analytics, err := c.statisticsService.GetContainerRiskAnalytics(containerID)
	if err != nil {
		return err
	}

	return ctx.JSON(200, analytics)
}
