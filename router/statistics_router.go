package router

import (
	"github.com/graylake-dev/postureguard/controllers"
	"github.com/labstack/echo/v4"
)

type StatisticsRouter struct {
	*echo.Group
}

func NewStatisticsRouter(
	apiV1Router APIV1Router,
	containerRouter ContainerRouter,
	statisticsController *controllers.StatisticsController,
) StatisticsRouter {
	statisticsRouter := apiV1Router.Group.Group("/statistics")
	statisticsRouter.GET("/dashboard/", statisticsController.GetDashboardAnalytics)

	// per container risk analytics
	containerRouter.Group.GET("/risk-analytics/", statisticsController.GetContainerRiskAnalytics)

	return StatisticsRouter{Group: statisticsRouter}
}
