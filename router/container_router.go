package router

import (
	"github.com/graylake-dev/postureguard/controllers"
	"github.com/labstack/echo/v4"
)

type ContainerRouter struct {
	*echo.Group
}

func NewContainerRouter(
	apiV1Router APIV1Router,
	containerController *controllers.ContainerController,
) ContainerRouter {
	/**
	Container router
	*/
	containersRouter := apiV1Router.Group.Group("/containers")
	containersRouter.GET("/", containerController.List)
	containersRouter.POST("/", containerController.Create)

	/**
	Container scoped router
	All routes below this line are scoped to a single container.
	*/
	containerRouter := containersRouter.Group("/:containerID")
	containerRouter.GET("/", containerController.Read)
	containerRouter.POST("/risk-score/", containerController.UpdateRiskScore)
	containerRouter.GET("/badge/", containerController.GetBadge)

	return ContainerRouter{Group: containerRouter}
}
