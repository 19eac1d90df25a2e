package router

import (
	"github.com/graylake-dev/postureguard/controllers"
	"github.com/labstack/echo/v4"
)

type ArchitectureComponentRouter struct {
	*echo.Group
}

func NewArchitectureComponentRouter(
	apiV1Router APIV1Router,
	containerRouter ContainerRouter,
	architectureComponentController *controllers.ArchitectureComponentController,
) ArchitectureComponentRouter {
	componentRouter := apiV1Router.Group.Group("/architecture-components")
	componentRouter.POST("/", architectureComponentController.Create)
	componentRouter.GET("/", architectureComponentController.List)

	// components listed in the context of a single container
	containerRouter.Group.GET("/architecture-components/", architectureComponentController.ListByContainer)

	return ArchitectureComponentRouter{Group: componentRouter}
}
