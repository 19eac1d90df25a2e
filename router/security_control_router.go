package router

import (
	"github.com/graylake-dev/postureguard/controllers"
	"github.com/labstack/echo/v4"
)

type SecurityControlRouter struct {
	*echo.Group
}

func NewSecurityControlRouter(
	apiV1Router APIV1Router,
	containerRouter ContainerRouter,
	securityControlController *controllers.SecurityControlController,
) SecurityControlRouter {
	controlRouter := apiV1Router.Group.Group("/security-controls")
	controlRouter.POST("/", securityControlController.Create)
	controlRouter.GET("/", securityControlController.List)

	// controls listed in the context of a single container
	containerRouter.Group.GET("/security-controls/", securityControlController.ListByContainer)

	return SecurityControlRouter{Group: controlRouter}
}
