package router

import (
	"github.com/graylake-dev/postureguard/controllers"
	"github.com/labstack/echo/v4"
)

type SecurityViolationRouter struct {
	*echo.Group
}

func NewSecurityViolationRouter(
	apiV1Router APIV1Router,
	securityViolationController *controllers.SecurityViolationController,
) SecurityViolationRouter {
	violationRouter := apiV1Router.Group.Group("/security-violations")
	violationRouter.POST("/", securityViolationController.Create)
	violationRouter.GET("/", securityViolationController.List)
	violationRouter.GET("/active/", securityViolationController.ListActive)
	violationRouter.GET("/details/", securityViolationController.ListWithDetails)

	return SecurityViolationRouter{Group: violationRouter}
}
