package router

import (
	"github.com/graylake-dev/postureguard/controllers"
	"github.com/labstack/echo/v4"
)

type SecurityIssueRouter struct {
	*echo.Group
}

func NewSecurityIssueRouter(
	apiV1Router APIV1Router,
	containerRouter ContainerRouter,
	securityIssueController *controllers.SecurityIssueController,
) SecurityIssueRouter {
	issueRouter := apiV1Router.Group.Group("/security-issues")
	issueRouter.POST("/", securityIssueController.Create)
	issueRouter.GET("/", securityIssueController.List)
	issueRouter.PATCH("/:issueID/", securityIssueController.Update)

	// issues listed in the context of a single container
	containerRouter.Group.GET("/security-issues/", securityIssueController.ListByContainer)

	return SecurityIssueRouter{Group: issueRouter}
}
