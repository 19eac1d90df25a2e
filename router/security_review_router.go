package router

import (
	"github.com/graylake-dev/postureguard/controllers"
	"github.com/labstack/echo/v4"
)

type SecurityReviewRouter struct {
	*echo.Group
}

func NewSecurityReviewRouter(
	apiV1Router APIV1Router,
	containerRouter ContainerRouter,
	securityReviewController *controllers.SecurityReviewController,
) SecurityReviewRouter {
	reviewRouter := apiV1Router.Group.Group("/security-reviews")
	reviewRouter.POST("/", securityReviewController.Create)
	reviewRouter.GET("/", securityReviewController.List)
	reviewRouter.GET("/:reviewID/", securityReviewController.Read)
	reviewRouter.POST("/:reviewID/document-analysis/", securityReviewController.ProcessDocumentAnalysis)

	// reviews listed in the context of a single container
	containerRouter.Group.GET("/security-reviews/", securityReviewController.ListByContainer)

	return SecurityReviewRouter{Group: reviewRouter}
}
