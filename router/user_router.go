package router

import (
	"github.com/graylake-dev/postureguard/controllers"
	"github.com/labstack/echo/v4"
)

type UserRouter struct {
	*echo.Group
}

func NewUserRouter(
	apiV1Router APIV1Router,
	userController *controllers.UserController,
) UserRouter {
	userRouter := apiV1Router.Group.Group("/users")
	userRouter.POST("/", userController.Create)
	userRouter.GET("/", userController.List)

	return UserRouter{Group: userRouter}
}
