package controllers

import (
	"fmt"

	"github.com/graylake-dev/postureguard/dtos"
	"github.com/graylake-dev/postureguard/shared"
	"github.com/graylake-dev/postureguard/transformer"
	"github.com/graylake-dev/postureguard/utils"
	"github.com/labstack/echo/v4"
)

type UserController struct {
	userService shared.UserService
}

func NewUserController(userService shared.UserService) *UserController {
	return &UserController{userService: userService}
}

func (u *UserController) Create(ctx shared.Context) error {
	var req dtos.UserCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	user, err := u.userService.Create(req)
	if err != nil {
		return err
	}

	return ctx.JSON(200, transformer.UserDTOFromModel(user))
}

func (u *UserController) List(ctx shared.Context) error {
	var filter dtos.UserFilter
	if err := ctx.Bind(&filter); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	if err := shared.V.Struct(filter); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	users, err := u.userService.List(filter, shared.GetListOptions(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(200, utils.Map(users, transformer.UserDTOFromModel))
}
