package controllers

import (
	"go.uber.org/fx"
)

// ControllerModule provides all HTTP controller constructors
var ControllerModule = fx.Options(
	fx.Provide(NewUserController),
	fx.Provide(NewContainerController),
	fx.Provide(NewSecurityIssueController),
	fx.Provide(NewSecurityReviewController),
	fx.Provide(NewSecurityViolationController),
	fx.Provide(NewSecurityControlController),
	fx.Provide(NewArchitectureComponentController),
	fx.Provide(NewStatisticsController),
)
