package router

import "go.uber.org/fx"

var RouterModule = fx.Options(
	fx.Provide(NewAPIV1Router),
	fx.Provide(NewUserRouter),
	fx.Provide(NewContainerRouter),
	fx.Provide(NewSecurityIssueRouter),
	fx.Provide(NewSecurityReviewRouter),
	fx.Provide(NewSecurityViolationRouter),
	fx.Provide(NewSecurityControlRouter),
	fx.Provide(NewArchitectureComponentRouter),
	fx.Provide(NewStatisticsRouter),
)
