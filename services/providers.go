package services

import (
	"github.com/graylake-dev/postureguard/shared"
	"go.uber.org/fx"
)

// Module provides all service-layer constructors as their interfaces
var Module = fx.Options(
	fx.Provide(fx.Annotate(NewUserService, fx.As(new(shared.UserService)))),
	fx.Provide(fx.Annotate(NewContainerService, fx.As(new(shared.ContainerService)))),
	fx.Provide(fx.Annotate(NewSecurityIssueService, fx.As(new(shared.SecurityIssueService)))),
	fx.Provide(fx.Annotate(NewSecurityReviewService, fx.As(new(shared.SecurityReviewService)))),
	fx.Provide(fx.Annotate(NewSecurityViolationService, fx.As(new(shared.SecurityViolationService)))),
	fx.Provide(fx.Annotate(NewSecurityControlService, fx.As(new(shared.SecurityControlService)))),
	fx.Provide(fx.Annotate(NewArchitectureComponentService, fx.As(new(shared.ArchitectureComponentService)))),
	fx.Provide(fx.Annotate(NewStatisticsService, fx.As(new(shared.StatisticsService)))),
)
