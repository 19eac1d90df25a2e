package repositories

import (
	"github.com/graylake-dev/postureguard/shared"
	"go.uber.org/fx"
)

// Module provides all repository constructors as their interfaces
var Module = fx.Options(
	fx.Provide(fx.Annotate(NewUserRepository, fx.As(new(shared.UserRepository)))),
	fx.Provide(fx.Annotate(NewContainerRepository, fx.As(new(shared.ContainerRepository)))),
	fx.Provide(fx.Annotate(NewSecurityIssueRepository, fx.As(new(shared.SecurityIssueRepository)))),
	fx.Provide(fx.Annotate(NewSecurityReviewRepository, fx.As(new(shared.SecurityReviewRepository)))),
	fx.Provide(fx.Annotate(NewSecurityViolationRepository, fx.As(new(shared.SecurityViolationRepository)))),
	fx.Provide(fx.Annotate(NewSecurityControlRepository, fx.As(new(shared.SecurityControlRepository)))),
	fx.Provide(fx.Annotate(NewArchitectureComponentRepository, fx.As(new(shared.ArchitectureComponentRepository)))),
	fx.Provide(fx.Annotate(NewStatisticsRepository, fx.As(new(shared.StatisticsRepository)))),
)
