package commands

import (
	"log/slog"
	"time"

	"github.com/graylake-dev/postureguard/database"
	"github.com/graylake-dev/postureguard/database/models"
	"github.com/graylake-dev/postureguard/database/repositories"
	"github.com/graylake-dev/postureguard/monitoring"
	"github.com/graylake-dev/postureguard/services"
	"github.com/graylake-dev/postureguard/shared"
	"github.com/graylake-dev/postureguard/utils"
	"github.com/spf13/cobra"
)

func NewRiskCommand() *cobra.Command {
	riskCmd := cobra.Command{
		Use:   "risk",
		Short: "Risk score maintenance",
	}

	riskCmd.AddCommand(newRecalculateCmd())
	return &riskCmd
}

func newRecalculateCmd() *cobra.Command {
	recalculateCmd := cobra.Command{
		Use:   "recalculate",
		Short: "Will recalculate the risk scores of all active containers from their open issues",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			shared.LoadConfig() // nolint: errcheck
			db := database.NewGormDB(database.NewPgxConnPool(database.GetPoolConfigFromEnv()))

			containerRepository := repositories.NewContainerRepository(db)
			securityIssueRepository := repositories.NewSecurityIssueRepository(db)
			userRepository := repositories.NewUserRepository(db)
			containerService := services.NewContainerService(containerRepository, securityIssueRepository, userRepository)

			containers, err := containerRepository.All()
			if err != nil {
				slog.Error("could not fetch containers", "err", err)
				return
			}
			activeContainers := utils.Filter(containers, func(container models.Container) bool {
				return container.IsActive
			})

			start := time.Now()
			for _, container := range activeContainers {
				if _, err := containerService.UpdateRiskScore(container.ID); err != nil {
					slog.Error("could not recalculate container risk score", "containerID", container.ID, "err", err)
					return
				}
			}
			monitoring.RiskRecalculationDuration.Observe(time.Since(start).Seconds())

			slog.Info("risk scores recalculated", "containers", len(activeContainers), "duration", time.Since(start))
		},
	}

	return &recalculateCmd
}
