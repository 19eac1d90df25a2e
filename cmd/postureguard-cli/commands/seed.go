package commands

import (
	"log/slog"

	"github.com/gosimple/slug"
	"github.com/graylake-dev/postureguard/database"
	"github.com/graylake-dev/postureguard/database/models"
	"github.com/graylake-dev/postureguard/database/repositories"
	"github.com/graylake-dev/postureguard/dtos"
	"github.com/graylake-dev/postureguard/risk"
	"github.com/graylake-dev/postureguard/services"
	"github.com/graylake-dev/postureguard/shared"
	"github.com/spf13/cobra"
	"gorm.io/gorm/clause"
)

func NewSeedCommand() *cobra.Command {
	seedCmd := cobra.Command{
		Use:   "seed",
		Short: "Seed a demo dataset",
		Long:  `Inserts a small set of users, containers and security issues. Safe to run repeatedly, existing rows are kept or updated in place.`,
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			shared.LoadConfig() // nolint: errcheck
			db := database.NewGormDB(database.NewPgxConnPool(database.GetPoolConfigFromEnv()))

			userRepository := repositories.NewUserRepository(db)
			containerRepository := repositories.NewContainerRepository(db)
			securityIssueRepository := repositories.NewSecurityIssueRepository(db)
			containerService := services.NewContainerService(containerRepository, securityIssueRepository, userRepository)

			users := []models.User{
				{Username: "ada", Email: "ada@example.com", FullName: "Ada Stern", Role: dtos.UserRoleSecurityManager, IsActive: true},
				{Username: "lin", Email: "lin@example.com", FullName: "Lin Okafor", Role: dtos.UserRoleSecurityAnalyst, IsActive: true},
			}
			// rows that already exist are left untouched
			if err := userRepository.CreateBatch(nil, users); err != nil {
				slog.Error("could not seed users", "err", err)
				return
			}

			var admin models.User
			if err := userRepository.GetDB(nil).Where("username = ?", "ada").First(&admin).Error; err != nil {
				slog.Error("could not read seeded user", "err", err)
				return
			}

			containerNames := map[string]dtos.ContainerType{
				"Payment Gateway": dtos.ContainerTypeService,
				"Customer Portal": dtos.ContainerTypeApplication,
				"Data Warehouse":  dtos.ContainerTypeSystem,
			}
			containers := make([]*models.Container, 0, len(containerNames))
			for name, containerType := range containerNames {
				containers = append(containers, &models.Container{
					Name:        name,
					Slug:        slug.Make(name),
					Type:        containerType,
					IsActive:    true,
					CreatedByID: admin.ID,
				})
			}
			if err := containerRepository.Upsert(&containers, []clause.Column{{Name: "slug"}}, []string{"name", "type", "is_active"}); err != nil {
				slog.Error("could not seed containers", "err", err)
				return
			}

			issues := make([]models.SecurityIssue, 0, len(containers)*2)
			for _, container := range containers {
				existing, err := securityIssueRepository.GetAllByContainerID(container.ID)
				if err != nil {
					slog.Error("could not check for existing security issues", "containerID", container.ID, "err", err)
					return
				}
				// issues carry no natural key, only seed them once per container
				if len(existing) > 0 {
					continue
				}

				issues = append(issues,
					models.SecurityIssue{
						Title:                 "Outdated TLS configuration on " + container.Name,
						Severity:              dtos.SeverityHigh,
						Status:                dtos.StatusOpen,
						Classification:        dtos.ClassificationMisconfiguration,
						HierarchyLevel:        dtos.HierarchyLevelTask,
						ConfidentialityImpact: 70,
						IntegrityImpact:       40,
						AvailabilityImpact:    20,
						ComplianceRelevance:   60,
						ThirdPartyRisk:        10,
						RiskScore:             risk.IssueScore(70, 40, 20, 60, 10),
						ContainerID:           container.ID,
						CreatedByID:           admin.ID,
					},
					models.SecurityIssue{
						Title:                 "Missing security review for " + container.Name,
						Severity:              dtos.SeverityMedium,
						Status:                dtos.StatusOpen,
						Classification:        dtos.ClassificationPolicyGap,
						HierarchyLevel:        dtos.HierarchyLevelStory,
						ConfidentialityImpact: 30,
						IntegrityImpact:       30,
						AvailabilityImpact:    10,
						ComplianceRelevance:   80,
						ThirdPartyRisk:        0,
						RiskScore:             risk.IssueScore(30, 30, 10, 80, 0),
						ContainerID:           container.ID,
						CreatedByID:           admin.ID,
					},
				)
			}
			// rows referencing a container that vanished in the meantime are dropped
			if err := securityIssueRepository.SaveBatchBestEffort(nil, issues); err != nil {
				slog.Error("could not seed security issues", "err", err)
				return
			}

			for _, container := range containers {
				if _, err := containerService.UpdateRiskScore(container.ID); err != nil {
					slog.Error("could not update container risk score", "containerID", container.ID, "err", err)
					return
				}
			}

			slog.Info("demo dataset seeded", "users", len(users), "containers", len(containers), "issues", len(issues))
		},
	}

	return &seedCmd
}
