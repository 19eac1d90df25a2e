package main

import (
	"log/slog"
	"os"

	"github.com/graylake-dev/postureguard/cmd/postureguard-cli/commands"
	"github.com/graylake-dev/postureguard/shared"
)

func Execute() {
	err := commands.GetRootCmd().Execute()
	if err != nil {
		slog.Error("Error executing command", "err", err)
		os.Exit(1)
	}
}

func init() {
	commands.GetRootCmd().AddCommand(commands.NewMigrateCommand())
	commands.GetRootCmd().AddCommand(commands.NewRiskCommand())
	commands.GetRootCmd().AddCommand(commands.NewSeedCommand())
}

func main() {
	shared.InitLogger()
	Execute()
}
