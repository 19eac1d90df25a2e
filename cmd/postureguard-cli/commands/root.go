package commands

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "postureguard-cli",
	Short: "Management cli",
	Long:  `The postureguard cli can be used to interact with a running postureguard instance.`,
}

func GetRootCmd() *cobra.Command {
	return rootCmd
}
