package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the pytestgen version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pytestgen version %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
