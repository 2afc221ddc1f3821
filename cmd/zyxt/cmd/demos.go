package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zyxtlang/zyxt-go/internal/samples"
)

var demosCmd = &cobra.Command{
	Use:   "demos",
	Short: "List the catalogued demo programs runnable with --demo",
	Run: func(cmd *cobra.Command, args []string) {
		for _, pr := range samples.All() {
			fmt.Printf("%-20s %s\n", pr.Name, pr.Description)
		}
	},
}

func init() {
	rootCmd.AddCommand(demosCmd)
}
