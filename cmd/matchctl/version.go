package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the matchctl version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("matchctl", version)
	},
}
