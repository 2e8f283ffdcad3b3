package main

import (
	"github.com/agri-econ/farm-income-planner/pkg/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "farm-income-api",
	Short:        "Farm income planner API and web form",
	Version:      version.Get().String(),
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(runCmd)
}
