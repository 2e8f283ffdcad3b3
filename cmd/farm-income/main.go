package main

import (
	"os"

	"github.com/agri-econ/farm-income-planner/internal/cli"
	"github.com/spf13/cobra"
)

func main() {
	command := NewFarmIncomeCommand()
	if err := command.Execute(); err != nil {
		os.Exit(1)
	}
}

func NewFarmIncomeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "farm-income [flags] [options]",
		Short: "farm-income simulates smallholder cocoa farm income across farm sizes.",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
			os.Exit(1)
		},
	}
	cmd.AddCommand(cli.NewCmdSimulate())
	cmd.AddCommand(cli.NewCmdTUI())
	cmd.AddCommand(cli.NewCmdVersion())

	return cmd
}
