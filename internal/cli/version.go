package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/agri-econ/farm-income-planner/pkg/version"
	"github.com/spf13/cobra"
)

type VersionOptions struct {
	Output string
}

func DefaultVersionOptions() *VersionOptions {
	return &VersionOptions{
		Output: "",
	}
}

func NewCmdVersion() *cobra.Command {
	o := DefaultVersionOptions()
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print farm income planner version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.Run(cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&o.Output, "output", "o", o.Output, "Output format. One of: (json).")
	return cmd
}

func (o *VersionOptions) Run(w io.Writer) error {
	versionInfo := version.Get()
	if o.Output == jsonFormat {
		return json.NewEncoder(w).Encode(versionInfo)
	}
	_, err := fmt.Fprintf(w, "Farm Income Planner Version: %s\n", versionInfo.String())
	return err
}
