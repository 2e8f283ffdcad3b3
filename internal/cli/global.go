package cli

import (
	"github.com/agri-econ/farm-income-planner/pkg/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

type GlobalOptions struct {
	LogLevel string
}

func DefaultGlobalOptions() GlobalOptions {
	return GlobalOptions{
		LogLevel: "warn",
	}
}

func (o *GlobalOptions) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&o.LogLevel, "log-level", o.LogLevel, "Log level written to stderr (debug, info, warn, error)")
}

// Complete installs a stderr logger so diagnostics never mix with the command output.
func (o *GlobalOptions) Complete(cmd *cobra.Command, args []string) error {
	zap.ReplaceGlobals(log.InitStderrLog(log.ParseLevel(o.LogLevel)))
	return nil
}

func (o *GlobalOptions) Validate(args []string) error {
	return nil
}
