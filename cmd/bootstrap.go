package cmd

import (
	"os"

	"music-downloader/core/bootstrap"
	"music-downloader/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// bootstrapCmd resolves the bind endpoint from the environment and the
// host's network interfaces, then spawns and supervises the server process.
var bootstrapCmd = &cobra.Command{
	Use:   "bootstrap",
	Short: "Resolve the bind endpoint and launch the server",
	Long: `Resolves the bind address (first IPv4 of the host's interfaces),
the listen port ($PORT, default 4000) and the reload mode ($LOCAL),
then launches the server process with the resolved endpoint.

The launched process' exit code is passed through unchanged. With
reload mode on, the server is restarted whenever source files change.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logg, err := logger.New(&logger.Config{Level: "info", Format: "console"})
		if err != nil {
			return err
		}
		defer logg.Sync()

		spec, err := bootstrap.Resolve(os.Getenv)
		if err != nil {
			return err
		}
		if err := spec.Validate(); err != nil {
			return err
		}

		bin, err := os.Executable()
		if err != nil {
			return err
		}

		logg.Info("Launching server",
			zap.String("host", spec.Host),
			zap.Int("port", spec.Port),
			zap.Bool("reload", spec.Reload),
		)

		sup := &bootstrap.Supervisor{
			Binary:   bin,
			WatchDir: ".",
			Logger:   logg,
		}
		code, err := sup.Run(cmd.Context(), spec)
		if err != nil {
			return err
		}
		if code != 0 {
			_ = logg.Sync()
			os.Exit(code)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(bootstrapCmd)
}
