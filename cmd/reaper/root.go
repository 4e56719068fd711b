package reaper

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sjzar/reaper/internal/errors"
	"github.com/sjzar/reaper/internal/reaper"
	"github.com/sjzar/reaper/internal/reaper/conf"
	"github.com/sjzar/reaper/internal/reaper/process"
)

func init() {
	// windows only
	cobra.MousetrapHelpText = ""

	rootCmd.PersistentFlags().BoolVar(&Debug, "debug", false, "debug")
	rootCmd.PersistentPreRun = initLog
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errors.Usage(err)
	})

	rootCmd.Flags().StringVar(&configDir, "config", "", "config dir or JSON file (default $HOME/.reaper)")
	rootCmd.Flags().StringP("target", "t", conf.DefaultTarget, "token to look for in process command lines")
	rootCmd.Flags().String("mode", reaper.ModeSubstring, "match mode: substring or name")
	rootCmd.Flags().StringSliceP("exclude", "e", nil, "skip processes whose command line contains this token")
}

var configDir string

// table 进程表，测试中可替换
var table reaper.Table = process.NewTable()

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logError(err)
		os.Exit(errors.ExitCode(err))
	}
}

// logError 输出失败原因，--debug 时附带完整错误链
func logError(err error) {
	e := log.Error().Err(err).AnErr("root_cause", errors.RootCause(err))
	if appErr, ok := errors.AsAppError(err); ok && appErr.RunID != "" {
		e = e.Str("run_id", appErr.RunID)
	}
	e.Msg("command execution failed")

	if Debug {
		log.Debug().Msg(errors.FormatErrorChain(err))
	}
}

var rootCmd = &cobra.Command{
	Use:   "reaper [target]",
	Short: "Force-kill every process whose command line contains target",
	Long: `reaper lists running processes, keeps those whose command line contains
the target token (python by default), skips itself and grep-like filter
artifacts, and sends each one an uncatchable kill signal.

Exit status is 0 whenever the process list could be read, even if some
kills failed.`,
	Example: `reaper
reaper node
reaper --mode name python3 -e jupyter`,
	Args: func(cmd *cobra.Command, args []string) error {
		if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
			return errors.Usage(err)
		}
		return nil
	},
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          Root,
}

func Root(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		if err := cmd.Flags().Set("target", args[0]); err != nil {
			return errors.InvalidArg("target")
		}
	}

	c, err := conf.LoadConfig(configDir, cmd.Flags())
	if err != nil {
		return err
	}

	r := reaper.New(table, c.Matcher(process.Self()))
	result, err := r.Reap(context.Background(), c.Target)
	if err != nil {
		return err
	}

	log.Info().
		Str("run_id", result.RunID).
		Str("target", result.Target).
		Int("attempted", result.Count()).
		Int("killed", result.Killed()).
		Int("not_found", result.NotFound()).
		Int("denied", result.Denied()).
		Int("failed", result.Failed()).
		Msg("reap finished")
	return nil
}
