package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/srlehn/dpiscale"
	"github.com/srlehn/dpiscale/internal/errors"
	"github.com/srlehn/dpiscale/internal/logx"
)

var rootCmd = &cobra.Command{
	Use:              filepath.Base(os.Args[0]),
	Short:            "dpiscale convert between logical and device units",
	Long:             "dpiscale convert coordinates and images between logical units (96 DPI) and device units",
	SilenceUsage:     true,
	TraverseChildren: true,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	cobra.EnablePrefixMatching = true
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, `debug`, `d`, false, `debug errors, log at debug level`)
	rootCmd.PersistentFlags().BoolVarP(&silentFlag, `silent`, `s`, false, `silence errors`)
	rootCmd.PersistentFlags().StringVarP(&logFileFlag, `log-file`, `l`, ``, `log file`)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var (
	debugFlag   bool
	silentFlag  bool
	logFileFlag string
)

type scalerSwapper func(s **dpiscale.Scaler) error

func run(fn scalerSwapper) {
	var err error
	if fn == nil {
		err = errors.NilParam()
	}
	var s *dpiscale.Scaler
	var exitCode int
	var logFile *os.File
	defer func() {
		if r := recover(); r != nil {
			exitCode = 1
			if !silentFlag {
				if stackFramer, ok := r.(interface{ ErrorStack() string }); ok {
					fmt.Fprintln(os.Stderr, "\n"+stackFramer.ErrorStack())
				} else {
					debug.PrintStack()
				}
			}
		}
		if logFile != nil {
			_ = logFile.Close()
		}
		os.Exit(exitCode)
	}()
	if err == nil && len(logFileFlag) > 0 {
		logFile, err = os.OpenFile(logFileFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			err = errors.New(err)
		}
		logFileWriter = logFile
	}
	if err == nil {
		err = fn(&s)
	}
	if err != nil {
		if s != nil {
			logx.IsErr(err, s, slog.LevelError)
		}
		exitCode = 1
		if !silentFlag {
			if stackFramer, ok := err.(interface{ ErrorStack() string }); debugFlag && ok {
				fmt.Fprintln(os.Stderr, "\n"+stackFramer.ErrorStack())
			} else {
				fmt.Fprintln(os.Stderr, "\n"+err.Error())
			}
		}
	}
}

// logFileWriter is set by run before the command function is called.
var logFileWriter *os.File

// newScaler builds the process wide configuration plus the logging flags
// and opts.
func newScaler(opts ...dpiscale.Option) (*dpiscale.Scaler, error) {
	var logger *slog.Logger
	lvl := slog.LevelInfo
	if debugFlag {
		lvl = slog.LevelDebug
	}
	switch {
	case logFileWriter != nil:
		logger = slog.New(slog.NewTextHandler(logFileWriter, &slog.HandlerOptions{AddSource: true, Level: lvl}))
	case debugFlag:
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	}
	all := append(dpiscale.Options{dpiscale.SetLogger(logger), dpiscale.DefaultConfig}, opts...)
	return dpiscale.New(all)
}
