package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/srlehn/dpiscale"
	"github.com/srlehn/dpiscale/awareness"
)

func init() { rootCmd.AddCommand(parentCmd) }

var parentCmd = &cobra.Command{
	Use:   parentCmdStr,
	Short: `check whether a dpi awareness context may enclose another`,
	Long: `check whether a dpi awareness context may enclose another

` + parentUsageStr + `

contexts: unaware, system-aware, per-monitor-aware, per-monitor-aware-v2`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		run(parentFunc(cmd, args))
	},
}

var (
	parentCmdStr   = "parent"
	parentUsageStr = `usage: ` + os.Args[0] + ` ` + parentCmdStr + ` <outer> <inner>`
)

func parentFunc(cmd *cobra.Command, args []string) scalerSwapper {
	return func(s **dpiscale.Scaler) error {
		outer, err := awareness.Parse(args[0])
		if err != nil {
			return err
		}
		inner, err := awareness.Parse(args[1])
		if err != nil {
			return err
		}
		fmt.Println(awareness.CanParent(outer, inner))
		return nil
	}
}
