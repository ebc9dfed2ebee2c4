package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/srlehn/dpiscale"
	"github.com/srlehn/dpiscale/awareness"
)

func init() { rootCmd.AddCommand(scopeCmd) }

var scopeCmd = &cobra.Command{
	Use:   scopeCmdStr,
	Short: `enter a dpi awareness scope and print the thread context`,
	Long: `enter a dpi awareness scope and print the thread context before, inside and after the scope

` + scopeUsageStr,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(scopeFunc(cmd, args))
	},
}

var (
	scopeCmdStr   = "scope"
	scopeUsageStr = `usage: ` + os.Args[0] + ` ` + scopeCmdStr + ` <context>`
)

func scopeFunc(cmd *cobra.Command, args []string) scalerSwapper {
	return func(s **dpiscale.Scaler) error {
		target, err := awareness.Parse(args[0])
		if err != nil {
			return err
		}
		sc, err := newScaler()
		if err != nil {
			return err
		}
		*s = sc
		gw := sc.Gateway()
		fmt.Printf("before:\t%s\n", gw.TryGetThreadContext())
		scp := sc.EnterScope(target)
		fmt.Printf("inside:\t%s (active: %t)\n", gw.TryGetThreadContext(), scp.Active())
		if err := scp.Close(); err != nil {
			return err
		}
		fmt.Printf("after:\t%s\n", gw.TryGetThreadContext())
		return nil
	}
}
