package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/srlehn/dpiscale"
)

var (
	convertDPI       int
	convertToLogical bool
)

func init() {
	convertCmd.Flags().IntVar(&convertDPI, `dpi`, 0, `target display dpi (0: device dpi)`)
	convertCmd.Flags().BoolVar(&convertToLogical, `to-logical`, false, `convert device to logical units`)
	rootCmd.AddCommand(convertCmd)
}

var convertCmd = &cobra.Command{
	Use:   convertCmdStr,
	Short: `convert values between logical and device units`,
	Long: `convert values between logical and device units

` + convertUsageStr,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(convertFunc(cmd, args))
	},
}

var (
	convertCmdStr   = "convert"
	convertUsageStr = `usage: ` + os.Args[0] + ` ` + convertCmdStr + ` [--dpi <dpi>] [--to-logical] <value>...`
)

func convertFunc(cmd *cobra.Command, args []string) scalerSwapper {
	return func(s **dpiscale.Scaler) error {
		vals, err := parseInts(args)
		if err != nil {
			return err
		}
		sc, err := newScaler()
		if err != nil {
			return err
		}
		*s = sc
		eng := sc.Engine()
		for _, v := range vals {
			if convertToLogical {
				fmt.Println(eng.DeviceToLogical(v, convertDPI))
			} else {
				fmt.Println(eng.LogicalToDevice(v, convertDPI))
			}
		}
		return nil
	}
}
