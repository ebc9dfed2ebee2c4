package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/srlehn/dpiscale"
	"github.com/srlehn/dpiscale/internal/errors"
	"github.com/srlehn/dpiscale/scale"
)

func init() { rootCmd.AddCommand(interpCmd) }

var interpCmd = &cobra.Command{
	Use:   interpCmdStr,
	Short: `print the interpolation mode for a zoom level`,
	Long: `print the interpolation mode for a zoom level

` + interpUsageStr,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(interpFunc(cmd, args))
	},
}

var (
	interpCmdStr   = "interp"
	interpUsageStr = `usage: ` + os.Args[0] + ` ` + interpCmdStr + ` <percent>`
)

func interpFunc(cmd *cobra.Command, args []string) scalerSwapper {
	return func(s **dpiscale.Scaler) error {
		percent, err := strconv.Atoi(args[0])
		if err != nil {
			return errors.New(err)
		}
		fmt.Println(scale.ChooseInterpolationMode(percent))
		return nil
	}
}
