package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/srlehn/dpiscale"
	"github.com/srlehn/dpiscale/scale"
)

var (
	rectDPI       int
	rectExtend    bool
	rectToLogical bool
)

func init() {
	rectCmd.Flags().IntVar(&rectDPI, `dpi`, 0, `target display dpi (0: device dpi)`)
	rectCmd.Flags().BoolVar(&rectExtend, `extend`, false, `extend to whole pixels`)
	rectCmd.Flags().BoolVar(&rectToLogical, `to-logical`, false, `convert device to logical units`)
	rootCmd.AddCommand(rectCmd)
}

var rectCmd = &cobra.Command{
	Use:   rectCmdStr,
	Short: `convert a rectangle between logical and device units`,
	Long: `convert a rectangle between logical and device units

` + rectUsageStr + `

By default x, y, width and height are converted independently. With --extend
the top left corner is rounded down and the bottom right corner up, so the
result covers the converted rectangle.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(rectFunc(cmd, args))
	},
}

var (
	rectCmdStr   = "rect"
	rectUsageStr = `usage: ` + os.Args[0] + ` ` + rectCmdStr + ` [--dpi <dpi>] [--extend] [--to-logical] <x>,<y>,<w>,<h>`
)

func rectFunc(cmd *cobra.Command, args []string) scalerSwapper {
	return func(s **dpiscale.Scaler) error {
		r, err := parseRect(args[0])
		if err != nil {
			return err
		}
		sc, err := newScaler()
		if err != nil {
			return err
		}
		*s = sc
		mode := scale.RectComponentwise
		if rectExtend {
			mode = scale.RectExtendToWholePixels
		}
		if rectToLogical {
			r = sc.Engine().DeviceToLogicalRect(r, rectDPI, mode)
		} else {
			r = sc.Engine().LogicalToDeviceRect(r, rectDPI, mode)
		}
		fmt.Println(formatRect(r))
		return nil
	}
}
