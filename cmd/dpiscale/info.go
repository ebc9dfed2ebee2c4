package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/srlehn/dpiscale"
	"github.com/srlehn/dpiscale/gateway"
	"github.com/srlehn/dpiscale/resample"
)

func init() { rootCmd.AddCommand(infoCmd) }

var infoCmd = &cobra.Command{
	Use:   infoCmdStr,
	Short: `print display dpi, scale factor and thread dpi awareness`,
	Long: `print display dpi, scale factor and thread dpi awareness

` + infoUsageStr,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(infoFunc(cmd, args))
	},
}

var (
	infoCmdStr   = "info"
	infoUsageStr = `usage: ` + os.Args[0] + ` ` + infoCmdStr
)

func infoFunc(cmd *cobra.Command, args []string) scalerSwapper {
	return func(s **dpiscale.Scaler) error {
		sc, err := newScaler()
		if err != nil {
			return err
		}
		*s = sc
		st := sc.Engine().State()
		gw := sc.Gateway()
		fmt.Printf("device dpi:\t%d\n", st.DeviceDPI)
		fmt.Printf("scale factor:\t%g (%d%%)\n", st.Factor, st.Percent())
		fmt.Printf("interpolation:\t%s\n", st.Interpolation)
		fmt.Printf("thread context:\t%s\n", gw.TryGetThreadContext())
		for _, ep := range gateway.EntryPoints {
			fmt.Printf("entry point:\t%s\t%t\n", ep, gw.Available(ep))
		}
		fmt.Printf("resamplers:\t%s\n", strings.Join(resample.Names(), ` `))
		if debugFlag {
			fmt.Println(sc.Properties().String())
		}
		return nil
	}
}
