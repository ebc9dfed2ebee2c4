package main

import (
	"fmt"
	"image"
	"os"

	"github.com/spf13/cobra"

	"github.com/srlehn/dpiscale"
	"github.com/srlehn/dpiscale/internal/imgio"
	"github.com/srlehn/dpiscale/internal/logx"
	"github.com/srlehn/dpiscale/resample"
)

var (
	rescaleDPI       int
	rescaleSize      string
	rescaleResampler string
	rescaleMode      string
)

func init() {
	rescaleCmd.Flags().IntVar(&rescaleDPI, `dpi`, 0, `target display dpi (0: device dpi)`)
	rescaleCmd.Flags().StringVar(&rescaleSize, `size`, ``, `target size <w>x<h>, overrides --dpi`)
	rescaleCmd.Flags().StringVar(&rescaleResampler, `resampler`, ``, `resampling backend`)
	rescaleCmd.Flags().StringVar(&rescaleMode, `mode`, ``, `interpolation mode (nearest, bilinear, bicubic)`)
	rootCmd.AddCommand(rescaleCmd)
}

var rescaleCmd = &cobra.Command{
	Use:   rescaleCmdStr,
	Short: `rescale an image drawn at 96 dpi to the device dpi`,
	Long: `rescale an image drawn at 96 dpi to the device dpi

` + rescaleUsageStr + `

The output format is chosen by the file extension of <out> (bmp, gif, jpg, png, tiff).`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		run(rescaleFunc(cmd, args))
	},
}

var (
	rescaleCmdStr   = "rescale"
	rescaleUsageStr = `usage: ` + os.Args[0] + ` ` + rescaleCmdStr + ` [--dpi <dpi>] [--size <w>x<h>] [--resampler <name>] [--mode <mode>] <in> <out>`
)

func rescaleFunc(cmd *cobra.Command, args []string) scalerSwapper {
	return func(s **dpiscale.Scaler) error {
		var opts []dpiscale.Option
		if len(rescaleResampler) > 0 {
			opts = append(opts, dpiscale.SetResamplerName(rescaleResampler))
		}
		sc, err := newScaler(opts...)
		if err != nil {
			return err
		}
		*s = sc
		eng := sc.Engine()
		src, err := imgio.Load(args[0])
		if err != nil {
			return err
		}
		size := eng.LogicalToDeviceSize(src.Bounds().Size(), rescaleDPI)
		if len(rescaleSize) > 0 {
			if rescaleDPI != 0 {
				logx.Warn(`--size overrides --dpi`, sc)
			}
			if size, err = parseSize(rescaleSize); err != nil {
				return err
			}
		}
		var dst image.Image
		if len(rescaleMode) > 0 {
			mode, err := resample.ParseMode(rescaleMode)
			if err != nil {
				return err
			}
			dst, err = eng.RescaleWithMode(src, size, mode)
			if err != nil {
				return err
			}
		} else {
			dst, err = eng.RescaleToSize(src, size)
			if err != nil {
				return err
			}
		}
		if err := imgio.Save(args[1], dst); err != nil {
			return err
		}
		fmt.Printf("%s -> %s\n", src.Bounds().Size(), dst.Bounds().Size())
		return nil
	}
}
