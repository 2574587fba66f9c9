package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"pnGo/config"
	"pnGo/logging"
	"pnGo/oops"
	"pnGo/pngDecoder"
	"pnGo/sink"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logging.Error().Err(err).Msg("pngo failed")
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cfg := config.Default()
	format := string(cfg.Output.Format)

	rootCommand := &cobra.Command{
		Use:           "pngo",
		Short:         "Decode indexed-color PNG images",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Output.Format = config.OutputFormat(format)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return logging.SetLevel(cfg.LogLevel)
		},
	}
	rootCommand.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (trace, debug, info, warn, error)")
	rootCommand.PersistentFlags().BoolVar(&cfg.VerifyCRC, "verify-crc", cfg.VerifyCRC, "reject chunks whose CRC-32 does not match")

	decodeCommand := &cobra.Command{
		Use:   "decode <file>",
		Short: "Decode a PNG and write its pixels to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer logging.LogPanics(nil)

			img, err := decodeFile(args[0], cfg)
			if err != nil {
				return err
			}
			if err := img.Render(sink.NewFileSink(cfg.Output)); err != nil {
				return err
			}
			logging.Info().
				Str("output", cfg.Output.Path).
				Uint32("width", img.Header.Width).
				Uint32("height", img.Header.Height).
				Msg("wrote image")
			return nil
		},
	}
	decodeCommand.Flags().StringVarP(&cfg.Output.Path, "output", "o", cfg.Output.Path, "output file")
	decodeCommand.Flags().StringVarP(&format, "format", "f", format, "output format (ppm, bmp, tiff, png)")
	decodeCommand.Flags().IntVar(&cfg.Output.Scale, "scale", cfg.Output.Scale, "integer upscaling factor")
	rootCommand.AddCommand(decodeCommand)

	chunksCommand := &cobra.Command{
		Use:   "chunks <file>",
		Short: "List the chunks of a PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := decodeFile(args[0], cfg)
			if err != nil {
				return err
			}
			printChunks(cmd, img)
			return nil
		},
	}
	rootCommand.AddCommand(chunksCommand)

	return rootCommand
}

func decodeFile(path string, cfg config.PnGoConfig) (*pngDecoder.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, oops.New(err, "failed to read %s", path)
	}
	return pngDecoder.Decode(data,
		pngDecoder.WithLogger(*logging.GlobalLogger()),
		pngDecoder.WithChecksumVerification(cfg.VerifyCRC),
	)
}

func printChunks(cmd *cobra.Command, img *pngDecoder.Image) {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tTYPE\tOFFSET\tLENGTH\tCRITICAL")
	for i, c := range img.Chunks() {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%v\n", i, c.Type, c.Offset, c.Length, c.Critical)
	}
	tw.Flush()
}
