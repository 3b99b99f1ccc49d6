package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/bnema/vidqa/config"
)

var formatsCmd = &cobra.Command{
	Use:   "formats [url]",
	Short: "List the formats a platform offers for a URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := *configFrom(cmd)
		cfg.Store = config.StoreMemory

		a, err := newApp(&cfg)
		if err != nil {
			return err
		}
		defer func() { _ = a.close() }()

		info, err := a.orch.ListRemoteFormats(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s (%s, %.0fs)\n", info.Title, info.Platform, info.Duration)

		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tEXT\tRESOLUTION\tFPS\tSIZE\tVCODEC\tACODEC")
		for _, f := range info.Formats {
			size := "-"
			if f.FileSize > 0 {
				size = humanize.Bytes(uint64(f.FileSize))
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%.0f\t%s\t%s\t%s\n",
				f.FormatID, f.Ext, f.Resolution, f.FPS, size, f.VCodec, f.ACodec)
		}
		return tw.Flush()
	},
}
