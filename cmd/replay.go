// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Thermoquad/nx584/pkg/caddx"
	"github.com/spf13/cobra"
)

var (
	replayValidate bool
	replayStats    bool
	replayType     string
)

var replayCmd = &cobra.Command{
	Use:   "replay FILE",
	Short: "Decode a capture file written by raw_log --capture",
	Long: `Decode the messages stored in a capture file offline.

Each record is printed the way raw_log prints live traffic, stamped with the
time it was captured and prefixed with its date, direction and protocol. No
connection to the panel is needed.

Examples:
  nx584 replay panel.cbor
  nx584 replay panel.cbor --type zone_status_message --validate
  nx584 replay panel.cbor --stats`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().BoolVar(&replayValidate, "validate", false, "Print validation errors for each message")
	replayCmd.Flags().BoolVar(&replayStats, "stats", false, "Print statistics after the last record")
	replayCmd.Flags().StringVar(&replayType, "type", "", "Only show messages of this type (catalog key or number)")
}

type replayOptions struct {
	validate bool
	only     *caddx.MessageType
}

func runReplay(cmd *cobra.Command, args []string) error {
	opts := replayOptions{validate: replayValidate}
	if replayType != "" {
		t, err := lookupMessageType(replayType)
		if err != nil {
			return err
		}
		opts.only = t
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open capture file: %w", err)
	}
	defer f.Close()

	stats := caddx.NewStatistics()
	records, err := replayCapture(f, os.Stdout, stats, opts)
	logger.Debug().Int("records", records).Str("file", args[0]).Msg("replay finished")

	if replayStats {
		fmt.Printf("\n--- %d records ---\n", records)
		fmt.Print(stats.String())
	}
	return err
}

// replayCapture decodes every record from r, printing the selected ones to
// w. It returns the number of records read.
func replayCapture(r io.Reader, w io.Writer, stats *caddx.Statistics, opts replayOptions) (int, error) {
	reader := caddx.NewCaptureReader(r)
	records := 0

	for {
		rec, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return records, err
		}
		records++

		m, err := rec.Message()
		if err != nil {
			stats.Update(nil, err, nil)
			if opts.only == nil {
				fmt.Fprintf(w, "%s [%s] [ERROR] %v: %s\n",
					replayPrefix(rec), rec.Timestamp.Format("15:04:05.000"), err, caddx.FormatHex(rec.Raw))
			}
			continue
		}

		validation := caddx.ValidateMessage(m)
		stats.Update(m, nil, validation)

		if opts.only != nil && m.Number() != opts.only.Number {
			continue
		}

		// FormatMessage leads with the time of day, stamped from the record.
		fmt.Fprintf(w, "%s %s", replayPrefix(rec), caddx.FormatMessage(m))
		if opts.validate {
			for _, v := range validation {
				fmt.Fprintf(w, "  ! %s: %s\n", v.Type, v.Message)
			}
		}
	}
}

func replayPrefix(rec *caddx.CaptureRecord) string {
	return fmt.Sprintf("%s %s %s", rec.Timestamp.Format("2006-01-02"), rec.Direction, rec.Protocol)
}
