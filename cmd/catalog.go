// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Thermoquad/nx584/pkg/caddx"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	catalogFormat    string
	catalogFieldType string
)

var catalogCmd = &cobra.Command{
	Use:   "catalog [TYPE]",
	Short: "List the message catalog",
	Long: `Print the message types known to the protocol library.

Without TYPE every message type is listed on one line each. With TYPE (a
catalog key or message number) the full field layout of that type is shown.

Examples:
  nx584 catalog
  nx584 catalog zone_status_message
  nx584 catalog 0x08 --field-type bit
  nx584 catalog --format yaml > catalog.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCatalog,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.Flags().StringVar(&catalogFormat, "format", "text", "Output format: text or yaml")
	catalogCmd.Flags().StringVar(&catalogFieldType, "field-type", "", "Only show fields of this type (int, string or bit)")
}

// catalogEntry is the exported form of a message type.
type catalogEntry struct {
	Number      string           `yaml:"number"`
	Key         string           `yaml:"key"`
	Name        string           `yaml:"name"`
	Description string           `yaml:"description"`
	Length      int              `yaml:"length"`
	Direction   string           `yaml:"direction"`
	Source      string           `yaml:"source"`
	Replies     []string         `yaml:"replies,omitempty"`
	Properties  []caddx.Property `yaml:"properties,omitempty"`
}

func newCatalogEntry(t *caddx.MessageType, withFields bool, filter *caddx.PropertyType) catalogEntry {
	e := catalogEntry{
		Number:      fmt.Sprintf("0x%02X", t.Number),
		Key:         t.Key,
		Name:        t.Name,
		Description: t.Description,
		Length:      t.Length,
		Direction:   t.Direction.String(),
		Source:      t.Source.String(),
	}
	for _, r := range t.Replies {
		e.Replies = append(e.Replies, fmt.Sprintf("0x%02X", r))
	}
	if withFields {
		for _, p := range t.Properties {
			if filter != nil && p.Type != *filter {
				continue
			}
			e.Properties = append(e.Properties, p)
		}
	}
	return e
}

func runCatalog(cmd *cobra.Command, args []string) error {
	var filter *caddx.PropertyType
	if catalogFieldType != "" {
		pt, err := caddx.ParsePropertyType(catalogFieldType)
		if err != nil {
			return err
		}
		filter = &pt
	}

	types := caddx.MessageTypes()
	if len(args) == 1 {
		t, err := lookupMessageType(args[0])
		if err != nil {
			return err
		}
		types = []*caddx.MessageType{t}
	}

	// Field layouts are shown for a single type, or whenever yaml or a
	// field filter asks for them
	withFields := len(args) == 1 || catalogFormat == "yaml" || filter != nil

	entries := make([]catalogEntry, 0, len(types))
	for _, t := range types {
		entries = append(entries, newCatalogEntry(t, withFields, filter))
	}

	switch strings.ToLower(catalogFormat) {
	case "yaml":
		return writeCatalogYAML(os.Stdout, entries)
	case "text":
		writeCatalogText(os.Stdout, entries, withFields)
		return nil
	default:
		return fmt.Errorf("%w: unknown format %q", caddx.ErrInvalidArgument, catalogFormat)
	}
}

func writeCatalogYAML(w io.Writer, entries []catalogEntry) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	return enc.Close()
}

func writeCatalogText(w io.Writer, entries []catalogEntry, withFields bool) {
	for _, e := range entries {
		fmt.Fprintf(w, "%s  %-45s %-3s len=%-2d %s\n", e.Number, e.Key, e.Direction, e.Length, e.Name)
		if !withFields {
			continue
		}
		if len(e.Replies) > 0 {
			fmt.Fprintf(w, "      replies: %s\n", strings.Join(e.Replies, ", "))
		}
		for _, p := range e.Properties {
			loc := fmt.Sprintf("byte %d", p.ByteOffset)
			switch p.Type {
			case caddx.PropertyBit:
				loc = fmt.Sprintf("byte %d bit %d", p.ByteOffset, p.BitOffset)
			case caddx.PropertyString:
				loc = fmt.Sprintf("bytes %d-%d", p.ByteOffset, p.ByteOffset+p.ByteLength-1)
			}
			id := p.ID
			if id == "" {
				id = "-"
			}
			fmt.Fprintf(w, "      %-16s %-6s %-36s %s\n", loc, p.Type, id, p.Label)
		}
		fmt.Fprintln(w)
	}
}
