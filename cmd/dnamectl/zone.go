package main

import (
	"fmt"

	"github.com/jroosing/dnsname/internal/zone"
	"github.com/spf13/cobra"
)

func newZoneCmd(a *app) *cobra.Command {
	var (
		names   bool
		targets bool
	)
	cmd := &cobra.Command{
		Use:   "zone <file>",
		Short: "Print the records or names of a master file in canonical order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			z, err := zone.LoadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to load zone: %w", err)
			}
			a.logger.Debug("zone loaded", "origin", z.Origin.String(), "records", len(z.Records))

			out := cmd.OutOrStdout()
			if names || targets {
				for _, n := range z.Names(targets) {
					fmt.Fprintln(out, n)
				}
				return nil
			}

			fmt.Fprintf(out, "ORIGIN: %s\n", z.Origin)
			fmt.Fprintf(out, "DEFAULT_TTL: %d\n", z.DefaultTTL)
			fmt.Fprintln(out, "RECORDS:")
			for _, rr := range z.Sorted() {
				fmt.Fprintf(out, "  %s\n", rr)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&names, "names", false, "Print the distinct owner names only")
	cmd.Flags().BoolVar(&targets, "targets", false, "With --names, include names found in record data")
	return cmd
}
