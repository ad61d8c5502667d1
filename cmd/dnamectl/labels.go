package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/jroosing/dnsname/internal/namelist"
	"github.com/spf13/cobra"
)

func newLabelsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "labels <name>",
		Short: "Show the labels of a name and where each starts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := a.inputFormat(false)
			if err != nil {
				return err
			}
			n, err := namelist.Parse(args[0], format, a.cfg.Input.Relative)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "OFFSET\tLENGTH\tLABEL")
			for _, l := range namelist.Labels(n) {
				text := l.Text
				switch {
				case l.Root:
					text = "(root)"
				case l.Wildcard:
					text += " (wildcard)"
				}
				fmt.Fprintf(tw, "%d\t%d\t%s\n", l.Offset, l.Length, text)
			}
			fmt.Fprintf(tw, "%d\t\t(end)\n", n.ComposeLen())
			return tw.Flush()
		},
	}
}
