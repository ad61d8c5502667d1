package main

import (
	"fmt"
	"io"

	"github.com/jroosing/dnsname/internal/dns"
	"github.com/jroosing/dnsname/internal/helpers"
	"github.com/jroosing/dnsname/internal/namelist"
	"github.com/spf13/cobra"
)

func newCheckCmd(a *app) *cobra.Command {
	var (
		file   string
		offset int
		wire   bool
	)

	cmd := &cobra.Command{
		Use:   "check [name...]",
		Short: "Validate names given in hex wire format or presentation format",
		Long: `check parses each name and prints its presentation form, encoded length and
label count. With --offset every argument is a hex encoded DNS message and the
name starting at that offset is decoded, following compression pointers.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if offset >= 0 {
				return a.checkMessages(out, args, offset)
			}

			format, err := a.inputFormat(true)
			if err != nil {
				return err
			}

			var entries []namelist.Entry
			if file != "" || len(args) == 0 {
				entries, err = a.readList(cmd, nil, file, "", format)
				if err != nil {
					return err
				}
			} else {
				for i, s := range args {
					n, err := namelist.Parse(s, format, a.cfg.Input.Relative)
					entries = append(entries, namelist.Entry{Line: i + 1, Input: s, Name: n, Err: err})
				}
			}

			bad := 0
			for _, e := range entries {
				if e.Err != nil {
					bad++
					a.logger.Debug("rejected name", "input", e.Input, "error", e.Err)
					fmt.Fprintf(out, "invalid\t%s\t%v\n", e.Input, e.Err)
					continue
				}
				printName(out, e.Name, wire)
			}
			if bad > 0 {
				return fmt.Errorf("%d of %d names invalid", bad, len(entries))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read names from a file, one per line")
	cmd.Flags().IntVar(&offset, "offset", -1, "Decode the name at this offset of a hex encoded DNS message")
	cmd.Flags().BoolVar(&wire, "wire", false, "Also print the wire format")
	return cmd
}

func (a *app) checkMessages(out io.Writer, args []string, offset int) error {
	if len(args) == 0 {
		return fmt.Errorf("--offset needs at least one hex encoded message")
	}
	for _, s := range args {
		msg, err := helpers.ParseHex(s)
		if err != nil {
			return err
		}
		off := offset
		n, err := dns.DecodeName(msg, &off)
		if err != nil {
			a.logger.Warn("rejected name", "offset", offset, "error", err)
			return err
		}
		a.logger.Debug("decoded name", "offset", offset, "next", off)
		fmt.Fprintf(out, "%s\t%d octets\t%d labels\tnext offset %d\n", n, n.Len(), n.LabelCount(), off)
	}
	return nil
}

func printName(out io.Writer, n namelist.Name, wire bool) {
	kind := "absolute"
	if !n.IsAbsolute() {
		kind = "relative"
	}
	fmt.Fprintf(out, "%s\t%s\t%d octets\t%d labels", n, kind, n.ComposeLen(), n.LabelCount())
	if wire {
		fmt.Fprintf(out, "\t%s", helpers.FormatHex(n.Compose(nil)))
	}
	fmt.Fprintln(out)
}
