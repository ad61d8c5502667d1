package main

import (
	"fmt"

	"github.com/jroosing/dnsname/internal/dname"
	"github.com/jroosing/dnsname/internal/helpers"
	"github.com/jroosing/dnsname/internal/namelist"
	"github.com/spf13/cobra"
)

func newSortCmd(a *app) *cobra.Command {
	var (
		file   string
		url    string
		unique bool
		wire   bool
	)

	cmd := &cobra.Command{
		Use:   "sort [name...]",
		Short: "Sort names in RFC 4034 canonical order",
		Long: `sort reads names from the arguments, a file, a URL or stdin and prints them in
canonical DNS order (RFC 4034 Section 6.1). Lists may be plain text, hex or
hosts files; the format is detected unless --format is given. Invalid lines
are logged and skipped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := a.inputFormat(false)
			if err != nil {
				return err
			}
			entries, err := a.readList(cmd, args, file, url, format)
			if err != nil {
				return err
			}
			a.reportRejected(entries)

			names := namelist.Valid(entries)
			namelist.Sort(names)

			out := cmd.OutOrStdout()
			var prev namelist.Name
			for _, n := range names {
				if unique && prev != nil && dname.Equal(prev, n) {
					continue
				}
				prev = n
				if wire {
					fmt.Fprintf(out, "%s\t%s\n", n, helpers.FormatHex(n.Compose(nil)))
					continue
				}
				fmt.Fprintln(out, n)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read names from a file")
	cmd.Flags().StringVar(&url, "url", "", "Fetch names from a URL")
	cmd.Flags().BoolVarP(&unique, "unique", "u", false, "Print names that compare equal only once")
	cmd.Flags().BoolVar(&wire, "wire", false, "Also print the wire format")
	return cmd
}
