package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/jroosing/dnsname/internal/database"
	"github.com/jroosing/dnsname/internal/dname"
	"github.com/jroosing/dnsname/internal/logging"
	"github.com/jroosing/dnsname/internal/namelist"
	"github.com/jroosing/dnsname/internal/zone"
	"github.com/spf13/cobra"
)

func newIndexCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index",
		Short: "Manage the canonical name index",
		Long: `The name index is a SQLite database of absolute names kept in RFC 4034
canonical order. Names that differ only in ASCII case are the same entry.`,
	}
	cmd.AddCommand(
		newIndexAddCmd(a),
		newIndexListCmd(a),
		newIndexRmCmd(a),
		newIndexNextCmd(a),
	)
	return cmd
}

// withDB opens the configured index for the duration of fn.
func (a *app) withDB(fn func(db *database.DB) error) error {
	db, err := database.Open(a.cfg.Database.Path)
	if err != nil {
		return err
	}
	defer db.Close()
	return fn(db)
}

func newIndexAddCmd(a *app) *cobra.Command {
	var (
		note     string
		file     string
		url      string
		zoneFile string
	)
	cmd := &cobra.Command{
		Use:   "add [name...]",
		Short: "Add names to the index",
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				names    []dname.Dname
				rejected int
			)
			if zoneFile != "" {
				z, err := zone.LoadFile(zoneFile)
				if err != nil {
					return fmt.Errorf("failed to load zone: %w", err)
				}
				names = z.Names(false)
			} else {
				// The index holds absolute names only.
				a.cfg.Input.Relative = false
				format, err := a.inputFormat(false)
				if err != nil {
					return err
				}
				entries, err := a.readList(cmd, args, file, url, format)
				if err != nil {
					return err
				}
				rejected = a.reportRejected(entries)
				for _, n := range namelist.Valid(entries) {
					if d, ok := n.(dname.Dname); ok {
						names = append(names, d)
					}
				}
			}

			return a.withDB(func(db *database.DB) error {
				added := 0
				for _, d := range names {
					if _, err := db.AddName(cmd.Context(), d, note); err != nil {
						return err
					}
					a.logger.Debug("name indexed", logging.Name("name", d))
					added++
				}
				fmt.Fprintf(cmd.OutOrStdout(), "added %d names\n", added)
				if rejected > 0 {
					return fmt.Errorf("%d names rejected", rejected)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&note, "note", "", "Note stored with each name")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Read names from a file")
	cmd.Flags().StringVar(&url, "url", "", "Fetch names from a URL")
	cmd.Flags().StringVar(&zoneFile, "zone", "", "Add the owner names of a master file")
	return cmd
}

func newIndexListCmd(a *app) *cobra.Command {
	var (
		under string
		limit int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List indexed names in canonical order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := database.ListOptions{Limit: limit}
			if under != "" {
				n, err := dname.FromString(under)
				if err != nil {
					return fmt.Errorf("invalid zone %q: %w", under, err)
				}
				opts.Under = n
			}
			return a.withDB(func(db *database.DB) error {
				entries, err := db.ListNames(cmd.Context(), opts)
				if err != nil {
					return err
				}
				return printEntries(cmd.OutOrStdout(), entries)
			})
		},
	}
	cmd.Flags().StringVar(&under, "under", "", "Only names at or below this zone")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of names (0 means all)")
	return cmd
}

func newIndexRmCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <name>...",
		Short: "Remove names from the index",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withDB(func(db *database.DB) error {
				for _, s := range args {
					n, err := dname.FromString(s)
					if err != nil {
						return fmt.Errorf("invalid name %q: %w", s, err)
					}
					if err := db.DeleteName(cmd.Context(), n); err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", n)
				}
				return nil
			})
		},
	}
}

func newIndexNextCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "next <name>",
		Short: "Print the indexed name that follows a name canonically",
		Long: `next prints the indexed name that follows the given one in canonical order.
After the last name it wraps around to the first, as an NSEC chain does.
The given name does not have to be indexed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := dname.FromString(args[0])
			if err != nil {
				return fmt.Errorf("invalid name %q: %w", args[0], err)
			}
			return a.withDB(func(db *database.DB) error {
				e, err := db.Successor(cmd.Context(), n)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), e.Name)
				return nil
			})
		},
	}
}

func printEntries(out io.Writer, entries []database.NameEntry) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tLABELS\tNOTE")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", e.Name, e.LabelCount, e.Note)
	}
	return tw.Flush()
}
