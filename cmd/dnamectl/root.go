package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/jroosing/dnsname/internal/config"
	"github.com/jroosing/dnsname/internal/logging"
	"github.com/jroosing/dnsname/internal/namelist"
	"github.com/spf13/cobra"
)

// app carries what every subcommand needs once the root command has loaded
// the configuration.
type app struct {
	configPath string
	format     string
	relative   bool
	debug      bool
	jsonLogs   bool
	dbPath     string

	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "dnamectl",
		Short: "Validate, order and index DNS domain names",
		Long: `dnamectl works with DNS domain names in wire format and presentation format.
It validates names, sorts them in RFC 4034 canonical order, shows label
boundaries and keeps a canonical name index that can be walked like an NSEC chain.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error { return a.load(cmd) },
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "Path to YAML configuration file (or set "+config.EnvConfigPath+")")
	pf.StringVar(&a.format, "format", "", "Input format: hex, text or auto (default from config, auto for lists)")
	pf.BoolVar(&a.relative, "relative", false, "Treat input names as relative")
	pf.BoolVar(&a.debug, "debug", false, "Enable debug logging")
	pf.BoolVar(&a.jsonLogs, "json-logs", false, "Enable JSON structured logging")
	pf.StringVar(&a.dbPath, "db", "", "Override the name index database path")

	root.AddCommand(
		newCheckCmd(a),
		newSortCmd(a),
		newLabelsCmd(a),
		newIndexCmd(a),
		newZoneCmd(a),
		newServeCmd(a),
	)
	return root
}

// load reads the configuration, applies flag overrides and sets up logging.
func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.Load(config.ResolveConfigPath(a.configPath))
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("relative") {
		cfg.Input.Relative = a.relative
	}
	if a.dbPath != "" {
		cfg.Database.Path = a.dbPath
	}
	if a.jsonLogs {
		cfg.Logging.Structured = true
		cfg.Logging.StructuredFormat = "json"
	}
	if a.debug {
		cfg.Logging.Level = "DEBUG"
	}

	a.cfg = cfg
	a.logger = logging.New(cmd.ErrOrStderr(), logging.Config{
		Level:            cfg.Logging.Level,
		Structured:       cfg.Logging.Structured,
		StructuredFormat: cfg.Logging.StructuredFormat,
		IncludePID:       cfg.Logging.IncludePID,
		ExtraFields:      cfg.Logging.ExtraFields,
	})
	return nil
}

// inputFormat returns the format selected by --format, else the configured
// one when useConfig is set, else auto detection.
func (a *app) inputFormat(useConfig bool) (namelist.Format, error) {
	switch strings.ToLower(a.format) {
	case "":
		if useConfig {
			return namelist.FormatOf(a.cfg.Input.Format), nil
		}
		return namelist.FormatAuto, nil
	case "auto":
		return namelist.FormatAuto, nil
	case string(config.InputHex):
		return namelist.FormatHex, nil
	case string(config.InputText):
		return namelist.FormatText, nil
	case "hosts":
		return namelist.FormatHosts, nil
	default:
		return namelist.FormatAuto, fmt.Errorf("unknown format %q (want hex, text, hosts or auto)", a.format)
	}
}

// readList collects names from args, a file, a URL or, when none of those
// is given, stdin.
func (a *app) readList(cmd *cobra.Command, args []string, file, url string, format namelist.Format) ([]namelist.Entry, error) {
	p := namelist.NewParser(a.cfg.Input.Relative)
	switch {
	case file != "":
		return p.ParseFile(file, format)
	case url != "":
		return p.ParseURL(url, format)
	case len(args) > 0:
		return p.Parse(strings.NewReader(strings.Join(args, "\n")), format)
	default:
		return p.Parse(cmd.InOrStdin(), format)
	}
}

// reportRejected logs entries that failed to parse and returns how many
// there were.
func (a *app) reportRejected(entries []namelist.Entry) int {
	n := 0
	for _, e := range entries {
		if e.Err != nil {
			n++
			a.logger.Warn("rejected name", "line", e.Line, "input", e.Input, "error", e.Err)
		}
	}
	return n
}
