// Package main provides the contactmap CLI.
//
// contactmap turns loosely written contact records (YAML or JSON) into the
// CRM's wire shapes:
//   - request: one upsert request per contact
//   - fields: the flat canonical field mapping of each contact
//   - bulk: bulk upsert payloads of at most 100 contacts
//   - resolve, reserved: inspect field name canonicalization
//   - schema: print the request JSON Schema
//   - parse-error: recover structured detail from a vendor error message
package main

import (
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"contact-mapper/internal/config"
	"contact-mapper/internal/logging"
	"contact-mapper/internal/mapping"
)

// logger is the application-wide structured logger (writes to stderr).
var logger = charmlog.Default()

// Set by build flags.
var version = "dev"

func main() {
	logging.ConfigureRuntime()
	logger = charmlog.Default()

	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// globalFlags are the persistent flags every command shares.
type globalFlags struct {
	configPath string
	format     string
	validate   bool
	noPrepend  bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var flags globalFlags

	root := &cobra.Command{
		Use:   "contactmap",
		Short: "Normalize contact records into CRM upsert requests",
		Long: `contactmap maps loosely structured contact records onto the field
naming, typing and read-only rules of the CRM contact record, and prints
the resulting upsert requests, flat field mappings or bulk payloads.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "",
		"TOML config file (default: $"+config.EnvConfig+")")
	pf.StringVar(&flags.format, "format", "",
		"output format: json or yaml (default from config: json)")
	pf.BoolVar(&flags.validate, "validate", false,
		"validate output against the request JSON Schema")

	root.AddCommand(newRequestCmd(&flags))
	root.AddCommand(newFieldsCmd(&flags))
	root.AddCommand(newBulkCmd(&flags))
	root.AddCommand(newResolveCmd(&flags))
	root.AddCommand(newReservedCmd(&flags))
	root.AddCommand(newSchemaCmd())
	root.AddCommand(newParseErrorCmd(&flags))

	return root
}

// loadConfig reads the config file and environment, then applies the flags
// the user actually set.
func loadConfig(cmd *cobra.Command, flags *globalFlags) (config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return config.Config{}, err
	}

	if cmd.Flags().Changed("format") {
		f, err := mapping.ParseFormat(flags.format)
		if err != nil {
			return config.Config{}, err
		}
		cfg.Format = f
	}

	if cmd.Flags().Changed("validate") {
		cfg.Validate = flags.validate
	}

	if cmd.Flags().Changed("no-prepend") {
		cfg.PrependKey = !flags.noPrepend
	}

	if lvl, ok := logging.ParseLevel(cfg.LogLevel); ok {
		logger.SetLevel(lvl)
	}

	return cfg, nil
}
