package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"contact-mapper/apierror"
	"contact-mapper/fieldname"
	"contact-mapper/internal/mapping"
	"contact-mapper/internal/schema"
)

// resolution is the output of the resolve command for one name.
type resolution struct {
	Name       string `json:"name" yaml:"name"`
	Canonical  string `json:"canonical" yaml:"canonical"`
	Reserved   bool   `json:"reserved" yaml:"reserved"`
	Type       string `json:"type,omitempty" yaml:"type,omitempty"`
	Suggestion string `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
}

func resolve(name string) resolution {
	r := resolution{Name: name}

	if t, decoded, ok := fieldname.SplitTyped(name); ok {
		r.Canonical = decoded
		r.Type = t.String()
	} else {
		r.Canonical = fieldname.Resolve(name)
	}

	r.Reserved = fieldname.IsReserved(r.Canonical)
	r.Suggestion, _ = fieldname.Suggest(name)

	return r
}

// namesParams holds the parsed flags for the resolve command.
type namesParams struct {
	names  []string
	format mapping.Format
	stdout io.Writer
}

// runResolve is the extracted, testable body of the resolve command.
func runResolve(p namesParams) error {
	out := make([]resolution, 0, len(p.names))
	for _, name := range p.names {
		out = append(out, resolve(name))
	}

	return mapping.Encode(p.stdout, out, p.format)
}

func newResolveCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve NAME...",
		Short: "Show the canonical field name of each argument",
		Long: `Show how each argument is canonicalized: the resulting field name,
whether it is a reserved CRM field, the type fixed by a "type--" prefix,
and the reserved name it most likely meant when it looks like a typo.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}

			return runResolve(namesParams{names: args, format: cfg.Format, stdout: cmd.OutOrStdout()})
		},
	}
}

func newReservedCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "reserved",
		Short: "List the reserved CRM field names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}

			return mapping.Encode(cmd.OutOrStdout(), fieldname.Reserved(), cfg.Format)
		},
	}
}

func newSchemaCmd() *cobra.Command {
	var bulkSchema bool

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the upsert request",
		Long: `Print the JSON Schema (Draft 2020-12) that documents the structure
of contactmap request output. With --bulk, print the schema of bulk
payloads instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := schema.Request
			if bulkSchema {
				doc = schema.Bulk
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), doc)
			return err
		},
	}

	cmd.Flags().BoolVar(&bulkSchema, "bulk", false, "print the bulk payload schema")

	return cmd
}

// vendorError is the output of the parse-error command.
type vendorError struct {
	Parsed   bool          `json:"parsed" yaml:"parsed"`
	Kind     apierror.Kind `json:"kind,omitempty" yaml:"kind,omitempty"`
	Action   string        `json:"action,omitempty" yaml:"action,omitempty"`
	Resource string        `json:"resource,omitempty" yaml:"resource,omitempty"`
	Response string        `json:"response,omitempty" yaml:"response,omitempty"`
	Reason   string        `json:"reason,omitempty" yaml:"reason,omitempty"`
	Message  string        `json:"message" yaml:"message"`
	Code     int           `json:"code,omitempty" yaml:"code,omitempty"`
}

// parseErrorParams holds the parsed flags for the parse-error command.
type parseErrorParams struct {
	message string
	code    int
	format  mapping.Format
	stdout  io.Writer
}

// runParseError is the extracted, testable body of the parse-error command.
func runParseError(p parseErrorParams) error {
	e := apierror.Parse(p.message, p.code)
	if !e.Parsed() {
		logger.Warn("message does not have the expected shape, nothing recovered")
	}

	return mapping.Encode(p.stdout, vendorError{
		Parsed:   e.Parsed(),
		Kind:     e.Kind(),
		Action:   e.Action(),
		Resource: e.Resource(),
		Response: e.Response(),
		Reason:   e.Reason(),
		Message:  e.Message(),
		Code:     e.Code(),
	}, p.format)
}

func newParseErrorCmd(flags *globalFlags) *cobra.Command {
	var code int

	cmd := &cobra.Command{
		Use:   "parse-error MESSAGE",
		Short: "Recover structured detail from a CRM client error message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}

			return runParseError(parseErrorParams{
				message: args[0],
				code:    code,
				format:  cfg.Format,
				stdout:  cmd.OutOrStdout(),
			})
		},
	}

	cmd.Flags().IntVar(&code, "code", 0, "HTTP status code of the failed call")

	return cmd
}
