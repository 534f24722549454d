package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"contact-mapper/bulk"
	"contact-mapper/contact"
	"contact-mapper/internal/config"
	"contact-mapper/internal/diagnostic"
	"contact-mapper/internal/mapping"
	"contact-mapper/internal/schema"
)

// contactsParams holds the parsed flags of the commands that read documents.
type contactsParams struct {
	files  []string
	cfg    config.Config
	stdout io.Writer
}

// loadContacts builds the contacts of every file. Files and records that
// fail are logged and combined into err; the rest are still returned.
func loadContacts(files []string) ([]*contact.Contact, error) {
	var (
		all []*contact.Contact
		err error
	)

	for _, path := range files {
		doc, lerr := mapping.LoadFile(path)
		if lerr != nil {
			err = multierr.Append(err, lerr)
			continue
		}

		res := mapping.Validate(doc)
		logDiagnostics(path, res)

		if derr := res.Error(); derr != nil {
			err = multierr.Append(err, fmt.Errorf("%s: %w", path, derr))
			continue
		}

		contacts, berr := doc.Build()
		err = multierr.Append(err, berr)

		for i, c := range contacts {
			logDiagnostics(fmt.Sprintf("%s: contact %d", path, i), c.Diagnostics())
			res.Merge(c.Diagnostics())
		}

		logger.Debug("document loaded", "file", path, "records", len(doc.Records), "contacts", len(contacts),
			"warnings", len(res.Warnings), "infos", len(res.Infos))

		all = append(all, contacts...)
	}

	return all, err
}

func logDiagnostics(source string, d diagnostic.Diagnostics) {
	for _, e := range d.Errors {
		logger.Error(e.String(), "source", source)
	}
	for _, w := range d.Warnings {
		logger.Warn(w.String(), "source", source)
	}
	for _, i := range d.Infos {
		logger.Info(i.String(), "source", source)
	}
}

// runRequest is the extracted, testable body of the request command.
func runRequest(p contactsParams) error {
	contacts, err := loadContacts(p.files)

	requests := make([]any, 0, len(contacts))

	for i, c := range contacts {
		req := c.ToRequest(p.cfg.PrependKey)

		if p.cfg.Validate {
			doc := req
			if !p.cfg.PrependKey {
				doc = map[string]any{contact.RequestKey: req}
			}

			if verr := schema.ValidateRequest(doc); verr != nil {
				err = multierr.Append(err, fmt.Errorf("contact %d: %w", i, verr))
				continue
			}
		}

		requests = append(requests, req)
	}

	logger.Info("requests built", "contacts", len(requests))

	if werr := mapping.Encode(p.stdout, requests, p.cfg.Format); werr != nil {
		return multierr.Append(err, werr)
	}

	return err
}

// runFields is the extracted, testable body of the fields command.
func runFields(p contactsParams) error {
	contacts, err := loadContacts(p.files)

	out := make([]any, 0, len(contacts))
	for _, c := range contacts {
		out = append(out, c.ToArray())
	}

	if werr := mapping.Encode(p.stdout, out, p.cfg.Format); werr != nil {
		return multierr.Append(err, werr)
	}

	return err
}

// runBulk is the extracted, testable body of the bulk command.
func runBulk(p contactsParams) error {
	contacts, err := loadContacts(p.files)

	batches := bulk.Split(contacts)
	payloads := make([]any, 0, len(batches))

	for i, batch := range batches {
		payload, berr := bulk.Build(batch)
		if berr != nil {
			err = multierr.Append(err, fmt.Errorf("batch %d: %w", i, berr))
			continue
		}

		if p.cfg.Validate {
			if verr := schema.ValidateBulk(payload); verr != nil {
				err = multierr.Append(err, fmt.Errorf("batch %d: %w", i, verr))
				continue
			}
		}

		payloads = append(payloads, payload)
	}

	logger.Info("bulk payloads built", "contacts", len(contacts), "batches", len(payloads))

	if werr := mapping.Encode(p.stdout, payloads, p.cfg.Format); werr != nil {
		return multierr.Append(err, werr)
	}

	return err
}

func newContactsCmd(flags *globalFlags, run func(contactsParams) error) *cobra.Command {
	return &cobra.Command{
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}

			return run(contactsParams{
				files:  args,
				cfg:    cfg,
				stdout: cmd.OutOrStdout(),
			})
		},
	}
}

func newRequestCmd(flags *globalFlags) *cobra.Command {
	cmd := newContactsCmd(flags, runRequest)
	cmd.Use = "request FILE..."
	cmd.Short = "Print the upsert request of every contact"
	cmd.Long = `Read contact records from YAML or JSON files and print one upsert
request per contact: reserved fields at the top level, custom fields
under "custom" with their type-prefixed names.`

	cmd.Flags().BoolVar(&flags.noPrepend, "no-prepend", false,
		`do not wrap requests as {"contact": ...}`)

	return cmd
}

func newFieldsCmd(flags *globalFlags) *cobra.Command {
	cmd := newContactsCmd(flags, runFields)
	cmd.Use = "fields FILE..."
	cmd.Short = "Print the flat field mapping of every contact"

	return cmd
}

func newBulkCmd(flags *globalFlags) *cobra.Command {
	cmd := newContactsCmd(flags, runBulk)
	cmd.Use = "bulk FILE..."
	cmd.Short = "Print bulk upsert payloads of at most 100 contacts each"

	return cmd
}
