package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bjaus/formdata"
)

type options struct {
	forms            []string
	manifest         string
	boundary         string
	output           string
	printContentType bool
	verbose          bool
}

// Execute runs the formdata command with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd returns the formdata command.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "formdata",
		Short: "Write a multipart/form-data body",
		Long: `Write a multipart/form-data body built from form fields and files.

Fields are written in the order given: manifest fields first, then -F flags.

Examples:
  formdata -F greeting=hello -F photo=@me.png;type=image/png > body
  formdata -m upload.yaml -o body --print-content-type
  formdata -b XBOUND -F a=1 -F b=2

Manifest:
  boundary: XBOUND
  fields:
    - name: greeting
      value: hello
    - name: photo
      file: me.png
      filename: avatar.png
      content_type: image/png`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringArrayVarP(&opts.forms, "form", "F", nil, "form field: name=value or name=@path[;type=mime[;param=value]][;filename=name]")
	f.StringVarP(&opts.manifest, "manifest", "m", "", "YAML manifest listing the fields")
	f.StringVarP(&opts.boundary, "boundary", "b", "", "multipart boundary (default random)")
	f.StringVarP(&opts.output, "output", "o", "", "write the body to this file instead of stdout")
	f.BoolVar(&opts.printContentType, "print-content-type", false, "print the Content-Type header value to stderr")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log every field appended")

	return cmd
}

func run(cmd *cobra.Command, opts *options) (err error) {
	log := newLogger(cmd.ErrOrStderr(), opts.verbose)

	var specs []fieldSpec
	boundary := opts.boundary
	if opts.manifest != "" {
		m, err := loadManifest(opts.manifest)
		if err != nil {
			return err
		}
		specs = append(specs, m.Fields...)
		if boundary == "" {
			boundary = m.Boundary
		}
	}
	for _, s := range opts.forms {
		spec, err := parseFormSpec(s)
		if err != nil {
			return err
		}
		specs = append(specs, spec)
	}

	if boundary == "" {
		if boundary, err = formdata.GenerateBoundary(); err != nil {
			return err
		}
	} else if err := formdata.ValidateBoundary(boundary); err != nil {
		return err
	}

	var out io.Writer = cmd.OutOrStdout()
	if opts.output != "" && opts.output != "-" {
		// The body goes to a temp file next to the output and replaces it
		// only once complete.
		f, ferr := os.CreateTemp(filepath.Dir(opts.output), "."+filepath.Base(opts.output)+".*")
		if ferr != nil {
			return fmt.Errorf("failed to create output: %w", ferr)
		}
		defer func() {
			if cerr := f.Close(); err == nil && cerr != nil {
				err = fmt.Errorf("failed to close output: %w", cerr)
			}
			if err == nil {
				if rerr := os.Rename(f.Name(), opts.output); rerr != nil {
					err = fmt.Errorf("failed to write output: %w", rerr)
				}
			}
			if err != nil {
				_ = os.Remove(f.Name())
			}
		}()
		out = f
	}

	fw := formdata.NewWithBoundary(out, boundary)
	for _, spec := range specs {
		field, err := spec.field()
		if err != nil {
			return err
		}
		log.WithFields(logrus.Fields{
			"name": spec.Name,
			"file": spec.File,
		}).Debug("appending field")
		if err := fw.Append(field); err != nil {
			return fmt.Errorf("failed to append field %q: %w", spec.Name, err)
		}
	}
	if _, err := fw.End(); err != nil {
		return fmt.Errorf("failed to finish body: %w", err)
	}
	log.WithFields(logrus.Fields{
		"fields":   len(specs),
		"boundary": boundary,
	}).Debug("form written")

	if opts.printContentType {
		if _, err := fmt.Fprintln(cmd.ErrOrStderr(), fw.ContentType()); err != nil {
			return err
		}
	}
	return nil
}

func newLogger(w io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(logrus.WarnLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}
