package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/p3rf/explorer/internal/document"
	"github.com/p3rf/explorer/internal/schema"
	"github.com/p3rf/explorer/pkg/types"
)

// docResult is the outcome for one document of a migrate or verify run.
type docResult struct {
	Path    string         `json:"path"`
	Line    int            `json:"line,omitempty"`
	Report  *schema.Report `json:"report,omitempty"`
	Version string         `json:"version,omitempty"`
	Current bool           `json:"current"`
	Error   string         `json:"error,omitempty"`
}

// label names the document by path, plus its line for JSONL files.
func (r docResult) label() string {
	if r.Line > 0 {
		return fmt.Sprintf("%s#%d", r.Path, r.Line)
	}
	return r.Path
}

// errSkippedLines is returned when --write would drop JSONL lines that Load
// could not parse.
var errSkippedLines = errors.New("file has lines that are not JSON objects")

// newDocResult labels the i-th document of file.
func newDocResult(path string, file document.File, i int) docResult {
	res := docResult{Path: path}
	if file.Format == document.FormatJSONL {
		res.Line = file.Lines[i]
	}
	return res
}

// warnSkipped logs the JSONL lines Load could not parse.
func warnSkipped(log logrus.FieldLogger, path string, file document.File) {
	if len(file.Skipped) == 0 {
		return
	}
	log.WithFields(logrus.Fields{"path": path, "lines": file.Skipped}).
		Warn("skipped lines that are not JSON objects")
}

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "migrate FILE...",
		Short: "Migrate documents to the latest schema version",
		Long: "Load each JSON, YAML, or JSONL file and migrate every document to the\n" +
			"latest schema version. With --write, files whose documents all migrated\n" +
			"are saved back in place. JSONL files with unparseable lines are not written.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			migrator := schema.NewMigrator(schema.DefaultRegistry(), schema.WithLogger(opts.log))

			var (
				results []docResult
				failed  *multierror.Error
				ioErr   bool
			)
			for _, path := range args {
				file, err := document.Load(path)
				if err != nil {
					failed = multierror.Append(failed, err)
					results = append(results, docResult{Path: path, Error: err.Error()})
					continue
				}
				warnSkipped(opts.log, path, file)

				fileOK := true
				for i, doc := range file.Docs {
					res := newDocResult(path, file, i)
					report, err := migrator.Migrate(doc)
					if err != nil {
						fileOK = false
						failed = multierror.Append(failed, fmt.Errorf("%s: %w", res.label(), err))
						res.Error = err.Error()
					} else {
						res.Report = &report
						res.Version = string(report.To)
						res.Current = true
					}
					results = append(results, res)
				}

				if write && fileOK && len(file.Skipped) > 0 {
					fileOK = false
					failed = multierror.Append(failed,
						fmt.Errorf("%s: not written: %w (lines %v)", path, errSkippedLines, file.Skipped))
				}
				if write && fileOK {
					if err := document.Save(path, file.Docs, file.Format); err != nil {
						failed = multierror.Append(failed, err)
						ioErr = true
						continue
					}
					opts.log.WithField("path", path).Info("saved migrated documents")
				}
			}

			if err := printMigrateResults(cmd.OutOrStdout(), results, opts.jsonMode); err != nil {
				return sysError(err)
			}
			if err := failed.ErrorOrNil(); err != nil {
				if ioErr {
					return sysError(err)
				}
				return userError(err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&write, "write", false, "write migrated documents back to their files")
	return cmd
}

func newVerifyCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "verify FILE...",
		Short: "Check documents against their declared schema version",
		Long:  "Check every document against its declared schema version without changing it.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			migrator := schema.NewMigrator(schema.DefaultRegistry(), schema.WithLogger(opts.log))

			var (
				results []docResult
				failed  *multierror.Error
			)
			for _, path := range args {
				file, err := document.Load(path)
				if err != nil {
					failed = multierror.Append(failed, err)
					results = append(results, docResult{Path: path, Error: err.Error()})
					continue
				}
				warnSkipped(opts.log, path, file)
				for i, doc := range file.Docs {
					res := newDocResult(path, file, i)
					id, err := migrator.Check(doc)
					res.Version = string(id)
					if err == nil {
						res.Current, err = migrator.Current(doc)
					}
					if err != nil {
						failed = multierror.Append(failed, fmt.Errorf("%s: %w", res.label(), err))
						res.Error = err.Error()
					}
					results = append(results, res)
				}
			}

			if err := printVerifyResults(cmd.OutOrStdout(), results, opts.jsonMode); err != nil {
				return sysError(err)
			}
			if err := failed.ErrorOrNil(); err != nil {
				return userError(err)
			}
			return nil
		},
	}
}

func printMigrateResults(w io.Writer, results []docResult, jsonMode bool) error {
	if jsonMode {
		return writeJSON(w, results)
	}
	for _, r := range results {
		if r.Error != "" {
			fmt.Fprintf(w, "%s: FAILED: %s\n", r.label(), r.Error)
			continue
		}
		applied := "none"
		if len(r.Report.Applied) > 0 {
			ids := make([]string, len(r.Report.Applied))
			for i, id := range r.Report.Applied {
				ids[i] = string(id)
			}
			applied = strings.Join(ids, ", ")
		}
		fmt.Fprintf(w, "%s: %s -> %s (applied: %s)\n", r.label(), r.Report.From, r.Report.To, applied)
	}
	return nil
}

func printVerifyResults(w io.Writer, results []docResult, jsonMode bool) error {
	if jsonMode {
		return writeJSON(w, results)
	}
	for _, r := range results {
		switch {
		case r.Error != "":
			fmt.Fprintf(w, "%s: INVALID: %s\n", r.label(), r.Error)
		case r.Current:
			fmt.Fprintf(w, "%s: ok at version %s (current)\n", r.label(), r.Version)
		default:
			fmt.Fprintf(w, "%s: ok at version %s (needs migration)\n", r.label(), r.Version)
		}
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// versionsString renders a version chain for help output.
func versionsString(ids []types.VersionID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = string(id)
	}
	return strings.Join(parts, " -> ")
}
