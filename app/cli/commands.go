// Package cli implements the blog-search command line: one-shot queries,
// option listing and an interactive search session.
package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lysyi3m/blog-search/app/post"
	"github.com/lysyi3m/blog-search/app/source"
	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"
)

const defaultUserAgent = "Blog Search/1.0"

type rootOptions struct {
	source        string
	path          string
	timeout       time.Duration
	previewLength int
	debug         bool
}

type queryOptions struct {
	category string
	author   string
	json     bool
	output   string
}

// QueryResult is the JSON document written by query --json and --output.
type QueryResult struct {
	Posts    []post.Item   `json:"posts"`
	Count    int           `json:"count"`
	Summary  string        `json:"summary"`
	Criteria post.Criteria `json:"criteria"`
}

func NewRootCommand(version string) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "search",
		Short:         "Search and filter blog posts",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if opts.debug {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.source, "source", string(source.KindSample), "Dataset source kind (sample, file, feed, sqlite)")
	flags.StringVar(&opts.path, "path", "", "Dataset file, feed path/URL or SQLite database path")
	flags.DurationVar(&opts.timeout, "timeout", 30*time.Second, "Timeout for fetching a remote feed")
	flags.IntVar(&opts.previewLength, "preview-length", post.DefaultPreviewLength, "Number of characters shown in content previews")
	flags.BoolVar(&opts.debug, "debug", false, "Enable debug logging")

	root.AddCommand(
		newQueryCommand(opts),
		newOptionsCommand(opts),
		newInteractiveCommand(opts),
	)

	return root
}

func (o *rootOptions) loadDataset(cmd *cobra.Command) (*post.Dataset, error) {
	if o.source != string(source.KindSample) && o.path == "" {
		return nil, fmt.Errorf("--path is required for source %q", o.source)
	}

	return source.Load(cmd.Context(), source.Options{
		Kind:      source.Kind(o.source),
		Path:      o.path,
		Timeout:   o.timeout,
		UserAgent: defaultUserAgent,
	})
}

func newQueryCommand(root *rootOptions) *cobra.Command {
	opts := &queryOptions{}

	cmd := &cobra.Command{
		Use:   "query [term]",
		Short: "Print the posts matching a search term and filters",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dataset, err := root.loadDataset(cmd)
			if err != nil {
				return err
			}

			criteria := post.Criteria{Category: opts.category, Author: opts.author}
			if len(args) == 1 {
				criteria.SearchTerm = args[0]
			}

			filtered := post.Filter(dataset.All(), criteria)
			result := QueryResult{
				Posts:    filtered,
				Count:    len(filtered),
				Summary:  post.Summary(len(filtered)),
				Criteria: criteria,
			}

			if opts.output != "" {
				if err := writeResult(opts.output, result); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), result.Summary)
				return nil
			}

			if opts.json {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(result)
			}

			printResults(cmd.OutOrStdout(), filtered, root.previewLength)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.category, "category", "", "Only posts in this category (exact match)")
	cmd.Flags().StringVar(&opts.author, "author", "", "Only posts by this author (exact match)")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Print the result as JSON")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write the JSON result to this file")

	return cmd
}

// writeResult replaces path atomically so readers never see a partial file.
func writeResult(path string, result QueryResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	if err := atomic.WriteFile(path, bytes.NewReader(append(data, '\n'))); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	slog.Debug("Result written", "path", path, "posts", result.Count)
	return nil
}

func newOptionsCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "List the categories and authors available for filtering",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dataset, err := root.loadDataset(cmd)
			if err != nil {
				return err
			}

			printOptions(cmd.OutOrStdout(), post.DeriveOptions(dataset.All()))
			return nil
		},
	}
}

func newInteractiveCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"i"},
		Short:   "Search interactively, re-running the filter after every change",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dataset, err := root.loadDataset(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			session := NewSession(dataset, root.previewLength, out)
			reader := newLineReader(cmd.InOrStdin(), out, session.complete)

			return RunInteractive(session, reader, out)
		},
	}
}

// Execute runs the root command and returns the process exit code.
func Execute(version string) int {
	if err := NewRootCommand(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}
