package cli

import (
	"fmt"

	"github.com/ariel-frischer/ccperms/internal/config"
	"github.com/ariel-frischer/ccperms/internal/extract"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type extractOptions struct {
	dir    string
	prefix string
}

// NewExtractCommand builds the ccextract root command.
func NewExtractCommand(cfg *config.Configuration) *cobra.Command {
	opts := &extractOptions{}

	cmd := &cobra.Command{
		Use:   "ccextract [flags]",
		Short: "Extract permission patterns from markdown catalogs",
		Long: `Convert markdown files with command patterns to JSON permission
files.

Each matching markdown file is scanned for bullet points (* or -)
containing a backtick-wrapped command pattern. The patterns become the
allow list of a sibling .json file with the same base name. Lines
without a bullet marker or without backticks are ignored.

Files are converted independently: an unreadable file is reported and
skipped, the rest are still processed.`,
		Example: `  # Convert all gh-*.md files in the current directory
  ccextract

  # Convert catalogs in a different directory
  ccextract --dir ./permissions

  # Use a different filename prefix
  ccextract --prefix aws-`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExtract(cmd, opts)
		},
	}

	cmd.Version = Version
	cmd.Flags().StringVar(&opts.dir, "dir", cfg.Dir, "Directory to scan for markdown files")
	cmd.Flags().StringVar(&opts.prefix, "prefix", cfg.Prefix, "Filename prefix to match")

	return cmd
}

func runExtract(cmd *cobra.Command, opts *extractOptions) error {
	results, err := extract.ConvertDir(opts.dir, opts.prefix)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(results) == 0 {
		fmt.Fprintf(out, "No %s*.md files found in %s\n", opts.prefix, opts.dir)
		return nil
	}

	fmt.Fprintf(out, "Found %d markdown files to process\n", len(results))

	created := 0
	for _, res := range results {
		if res.Err != nil {
			color.New(color.FgRed).Fprintf(out, "  ✗ %s: %v\n", res.Source, res.Err)
			continue
		}
		fmt.Fprintf(out, "  ✓ Created %s with %d patterns\n", res.Output, res.Patterns)
		created++
	}

	fmt.Fprintf(out, "Done: %d of %d files converted\n", created, len(results))
	return nil
}

// ExecuteExtract runs the ccextract command against os.Args.
func ExecuteExtract() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	return NewExtractCommand(cfg).Execute()
}
