package cli

import (
	"fmt"

	"github.com/ariel-frischer/ccperms/internal/config"
	"github.com/ariel-frischer/ccperms/internal/settings"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type mergeOptions struct {
	output   string
	indent   int
	compact  bool
	noBackup bool
	force    bool
}

// NewMergeCommand builds the ccmerge root command. Flag defaults come
// from the resolved tool configuration.
func NewMergeCommand(cfg *config.Configuration) *cobra.Command {
	opts := &mergeOptions{}

	cmd := &cobra.Command{
		Use:   "ccmerge [flags] <file|glob>...",
		Short: "Merge Claude Code settings files",
		Long: `Merge multiple Claude settings.json files by combining their
permission lists.

The allow and deny lists of every input are concatenated in argument
order with duplicates removed, so each entry keeps the position of its
first appearance. All other settings (model, sandbox, ...) are taken
from the first file only. Arguments may be literal paths or glob
patterns; every pattern must match at least one file.`,
		Example: `  # Merge two settings files to stdout
  ccmerge settings1.json settings2.json

  # Merge a base file with generated permission files
  ccmerge base.json gh-*.json -o merged.json

  # Compact output, no backup of an existing merged.json
  ccmerge *.json -o merged.json --compact --force`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMerge(cmd, args, opts)
		},
	}

	cmd.Version = Version
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file path (default: print to stdout)")
	cmd.Flags().IntVar(&opts.indent, "indent", cfg.Indent, "JSON indentation spaces")
	cmd.Flags().BoolVar(&opts.compact, "compact", false, "Output compact JSON without indentation")
	cmd.Flags().BoolVar(&opts.noBackup, "no-backup", !cfg.Backup, "Do not create *.bak backup when output file exists")
	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Alias for --no-backup")

	return cmd
}

func runMerge(cmd *cobra.Command, args []string, opts *mergeOptions) error {
	if opts.indent < 0 {
		return fmt.Errorf("indent must be non-negative, got %d", opts.indent)
	}

	files, err := settings.ResolveInputs(args)
	if err != nil {
		return err
	}

	stderr := cmd.ErrOrStderr()
	fmt.Fprintf(stderr, "Merging %d files...\n", len(files))

	merged, err := settings.MergeFiles(files)
	if err != nil {
		return err
	}

	data, err := settings.Encode(merged, settings.EncodeOptions{
		Indent:  opts.indent,
		Compact: opts.compact,
	})
	if err != nil {
		return err
	}

	if opts.output == "" {
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	}

	backup := !opts.noBackup && !opts.force
	backupPath, err := settings.WriteFile(opts.output, data, backup)
	if err != nil {
		return err
	}
	if backupPath != "" {
		fmt.Fprintf(stderr, "Created backup '%s'\n", backupPath)
	}
	color.New(color.FgGreen).Fprintf(stderr, "Successfully wrote merged settings to '%s'\n", opts.output)
	return nil
}

// ExecuteMerge runs the ccmerge command against os.Args.
func ExecuteMerge() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	return NewMergeCommand(cfg).Execute()
}
