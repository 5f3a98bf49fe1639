package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"watchtrainer/internal/platform/markdown"
)

func newJournalCmd(opts *rootOptions) *cobra.Command {
	journal := &cobra.Command{Use: "journal", Short: "Workout journal notes"}

	var raw bool
	showCmd := &cobra.Command{
		Use:   "show [path]",
		Short: "Render a journal note (default: the journal index)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			path := filepath.Join(cfg.JournalDir, "index.md")
			if len(args) == 1 {
				path = args[0]
				if !filepath.IsAbs(path) {
					if _, err := os.Stat(path); err != nil {
						path = filepath.Join(cfg.JournalDir, path)
					}
				}
			}
			content, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read journal note: %w", err)
			}
			if raw {
				_, err = cmd.OutOrStdout().Write(content)
				return err
			}
			body, err := markdown.Parse(string(content), &map[string]any{})
			if err != nil {
				return err
			}
			renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
			if err != nil {
				return fmt.Errorf("create renderer: %w", err)
			}
			rendered, err := renderer.Render(body)
			if err != nil {
				return fmt.Errorf("render journal note: %w", err)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), rendered)
			return err
		},
	}
	showCmd.Flags().BoolVar(&raw, "raw", false, "print the markdown source")
	journal.AddCommand(showCmd)
	return journal
}
