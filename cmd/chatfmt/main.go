// Package main is the entry point for the chatfmt CLI.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/flemzord/chatfmt/internal/config"
	"github.com/flemzord/chatfmt/pkg/border"
	"github.com/flemzord/chatfmt/pkg/format"
	"github.com/flemzord/chatfmt/pkg/pagify"
	"github.com/spf13/cobra"
)

// Set by goreleaser ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "chatfmt:", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "chatfmt",
		Short:         "Format text for chat platforms: paginate, border, escape",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringP("config", "c", "", "Path to configuration file")
	root.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	root.AddCommand(versionCmd(), pagifyCmd(), borderCmd(), escapeCmd(), quoteCmd())
	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("chatfmt %s (commit: %s, built: %s)\n", version, commit, date)
		},
	}
}

func pagifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pagify [file]",
		Short: "Split text into message-sized pages",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd)
			cfg, err := loadConfig(cmd, logger)
			if err != nil {
				return err
			}
			opts := cfg.Options()

			flags := cmd.Flags()
			if flags.Changed("length") {
				opts.PageLength, _ = flags.GetInt("length")
			}
			if flags.Changed("shorten-by") {
				opts.ShortenBy, _ = flags.GetInt("shorten-by")
			}
			if flags.Changed("delim") {
				delims, _ := flags.GetStringArray("delim")
				opts.Delims = unescapeDelims(delims)
			}
			if flags.Changed("priority") {
				opts.Priority, _ = flags.GetBool("priority")
			}
			if flags.Changed("escape-mentions") {
				opts.EscapeMassMentions, _ = flags.GetBool("escape-mentions")
			}

			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			separator, _ := flags.GetString("separator")
			pager := pagify.New(text, opts)
			count := 0
			for {
				page, ok := pager.Next()
				if !ok {
					break
				}
				if count > 0 {
					fmt.Fprintln(cmd.OutOrStdout(), separator)
				}
				fmt.Fprintln(cmd.OutOrStdout(), page)
				count++
			}
			logger.Debug("pagify complete", "pages", count, "page_length", opts.PageLength)
			return nil
		},
	}
	cmd.Flags().Int("length", 0, "Maximum page length in bytes")
	cmd.Flags().Int("shorten-by", 0, "Headroom reserved on every page")
	cmd.Flags().StringArray("delim", nil, `Page-break delimiter (repeatable, \n and \t are unescaped)`)
	cmd.Flags().Bool("priority", false, "Break at the first listed delimiter with a match")
	cmd.Flags().Bool("escape-mentions", true, "Neutralize @everyone and @here in pages")
	cmd.Flags().String("separator", "---", "Separator printed between pages")
	return cmd
}

func borderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "border [file...]",
		Short: "Render files as bordered columns, side by side",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd)
			cfg, err := loadConfig(cmd, logger)
			if err != nil {
				return err
			}
			ascii := cfg.Border.ASCII
			if cmd.Flags().Changed("ascii") {
				ascii, _ = cmd.Flags().GetBool("ascii")
			}

			var columns [][]string
			if len(args) == 0 {
				text, err := readInput(cmd, nil)
				if err != nil {
					return err
				}
				columns = append(columns, splitLines(text))
			}
			for _, path := range args {
				raw, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("reading column %s: %w", path, err)
				}
				columns = append(columns, splitLines(string(raw)))
			}

			fmt.Fprintln(cmd.OutOrStdout(), border.Render(columns, ascii))
			return nil
		},
	}
	cmd.Flags().Bool("ascii", false, "Draw borders with +, -, | instead of box-drawing glyphs")
	return cmd
}

func escapeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "escape [file]",
		Short: "Escape mass mentions and/or markdown in text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			massMentions, _ := cmd.Flags().GetBool("mass-mentions")
			markdown, _ := cmd.Flags().GetBool("markdown")
			fmt.Fprintln(cmd.OutOrStdout(), format.Escape(text, massMentions, markdown))
			return nil
		},
	}
	cmd.Flags().Bool("mass-mentions", true, "Neutralize @everyone and @here")
	cmd.Flags().Bool("markdown", false, "Backslash-escape markdown control characters")
	return cmd
}

func quoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quote [file]",
		Short: "Prefix every line with a markdown quote marker",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), format.Quote(text))
			return nil
		},
	}
}

// newLogger builds the CLI logger. Debug level when --verbose is set.
func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	}))
}

// loadConfig loads the configuration named by --config, or the first config
// file found in the standard locations. Absence of a config file is not an
// error: built-in defaults apply.
func loadConfig(cmd *cobra.Command, logger *slog.Logger) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = resolveConfigPath()
	}
	if path == "" {
		return config.Default(), nil
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	logger.Debug("loaded config", "path", path)
	return cfg, nil
}

// resolveConfigPath searches the standard locations for a config file.
// Search order: $XDG_CONFIG_HOME/chatfmt/chatfmt.yaml → ./chatfmt.yaml
func resolveConfigPath() string {
	var candidates []string

	if xdg, ok := os.LookupEnv("XDG_CONFIG_HOME"); ok {
		candidates = append(candidates, filepath.Join(xdg, "chatfmt", "chatfmt.yaml"))
	} else if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", "chatfmt", "chatfmt.yaml"))
	}

	candidates = append(candidates, "chatfmt.yaml")

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// readInput returns the contents of the file named in args, or stdin when no
// file (or "-") is given.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return string(raw), nil
	}
	raw, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(raw), nil
}

// splitLines splits file contents into column lines, dropping a single
// trailing newline so files do not grow a phantom empty line.
func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// unescapeDelims turns the literal \n and \t typed on a command line into
// real control characters.
func unescapeDelims(delims []string) []string {
	out := make([]string, len(delims))
	for i, d := range delims {
		d = strings.ReplaceAll(d, `\n`, "\n")
		d = strings.ReplaceAll(d, `\t`, "\t")
		out[i] = d
	}
	return out
}
