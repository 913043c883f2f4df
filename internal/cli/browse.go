package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/macropower/turner/pkg/config"
	"github.com/macropower/turner/pkg/content"
	"github.com/macropower/turner/pkg/log"
	"github.com/macropower/turner/pkg/paginator"
	"github.com/macropower/turner/pkg/ui"
)

const cmdExamples = `  # Browse the current directory, one page at a time:
  turner

  # Browse a directory of content blocks:
  turner ./notes

  # Browse the sections of a single file:
  turner ./notes/inbox.txt

  # Show more blocks per page:
  turner ./notes -n 5

  # Re-read the source when it changes on disk:
  turner ./notes --watch

  # Send output to a file (disables TUI):
  turner ./notes > all.txt`

type BrowseArgs struct {
	*RootArgs

	Path         string
	ConfigPath   string
	ItemsPerPage int
	Watch        bool
	WriteConfig  bool
	ShowConfig   bool
}

func NewBrowseArgs(rootArgs *RootArgs) *BrowseArgs {
	return &BrowseArgs{
		RootArgs: rootArgs,
	}
}

func (ba *BrowseArgs) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&ba.ConfigPath, "config", "", "Path to the turner configuration file")
	cmd.Flags().IntVarP(&ba.ItemsPerPage, "items-per-page", "n", 0, "Number of blocks per page (overrides config)")
	cmd.Flags().BoolVarP(&ba.Watch, "watch", "w", false, "Watch for changes and reload")
	cmd.Flags().BoolVar(&ba.WriteConfig, "write-config", false, "Write the default configuration files and exit")
	cmd.Flags().BoolVar(&ba.ShowConfig, "show-config", false, "Print the active configuration and exit")

	err := cmd.MarkFlagFilename("config", "yaml", "yml")
	if err != nil {
		panic(fmt.Errorf("mark config flag: %w", err))
	}
}

func NewBrowseCmd(ba *BrowseArgs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse [path]",
		Short: "Default command, can be used explicitly",
		Args:  cobra.MaximumNArgs(1),
		ValidArgsFunction: func(*cobra.Command, []string, string) ([]cobra.Completion, cobra.ShellCompDirective) {
			return nil, cobra.ShellCompDirectiveDefault
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ba.Path = "."
			if len(args) > 0 {
				ba.Path = args[0]
			}

			return browse(cmd, ba)
		},
	}
	ba.AddFlags(cmd)

	bindEnvVars(cmd)

	return cmd
}

func browse(cmd *cobra.Command, ba *BrowseArgs) error {
	cfg := config.New()

	configPath := ba.ConfigPath
	if configPath == "" {
		configPath = config.GetPath()
	}

	err := config.WriteDefaultConfig(configPath, ba.WriteConfig)
	if err != nil {
		if ba.WriteConfig {
			return err
		}

		slog.Error("write default config", slog.Any("err", err))
	}
	if ba.WriteConfig {
		// Exit early after writing the default config.
		return nil
	}

	cl, err := config.NewLoaderFromFile(configPath, config.WithThemeFromData())
	if err != nil {
		slog.Warn("could not read config, using defaults", slog.Any("err", err))
	} else {
		err = cl.Validate()
		if err != nil {
			return fmt.Errorf("invalid config %q: %w", configPath, err)
		}

		cfg, err = cl.Load()
		if err != nil {
			return fmt.Errorf("invalid config %q: %w", configPath, err)
		}
	}

	applyFlagOverrides(cmd, cfg, ba)

	if ba.ShowConfig {
		slog.Info("active configuration", slog.String("path", configPath))

		yamlBytes, err := cfg.MarshalYAML()
		if err != nil {
			return fmt.Errorf("marshal config yaml: %w", err)
		}

		mustN(fmt.Fprintln(cmd.OutOrStdout(), string(yamlBytes)))

		return nil
	}

	src, err := content.NewSource(ba.Path)
	if err != nil {
		return fmt.Errorf("open content source: %w", err)
	}

	// If stdout is not a terminal, actually "concatenate".
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return writeToOutput(cmd, src)
	}

	logBuf := log.NewCircularBuffer(100)
	logHandler, err := log.CreateHandlerWithStrings(logBuf, ba.LogLevel, ba.LogFormat)
	if err != nil {
		return fmt.Errorf("create log handler: %w", err)
	}

	slog.SetDefault(slog.New(logHandler))

	err = runUI(cfg, src, ba.Path)
	if err != nil {
		slog.Error("run UI", slog.Any("err", err))
		flushLogs(cmd.ErrOrStderr(), logBuf)

		return fmt.Errorf("ui program failure: %w", err)
	}

	flushLogs(cmd.ErrOrStderr(), logBuf)

	return nil
}

// applyFlagOverrides lets command-line flags win over the config file.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config, ba *BrowseArgs) {
	if cmd.Flags().Changed("items-per-page") {
		cfg.Pagination.SetItemsPerPage(ba.ItemsPerPage)
	}
	if cmd.Flags().Changed("watch") {
		cfg.UI.Watch = &ba.Watch
	}
}

// writeToOutput concatenates all blocks to stdout, for piping.
func writeToOutput(cmd *cobra.Command, src content.Source) error {
	blocks, err := src.Blocks()
	if err != nil {
		return fmt.Errorf("read blocks: %w", err)
	}

	bodies := make([]string, 0, len(blocks))
	for _, b := range blocks {
		bodies = append(bodies, b.Body)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(bodies, "\n\n"))
	if err != nil {
		return fmt.Errorf("write to stdout: %w", err)
	}

	return nil
}

func flushLogs(w io.Writer, buf *log.CircularBuffer) {
	slog.Debug("flush logs to console",
		slog.Int("count", buf.Size()),
		slog.Int("max", buf.Capacity()),
		slog.Bool("truncated", buf.IsFull()),
	)

	_, err := buf.WriteTo(w)
	if err != nil {
		panic(err)
	}
}

// runUI starts the UI program and, when enabled, the file watcher feeding
// it change signals.
func runUI(cfg *config.Config, src content.Source, path string) error {
	p := ui.NewProgram(ui.Config{
		Source:    src,
		Theme:     cfg.UI.Theme,
		Common:    cfg.KeyBinds.Common,
		Paginator: cfg.KeyBinds.Paginator,
		Options: []paginator.Option{
			paginator.WithItemsPerPage(cfg.Pagination.ItemsPerPage),
			paginator.WithPrevLabel(cfg.Pagination.PrevLabel),
			paginator.WithNextLabel(cfg.Pagination.NextLabel),
		},
	})

	if cfg.UI.WatchEnabled() {
		w, err := content.NewWatcher(path)
		if err != nil {
			return fmt.Errorf("watch %q: %w", path, err)
		}

		defer func() {
			err := w.Close()
			if err != nil {
				slog.Error("close watcher", slog.Any("err", err))
			}
		}()

		go func() {
			for range w.Events() {
				p.Send(ui.SourceChangedMsg{})
			}
		}()
	}

	_, err := p.Run()
	if err != nil {
		return fmt.Errorf("tea: %w", err)
	}

	return nil
}
