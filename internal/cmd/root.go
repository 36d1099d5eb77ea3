package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/harrison/fls/internal/config"
	"github.com/harrison/fls/internal/display"
	"github.com/harrison/fls/internal/fileutil"
	"github.com/harrison/fls/internal/logger"
	"github.com/harrison/fls/internal/style"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for fls
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fls [path]",
		Short: "List directory contents with metadata, colors and trees",
		Long: `fls lists a directory with human-readable metadata.

By default it prints one name per line. --long shows a table with type,
permissions, owner, item count, size and modification time. --tree shows
the directory recursively, bounded by --depth and a fixed safety ceiling.
--json prints the listing as machine-readable JSON.

Configuration is loaded from $XDG_CONFIG_HOME/fls/config.yaml if present.
CLI flags override configuration file settings.

Examples:
  fls
  fls -la ~/src
  fls -t -L 2 /etc
  fls --json . | jq '.[].name'`,
		Version: Version,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runList,
		// Silence usage on errors to avoid duplicate help text;
		// main prints the error itself.
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().BoolP("all", "a", false, "Show hidden entries (names starting with '.')")
	cmd.Flags().BoolP("long", "l", false, "Show a table with metadata columns")
	cmd.Flags().BoolP("tree", "t", false, "Show the directory recursively as a tree")
	cmd.Flags().IntP("depth", "L", 0, "Maximum tree depth (0 = up to the safety ceiling)")
	cmd.Flags().BoolP("interactive", "i", false, "Make names clickable file:// hyperlinks")
	cmd.Flags().Bool("json", false, "Print the listing as JSON")
	cmd.Flags().String("color", config.ColorAuto, "When to use colors: auto, always, never")
	cmd.Flags().String("scheme", style.DefaultScheme, "Color scheme: default, high-contrast, monochrome, solarized")
	cmd.Flags().Bool("relative-time", false, "Show modification times as \"3 days ago\"")
	cmd.Flags().String("config", "", "Path to config file (default: $XDG_CONFIG_HOME/fls/config.yaml)")
	cmd.Flags().String("log-level", "", "Diagnostic verbosity on stderr: trace, debug, info, warn, error")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	path := "."
	if len(args) == 1 {
		path = args[0]
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	cfg.MergeWithFlags(flagOverrides(cmd))
	if err := cfg.Validate(style.SchemeNames()); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	out := cmd.OutOrStdout()
	colors := colorEnabled(cfg.Color, out)

	log := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	switch cfg.Color {
	case config.ColorNever:
		log.WithColor(false)
	case config.ColorAlways:
		log.WithColor(true)
	}

	scheme, err := style.NewScheme(cfg.Scheme, colors)
	if err != nil {
		return err
	}
	log.LogDebug(fmt.Sprintf("using scheme %s (colors: %t)", scheme.Name, colors))

	asJSON := jsonOutput(cmd)
	renderer := &display.Renderer{
		Out: out,
		Err: cmd.ErrOrStderr(),
		Lister: fileutil.NewLister(fileutil.Options{
			CountItems: cfg.Long || asJSON,
			Logger:     log,
		}),
		Scheme: scheme,
		Options: display.Options{
			ShowHidden:   cfg.ShowHidden,
			Long:         cfg.Long,
			Tree:         cfg.Tree,
			JSON:         asJSON,
			Interactive:  cfg.Interactive,
			RelativeTime: cfg.RelativeTime,
			Depth:        cfg.Depth,
		},
		Logger: log,
	}
	return renderer.Render(path)
}

// loadConfig reads --config when given, else the default location. An
// explicitly named file must exist; a missing default file means defaults.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath != "" {
		if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s", configPath)
		}
		return config.LoadConfig(configPath)
	}

	defaultPath, err := config.DefaultPath()
	if err != nil {
		// No home or config directory; run with defaults.
		return config.DefaultConfig(), nil
	}
	return config.LoadConfig(defaultPath)
}

// flagOverrides collects the flags the user actually set.
func flagOverrides(cmd *cobra.Command) config.Flags {
	var f config.Flags
	flags := cmd.Flags()

	boolFlag := func(name string) *bool {
		if !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetBool(name)
		return &v
	}
	stringFlag := func(name string) *string {
		if !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetString(name)
		return &v
	}

	f.ShowHidden = boolFlag("all")
	f.Long = boolFlag("long")
	f.Tree = boolFlag("tree")
	f.Interactive = boolFlag("interactive")
	f.RelativeTime = boolFlag("relative-time")
	f.Color = stringFlag("color")
	f.Scheme = stringFlag("scheme")
	f.LogLevel = stringFlag("log-level")
	if flags.Changed("depth") {
		depth, _ := flags.GetInt("depth")
		f.Depth = &depth
	}
	return f
}

func jsonOutput(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("json")
	return v
}

// colorEnabled resolves a color mode for the given writer. In auto mode
// colors are used only for a terminal and only when NO_COLOR is unset.
func colorEnabled(mode string, out io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
