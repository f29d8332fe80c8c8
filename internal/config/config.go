package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/atomicstack/menu-overlay/internal/app"
	"github.com/atomicstack/menu-overlay/internal/menu"
	"github.com/atomicstack/menu-overlay/internal/theme"
	"gopkg.in/yaml.v3"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

// File is the optional defaults file, written in YAML or TOML.
type File struct {
	MaxVisibleItems int             `yaml:"maxVisibleItems" toml:"maxVisibleItems"`
	Align           string          `yaml:"align" toml:"align"`
	Width           int             `yaml:"width" toml:"width"`
	Theme           theme.Overrides `yaml:"theme" toml:"theme"`
}

const (
	envInput       = "MENU_OVERLAY_INPUT"
	envFollow      = "MENU_OVERLAY_FOLLOW"
	envConfig      = "MENU_OVERLAY_CONFIG"
	envWidth       = "MENU_OVERLAY_WIDTH"
	envMaxVisible  = "MENU_OVERLAY_MAX_VISIBLE"
	envAlign       = "MENU_OVERLAY_ALIGN"
	envInteractive = "MENU_OVERLAY_INTERACTIVE"
	envTrace       = "MENU_OVERLAY_TRACE"
	envLogFile     = "MENU_OVERLAY_LOG_FILE"

	defaultWidth = 40
)

// usageOutput receives the flag summary printed for -h.
var usageOutput io.Writer = os.Stderr

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Precedence is
// flag, then environment, then the defaults file, then built-in defaults.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("menu-overlay", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	input := fs.String("input", envOrDefault(env, envInput, ""), "file or FIFO to read host messages from (default stdin)")
	follow := fs.Bool("follow", envOrBool(env, envFollow, false), "keep reading --input as the host appends to it")
	configPath := fs.String("config", envOrDefault(env, envConfig, ""), "path to a YAML or TOML defaults file")
	width := fs.Int("width", envOrInt(env, envWidth, defaultWidth), "menu width in cells")
	maxVisible := fs.Int("max-visible", envOrInt(env, envMaxVisible, menu.DefaultMaxVisibleItems), "rows shown when open omits maxVisibleItems")
	align := fs.String("align", envOrAlign(env, envAlign, menu.AlignStart), "placement when open omits align: start, center or end")
	interactive := fs.Bool("interactive", envOrBool(env, envInteractive, false), "navigate the menu from the keyboard")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(usageOutput, "Usage of %s:\n", fs.Name())
			fs.SetOutput(usageOutput)
			fs.PrintDefaults()
		}
		return Config{}, err
	}

	explicit := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
	// Blank or unparsable environment values count as unset, so the file
	// still applies.
	_, widthFromEnv := envInt(env, envWidth)
	_, maxVisibleFromEnv := envInt(env, envMaxVisible)
	_, alignFromEnv := envAlignValue(env, envAlign)
	fromFile := func(name string, fromEnv bool) bool {
		return !explicit[name] && !fromEnv
	}

	var themeOverrides theme.Overrides
	if *configPath != "" {
		file, err := ReadFile(*configPath)
		if err != nil {
			return Config{}, err
		}
		if file.Width != 0 && fromFile("width", widthFromEnv) {
			*width = file.Width
		}
		if file.MaxVisibleItems != 0 && fromFile("max-visible", maxVisibleFromEnv) {
			*maxVisible = file.MaxVisibleItems
		}
		if file.Align != "" && fromFile("align", alignFromEnv) {
			*align = file.Align
		}
		themeOverrides = file.Theme
	}

	cfg := Config{
		App: app.Config{
			InputPath:       *input,
			Follow:          *follow,
			Width:           *width,
			MaxVisibleItems: *maxVisible,
			Align:           menu.Align(strings.ToLower(strings.TrimSpace(*align))),
			Interactive:     *interactive,
			Theme:           themeOverrides,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"input":       *input,
			"follow":      strconv.FormatBool(*follow),
			"config":      *configPath,
			"width":       strconv.Itoa(*width),
			"maxVisible":  strconv.Itoa(*maxVisible),
			"align":       *align,
			"interactive": strconv.FormatBool(*interactive),
			"trace":       strconv.FormatBool(*trace),
			"logFile":     *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// ReadFile decodes a defaults file. Files ending in .toml are TOML, anything
// else is YAML. Unknown keys are rejected.
func ReadFile(path string) (File, error) {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return readTOML(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return File{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	var file File
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return file, nil
}

func readTOML(path string) (File, error) {
	var file File
	md, err := toml.DecodeFile(path, &file)
	if err != nil {
		return File{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return File{}, fmt.Errorf("parse config %s: unknown key %q", path, undecoded[0].String())
	}
	return file, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

// envInt reports the integer in env[key], or false when it is missing,
// blank or not a number.
func envInt(env map[string]string, key string) (int, bool) {
	v := strings.TrimSpace(env[key])
	if v == "" {
		return 0, false
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return parsed, true
}

func envOrInt(env map[string]string, key string, fallback int) int {
	if v, ok := envInt(env, key); ok {
		return v
	}
	return fallback
}

func envAlignValue(env map[string]string, key string) (menu.Align, bool) {
	v := strings.TrimSpace(env[key])
	if v == "" {
		return "", false
	}
	return menu.ParseAlign(v)
}

func envOrAlign(env map[string]string, key string, fallback menu.Align) string {
	if v, ok := envAlignValue(env, key); ok {
		return string(v)
	}
	return string(fallback)
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v := strings.TrimSpace(env[key])
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects values the overlay cannot render with.
func Validate(cfg Config) error {
	if cfg.App.Width < 0 {
		return fmt.Errorf("width must be >= 0 (got %d)", cfg.App.Width)
	}
	if cfg.App.MaxVisibleItems < 1 {
		return fmt.Errorf("max-visible must be >= 1 (got %d)", cfg.App.MaxVisibleItems)
	}
	if _, ok := menu.ParseAlign(string(cfg.App.Align)); !ok {
		return fmt.Errorf("align must be start, center or end (got %q)", cfg.App.Align)
	}
	if cfg.App.Follow && strings.TrimSpace(cfg.App.InputPath) == "" {
		return errors.New("follow needs --input")
	}
	if cfg.App.Interactive && strings.TrimSpace(cfg.App.InputPath) == "" {
		return errors.New("interactive mode needs --input: stdin is used for the keyboard")
	}
	return nil
}
