package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/atomicstack/tmux-ui/internal/logging"
	"github.com/atomicstack/tmux-ui/internal/tmux"
	"github.com/atomicstack/tmux-ui/internal/ui"
	"github.com/spf13/pflag"
)

// Config captures runtime configuration for the application.
type Config struct {
	SocketPath    string
	ConfigPath    string
	AutoRefresh   time.Duration
	CountFallback int
	Width         int
	Height        int
	Keys          map[string][]string
	Logging       Logging
}

type Logging struct {
	FilePath string
	Level    string
	Trace    bool
}

const (
	envSocketPath    = "TMUX_UI_SOCKET"
	envConfigPath    = "TMUX_UI_CONFIG"
	envLogFile       = "TMUX_UI_LOG_FILE"
	envLogLevel      = "TMUX_UI_LOG_LEVEL"
	envTrace         = "TMUX_UI_TRACE"
	envAutoRefresh   = "TMUX_UI_AUTO_REFRESH"
	envCountFallback = "TMUX_UI_COUNT_FALLBACK"
	envWidth         = "TMUX_UI_WIDTH"
	envHeight        = "TMUX_UI_HEIGHT"

	flagSocket        = "socket"
	flagConfig        = "config"
	flagLogFile       = "log-file"
	flagLogLevel      = "log-level"
	flagTrace         = "trace"
	flagAutoRefresh   = "auto-refresh"
	flagCountFallback = "count-fallback"
	flagWidth         = "width"
	flagHeight        = "height"

	defaultLogLevel = "info"
)

// fileConfig mirrors config.toml. Pointer fields distinguish "unset" from the
// zero value so the file only overrides what it names.
type fileConfig struct {
	Socket        *string             `toml:"socket"`
	AutoRefresh   *string             `toml:"auto_refresh"`
	CountFallback *int                `toml:"count_fallback"`
	Width         *int                `toml:"width"`
	Height        *int                `toml:"height"`
	Log           fileLogging         `toml:"log"`
	Keys          map[string][]string `toml:"keys"`
}

type fileLogging struct {
	File  *string `toml:"file"`
	Level *string `toml:"level"`
	Trace *bool   `toml:"trace"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		CountFallback: tmux.DefaultCountFallback,
		Logging: Logging{
			Level: defaultLogLevel,
		},
	}
}

// RegisterFlags declares the configuration flags. Flags the user did not set
// never override lower-precedence sources.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String(flagSocket, "", "path to the tmux socket (overrides environment detection)")
	flags.String(flagConfig, "", "path to the config file (default $XDG_CONFIG_HOME/tmux-ui/config.toml)")
	flags.String(flagLogFile, "", "path to the log file")
	flags.String(flagLogLevel, "", "log level (trace, debug, info, warn, error)")
	flags.Bool(flagTrace, false, "enable verbose JSON trace logging")
	flags.Duration(flagAutoRefresh, 0, "refresh the session list at this interval while viewing (0 disables)")
	flags.Int(flagCountFallback, tmux.DefaultCountFallback, "count used when tmux reports an unparsable window or pane count")
	flags.Int(flagWidth, 0, "desired viewport width in cells (0 uses terminal width)")
	flags.Int(flagHeight, 0, "desired viewport height in rows (0 uses terminal height)")
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	flags := pflag.NewFlagSet("tmux-ui", pflag.ContinueOnError)
	flags.SetOutput(new(strings.Builder))
	RegisterFlags(flags)
	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}
	return FromFlags(flags, environ)
}

// FromFlags resolves configuration with the precedence flag > environment >
// config file > default.
func FromFlags(flags *pflag.FlagSet, environ []string) (Config, error) {
	env := parseEnv(environ)
	cfg := Default()

	path, explicit := configPath(flags, env)
	cfg.ConfigPath = path
	if path != "" {
		file, err := readFile(path)
		if err != nil && (explicit || !errors.Is(err, fs.ErrNotExist)) {
			return Config{}, err
		}
		if err == nil {
			if err := file.apply(&cfg); err != nil {
				return Config{}, fmt.Errorf("config %s: %w", path, err)
			}
		}
	}

	cfg.SocketPath = envOrDefault(env, envSocketPath, cfg.SocketPath)
	cfg.Logging.FilePath = envOrDefault(env, envLogFile, cfg.Logging.FilePath)
	cfg.Logging.Level = envOrDefault(env, envLogLevel, cfg.Logging.Level)
	cfg.Logging.Trace = envOrBool(env, envTrace, cfg.Logging.Trace)
	cfg.AutoRefresh = envOrDuration(env, envAutoRefresh, cfg.AutoRefresh)
	cfg.CountFallback = envOrInt(env, envCountFallback, cfg.CountFallback)
	cfg.Width = envOrInt(env, envWidth, cfg.Width)
	cfg.Height = envOrInt(env, envHeight, cfg.Height)

	if flags.Changed(flagSocket) {
		cfg.SocketPath, _ = flags.GetString(flagSocket)
	}
	if flags.Changed(flagLogFile) {
		cfg.Logging.FilePath, _ = flags.GetString(flagLogFile)
	}
	if flags.Changed(flagLogLevel) {
		cfg.Logging.Level, _ = flags.GetString(flagLogLevel)
	}
	if flags.Changed(flagTrace) {
		cfg.Logging.Trace, _ = flags.GetBool(flagTrace)
	}
	if flags.Changed(flagAutoRefresh) {
		cfg.AutoRefresh, _ = flags.GetDuration(flagAutoRefresh)
	}
	if flags.Changed(flagCountFallback) {
		cfg.CountFallback, _ = flags.GetInt(flagCountFallback)
	}
	if flags.Changed(flagWidth) {
		cfg.Width, _ = flags.GetInt(flagWidth)
	}
	if flags.Changed(flagHeight) {
		cfg.Height, _ = flags.GetInt(flagHeight)
	}
	return cfg, nil
}

func configPath(flags *pflag.FlagSet, env map[string]string) (string, bool) {
	if flags.Changed(flagConfig) {
		path, _ := flags.GetString(flagConfig)
		return path, true
	}
	if path := strings.TrimSpace(env[envConfigPath]); path != "" {
		return path, true
	}
	return DefaultPath(env), false
}

// DefaultPath returns $XDG_CONFIG_HOME/tmux-ui/config.toml, falling back to
// ~/.config when XDG_CONFIG_HOME is unset.
func DefaultPath(env map[string]string) string {
	base := strings.TrimSpace(env["XDG_CONFIG_HOME"])
	if base == "" {
		home := strings.TrimSpace(env["HOME"])
		if home == "" {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "tmux-ui", "config.toml")
}

func readFile(path string) (fileConfig, error) {
	var file fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return file, err
	}
	if _, err := toml.Decode(string(data), &file); err != nil {
		return file, fmt.Errorf("config %s: %w", path, err)
	}
	return file, nil
}

func (f fileConfig) apply(cfg *Config) error {
	if f.Socket != nil {
		cfg.SocketPath = *f.Socket
	}
	if f.AutoRefresh != nil {
		d, err := time.ParseDuration(*f.AutoRefresh)
		if err != nil {
			return fmt.Errorf("auto_refresh: %w", err)
		}
		cfg.AutoRefresh = d
	}
	if f.CountFallback != nil {
		cfg.CountFallback = *f.CountFallback
	}
	if f.Width != nil {
		cfg.Width = *f.Width
	}
	if f.Height != nil {
		cfg.Height = *f.Height
	}
	if f.Log.File != nil {
		cfg.Logging.FilePath = *f.Log.File
	}
	if f.Log.Level != nil {
		cfg.Logging.Level = *f.Log.Level
	}
	if f.Log.Trace != nil {
		cfg.Logging.Trace = *f.Log.Trace
	}
	if len(f.Keys) > 0 {
		cfg.Keys = f.Keys
	}
	return nil
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
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// Validate rejects values the rest of the program cannot honour.
func Validate(cfg Config) error {
	if cfg.CountFallback < 0 {
		return fmt.Errorf("count fallback must be >= 0 (got %d)", cfg.CountFallback)
	}
	if cfg.Width < 0 {
		return fmt.Errorf("width must be >= 0 (got %d)", cfg.Width)
	}
	if cfg.Height < 0 {
		return fmt.Errorf("height must be >= 0 (got %d)", cfg.Height)
	}
	if cfg.AutoRefresh < 0 {
		return fmt.Errorf("auto refresh must be >= 0 (got %s)", cfg.AutoRefresh)
	}
	if _, err := logging.ParseLevel(cfg.Logging.Level); err != nil {
		return err
	}
	if _, err := cfg.KeyMap(); err != nil {
		return err
	}
	return nil
}

// KeyMap returns the default key map with the configured overrides applied.
func (c Config) KeyMap() (ui.KeyMap, error) {
	keys := ui.DefaultKeyMap()
	if err := keys.Apply(c.Keys); err != nil {
		return ui.KeyMap{}, err
	}
	return keys, nil
}
