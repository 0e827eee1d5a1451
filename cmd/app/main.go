package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"chell/internal/history"
	"chell/internal/manifest"
	"chell/internal/shell"
	"chell/internal/util"
)

const (
	DefaultRootPath   = "."
	DefaultConfigFile = "chell.toml"
)

var (
	// Version is the current version of the chell binary, overridden at link time.
	Version   = "dev"
	BuildDate = "unknown"
	Commit    = "unknown"
	help      bool
	version   bool
	// logging
	logLevel string
	logFile  string
	// config vars
	rootPath    string
	configFile  string
	historyPath string
	noColor     bool
)

func init() {
	flag.BoolVar(&help, "help", false, "Display help information and exit")
	flag.BoolVar(&help, "h", false, "Display help information and exit")
	flag.BoolVar(&version, "version", false, "Display version information and exit")
	flag.BoolVar(&version, "v", false, "Display version information and exit")
	// shell config
	flag.StringVar(&rootPath, "root", DefaultRootPath, "Set the root context for the session (used to locate the build manifest)")
	flag.StringVar(&configFile, "config", DefaultConfigFile, "Path to the rc file")
	flag.StringVar(&historyPath, "history", "", "History database path (overrides the rc file; empty disables history)")
	flag.BoolVar(&noColor, "no-color", false, "Disable ANSI colors in prompts and tracebacks")
	// log config
	flag.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flag.StringVar(&logFile, "log-file", "", "Log file path (if not set, logs to stderr)")
}

func main() {
	flag.Parse()

	config, err := util.LoadConfiguration(configFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	config.Version = Version
	config.BuildDate = BuildDate
	config.Commit = Commit
	config.RootPath = rootPath
	if logLevel != "" {
		config.LogLevel = logLevel
	}
	if logFile != "" {
		config.LogFile = logFile
	}
	if historyPath != "" {
		config.History = historyPath
	}
	if noColor {
		config.Color = false
	}

	// Creates a new Logger that uses a JSONHandler to write to standard output
	loggerOptions := &slog.HandlerOptions{
		AddSource: false,
		Level:     logLevelFromString(config.LogLevel),
	}
	logWriter := configureLogWriter(config.LogFile)
	defaultLogger := slog.New(slog.NewJSONHandler(logWriter, loggerOptions))
	slog.SetDefault(defaultLogger)

	if version {
		printVersion(config)
		return
	}

	if help {
		printHelp()
		return
	}

	sh := shell.New()
	sh.Color = config.Color

	if config.History != "" {
		store, err := history.Open(config.History)
		if err != nil {
			slog.Warn("history disabled", slog.Any("error", err))
		} else {
			defer store.Close()
			sh.History = store
		}
	}

	if err := sh.Run(); err != nil {
		slog.Error("shell terminated", slog.Any("error", err))
		os.Exit(1)
	}
}

func configureLogWriter(logFile string) *os.File {
	var logWriter *os.File
	var err error
	if logFile != "" {
		// Create parent directories if they don't exist
		if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "failed to create log directory for '%s': %v; falling back to stderr\n", logFile, err)
			return os.Stderr
		}
		logWriter, err = os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file '%s': %v; falling back to stderr\n", logFile, err)
			logWriter = os.Stderr
		}
	} else {
		logWriter = os.Stderr
	}
	return logWriter
}

func printVersion(config util.Configuration) {
	m, err := manifest.Load(manifest.CandidatePaths(config.RootPath)...)
	if err != nil {
		slog.Warn("build manifest unreadable", slog.Any("error", err))
		m = &manifest.Manifest{}
	}

	name := m.Name
	if name == "" {
		name = "chell"
	}
	release := m.Version
	if release == "" {
		release = config.Version
	}
	fmt.Printf("%s version 'v%s' %s %s\n", name, release, config.BuildDate, config.Commit)
}

func printHelp() {
	fmt.Printf(`Usage: chell [options]

Options:
  -root <path>       Set the root context for the session (used to locate the build manifest). Default is '.'
  -config <path>     Path to the rc file. Default is 'chell.toml'.
  -history <path>    History database path. Overrides the rc file.
  -no-color          Disable ANSI colors in prompts and tracebacks.
  -help              Display this help information and exit.
  -version           Display version information and exit.
  -log-level <level> Set the log level: debug, info, warn, error. Default is 'error'.
  -log-file <path>   Specify a log file to write logs. Default is stderr.

Details:
This is the chell interactive shell. Type 'exit' to leave the session.
Faults caught while a command runs are displayed as full tracebacks,
outermost call site first, faulting line last.

Examples:
  chell                         Start an interactive session
  chell -no-color               Start without ANSI colors
  chell -log-level=debug        Start with debug logging enabled

Version Information:
  Version:    %s
  Build Date: %s
  Commit:     %s
`, Version, BuildDate, Commit)
}

func logLevelFromString(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelError
	}
}
