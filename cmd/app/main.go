package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"lispy/internal/history"
	"lispy/internal/log"
	"lispy/internal/repl"
	"lispy/internal/util"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
)

var (
	// Version is stamped at build time with -ldflags.
	Version   = "dev"
	BuildDate = "unknown"
	Commit    = "unknown"
	help      bool
	version   bool
	// config file
	configPath string
	// logging
	logLevel string
	logFile  string
	// config vars
	prompt       string
	noColor      bool
	historyDSN   string
	historySize  int
	maxDepth     int
	maxLineBytes int
	debugAST     bool
	debugJsonAST bool
	httpAddr     string
)

func init() {
	flag.BoolVar(&help, "help", false, "Display help information and exit")
	flag.BoolVar(&help, "h", false, "Display help information and exit")
	flag.BoolVar(&version, "version", false, "Display version information and exit")
	flag.BoolVar(&version, "v", false, "Display version information and exit")
	flag.StringVar(&configPath, "config", "", "Path to a TOML config file (default $LISPY_HOME/lispy.toml)")
	// repl config
	flag.StringVar(&prompt, "prompt", util.DefaultPrompt, "Prompt shown before each line")
	flag.BoolVar(&noColor, "no-color", false, "Do not colour error output")
	flag.StringVar(&historyDSN, "history", "", "History store: memory:, sqlite:<path>, mysql:<dsn> or postgres://...")
	flag.IntVar(&historySize, "history-size", util.DefaultHistorySize, "Number of history lines to keep and reload (0 for all)")
	flag.StringVar(&httpAddr, "http", "", "Also serve POST /repl/eval on this address, e.g. :8080")
	// parser config
	flag.IntVar(&maxDepth, "max-depth", util.DefaultMaxDepth, "Maximum nesting of parenthesised groups (0 for no limit)")
	flag.IntVar(&maxLineBytes, "max-line-bytes", util.DefaultMaxLineBytes, "Longest input line evaluated; longer lines are reported and skipped")
	flag.BoolVar(&debugAST, "debug-ast", false, "Print the syntax tree before each result")
	flag.BoolVar(&debugJsonAST, "debug-ast-json", false, "Print the syntax tree as JSON before each result")
	// log config
	flag.StringVar(&logLevel, "log-level", "none", "Log level: trace, debug, info, warn, error, none")
	flag.StringVar(&logFile, "log-file", "", "Log file path (if not set, logs to stderr)")
}

func main() {

	flag.Parse()

	if version {
		printVersion()
		return
	}

	if help {
		printHelp()
		return
	}

	config, err := loadConfiguration()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	logger, logCloser := log.Setup(config.LogLevel, config.LogFile)
	defer logCloser.Close()
	slog.SetDefault(logger)

	if err := run(config); err != nil {
		slog.Error("lispy exited with an error", slog.Any("error", err))
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(config util.Configuration) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	store, err := history.Open(config.HistoryDSN, config.HistorySize)
	if err != nil {
		return err
	}
	defer store.Close()

	opts := repl.Options{
		Prompt:       config.Prompt,
		Color:        config.Color && !color.NoColor,
		MaxDepth:     config.MaxDepth,
		MaxLineBytes: config.MaxLineBytes,
		DebugTxtAST:  config.DebugTxtAST,
		DebugJsonAST: config.DebugJsonAST,
		History:      store,
		HistorySize:  config.HistorySize,
	}

	if httpAddr != "" {
		go serveHTTP(httpAddr, opts)
	}

	if fileName := flag.Arg(0); fileName != "" {
		f, err := os.Open(fileName)
		if err != nil {
			return err
		}
		defer f.Close()
		opts.Quiet = true
		return repl.Start(ctx, f, os.Stdout, opts)
	}

	if repl.IsTerminal(os.Stdin) {
		return repl.StartInteractive(ctx, os.Stdout, opts)
	}
	return repl.Start(ctx, os.Stdin, os.Stdout, opts)
}

func serveHTTP(addr string, opts repl.Options) {
	slog.Info("repl listening for connections on",
		slog.Any("url", fmt.Sprintf("http://localhost%s/repl/eval", addr)))
	err := http.ListenAndServe(addr, repl.NewHTTPService(opts))
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("repl http service error", slog.Any("error", err))
	}
}

// loadConfiguration layers defaults, the config file and explicitly set flags.
func loadConfiguration() (util.Configuration, error) {
	config := util.DefaultConfiguration()
	config.Version = Version
	config.BuildDate = BuildDate
	config.Commit = Commit
	config.LispyHome = util.HomeFromEnv()

	path, optional := configPath, false
	if path == "" {
		path, optional = config.ConfigPath(), true
	}
	if err := util.LoadConfigFile(&config, path, optional); err != nil {
		return config, err
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "prompt":
			config.Prompt = prompt
		case "no-color":
			config.Color = !noColor
		case "history":
			config.HistoryDSN = historyDSN
		case "history-size":
			config.HistorySize = historySize
		case "max-depth":
			config.MaxDepth = maxDepth
		case "max-line-bytes":
			config.MaxLineBytes = maxLineBytes
		case "debug-ast":
			config.DebugTxtAST = debugAST
		case "debug-ast-json":
			config.DebugJsonAST = debugJsonAST
		case "log-level":
			config.LogLevel = logLevel
		case "log-file":
			config.LogFile = logFile
		}
	})

	return config, config.Validate()
}

func printVersion() {

	fmt.Printf("lispy version 'v%s' %s %s\n", Version, BuildDate, Commit)
}

func printHelp() {
	fmt.Printf(`Usage: lispy [options] [filename]

Options:
  -config <path>        Read settings from a TOML file. Default is $LISPY_HOME/lispy.toml.
  -prompt <text>        Prompt shown before each line. Default is 'DIYLispy > '.
  -no-color             Do not colour error output.
  -history <dsn>        Where to keep history: memory:, sqlite:<path>, mysql:<dsn>, postgres://...
  -history-size <n>     Number of history lines to keep and reload. Default is 500, 0 for all.
  -http <addr>          Also serve POST /repl/eval on this address.
  -max-depth <n>        Maximum nesting of parenthesised groups. Default is 10000, 0 for no limit.
  -max-line-bytes <n>   Longest input line evaluated. Default is 1048576.
  -debug-ast            Print the syntax tree before each result.
  -debug-ast-json       Print the syntax tree as JSON before each result.
  -help                 Display this help information and exit.
  -version              Display version information and exit.
  -log-level <level>    Set the log level: trace, debug, info, warn, error, none. Default is 'none'.
  -log-file <path>      Specify a log file to write logs. Default is stderr.

Details:
A calculator for integer S-expressions: (+ 1 (* 2 3)), (- 5), (/ 10 3).
Each line is evaluated on its own. With a filename every line of the file is
evaluated in turn and only the results are printed.

Examples:
  lispy                                   Start the interactive prompt
  lispy -history sqlite:~/.lispy/h.db     Keep history in a sqlite database
  lispy sums.lspy                         Evaluate every line of a file

Version Information:
  Version:    %s
  Build Date: %s
  Commit:     %s
`, Version, BuildDate, Commit)
}
