package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"go.uber.org/zap"

	"github.com/nils-degroot/shorty/internal/config"
	"github.com/nils-degroot/shorty/internal/logger"
	"github.com/nils-degroot/shorty/internal/shortener"
	"github.com/nils-degroot/shorty/internal/ui"
	"github.com/nils-degroot/shorty/internal/version"
)

func usage() {
	fmt.Fprintf(os.Stderr, "shorty - shorten URLs without hassle\n\n")
	fmt.Fprintf(os.Stderr, "Usage:\n")
	fmt.Fprintf(os.Stderr, "  shorty [tui] [-b <base-url>] [-l <level>] [-log-file <path>]\n")
	fmt.Fprintf(os.Stderr, "  shorty shorten --url <u> [-v] [-b <base-url>] [-l <level>] [-log-file <path>]\n")
	fmt.Fprintf(os.Stderr, "  shorty version\n")
	fmt.Fprintf(os.Stderr, "\nEnvironment: SHORTY_BASE_URL, SHORTY_ENDPOINT, SHORTY_TIMEOUT, SHORTY_LOG_LEVEL, SHORTY_LOG_FILE\n")
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Default: TUI when no subcommand, flags go straight to it
	if len(args) == 0 || (args[0] != "-h" && args[0] != "--help" && strings.HasPrefix(args[0], "-")) {
		return tuiCmd(ctx, args)
	}

	cmd := args[0]
	switch cmd {
	case "tui":
		return tuiCmd(ctx, args[1:])
	case "shorten":
		return shortenCmd(ctx, args[1:])
	case "version":
		fmt.Println(version.String())
	case "-h", "--help", "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		usage()
		return 2
	}
	return 0
}

// setup loads config from args and installs the logger. tee is read after
// flag parsing, so it may point at a flag of fs.
func setup(fs *flag.FlagSet, args []string, tee *bool) (*shortener.Client, bool) {
	cfg, err := config.Load(fs, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return nil, false
	}
	if err := logger.Initialize(cfg.LogLevel, cfg.LogFile, tee != nil && *tee); err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		return nil, false
	}
	logger.Log.Debug("config loaded",
		zap.String("base_url", cfg.BaseURL),
		zap.String("endpoint", cfg.Endpoint),
		zap.Duration("timeout", cfg.Timeout),
	)
	return shortener.New(cfg.BaseURL, cfg.Endpoint, cfg.Timeout), true
}

func tuiCmd(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("tui", flag.ContinueOnError)
	client, ok := setup(fs, args, nil)
	if !ok {
		return 2
	}
	defer logger.Sync()

	if err := ui.Run(ctx, client, logger.Log); err != nil {
		logger.Log.Error("tui exited", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func shortenCmd(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("shorten", flag.ContinueOnError)
	url := fs.String("url", "", "url to shorten")
	verbose := fs.Bool("v", false, "also write log entries to stderr")
	client, ok := setup(fs, args, verbose)
	if !ok {
		return 2
	}
	defer logger.Sync()

	return ui.Shorten(ctx, *url, client, logger.Log, os.Stdout, os.Stderr)
}
