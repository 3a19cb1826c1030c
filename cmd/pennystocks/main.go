package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"

	"pennystocks/internal/config"
	"pennystocks/internal/dashboard"
	"pennystocks/internal/session"
	"pennystocks/internal/ui"
	"pennystocks/internal/util"
	"pennystocks/pkg/pennystocks"
)

// Exit codes.
const (
	exitOK          = 0
	exitError       = 1
	exitInterrupted = 130
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	plain := flag.Bool("plain", false, "print once as plain text instead of starting the TUI")
	flag.Parse()

	// A missing .env is fine; the environment and config file still apply.
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, *configPath, *plain, os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}

// run executes one session and returns the process exit code. Deferred
// cleanup has finished by the time it returns.
func run(ctx context.Context, configPath string, plain bool, stdout, stderr io.Writer) int {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(stderr, "loading config: %v\n", err)
		return exitError
	}

	interactive := !plain && isTerminal(stdout)

	// The TUI owns stdout, so its log goes to a file.
	logOut := stderr
	if interactive || cfg.Logging.File != "" {
		logPath := cfg.Logging.File
		if logPath == "" {
			logPath = util.DefaultLogPath(time.Now())
		}
		logFile, err := util.OpenLogFile(logPath)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return exitError
		}
		defer logFile.Close()
		logOut = logFile
	}
	logger := util.NewLogger(cfg.Logging.Level, cfg.Logging.Format, logOut)
	slog.SetDefault(logger)

	client := pennystocks.NewClient(cfg.Service.BaseURL, cfg.Service.Path, &http.Client{Timeout: cfg.Service.Timeout})
	if u, err := client.URL(); err == nil {
		logger.Info("ranking service", "url", u, "timeout", cfg.Service.Timeout)
	}

	ctrl := session.NewController(
		client,
		dashboard.NewTables(cfg.Display.Rotation),
		dashboard.NewFormatter(dashboard.ParseLocale(cfg.Display.Locale)),
		logger,
	)
	defer ctrl.Teardown()

	if !interactive {
		return printOnce(ctx, ctrl, stdout, cfg.Display.MaxWidth, logger)
	}

	p := tea.NewProgram(
		ui.NewModel(ctx, ctrl, cfg.Display.MaxWidth, logger),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return exitInterrupted
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitError
	}
	return exitOK
}

// printOnce loads the session and prints the page. Nothing is printed when
// the load was interrupted before it settled.
func printOnce(ctx context.Context, ctrl *session.Controller, w io.Writer, width int, logger *slog.Logger) int {
	if ctrl.Load(ctx) == session.Loading {
		logger.Info("interrupted before the ranked stocks loaded")
		return exitInterrupted
	}
	fmt.Fprint(w, ui.RenderContent(ctrl.ViewModel(), width))
	return exitOK
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
