package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zapp"
	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/zguess/internal/cli"
	"github.com/zarlcorp/zguess/internal/tui"
)

// version is set at build time via ldflags.
var version = "dev"

const usage = `usage: zguess [command] [flags]

commands:
  analyze [password]   score a password (prompts when omitted)
  generate             build a wordlist from personal facts
  version              print the version

run a command with --help for its flags; no command starts the tui`

func main() {
	app := zapp.New(zapp.WithName("zguess"))

	ctx, cancel := zapp.SignalContext(context.Background())
	defer cancel()

	if len(os.Args) > 1 {
		if err := runCLI(ctx, os.Args[1], os.Args[2:]); err != nil {
			slog.Error(os.Args[1], "err", err)
			_ = app.Close()
			os.Exit(1)
		}
		_ = app.Close()
		return
	}

	if err := runTUI(); err != nil {
		slog.Error("tui", "err", err)
		_ = app.Close()
		os.Exit(1)
	}

	if err := app.Close(); err != nil {
		slog.Error("shutdown", "err", err)
		os.Exit(1)
	}
}

func runCLI(_ context.Context, cmd string, args []string) error {
	switch cmd {
	case "version":
		fmt.Printf("zguess %s\n", version)
		return nil
	case "help", "-h", "--help":
		fmt.Println(usage)
		return nil
	}

	settings, err := cli.LoadSettings(cli.DataDir())
	if err != nil {
		return err
	}

	switch cmd {
	case "analyze":
		return cli.CmdAnalyze(args, settings, os.Stdout, os.Stderr)
	case "generate":
		return cli.CmdGenerate(args, settings, os.Stdout, os.Stderr)
	default:
		fmt.Fprintln(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func runTUI() error {
	dataDir := cli.DataDir()
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	settings, err := cli.LoadSettings(dataDir)
	if err != nil {
		return err
	}

	breach, err := cli.LoadBreachFile(settings.BreachList)
	if err != nil {
		return err
	}

	m := tui.New(version, zfilesystem.NewOSFileSystem(dataDir), settings, breach)
	p := tea.NewProgram(m)
	_, err = p.Run()
	return err
}
