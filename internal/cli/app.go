// Package cli implements the dxc command tree.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	homedir "github.com/mitchellh/go-homedir"

	"github.com/logicossoftware/go-dxcode"
	"github.com/logicossoftware/go-dxcode/internal/config"
)

// App holds the state shared by every dxc command for one invocation.
type App struct {
	// I/O
	OutWriter    io.Writer
	ErrWriter    io.Writer
	InReader     io.Reader
	ColorableOut io.Writer
	Color        bool

	// Config state
	Cfg     config.Config
	CfgFile string
	Verbose bool

	Logger *slog.Logger
	Codec  *dxcode.Codec
}

// New creates an App writing to the process's standard streams.
func New() *App {
	fd := os.Stdout.Fd()
	return &App{
		OutWriter:    os.Stdout,
		ErrWriter:    os.Stderr,
		InReader:     os.Stdin,
		ColorableOut: colorable.NewColorableStdout(),
		Color:        isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		Codec:        dxcode.New(),
	}
}

// InitConfig reads the config file and sets up logging.
// Called by PersistentPreRunE on the root command.
func (a *App) InitConfig() error {
	var err error
	a.Cfg, err = config.ReadConfig(a.CfgFile)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	level := slog.LevelWarn
	if a.Verbose {
		level = slog.LevelDebug
	}
	a.Logger = slog.New(slog.NewTextHandler(a.ErrWriter, &slog.HandlerOptions{Level: level}))
	a.Logger.Debug("config loaded", "path", a.Cfg.Path())
	return nil
}

func (a *App) paint(attr color.Attribute, s string) string {
	c := color.New(attr)
	if a.Color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(s)
}

func (a *App) ok(format string, args ...any) {
	fmt.Fprintf(a.ColorableOut, "%s %s\n", a.paint(color.FgGreen, "✓"), fmt.Sprintf(format, args...))
}

func (a *App) fail(format string, args ...any) {
	fmt.Fprintf(a.ColorableOut, "%s %s\n", a.paint(color.FgRed, "✗"), fmt.Sprintf(format, args...))
}

// readInput returns the command input: the named file, the joined
// arguments, or standard input with trailing line breaks removed.
func (a *App) readInput(args []string, file string) ([]byte, error) {
	switch {
	case file != "" && len(args) > 0:
		return nil, fmt.Errorf("cannot combine --file with text arguments")
	case file != "":
		path, err := homedir.Expand(file)
		if err != nil {
			return nil, err
		}
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("unable to read input: %w", err)
		}
		return b, nil
	case len(args) > 0:
		return []byte(strings.Join(args, " ")), nil
	default:
		b, err := io.ReadAll(a.InReader)
		if err != nil {
			return nil, fmt.Errorf("unable to read stdin: %w", err)
		}
		return []byte(strings.TrimRight(string(b), "\r\n")), nil
	}
}

// readEncoded is readInput for commands taking a DX string.
func (a *App) readEncoded(args []string, file string) (string, error) {
	b, err := a.readInput(args, file)
	if err != nil {
		return "", err
	}
	s := strings.TrimSpace(string(b))
	if s == "" {
		return "", fmt.Errorf("no input")
	}
	return s, nil
}

// writeOutput writes data to path, or to the output writer if path is
// empty. A trailing newline is added for terminals and text results.
func (a *App) writeOutput(data []byte, path string, text bool) error {
	if path == "" {
		if _, err := a.OutWriter.Write(data); err != nil {
			return err
		}
		if text || a.Color {
			_, err := io.WriteString(a.OutWriter, "\n")
			return err
		}
		return nil
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return err
	}
	if err := os.WriteFile(expanded, data, 0644); err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}
	a.ok("saved to %s", path)
	return nil
}
