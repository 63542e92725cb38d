package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	json "github.com/goccy/go-json"
	_ "github.com/joho/godotenv/autoload"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/vanderheijden86/pianofolio/pkg/audio"
	"github.com/vanderheijden86/pianofolio/pkg/config"
	"github.com/vanderheijden86/pianofolio/pkg/debug"
	"github.com/vanderheijden86/pianofolio/pkg/input"
	"github.com/vanderheijden86/pianofolio/pkg/metrics"
	"github.com/vanderheijden86/pianofolio/pkg/resume"
	"github.com/vanderheijden86/pianofolio/pkg/ui"
	"github.com/vanderheijden86/pianofolio/pkg/version"
	"github.com/vanderheijden86/pianofolio/pkg/watcher"
)

type options struct {
	configPath  string
	contentPath string
	noSound     bool
	theme       string
}

func main() {
	help := flag.Bool("help", false, "Show help")
	versionFlag := flag.Bool("version", false, "Show version")
	configPath := flag.String("config", "", "Read config from this file instead of the XDG location")
	contentPath := flag.String("content", "", "Section override file (YAML)")
	noSound := flag.Bool("no-sound", false, "Disable tones")
	themeFlag := flag.String("theme", "", "Force the theme: dark or light")
	listFlag := flag.Bool("list", false, "Print the key map as JSON and exit")
	metricsFlag := flag.Bool("metrics", false, "Print timing metrics as JSON on exit")
	initConfig := flag.Bool("init-config", false, "Write the default config file and exit")
	flag.Parse()

	if *help {
		fmt.Println("Usage: pianofolio [options]")
		fmt.Println("\nAn interactive piano résumé. Play c d e f g a b, shift for sharps.")
		flag.PrintDefaults()
		os.Exit(0)
	}

	if *versionFlag {
		fmt.Printf("pianofolio %s\n", version.Version)
		os.Exit(0)
	}

	if *initConfig {
		path, err := writeDefaultConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", path)
		os.Exit(0)
	}

	theme, err := parseTheme(*themeFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	opts := options{
		configPath:  *configPath,
		contentPath: *contentPath,
		noSound:     *noSound,
		theme:       theme,
	}

	if *listFlag {
		cfg, _ := loadConfig(opts)
		reg, err := resume.LoadRegistry(contentFor(cfg, opts))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
		if err := writeKeyMap(os.Stdout, reg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) || !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "pianofolio needs an interactive terminal. Use --list to print the key map.")
		os.Exit(1)
	}

	if err := launch(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error running pianofolio: %v\n", err)
		os.Exit(1)
	}

	if *metricsFlag {
		if err := metrics.WriteJSON(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing metrics: %v\n", err)
			os.Exit(1)
		}
	}
}

// launch runs the TUI and, when enabled, the content watcher until the user
// quits.
func launch(opts options) error {
	if path := os.Getenv("PIANOFOLIO_DEBUG_LOG"); path != "" {
		if err := debug.EnableFile(path); err != nil {
			return fmt.Errorf("opening debug log: %w", err)
		}
		defer debug.Close()
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		// Non-fatal: continue with defaults
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	if opts.theme != "" {
		cfg.UI.Theme = opts.theme
	}

	contentPath := contentFor(cfg, opts)
	start := time.Now()
	reg, err := resume.LoadRegistry(contentPath)
	elapsed := time.Since(start)
	metrics.ContentLoad.Record(elapsed)
	debug.LogTiming("main: content load", elapsed)
	if err != nil {
		debug.Log("main: content load failed, using built-in copy: %v", err)
	}

	synth := audio.NewSynth(
		audio.WithSampleRate(cfg.Audio.SampleRate),
		audio.WithDisabled(opts.noSound || !cfg.SoundEnabled()),
	)
	defer synth.Close()

	var w *watcher.Watcher
	if cfg.Content.Watch && contentPath != "" {
		w, err = watcher.New(contentPath, watcher.WithOnError(func(err error) {
			debug.Log("main: content watcher: %v", err)
		}))
		if err != nil {
			debug.Log("main: content watcher unavailable: %v", err)
			w = nil
		}
	}

	theme := ui.NewTheme(lipgloss.NewRenderer(os.Stdout), cfg.UI.Theme)
	boundary := ui.NewBoundary(func() tea.Model {
		return ui.NewModel(reg, synth).
			WithConfig(cfg).
			WithTheme(theme).
			WithWatcher(w, contentPath)
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	if w != nil {
		g.Go(func() error {
			if err := w.Run(ctx); err != nil {
				debug.Log("main: content watcher stopped: %v", err)
			}
			return nil
		})
	}
	g.Go(func() error {
		defer cancel()
		return runTUIProgram(boundary)
	})
	return g.Wait()
}

func loadConfig(opts options) (config.Config, error) {
	if opts.configPath != "" {
		return config.LoadFrom(opts.configPath)
	}
	return config.Load()
}

// writeDefaultConfig writes the defaults to path, or to the XDG location when
// path is empty. An existing file is never overwritten.
func writeDefaultConfig(path string) (string, error) {
	target := path
	if target == "" {
		target = config.ConfigPath()
	}
	if target != "" {
		if _, err := os.Stat(target); err == nil {
			return target, fmt.Errorf("%s already exists", target)
		}
	}
	cfg := config.DefaultConfig()
	if path == "" {
		return target, config.Save(cfg)
	}
	return target, config.SaveTo(cfg, path)
}

func contentFor(cfg config.Config, opts options) string {
	if opts.contentPath != "" {
		return opts.contentPath
	}
	return cfg.Content.Path
}

func parseTheme(s string) (string, error) {
	switch v := strings.ToLower(strings.TrimSpace(s)); v {
	case "", ui.ThemeAuto:
		return "", nil
	case ui.ThemeDark, ui.ThemeLight:
		return v, nil
	default:
		return "", fmt.Errorf("invalid --theme %q (want dark or light)", s)
	}
}

func runTUIProgram(m tea.Model) error {
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
		tea.WithoutSignalHandler(),
	)

	runDone := make(chan struct{})
	defer close(runDone)

	// Graceful shutdown on SIGINT/SIGTERM.
	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-runDone:
			return
		case <-sigCh:
		}

		p.Quit()

		select {
		case <-runDone:
			return
		case <-sigCh:
		case <-time.After(5 * time.Second):
		}

		p.Kill()
	}()

	// Optional auto-quit for automated tests: set PIANOFOLIO_TUI_AUTOCLOSE_MS.
	if v := os.Getenv("PIANOFOLIO_TUI_AUTOCLOSE_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			go func() {
				timer := time.NewTimer(time.Duration(ms) * time.Millisecond)
				defer timer.Stop()

				select {
				case <-runDone:
					return
				case <-timer.C:
				}

				p.Quit()

				select {
				case <-runDone:
					return
				case <-time.After(2 * time.Second):
				}

				p.Kill()
			}()
		}
	}

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted) {
		return nil
	}
	return err
}

// keyBinding is one row of --list output.
type keyBinding struct {
	Key     string `json:"key"`
	Note    string `json:"note"`
	Sharp   bool   `json:"sharp"`
	Section string `json:"section"`
	Title   string `json:"title"`
}

// keyMap lists every note once, in key order, with the letter that plays it.
func keyMap(reg *resume.Registry) []keyBinding {
	letterFor := make(map[resume.Note]string)
	for _, l := range "cdefgab" {
		for _, shift := range []bool{false, true} {
			n, ok := input.MapKey(l, shift)
			if !ok {
				continue
			}
			if _, seen := letterFor[n]; seen {
				continue
			}
			key := string(l)
			if shift {
				key = strings.ToUpper(key)
			}
			letterFor[n] = key
		}
	}

	out := make([]keyBinding, 0, resume.KeyCount())
	for _, k := range resume.Keys() {
		b := keyBinding{
			Key:   letterFor[k.Note],
			Note:  k.Note.String(),
			Sharp: k.IsSharp,
		}
		if id, ok := resume.ResolveKey(k); ok {
			b.Section = id.String()
			if c, ok := reg.Lookup(id); ok {
				b.Title = c.Title
			}
		}
		out = append(out, b)
	}
	return out
}

func writeKeyMap(w io.Writer, reg *resume.Registry) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(keyMap(reg))
}
