// Command banda-gallery is an interactive showcase of the banda widget kit:
// one screen per widget group, SPC-leader navigation, live theme switching,
// and a validated form wired through the state engine.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/banda-ui/banda"
	"github.com/banda-ui/banda/event"
	"github.com/banda-ui/banda/state"
	"github.com/banda-ui/banda/telemetry"
	"github.com/banda-ui/banda/theme"
	"github.com/banda-ui/banda/widget"
)

func main() {
	themeFlag := flag.String("theme", "", "theme preset name or YAML file path")
	logFlag := flag.String("log", "", "write logs to this file (stderr corrupts the display)")
	flag.Parse()

	log := logrus.New()
	if *logFlag != "" {
		f, err := os.OpenFile(*logFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
		log.SetLevel(logrus.DebugLevel)
		banda.SetLogger(log)
	}

	// The last chosen preset survives restarts.
	store, err := state.NewFileStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "state dir: %v\n", err)
		os.Exit(1)
	}
	themeName := state.NewPersisted(store, "gallery-theme", "default")
	if *themeFlag != "" {
		themeName.Set(*themeFlag)
	}

	th, err := loadTheme(themeName.Get())
	if err != nil {
		fmt.Fprintf(os.Stderr, "theme: %v\n", err)
		os.Exit(1)
	}
	theme.SetDefault(th)

	modals := widget.NewModals(widget.ModalsOptions{Theme: th})
	toasts := widget.NewToasts(th)

	km := event.NewKeymap()
	km.LabelSubmenu("t", "theme")
	km.BindWithDesc("SPC q", tea.Quit, "quit")
	km.BindWithDesc("SPC g", send(goHomeMsg{}), "gallery index")
	km.BindWithDesc("SPC t d", send(setThemeMsg{name: "dark"}), "dark theme")
	km.BindWithDesc("SPC t l", send(setThemeMsg{name: "default"}), "light theme")

	gallery := newGallery(th, modals, toasts, themeName)

	app := banda.NewApp(gallery,
		banda.WithTheme(th),
		banda.WithKeymap(km),
		banda.WithAppLogger(log),
	)
	app.AddLayer(modals)
	app.AddLayer(toasts)
	app.SetScope("gallery")

	ctx := context.Background()
	if exp, err := telemetry.NewExporter(ctx); err != nil {
		log.WithError(err).Warn("telemetry disabled")
	} else if exp != nil {
		if err := app.Use(exp.Plugin()); err != nil {
			log.WithError(err).Warn("telemetry plugin install failed")
		}
		defer exp.Shutdown(ctx)
	}

	p := tea.NewProgram(app.Model(), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// send wraps a message as a keymap command.
func send(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// loadTheme resolves a preset name or a YAML file path.
func loadTheme(name string) (*theme.Theme, error) {
	if _, statErr := os.Stat(name); statErr == nil {
		tokens, err := theme.LoadFile(name, theme.DefaultTokens())
		if err != nil {
			return nil, err
		}
		return theme.New(tokens), nil
	}
	tokens, err := theme.Preset(name)
	if err != nil {
		return nil, err
	}
	return theme.New(tokens), nil
}
