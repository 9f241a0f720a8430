package main

import (
	"flag"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/inkless/ansi"
	"github.com/iw2rmb/inkless/config"
	"github.com/iw2rmb/inkless/internal/demo"
)

func main() {
	var (
		profilePath = flag.String("config", "", "render profile (.toml, .yaml or .yml)")
		textPath    = flag.String("text", "", "file with the text to show")
		detect      = flag.Bool("detect", true, "derive colors from the terminal instead of the profile")
	)
	flag.Parse()

	debug := os.Getenv("INKLESS_DEBUG") != ""
	if debug {
		f, err := tea.LogToFile("inkless-debug.log", "debug")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	}

	profile := config.Default()
	if *profilePath != "" {
		p, err := config.Load(*profilePath)
		if err != nil {
			log.Fatal(err)
		}
		profile = p
	}

	cfg := demo.Config{Profile: profile}
	if *detect {
		caps := ansi.FromProfile(termenv.ColorProfile())
		cfg.Caps = &caps
	}
	if *textPath != "" {
		b, err := os.ReadFile(*textPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg.Text = string(b)
	}

	m, err := demo.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if debug {
		log.Printf("profile %+v caps %+v", profile, cfg.Caps)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
