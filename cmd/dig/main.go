// Command dig runs the two-player stone gathering game in the terminal.
package main

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell"
	"github.com/gdamore/tcell/views"

	"github.com/borkshop/dig/internal/config"
	"github.com/borkshop/dig/internal/ui"
	"github.com/borkshop/dig/internal/world"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	logPath := flag.String("log", "", "file to copy debug messages to (overrides the config)")
	flag.Parse()

	if err := run(*configPath, *logPath); err != nil {
		log.Fatalln(err)
	}
}

func run(configPath, logPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if logPath != "" {
		cfg.LogFile = logPath
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	w := world.New(cfg.WorldOptions(rng))

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		w.SetLogger(log.New(f, "", log.LstdFlags))
	}

	scr, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	app := &views.Application{}
	app.SetScreen(scr)
	app.SetRootWidget(ui.New(w, app.Quit, app.Refresh))
	return app.Run()
}
