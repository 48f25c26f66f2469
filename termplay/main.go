// Command termplay runs the story in a terminal, with the particle effects
// drawn as text cells.
package main

import (
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/gdamore/tcell/v2"
	"github.com/marisvali/yolka/config"
	"github.com/marisvali/yolka/data"
	"github.com/marisvali/yolka/particles"
	"github.com/marisvali/yolka/story"
	"github.com/marisvali/yolka/utils"
)

// Settings are specific to the terminal frontend. Everything else comes from
// the same config.yaml the window frontend uses.
type Settings struct {
	LogFile string `env:"YOLKA_LOG_FILE"`
	Fps     int    `env:"YOLKA_TERMPLAY_FPS" envDefault:"30"`
	Chime   bool   `env:"YOLKA_CHIME" envDefault:"true"`
	DevMode bool   `env:"YOLKA_DEV_MODE"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	settings, err := env.ParseAs[Settings]()
	if err != nil {
		return err
	}
	if settings.Fps <= 0 {
		return fmt.Errorf("YOLKA_TERMPLAY_FPS must be positive, got %d", settings.Fps)
	}

	// The terminal belongs to tcell, so logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if settings.LogFile != "" {
		f, err := os.OpenFile(settings.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		logOut = f
	}
	logger := log.New(logOut, "[termplay] ", log.LstdFlags)

	var fsys fs.FS = &data.Files
	if utils.FileExists(os.DirFS("."), "data") {
		fsys = os.DirFS("data")
	}
	cfg, err := config.Load(fsys, settings.DevMode)
	if err != nil {
		return err
	}
	s, err := story.LoadStory(fsys, cfg.StoryFile)
	if err != nil {
		return err
	}

	autosave, err := story.OpenAutosave(cfg.AppName)
	if err != nil {
		logger.Printf("autosave disabled: %v", err)
	}

	var chime *Chime
	if settings.Chime {
		chime, err = NewChime()
		if err != nil {
			logger.Printf("chime disabled: %v", err)
		}
		defer chime.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err = screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.SetStyle(tcell.StyleDefault)
	screen.HideCursor()

	p, err := NewPlayer(screen, cfg, s, particles.SystemClock{}, autosave, chime, logger)
	if err != nil {
		return err
	}
	p.controller.ShowMenu()
	if cfg.StartState == config.StartPlay {
		p.logError(p.controller.Continue())
		if !p.controller.GameActive() {
			p.newGame()
		}
	}

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(settings.Fps))
	defer ticker.Stop()
	p.Draw()
	for {
		select {
		case ev := <-events:
			if !p.HandleEvent(ev) {
				return nil
			}
			p.Draw()
		case <-ticker.C:
			p.Tick()
		}
	}
}
