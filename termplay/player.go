package main

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/marisvali/yolka/config"
	"github.com/marisvali/yolka/particles"
	"github.com/marisvali/yolka/story"
	"github.com/marisvali/yolka/utils"
)

const notificationDuration = 4 * time.Second

var (
	styleText    = tcell.StyleDefault.Foreground(tcell.NewRGBColor(235, 240, 250))
	styleTitle   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 214, 140)).Bold(true)
	styleDim     = tcell.StyleDefault.Foreground(tcell.NewRGBColor(110, 115, 125))
	styleKey     = tcell.StyleDefault.Foreground(tcell.NewRGBColor(120, 160, 210)).Bold(true)
	styleInfo    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.NewRGBColor(40, 70, 130))
	styleSuccess = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.NewRGBColor(40, 120, 60))
	styleError   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.NewRGBColor(150, 40, 40))
)

// Player is the terminal frontend: it turns key presses into controller
// calls and draws the controller state and the particles on a tcell screen.
// All its methods run on the goroutine that owns the screen.
type Player struct {
	cfg        config.Config
	screen     tcell.Screen
	surface    *CellSurface
	queue      *particles.FrameQueue
	engine     *particles.Engine
	clock      particles.Clock
	controller *story.Controller
	chime      *Chime
	logger     *log.Logger

	notification        story.Notification
	notificationUntil   time.Time
	confirmNewGameUntil time.Time
	lastScene           string
	lastProgress        int64
	quit                bool
}

func NewPlayer(screen tcell.Screen, cfg config.Config, s *story.Story,
	clock particles.Clock, autosave *story.Autosave, chime *Chime,
	logger *log.Logger) (*Player, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	presets, err := cfg.Presets()
	if err != nil {
		return nil, err
	}
	p := &Player{
		cfg:    cfg,
		screen: screen,
		queue:  particles.NewFrameQueue(),
		clock:  clock,
		chime:  chime,
		logger: logger,
	}
	cols, rows := screen.Size()
	p.surface = NewCellSurface(cols, rows)
	p.engine = particles.NewEngine(p.surface, p.queue, clock,
		particles.WithPresets(presets),
		particles.WithMaxFrameDelta(cfg.MaxFrameDelta()),
		particles.WithLogger(log.New(logger.Writer(), "[particles] ", log.LstdFlags)))
	p.engine.Resize(p.surface.Bounds())
	p.controller = story.NewController(s, p.engine,
		story.WithAutosave(autosave),
		story.WithNotifier(story.NotifierFunc(p.notify)),
		story.WithClock(clock),
		story.WithLogger(log.New(logger.Writer(), "[story] ", log.LstdFlags)))
	if err = p.controller.RestoreAutosave(); err != nil {
		p.logger.Printf("%v", err)
	}
	return p, nil
}

func (p *Player) notify(n story.Notification) {
	p.notification = n
	p.notificationUntil = p.clock.Now().Add(notificationDuration)
}

// Tick runs one particle frame, plays the chime if the scene changed and
// redraws the screen.
func (p *Player) Tick() {
	p.queue.Pump(p.clock.Now())

	s := p.controller.Session()
	if p.controller.GameActive() && (s.CurrentScene != p.lastScene || s.Progress != p.lastProgress) {
		p.chime.Play()
	}
	p.lastScene, p.lastProgress = s.CurrentScene, s.Progress
	if !p.controller.GameActive() {
		p.lastScene = ""
	}

	p.Draw()
}

// HandleEvent reacts to one tcell event. It returns false when the player
// wants to quit.
func (p *Player) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		p.screen.Sync()
		p.Resize()
	case *tcell.EventKey:
		p.handleKey(ev)
	}
	return !p.quit
}

func (p *Player) Resize() {
	cols, rows := p.screen.Size()
	p.surface.Resize(cols, rows)
	p.engine.Resize(p.surface.Bounds())
}

func (p *Player) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		p.quit = true
		return
	case tcell.KeyEscape:
		if p.controller.GameActive() {
			p.controller.ShowMenu()
		} else {
			p.quit = true
		}
		return
	case tcell.KeyRune:
	default:
		return
	}

	r := ev.Rune()
	if r == 'q' {
		p.quit = true
		return
	}
	if p.controller.GameActive() {
		switch {
		case r >= '1' && r <= '9':
			p.logError(p.controller.Choose(int(r - '1')))
		case r == 's':
			p.save()
		}
		return
	}
	switch r {
	case 'n':
		p.newGame()
	case 'c':
		p.logError(p.controller.Continue())
	case 'l':
		p.load()
	}
}

func (p *Player) newGame() {
	now := p.clock.Now()
	if p.controller.ConfirmNewGameNeeded() && now.After(p.confirmNewGameUntil) {
		p.confirmNewGameUntil = now.Add(notificationDuration)
		p.controller.Notify("A game is in progress. Press n again to start over.", story.LevelInfo)
		return
	}
	p.confirmNewGameUntil = time.Time{}
	name := p.cfg.PlayerName
	if name == "" {
		name = os.Getenv("USER")
	}
	p.logError(p.controller.NewGame(name))
}

func (p *Player) save() {
	var buf bytes.Buffer
	if err := p.controller.Save(&buf); err != nil {
		p.controller.Notify("There is no game to save", story.LevelError)
		return
	}
	name := filepath.Join(p.cfg.SaveDir, p.controller.SaveFileName())
	if err := utils.TryWriteFile(name, buf.Bytes()); err != nil {
		p.logger.Printf("failed to write %s: %v", name, err)
		p.controller.Notify("Could not save the game", story.LevelError)
		return
	}
	p.controller.Notify("Game saved to "+name, story.LevelSuccess)
}

func (p *Player) load() {
	f, err := os.Open(p.cfg.LoadFile)
	if err != nil {
		p.logger.Printf("%v", err)
		p.controller.Notify("Could not open "+p.cfg.LoadFile, story.LevelError)
		return
	}
	defer f.Close()
	_ = p.controller.Load(f.Name(), f)
}

func (p *Player) logError(err error) {
	if err != nil {
		p.logger.Printf("%v", err)
	}
}

func (p *Player) Draw() {
	p.screen.Clear()
	p.surface.Draw(p.screen, tcell.StyleDefault)
	if p.controller.GameActive() {
		p.drawScene()
	} else {
		p.drawMenu()
	}
	p.drawNotification()
	p.screen.Show()
}

func (p *Player) drawMenu() {
	cols, _ := p.screen.Size()
	title := p.controller.Story().Title
	putStr(p.screen, (cols-len([]rune(title)))/2, 2, title, styleTitle)

	type entry struct {
		key, label string
		enabled    bool
	}
	entries := []entry{
		{"n", "New game", true},
		{"c", "Continue", p.controller.GameInProgress()},
		{"l", "Load " + p.cfg.LoadFile, p.cfg.LoadFile != ""},
		{"q", "Quit", true},
	}
	for i, e := range entries {
		style := styleText
		if !e.enabled {
			style = styleDim
		}
		x := max(cols/2-12, 0)
		putStr(p.screen, x, 5+2*i, "["+e.key+"]", styleKey)
		putStr(p.screen, x+4, 5+2*i, e.label, style)
	}
}

func (p *Player) drawScene() {
	cols, rows := p.screen.Size()
	scene, err := p.controller.CurrentScene()
	if err != nil {
		return
	}
	putStr(p.screen, 2, 1, scene.Title, styleTitle)

	y := 3
	for _, line := range WrapWords(scene.Text, max(cols-4, 10)) {
		putStr(p.screen, 2, y, line, styleText)
		y++
	}
	y++
	for i, c := range p.controller.AvailableChoices() {
		putStr(p.screen, 2, y, fmt.Sprintf("[%d]", i+1), styleKey)
		putStr(p.screen, 6, y, c.Text, styleText)
		y++
	}
	putStr(p.screen, 2, rows-1, "[Esc] menu  [s] save  [q] quit", styleDim)
}

func (p *Player) drawNotification() {
	if p.notification.Message == "" || p.clock.Now().After(p.notificationUntil) {
		return
	}
	style := styleInfo
	switch p.notification.Level {
	case story.LevelSuccess:
		style = styleSuccess
	case story.LevelError:
		style = styleError
	}
	cols, _ := p.screen.Size()
	msg := " " + p.notification.Message + " "
	putStr(p.screen, max(cols-len([]rune(msg))-1, 0), 0, msg, style)
}

func putStr(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// WrapWords splits s into lines of at most width runes. Blank lines in s
// separate paragraphs, single line breaks are treated as spaces.
func WrapWords(s string, width int) []string {
	var lines []string
	for i, paragraph := range strings.Split(strings.TrimSpace(s), "\n\n") {
		if i > 0 {
			lines = append(lines, "")
		}
		line := ""
		for _, word := range strings.Fields(paragraph) {
			if line != "" && len([]rune(line))+1+len([]rune(word)) > width {
				lines = append(lines, line)
				line = ""
			}
			if line != "" {
				line += " "
			}
			line += word
		}
		lines = append(lines, line)
	}
	return lines
}
