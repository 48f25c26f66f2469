package main

import (
	"bytes"
	"errors"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/marisvali/yolka/story"
)

// digitKeys pick the choices, in order.
var digitKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
	ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

func (g *Gui) Update() error {
	g.justPressedKeys = g.justPressedKeys[:0]
	g.justPressedKeys = inpututil.AppendJustPressedKeys(g.justPressedKeys)

	if g.folderWatcher.FolderContentsChanged() {
		g.ReloadGuiData()
	}
	if g.newGameConfirmFrames > 0 {
		g.newGameConfirmFrames--
	}
	g.ReceivePickedFiles()

	switch g.state {
	case MenuScreen:
		g.UpdateMenuScreen()
	case PlayScreen:
		g.UpdatePlayScreen()
	default:
		panic("unhandled default case")
	}
	g.syncState()

	g.visWorld.Step(g.controller)
	return nil
}

func (g *Gui) UpdateMenuScreen() {
	switch {
	case g.JustPressed(ebiten.KeyN):
		g.NewGame()
	case g.JustPressed(ebiten.KeyC):
		g.Continue()
	case g.JustPressed(ebiten.KeyL) && g.loadAvailable():
		g.Load()
	case g.JustPressed(ebiten.KeyM):
		g.music.Toggle()
	default:
		g.HandleClicks(g.MenuButtons())
	}
}

func (g *Gui) UpdatePlayScreen() {
	if g.JustPressed(ebiten.KeyEscape) {
		g.BackToMenu()
		return
	}
	if g.JustPressed(ebiten.KeyS) {
		g.Save()
		return
	}
	if g.JustPressed(ebiten.KeyM) {
		g.music.Toggle()
	}
	if g.JustPressed(ebiten.KeySpace) || g.JustPressed(ebiten.KeyEnter) {
		g.visWorld.Reveal.Finish()
	}
	for i, key := range digitKeys {
		if g.JustPressed(key) {
			g.Choose(i)
			return
		}
	}
	g.HandleClicks(g.PlayButtons())
}

func (g *Gui) HandleClicks(buttons []Button) {
	for _, b := range buttons {
		if b.Enabled && g.JustClicked(b.Area) {
			b.Action()
			return
		}
	}
}

// NewGame asks for confirmation before throwing away a game in progress: the
// first press only warns, a second press within a few seconds starts over.
func (g *Gui) NewGame() {
	if g.controller.ConfirmNewGameNeeded() && g.newGameConfirmFrames == 0 {
		g.newGameConfirmFrames = NotificationFrames
		g.controller.Notify("A game is in progress. Press New game again to start over.",
			story.LevelInfo)
		return
	}
	g.newGameConfirmFrames = 0
	g.logError(g.controller.NewGame(g.playerName()))
}

func (g *Gui) Continue() {
	g.logError(g.controller.Continue())
}

func (g *Gui) BackToMenu() {
	g.controller.ShowMenu()
}

func (g *Gui) Choose(i int) {
	// The first input on a scene that is still being revealed only shows the
	// rest of the text, so that a choice isn't taken by accident.
	if !g.visWorld.Reveal.Done() {
		g.visWorld.Reveal.Finish()
		return
	}
	err := g.controller.Choose(i)
	if errors.Is(err, story.ErrChoiceOutOfRange) {
		return
	}
	g.logError(err)
}

func (g *Gui) Save() {
	var buf bytes.Buffer
	if err := g.controller.Save(&buf); err != nil {
		g.controller.Notify("There is no game to save", story.LevelError)
		return
	}
	s := g.controller.Session()
	select {
	case g.uploadSaveChannel <- SaveUpload{Id: s.Id, Data: buf.Bytes()}:
	default:
		g.logger.Printf("upload queue is full, save %s not uploaded", s.Id)
	}

	name := g.controller.SaveFileName()
	where, err := g.storeSave(name, buf.Bytes())
	if err != nil {
		g.logger.Printf("failed to save %s: %v", name, err)
		g.controller.Notify("Could not save the game", story.LevelError)
		return
	}
	g.controller.Notify("Game saved to "+where, story.LevelSuccess)
}

// PickedFile is a save file chosen by the player, waiting to be loaded.
type PickedFile struct {
	Name string
	Data []byte
}

// Load asks for a save file. The file arrives later, through
// ReceivePickedFiles, because in the browser the player picks it in a dialog
// that doesn't block the game.
func (g *Gui) Load() {
	g.pickSaveFile()
}

func (g *Gui) queuePickedFile(f PickedFile) {
	select {
	case g.pickedFiles <- f:
	default:
		g.logger.Printf("a save file is already waiting, dropped %s", f.Name)
	}
}

// ReceivePickedFiles loads the save files picked since the last frame.
func (g *Gui) ReceivePickedFiles() {
	for {
		select {
		case f := <-g.pickedFiles:
			// Load tells the player how it went.
			_ = g.controller.Load(f.Name, bytes.NewReader(f.Data))
		default:
			return
		}
	}
}

func (g *Gui) logError(err error) {
	if err != nil {
		g.logger.Printf("%v", err)
	}
}

func (g *Gui) JustPressed(key ebiten.Key) bool {
	return slices.Contains(g.justPressedKeys, key)
}

// JustClicked reports whether the left button was just pressed inside r,
// given in game area coordinates.
func (g *Gui) JustClicked(r Rectangle) bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButton0) {
		return false
	}
	x, y := ebiten.CursorPosition()
	return r.ContainsPt(g.ScreenToGame(Pt{int64(x), int64(y)}))
}
