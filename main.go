package main

import (
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/marisvali/yolka/config"
	"github.com/marisvali/yolka/data"
	"github.com/marisvali/yolka/story"
	"github.com/marisvali/yolka/utils"
	"golang.org/x/image/font"
)

// ReleaseVersion is the version of an executable built and given to someone
// to play, either as a native executable or a .wasm in the browser. It is
// meant as a unique label for what the player is presented with.
// ReleaseVersion is expected to change very often. Every executable sent to
// someone should be tagged with a unique ReleaseVersion, including ones that
// only differ in build tags (uploads enabled or disabled, asserts enabled or
// disabled).
const ReleaseVersion = 1

type GameState int64

const (
	MenuScreen GameState = iota
	PlayScreen
)

type Gui struct {
	config.Config
	FSys              utils.FS
	story             *story.Story
	controller        *story.Controller
	autosave          *story.Autosave
	visWorld          *VisWorld
	sceneImages       map[string]*ebiten.Image
	music             Music
	defaultFont       font.Face
	titleFont         font.Face
	folderWatcher     utils.FolderWatcher
	state             GameState
	justPressedKeys   []ebiten.Key // keys pressed in this frame
	gameArea          Rectangle
	screenWidth       int
	screenHeight      int
	username          string
	uploadSaveChannel chan SaveUpload
	pickedFiles       chan PickedFile
	devModeEnabled    bool
	// newGameConfirmFrames counts down while a second New game press would
	// discard the game in progress.
	newGameConfirmFrames int64
	logger            *log.Logger
}

func main() {
	ebiten.SetWindowPosition(100, 100)

	var g Gui
	g.logger = log.New(os.Stderr, "[gui] ", log.LstdFlags)
	g.username = getUsername()

	if len(os.Args) == 2 && os.Args[1] == "developer-mode-enabled" {
		g.devModeEnabled = true
	}

	if !utils.FileExists(os.DirFS("."), "data") {
		g.FSys = &data.Files
	} else {
		g.FSys = os.DirFS("data").(utils.FS)
		g.folderWatcher.Folder = "data"
		// Initialize the watcher so that it reports changes made from now on,
		// not the files that are already there.
		g.folderWatcher.FolderContentsChanged()
	}

	g.LoadGuiData()

	presets, err := g.Presets()
	utils.Check(err)
	g.visWorld = NewVisWorld(presets, g.MaxFrameDelta())

	g.autosave, err = story.OpenAutosave(g.AppName)
	if err != nil {
		// Not fatal, the game just doesn't remember anything between runs.
		g.logger.Printf("%v", err)
	}
	g.controller = story.NewController(g.story, g.visWorld.Engine,
		story.WithAutosave(g.autosave),
		story.WithNotifier(g.visWorld),
		story.WithClock(g.visWorld.Clock),
		story.WithLogger(log.New(os.Stderr, "[story] ", log.LstdFlags)))
	if err = g.controller.RestoreAutosave(); err != nil {
		g.logger.Printf("%v", err)
	}

	// A channel size of 10 means the channel will buffer 10 saves before it
	// is full. Saves are made by hand, so this is plenty.
	g.uploadSaveChannel = make(chan SaveUpload, 10)
	g.pickedFiles = make(chan PickedFile, 1)
	go UploadSaves(g.UploadUrl, g.username, g.uploadSaveChannel, g.logger)

	g.music, err = NewMusic(g.FSys, musicFile)
	if err != nil {
		g.logger.Printf("%v", err)
	}
	g.music.SetEnabled(g.MusicEnabled)

	if g.StartState == config.StartPlay {
		utils.Check(g.controller.NewGame(g.playerName()))
	} else {
		g.controller.ShowMenu()
	}
	g.syncState()

	err = ebiten.RunGame(&g)
	utils.Check(err)
}

// playerName is the name from the config, or the name the page gave us when
// running in the browser.
func (g *Gui) playerName() string {
	if g.PlayerName != "" {
		return g.PlayerName
	}
	return g.username
}

func (g *Gui) syncState() {
	if g.controller.GameActive() {
		g.state = PlayScreen
	} else {
		g.state = MenuScreen
	}
}
