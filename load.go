package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/marisvali/yolka/config"
	"github.com/marisvali/yolka/data"
	"github.com/marisvali/yolka/story"
	"github.com/marisvali/yolka/utils"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

func (g *Gui) LoadGuiData() {
	// Read from the disk over and over until a full read is possible.
	// This repetition is meant to avoid crashes due to reading files
	// while they are still being written.
	// It's a hack but possibly a quick and very useful one.
	// This repeated reading is only useful when we're not reading from the
	// embedded filesystem. When we're reading from the embedded filesystem we
	// want to crash as soon as possible. We might be in the browser, in which
	// case we want to see an error in the developer console instead of a page
	// that keeps trying to load and reports nothing.
	previousVal := utils.CheckCrashes
	if g.FSys != &data.Files {
		utils.CheckCrashes = false
	}
	for {
		utils.CheckFailed = nil
		cfg, err := config.Load(g.FSys, g.devModeEnabled)
		utils.Check(err)
		var s *story.Story
		if err == nil {
			s, err = story.LoadStory(g.FSys, cfg.StoryFile)
			utils.Check(err)
		}

		if utils.CheckFailed == nil {
			g.Config = cfg
			g.story = s
			break
		}
		g.logger.Printf("retrying: %v", utils.CheckFailed)
		time.Sleep(200 * time.Millisecond)
	}
	utils.CheckCrashes = previousVal

	g.UpdateWindowSize()

	fontData, err := opentype.Parse(goregular.TTF)
	utils.Check(err)

	g.defaultFont, err = opentype.NewFace(fontData, &opentype.FaceOptions{
		Size:    26,
		DPI:     72,
		Hinting: font.HintingVertical,
	})
	utils.Check(err)

	g.titleFont, err = opentype.NewFace(fontData, &opentype.FaceOptions{
		Size:    44,
		DPI:     72,
		Hinting: font.HintingVertical,
	})
	utils.Check(err)
}

// ReloadGuiData is called in developer mode when something in the data folder
// changes. The story and the effects are swapped in without restarting.
func (g *Gui) ReloadGuiData() {
	g.LoadGuiData()
	g.ClearSceneImages()
	if err := g.controller.SetStory(g.story); err != nil {
		g.logger.Printf("%v", err)
	}
	if err := g.ApplyEffects(g.visWorld.Engine); err != nil {
		g.logger.Printf("%v", err)
	}
	g.music.SetEnabled(g.MusicEnabled)
	g.syncState()
}

func (g *Gui) UpdateWindowSize() {
	width, _ := ebiten.ScreenSizeInFullscreen()
	size := min(width*8/10, int(GameWidth))
	ebiten.SetWindowSize(size, size*int(GameHeight)/int(GameWidth))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if g.story != nil && g.story.Title != "" {
		ebiten.SetWindowTitle(g.story.Title)
	} else {
		ebiten.SetWindowTitle("Yolka")
	}
}

// SceneImage returns the image of a scene, loading it the first time it is
// needed. An image that fails to load is logged once and then skipped.
func (g *Gui) SceneImage(name string) *ebiten.Image {
	if img, ok := g.sceneImages[name]; ok {
		return img
	}
	if g.sceneImages == nil {
		g.sceneImages = map[string]*ebiten.Image{}
	}
	var img *ebiten.Image
	decoded, err := utils.LoadImage(g.FSys, name)
	if err != nil {
		g.logger.Printf("%v", err)
	} else {
		img = ebiten.NewImageFromImage(decoded)
	}
	g.sceneImages[name] = img
	return img
}

// ClearSceneImages drops the loaded images so that edited files are read
// again.
func (g *Gui) ClearSceneImages() {
	for _, img := range g.sceneImages {
		if img != nil {
			img.Deallocate()
		}
	}
	g.sceneImages = nil
}
