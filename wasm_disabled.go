//go:build !(js && wasm)

package main

import (
	"os"
	"path/filepath"

	"github.com/marisvali/yolka/story"
	"github.com/marisvali/yolka/utils"
)

func getUsername() string {
	return os.Getenv("USER")
}

// storeSave writes the save into SaveDir and returns its path.
func (g *Gui) storeSave(name string, data []byte) (string, error) {
	path := filepath.Join(g.SaveDir, name)
	return path, utils.TryWriteFile(path, data)
}

// On desktop there is no file dialog, the file to load comes from the
// config.
func (g *Gui) loadAvailable() bool {
	return g.LoadFile != ""
}

func (g *Gui) pickSaveFile() {
	data, err := os.ReadFile(g.LoadFile)
	if err != nil {
		g.logger.Printf("%v", err)
		g.controller.Notify("Could not open "+g.LoadFile, story.LevelError)
		return
	}
	g.queuePickedFile(PickedFile{Name: g.LoadFile, Data: data})
}
