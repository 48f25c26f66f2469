//go:build js && wasm

package main

import (
	"errors"
	"syscall/js"
)

func getUsername() string {
	// Retrieve parameter from JavaScript global scope.
	username := js.Global().Get("username")
	if username.Type() != js.TypeString {
		return ""
	}
	return username.String()
}

// storeSave hands the save to the browser as a download.
func (g *Gui) storeSave(name string, data []byte) (string, error) {
	doc := js.Global().Get("document")
	if doc.IsUndefined() {
		return "", errors.ErrUnsupported
	}
	bytes := js.Global().Get("Uint8Array").New(len(data))
	js.CopyBytesToJS(bytes, data)
	blob := js.Global().Get("Blob").New([]any{bytes},
		map[string]any{"type": "application/json"})
	url := js.Global().Get("URL").Call("createObjectURL", blob)
	defer js.Global().Get("URL").Call("revokeObjectURL", url)

	a := doc.Call("createElement", "a")
	a.Set("href", url)
	a.Set("download", name)
	a.Get("style").Set("display", "none")
	body := doc.Get("body")
	body.Call("appendChild", a)
	a.Call("click")
	body.Call("removeChild", a)
	return "your downloads", nil
}

func (g *Gui) loadAvailable() bool {
	return !js.Global().Get("document").IsUndefined()
}

// pickSaveFile opens the browser's file dialog. The chosen file is read
// asynchronously and queued for the next Update.
func (g *Gui) pickSaveFile() {
	doc := js.Global().Get("document")
	if doc.IsUndefined() {
		return
	}
	input := doc.Call("createElement", "input")
	input.Set("type", "file")
	input.Set("accept", ".json,.gamesave")

	var onChange js.Func
	onChange = js.FuncOf(func(this js.Value, args []js.Value) any {
		defer onChange.Release()
		files := input.Get("files")
		if files.Length() == 0 {
			return nil
		}
		file := files.Index(0)
		name := file.Get("name").String()

		var onText js.Func
		onText = js.FuncOf(func(this js.Value, args []js.Value) any {
			defer onText.Release()
			g.queuePickedFile(PickedFile{Name: name, Data: []byte(args[0].String())})
			return nil
		})
		file.Call("text").Call("then", onText)
		return nil
	})
	input.Call("addEventListener", "change", onChange)
	input.Call("click")
}
