// Package data holds the files the game ships with. When the game runs from
// a folder that has a data directory, that directory is read instead, so the
// files can be edited without rebuilding.
package data

import "embed"

//go:embed *.yaml images/*.png
var Files embed.FS
