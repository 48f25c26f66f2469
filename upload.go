package main

import (
	"log"

	"github.com/google/uuid"
)

// SaveUpload is a save file waiting to be sent to the server.
type SaveUpload struct {
	Id   uuid.UUID
	Data []byte
}

// UploadSaves sends saves to the server, one at a time, as they arrive on the
// channel. It runs on its own goroutine so that a slow server never stalls
// the game. It returns when the channel is closed.
func UploadSaves(url string, user string, saves <-chan SaveUpload, logger *log.Logger) {
	for s := range saves {
		if err := UploadSaveHttp(url, user, ReleaseVersion, s.Id, s.Data); err != nil {
			logger.Printf("failed to upload save %s: %v", s.Id, err)
		}
	}
}
