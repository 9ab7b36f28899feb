package main

import (
	"log"
	"sync"

	"golang.design/x/clipboard"
)

var (
	clipboardOnce sync.Once
	clipboardErr  error
)

// copyText places text on the system clipboard. The clipboard is
// initialised on first use; on systems without one the copy is logged and
// dropped.
func copyText(text string) {
	clipboardOnce.Do(func() {
		clipboardErr = clipboard.Init()
	})
	if clipboardErr != nil {
		log.Printf("clipboard: unavailable: %v", clipboardErr)
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	log.Printf("clipboard: copied best times")
}
