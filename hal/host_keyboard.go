//go:build !tinygo && cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// windowKeys maps keyboard keys onto buttons. Any mapped key held down keeps
// its button grounded.
var windowKeys = map[string][]ebiten.Key{
	"UP":     {ebiten.KeyArrowUp, ebiten.KeyK},
	"DOWN":   {ebiten.KeyArrowDown, ebiten.KeyJ},
	"LEFT":   {ebiten.KeyArrowLeft, ebiten.KeyH},
	"RIGHT":  {ebiten.KeyArrowRight, ebiten.KeyL},
	"CENTER": {ebiten.KeyEnter, ebiten.KeySpace},
}

func pollWindowKeys(h *hostHAL) {
	for name, keys := range windowKeys {
		down := false
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				down = true
				break
			}
		}
		h.press(name, down)
	}
}

func quitRequested() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
