//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// pollInput turns this tick's key presses into events. Escape and Q quit;
// any other key is reported as EventOther.
func pollInput(emit func(Event)) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		emit(EventCloseRequested)
		return
	}
	if keys := inpututil.AppendJustPressedKeys(nil); len(keys) > 0 {
		emit(EventOther)
	}
}
