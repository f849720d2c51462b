package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/flappy/internal/core"
)

var (
	flapKeys    = []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW}
	restartKeys = []ebiten.Key{ebiten.KeyR}
	pauseKeys   = []ebiten.Key{ebiten.KeyP}
	quitKeys    = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}
)

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// readInput collects this tick's actions. Flap keys restart once the game is
// over. Ctrl+C quits like Esc.
func readInput(gameOver bool) (core.InputFrame, bool) {
	in := core.NewInputFrame()

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)
	if anyJustPressed(quitKeys) || (ctrl && inpututil.IsKeyJustPressed(ebiten.KeyC)) {
		return in, true
	}

	if anyJustPressed(flapKeys) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if gameOver {
			in.Set(core.ActionRestart)
		} else {
			in.Set(core.ActionJump)
		}
	}
	if anyJustPressed(restartKeys) {
		in.Set(core.ActionRestart)
	}
	if anyJustPressed(pauseKeys) {
		in.Set(core.ActionPause)
	}
	return in, false
}
