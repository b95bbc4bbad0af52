package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"speeder/internal/config"
)

// Hooks are the callbacks driven by Run. All run on the window thread, one at a time.
type Hooks struct {
	// Start runs once after the window and GL context exist.
	Start func()
	// Resize runs when the window size changes.
	Resize func(width, height int32)
	// Update runs once per frame before drawing (input, simulation).
	Update func()
	// Draw runs between BeginDrawing and EndDrawing.
	Draw func()
	// Stop runs once before the window closes.
	Stop func()
}

// Run opens a resizable window and runs the main loop until it is closed.
// Each frame it reports resizes, calls Update, then clears the screen and calls Draw.
func Run(win config.Window, h Hooks) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(win.Width, win.Height, win.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(win.TargetFPS)
	call(h.Start)
	defer call(h.Stop)

	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() && h.Resize != nil {
			h.Resize(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
		}
		call(h.Update)

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		call(h.Draw)
		rl.EndDrawing()
	}
}

func call(f func()) {
	if f != nil {
		f()
	}
}
