package debug

import (
	"fmt"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh the text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug holds the diagnostic overlay (FPS, speed/heading). All overlays are off by default.
type Debug struct {
	ShowFPS    bool
	ShowSpeed  bool
	frameCount uint32
	fpsText    string
	speedText  string
}

// New returns an overlay with the given lines enabled.
func New(showFPS, showSpeed bool) *Debug {
	return &Debug{ShowFPS: showFPS, ShowSpeed: showSpeed}
}

// Lines returns the overlay text for this frame, refreshing it every updateInterval frames.
func (d *Debug) Lines(fps int32, speed, heading float32) []string {
	d.frameCount++
	update := d.frameCount%updateInterval == 0 || d.frameCount == 1
	var out []string
	if d.ShowFPS {
		if update || d.fpsText == "" {
			d.fpsText = fmt.Sprintf("FPS: %d", fps)
		}
		out = append(out, d.fpsText)
	}
	if d.ShowSpeed {
		if update || d.speedText == "" {
			d.speedText = fmt.Sprintf("Speed: %.2f  Heading: %.1f°", speed, heading*180/math32.Pi)
		}
		out = append(out, d.speedText)
	}
	return out
}

// Draw renders enabled lines at the top-right in green. Call after the 3D scene.
func (d *Debug) Draw(speed, heading float32) {
	if !d.ShowFPS && !d.ShowSpeed {
		return
	}
	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)
	for _, text := range d.Lines(rl.GetFPS(), speed, heading) {
		w := rl.MeasureText(text, fontSize)
		rl.DrawText(text, screenW-w-padding, y, fontSize, rl.Green)
		y += lineHeight
	}
}
