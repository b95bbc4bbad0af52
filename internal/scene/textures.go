package scene

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/effect"
	"github.com/anthonynsimon/bild/imgio"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"

	"speeder/internal/assets"
)

// decodeImage reads and decodes an image file. Safe off the window thread.
func decodeImage(path string) (image.Image, error) {
	img, err := imgio.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	return img, nil
}

// decodeHeight decodes a displacement map to single-channel gray so the shader can read .r.
func decodeHeight(path string) (image.Image, error) {
	img, err := decodeImage(path)
	if err != nil {
		return nil, err
	}
	return effect.Grayscale(img), nil
}

// uploadTiled creates a repeating, mipmapped GPU texture. Window thread only.
func uploadTiled(img image.Image) (rl.Texture2D, error) {
	rlImg := rl.NewImageFromImage(img)
	tex := rl.LoadTextureFromImage(rlImg)
	rl.UnloadImage(rlImg)
	if !rl.IsTextureValid(tex) {
		return tex, fmt.Errorf("scene: texture upload failed")
	}
	rl.GenTextureMipmaps(&tex)
	rl.SetTextureFilter(tex, rl.FilterTrilinear)
	rl.SetTextureWrap(tex, rl.WrapRepeat)
	return tex, nil
}

// loadTexture starts decoding path in the background and uploads it on the first Poll after that.
func loadTexture(log zerolog.Logger, path string, decode func(string) (image.Image, error)) *assets.Finisher[image.Image, rl.Texture2D] {
	src := assets.Load(path, func() (image.Image, error) { return decode(path) })
	return assets.Then(src, log, uploadTiled)
}
