package main

import (
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"

	"speeder/internal/assets"
	"speeder/internal/audio"
	"speeder/internal/config"
	"speeder/internal/debug"
	"speeder/internal/game"
	"speeder/internal/graphics"
	"speeder/internal/logger"
	"speeder/internal/scene"
)

func main() {
	boot := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if err := config.LoadEnv(config.DefaultEnvFile); err != nil {
		boot.Fatal().Err(err).Msg("load .env")
	}
	cfg, err := config.Load(config.Path())
	if err != nil {
		boot.Fatal().Err(err).Msg("load config")
	}
	log, closer, err := logger.New(os.Stderr, cfg.Log.File, cfg.Log.Level)
	if err != nil {
		boot.Fatal().Err(err).Msg("open log")
	}
	defer closer.Close()

	log.Info().
		Float32("maxSpeed", cfg.Vehicle.MaxSpeed).
		Float32("acceleration", cfg.Vehicle.Acceleration).
		Str("model", cfg.Model.Path).
		Msg("starting speeder")

	app := game.New(cfg)
	overlay := debug.New(cfg.Debug.ShowFPS, cfg.Debug.ShowSpeed)
	var (
		renderer *scene.Renderer
		sound    *assets.Finisher[string, *audio.Music]
		music    *audio.Music
	)

	graphics.Run(cfg.Window, graphics.Hooks{
		Start: func() {
			if !audio.Init() {
				log.Warn().Msg("audio device unavailable")
			}
			renderer = scene.New(log, cfg)
			src := assets.Load(cfg.Sound.Path, func() (string, error) { return audio.Check(cfg.Sound.Path) })
			sound = assets.Then(src, log, func(path string) (*audio.Music, error) {
				return audio.Open(path, cfg.Sound.Volume)
			})
		},
		Resize: func(w, h int32) {
			app.Resize(w, h)
			log.Debug().Int32("width", w).Int32("height", h).Msg("resized")
		},
		Update: func() {
			if renderer.Poll() {
				app.BindModel()
			}
			if music == nil {
				if m, ok := sound.Poll(); ok {
					music = m
					app.BindSound(m)
				}
			}
			for r := rl.GetCharPressed(); r != 0; r = rl.GetCharPressed() {
				app.HandleKey(r)
			}
			app.Frame()
			if music != nil {
				music.Update()
			}
		},
		Draw: func() {
			renderer.Draw(app.View())
			overlay.Draw(app.Vehicle.Speed, app.Vehicle.Heading)
		},
		Stop: func() {
			if music != nil {
				music.Close()
			}
			renderer.Unload()
			audio.CloseDevice()
			log.Info().Msg("shutdown")
		},
	})
}
