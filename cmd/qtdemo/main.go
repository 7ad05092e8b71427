// Command qtdemo shows punch, shake and jump effects on a box followed
// by a shaking camera.
//
// Keys: P punch, S shake, J jump, C camera shake, F fade, R reset.
//
// With -presets, effect parameters are read from the given YAML file
// and reloaded whenever it changes. Otherwise the built-in presets
// are used.
package main

import (
	"context"
	_ "embed"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	_ "github.com/silbinarywolf/preferdiscretegpu"
	"go.uber.org/zap"

	"github.com/edwinsyarief/quicktween/internal/logging"
	"github.com/edwinsyarief/quicktween/preset"
)

//go:embed presets.yaml
var builtinPresets []byte

func main() {
	presetsPath := flag.String("presets", "", "YAML preset file to load and watch for changes")
	logLevel := flag.String("log", "info", "log level: debug, info, warn or error")
	fullscreen := flag.Bool("fullscreen", false, "start in fullscreen mode")
	flag.Parse()

	logger, err := logging.New(*logLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	presets, err := preset.Parse(builtinPresets)
	if err != nil {
		log.Fatal(err)
	}
	if *presetsPath != "" {
		presets, err = preset.Load(*presetsPath)
		if err != nil {
			log.Fatal(err)
		}
	}

	game := newGame(presets, logger)

	if *presetsPath != "" {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		watcher, err := preset.Watch(ctx, *presetsPath, logger, game.setPresets)
		if err != nil {
			log.Fatal(err)
		}
		defer watcher.Close()
	}

	logger.Info("starting demo", zap.String("presets", *presetsPath))
	ebiten.SetWindowSize(logicalWidth*4, logicalHeight*4)
	ebiten.SetWindowTitle("quicktween demo")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(*fullscreen)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
