package main

import (
	_ "embed"
	"flag"
	"log"

	"github.com/edwinsyarief/framecam"
	"github.com/edwinsyarief/framecam/hotreload"
	"github.com/hajimehoshi/ebiten/v2"
	_ "github.com/silbinarywolf/preferdiscretegpu"
)

//go:embed camera.yaml
var defaultConfig []byte

func main() {
	configPath := flag.String("config", "", "camera config file (yaml), hot reloaded on change")
	thunder := flag.Duration("thunder", 0, "trigger a background rumble from another goroutine at this interval (0 disables)")
	noSnap := flag.Bool("nosnap", false, "disable pixel snapping")
	flag.Parse()

	cfg, err := framecam.ParseConfig(defaultConfig)
	if err != nil {
		log.Fatal(err)
	}
	var watcher *hotreload.Watcher
	if *configPath != "" {
		cfg, err = framecam.LoadConfig(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		watcher, err = hotreload.New(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		defer watcher.Close()
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowTitle("framecam demo")

	game := NewGame(cfg, watcher, !*noSnap)
	if *thunder > 0 {
		game.StartThunder(*thunder)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
