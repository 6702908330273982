// Command handview shows a hand of cards laid out along a curve in a window.
//
// Keys 1 to 7 switch the curve preset, up and down draw and play cards, M
// cycles the spacing mode and R toggles rotation. Cards can be picked up and
// dragged with the mouse.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cardonline/curve/config"
	"github.com/cardonline/curve/hand"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

const (
	screenWidth  = 960
	screenHeight = 540
)

func main() {
	cfgPath := flag.String("config", "", "YAML configuration `file`")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		cfg, err = config.Load(*cfgPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "handview:", err)
			os.Exit(1)
		}
	}
	log, err := cfg.Logger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "handview:", err)
		os.Exit(1)
	}
	defer log.Sync()

	h := hand.New(append(cfg.HandOptions(), hand.WithLogger(log))...)
	for _, name := range cfg.Hand {
		h.Draw(name)
	}
	g := newGame(h, log)

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("handview")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal("run game", zap.Error(err))
	}
}
