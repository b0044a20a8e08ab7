package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/tatianab/pocket-battle/internal/config"
	"github.com/tatianab/pocket-battle/internal/dex"
	"github.com/tatianab/pocket-battle/internal/tui"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := cfg.NewLogger()
	if err != nil {
		fmt.Printf("Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	d, err := loadDex(cfg)
	if err != nil {
		fmt.Printf("Error loading pack: %v\n", err)
		os.Exit(1)
	}

	player, err := d.NewPokemon(cfg.PlayerSpecies, cfg.PlayerLevel)
	if err != nil {
		fmt.Printf("Error creating player: %v\n", err)
		os.Exit(1)
	}

	seed := cfg.Seed
	if !cfg.HasSeed {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Info("starting", "pack", d.Pack().Title, "player", player.String(), "seed", seed)

	err = tui.Run(&tui.Game{
		Dex:    d,
		Player: player,
		Rand:   rand.New(rand.NewPCG(seed, seed>>1)),
		Logger: logger,
	})
	if err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

func loadDex(cfg *config.Config) (*dex.Dex, error) {
	if cfg.PackName == "" {
		return dex.Default()
	}
	pack, err := dex.LoadPack(cfg.PackDir, cfg.PackName)
	if err != nil {
		return nil, err
	}
	return dex.New(pack)
}
