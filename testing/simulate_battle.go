package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"strings"

	"github.com/tatianab/pocket-battle/internal/battle"
	"github.com/tatianab/pocket-battle/internal/config"
	"github.com/tatianab/pocket-battle/internal/dex"
	"github.com/tatianab/pocket-battle/internal/headless"
)

const maxRounds = 50

func main() {
	encounters := flag.Int("n", 10, "number of encounters to simulate")
	verbose := flag.Bool("v", false, "print every battle message")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger, closeLog, err := cfg.NewLogger()
	if err != nil {
		log.Fatalf("Failed to open log: %v", err)
	}
	defer closeLog()

	d := loadDex(cfg)
	player, err := d.NewPokemon(cfg.PlayerSpecies, cfg.PlayerLevel)
	if err != nil {
		log.Fatalf("Failed to create player: %v", err)
	}

	seed := cfg.Seed
	if !cfg.HasSeed {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed>>1))
	fmt.Printf("Pack %q, seed %d, player %s\n\n", d.Pack().Title, seed, player)

	p := headless.New(logger)
	wins := 0
	for i := 1; i <= *encounters; i++ {
		level := max(1, player.Level-1+rng.IntN(3))
		opponent, err := d.NewPokemon(d.RandomSpecies(rng), level)
		if err != nil {
			log.Fatalf("Failed to create opponent: %v", err)
		}
		player.Heal()

		p.Reset()
		eng := battle.NewEngine(player, opponent, p.Services(),
			battle.WithRand(rng),
			battle.WithLogger(logger),
		)
		for eng.Phase() != battle.Ended && eng.Round() < maxRounds {
			eng.StartRound(battle.ChooseMove(rng, player))
		}

		fmt.Printf("--- Encounter %d: %s vs %s ---\n", i, player, opponent)
		if *verbose {
			fmt.Println(strings.Join(p.Messages(), "\n"))
		}
		fmt.Printf("Result: %s after %d rounds", eng.Outcome(), eng.Round())
		if eng.Outcome() == battle.Won {
			wins++
			fmt.Printf(", +%d exp", eng.ExperienceEarned())
			if n := eng.LevelsGained(); n > 0 {
				fmt.Printf(", +%d levels", n)
			}
		}
		fmt.Print("\n\n")
	}

	fmt.Printf("Won %d of %d. %s finished at level %d.\n", wins, *encounters, player.Name, player.Level)
}

func loadDex(cfg *config.Config) *dex.Dex {
	if cfg.PackName == "" {
		d, err := dex.Default()
		if err != nil {
			log.Fatalf("Failed to load built-in pack: %v", err)
		}
		return d
	}
	pack, err := dex.LoadPack(cfg.PackDir, cfg.PackName)
	if err != nil {
		log.Fatalf("Failed to load pack: %v", err)
	}
	d, err := dex.New(pack)
	if err != nil {
		log.Fatalf("Failed to load pack: %v", err)
	}
	return d
}
