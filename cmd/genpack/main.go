// Command genpack asks Gemini for a new species and move pack and saves it
// under PACK_DIR.
//
//	genpack <name> [theme hint...]
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/tatianab/pocket-battle/internal/config"
	"github.com/tatianab/pocket-battle/internal/dex"
	"github.com/tatianab/pocket-battle/internal/generator"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: genpack <name> [theme hint...]")
		os.Exit(2)
	}
	name := os.Args[1]
	hint := strings.Join(os.Args[2:], " ")

	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.RequireGeminiKey(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	gen, err := generator.New(ctx, cfg.GeminiAPIKey)
	if err != nil {
		fmt.Printf("Error creating generator: %v\n", err)
		os.Exit(1)
	}
	defer gen.Close()

	pack, err := gen.GeneratePack(ctx, hint)
	if err != nil {
		fmt.Printf("Error generating pack: %v\n", err)
		os.Exit(1)
	}
	if err := pack.Save(cfg.PackDir, name); err != nil {
		fmt.Printf("Error saving pack: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Saved %q (%d species, %d moves) to %s\n", pack.Title, len(pack.Species), len(pack.Moves), cfg.PackDir)

	packs, err := dex.ListPacks(cfg.PackDir)
	if err != nil {
		fmt.Printf("Error listing packs: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Available packs: %s\n", strings.Join(packs, ", "))
}
