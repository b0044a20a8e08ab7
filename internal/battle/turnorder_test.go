package battle

import (
	"math/rand/v2"
	"testing"

	"github.com/tatianab/pocket-battle/internal/pokemon"
	"github.com/tatianab/pocket-battle/internal/typechart"
)

func TestOrderFasterActsFirst(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	fast := &pokemon.Pokemon{Name: "Pidgey", Stats: pokemon.Stats{Speed: 10}}
	slow := &pokemon.Pokemon{Name: "Oddish", Stats: pokemon.Stats{Speed: 5}}
	gust := &pokemon.Move{Name: "Gust", Type: typechart.Normal, BasePower: 40}
	vine := &pokemon.Move{Name: "Vine Whip", Type: typechart.Grass, BasePower: 45}

	for i := 0; i < 100; i++ {
		turn := Order(fast, gust, slow, vine, rng)
		if turn.First != fast || turn.FirstMove != gust || turn.Second != slow || turn.SecondMove != vine {
			t.Fatalf("trial %d: fast player did not act first", i)
		}

		turn = Order(slow, vine, fast, gust, rng)
		if turn.First != fast || turn.FirstMove != gust || turn.Second != slow || turn.SecondMove != vine {
			t.Fatalf("trial %d: fast opponent did not act first", i)
		}
	}
}

func TestOrderTieIsCoinFlip(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 1024))
	player := &pokemon.Pokemon{Name: "Charmander", Stats: pokemon.Stats{Speed: 9}}
	opponent := &pokemon.Pokemon{Name: "Squirtle", Stats: pokemon.Stats{Speed: 9}}

	const trials = 1000
	playerFirst := 0
	for i := 0; i < trials; i++ {
		if Order(player, nil, opponent, nil, rng).First == player {
			playerFirst++
		}
	}

	if playerFirst < 450 || playerFirst > 550 {
		t.Errorf("player acted first %d/%d times, want 50%% ± 5%%", playerFirst, trials)
	}
}

func TestChooseMove(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 9))
	tackle := &pokemon.Move{Name: "Tackle", Type: typechart.Normal, BasePower: 40}
	ember := &pokemon.Move{Name: "Ember", Type: typechart.Fire, BasePower: 40}

	empty := &pokemon.Pokemon{Name: "Magikarp"}
	if got := ChooseMove(rng, empty); got != nil {
		t.Errorf("expected nil move for empty move list, got %v", got.Name)
	}

	p := &pokemon.Pokemon{Name: "Vulpix"}
	p.Moves[1] = tackle
	p.Moves[3] = ember

	seen := map[*pokemon.Move]int{}
	for i := 0; i < 400; i++ {
		m := ChooseMove(rng, p)
		if m == nil {
			t.Fatal("chose an empty slot")
		}
		seen[m]++
	}
	if seen[tackle] < 150 || seen[ember] < 150 {
		t.Errorf("move choice not uniform: %v tackle, %v ember", seen[tackle], seen[ember])
	}
}
