package battleship

import (
	"math/rand"
	"testing"
)

func TestBattleshipGameManager(t *testing.T) {
	bgm := NewBattleshipGameManager()
	rng := rand.New(rand.NewSource(11))
	fc := DefaultFleetConfig()

	game, err := bgm.CreateGame(rng, fc, NewRandomMoveSource(rng, fc.GridSize), NewRandomMoveSource(rng, fc.GridSize))
	if err != nil {
		t.Fatal(err)
	}
	if len(game.Uuid()) != 6 {
		t.Fatalf("expected 6 char game uuid\tgot: %q", game.Uuid())
	}

	found, err := bgm.GetGame(game.Uuid())
	if err != nil {
		t.Fatal(err)
	}
	if found != game {
		t.Fatal("fetched game is not the created one")
	}
	if bgm.CountGames() != 1 {
		t.Fatalf("expected 1 game\tgot: %d", bgm.CountGames())
	}

	bgm.TerminateGame(game.Uuid())
	if _, err := bgm.GetGame(game.Uuid()); err == nil {
		t.Fatal("expected error for terminated game")
	}
	if bgm.CountGames() != 0 {
		t.Fatalf("expected 0 games\tgot: %d", bgm.CountGames())
	}

	fc.GridSize = 0
	if _, err := bgm.CreateGame(rng, fc, nil, nil); err == nil {
		t.Fatal("expected invalid config to fail")
	}
}
