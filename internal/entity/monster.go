package entity

// Monster stat ranges, half-open.
const (
	MinMonsterHealth   = 20
	MaxMonsterHealth   = 70
	MinMonsterStrength = 10
	MaxMonsterStrength = 30
)

// Monster is the stat block of a monster for a single encounter. A fresh
// one is rolled every time the player bumps into a monster tile.
type Monster struct {
	Health   int
	Strength int
}
