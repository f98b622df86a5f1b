// Package combat resolves encounters between the player and a monster.
//
// An encounter is a single comparison, not a duel: if the player's strength
// reaches the monster's health the monster dies and the player is fully
// healed; otherwise the monster strikes once and both sides part ways,
// unless the strike was fatal.
package combat

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/Phoemerrion/tresoria/internal/entity"
	"github.com/Phoemerrion/tresoria/internal/random"
	"github.com/Phoemerrion/tresoria/internal/telemetry"
)

// Outcome is the end state of an encounter.
type Outcome int

const (
	// OutcomeNone means no encounter took place.
	OutcomeNone Outcome = iota
	// OutcomeMonsterDefeated means the player killed the monster.
	OutcomeMonsterDefeated
	// OutcomeMonsterSurvived means the monster struck and the player lived.
	OutcomeMonsterSurvived
	// OutcomePlayerDefeated means the monster's strike was fatal.
	OutcomePlayerDefeated
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeMonsterDefeated:
		return "monster_defeated"
	case OutcomeMonsterSurvived:
		return "monster_survived"
	case OutcomePlayerDefeated:
		return "player_defeated"
	default:
		return "unknown"
	}
}

// Result describes a resolved encounter.
type Result struct {
	Outcome Outcome
	Monster entity.Monster
	Damage  int // health the player lost
	Healed  int // health the player regained
}

// Resolver rolls monsters and resolves encounters.
type Resolver struct {
	rng random.Source
}

// NewResolver creates a resolver drawing monster stats from rng.
func NewResolver(rng random.Source) *Resolver {
	return &Resolver{rng: rng}
}

// RollMonster draws a fresh monster with uniform health and strength.
// Health is rolled before strength.
func (r *Resolver) RollMonster() entity.Monster {
	return entity.Monster{
		Health:   entity.MinMonsterHealth + r.rng.Intn(entity.MaxMonsterHealth-entity.MinMonsterHealth),
		Strength: entity.MinMonsterStrength + r.rng.Intn(entity.MaxMonsterStrength-entity.MinMonsterStrength),
	}
}

// Resolve settles an encounter between player and m, mutating the
// player's health.
func (r *Resolver) Resolve(player *entity.Stats, m entity.Monster) Result {
	if player.Strength >= m.Health {
		return Result{
			Outcome: OutcomeMonsterDefeated,
			Monster: m,
			Healed:  player.Restore(),
		}
	}

	player.TakeDamage(m.Strength)
	result := Result{
		Outcome: OutcomeMonsterSurvived,
		Monster: m,
		Damage:  m.Strength,
	}
	if !player.IsAlive() {
		result.Outcome = OutcomePlayerDefeated
	}
	return result
}

// Encounter rolls a monster and resolves it against player.
func (r *Resolver) Encounter(ctx context.Context, player *entity.Stats) Result {
	tracer := telemetry.Tracer("combat")
	_, span := tracer.Start(ctx, "combat.encounter")
	defer span.End()

	m := r.RollMonster()
	result := r.Resolve(player, m)

	span.SetAttributes(
		attribute.Int("monster.health", m.Health),
		attribute.Int("monster.strength", m.Strength),
		attribute.Int("player.strength", player.Strength),
		attribute.Int("player.health_remaining", player.Health),
		attribute.String("outcome", result.Outcome.String()),
	)
	return result
}
