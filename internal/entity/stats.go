// Package entity provides the player and monster stat blocks.
package entity

// Stats holds the player's combat stats.
// Health never exceeds MaxHealth but may drop below zero after a fatal
// strike.
type Stats struct {
	Health    int
	MaxHealth int
	Strength  int
}

// DefaultStats returns the starting stats of a new player.
func DefaultStats() Stats {
	return Stats{Health: 100, MaxHealth: 100, Strength: 30}
}

// IsAlive returns true if the player has health remaining.
func (s *Stats) IsAlive() bool { return s.Health > 0 }

// TakeDamage subtracts amount from health without clamping and returns the
// resulting health.
func (s *Stats) TakeDamage(amount int) int {
	if amount > 0 {
		s.Health -= amount
	}
	return s.Health
}

// Restore heals to full health and returns the amount healed.
func (s *Stats) Restore() int {
	healed := s.MaxHealth - s.Health
	s.Health = s.MaxHealth
	return healed
}
