package game

import (
	"context"
	"strconv"
	"strings"

	"github.com/Phoemerrion/tresoria/internal/combat"
)

// encounter fights the monster blocking the player's way and returns the
// narrative lines describing it. The caller moves the player on victory.
func (s *Session) encounter(ctx context.Context) (combat.Result, []string) {
	result := s.resolver.Encounter(ctx, &s.stats)

	lines := []string{s.messages.Encounter.Format()}
	switch result.Outcome {
	case combat.OutcomeMonsterDefeated:
		s.kills++
		lines = append(lines, s.messages.Slain.Format())
	case combat.OutcomeMonsterSurvived:
		lines = append(lines,
			s.messages.Struck.Format("damage", strconv.Itoa(result.Damage)),
			s.messages.Stalemate.Format(),
		)
	case combat.OutcomePlayerDefeated:
		lines = append(lines,
			s.messages.Struck.Format("damage", strconv.Itoa(result.Damage)),
			s.messages.Defeat.Format(),
		)
	}
	return result, lines
}

func joinLines(lines []string) string {
	return strings.Join(lines, " ")
}
