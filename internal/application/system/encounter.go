package system

import (
	"github.com/younwookim/herotiles/internal/domain/entity"
	"github.com/younwookim/herotiles/internal/infrastructure/config"
)

// EncounterResult is the outcome of one proximity check
type EncounterResult struct {
	// CaughtBy is the first enemy within catch distance, or nil
	CaughtBy *entity.Enemy
	// Collected counts the items picked up by this check
	Collected int
}

// EncounterSystem evaluates hero-enemy contact and item pickup
type EncounterSystem struct {
	catchDistance   float64
	collectDistance float64

	// Event callbacks
	OnCaught  func(e *entity.Enemy)
	OnCollect func(it *entity.Item)
}

// NewEncounterSystem creates a new encounter system
func NewEncounterSystem(cfg config.RulesConfig) *EncounterSystem {
	return &EncounterSystem{
		catchDistance:   cfg.CatchDistance,
		collectDistance: cfg.CollectDistance,
	}
}

// Resolve checks contact first. A caught hero collects nothing on that tick.
// Items are flagged, never removed, so each one is counted at most once.
func (s *EncounterSystem) Resolve(hero *entity.Hero, enemies []*entity.Enemy) EncounterResult {
	var res EncounterResult

	for _, e := range enemies {
		if hero.DistanceTo(e.X, e.Y) < s.catchDistance {
			res.CaughtBy = e
			if s.OnCaught != nil {
				s.OnCaught(e)
			}
			return res
		}
	}

	for _, e := range enemies {
		it := e.Item
		if it == nil || it.Collected {
			continue
		}
		if hero.DistanceTo(it.X, it.Y) < s.collectDistance && it.Collect() {
			res.Collected++
			if s.OnCollect != nil {
				s.OnCollect(it)
			}
		}
	}

	return res
}
