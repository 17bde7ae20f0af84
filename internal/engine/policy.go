package engine

//go:generate mockgen -destination=mock/mock_policy.go -package=enginemock github.com/pocketrpg/battle-core/internal/engine Policy

import (
	"github.com/pocketrpg/battle-core/internal/entities"
)

// Policy decides an enemy's action for their turn
type Policy interface {
	// ChooseAction picks the enemy's move. Implementations may consult
	// and mutate the enemy's ability cooldowns.
	ChooseAction(enemy *entities.Enemy) (Action, error)
}
