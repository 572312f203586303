package game

import (
	"errors"
	"fmt"
)

// Precondition errors. The engine itself assumes these were checked by the
// caller; the CLI uses them to refuse before invoking a mutating call.
var (
	ErrNoFood    = errors.New("no food left")
	ErrPetFull   = errors.New("pet is already full")
	ErrNoTickets = errors.New("no gacha tickets")
)

var (
	ErrNotCompleted   = errors.New("mission not completed yet")
	ErrAlreadyClaimed = errors.New("mission reward already claimed")
)

// NotFoundError reports an unknown mission, shop item or skin id.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("unknown %s: %s", e.Kind, e.ID)
}

// NotOwnedError reports a skin-equip attempt for an item outside the
// collection.
type NotOwnedError struct {
	SkinID string
}

func (e *NotOwnedError) Error() string {
	return fmt.Sprintf("skin %s is not in your collection", e.SkinID)
}

type InsufficientCoinsError struct {
	Need int
	Have int
}

func (e *InsufficientCoinsError) Error() string {
	return fmt.Sprintf("not enough coins: need %d, have %d", e.Need, e.Have)
}

// ValidationError reports rejected user input, currently only pet names.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }
