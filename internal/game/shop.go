package game

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"shellgotchi/internal/storage"
	"shellgotchi/internal/tables"
)

const (
	PetNameMinLen = 1
	PetNameMaxLen = 20
)

type PurchaseResult struct {
	Item      tables.ShopItem
	CoinsLeft int
}

// BuyItem exchanges coins for a catalog item's reward bundle. A price
// exactly equal to the balance succeeds and leaves zero coins.
func (e *Engine) BuyItem(st *storage.State, id string) (*PurchaseResult, error) {
	item, ok := e.Tables.ShopItemByID(id)
	if !ok {
		return nil, &NotFoundError{Kind: "shop item", ID: id}
	}
	if st.User.Coins < item.Price {
		return nil, &InsufficientCoinsError{Need: item.Price, Have: st.User.Coins}
	}

	st.User.Coins -= item.Price
	applyReward(&st.User, item.Reward)

	return &PurchaseResult{Item: item, CoinsLeft: st.User.Coins}, nil
}

type SkinChange struct {
	OldID string
	NewID string
}

// ChangeSkin equips an owned skin. The collection membership check keeps
// the skin_id ⊆ collection invariant.
func (e *Engine) ChangeSkin(st *storage.State, skinID string) (*SkinChange, error) {
	if !contains(st.Collection, skinID) {
		return nil, &NotOwnedError{SkinID: skinID}
	}

	old := st.Pet.SkinID
	st.Pet.SkinID = skinID
	return &SkinChange{OldID: old, NewID: skinID}, nil
}

type RenameResult struct {
	OldName string
	NewName string
}

// RenamePet validates and applies a new pet name (1-20 characters after
// trimming).
func (e *Engine) RenamePet(st *storage.State, name string) (*RenameResult, error) {
	name = strings.TrimSpace(name)
	if n := utf8.RuneCountInString(name); n < PetNameMinLen || n > PetNameMaxLen {
		return nil, &ValidationError{
			Msg: fmt.Sprintf("pet name must be %d-%d characters", PetNameMinLen, PetNameMaxLen),
		}
	}

	old := st.Pet.Name
	st.Pet.Name = name
	return &RenameResult{OldName: old, NewName: name}, nil
}
