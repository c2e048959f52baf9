package game

import "errors"

// ItemKind identifies one of the four stackable bonus item types.
type ItemKind int

// Bonus item types.
const (
	ItemMissiles ItemKind = iota
	ItemShield
	ItemHeal
	ItemFreeze

	itemKindCount
)

// ItemKindCount is the number of inventory slots.
const ItemKindCount = int(itemKindCount)

// Activation failures.
var (
	ErrNoItem    = errors.New("no item in selected slot")
	ErrNoTargets = errors.New("no destroyable enemies")
)

// Inventory holds the four fixed item slots and the selected slot index.
type Inventory struct {
	Counts   [itemKindCount]int
	Selected ItemKind
}

// Count returns the quantity in a slot.
func (inv *Inventory) Count(kind ItemKind) int {
	return inv.Counts[kind]
}

// Add credits one unit of the item type.
func (inv *Inventory) Add(kind ItemKind) {
	inv.Counts[kind]++
}

// itemName returns the display name of an item type.
func itemName(kind ItemKind) string {
	switch kind {
	case ItemMissiles:
		return "Seeking Missiles"
	case ItemShield:
		return "Shield Boost"
	case ItemHeal:
		return "Health Pack"
	case ItemFreeze:
		return "Time Freeze"
	default:
		return "Unknown"
	}
}

// ItemName returns the display name of an item type.
func ItemName(kind ItemKind) string {
	return itemName(kind)
}

// CycleItem moves the selected inventory slot by dir, circularly.
func (s *Session) CycleItem(dir int) {
	step := 1
	if dir < 0 {
		step = -1
	}
	s.Items.Selected = ItemKind((int(s.Items.Selected) + step + ItemKindCount) % ItemKindCount)
}

// ActivateSelected consumes one unit from the selected slot and applies
// its effect. Quantity zero or failed preconditions leave the inventory
// and game state unchanged.
func (s *Session) ActivateSelected() error {
	if s.State != StatePlaying {
		return ErrNoItem
	}
	kind := s.Items.Selected
	if s.Items.Counts[kind] <= 0 {
		return ErrNoItem
	}
	switch kind {
	case ItemMissiles:
		if err := s.launchMissiles(); err != nil {
			return err
		}
	case ItemShield:
		s.addShield(shieldItemBonus)
	case ItemHeal:
		s.heal(healItemBonus)
	case ItemFreeze:
		s.startFreeze()
	}
	s.Items.Counts[kind]--
	s.emit(Event{Kind: EventNotify, Text: itemName(kind) + " activated"})
	return nil
}

// startFreeze zeroes enemy motion for the freeze duration. Original
// speeds come back when the timer expires; enemies spawned while frozen
// are frozen too.
func (s *Session) startFreeze() {
	s.freezeTicks = freezeDurationTks
	for _, e := range s.Enemies {
		e.Frozen = true
	}
}

// tickFreeze counts the freeze down and restores enemy motion on expiry.
func (s *Session) tickFreeze() {
	if s.freezeTicks == 0 {
		return
	}
	s.freezeTicks--
	if s.freezeTicks > 0 {
		return
	}
	for _, e := range s.Enemies {
		e.Frozen = false
	}
}

// grantRandomItem credits one random bonus item, uniform over the four
// types, and returns the granted kind.
func (s *Session) grantRandomItem() ItemKind {
	kind := ItemKind(s.rnd.Intn(ItemKindCount))
	s.Items.Add(kind)
	return kind
}
