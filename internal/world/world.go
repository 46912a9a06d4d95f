// Package world is the small piece of simulated state the built-in
// commands act on: inventories, positions and the time of day.
package world

import (
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"
)

// TicksPerDay is the length of a day; one tick is 50ms of game time.
const (
	TicksPerDay  = 24000
	TickDuration = 50 * time.Millisecond
)

// Item is something an actor can carry.
type Item string

// Items lists every item give accepts.
var Items = []Item{"stone", "dirt", "stick", "torch", "diamond"}

// ItemName renders an item for choices and usage.
func ItemName(i Item) string { return string(i) }

// TimePreset is a named time of day.
type TimePreset int

const (
	Day      TimePreset = 1000
	Noon     TimePreset = 6000
	Night    TimePreset = 13000
	Midnight TimePreset = 18000
)

// TimePresets lists the presets in order of the day.
var TimePresets = []TimePreset{Day, Noon, Night, Midnight}

func (p TimePreset) String() string {
	switch p {
	case Day:
		return "day"
	case Noon:
		return "noon"
	case Night:
		return "night"
	case Midnight:
		return "midnight"
	default:
		return fmt.Sprintf("%d", int(p))
	}
}

// Position is a point in the world.
type Position struct {
	X, Y, Z float64
}

func (p Position) String() string {
	return fmt.Sprintf("%.1f %.1f %.1f", p.X, p.Y, p.Z)
}

// Stack is an amount of one item.
type Stack struct {
	Item   Item
	Amount int
}

// World holds per-actor state. It is safe for concurrent use.
type World struct {
	mu        sync.RWMutex
	ticks     int
	inventory map[string]map[Item]int
	positions map[string]Position
}

// New returns a world at dawn with empty inventories.
func New() *World {
	return &World{
		inventory: make(map[string]map[Item]int),
		positions: make(map[string]Position),
	}
}

// Give adds amount of item to actor and returns the new total.
func (w *World) Give(actor string, item Item, amount int) (int, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("give %s: amount must be positive, got %d", item, amount)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	inv, ok := w.inventory[actor]
	if !ok {
		inv = make(map[Item]int)
		w.inventory[actor] = inv
	}
	inv[item] += amount
	return inv[item], nil
}

// Inventory returns actor's stacks sorted by item.
func (w *World) Inventory(actor string) []Stack {
	w.mu.RLock()
	defer w.mu.RUnlock()

	inv := w.inventory[actor]
	out := make([]Stack, 0, len(inv))
	for _, item := range slices.Sorted(maps.Keys(inv)) {
		out = append(out, Stack{Item: item, Amount: inv[item]})
	}
	return out
}

// Teleport moves actor to pos and returns where it was.
func (w *World) Teleport(actor string, pos Position) Position {
	w.mu.Lock()
	defer w.mu.Unlock()
	prev := w.positions[actor]
	w.positions[actor] = pos
	return prev
}

// Position returns where actor is; actors start at the origin.
func (w *World) Position(actor string) Position {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.positions[actor]
}

// SetTime sets the time of day.
func (w *World) SetTime(p TimePreset) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.ticks = int(p) % TicksPerDay
}

// AddTime advances the clock by d and returns the new tick of the day.
// Negative durations turn the clock back.
func (w *World) AddTime(d time.Duration) int {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.ticks = ((w.ticks+int(d/TickDuration))%TicksPerDay + TicksPerDay) % TicksPerDay
	return w.ticks
}

// Time returns the current tick of the day.
func (w *World) Time() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.ticks
}
