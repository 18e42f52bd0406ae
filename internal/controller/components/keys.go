package components

import (
	"slices"

	"github.com/samber/lo"
)

// VirtualKey is the shared vocabulary between keyboard and gamepad input.
// Values match the DOM key names so keyboard events map onto them directly.
type VirtualKey string

const (
	KeyArrowLeft  VirtualKey = "ArrowLeft"
	KeyArrowRight VirtualKey = "ArrowRight"
	KeyArrowUp    VirtualKey = "ArrowUp"
	KeyArrowDown  VirtualKey = "ArrowDown"
)

// ArrowKeys lists the directional keys in left, right, up, down order.
var ArrowKeys = []VirtualKey{KeyArrowLeft, KeyArrowRight, KeyArrowUp, KeyArrowDown}

// KeySet is a set of active virtual keys. The zero value is not usable; use
// NewKeySet or NewInput.
type KeySet map[VirtualKey]struct{}

// NewKeySet returns a set holding keys.
func NewKeySet(keys ...VirtualKey) KeySet {
	s := make(KeySet, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

func (s KeySet) Add(k VirtualKey) {
	s[k] = struct{}{}
}

func (s KeySet) Has(k VirtualKey) bool {
	_, ok := s[k]
	return ok
}

func (s KeySet) Delete(k VirtualKey) {
	delete(s, k)
}

// Clear empties the set in place so holders of the map see the change.
func (s KeySet) Clear() {
	clear(s)
}

func (s KeySet) Len() int {
	return len(s)
}

// Sorted returns the keys in lexical order, for logs and comparisons.
func (s KeySet) Sorted() []VirtualKey {
	keys := lo.Keys(map[VirtualKey]struct{}(s))
	slices.Sort(keys)
	return keys
}

// Strings returns Sorted as plain strings.
func (s KeySet) Strings() []string {
	return lo.Map(s.Sorted(), func(k VirtualKey, _ int) string { return string(k) })
}
