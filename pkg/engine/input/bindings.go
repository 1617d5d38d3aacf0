package input

import (
	"sort"
)

// Action represents a high-level browsing intent.
type Action int

const (
	ActionNone Action = iota

	ActionNextSeed
	ActionPrevSeed
	ActionRandomSeed
	ActionToggleCrop
	ActionDump
	ActionHTML
	ActionQuit
)

// Actions lists every bindable action in help order
func Actions() []Action {
	return []Action{
		ActionNextSeed,
		ActionPrevSeed,
		ActionRandomSeed,
		ActionToggleCrop,
		ActionDump,
		ActionHTML,
		ActionQuit,
	}
}

// bindings maps key codes to actions.
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	KeyArrowRight: ActionNextSeed,
	"n":           ActionNextSeed,
	"l":           ActionNextSeed,
	KeyArrowLeft:  ActionPrevSeed,
	"p":           ActionPrevSeed,
	"h":           ActionPrevSeed,
	"r":           ActionRandomSeed,
	"c":           ActionToggleCrop,
	"d":           ActionDump,
	"w":           ActionHTML,
	"q":           ActionQuit,
	KeyEscape:     ActionQuit,
	KeyCtrlC:      ActionQuit,
}

// Lookup returns the action bound to a key code
func Lookup(code string) Action {
	if act, ok := bindings[code]; ok {
		return act
	}
	return ActionNone
}

// BindingsByAction returns the current bindings grouped by action.
func BindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so the help line doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
