package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/leonelquinteros/gotext"

	"dungeongen/pkg/engine/input"
	"dungeongen/pkg/engine/terminal"
	"dungeongen/pkg/game/devtools"
	"dungeongen/pkg/game/generator"
	"dungeongen/pkg/game/renderer"
	"dungeongen/pkg/game/renderer/tui"
)

// actionLabels maps browsing actions to their translation keys
var actionLabels = map[input.Action]string{
	input.ActionNextSeed:   "ACTION_NEXT_SEED",
	input.ActionPrevSeed:   "ACTION_PREV_SEED",
	input.ActionRandomSeed: "ACTION_RANDOM_SEED",
	input.ActionToggleCrop: "ACTION_TOGGLE_CROP",
	input.ActionDump:       "ACTION_DUMP",
	input.ActionHTML:       "ACTION_HTML",
	input.ActionQuit:       "ACTION_QUIT",
}

// helpLine lists the keys bound to every action
func helpLine() string {
	byAction := input.BindingsByAction()
	parts := make([]string, 0, len(actionLabels))
	for _, a := range input.Actions() {
		parts = append(parts, fmt.Sprintf("%s %s", strings.Join(byAction[a], "/"), gotext.Get(actionLabels[a])))
	}
	return strings.Join(parts, "  ")
}

// stepSeed moves seed by delta, skipping 0 which would pick a random seed
func stepSeed(seed, delta int64) int64 {
	seed += delta
	if seed == 0 {
		seed += delta
	}
	return seed
}

// browse redraws a dungeon per seed until the quit key is pressed
func browse(gen *generator.Generator, r *tui.TUIRenderer, o *options, stdout io.Writer) error {
	if !terminal.IsTerminal(os.Stdin) {
		return errors.New(gotext.Get("BROWSE_NEEDS_TERMINAL"))
	}

	seed := gen.Settings().Seed
	status := ""
	for {
		d := gen.GenerateSeed(seed)
		seed = d.Seed

		r.Clear()
		if err := r.RenderDungeon(stdout, d); err != nil {
			return err
		}
		fmt.Fprintln(stdout, r.StyleText(helpLine(), renderer.StyleSubtle))
		if status != "" {
			fmt.Fprintln(stdout, status)
			status = ""
		}

		key, err := input.ReadKey(os.Stdin)
		if err != nil {
			return err
		}

		switch input.Lookup(key) {
		case input.ActionNextSeed:
			seed = stepSeed(seed, 1)
		case input.ActionPrevSeed:
			seed = stepSeed(seed, -1)
		case input.ActionRandomSeed:
			seed = 0
		case input.ActionToggleCrop:
			r.Crop = !r.Crop
		case input.ActionDump:
			path := o.dump
			if path == "" {
				path = fmt.Sprintf("dungeon-%d.txt", seed)
			}
			if path, err = devtools.DumpMap(path, d); err != nil {
				return err
			}
			status = fmt.Sprintf(gotext.Get("DUMP_WRITTEN"), path)
		case input.ActionHTML:
			path, err := devtools.SaveHTML(o.html, d)
			if err != nil {
				return err
			}
			status = fmt.Sprintf(gotext.Get("DUMP_WRITTEN"), path)
		case input.ActionQuit:
			return nil
		}
	}
}
