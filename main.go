package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"dungeongen/pkg/game/config"
	"dungeongen/pkg/game/devtools"
	"dungeongen/pkg/game/generator"
	"dungeongen/pkg/game/locale"
	"dungeongen/pkg/game/renderer"
	ebitenviewer "dungeongen/pkg/game/renderer/ebiten"
	"dungeongen/pkg/game/renderer/tui"
)

// options holds the parsed command line
type options struct {
	configPath  string
	writeConfig string
	lang        string
	verbose     bool

	seed      int64
	rows      int
	cols      int
	rooms     int
	heuristic string
	weight    float64

	noCrop   bool
	list     bool
	dump     string
	html     string
	view     bool
	showcase bool
	browse   bool
}

func parseFlags(args []string) (*options, *flag.FlagSet, error) {
	o := &options{}
	fs := flag.NewFlagSet("dungeongen", flag.ContinueOnError)

	fs.StringVar(&o.configPath, "config", "", "JSON settings file (defaults are used when empty)")
	fs.StringVar(&o.writeConfig, "write-config", "", "write the effective settings to this JSON file")
	fs.StringVar(&o.lang, "lang", locale.DefaultLanguage, "output language")
	fs.BoolVar(&o.verbose, "v", false, "log generation stages to stderr")

	fs.Int64Var(&o.seed, "seed", 0, "random seed (0 picks one)")
	fs.IntVar(&o.rows, "rows", 0, "grid rows")
	fs.IntVar(&o.cols, "cols", 0, "grid columns")
	fs.IntVar(&o.rooms, "rooms", 0, "number of rooms to place")
	fs.StringVar(&o.heuristic, "heuristic", "", "hallway heuristic: manhattan, euclidean, chebyshev or octile")
	fs.Float64Var(&o.weight, "weight", 0, "heuristic weight")

	fs.BoolVar(&o.noCrop, "no-crop", false, "print the whole map even if it does not fit the terminal")
	fs.BoolVar(&o.list, "list", false, "list the placed rooms")
	fs.StringVar(&o.dump, "dump", "", "write a full text dump of the dungeon to this file")
	fs.StringVar(&o.html, "html", "", "write a coloured HTML page of the dungeon to this file")
	fs.BoolVar(&o.view, "view", false, "replay the generation stages in a window")
	fs.BoolVar(&o.showcase, "showcase", false, "show the built-in developer dungeon instead of generating one")
	fs.BoolVar(&o.browse, "browse", false, "step through seeds interactively in the terminal")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return o, fs, nil
}

// loadSettings reads the base settings and applies the flags that were set
func loadSettings(o *options, fs *flag.FlagSet) (config.Settings, error) {
	s := config.Default()
	if o.configPath != "" {
		var err error
		if s, err = config.Load(o.configPath); err != nil {
			return s, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			s.Seed = o.seed
		case "rows":
			s.Rows = o.rows
		case "cols":
			s.Cols = o.cols
		case "rooms":
			s.Rooms.Count = o.rooms
		case "heuristic":
			s.Pathfinding.Heuristic = o.heuristic
		case "weight":
			s.Pathfinding.Weight = o.weight
		}
	})

	return s, nil
}

func run(args []string, stdout io.Writer) error {
	o, fs, err := parseFlags(args)
	if err != nil {
		return err
	}

	if err := locale.Load(o.lang); err != nil {
		return err
	}

	settings, err := loadSettings(o, fs)
	if err != nil {
		return err
	}

	var opts []generator.Option
	if o.verbose {
		opts = append(opts, generator.WithLogger(log.New(os.Stderr, "dungeongen: ", log.Ltime)))
	}
	var rec *renderer.Recorder
	if o.view {
		rec = renderer.NewRecorder()
		opts = append(opts, generator.WithStepFunc(rec.Step))
	}

	gen, err := generator.New(settings, opts...)
	if err != nil {
		return err
	}

	if o.writeConfig != "" {
		if err := config.Save(o.writeConfig, gen.Settings()); err != nil {
			return err
		}
	}

	r := tui.New()
	r.Crop = !o.noCrop
	r.Init()

	if o.browse {
		return browse(gen, r, o, stdout)
	}

	var d *generator.Dungeon
	if o.showcase {
		d = devtools.Showcase()
	} else {
		d = gen.Generate()
	}

	if err := r.RenderDungeon(stdout, d); err != nil {
		return err
	}

	if o.list {
		printRooms(stdout, r, d)
	}

	if o.dump != "" {
		path, err := devtools.DumpMap(o.dump, d)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, r.StyleText(fmt.Sprintf(gotext.Get("DUMP_WRITTEN"), path), renderer.StyleSubtle))
	}

	if o.html != "" {
		path, err := devtools.SaveHTML(o.html, d)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, r.StyleText(fmt.Sprintf(gotext.Get("DUMP_WRITTEN"), path), renderer.StyleSubtle))
	}

	if rec != nil && !o.showcase {
		return ebitenviewer.New(rec.Frames()).Run()
	}
	return nil
}

// printRooms lists every placed room with its position and size
func printRooms(w io.Writer, r renderer.Renderer, d *generator.Dungeon) {
	fmt.Fprintln(w, r.StyleText(gotext.Get("ROOM_LIST"), renderer.StyleHeading))
	for _, room := range d.Rooms {
		b := room.Bounds
		fmt.Fprintln(w, fmt.Sprintf(gotext.Get("ROOM_ENTRY"), room.ID, b.Row, b.Col, b.Height, b.Width))
	}
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, color.Red.Sprint(err))
		os.Exit(1)
	}
}
