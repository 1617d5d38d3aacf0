package devtools

import (
	"fmt"
	"html"
	"os"
	"strings"
	"time"

	"github.com/leonelquinteros/gotext"

	"dungeongen/pkg/game/generator"
	"dungeongen/pkg/game/renderer"
)

// cssClasses maps map styles to the CSS class used in snapshots
var cssClasses = map[renderer.TextStyle]string{
	renderer.StyleNormal:  "void",
	renderer.StyleWall:    "wall",
	renderer.StyleFloor:   "floor",
	renderer.StyleHallway: "hallway",
	renderer.StyleDoorway: "doorway",
	renderer.StyleWater:   "water",
	renderer.StyleBridge:  "bridge",
	renderer.StyleStone:   "stone",
	renderer.StyleGrass:   "grass",
	renderer.StylePebbles: "pebbles",
}

const htmlHead = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>%s</title>
    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header {
            color: #bb86fc;
            font-size: 18px;
            margin-bottom: 10px;
        }
        .map-container {
            background-color: #0f0f1a;
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
            margin: 20px 0;
        }
        .map-row {
            white-space: pre;
            line-height: 1.2;
            font-size: 16px;
        }
        .void { color: #1a1a2e; }
        .wall { color: #666; }
        .floor { color: #888; }
        .hallway { color: #00aaaa; }
        .doorway { color: #ffff00; font-weight: bold; }
        .water { color: #4477ff; }
        .bridge { color: #c8b464; font-weight: bold; }
        .stone { color: #aaa; }
        .grass { color: #3caa50; }
        .pebbles { color: #7882b4; }
        .legend, .summary {
            margin-top: 20px;
            color: #888;
        }
        .line { margin: 5px 0; }
    </style>
</head>
<body>
`

// SaveHTML writes d as a coloured HTML page. An empty path picks a
// timestamped file name in the working directory. Returns the file name.
func SaveHTML(path string, d *generator.Dungeon) (string, error) {
	if d == nil || d.Grid == nil {
		return "", fmt.Errorf("no dungeon")
	}
	if path == "" {
		path = fmt.Sprintf("dungeon-%d-%s.html", d.Seed, time.Now().Format("20060102-150405"))
	}

	if err := os.WriteFile(path, []byte(RenderHTML(d)), 0644); err != nil {
		return "", err
	}
	return path, nil
}

// RenderHTML builds the HTML page for d
func RenderHTML(d *generator.Dungeon) string {
	var b strings.Builder

	title := html.EscapeString(gotext.Get("VIEWER_TITLE"))
	fmt.Fprintf(&b, htmlHead, title)
	fmt.Fprintf(&b, `    <div class="header">%s</div>`+"\n", html.EscapeString(fmt.Sprintf(gotext.Get("SEED"), d.Seed)))

	// Map
	b.WriteString(`    <div class="map-container">` + "\n")
	for _, line := range renderer.Layout(d.Grid.Snapshot(), d.Grid.Rows(), d.Grid.Cols()) {
		b.WriteString(`        <div class="map-row">`)
		for _, c := range line {
			fmt.Fprintf(&b, `<span class="%s">%s</span>`, cssClass(c.Style), html.EscapeString(c.Icon))
		}
		b.WriteString("</div>\n")
	}
	b.WriteString(`    </div>` + "\n")

	// Legend
	fmt.Fprintf(&b, `    <div class="legend">%s: `, html.EscapeString(gotext.Get("LEGEND")))
	for i, e := range renderer.Legend() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, `<span class="%s">%s</span> %s`, cssClass(e.Style), html.EscapeString(e.Icon), html.EscapeString(e.Label))
	}
	b.WriteString(`</div>` + "\n")

	// Summary
	b.WriteString(`    <div class="summary">` + "\n")
	for _, line := range renderer.Summary(d) {
		fmt.Fprintf(&b, `        <div class="line">%s</div>`+"\n", html.EscapeString(line))
	}
	b.WriteString(`    </div>` + "\n")

	b.WriteString(`</body>
</html>
`)
	return b.String()
}

func cssClass(style renderer.TextStyle) string {
	if class, ok := cssClasses[style]; ok {
		return class
	}
	return "void"
}
