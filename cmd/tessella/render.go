package main

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"strings"
	"time"

	"github.com/gogpu/gg"
	"github.com/spf13/cobra"

	"github.com/gogpu/tessella"
	"github.com/gogpu/tessella/glyph"
	"github.com/gogpu/tessella/poem"
)

var (
	flagGroup   string
	flagFormat  string
	flagOutput  string
	flagDensity int
	flagPoem    string

	renderCmd = &cobra.Command{
		Use:   "render",
		Short: "Render a single pattern to a file or stdout",
		RunE:  runRender,
	}
)

func init() {
	renderCmd.Flags().StringVarP(&flagGroup, "group", "g", "", "wallpaper group (p1..p6m, random when empty)")
	renderCmd.Flags().StringVarP(&flagFormat, "format", "f", "txt", "output format: png, txt or html")
	renderCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "output path (stdout when empty)")
	renderCmd.Flags().IntVarP(&flagDensity, "density", "D", 0, "scatter this many glyphs instead of the symmetric pattern")
	renderCmd.Flags().StringVar(&flagPoem, "poem", "", "text file with poem lines to embed")
}

// pageTemplate wraps a glyph canvas in a standalone monospace page.
var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
	<meta charset="utf-8">
	<title>tessella {{.Group}}</title>
	<style>
		body { background-color: #fff; color: #000; margin: 0; padding: 0; }
		.pattern { font-family: monospace; white-space: pre; line-height: 1; font-size: 14px; }
		.poem { background-color: #ff0; color: #000; }
	</style>
</head>
<body>
{{.Canvas}}
</body>
</html>
`))

func runRender(cmd *cobra.Command, args []string) error {
	r := newRand()
	group, err := resolveGroup(r, flagGroup)
	if err != nil {
		return err
	}

	switch flagFormat {
	case "png":
		return renderPNG(group)
	case "txt", "html":
		return renderCanvas(r, group)
	default:
		return fmt.Errorf("unknown format %q", flagFormat)
	}
}

func renderPNG(group tessella.Group) error {
	opts := []tessella.Option{tessella.WithGroup(group)}
	if flagSeed != 0 {
		opts = append(opts, tessella.WithSeed(flagSeed))
	}
	renderer, err := tessella.NewRenderer(opts...)
	if err != nil {
		return err
	}
	if lines, err := overlayLines(); err != nil {
		return err
	} else if len(lines) > 0 {
		renderer.SetOverlay(lines)
	}

	ctx := gg.NewContext(flagWidth, flagHeight)
	if err := renderer.RenderFrame(ctx, time.Now()); err != nil {
		return err
	}
	if err := ctx.FlushGPU(); err != nil {
		return err
	}

	if flagOutput == "" {
		return ctx.EncodePNG(os.Stdout)
	}
	return ctx.SavePNG(flagOutput)
}

func renderCanvas(r *tessella.Rand, group tessella.Group) error {
	canvas, err := buildCanvas(r, group, flagDensity)
	if err != nil {
		return err
	}

	out := io.Writer(os.Stdout)
	if flagOutput != "" {
		f, err := os.Create(flagOutput)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	if flagFormat == "html" {
		return pageTemplate.Execute(out, map[string]any{
			"Group":  group,
			"Canvas": template.HTML(canvas.HTML()),
		})
	}
	_, err = fmt.Fprintln(out, canvas.Text())
	return err
}

// buildCanvas renders one glyph pattern with an embedded poem. A
// positive density switches to the dense scatter mode.
func buildCanvas(r *tessella.Rand, group tessella.Group, density int) (*glyph.Canvas, error) {
	rules, err := tessella.RulesFor(group)
	if err != nil {
		return nil, err
	}

	canvas := glyph.NewCanvas(flagWidth, flagHeight)
	if density > 0 {
		glyphs := glyph.Selection(r, density)
		if err := canvas.ScatterDense(r, glyphs, density); err != nil {
			return nil, err
		}
	} else {
		if err := canvas.RenderPattern(r, group, rules, glyph.Selection(r, 200), 0); err != nil {
			return nil, err
		}
	}

	lines, err := overlayLines()
	if err != nil {
		return nil, err
	}
	gen := poem.NewGenerator(lines)
	canvas.EmbedPoem(r, gen.Lines(r, gen.NextSeed(r), 2))
	return canvas, nil
}

// overlayLines reads the poem file when given; nil means use defaults.
func overlayLines() ([]string, error) {
	if flagPoem == "" {
		return nil, nil
	}
	data, err := os.ReadFile(flagPoem)
	if err != nil {
		return nil, fmt.Errorf("loading poem: %w", err)
	}
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n"), nil
}
