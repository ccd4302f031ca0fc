package main

import (
	"fmt"
	"math"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/gogpu/tessella"
	"github.com/gogpu/tessella/glyph"
	"github.com/gogpu/tessella/poem"
)

var (
	flagInterval time.Duration
	flagChaos    bool

	animateCmd = &cobra.Command{
		Use:   "animate",
		Short: "Animate patterns in the terminal until interrupted",
		RunE:  runAnimate,
	}
)

func init() {
	animateCmd.Flags().DurationVarP(&flagInterval, "interval", "i", 100*time.Millisecond, "refresh interval")
	animateCmd.Flags().BoolVar(&flagChaos, "chaos", false, "vary density and interval over time")
}

func runAnimate(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	r := newRand()
	gen := poem.NewGenerator(nil)
	interval := flagInterval

	// Chaos mode wanders density and refresh rate along layered sine
	// waves, calm at first and progressively wilder.
	phase := 0.0
	chaosFactor := 0.0

	if flagChaos {
		fmt.Println("chaos mode, Ctrl+C to exit")
	} else {
		fmt.Printf("animating every %v, Ctrl+C to exit\n", interval)
	}

	for {
		fmt.Print("\x1b[2J\x1b[H")

		group, err := tessella.Pick(r, tessella.Groups())
		if err != nil {
			return err
		}

		density := 0
		if flagChaos {
			phase += 0.05
			chaosFactor = math.Min(1.0, chaosFactor+0.005)

			base := 750 + 745*math.Sin(phase)
			wave := 200 * math.Sin(phase*3.7) * chaosFactor
			density = int(math.Max(5, math.Min(1500, base+wave)))

			baseInterval := 0.25 + 0.225*math.Sin(phase*0.7)
			intervalWave := 0.15 * math.Sin(phase*5.3) * chaosFactor
			seconds := math.Max(0.015, math.Min(0.5, baseInterval+intervalWave))
			interval = time.Duration(seconds * float64(time.Second))
		}

		canvas, err := buildAnimationFrame(r, gen, group, density)
		if err != nil {
			return err
		}

		if flagChaos {
			fmt.Printf("chaos  density=%d  refresh=%v  group=%s\n", density, interval.Round(time.Millisecond), group)
		} else {
			fmt.Printf("wallpaper group: %s\n", group)
		}
		fmt.Println(canvas.Text())

		select {
		case <-ctx.Done():
			fmt.Println("\nexiting")
			return nil
		case <-time.After(interval):
		}
	}
}

func buildAnimationFrame(r *tessella.Rand, gen *poem.Generator, group tessella.Group, density int) (*glyph.Canvas, error) {
	rules, err := tessella.RulesFor(group)
	if err != nil {
		return nil, err
	}

	canvas := glyph.NewCanvas(flagWidth, flagHeight)
	if density > 0 {
		if err := canvas.ScatterDense(r, glyph.Selection(r, density), density); err != nil {
			return nil, err
		}
	} else if err := canvas.RenderPattern(r, group, rules, glyph.Selection(r, 200), 0); err != nil {
		return nil, err
	}

	canvas.EmbedPoem(r, gen.Lines(r, gen.NextSeed(r), 2))
	return canvas, nil
}
