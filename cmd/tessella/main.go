// Command tessella renders wallpaper-group patterns as images, glyph
// canvases, or a small installation web server.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/tessella"
)

var (
	flagWidth   int
	flagHeight  int
	flagSeed    int64
	flagVerbose bool

	rootCmd = &cobra.Command{
		Use:   "tessella",
		Short: "Generative wallpaper-group pattern renderer",
		Long: `Tessella draws the 17 wallpaper symmetry groups as animated or
one-shot patterns. The same seed always reproduces the same picture.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flagVerbose {
				tessella.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().IntVarP(&flagWidth, "width", "W", 80, "pattern width")
	rootCmd.PersistentFlags().IntVarP(&flagHeight, "height", "H", 40, "pattern height")
	rootCmd.PersistentFlags().Int64VarP(&flagSeed, "seed", "s", 0, "random seed (0 uses the clock)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(renderCmd, animateCmd, serveCmd)
}

// newRand builds the run's random source from the seed flag.
func newRand() *tessella.Rand {
	if flagSeed != 0 {
		return tessella.NewRand(flagSeed)
	}
	return tessella.NewRandFromClock()
}

// resolveGroup parses the group flag, picking a random group when the
// flag is empty.
func resolveGroup(r *tessella.Rand, name string) (tessella.Group, error) {
	if name == "" {
		return tessella.Pick(r, tessella.Groups())
	}
	return tessella.ParseGroup(name)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
