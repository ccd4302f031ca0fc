package tessella

import "fmt"

// PatternType selects which visual program the renderer runs.
type PatternType string

const (
	// PatternWallpaper tiles primitives under a wallpaper group's rules.
	PatternWallpaper PatternType = "wallpaper"
	// PatternGlass renders kaleidoscope shards mirrored around the centre.
	PatternGlass PatternType = "glass"
	// PatternFlower renders a particle bloom seeded in the fundamental
	// domain.
	PatternFlower PatternType = "flower"
)

// ParsePatternType validates a pattern-type name from the controller.
func ParsePatternType(name string) (PatternType, error) {
	switch PatternType(name) {
	case PatternWallpaper, PatternGlass, PatternFlower:
		return PatternType(name), nil
	}
	return "", fmt.Errorf("tessella: unknown pattern type %q", name)
}

// String returns the pattern type's control-panel name.
func (p PatternType) String() string { return string(p) }
