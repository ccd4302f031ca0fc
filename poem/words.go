package poem

// WordSet is the seed vocabulary for theme selection. Entries repeat;
// repetition weights the pick distribution and is intentional.
var WordSet = []string{
	"dog", "flower", "windmill", "cliff", "forest", "city", "home", "light", "excess", "clean",
	"crossroads", "horizon", "road", "settlement", "boulder", "outcropping", "signpost", "well",
	"shelter", "storm", "scrub", "crop field", "farm", "silo", "bird flock", "sign",
	"detour", "rest stop", "traffic jam", "traffic", "tunnel", "convenience store", "mile marker",
	"cave", "windbreak", "street", "path", "river", "hill", "land", "line", "house",
	"bank", "bridge", "rock", "valley", "wind", "sky", "landscape", "ocean", "cloud",
	"cliff", "expanse", "shore", "peak", "sphere", "lake", "moon", "background", "darkness",
	"desert", "twilight", "boundary", "surface", "colony", "village", "trade", "district",
	"territory", "province", "cliff", "pebble", "crag", "ledge", "slab", "rubble", "mound",
	"ravine", "pillar", "brick", "bluff", "bush", "sand", "stump", "chunk", "crater", "timber",
	"gravestone", "railway", "canal", "mill", "farm", "undergrowth", "shrub", "thicket",
	"shrubbery", "brush", "birch", "estate", "garden", "field", "plant", "crop", "drink", "trust",
	"trace", "sky", "cross", "road", "railway", "roadway", "lane", "route", "trail", "ridge",
	"coast", "beach", "canyon", "travel", "stream", "refuge", "comfort", "shadow", "shade",
	"roof", "outcrop", "mountainside", "wasteland", "boulder", "pinnacle", "rain", "weather",
	"fire", "breeze", "ice", "sea", "garden", "sky", "bird", "sunset", "dam", "river", "wash",
	"ocean", "hill", "valley", "tree", "flower", "flame", "fire", "tree",

	// Death, grief, remembrance
	"grave", "coffin", "mourning", "ashes", "sepulcher", "tomb", "funeral", "farewell",
	"loss", "lament", "dirge", "obituary", "requiem", "epitaph", "wake", "veil", "sorrow",
	"keening", "grief", "shroud", "wither", "transience",

	// Contemplation, meaning, wisdom
	"stillness", "echo", "memory", "legacy", "thought", "reflection", "wisdom", "insight",
	"truth", "silence", "reverie", "meditation", "presence", "absence", "eternity", "paradox",
	"soul", "mind", "spirit", "understanding", "acceptance", "seeking",

	// Beauty, time, seasons
	"autumn", "winter", "leaves", "petal", "bloom", "blossom", "cycle", "season", "equinox",
	"solstice", "sunset", "dusk", "twilight", "dawn", "hour", "clock", "calendar", "pendulum",
	"decay", "growth", "moment", "fleeting", "passing", "fade", "renewal", "ebb", "flow",

	// Flowers
	"rose", "lily", "chrysanthemum", "poppy", "tulip", "violet", "iris", "daffodil", "peony",
	"camellia", "lavender", "carnation", "sunflower", "magnolia", "hyacinth", "daisy",
	"wilt", "bloom", "garland", "bouquet", "wreath", "meadow", "perfume", "dew", "blush",

	// Heritage, remembrance
	"ancestor", "portrait", "lineage", "roots", "stone", "monument", "keepsake", "heirloom",
	"name", "inscription", "story", "voice", "photo", "ruin", "echo", "trace", "fragment",
	"inheritance", "generation", "reminder", "archive", "dust", "history", "ritual", "memory", "remember",
}
