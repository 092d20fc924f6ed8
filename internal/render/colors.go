package render

// TileTheme holds the glyphs used to draw terrain. Emoji are rendered by the
// terminal with their own colors, so remembered cells use distinct glyphs
// instead of tinting.
type TileTheme struct {
	Name     string
	Wall     string // wall in view
	Floor    string // floor in view
	DimWall  string // remembered wall
	DimFloor string // remembered floor
}

// Themes lists the available tile sets. The seed picks one so every world
// has a consistent look.
var Themes = []TileTheme{
	{Name: "stone", Wall: "🪨", Floor: "🟫", DimWall: "🌑", DimFloor: "🔲"},
	{Name: "forest", Wall: "🌲", Floor: "🌿", DimWall: "🌑", DimFloor: "🔲"},
	{Name: "ice", Wall: "🧊", Floor: "⬜", DimWall: "🌑", DimFloor: "🔲"},
	{Name: "ember", Wall: "🌋", Floor: "🟧", DimWall: "🌑", DimFloor: "🔲"},
}

// ThemeFor returns the theme for a world seed.
func ThemeFor(seed uint32) TileTheme {
	return Themes[int(seed%uint32(len(Themes)))]
}
