// Package leveldata parses TMX level layouts into static geometry and named
// spawn points. It has no dependencies on ebitengine, donburi, or resolv.
package leveldata

// Level holds everything the gameplay core needs from a level file, already
// scaled to world units.
type Level struct {
	Width, Height float64
	Solids        []Rect
	Exits         []Rect
	SpawnPoints   map[string][]Point
}

// Rect is an axis-aligned region in world units.
type Rect struct {
	X, Y, W, H float64
}

// Point is a spawn coordinate in world units.
type Point struct {
	X, Y float64
}

// Spawns returns the spawn points of a category in file order.
func (l *Level) Spawns(category string) []Point {
	return l.SpawnPoints[category]
}

// Spawn categories understood by the level orchestration.
const (
	SpawnPlayer = "Player"
	SpawnFlame  = "Flame"
	SpawnGuy    = "Guy"
	SpawnBird   = "Bird"
)
