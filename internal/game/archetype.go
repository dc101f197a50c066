package game

// Pattern tags the motion behavior of a target archetype.
type Pattern int

const (
	PatternRandom     Pattern = iota // Free bounce, no extra force
	PatternBounce                    // Same motion as random; kept for flavor
	PatternHorizontal                // Vertical velocity zeroed at (re)spawn
	PatternVertical                  // Horizontal velocity zeroed at (re)spawn
	PatternEvade                     // Dodges away from nearby projectiles
)

// String returns the pattern label shown on the selection screen.
func (p Pattern) String() string {
	switch p {
	case PatternBounce:
		return "bounce"
	case PatternHorizontal:
		return "horizontal"
	case PatternVertical:
		return "vertical"
	case PatternEvade:
		return "evade"
	default:
		return "random"
	}
}

// Archetype describes one selectable target. Selection happens once per
// session and is immutable afterwards.
type Archetype struct {
	Name        string
	Radius      float64
	SpeedScale  float64 // Multiplier applied to randomized velocities
	Pattern     Pattern
	Description string
}

// Archetypes is the selectable roster, indexed by archetype id.
var Archetypes = [...]Archetype{
	{Name: "Classic Bullseye", Radius: BaseTargetRadius, SpeedScale: 1.0, Pattern: PatternRandom, Description: "Drifts wherever physics takes it"},
	{Name: "Beach Ball", Radius: 100, SpeedScale: 0.8, Pattern: PatternBounce, Description: "Big, slow, bounces off every wall"},
	{Name: "Crab", Radius: 70, SpeedScale: 1.2, Pattern: PatternHorizontal, Description: "Scuttles side to side only"},
	{Name: "Elevator", Radius: 75, SpeedScale: 1.1, Pattern: PatternVertical, Description: "Rides straight up and down"},
	{Name: "Paranoid Drone", Radius: 60, SpeedScale: 1.3, Pattern: PatternEvade, Description: "Shies away from incoming fire"},
	{Name: "Pinball", Radius: 50, SpeedScale: 1.6, Pattern: PatternBounce, Description: "Small and fast off the bumpers"},
	{Name: "Zeppelin", Radius: 110, SpeedScale: 0.6, Pattern: PatternHorizontal, Description: "A slow, fat airship"},
	{Name: "Greased Piglet", Radius: 55, SpeedScale: 1.5, Pattern: PatternEvade, Description: "Nearly impossible to corner"},
}

// Selection grid layout (logical units). The selection screen arranges the
// roster in GridCols x GridRows cells; pointer hits are tested against these.
const (
	GridCols       = 4
	GridRows       = 2
	GridCellWidth  = 200.0
	GridCellHeight = 220.0
	GridGap        = 24.0
	GridTop        = 180.0
)

// GridLeft centers the grid horizontally on the field.
const GridLeft = (FieldWidth - (GridCols*GridCellWidth + (GridCols-1)*GridGap)) / 2

// ArchetypeCell returns the logical bounds of the grid cell for archetype id.
func ArchetypeCell(id int) (x, y, w, h float64) {
	col := id % GridCols
	row := id / GridCols
	x = GridLeft + float64(col)*(GridCellWidth+GridGap)
	y = GridTop + float64(row)*(GridCellHeight+GridGap)
	return x, y, GridCellWidth, GridCellHeight
}

// ArchetypeAt returns the archetype id whose grid cell contains (px, py),
// or -1 if the point lands outside every cell.
func ArchetypeAt(px, py float64) int {
	for id := range Archetypes {
		x, y, w, h := ArchetypeCell(id)
		if px >= x && px < x+w && py >= y && py < y+h {
			return id
		}
	}
	return -1
}
