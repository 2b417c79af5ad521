package systems

import (
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/arena/components"
)

// Neighbor holds a nearby entity with its squared distance from the query origin.
type Neighbor struct {
	E      ecs.Entity
	DistSq float64
}

// SpatialGrid buckets entities by arena cell for radius queries.
// Entities outside the arena are stored in the nearest edge cell.
type SpatialGrid struct {
	cellSize float64
	cols     int
	rows     int
	cells    [][]ecs.Entity
}

// NewSpatialGrid creates a spatial grid covering the given arena size.
func NewSpatialGrid(width, height, cellSize float64) *SpatialGrid {
	cols := int(width/cellSize) + 1
	rows := int(height/cellSize) + 1

	cells := make([][]ecs.Entity, cols*rows)
	for i := range cells {
		cells[i] = make([]ecs.Entity, 0, 4)
	}

	return &SpatialGrid{
		cellSize: cellSize,
		cols:     cols,
		rows:     rows,
		cells:    cells,
	}
}

// Clear removes all entities from the grid.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

// Insert adds an entity to the grid at the given position.
func (g *SpatialGrid) Insert(e ecs.Entity, x, y float64) {
	idx := g.row(y)*g.cols + g.col(x)
	g.cells[idx] = append(g.cells[idx], e)
}

// Remove deletes an entity inserted near (x,y). If it moved since insertion
// the whole grid is searched.
func (g *SpatialGrid) Remove(e ecs.Entity, x, y float64) {
	if g.removeFrom(g.row(y)*g.cols+g.col(x), e) {
		return
	}
	for idx := range g.cells {
		if g.removeFrom(idx, e) {
			return
		}
	}
}

func (g *SpatialGrid) removeFrom(idx int, e ecs.Entity) bool {
	cell := g.cells[idx]
	for i, other := range cell {
		if other == e {
			cell[i] = cell[len(cell)-1]
			g.cells[idx] = cell[:len(cell)-1]
			return true
		}
	}
	return false
}

// QueryRadiusInto appends every entity within radius of (x,y), other than
// exclude, to dst. The grid must only hold live entities; callers Remove
// entities before destroying them.
func (g *SpatialGrid) QueryRadiusInto(dst []Neighbor, x, y, radius float64, exclude ecs.Entity, posMap *ecs.Map1[components.Position]) []Neighbor {
	c0, c1 := g.col(x-radius), g.col(x+radius)
	r0, r1 := g.row(y-radius), g.row(y+radius)
	radiusSq := radius * radius

	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			for _, e := range g.cells[row*g.cols+col] {
				if e == exclude {
					continue
				}
				pos := posMap.Get(e)
				if pos == nil {
					continue
				}
				d := distanceSq(x, y, pos.X, pos.Y)
				if d < radiusSq {
					dst = append(dst, Neighbor{E: e, DistSq: d})
				}
			}
		}
	}
	return dst
}

func (g *SpatialGrid) col(x float64) int {
	c := int(math.Floor(x / g.cellSize))
	return min(max(c, 0), g.cols-1)
}

func (g *SpatialGrid) row(y float64) int {
	r := int(math.Floor(y / g.cellSize))
	return min(max(r, 0), g.rows-1)
}
