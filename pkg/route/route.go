package route

import (
	"container/heap"

	"github.com/OpenTraceLab/OpenTraceCircuit/pkg/geometry"
)

// searchMargin widens the grid search area beyond the bounding box of the
// endpoints and obstacles, in grid steps.
const searchMargin = 4

// Route returns an orthogonal path from start to end that avoids the given
// obstacle rectangles. It never fails: when the grid search cannot reach the
// end (fully enclosed configurations), the unobstructed single-bend path is
// returned instead — an overlapping wire beats no wire. The result always has
// at least two points. A grid of zero or less uses geometry.DefaultGrid.
func Route(start, end geometry.Point, obstacles []geometry.Rect, grid float64) []geometry.Point {
	if grid <= 0 {
		grid = geometry.DefaultGrid
	}
	start = geometry.SnapPoint(start, grid)
	end = geometry.SnapPoint(end, grid)

	naive := naivePath(start, end)
	if !pathBlocked(naive, obstacles) {
		return naive
	}
	if found := gridSearch(start, end, obstacles, grid); found != nil {
		return found
	}
	return naive
}

// naivePath builds the single-bend path: horizontal-then-vertical when the
// horizontal extent dominates, vertical-then-horizontal otherwise.
func naivePath(start, end geometry.Point) []geometry.Point {
	if start == end {
		return []geometry.Point{start, end}
	}
	dx := end.X - start.X
	dy := end.Y - start.Y
	var mid geometry.Point
	if abs(dx) >= abs(dy) {
		mid = geometry.Point{X: end.X, Y: start.Y}
	} else {
		mid = geometry.Point{X: start.X, Y: end.Y}
	}
	if mid == start || mid == end {
		return []geometry.Point{start, end}
	}
	return []geometry.Point{start, mid, end}
}

func pathBlocked(path []geometry.Point, obstacles []geometry.Rect) bool {
	for _, obs := range obstacles {
		if geometry.PathIntersectsRect(obs, path) {
			return true
		}
	}
	return false
}

type cell struct {
	X int
	Y int
}

// searchNode is an entry in the A* frontier.
type searchNode struct {
	cell  cell
	g     float64
	f     float64
	index int
}

type frontier []*searchNode

func (f frontier) Len() int           { return len(f) }
func (f frontier) Less(i, j int) bool { return f[i].f < f[j].f }
func (f frontier) Swap(i, j int) {
	f[i], f[j] = f[j], f[i]
	f[i].index = i
	f[j].index = j
}

func (f *frontier) Push(x interface{}) {
	n := len(*f)
	node := x.(*searchNode)
	node.index = n
	*f = append(*f, node)
}

func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	node.index = -1
	*f = old[:n-1]
	return node
}

// gridSearch runs A* over 4-connected grid cells, rejecting cells inside any
// obstacle. The search area is bounded by the bbox of the endpoints and
// obstacles plus a margin, which guarantees termination. Returns nil when the
// end cell is unreachable.
func gridSearch(start, end geometry.Point, obstacles []geometry.Rect, grid float64) []geometry.Point {
	startCell := cell{X: int(start.X / grid), Y: int(start.Y / grid)}
	endCell := cell{X: int(end.X / grid), Y: int(end.Y / grid)}

	minX, minY, maxX, maxY := searchBounds(start, end, obstacles, grid)

	blocked := func(c cell) bool {
		if c == startCell || c == endCell {
			return false
		}
		x := float64(c.X) * grid
		y := float64(c.Y) * grid
		for _, obs := range obstacles {
			if obs.Contains(x, y) {
				return true
			}
		}
		return false
	}

	h := func(c cell) float64 {
		return float64(absInt(c.X-endCell.X)+absInt(c.Y-endCell.Y)) * grid
	}

	gScore := map[cell]float64{startCell: 0}
	cameFrom := map[cell]cell{}
	visited := map[cell]bool{}

	pq := &frontier{}
	heap.Init(pq)
	heap.Push(pq, &searchNode{cell: startCell, g: 0, f: h(startCell)})

	neighbors := [4]cell{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

	for pq.Len() > 0 {
		node := heap.Pop(pq).(*searchNode)
		cur := node.cell
		if cur == endCell {
			return reconstruct(cameFrom, startCell, endCell, grid)
		}
		if visited[cur] {
			continue
		}
		visited[cur] = true

		for _, d := range neighbors {
			next := cell{X: cur.X + d.X, Y: cur.Y + d.Y}
			if next.X < minX || next.X > maxX || next.Y < minY || next.Y > maxY {
				continue
			}
			if visited[next] || blocked(next) {
				continue
			}
			g := gScore[cur] + grid
			if prev, ok := gScore[next]; ok && g >= prev {
				continue
			}
			gScore[next] = g
			cameFrom[next] = cur
			heap.Push(pq, &searchNode{cell: next, g: g, f: g + h(next)})
		}
	}
	return nil
}

func searchBounds(start, end geometry.Point, obstacles []geometry.Rect, grid float64) (minX, minY, maxX, maxY int) {
	lowX, highX := min(start.X, end.X), max(start.X, end.X)
	lowY, highY := min(start.Y, end.Y), max(start.Y, end.Y)
	for _, obs := range obstacles {
		lowX = min(lowX, obs.X)
		lowY = min(lowY, obs.Y)
		highX = max(highX, obs.X+obs.W)
		highY = max(highY, obs.Y+obs.H)
	}
	minX = int(lowX/grid) - searchMargin
	minY = int(lowY/grid) - searchMargin
	maxX = int(highX/grid) + searchMargin
	maxY = int(highY/grid) + searchMargin
	return
}

// reconstruct walks predecessor links back from the end cell, reverses the
// result and drops collinear interior points.
func reconstruct(cameFrom map[cell]cell, startCell, endCell cell, grid float64) []geometry.Point {
	var cells []cell
	for c := endCell; ; {
		cells = append(cells, c)
		if c == startCell {
			break
		}
		prev, ok := cameFrom[c]
		if !ok {
			break
		}
		c = prev
	}
	for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
		cells[i], cells[j] = cells[j], cells[i]
	}

	points := make([]geometry.Point, 0, len(cells))
	for i, c := range cells {
		p := geometry.Point{X: float64(c.X) * grid, Y: float64(c.Y) * grid}
		if i > 0 && i < len(cells)-1 {
			prev := cells[i-1]
			next := cells[i+1]
			if (prev.X == c.X && c.X == next.X) || (prev.Y == c.Y && c.Y == next.Y) {
				continue
			}
		}
		points = append(points, p)
	}
	if len(points) < 2 {
		points = append(points, points[len(points)-1])
	}
	return points
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
