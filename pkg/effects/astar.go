package effects

import (
	"container/heap"

	"sprawl/pkg/stations"
)

// weightedNeighbor is one edge out of a station with its traversal cost.
type weightedNeighbor struct {
	id   stations.ID
	cost uint32
}

// astar finds a cheapest path from start to goal over the station graph.
// Returns the full path including both endpoints, or false when the goal is
// unreachable (the network has more than one connected component).
func astar(
	start stations.ID,
	neighbors func(stations.ID) []weightedNeighbor,
	heuristic func(stations.ID) uint32,
	goal stations.ID,
) ([]stations.ID, bool) {
	open := &nodeHeap{{id: start, f: heuristic(start)}}
	heap.Init(open)

	cameFrom := make(map[stations.ID]stations.ID)
	gScore := map[stations.ID]uint32{start: 0}
	closed := make(map[stations.ID]struct{})

	for open.Len() > 0 {
		current := heap.Pop(open).(node)
		if current.id == goal {
			return reconstructPath(cameFrom, goal), true
		}
		if _, done := closed[current.id]; done {
			continue
		}
		closed[current.id] = struct{}{}

		for _, n := range neighbors(current.id) {
			tentative := gScore[current.id] + n.cost
			if best, seen := gScore[n.id]; seen && tentative >= best {
				continue
			}
			gScore[n.id] = tentative
			cameFrom[n.id] = current.id
			heap.Push(open, node{id: n.id, f: tentative + heuristic(n.id)})
		}
	}

	return nil, false
}

func reconstructPath(cameFrom map[stations.ID]stations.ID, goal stations.ID) []stations.ID {
	path := []stations.ID{goal}
	for {
		prev, ok := cameFrom[path[len(path)-1]]
		if !ok {
			break
		}
		path = append(path, prev)
	}

	// Reverse into start-to-goal order
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

type node struct {
	id stations.ID
	f  uint32
}

type nodeHeap []node

func (h nodeHeap) Len() int            { return len(h) }
func (h nodeHeap) Less(i, j int) bool  { return h[i].f < h[j].f }
func (h nodeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x interface{}) { *h = append(*h, x.(node)) }
func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
