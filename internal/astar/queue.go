package astar

// openEntry is an open waypoint and its position in the openQueue heap.
type openEntry[W Waypoint] struct {
	waypoint     W
	indexInQueue int
}

// openQueue implements heap.Interface over the open waypoints, ordered by total cost.
//
// Ties are broken by location (y first, then x), so the minimum is deterministic.
type openQueue[W Waypoint] []*openEntry[W]

func (queue openQueue[W]) Len() int { return len(queue) }

func (queue openQueue[W]) Less(i, j int) bool {
	return lessWaypoint(queue[i].waypoint, queue[j].waypoint)
}

func (queue openQueue[W]) Swap(i, j int) {
	queue[i], queue[j] = queue[j], queue[i]
	queue[i].indexInQueue = i
	queue[j].indexInQueue = j
}

func (queue *openQueue[W]) Push(x any) {
	entry := x.(*openEntry[W])
	entry.indexInQueue = len(*queue)
	*queue = append(*queue, entry)
}

func (queue *openQueue[W]) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	entry := oldQueue[n-1]
	oldQueue[n-1] = nil
	entry.indexInQueue = -1
	*queue = oldQueue[:n-1]
	return entry
}

// lessWaypoint orders by total cost, then by location.
func lessWaypoint[W Waypoint](a, b W) bool {
	costA, costB := a.TotalCost(), b.TotalCost()
	if costA != costB {
		return costA < costB
	}
	return a.Location().Less(b.Location())
}
