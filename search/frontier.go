package search

// frontier is the working set of discovered but unexpanded states.
//
// The queue preserves discovery order so the three pop disciplines can
// share one structure: breadth-first pops the front, depth-first pops the
// back, cost-guided pops an arbitrary index. The member set mirrors the
// queue so duplicate suppression stays O(1) regardless of queue length.
type frontier[S comparable] struct {
	queue  []S
	member map[S]struct{}
}

func newFrontier[S comparable]() *frontier[S] {
	return &frontier[S]{member: make(map[S]struct{})}
}

func (f *frontier[S]) len() int { return len(f.queue) }

func (f *frontier[S]) contains(s S) bool {
	_, ok := f.member[s]
	return ok
}

// push appends a state to the back of the queue.
func (f *frontier[S]) push(s S) {
	f.queue = append(f.queue, s)
	f.member[s] = struct{}{}
}

// popFront removes and returns the oldest state in the queue.
func (f *frontier[S]) popFront() S {
	s := f.queue[0]
	f.queue = f.queue[1:]
	delete(f.member, s)
	return s
}

// popBack removes and returns the newest state in the queue.
func (f *frontier[S]) popBack() S {
	last := len(f.queue) - 1
	s := f.queue[last]
	f.queue = f.queue[:last]
	delete(f.member, s)
	return s
}

// popAt removes and returns the state at index i, preserving the relative
// order of the remaining states.
func (f *frontier[S]) popAt(i int) S {
	s := f.queue[i]
	f.queue = append(f.queue[:i], f.queue[i+1:]...)
	delete(f.member, s)
	return s
}
