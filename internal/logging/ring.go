package logging

import "sync"

// Ring keeps the last few log lines. It is safe for concurrent use, since
// the event source goroutine logs too.
type Ring struct {
	mu    sync.Mutex
	lines []string
	size  int
}

// NewRing creates a ring holding at most size lines.
func NewRing(size int) *Ring {
	if size < 1 {
		size = 1
	}
	return &Ring{size: size}
}

// Push appends a line, dropping the oldest once full.
func (r *Ring) Push(line string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, line)
	if len(r.lines) > r.size {
		r.lines = r.lines[len(r.lines)-r.size:]
	}
}

// Lines returns a copy of the stored lines, oldest first.
func (r *Ring) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.lines))
	copy(out, r.lines)
	return out
}
