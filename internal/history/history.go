// Package history provides the fixed-capacity sample buffers that record
// simulation state over time, outside the simulation itself.
package history

import (
	"github.com/myphysicslab/myphysicslab-sub000/internal/vars"
)

// Memorizable is anything that records a sample when asked; the advance
// strategy calls Memorize once per completed step.
type Memorizable interface {
	Memorize()
}

// CircularList is a fixed-capacity ring of float64 samples. Once full,
// new samples overwrite the oldest.
type CircularList struct {
	buf  [][]float64
	next int
	size int
}

func NewCircularList(capacity int) *CircularList {
	if capacity < 1 {
		capacity = 1
	}
	return &CircularList{buf: make([][]float64, capacity)}
}

func (c *CircularList) Capacity() int { return len(c.buf) }
func (c *CircularList) Len() int      { return c.size }

// Append stores a copy of sample, evicting the oldest when full.
func (c *CircularList) Append(sample []float64) {
	cp := make([]float64, len(sample))
	copy(cp, sample)
	c.buf[c.next] = cp
	c.next = (c.next + 1) % len(c.buf)
	if c.size < len(c.buf) {
		c.size++
	}
}

// At returns the i-th sample, oldest first. Out-of-range returns nil.
func (c *CircularList) At(i int) []float64 {
	if i < 0 || i >= c.size {
		return nil
	}
	if c.size < len(c.buf) {
		return c.buf[i]
	}
	return c.buf[(c.next+i)%len(c.buf)]
}

// Latest returns the most recent sample, or nil when empty.
func (c *CircularList) Latest() []float64 {
	if c.size == 0 {
		return nil
	}
	return c.At(c.size - 1)
}

// Column extracts component col from every sample, oldest first.
// Samples too short for col contribute zero.
func (c *CircularList) Column(col int) []float64 {
	out := make([]float64, c.size)
	for i := 0; i < c.size; i++ {
		s := c.At(i)
		if col < len(s) {
			out[i] = s[col]
		}
	}
	return out
}

// VarsRecorder samples a variable list into a CircularList each time it
// is memorized. It observes the list, never owns it.
type VarsRecorder struct {
	list    *vars.List
	Samples *CircularList
}

func NewVarsRecorder(list *vars.List, capacity int) *VarsRecorder {
	return &VarsRecorder{list: list, Samples: NewCircularList(capacity)}
}

func (r *VarsRecorder) Memorize() {
	r.Samples.Append(r.list.Values(true))
}
