package hunt

import "github.com/mironco/ghosthunt/internal/engine"

// Progress counts delivered ghosts toward the win condition.
type Progress struct {
	count int
	total int
	fired bool

	// OnComplete fires once, on the delivery that reaches the total.
	OnComplete engine.Event
}

func NewProgress(total int) *Progress {
	return &Progress{total: total}
}

// Increment records one delivery and returns the new count. The count never
// exceeds the total.
func (p *Progress) Increment() int {
	if p.count < p.total {
		p.count++
	}
	if p.IsComplete() && !p.fired {
		p.fired = true
		p.OnComplete.Invoke()
	}
	return p.count
}

// SetTotal sets the number of deliveries needed to win, once the level is known.
func (p *Progress) SetTotal(total int) {
	p.total = total
}

// Reset zeroes the count and re-arms OnComplete. Listeners are kept.
func (p *Progress) Reset() {
	p.count = 0
	p.fired = false
}

func (p *Progress) IsComplete() bool {
	return p.count >= p.total
}

func (p *Progress) Count() int {
	return p.count
}

func (p *Progress) Total() int {
	return p.total
}
