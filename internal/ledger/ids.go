package ledger

import "time"

// idGenerator hands out millisecond-timestamp ids that are strictly
// increasing within a process, even when the clock stalls or runs backwards.
type idGenerator struct {
	now  func() time.Time
	last int64
}

func (g *idGenerator) next() int64 {
	id := g.now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}

// observe makes later ids larger than id.
func (g *idGenerator) observe(id int64) {
	if id > g.last {
		g.last = id
	}
}
