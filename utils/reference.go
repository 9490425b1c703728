package utils

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	ReferencePrefix = "BLC"
	referenceSuffix = 4
	// 36^4 distinct suffixes per millisecond.
	referenceSpace = 36 * 36 * 36 * 36
)

// ReferenceGenerator issues booking reference numbers of the form
// PREFIX-TIMESTAMP36-RAND4. Suffixes already issued in the current
// millisecond are not reused, so one generator never repeats itself.
type ReferenceGenerator struct {
	mu     sync.Mutex
	prefix string
	now    func() time.Time
	intn   func(n int) int

	millis int64
	used   map[int]struct{}
}

func NewReferenceGenerator(prefix string, now func() time.Time) *ReferenceGenerator {
	if now == nil {
		now = time.Now
	}
	return &ReferenceGenerator{
		prefix: prefix,
		now:    now,
		intn:   rand.IntN,
		used:   make(map[int]struct{}),
	}
}

// Next returns a new reference number and the time it was stamped with.
func (g *ReferenceGenerator) Next() (string, time.Time) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	// Never step back onto a millisecond whose suffixes were already issued.
	ms := max(now.UnixMilli(), g.millis)
	if ms > g.millis {
		g.millis = ms
		clear(g.used)
	}
	if len(g.used) >= referenceSpace {
		// Exhausted this millisecond; borrow the next one.
		g.millis++
		ms = g.millis
		clear(g.used)
	}

	n := g.intn(referenceSpace)
	for {
		if _, taken := g.used[n]; !taken {
			break
		}
		n = (n + 1) % referenceSpace
	}
	g.used[n] = struct{}{}

	return FormatReference(g.prefix, ms, n), now
}

// FormatReference renders the parts of a reference number.
func FormatReference(prefix string, millis int64, suffix int) string {
	ts := strings.ToUpper(strconv.FormatInt(millis, 36))
	rnd := strings.ToUpper(strconv.FormatInt(int64(suffix), 36))
	if pad := referenceSuffix - len(rnd); pad > 0 {
		rnd = strings.Repeat("0", pad) + rnd
	}
	return prefix + "-" + ts + "-" + rnd
}
