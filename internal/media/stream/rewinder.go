// Package stream holds beep streamers that carry no device dependency.
package stream

import (
	"github.com/gopxl/beep/v2"
)

// Rewinder plays s forever: whenever s runs dry it is seeked back to 0 and
// playback continues in the same Stream call. onEnd, if set, runs once per
// wrap on the speaker goroutine and must not block.
type Rewinder struct {
	s     beep.StreamSeeker
	onEnd func()
	loops int
	err   error
}

func NewRewinder(s beep.StreamSeeker, onEnd func()) *Rewinder {
	return &Rewinder{s: s, onEnd: onEnd}
}

func (r *Rewinder) Stream(samples [][2]float64) (n int, ok bool) {
	if r.err != nil || r.s.Len() == 0 {
		return 0, false
	}

	// Two wraps in a row without a single sample means the source is broken.
	idleWraps := 0
	for n < len(samples) {
		sn, sok := r.s.Stream(samples[n:])
		n += sn
		if sn > 0 {
			idleWraps = 0
		}
		if sok && sn > 0 {
			continue
		}

		if err := r.s.Err(); err != nil {
			r.err = err
			return n, n > 0
		}
		if idleWraps > 0 {
			return n, n > 0
		}
		if err := r.s.Seek(0); err != nil {
			r.err = err
			return n, n > 0
		}
		idleWraps++
		r.loops++
		if r.onEnd != nil {
			r.onEnd()
		}
	}
	return n, true
}

func (r *Rewinder) Err() error {
	return r.err
}

// Loops reports how many times the source has been rewound.
func (r *Rewinder) Loops() int {
	return r.loops
}
