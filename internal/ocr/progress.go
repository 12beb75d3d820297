package ocr

import "sync"

// ProgressFunc receives recognition progress as a percentage in [0, 100].
type ProgressFunc func(percent int)

// Monotonic wraps fn so that reported values are clamped to [0, 100] and
// never go backwards. A nil fn yields a no-op callback.
func Monotonic(fn ProgressFunc) ProgressFunc {
	if fn == nil {
		return func(int) {}
	}
	var (
		mu   sync.Mutex
		last = -1
	)
	return func(p int) {
		if p < 0 {
			p = 0
		}
		if p > 100 {
			p = 100
		}
		mu.Lock()
		if p < last {
			mu.Unlock()
			return
		}
		last = p
		mu.Unlock()
		fn(p)
	}
}
