package renderer

import (
	"sync"

	"github.com/df07/go-scene-raytracer/pkg/log"
)

// Progress counts finished pixels across workers. It only drives log
// output and never affects the rendered image.
type Progress struct {
	mu           sync.Mutex
	done         int
	total        int
	lastReported int // last reported percentage, in steps of 10
	logger       log.Logger
}

// NewProgress creates a counter for total pixels
func NewProgress(total int, logger log.Logger) *Progress {
	return &Progress{total: total, logger: logger}
}

// Add records n more finished pixels
func (p *Progress) Add(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.done += n
	if p.total == 0 {
		return
	}
	percent := 100 * p.done / p.total
	if percent/10 > p.lastReported/10 {
		p.lastReported = percent
		p.logger.Infof("rendered %d/%d pixels (%d%%)", p.done, p.total, percent)
	}
}

// Done returns the number of finished pixels
func (p *Progress) Done() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.done
}
