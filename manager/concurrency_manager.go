package manager

import (
	"github.com/sirupsen/logrus"

	"hfenv/logging"
)

var log *logrus.Logger

func init() {
	log = logging.GetLogger()
}

const fallbackSize = 4

// WorkerPool caps the number of requests handled at once. Slots are a
// buffered channel used as a counting semaphore.
type WorkerPool struct {
	sem  chan struct{}
	size int
}

// NewWorkerPool initializes a pool with the given number of slots.
func NewWorkerPool(size int) *WorkerPool {
	if size <= 0 {
		log.Warnf("Invalid worker count %d. Using default %d.", size, fallbackSize)
		size = fallbackSize
	}
	return &WorkerPool{
		sem:  make(chan struct{}, size),
		size: size,
	}
}

// Acquire attempts to take a worker slot without blocking. On success it
// returns a release function that must be called when the work is done.
func (p *WorkerPool) Acquire() (func(), bool) {
	select {
	case p.sem <- struct{}{}:
		return func() { <-p.sem }, true
	default:
		return nil, false
	}
}

// Size returns the number of slots in the pool.
func (p *WorkerPool) Size() int {
	return p.size
}
