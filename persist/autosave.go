package persist

import (
	"sync"
	"time"

	"github.com/lixenwraith/eldritch-clicker/game"
)

// Result reports one background save
type Result struct {
	SaveID string
	At     time.Time
	Err    error
}

// Autosaver writes snapshots on a background goroutine so saving never stalls the game loop
// Requests coalesce: a pending snapshot is replaced by a newer one
type Autosaver struct {
	store    Saver
	requests chan *game.State
	results  chan Result

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewAutosaver creates an autosaver writing through store
func NewAutosaver(store Saver) *Autosaver {
	return &Autosaver{
		store:    store,
		requests: make(chan *game.State, 1),
		results:  make(chan Result, 4),
		stopChan: make(chan struct{}),
	}
}

// Start launches the worker goroutine
func (a *Autosaver) Start() {
	a.wg.Add(1)
	go a.run()
}

// Stop halts the worker after any in-flight save completes; a pending snapshot is discarded
func (a *Autosaver) Stop() {
	a.stopOnce.Do(func() {
		close(a.stopChan)
		a.wg.Wait()
	})
}

// Results delivers outcomes to the loop
func (a *Autosaver) Results() <-chan Result {
	return a.results
}

// Request queues snapshot without blocking
// Must be called from a single goroutine; the snapshot must not be mutated afterwards
func (a *Autosaver) Request(snapshot *game.State) {
	select {
	case a.requests <- snapshot:
		return
	default:
	}

	// Slot taken by an older snapshot that the worker has not picked up yet
	select {
	case <-a.requests:
	default:
	}
	select {
	case a.requests <- snapshot:
	default:
	}
}

func (a *Autosaver) run() {
	defer a.wg.Done()

	for {
		select {
		case <-a.stopChan:
			return
		case snap := <-a.requests:
			err := a.store.Save(snap)
			r := Result{SaveID: snap.SaveID, At: time.Now(), Err: err}
			select {
			case a.results <- r:
			case <-a.stopChan:
				return
			}
		}
	}
}
