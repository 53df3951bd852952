package storage

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
)

// BestKey is the item under which the best collected count is stored.
const BestKey = "best_collected"

// ItemStore is a keyed blob store. *gdata.Manager satisfies it.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// BestStore tracks the best number of resources collected in a single run.
// Persistence failures are logged and otherwise ignored: the best value is a
// convenience and must never interrupt play.
type BestStore struct {
	mu     sync.Mutex
	items  ItemStore
	logger *log.Logger
	best   int
	loaded bool
}

// OpenBest opens the per-user gdata store for appName.
func OpenBest(appName string, logger *log.Logger) (*BestStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open item store: %w", err)
	}
	return NewBestStore(m, logger), nil
}

// NewBestStore wraps an existing item store. A nil store keeps the best value
// in memory only.
func NewBestStore(items ItemStore, logger *log.Logger) *BestStore {
	if logger == nil {
		logger = log.Default()
	}
	return &BestStore{items: items, logger: logger}
}

// Best returns the stored best collected count, 0 if none.
func (b *BestStore) Best() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.load()
	return b.best
}

// Record stores collected if it beats the current best and returns the best
// value afterwards.
func (b *BestStore) Record(collected int) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.load()
	if collected <= b.best {
		return b.best
	}
	b.best = collected

	if b.items == nil {
		return b.best
	}
	if err := b.items.SaveItem(BestKey, []byte(strconv.Itoa(collected))); err != nil {
		b.logger.Warn("could not save best collected", "error", err)
	}
	return b.best
}

func (b *BestStore) load() {
	if b.loaded {
		return
	}
	b.loaded = true

	if b.items == nil {
		return
	}
	data, err := b.items.LoadItem(BestKey)
	if err != nil {
		b.logger.Warn("could not load best collected", "error", err)
		return
	}
	if data == nil {
		return
	}

	n, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || n < 0 {
		b.logger.Warn("ignoring malformed best collected", "value", string(data))
		return
	}
	b.best = n
}
