package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/cognicore/polyglot/pkg/polyglot/langmap"
)

// DefaultDebounce is how long a catalog file must stay quiet before it is
// reloaded.
const DefaultDebounce = 200 * time.Millisecond

// ReloadFunc is called after each reload attempt.
type ReloadFunc func(path string, changed int, err error)

// CatalogWatcher reloads catalog files into a Catalog when they change and
// then refreshes its cache.
//
// Parent directories are watched rather than the files so that editors
// replacing a file by rename are noticed.
type CatalogWatcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	catalog  *langmap.Catalog
	files    map[string]bool
	pending  map[string]time.Time
	debounce time.Duration
	log      *zap.Logger
	onReload ReloadFunc

	stopCh  chan struct{}
	doneCh  chan struct{}
	running bool
	stopped bool
}

// NewCatalogWatcher watches paths on behalf of cat.
func NewCatalogWatcher(cat *langmap.Catalog, paths []string, logger *zap.Logger) (*CatalogWatcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	cw := &CatalogWatcher{
		watcher:  w,
		catalog:  cat,
		files:    make(map[string]bool, len(paths)),
		pending:  make(map[string]time.Time),
		debounce: DefaultDebounce,
		log:      logger,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}

	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			w.Close()
			return nil, err
		}
		cw.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			w.Close()
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
	}
	return cw, nil
}

// SetDebounce changes the quiet period. Call before Start.
func (cw *CatalogWatcher) SetDebounce(d time.Duration) {
	cw.mu.Lock()
	cw.debounce = d
	cw.mu.Unlock()
}

// OnReload registers fn to be called after each reload. Call before Start.
func (cw *CatalogWatcher) OnReload(fn ReloadFunc) {
	cw.mu.Lock()
	cw.onReload = fn
	cw.mu.Unlock()
}

// Start begins watching in a goroutine. It returns at once. A watcher
// cannot be restarted after Stop.
func (cw *CatalogWatcher) Start(ctx context.Context) {
	cw.mu.Lock()
	if cw.running || cw.stopped {
		cw.mu.Unlock()
		return
	}
	cw.running = true
	cw.mu.Unlock()

	go cw.run(ctx)
}

// Stop ends watching and waits for the watch goroutine to exit.
func (cw *CatalogWatcher) Stop() error {
	cw.mu.Lock()
	wasRunning := cw.running
	cw.running = false
	cw.stopped = true
	cw.mu.Unlock()

	if wasRunning {
		close(cw.stopCh)
		<-cw.doneCh
	}
	return cw.watcher.Close()
}

func (cw *CatalogWatcher) run(ctx context.Context) {
	defer close(cw.doneCh)

	cw.mu.Lock()
	tick := cw.debounce / 4
	cw.mu.Unlock()
	if tick <= 0 {
		tick = 10 * time.Millisecond
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-cw.stopCh:
			return
		case ev, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			cw.handleEvent(ev)
		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			cw.log.Warn("catalog watch error", zap.Error(err))
		case now := <-ticker.C:
			cw.flush(ctx, now)
		}
	}
}

func (cw *CatalogWatcher) handleEvent(ev fsnotify.Event) {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
		return
	}
	name := filepath.Clean(ev.Name)

	cw.mu.Lock()
	defer cw.mu.Unlock()
	if !cw.files[name] {
		return
	}
	cw.pending[name] = time.Now()
}

// flush reloads files that have been quiet for the debounce period.
func (cw *CatalogWatcher) flush(ctx context.Context, now time.Time) {
	cw.mu.Lock()
	var due []string
	for path, at := range cw.pending {
		if now.Sub(at) >= cw.debounce {
			due = append(due, path)
			delete(cw.pending, path)
		}
	}
	onReload := cw.onReload
	cw.mu.Unlock()

	for _, path := range due {
		n, err := cw.reload(ctx, path)
		if err != nil {
			cw.log.Warn("catalog reload failed", zap.String("path", path), zap.Error(err))
		} else {
			cw.log.Info("catalog reloaded", zap.String("path", path), zap.Int("changed", n))
		}
		if onReload != nil {
			onReload(path, n, err)
		}
	}
}

func (cw *CatalogWatcher) reload(ctx context.Context, path string) (int, error) {
	cf, err := LoadCatalog(path)
	if err != nil {
		return 0, err
	}
	n, err := cf.Apply(ctx, cw.catalog)
	if n > 0 {
		cw.catalog.Refresh()
	}
	return n, err
}
