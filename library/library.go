// Package library loads curves from point files and keeps them up to date.
package library

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/patrickmn/go-cache"
	"github.com/rtrproject/curve"
	"github.com/rtrproject/curve/pointfile"
)

// Builder turns control points into a curve.
type Builder func(points []curve.Point) curve.Interpolation

// BezierBuilder makes a single Bézier curve of all points.
func BezierBuilder(points []curve.Point) curve.Interpolation {
	return curve.NewBezierCurve(points...)
}

// Entry is a loaded curve. Entries are shared and must not be modified.
type Entry struct {
	Path   string
	Points []curve.Point
	Curve  curve.Interpolation
}

// Library caches curves by the absolute path of their point file. It is safe
// for concurrent use.
type Library struct {
	scale  float64
	build  Builder
	ttl    time.Duration
	logger *slog.Logger

	cache *cache.Cache

	mu      sync.Mutex
	watcher *fsnotify.Watcher
	dirs    map[string]bool
}

// Option configures a [Library].
type Option func(*Library)

// WithScale sets the factor applied to coordinates read from point files.
// The default is [pointfile.DefaultScale].
func WithScale(f float64) Option {
	return func(lib *Library) { lib.scale = f }
}

// WithBuilder sets how curves are made from points. The default is
// [BezierBuilder].
func WithBuilder(b Builder) Option {
	return func(lib *Library) { lib.build = b }
}

// WithTTL evicts entries that haven't been loaded for d. By default entries
// never expire.
func WithTTL(d time.Duration) Option {
	return func(lib *Library) { lib.ttl = d }
}

// WithLogger sets the logger. The default is [slog.Default].
func WithLogger(l *slog.Logger) Option {
	return func(lib *Library) { lib.logger = l }
}

// New returns an empty library.
func New(opts ...Option) *Library {
	lib := &Library{
		scale: pointfile.DefaultScale,
		build: BezierBuilder,
		ttl:   cache.NoExpiration,
	}
	for _, opt := range opts {
		opt(lib)
	}
	if lib.logger == nil {
		lib.logger = slog.Default()
	}
	cleanup := time.Duration(0)
	if lib.ttl > 0 {
		cleanup = lib.ttl
	}
	lib.cache = cache.New(lib.ttl, cleanup)
	return lib
}

func key(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.Clean(abs), nil
}

// Get returns the entry for the point file at path, loading it if it isn't
// cached.
func (lib *Library) Get(path string) (*Entry, error) {
	k, err := key(path)
	if err != nil {
		return nil, err
	}
	if e, ok := lib.cache.Get(k); ok {
		return e.(*Entry), nil
	}
	return lib.load(k)
}

// Load reads the point file at path and replaces any cached entry.
func (lib *Library) Load(path string) (*Entry, error) {
	k, err := key(path)
	if err != nil {
		return nil, err
	}
	return lib.load(k)
}

func (lib *Library) load(k string) (*Entry, error) {
	pts, err := pointfile.ReadFile(k, lib.scale)
	if err != nil {
		return nil, err
	}
	e := &Entry{Path: k, Points: pts, Curve: lib.build(pts)}
	lib.cache.Set(k, e, cache.DefaultExpiration)
	lib.logger.Debug("loaded curve", "path", k, "points", len(pts))

	lib.mu.Lock()
	defer lib.mu.Unlock()
	if lib.watcher != nil {
		lib.watchDir(filepath.Dir(k))
	}
	return e, nil
}

// Evict removes the entry for path.
func (lib *Library) Evict(path string) {
	if k, err := key(path); err == nil {
		lib.cache.Delete(k)
	}
}

// Paths returns the sorted paths of all cached entries.
func (lib *Library) Paths() []string {
	items := lib.cache.Items()
	paths := make([]string, 0, len(items))
	for k := range items {
		paths = append(paths, k)
	}
	sort.Strings(paths)
	return paths
}

// Len returns the number of cached entries.
func (lib *Library) Len() int {
	return lib.cache.ItemCount()
}

// watchDir must be called with mu held.
func (lib *Library) watchDir(dir string) {
	if lib.dirs[dir] {
		return
	}
	if err := lib.watcher.Add(dir); err != nil {
		lib.logger.Warn("can't watch directory", "dir", dir, "err", err)
		return
	}
	lib.dirs[dir] = true
}

// Watch reloads cached entries whenever their point files change and calls
// onReload with each new entry. It blocks until ctx is done. Files that fail
// to parse are logged and leave the cached entry in place. Only one Watch
// may run at a time.
//
// Parent directories are watched instead of the files themselves, so that
// files replaced by renaming are picked up.
func (lib *Library) Watch(ctx context.Context, onReload func(*Entry)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close()

	lib.mu.Lock()
	if lib.watcher != nil {
		lib.mu.Unlock()
		return errors.New("library is already being watched")
	}
	lib.watcher = w
	lib.dirs = make(map[string]bool)
	for _, k := range lib.Paths() {
		lib.watchDir(filepath.Dir(k))
	}
	lib.mu.Unlock()

	defer func() {
		lib.mu.Lock()
		lib.watcher = nil
		lib.dirs = nil
		lib.mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if e := lib.reload(filepath.Clean(ev.Name)); e != nil && onReload != nil {
				onReload(e)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			lib.logger.Warn("watcher error", "err", err)
		}
	}
}

// reload returns the new entry, or nil if the file isn't cached or its
// points haven't changed. A file that is now empty is ignored.
func (lib *Library) reload(k string) *Entry {
	v, ok := lib.cache.Get(k)
	if !ok {
		return nil
	}
	old := v.(*Entry)
	pts, err := pointfile.ReadFile(k, lib.scale)
	if err != nil {
		lib.logger.Warn("reloading curve failed", "path", k, "err", err)
		return nil
	}
	// Editors often truncate before writing.
	if len(pts) == 0 || slices.Equal(pts, old.Points) {
		return nil
	}
	e := &Entry{Path: k, Points: pts, Curve: lib.build(pts)}
	lib.cache.Set(k, e, cache.DefaultExpiration)
	lib.logger.Info("reloaded curve", "path", k, "points", len(pts))
	return e
}
