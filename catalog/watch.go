package catalog

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
)

// ReloadDebounce coalesces bursts of file events (editors often write, chmod
// and rename in quick succession) into one rebuild.
const ReloadDebounce = 100 * time.Millisecond

// Watch loads the definitions of dir matching glob, builds a catalog and passes
// it to onReload; it then repeats that whenever a matching file below dir is
// created, written, removed or renamed. Subdirectories are watched too,
// including ones created while Watch runs. A failed load or build is passed as
// the error and the previous catalog stays in the caller's hands. Events that
// leave the matched files byte-identical do not trigger a rebuild.
//
// Watch blocks until ctx is done and returns nil then.
func Watch(ctx context.Context, dir, glob string, onReload func(*Catalog, error), opts ...Option) error {
	if !doublestar.ValidatePattern(glob) {
		return fmt.Errorf("Watch(%q): %w", glob, doublestar.ErrBadPattern)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("Watch: %w", err)
	}
	defer w.Close()
	if err := watchTree(w, dir); err != nil {
		return fmt.Errorf("Watch(%q): %w", dir, err)
	}

	fsys := os.DirFS(dir)
	var last uint64
	reload := func() {
		defs, err := LoadFS(fsys, glob)
		if err != nil {
			last = 0
			onReload(nil, err)
			return
		}
		if last != 0 && defs.Digest == last {
			// touched but unchanged
			return
		}
		c, err := Build(defs, opts...)
		if err == nil {
			last = defs.Digest
		} else {
			last = 0
		}
		onReload(c, err)
	}
	reload()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if isNewDir(ev) {
				// files may land in it before the watch is added; the
				// scheduled reload picks them up
				if err := watchTree(w, ev.Name); err != nil {
					onReload(nil, fmt.Errorf("Watch(%q): %w", ev.Name, err))
				}
			} else if !relevant(dir, glob, ev) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(ReloadDebounce)
			} else {
				timer.Reset(ReloadDebounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			reload()

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			onReload(nil, fmt.Errorf("Watch: %w", err))
		}
	}
}

// relevant reports whether ev touches a definition file matching glob.
func relevant(dir, glob string, ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) &&
		!ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
		return false
	}
	rel, err := filepath.Rel(dir, ev.Name)
	if err != nil {
		return false
	}
	ok, err := doublestar.Match(glob, filepath.ToSlash(rel))

	return err == nil && ok
}

// watchTree adds root and every directory below it to w.
func watchTree(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}

		return w.Add(path)
	})
}

// isNewDir reports whether ev created a directory.
func isNewDir(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Create) {
		return false
	}
	fi, err := os.Stat(ev.Name)

	return err == nil && fi.IsDir()
}
