package data

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/schulstick/portal/log"
)

// CatalogWatcher watches the unit root for changes and triggers a
// debounced rescan. fsnotify does not recurse, so every directory in
// the tree is added individually and new directories are added as
// they appear.
type CatalogWatcher struct {
	root     string
	watcher  *fsnotify.Watcher
	onChange func()
	debounce time.Duration
}

func NewCatalogWatcher(root string, onChange func()) (*CatalogWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &CatalogWatcher{
		root:     root,
		watcher:  watcher,
		onChange: onChange,
		debounce: 500 * time.Millisecond,
	}, nil
}

// Start begins watching. It is non-blocking and runs until ctx is
// cancelled or Close is called.
func (w *CatalogWatcher) Start(ctx context.Context) error {
	if err := w.addTree(w.root); err != nil {
		return err
	}
	go w.run(ctx)
	return nil
}

func (w *CatalogWatcher) Close() error {
	return w.watcher.Close()
}

func (w *CatalogWatcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") && path != dir {
			return filepath.SkipDir
		}
		return w.watcher.Add(path)
	})
}

func (w *CatalogWatcher) run(ctx context.Context) {
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !relevant(event) {
				continue
			}
			log.Debugf(ctx, "catalog watcher: %s %s", event.Op, event.Name)
			if event.Op.Has(fsnotify.Create) {
				// New directories need their own watch
				if err := w.addTree(event.Name); err != nil {
					log.Warnf(ctx, "watch %s: %v", event.Name, err)
				}
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Errorf(ctx, "catalog watcher: %v", err)
		case <-fire:
			fire = nil
			w.onChange()
		}
	}
}

func relevant(event fsnotify.Event) bool {
	if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) &&
		!event.Op.Has(fsnotify.Remove) && !event.Op.Has(fsnotify.Rename) {
		return false
	}
	base := filepath.Base(event.Name)
	if strings.HasPrefix(base, ".") {
		return false
	}
	ext := filepath.Ext(base)
	return ext == ".md" || ext == ".yml" || ext == ".yaml" || ext == ""
}
