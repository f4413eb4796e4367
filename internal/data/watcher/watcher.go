package watcher

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/penwyp/go-expiry-bar/internal/util"
)

// FileEvent reports a change to one watched file.
type FileEvent struct {
	Path      string
	Operation string
}

// FileWatcher watches individual files. Editors often replace a file
// instead of writing it in place, so the parent directories are watched and
// events are filtered down to the requested paths.
type FileWatcher struct {
	watcher *fsnotify.Watcher
	targets map[string]struct{}
	events  chan FileEvent
	done    chan struct{}
}

// NewFileWatcher starts watching paths.
func NewFileWatcher(paths []string) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	fw := &FileWatcher{
		watcher: watcher,
		targets: make(map[string]struct{}, len(paths)),
		events:  make(chan FileEvent, 100),
		done:    make(chan struct{}),
	}

	dirs := make(map[string]struct{})
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			watcher.Close()
			return nil, err
		}
		fw.targets[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}

	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return nil, err
		}
		util.LogDebugf("Watching directory: %s", dir)
	}

	go fw.processEvents()

	return fw, nil
}

func (fw *FileWatcher) processEvents() {
	defer close(fw.done)
	defer close(fw.events)

	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}
			if _, ok := fw.targets[abs]; !ok {
				continue
			}

			select {
			case fw.events <- FileEvent{Path: abs, Operation: event.Op.String()}:
			default:
				// a re-render is already pending
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			util.LogError("File monitoring error: " + err.Error())
		}
	}
}

// Events delivers changes to the watched files. The channel is closed after Close.
func (fw *FileWatcher) Events() <-chan FileEvent {
	return fw.events
}

func (fw *FileWatcher) Close() error {
	err := fw.watcher.Close()
	<-fw.done
	return err
}
