package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ChangeKind says what a changed prefab file feeds.
type ChangeKind int

const (
	ChangeTuning ChangeKind = iota + 1
	ChangeActions
	ChangeScript
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeTuning:
		return "tuning"
	case ChangeActions:
		return "actions"
	case ChangeScript:
		return "script"
	}
	return "unknown"
}

// Change is one debounced prefab edit.
type Change struct {
	Kind ChangeKind
	Path string
}

func (c Change) Name() string { return filepath.Base(c.Path) }

// Classify maps a file path to the prefab it belongs to. Files that are not
// prefabs report false.
func Classify(path string) (ChangeKind, bool) {
	switch {
	case IsScriptFile(path):
		return ChangeScript, true
	case !IsSpecFile(path):
		return 0, false
	case filepath.Base(path) == TuningFile:
		return ChangeTuning, true
	}
	return ChangeActions, true
}

const debounceWindow = 100 * time.Millisecond

// debouncer drops repeats of the same path inside a window; editors often
// write a file several times per save.
type debouncer struct {
	window time.Duration
	last   map[string]time.Time
}

func (d *debouncer) allow(path string, now time.Time) bool {
	if t, ok := d.last[path]; ok && now.Sub(t) < d.window {
		return false
	}
	d.last[path] = now
	return true
}

// Watcher reports prefab changes so the caller can reload them on its own
// goroutine.
type Watcher struct {
	Changes chan Change
	Errors  chan error

	fs      *fsnotify.Watcher
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		Changes: make(chan Change, 16),
		Errors:  make(chan error, 1),
		fs:      fw,
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go w.run(&debouncer{window: debounceWindow, last: make(map[string]time.Time)})
	return w, nil
}

// Close stops the watcher and closes both channels.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.fs.Close()
		<-w.done
		close(w.Changes)
		close(w.Errors)
	})
	return err
}

const relevantOps = fsnotify.Write | fsnotify.Create | fsnotify.Rename | fsnotify.Remove

func (w *Watcher) run(d *debouncer) {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if event.Op&relevantOps == 0 {
				continue
			}
			kind, ok := Classify(event.Name)
			if !ok || !d.allow(event.Name, time.Now()) {
				continue
			}
			select {
			case w.Changes <- Change{Kind: kind, Path: event.Name}:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

func IsSpecFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func IsScriptFile(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".tengo"
}
