// Package hotreload notifies about changes to YAML configuration files
// so cameras can pick up new settings and shake presets while running.
package hotreload

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// A changed file is reported once it has been quiet for this long.
// Bursts of writes to the same file (truncate then write, editors
// saving twice) produce a single event carrying the final contents.
const Debounce = 100 * time.Millisecond

// Watches files or directories for YAML changes. Changed file paths
// are delivered on Events and watcher failures on Errors. Both
// channels are closed once the watcher stops.
//
// Consumers are expected to drain Events without blocking, typically
// once per game tick:
//
//	select {
//	case path := <-watcher.Events:
//		// reload path
//	default:
//	}
type Watcher struct {
	watcher *fsnotify.Watcher
	files   map[string]bool // explicit file targets, by cleaned path
	dirs    map[string]bool // directory targets, any yaml file inside
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// Creates a watcher for the given paths. Paths may be YAML files or
// directories. Files are watched through their parent directory so
// editors that save by renaming keep being tracked.
func New(paths ...string) (*Watcher, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("hotreload: no paths to watch")
	}
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("hotreload: create watcher: %w", err)
	}

	watcher := &Watcher{
		watcher: fsWatcher,
		files:   make(map[string]bool),
		dirs:    make(map[string]bool),
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	added := make(map[string]bool)
	for _, path := range paths {
		path = filepath.Clean(path)
		info, err := os.Stat(path)
		if err != nil {
			_ = fsWatcher.Close()
			return nil, fmt.Errorf("hotreload: watch %s: %w", path, err)
		}
		dir := path
		if info.IsDir() {
			watcher.dirs[path] = true
		} else {
			watcher.files[path] = true
			dir = filepath.Dir(path)
		}
		if added[dir] {
			continue
		}
		if err := fsWatcher.Add(dir); err != nil {
			_ = fsWatcher.Close()
			return nil, fmt.Errorf("hotreload: watch %s: %w", dir, err)
		}
		added[dir] = true
	}

	go watcher.run()
	return watcher, nil
}

// Stops the watcher. Safe to call more than once.
func (self *Watcher) Close() error {
	var err error
	self.once.Do(func() {
		close(self.closeCh)
		err = self.watcher.Close()
		<-self.done
	})
	return err
}

func (self *Watcher) run() {
	defer func() {
		close(self.Events)
		close(self.Errors)
		close(self.done)
	}()

	// paths waiting for their quiet period to end
	deadlines := make(map[string]time.Time)
	timer := time.NewTimer(Debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()
	var timerC <-chan time.Time

	for {
		select {
		case event, ok := <-self.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			name := filepath.Clean(event.Name)
			if !self.matches(name) {
				continue
			}
			deadlines[name] = time.Now().Add(Debounce)
			if timerC == nil {
				timer.Reset(Debounce)
				timerC = timer.C
			}
		case now := <-timerC:
			timerC = nil
			if !self.publishDue(deadlines, now) {
				return
			}
			if next, ok := nextDeadline(deadlines); ok {
				timer.Reset(max(next.Sub(time.Now()), time.Millisecond))
				timerC = timer.C
			}
		case err, ok := <-self.watcher.Errors:
			if !ok {
				return
			}
			select {
			case self.Errors <- err:
			case <-self.closeCh:
				return
			}
		case <-self.closeCh:
			return
		}
	}
}

// Sends every path whose deadline has passed, oldest first. Returns
// false if the watcher was closed while sending.
func (self *Watcher) publishDue(deadlines map[string]time.Time, now time.Time) bool {
	due := make([]string, 0, len(deadlines))
	for name, deadline := range deadlines {
		if !deadline.After(now) {
			due = append(due, name)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		return deadlines[due[i]].Before(deadlines[due[j]])
	})
	for _, name := range due {
		delete(deadlines, name)
		select {
		case self.Events <- name:
		case <-self.closeCh:
			return false
		}
	}
	return true
}

func nextDeadline(deadlines map[string]time.Time) (time.Time, bool) {
	var next time.Time
	found := false
	for _, deadline := range deadlines {
		if !found || deadline.Before(next) {
			next, found = deadline, true
		}
	}
	return next, found
}

func (self *Watcher) matches(path string) bool {
	if self.files[path] {
		return true
	}
	return self.dirs[filepath.Dir(path)] && IsConfigFile(path)
}

// Returns whether the path has a YAML extension.
func IsConfigFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
