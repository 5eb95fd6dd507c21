package sitegen

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce coalesces the bursts of events editors emit per save.
const watchDebounce = 500 * time.Millisecond

// WatchPortfolio generates the portfolio page, then regenerates it whenever
// a descriptor under the entries directory changes. It blocks until stop is
// closed. New entry directories are picked up as they appear.
func (a *App) WatchPortfolio(stop <-chan struct{}) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dir := a.Config.EntriesPath()
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read entries dir: %w", err)
	}
	for _, d := range dirents {
		if !d.IsDir() {
			continue
		}
		if err := watcher.Add(filepath.Join(dir, d.Name())); err != nil {
			return fmt.Errorf("watch %s: %w", d.Name(), err)
		}
	}

	if err := a.GeneratePortfolio(); err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "watching %s for changes\n", dir)

	regen := make(chan struct{}, 1)
	debounce := make(map[string]*time.Timer)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = watcher.Add(event.Name)
				}
			}
			if filepath.Base(event.Name) != a.Config.EntryFile {
				continue
			}
			if timer, exists := debounce[event.Name]; exists {
				timer.Stop()
			}
			debounce[event.Name] = time.AfterFunc(watchDebounce, func() {
				select {
				case regen <- struct{}{}:
				default:
				}
			})
		case <-regen:
			if err := a.GeneratePortfolio(); err != nil {
				fmt.Fprintf(a.Errw, "warning: regenerate: %v\n", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(a.Errw, "warning: watcher: %v\n", err)
		case <-stop:
			return nil
		}
	}
}
