package tail

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	logconst "github.com/yaklabco/herald/internal/log"
)

// follow streams lines appended to path after offset until ctx is canceled.
// The watch is placed on the parent directory so that rotations (remove or
// rename of the file itself) are observed and end the follow cleanly.
func follow(ctx context.Context, path string, offset int64, opts Options) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			eventAbs, _ := filepath.Abs(event.Name)
			if eventAbs != abs {
				continue
			}
			if event.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				slog.Debug("followed file went away", logconst.Path, path)
				return nil
			}
			if event.Op&fsnotify.Write == 0 {
				continue
			}

			n, err := emitAppended(path, offset, opts)
			if err != nil {
				return err
			}
			offset += n

		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Debug("watcher error", logconst.Error, werr)
		}
	}
}

// emitAppended streams complete lines between offset and EOF, returning how
// many bytes were consumed. A trailing line without a newline is held back,
// so a write that lands mid-line is not emitted until the line completes.
func emitAppended(path string, offset int64, opts Options) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.Seek(offset, io.SeekStart); err != nil {
		return 0, fmt.Errorf("seeking %s: %w", path, err)
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", path, err)
	}

	cut := bytes.LastIndexByte(data, '\n')
	if cut < 0 {
		return 0, nil
	}
	complete := data[:cut+1]

	// Never re-follow here; Stream just drains the complete lines.
	streamOpts := opts
	streamOpts.Follow = false
	if err := Stream(bytes.NewReader(complete), streamOpts); err != nil {
		return 0, err
	}

	return int64(len(complete)), nil
}
