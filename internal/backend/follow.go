package backend

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// followReader reads a file and, at end of file, waits for the file to be
// written again instead of returning io.EOF.
type followReader struct {
	file    *os.File
	watcher *fsnotify.Watcher
	done    chan struct{}
	once    sync.Once
}

// FollowFile opens path for reading the way `tail -f` does. Reads end with
// io.EOF once the reader is closed or the file is removed or renamed.
func FollowFile(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("watch input: %w", err)
	}
	if err := watcher.Add(path); err != nil {
		_ = watcher.Close()
		_ = f.Close()
		return nil, fmt.Errorf("watch input %s: %w", path, err)
	}
	return &followReader{file: f, watcher: watcher, done: make(chan struct{})}, nil
}

func (r *followReader) Read(p []byte) (int, error) {
	for {
		select {
		case <-r.done:
			return 0, io.EOF
		default:
		}
		n, err := r.file.Read(p)
		if n > 0 {
			return n, nil
		}
		switch {
		case errors.Is(err, os.ErrClosed):
			return 0, io.EOF
		case err != nil && !errors.Is(err, io.EOF):
			return 0, err
		}
		if err := r.wait(); err != nil {
			return 0, err
		}
	}
}

// wait blocks until the file is written, or returns io.EOF when following
// should stop.
func (r *followReader) wait() error {
	for {
		select {
		case <-r.done:
			return io.EOF
		case evt, ok := <-r.watcher.Events:
			if !ok {
				return io.EOF
			}
			if evt.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				return io.EOF
			}
			if evt.Op&fsnotify.Write != 0 {
				return nil
			}
		case err, ok := <-r.watcher.Errors:
			if !ok {
				return io.EOF
			}
			return fmt.Errorf("watch input: %w", err)
		}
	}
}

// Close stops following and releases the file. It is safe to call while a
// Read is blocked.
func (r *followReader) Close() error {
	var err error
	r.once.Do(func() {
		close(r.done)
		err = errors.Join(r.watcher.Close(), r.file.Close())
	})
	return err
}
