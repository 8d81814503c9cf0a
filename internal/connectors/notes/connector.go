// Package notes implements the filesystem connector for study notes.
// It reads plain-text and Markdown files from a directory (or a
// single file) and can watch the directory for changes.
package notes

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/studium-labs/studium-cli/internal/core/domain"
	"github.com/studium-labs/studium-cli/internal/core/ports/driven"
	"github.com/studium-labs/studium-cli/internal/logger"
)

// Ensure Connector implements the interface.
var _ driven.Connector = (*Connector)(nil)

// debounceWindow coalesces bursts of events for the same file, which
// editors produce on every save.
const debounceWindow = 300 * time.Millisecond

// defaultExtensions are the note file types read when none are
// configured.
var defaultExtensions = []string{".txt", ".md"}

// Connector reads study notes from the local filesystem.
type Connector struct {
	rootPath   string
	extensions []string
}

// New creates a filesystem notes connector rooted at rootPath, which
// may be a directory or a single note file. Extensions default to
// .txt and .md when empty.
func New(rootPath string, extensions []string) *Connector {
	if len(extensions) == 0 {
		extensions = defaultExtensions
	}
	lowered := make([]string, len(extensions))
	for i, ext := range extensions {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		lowered[i] = strings.ToLower(ext)
	}
	return &Connector{
		rootPath:   rootPath,
		extensions: lowered,
	}
}

// Type returns the connector type identifier.
func (c *Connector) Type() string {
	return "notes"
}

// Validate checks the root path exists and is readable.
func (c *Connector) Validate(_ context.Context) error {
	if c.rootPath == "" {
		return fmt.Errorf("%w: notes path is required", domain.ErrInvalidInput)
	}
	info, err := os.Stat(c.rootPath)
	if err != nil {
		return fmt.Errorf("checking notes path %q: %w", c.rootPath, err)
	}
	if !info.IsDir() && !c.isNoteFile(c.rootPath) {
		return fmt.Errorf("%w: %q is not a note file", domain.ErrInvalidInput, c.rootPath)
	}
	return nil
}

// Fetch reads all notes under the root path.
func (c *Connector) Fetch(ctx context.Context) ([]domain.Note, error) {
	info, err := os.Stat(c.rootPath)
	if err != nil {
		return nil, fmt.Errorf("reading notes path %q: %w", c.rootPath, err)
	}

	if !info.IsDir() {
		note, err := c.readNote(c.rootPath)
		if err != nil {
			return nil, err
		}
		return []domain.Note{note}, nil
	}

	var notes []domain.Note
	err = filepath.WalkDir(c.rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() {
			// Skip hidden directories like .git.
			if d.Name() != "." && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !c.isNoteFile(path) {
			return nil
		}

		note, err := c.readNote(path)
		if err != nil {
			logger.Warn("Skipping unreadable note %s: %v", path, err)
			return nil
		}
		notes = append(notes, note)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking notes directory: %w", err)
	}

	logger.Info("Fetched %d notes from %s", len(notes), c.rootPath)
	return notes, nil
}

// Watch emits each changed note until ctx is cancelled. Create and
// write events are debounced per file before the note is re-read.
func (c *Connector) Watch(ctx context.Context) (<-chan domain.Note, <-chan error) {
	notesCh := make(chan domain.Note)
	errCh := make(chan error, 1)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		errCh <- fmt.Errorf("creating watcher: %w", err)
		close(notesCh)
		close(errCh)
		return notesCh, errCh
	}

	watchPath := c.rootPath
	if info, statErr := os.Stat(c.rootPath); statErr == nil && !info.IsDir() {
		watchPath = filepath.Dir(c.rootPath)
	}
	if err := watcher.Add(watchPath); err != nil {
		watcher.Close()
		errCh <- fmt.Errorf("watching %q: %w", watchPath, err)
		close(notesCh)
		close(errCh)
		return notesCh, errCh
	}

	go func() {
		defer close(notesCh)
		defer close(errCh)
		defer watcher.Close()

		// Pending paths awaiting their debounce window.
		pending := make(map[string]time.Time)
		ticker := time.NewTicker(debounceWindow / 2)
		defer ticker.Stop()

		logger.Info("Watching %s for note changes", watchPath)
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
					continue
				}
				if !c.isNoteFile(event.Name) {
					continue
				}
				pending[event.Name] = time.Now()

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				select {
				case errCh <- err:
				default:
				}

			case now := <-ticker.C:
				for path, last := range pending {
					if now.Sub(last) < debounceWindow {
						continue
					}
					delete(pending, path)

					note, err := c.readNote(path)
					if err != nil {
						logger.Warn("Skipping changed note %s: %v", path, err)
						continue
					}
					select {
					case notesCh <- note:
					case <-ctx.Done():
						return
					}
				}
			}
		}
	}()

	return notesCh, errCh
}

// Close releases resources. The watcher is owned by its goroutine, so
// there is nothing to do here.
func (c *Connector) Close() error {
	return nil
}

// isNoteFile reports whether path has a configured note extension.
func (c *Connector) isNoteFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, allowed := range c.extensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// readNote loads one note file. The title is the file name without
// its extension.
func (c *Connector) readNote(path string) (domain.Note, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.Note{}, fmt.Errorf("reading note %q: %w", path, err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return domain.Note{}, fmt.Errorf("reading note %q: %w", path, err)
	}

	base := filepath.Base(path)
	title := strings.TrimSuffix(base, filepath.Ext(base))
	return domain.Note{
		Path:    path,
		Title:   title,
		Content: string(content),
		ModTime: info.ModTime(),
	}, nil
}
