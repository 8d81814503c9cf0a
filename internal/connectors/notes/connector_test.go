package notes

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studium-labs/studium-cli/internal/core/domain"
)

func writeNote(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestNew(t *testing.T) {
	t.Run("defaults extensions", func(t *testing.T) {
		c := New("/tmp/notes", nil)
		assert.Equal(t, []string{".txt", ".md"}, c.extensions)
	})

	t.Run("normalises extensions", func(t *testing.T) {
		c := New("/tmp/notes", []string{"TXT", ".Org"})
		assert.Equal(t, []string{".txt", ".org"}, c.extensions)
	})

	t.Run("type identifier", func(t *testing.T) {
		assert.Equal(t, "notes", New("/tmp/notes", nil).Type())
	})
}

func TestValidate(t *testing.T) {
	ctx := context.Background()

	t.Run("empty path", func(t *testing.T) {
		err := New("", nil).Validate(ctx)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("missing path", func(t *testing.T) {
		err := New(filepath.Join(t.TempDir(), "missing"), nil).Validate(ctx)
		assert.Error(t, err)
	})

	t.Run("directory is valid", func(t *testing.T) {
		assert.NoError(t, New(t.TempDir(), nil).Validate(ctx))
	})

	t.Run("single note file is valid", func(t *testing.T) {
		path := writeNote(t, t.TempDir(), "biology.txt", "notes")
		assert.NoError(t, New(path, nil).Validate(ctx))
	})

	t.Run("non-note file is rejected", func(t *testing.T) {
		path := writeNote(t, t.TempDir(), "image.png", "binary")
		assert.ErrorIs(t, New(path, nil).Validate(ctx), domain.ErrInvalidInput)
	})
}

func TestFetch(t *testing.T) {
	ctx := context.Background()

	t.Run("reads notes from a directory", func(t *testing.T) {
		dir := t.TempDir()
		writeNote(t, dir, "biology.txt", "The nucleus is the control center of the cell.")
		writeNote(t, dir, "physics.md", "# Forces\n\nGravity attracts objects with mass.")
		writeNote(t, dir, "image.png", "not a note")

		notes, err := New(dir, nil).Fetch(ctx)
		require.NoError(t, err)
		require.Len(t, notes, 2)

		titles := []string{notes[0].Title, notes[1].Title}
		assert.ElementsMatch(t, []string{"biology", "physics"}, titles)
		for _, note := range notes {
			assert.NotEmpty(t, note.Content)
			assert.False(t, note.ModTime.IsZero())
		}
	})

	t.Run("reads nested directories", func(t *testing.T) {
		dir := t.TempDir()
		sub := filepath.Join(dir, "semester1")
		require.NoError(t, os.Mkdir(sub, 0700))
		writeNote(t, sub, "chemistry.txt", "Atoms bond to form molecules.")

		notes, err := New(dir, nil).Fetch(ctx)
		require.NoError(t, err)
		require.Len(t, notes, 1)
		assert.Equal(t, "chemistry", notes[0].Title)
	})

	t.Run("skips hidden directories", func(t *testing.T) {
		dir := t.TempDir()
		hidden := filepath.Join(dir, ".git")
		require.NoError(t, os.Mkdir(hidden, 0700))
		writeNote(t, hidden, "config.txt", "not a study note")

		notes, err := New(dir, nil).Fetch(ctx)
		require.NoError(t, err)
		assert.Empty(t, notes)
	})

	t.Run("reads a single file root", func(t *testing.T) {
		path := writeNote(t, t.TempDir(), "biology.txt", "The nucleus is the control center.")

		notes, err := New(path, nil).Fetch(ctx)
		require.NoError(t, err)
		require.Len(t, notes, 1)
		assert.Equal(t, "biology", notes[0].Title)
	})

	t.Run("missing root errors", func(t *testing.T) {
		_, err := New(filepath.Join(t.TempDir(), "missing"), nil).Fetch(ctx)
		assert.Error(t, err)
	})
}

func TestWatch(t *testing.T) {
	t.Run("emits changed notes", func(t *testing.T) {
		dir := t.TempDir()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		notesCh, errCh := New(dir, nil).Watch(ctx)

		// Give the watcher a moment to register.
		time.Sleep(100 * time.Millisecond)
		writeNote(t, dir, "biology.txt", "The nucleus is the control center.")

		select {
		case note := <-notesCh:
			assert.Equal(t, "biology", note.Title)
		case err := <-errCh:
			t.Fatalf("unexpected watch error: %v", err)
		case <-ctx.Done():
			t.Fatal("timed out waiting for note event")
		}
	})

	t.Run("ignores non-note files", func(t *testing.T) {
		dir := t.TempDir()
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		notesCh, _ := New(dir, nil).Watch(ctx)

		time.Sleep(100 * time.Millisecond)
		writeNote(t, dir, "image.png", "binary")

		select {
		case note, ok := <-notesCh:
			if ok {
				t.Fatalf("unexpected note event: %v", note.Path)
			}
		case <-ctx.Done():
		}
	})

	t.Run("closes channels on cancel", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		notesCh, errCh := New(t.TempDir(), nil).Watch(ctx)
		cancel()

		select {
		case _, ok := <-notesCh:
			assert.False(t, ok)
		case <-time.After(2 * time.Second):
			t.Fatal("notes channel not closed")
		}
		select {
		case _, ok := <-errCh:
			assert.False(t, ok)
		case <-time.After(2 * time.Second):
			t.Fatal("error channel not closed")
		}
	})

	t.Run("missing root reports error", func(t *testing.T) {
		ctx := context.Background()
		_, errCh := New(filepath.Join(t.TempDir(), "missing"), nil).Watch(ctx)
		err := <-errCh
		assert.Error(t, err)
	})
}
