package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studium-labs/studium-cli/internal/adapters/driven/storage/memory"
	"github.com/studium-labs/studium-cli/internal/core/services"
)

// setupTestServices wires the commands to an in-memory store and
// returns a cleanup function restoring the previous wiring.
func setupTestServices() func() {
	prevStudy := studyService
	prevAsk := askService
	prevStore := topicStore

	store := memory.NewTopicStore()
	topicStore = store
	studyService = services.NewStudyService(store, nil)
	askService = services.NewAskService(store, nil)

	return func() {
		studyService = prevStudy
		askService = prevAsk
		topicStore = prevStore
	}
}

// execute runs the root command with args and captures its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestVersionCmd_Executes(t *testing.T) {
	originalVersion := version
	version = "test-version-1.0.0"
	defer func() { version = originalVersion }()

	out, err := execute(t, "version")
	assert.NoError(t, err)
	assert.Contains(t, out, "studium version test-version-1.0.0")
}

func TestAskCmd_RequiresExactlyOneArg(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "ask")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestAskCmd_NoTopics(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "ask", "what is the nucleus")
	assert.NoError(t, err)
	assert.Contains(t, out, "No matching topic")
}

func TestAskCmd_AnswersFromImportedNotes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := studyService.Import(context.Background(), "Cell Biology",
		"The nucleus is the control center of the cell and contains the genetic material.")
	require.NoError(t, err)

	out, err := execute(t, "ask", "what is the nucleus")
	assert.NoError(t, err)
	assert.Contains(t, out, "Cell Biology")
	assert.Contains(t, out, "Nucleus")
}

func TestAskCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := studyService.Import(context.Background(), "Cell Biology",
		"The nucleus is the control center of the cell and contains the genetic material.")
	require.NoError(t, err)

	out, err := execute(t, "ask", "--json", "what is the nucleus")
	defer func() { askJSON = false }()
	assert.NoError(t, err)
	assert.Contains(t, out, `"query"`)
	assert.Contains(t, out, `"topic_score"`)
}

func TestAskCmd_Limit(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := studyService.Import(context.Background(), "Cell Biology",
		"The nucleus is the control center of the cell and contains the genetic material.")
	require.NoError(t, err)
	_, err = studyService.Import(context.Background(), "Physics",
		"Gravity is the force that attracts objects toward each other.")
	require.NoError(t, err)

	out, err := execute(t, "ask", "--limit", "5", "what is the nucleus")
	defer func() { askLimit = 0 }()
	assert.NoError(t, err)
	assert.Contains(t, out, "Candidate topics:")
	assert.Contains(t, out, "Cell Biology")
}

func TestImportCmd_ImportsDirectory(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	dir := t.TempDir()
	notePath := filepath.Join(dir, "biology.txt")
	require.NoError(t, os.WriteFile(notePath,
		[]byte("The nucleus is the control center of the cell."), 0600))

	out, err := execute(t, "import", dir)
	assert.NoError(t, err)
	assert.Contains(t, out, `Imported "biology"`)

	topics, err := studyService.ListTopics(context.Background())
	require.NoError(t, err)
	require.Len(t, topics, 1)
	assert.Equal(t, "biology", topics[0].Name)
}

func TestImportCmd_NameFlag(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"),
		[]byte("The nucleus is the control center of the cell."), 0600))

	out, err := execute(t, "import", "--name", "Cell Biology", filepath.Join(dir, "notes.txt"))
	defer func() { importName = "" }()
	assert.NoError(t, err)
	assert.Contains(t, out, `Imported "Cell Biology"`)
}

func TestImportCmd_MissingPath(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "import", filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestTopicsCmd_ListsAndDeletes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := studyService.Import(context.Background(), "Cell Biology",
		"The nucleus is the control center of the cell.")
	require.NoError(t, err)

	out, err := execute(t, "topics")
	assert.NoError(t, err)
	assert.Contains(t, out, "Cell Biology")

	out, err = execute(t, "topics", "show", "Cell Biology")
	assert.NoError(t, err)
	assert.Contains(t, out, "Nucleus")

	out, err = execute(t, "topics", "delete", "Cell Biology")
	assert.NoError(t, err)
	assert.Contains(t, out, "Deleted")

	out, err = execute(t, "topics")
	assert.NoError(t, err)
	assert.Contains(t, out, "No topics imported yet")
}

func TestTopicsCmd_ShowMissing(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "topics", "show", "Missing")
	assert.Error(t, err)
}
