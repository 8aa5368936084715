package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// initTestRepo creates an isolated repository in a temp directory so tests
// never touch a real working copy.
func initTestRepo(t *testing.T) string {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}

	dir := t.TempDir()
	runGit(t, dir, "init")
	runGit(t, dir, "config", "user.email", "test@example.com")
	runGit(t, dir, "config", "user.name", "Test User")
	return dir
}

func runGit(t *testing.T, dir string, args ...string) string {
	t.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %s: %s", strings.Join(args, " "), out)
	return string(out)
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestHasChanges_NotARepository(t *testing.T) {
	client := NewClient(Options{Dir: t.TempDir()})

	_, err := client.HasChanges()

	require.ErrorIs(t, err, ErrNotARepository)
}

func TestHasChanges_CleanRepository(t *testing.T) {
	dir := initTestRepo(t)
	writeFile(t, dir, "a.txt", "hello\n")
	runGit(t, dir, "add", "a.txt")
	runGit(t, dir, "commit", "-m", "initial")

	client := NewClient(Options{Dir: dir})
	hasChanges, err := client.HasChanges()

	require.NoError(t, err)
	assert.False(t, hasChanges)
}

func TestHasChanges_UntrackedFile(t *testing.T) {
	dir := initTestRepo(t)
	writeFile(t, dir, "untracked.txt", "new file\n")

	client := NewClient(Options{Dir: dir})
	hasChanges, err := client.HasChanges()

	require.NoError(t, err)
	assert.True(t, hasChanges, "untracked files count as changes")
}

func TestDiff_StagedAndUnstaged(t *testing.T) {
	dir := initTestRepo(t)
	writeFile(t, dir, "a.txt", "hello\n")
	runGit(t, dir, "add", "a.txt")
	runGit(t, dir, "commit", "-m", "initial")

	client := NewClient(Options{Dir: dir})

	// Unstaged modification only.
	writeFile(t, dir, "a.txt", "hello world\n")

	staged, err := client.StagedDiff()
	require.NoError(t, err)
	assert.Empty(t, staged)

	unstaged, err := client.UnstagedDiff()
	require.NoError(t, err)
	assert.Contains(t, unstaged, "+hello world")

	// After staging, the same change moves to the staged diff.
	runGit(t, dir, "add", "a.txt")

	staged, err = client.StagedDiff()
	require.NoError(t, err)
	assert.Contains(t, staged, "+hello world")

	unstaged, err = client.UnstagedDiff()
	require.NoError(t, err)
	assert.Empty(t, unstaged)
}

func TestDiff_InvalidUTF8Output(t *testing.T) {
	dir := initTestRepo(t)

	// The diff attribute forces text diffs even for content git would
	// normally treat as binary, so the raw invalid bytes reach stdout.
	writeFile(t, dir, ".gitattributes", "*.bin diff\n")
	writeFile(t, dir, "data.bin", "\xff\xfe\xfd\n")
	runGit(t, dir, "add", "data.bin")

	client := NewClient(Options{Dir: dir})
	staged, err := client.StagedDiff()

	require.Error(t, err)
	assert.Empty(t, staged)
	assert.Contains(t, err.Error(), "not valid UTF-8")
}

func TestCommit_PreservesMessageExactly(t *testing.T) {
	dir := initTestRepo(t)
	writeFile(t, dir, "a.txt", "hello\n")
	runGit(t, dir, "add", "a.txt")

	// Single quotes, double quotes, and newlines must survive the argv
	// boundary without any shell-escaping.
	message := "Add a.txt with 'quotes'\n\n- don't mangle \"this\"\n- keep newlines"

	client := NewClient(Options{Dir: dir})
	require.NoError(t, client.Commit(message))

	logged := runGit(t, dir, "log", "-1", "--pretty=%B")
	assert.Equal(t, message, strings.TrimSpace(logged))
}

func TestCommit_FailureIncludesStderr(t *testing.T) {
	dir := initTestRepo(t)

	// Nothing staged, so the commit must fail.
	client := NewClient(Options{Dir: dir})
	err := client.Commit("Add nothing")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "git commit failed")
}

func TestRunner_VerboseLogsCommand(t *testing.T) {
	dir := initTestRepo(t)

	var log strings.Builder
	client := NewClient(Options{Dir: dir, Verbose: true, Logger: &log})

	_, err := client.StagedDiff()
	require.NoError(t, err)
	assert.Contains(t, log.String(), "Running: git diff --staged")
}
