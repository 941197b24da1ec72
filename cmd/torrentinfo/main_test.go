package main

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/anacrolix/torrent/bencode"
	"github.com/anacrolix/torrent/metainfo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMain lets the test binary stand in for the CLI: when re-executed with
// the dispatch variable set it runs main instead of the tests, so exit codes
// and stderr can be asserted from a real subprocess.
func TestMain(m *testing.M) {
	if os.Getenv("TORRENTINFO_DISPATCH") == "1" {
		main()
		return
	}
	os.Exit(m.Run())
}

func writeTorrent(t *testing.T, info metainfo.Info) string {
	t.Helper()
	raw, err := bencode.Marshal(info)
	require.NoError(t, err)

	mi := metainfo.MetaInfo{InfoBytes: raw}
	path := filepath.Join(t.TempDir(), "test.torrent")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, mi.Write(f))
	return path
}

func TestRunSingleFile(t *testing.T) {
	path := writeTorrent(t, metainfo.Info{
		Name:        "lecture.pdf",
		Length:      1048576,
		PieceLength: 262144,
		Pieces:      make([]byte, 80),
	})

	var out bytes.Buffer
	require.NoError(t, run(path, &out))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "lecture.pdf", lines[0])
	assert.Equal(t, "1. lecture.pdf (1048576 bytes)", lines[1])
}

func TestRunMultiFile(t *testing.T) {
	path := writeTorrent(t, metainfo.Info{
		Name:        "bundle",
		PieceLength: 262144,
		Pieces:      make([]byte, 40),
		Files: []metainfo.FileInfo{
			{Length: 100, Path: []string{"a", "one.txt"}},
			{Length: 200, Path: []string{"two.txt"}},
		},
	})

	var out bytes.Buffer
	require.NoError(t, run(path, &out))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "bundle", lines[0])
	assert.Equal(t, "1. a/one.txt (100 bytes)", lines[1])
	assert.Equal(t, "2. two.txt (200 bytes)", lines[2])
}

func TestNoArgumentPrintsUsage(t *testing.T) {
	cmd := exec.Command(os.Args[0])
	cmd.Env = append(os.Environ(), "TORRENTINFO_DISPATCH=1")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.Equal(t, "usage: torrentinfo <file.torrent>\n", stderr.String())
	assert.Empty(t, stdout.String())
}

func TestRunMissingFile(t *testing.T) {
	var out bytes.Buffer
	err := run(filepath.Join(t.TempDir(), "nope.torrent"), &out)
	assert.Error(t, err)
	assert.Empty(t, out.String())
}
