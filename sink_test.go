package eventlog

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	smerrors "github.com/Station-Manager/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t testing.TB) Config {
	t.Helper()
	return Config{
		LogPath:         filepath.Join(t.TempDir(), "nested", "logs"),
		FormatExtension: "log",
	}
}

func readLines(t testing.TB, path string) []string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	require.NoError(t, sc.Err())
	return lines
}

// errorHistory flattens an error chain down to the OS error.
func errorHistory(err error) string {
	chain, _, _ := buildErrorChain(err)
	return joinChain(chain)
}

func TestFilePath(t *testing.T) {
	cfg := Config{LogPath: "/var/log/app", FormatExtension: "log"}
	assert.Equal(t, filepath.Join("/var/log/app", "server.log"), FilePath(DistinctionServer, cfg))
	assert.Equal(t, filepath.Join("/var/log/app", "db.log"), FilePath(DistinctionDb, cfg))

	cfg.FormatExtension = "txt"
	assert.Equal(t, filepath.Join("/var/log/app", "db.txt"), FilePath(DistinctionDb, cfg))
}

func TestAppend(t *testing.T) {
	t.Run("creates directory and file", func(t *testing.T) {
		cfg := testConfig(t)

		require.NoError(t, Append("first", DistinctionServer, cfg))

		info, err := os.Stat(cfg.LogPath)
		require.NoError(t, err)
		assert.True(t, info.IsDir())

		data, err := os.ReadFile(FilePath(DistinctionServer, cfg))
		require.NoError(t, err)
		assert.Equal(t, "first\n", string(data))
	})

	t.Run("appends in call order", func(t *testing.T) {
		cfg := testConfig(t)
		const n = 25
		for i := 0; i < n; i++ {
			require.NoError(t, Append(fmt.Sprintf("line %d", i), DistinctionDb, cfg))
		}

		data, err := os.ReadFile(FilePath(DistinctionDb, cfg))
		require.NoError(t, err)
		assert.Equal(t, n, strings.Count(string(data), "\n"))

		lines := readLines(t, FilePath(DistinctionDb, cfg))
		require.Len(t, lines, n)
		for i, l := range lines {
			assert.Equal(t, fmt.Sprintf("line %d", i), l)
		}
	})

	t.Run("existing directory and file are kept", func(t *testing.T) {
		cfg := testConfig(t)
		require.NoError(t, os.MkdirAll(cfg.LogPath, 0o755))
		require.NoError(t, os.WriteFile(FilePath(DistinctionServer, cfg), []byte("previous\n"), 0o644))

		require.NoError(t, Append("next", DistinctionServer, cfg))

		assert.Equal(t, []string{"previous", "next"}, readLines(t, FilePath(DistinctionServer, cfg)))
	})

	t.Run("distinctions go to separate files", func(t *testing.T) {
		cfg := testConfig(t)
		require.NoError(t, Append("to server", DistinctionServer, cfg))
		require.NoError(t, Append("to db", DistinctionDb, cfg))

		assert.Equal(t, []string{"to server"}, readLines(t, FilePath(DistinctionServer, cfg)))
		assert.Equal(t, []string{"to db"}, readLines(t, FilePath(DistinctionDb, cfg)))

		entries, err := os.ReadDir(cfg.LogPath)
		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})

	t.Run("unknown distinction", func(t *testing.T) {
		cfg := testConfig(t)
		err := Append("x", LogDistinction(9), cfg)
		require.Error(t, err)

		_, statErr := os.Stat(cfg.LogPath)
		assert.True(t, os.IsNotExist(statErr), "nothing is created for a rejected call")
	})

	t.Run("base path is a file", func(t *testing.T) {
		base := filepath.Join(t.TempDir(), "occupied")
		require.NoError(t, os.WriteFile(base, []byte("not a dir"), 0o644))
		cfg := Config{LogPath: base, FormatExtension: "log"}

		err := Append("x", DistinctionServer, cfg)
		require.Error(t, err)

		dErr, ok := smerrors.AsDetailedError(err)
		require.True(t, ok)
		assert.Equal(t, "eventlog.Append", string(dErr.Op()))
		assert.Contains(t, errorHistory(err), base)
	})

	t.Run("target path is a directory", func(t *testing.T) {
		cfg := testConfig(t)
		require.NoError(t, os.MkdirAll(FilePath(DistinctionDb, cfg), 0o755))

		err := Append("x", DistinctionDb, cfg)
		require.Error(t, err)
		assert.Contains(t, errorHistory(err), FilePath(DistinctionDb, cfg))
	})
}

func TestAppend_ConcurrentWritersKeepLinesWhole(t *testing.T) {
	cfg := testConfig(t)
	const (
		writers = 8
		perEach = 50
	)

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perEach; i++ {
				line := fmt.Sprintf("[writer-%d] [%03d] [%s]", w, i, strings.Repeat("x", 64))
				assert.NoError(t, Append(line, DistinctionServer, cfg))
			}
		}(w)
	}
	wg.Wait()

	lines := readLines(t, FilePath(DistinctionServer, cfg))
	require.Len(t, lines, writers*perEach)

	seen := make(map[string]bool, len(lines))
	for _, l := range lines {
		assert.True(t, strings.HasPrefix(l, "[writer-"), "torn line: %q", l)
		assert.True(t, strings.HasSuffix(l, strings.Repeat("x", 64)+"]"), "torn line: %q", l)
		seen[l] = true
	}
	assert.Len(t, seen, writers*perEach)
}

func TestAppendCategory(t *testing.T) {
	t.Run("raw category name", func(t *testing.T) {
		cfg := testConfig(t)
		require.NoError(t, AppendCategory("hello", "Server", cfg))
		assert.Equal(t, []string{"hello"}, readLines(t, FilePath(DistinctionServer, cfg)))
	})

	t.Run("rejects unusable names", func(t *testing.T) {
		cfg := testConfig(t)
		for _, c := range []string{"", "  ", ".", "..", "a/b", `a\b`} {
			assert.Error(t, AppendCategory("x", c, cfg), "category %q", c)
		}
	})
}

func TestWrite(t *testing.T) {
	cfg := testConfig(t)

	req := HTTPRequest{
		Timestamp:   fixedTime,
		Level:       LevelInfo,
		Origin:      "35.111.95.142",
		API:         "/api/v1/health_check",
		Method:      "GET",
		PayloadSize: Size(30),
		Body:        Text(jsonBody),
	}
	resp := DBResponse{Timestamp: fixedTime, Level: LevelError, ExitCode: Exit(1), Message: Text("Error creating db entry!")}

	require.NoError(t, Write(req, cfg))
	require.NoError(t, Write(resp, cfg))

	assert.Equal(t, []string{req.Line()}, readLines(t, FilePath(DistinctionServer, cfg)))
	assert.Equal(t, []string{"[2014-07-08T09:10:11+00:00] [ERROR] [RESPONSE] [1] [Error creating db entry!]"},
		readLines(t, FilePath(DistinctionDb, cfg)))

	assert.Error(t, Write(nil, cfg))

	var typedNil *HTTPRequest
	assert.NotPanics(t, func() {
		assert.Error(t, Write(typedNil, cfg))
	})
	assert.Equal(t, []string{req.Line()}, readLines(t, FilePath(DistinctionServer, cfg)))
}
