package eventlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	smerrors "github.com/Station-Manager/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildErrorChain_WithDetailedAndStd(t *testing.T) {
	inner := smerrors.New("eventlog.appendLine").Msg("open /var/log/app/server.log: permission denied")
	middle := smerrors.New("eventlog.Append").Err(inner).Msg(errMsgOpenFile)
	outer := smerrors.New("eventlog.Service.LogLine").Err(middle).Msg("append failed")

	chain, ops, root := buildErrorChain(outer)
	assert.Equal(t, []string{
		"append failed",
		errMsgOpenFile,
		"open /var/log/app/server.log: permission denied",
	}, chain)
	assert.Equal(t, []string{"eventlog.Service.LogLine", "eventlog.Append", "eventlog.appendLine"}, ops)
	assert.Equal(t, "open /var/log/app/server.log: permission denied", root)

	wrapped := smerrors.New("eventlog.Write").Errorf("wrap: %w", outer)
	chain2, ops2, root2 := buildErrorChain(wrapped)
	assert.True(t, strings.HasPrefix(chain2[0], "wrap:"))
	assert.Equal(t, "eventlog.Write", ops2[0])
	assert.Equal(t, root, root2)
}

func TestBuildErrorChain_OSError(t *testing.T) {
	_, err := os.Open(filepath.Join(t.TempDir(), "missing.log"))
	require.Error(t, err)

	chain, ops, root := buildErrorChain(err)
	require.Len(t, chain, 2, "PathError then its errno")
	assert.Equal(t, []string{"", ""}, ops)
	assert.Equal(t, "no such file or directory", root)
}

func TestBuildErrorChain_Nil(t *testing.T) {
	chain, ops, root := buildErrorChain(nil)
	assert.Empty(t, chain)
	assert.Empty(t, ops)
	assert.Equal(t, "", root)
	assert.Equal(t, "", joinChain(chain))
}

func TestJoinChain(t *testing.T) {
	assert.Equal(t, "a -> b -> c", joinChain([]string{"a", "b", "c"}))
}
