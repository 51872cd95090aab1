package hashencode_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wandb/wandb/filesync/internal/hashencode"
)

func TestHexB64RoundTrip(t *testing.T) {
	b64hash := hashencode.ComputeB64MD5([]byte(`some data`))

	hexHash, err := hashencode.B64ToHex(b64hash)
	assert.NoError(t, err)
	alsoB64, err := hashencode.HexToB64(hexHash)
	assert.NoError(t, err)
	assert.Equal(t, b64hash, alsoB64)
	assert.NotEqual(t, b64hash, hexHash)
}

func TestHashValidity(t *testing.T) {
	b64hash := hashencode.ComputeB64MD5([]byte(`test`))

	hexHash, err := hashencode.B64ToHex(b64hash)
	assert.NoError(t, err)

	// Hash according to Python's hashlib.md5(b"test").hexdigest()
	assert.Equal(t, "098f6bcd4621d373cade4e832627b4f6", hexHash)
}

func TestComputeHexMD5(t *testing.T) {
	hexMD5 := hashencode.ComputeHexMD5([]byte(`example data`))

	assert.Equal(t, "5c71dbb287630d65ca93764c34d9aa0d", hexMD5)
}

func TestComputeFileB64MD5(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(path, []byte(`foobar`), 0o600))

	b64md5, err := hashencode.ComputeFileB64MD5(path)

	require.NoError(t, err)
	assert.Equal(t, hashencode.ComputeB64MD5([]byte(`foobar`)), b64md5)
}

func TestComputeFileB64MD5_Missing(t *testing.T) {
	_, err := hashencode.ComputeFileB64MD5(filepath.Join(t.TempDir(), "no-such-file"))

	assert.Error(t, err)
}

func TestVerifyFileB64MD5(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(path, []byte(`foobar`), 0o600))

	assert.True(t, hashencode.VerifyFileB64MD5(path, hashencode.ComputeB64MD5([]byte(`foobar`))))
	assert.False(t, hashencode.VerifyFileB64MD5(path, hashencode.ComputeB64MD5([]byte(`changed`))))
}
