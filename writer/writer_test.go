package writer_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"streamwc/writer"
)

func TestNewWriterCounts(t *testing.T) {
	var buf bytes.Buffer
	wrt := writer.NewWriter(&buf)
	n, err := wrt.Write([]byte("the\t2\n"))
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	assert.Equal(t, int64(6), wrt.Nbytes())
	assert.Nil(t, wrt.Close())
	assert.Equal(t, "the\t2\n", buf.String())
}

func TestCreateRename(t *testing.T) {
	dir := t.TempDir()
	pn := filepath.Join(dir, "out.txt")
	wrt, err := writer.Create(pn)
	require.NoError(t, err)
	_, err = wrt.Write([]byte("cat\t1\n"))
	require.NoError(t, err)

	_, err = os.Stat(pn)
	assert.True(t, os.IsNotExist(err), "not visible before Close")

	require.NoError(t, wrt.Close())
	b, err := os.ReadFile(pn)
	require.NoError(t, err)
	assert.Equal(t, "cat\t1\n", string(b))

	ents, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, 1, len(ents), "no temporary left behind")
}

func TestAbort(t *testing.T) {
	dir := t.TempDir()
	pn := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(pn, []byte("old\n"), 0644))

	wrt, err := writer.Create(pn)
	require.NoError(t, err)
	_, err = wrt.Write([]byte("new\n"))
	require.NoError(t, err)
	require.NoError(t, wrt.Abort())

	b, err := os.ReadFile(pn)
	require.NoError(t, err)
	assert.Equal(t, "old\n", string(b))
	ents, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, 1, len(ents))
}

func TestCreateStdout(t *testing.T) {
	wrt, err := writer.Create(writer.STDOUT)
	require.NoError(t, err)
	assert.Equal(t, writer.STDOUT, wrt.Name())
	assert.Nil(t, wrt.Close())
	assert.Nil(t, wrt.Abort())
}
