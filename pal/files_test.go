package pal

import (
	"bytes"
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileWriteReadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roundtrip.bin")

	data := make([]byte, 64*1024)
	rand.New(rand.NewSource(1)).Read(data)

	f, err := Open(path, FileWrite)
	require.NoError(t, err)
	require.NoError(t, f.Write(data))
	require.NoError(t, f.Close())

	f, err = Open(path, FileRead|FileOnlyExisting)
	require.NoError(t, err)
	defer f.Close()

	got := make([]byte, len(data))
	require.NoError(t, f.Read(got))
	assert.True(t, bytes.Equal(data, got))

	size, err := f.QuerySize()
	require.NoError(t, err)
	assert.EqualValues(t, len(data), size)
}

func TestFileReadAtPreservesOffset(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "readat.bin")

	f, err := Open(path, FileWrite)
	require.NoError(t, err)
	require.NoError(t, f.Write([]byte("0123456789")))
	require.NoError(t, f.Close())

	f, err = Open(path, FileRead|FileOnlyExisting)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, f.SetOffset(3))

	buf := make([]byte, 4)
	require.NoError(t, f.ReadAt(0, buf))
	assert.Equal(t, []byte("0123"), buf)

	offset, err := f.QueryOffset()
	require.NoError(t, err)
	assert.EqualValues(t, 3, offset)
}

func TestFileOnlyExistingFailsWhenAbsent(t *testing.T) {
	dir := t.TempDir()
	_, err := Open(filepath.Join(dir, "missing.bin"), FileWrite|FileOnlyExisting)
	assert.Error(t, err)
}

func TestCopyProducesIdenticalContents(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.bin")
	dst := filepath.Join(dir, "dst.bin")

	data := make([]byte, 256*1024)
	rand.New(rand.NewSource(2)).Read(data)

	f, err := Open(src, FileWrite)
	require.NoError(t, err)
	require.NoError(t, f.Write(data))
	require.NoError(t, f.Close())

	require.NoError(t, Copy(dst, src, false))

	got, err := Open(dst, FileRead|FileOnlyExisting)
	require.NoError(t, err)
	defer got.Close()

	buf := make([]byte, len(data))
	require.NoError(t, got.Read(buf))
	assert.True(t, bytes.Equal(data, buf))
}

func TestMoveFailsWhenSourceMissing(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "missing-src.bin")
	dst := filepath.Join(dir, "dst.bin")

	err := Move(dst, src, false)
	assert.Error(t, err)
	assert.False(t, Exists(dst))
}
