// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aigfile

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-air/aiger/aiger"
	"github.com/go-air/aiger/gen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestModeOf(t *testing.T) {
	tests := map[string]aiger.Mode{
		"a.aag":     aiger.Ascii,
		"a.aag.gz":  aiger.Ascii,
		"a.aag.bz2": aiger.Ascii,
		"a.aag.xz":  aiger.Ascii,
		"a.aig":     aiger.Binary,
		"a.aig.gz":  aiger.Binary,
		"a":         aiger.Binary,
		"-":         aiger.Binary,
	}
	for path, mode := range tests {
		assert.Equal(t, mode, ModeOf(path), path)
	}
}

func TestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	log := zaptest.NewLogger(t)
	for _, name := range []string{"m.aag", "m.aig", "m.aag.gz", "m.aig.gz", "m.aag.xz", "m.aig.xz"} {
		t.Run(name, func(t *testing.T) {
			a := gen.Rand(gen.DefaultOpts())
			path := filepath.Join(dir, name)
			mode := ModeOf(path)
			require.NoError(t, Write(a, path, mode, log))

			var want bytes.Buffer
			require.NoError(t, a.Write(&want, mode))

			b, err := Read(path, log)
			require.NoError(t, err)
			var got bytes.Buffer
			require.NoError(t, b.Write(&got, mode))
			assert.Equal(t, want.String(), got.String())
		})
	}
}

func TestCompressedOnDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "m.aag.gz")
	require.NoError(t, Write(gen.AndChain(3), path, aiger.Ascii, nil))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, len(raw) > 2)
	assert.Equal(t, []byte{0x1f, 0x8b}, raw[:2], "gzip magic")

	path = filepath.Join(dir, "m.aag.xz")
	require.NoError(t, Write(gen.AndChain(3), path, aiger.Ascii, nil))
	raw, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte{0xfd, '7', 'z', 'X', 'Z', 0}), "xz magic")
}

func TestReadBzip2(t *testing.T) {
	a, err := Read(filepath.Join("testdata", "toggle.aag.bz2"), nil)
	require.NoError(t, err)
	assert.Len(t, a.Latches, 1)
	assert.Len(t, a.Outputs, 2)
	assert.Equal(t, "t", a.Latches[0].Name)
}

func TestWriteBzip2(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.aig.bz2")
	err := Write(gen.AndChain(1), path, aiger.Binary, nil)
	assert.True(t, errors.Is(err, ErrNoBzip2Writer))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestWriteInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loop.aag")
	err := Write(gen.AndCycle(2), path, aiger.Ascii, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, aiger.ErrCombLoop))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "file left behind")
}

func TestReadErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := Read(filepath.Join(dir, "missing.aag"), nil)
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.aag")
	require.NoError(t, os.WriteFile(bad, []byte("aag 1 0 0 1 0\n3\n"), 0644))
	_, err = Read(bad, nil)
	assert.True(t, errors.Is(err, aiger.ErrUndefinedLit))
	assert.Contains(t, err.Error(), bad)

	notgz := filepath.Join(dir, "plain.aag.gz")
	require.NoError(t, os.WriteFile(notgz, []byte("aag 0 0 0 0 0\n"), 0644))
	_, err = Read(notgz, nil)
	assert.Error(t, err)
}

func TestOpenPlain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.aag")
	require.NoError(t, os.WriteFile(path, []byte("aag 0 0 0 0 0\n"), 0644))
	r, err := Open(path)
	require.NoError(t, err)
	defer r.Close()
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "aag 0 0 0 0 0\n", string(data))
}
