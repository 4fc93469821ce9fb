// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"bytes"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-air/aiger/aiger"
	"github.com/go-air/aiger/aigfile"
	"github.com/go-air/aiger/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvLogLevel, "error")
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestFuzzCheckInfo(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "r.aig.gz")
	_, err := run(t, "fuzz", path, "--seed", "3", "--ands", "50", "--check")
	require.NoError(t, err)

	out, err := run(t, "check", path)
	require.NoError(t, err)
	assert.Equal(t, "ok\n", out)

	out, err = run(t, "info", path)
	require.NoError(t, err)
	assert.Contains(t, out, "inputs       4\n")
	assert.Contains(t, out, "reencoded    true\n")
}

func TestFuzzDeterministic(t *testing.T) {
	dir := t.TempDir()
	var texts []string
	for _, name := range []string{"a.aag", "b.aag"} {
		path := filepath.Join(dir, name)
		_, err := run(t, "fuzz", path, "--seed", "11")
		require.NoError(t, err)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		texts = append(texts, string(data))
	}
	assert.Equal(t, texts[0], texts[1])
}

func TestConvert(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.aag")
	require.NoError(t, os.WriteFile(in, []byte("aag 3 2 0 1 1\n2\n4\n6\n6 2 4\ni0 a\n"), 0644))

	out := filepath.Join(dir, "out.aig")
	_, err := run(t, "convert", in, out)
	require.NoError(t, err)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "aig 3 2 0 1 1\n6\n\x02\x02i0 a\n", string(data))

	stripped := filepath.Join(dir, "stripped.txt")
	_, err = run(t, "convert", "--ascii", "--strip", out, stripped)
	require.NoError(t, err)
	data, err = os.ReadFile(stripped)
	require.NoError(t, err)
	assert.Equal(t, "aag 3 2 0 1 1\n2\n4\n6\n6 4 2\n", string(data))

	_, err = run(t, "convert", "--ascii", "--binary", in, out)
	assert.Error(t, err)
}

func TestReencodeAndStrip(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.aag")
	src := "aag 5 2 0 1 2\n4\n2\n10\n10 4 3\n8 2 4\ni0 x\nc\nnote\n"
	require.NoError(t, os.WriteFile(in, []byte(src), 0644))

	out := filepath.Join(dir, "re.aag")
	_, err := run(t, "reencode", in, out)
	require.NoError(t, err)
	a, err := aigfile.Read(out, nil)
	require.NoError(t, err)
	assert.True(t, a.IsReencoded())
	assert.Len(t, a.Ands, 1)
	assert.Equal(t, "x", a.Inputs[0].Name)

	st := filepath.Join(dir, "st.aag")
	_, err = run(t, "strip", out, st)
	require.NoError(t, err)
	data, err := os.ReadFile(st)
	require.NoError(t, err)
	assert.Equal(t, "aag 3 2 0 1 1\n2\n4\n6\n6 5 2\n", string(data))
}

func TestCheckFailure(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "loop.aag")
	require.NoError(t, os.WriteFile(in, []byte("aag 2 0 0 1 2\n2\n2 4 1\n4 2 1\n"), 0644))
	out, err := run(t, "check", in)
	require.Error(t, err)
	assert.True(t, strings.Contains(out, "cyclic definition"), out)

	_, err = run(t, "check", filepath.Join(dir, "missing.aag"))
	assert.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "aigtool.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("output:\n  mode: ascii\nfuzz:\n  ands: 7\n  latches: 0\n"), 0644))
	path := filepath.Join(dir, "f.aig")
	_, err := run(t, "--config", cfg, "fuzz", path)
	require.NoError(t, err)
	a, err := aigfile.Read(path, nil)
	require.NoError(t, err)
	assert.Len(t, a.Ands, 7)
	assert.Empty(t, a.Latches)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "aag "))

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("log:\n  level: loud\n"), 0644))
	_, err = run(t, "--config", bad, "check", path)
	assert.Error(t, err)
}

func TestSimulationDetectsChange(t *testing.T) {
	a := aiger.New()
	a.AddInput(2, "")
	a.AddInput(4, "")
	a.AddAnd(6, 4, 2)
	a.AddOutput(6, "")
	s := newSimulation(a, rand.New(rand.NewSource(1)))
	b := aiger.New()
	b.AddInput(2, "")
	b.AddInput(4, "")
	b.AddAnd(6, 5, 2)
	b.AddOutput(6, "")
	assert.Error(t, s.compare(b))
	assert.NoError(t, s.compare(a))
}
