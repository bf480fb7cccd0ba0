package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"nikand.dev/go/cli"
)

const runMainEnv = "HACKASM_RUN_MAIN"

func TestMain(m *testing.M) {
	if os.Getenv(runMainEnv) == "1" {
		main()
		return
	}

	os.Exit(m.Run())
}

func runMain(t *testing.T, args ...string) int {
	t.Helper()

	cmd := exec.Command(os.Args[0], args...)
	cmd.Env = append(os.Environ(), runMainEnv+"=1")

	out, err := cmd.CombinedOutput()
	t.Logf("hackasm %q output:\n%s", args, out)

	if eerr, ok := err.(*exec.ExitError); ok {
		return eerr.ExitCode()
	}

	require.NoError(t, err)

	return 0
}

func TestExitStatus(t *testing.T) {
	dir := t.TempDir()

	src := filepath.Join(dir, "Prog.asm")
	require.NoError(t, os.WriteFile(src, []byte("@x\r\n(LOOP)\r\nM=1\r\n@LOOP\r\n0;JMP\r\n"), 0o644))

	assert.Equal(t, 0, runMain(t, src))

	data, err := os.ReadFile(filepath.Join(dir, "Prog.hack"))
	require.NoError(t, err)
	assert.Equal(t, "0000000000010000\n1110111111001000\n0000000000000001\n1110101010000111", string(data))

	assert.Equal(t, 1, runMain(t))
	assert.Equal(t, 1, runMain(t, src, src))

	missing := filepath.Join(dir, "missing.asm")
	assert.Equal(t, 1, runMain(t, missing))

	_, err = os.Stat(filepath.Join(dir, "missing.hack"))
	assert.True(t, os.IsNotExist(err))

	bad := filepath.Join(dir, "Bad.asm")
	require.NoError(t, os.WriteFile(bad, []byte("D=Q\n"), 0o644))
	assert.Equal(t, 1, runMain(t, bad))

	_, err = os.Stat(filepath.Join(dir, "Bad.hack"))
	assert.True(t, os.IsNotExist(err))
}

func TestAssembleAct(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "Add.asm")

	require.NoError(t, os.WriteFile(src, []byte("@2\nD=A\n@3\nD=D+A\n@0\nM=D\n"), 0o644))

	err := assembleAct(&cli.Command{Args: cli.Args{src}})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "Add.hack"))
	require.NoError(t, err)
	assert.Len(t, data, 6*16+5)
}

func TestAssembleActArgs(t *testing.T) {
	err := assembleAct(&cli.Command{})
	assert.Error(t, err)

	err = assembleAct(&cli.Command{Args: cli.Args{"a.asm", "b.asm"}})
	assert.Error(t, err)

	dir := t.TempDir()

	err = assembleAct(&cli.Command{Args: cli.Args{filepath.Join(dir, "none.asm")}})
	assert.Error(t, err)

	_, err = os.Stat(filepath.Join(dir, "none.hack"))
	assert.True(t, os.IsNotExist(err))
}
