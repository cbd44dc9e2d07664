package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeFixture drops content into dir under name and returns the path.
func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const (
	empty3  = "0 0 0\n0 0 0\n0 0 0\n"
	cyclic3 = "1 2 3\n2 3 1\n3 1 2\n"
	seed3   = "2 0 0\n0 3 0\n0 0 1\n"
	diag3   = "1 1\n2 2\n3 3\n"
)

func TestRunScenario_AllOps(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "empty3.txt", empty3)
	writeFixture(t, dir, "cyclic3.txt", cyclic3)
	writeFixture(t, dir, "seed3.txt", seed3)
	writeFixture(t, dir, "diag3.txt", diag3)
	path := writeFixture(t, dir, "scenario.yaml", `
steps:
  - name: all order-3 squares
    op: complete
    grid: empty3.txt
    expect: { count: 12 }
  - name: trivial fill
    op: fill
    grid: cyclic3.txt
    transversal: diag3.txt
    expect: { count: 1 }
  - name: chain from the seed
    op: chain
    grid: seed3.txt
    expect: { count: 1 }
  - name: self product
    op: product
    left: cyclic3.txt
    right: cyclic3.txt
    table: cyclic3.txt
  - name: cyclic stability
    op: rho
    table: cyclic3.txt
    expect: { count: 3 }
  - name: automorphisms
    op: isom
    first: cyclic3.txt
    second: cyclic3.txt
    expect: { count: 2, min: 1 }
`)

	err := runScenario(path, &globalOptions{workers: 1})
	require.NoError(t, err)
}

func TestRunScenario_MissedExpectation(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "empty3.txt", empty3)
	path := writeFixture(t, dir, "scenario.yaml", `
steps:
  - op: complete
    grid: empty3.txt
    expect: { count: 13 }
`)

	err := runScenario(path, &globalOptions{workers: 1})
	require.ErrorContains(t, err, "want exactly 13")
}

func TestRunScenario_UnknownOp(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "scenario.yaml", "steps:\n  - op: frobnicate\n")

	err := runScenario(path, &globalOptions{})
	require.ErrorContains(t, err, "unknown op")
}

func TestRunScenario_MissingOperand(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "scenario.yaml", "steps:\n  - op: complete\n")

	err := runScenario(path, &globalOptions{})
	require.ErrorContains(t, err, "needs grid")
}

func TestRunScenario_BadYaml(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "scenario.yaml", "steps: [\n")

	err := runScenario(path, &globalOptions{})
	require.Error(t, err)
}

func TestRunScenario_NoSteps(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "scenario.yaml", "steps: []\n")

	err := runScenario(path, &globalOptions{})
	require.ErrorContains(t, err, "no steps")
}
