package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDef(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

const implementerYAML = `
name: implementer
type: implementation
system_prompt: |
  You implement tasks precisely.
maturity: D2
capabilities:
  - write_code
tools:
  - edit_file
constraints:
  max_tokens: 4096
  temperature: 0.2
metadata:
  author: platform
`

func TestLoadRegistry(t *testing.T) {
	dir := t.TempDir()
	writeDef(t, dir, "implementer.yaml", implementerYAML)
	writeDef(t, dir, "reviewer.yml", "name: reviewer\ntype: review\nsystem_prompt: Review code.\n")
	writeDef(t, dir, "notes.txt", "ignored")

	r, err := LoadRegistry(dir)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Size())

	def, err := r.Get("implementer")
	require.NoError(t, err)
	assert.Equal(t, AgentTypeImplementation, def.Type)
	assert.Equal(t, MaturityD2, def.Maturity)
	require.NotNil(t, def.Constraints)
	assert.Equal(t, 4096, *def.Constraints.MaxTokens)

	reviewer, err := r.Get("reviewer")
	require.NoError(t, err)
	assert.Equal(t, DefaultMaturity, reviewer.Maturity, "maturity defaults to D1")
}

func TestLoadRegistryMissingRequired(t *testing.T) {
	dir := t.TempDir()
	writeDef(t, dir, "bad.yaml", "name: broken\ntype: review\n")

	_, err := LoadRegistry(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingRequiredField)
	assert.Contains(t, err.Error(), "system_prompt")
}

func TestLoadRegistryUnknownMaturity(t *testing.T) {
	dir := t.TempDir()
	writeDef(t, dir, "bad.yaml", "name: x\ntype: review\nsystem_prompt: p\nmaturity: D9\n")

	_, err := LoadRegistry(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestLoadRegistryWrongFieldType(t *testing.T) {
	dir := t.TempDir()
	writeDef(t, dir, "bad.yaml", "name: x\ntype: review\nsystem_prompt: p\ncapabilities: not-a-list\n")

	_, err := LoadRegistry(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestLoadRegistryDuplicateName(t *testing.T) {
	dir := t.TempDir()
	writeDef(t, dir, "a.yaml", "name: same\ntype: review\nsystem_prompt: p\n")
	writeDef(t, dir, "b.yaml", "name: same\ntype: review\nsystem_prompt: p\n")

	_, err := LoadRegistry(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate agent name")
}

func TestLoadRegistryMissingDir(t *testing.T) {
	_, err := LoadRegistry(filepath.Join(t.TempDir(), "nope"))
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestReloadIsAtomic(t *testing.T) {
	dir := t.TempDir()
	writeDef(t, dir, "a.yaml", "name: a\ntype: review\nsystem_prompt: p\n")

	r, err := LoadRegistry(dir)
	require.NoError(t, err)

	// A broken file must leave the previous registry intact.
	writeDef(t, dir, "b.yaml", "name: b\ntype: review\n")
	require.Error(t, r.Reload())
	assert.Equal(t, 1, r.Size())

	writeDef(t, dir, "b.yaml", "name: b\ntype: review\nsystem_prompt: p\n")
	require.NoError(t, r.Reload())
	assert.Equal(t, 2, r.Size())
}

func TestFilterByType(t *testing.T) {
	dir := t.TempDir()
	writeDef(t, dir, "a.yaml", "name: zed\ntype: review\nsystem_prompt: p\n")
	writeDef(t, dir, "b.yaml", "name: abe\ntype: review\nsystem_prompt: p\n")
	writeDef(t, dir, "c.yaml", "name: imp\ntype: implementation\nsystem_prompt: p\n")

	r, err := LoadRegistry(dir)
	require.NoError(t, err)

	reviewers := r.FilterByType(AgentTypeReview)
	require.Len(t, reviewers, 2)
	assert.Equal(t, "abe", reviewers[0].Name)
	assert.Equal(t, "zed", reviewers[1].Name)
}

func TestCreateAgent(t *testing.T) {
	dir := t.TempDir()
	writeDef(t, dir, "a.yaml", "name: imp\ntype: implementation\nsystem_prompt: p\n")

	r, err := LoadRegistry(dir)
	require.NoError(t, err)

	w, err := r.CreateAgent("imp", "worker-1")
	require.NoError(t, err)
	assert.Equal(t, "worker-1", w.ID)
	assert.Equal(t, "imp", w.Definition.Name)

	_, err = r.CreateAgent("ghost", "worker-2")
	assert.ErrorIs(t, err, ErrAgentNotFound)
}
