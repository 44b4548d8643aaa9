package tactical

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchFileAlreadyExists(t *testing.T) {
	m := NewMatcher()

	p := m.Match("FileExistsError: File already exists: src/Button.tsx")
	require.NotNil(t, p)
	assert.Equal(t, "file_already_exists", p.ID)
	assert.Equal(t, StrategyConvertCreateToEdit, p.Strategy)
}

func TestMatchVariants(t *testing.T) {
	m := NewMatcher()

	tests := []struct {
		name    string
		text    string
		wantID  string
		wantNil bool
	}{
		{"errno 17", "OSError: [Errno 17] File exists: 'a.py'", "file_already_exists", false},
		{"case insensitive", "FILE ALREADY EXISTS", "file_already_exists", false},
		{"no such file", "open config.yaml: no such file or directory", "file_not_found", false},
		{"errno 2", "[Errno 2] No such file or directory", "file_not_found", false},
		{"cannot modify", "cannot modify non-existent file: src/app.go", "file_not_found", false},
		{"permission", "open /etc/hosts: permission denied", "permission_denied", false},
		{"unmatched", "segmentation fault (core dumped)", "", true},
		{"empty", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := m.Match(tt.text)
			if tt.wantNil {
				assert.Nil(t, p)
				return
			}
			require.NotNil(t, p)
			assert.Equal(t, tt.wantID, p.ID)
		})
	}
}

func TestMatchWithDiagnostics(t *testing.T) {
	m := NewMatcher()

	res := m.MatchWithDiagnostics("")
	assert.True(t, res.ErrorMessageEmpty)
	assert.Nil(t, res.Matched)

	res = m.MatchWithDiagnostics("something unrecognised")
	assert.False(t, res.ErrorMessageEmpty)
	assert.Nil(t, res.Matched)
	assert.Equal(t, len(m.Patterns()), res.PatternsChecked)

	res = m.MatchWithDiagnostics("file already exists")
	require.NotNil(t, res.Matched)
	assert.Equal(t, 1, res.PatternsChecked, "first pattern wins")
}

func TestFirstMatchWins(t *testing.T) {
	m := NewMatcher()
	require.NoError(t, m.Add("custom_exists", `already exists`, "custom", StrategyCreateBackup, "appended pattern"))

	// The default file_already_exists pattern still matches first.
	p := m.Match("file already exists")
	require.NotNil(t, p)
	assert.Equal(t, "file_already_exists", p.ID)
}

func TestAddMalformedRegexSkipped(t *testing.T) {
	m := NewMatcher()
	before := len(m.Patterns())

	err := m.Add("broken", `([unclosed`, "custom", StrategyRetryWithContext, "bad regex")
	assert.Error(t, err)
	assert.Len(t, m.Patterns(), before)
}

func TestRemove(t *testing.T) {
	m := NewMatcher()
	assert.True(t, m.Remove("permission_denied"))
	assert.False(t, m.Remove("permission_denied"))
	assert.Nil(t, m.Match("permission denied"))
}

func TestExtractFilePath(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"exists prefix", "File already exists: src/Button.tsx", "src/Button.tsx"},
		{"quoted directory", "cannot create directory: 'build/out'", "build/out"},
		{"non-existent", "cannot modify non-existent file: lib/util.go", "lib/util.go"},
		{"generic extension", "parse error: main.py, line 3", "main.py"},
		{"trailing punctuation stripped", "File already exists: src/app.ts.", "src/app.ts"},
		{"nothing found", "network unreachable", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractFilePath(tt.text))
		})
	}
}

func TestStrategyInstructions(t *testing.T) {
	instr := StrategyConvertCreateToEdit.Instruction()
	assert.Contains(t, instr, "odify")
	assert.Contains(t, instr, "create")

	for _, s := range []Strategy{
		StrategyConvertCreateToEdit,
		StrategySkipFileCreation,
		StrategyCreateBackup,
		StrategyRetryWithContext,
	} {
		assert.NotEmpty(t, s.Instruction())
	}
}
