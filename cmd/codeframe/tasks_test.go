package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare json", `[{"task_number":"1.1"}]`, `[{"task_number":"1.1"}]`},
		{"fenced", "```\n[1,2]\n```", "[1,2]"},
		{"fenced with language tag", "```json\n[1,2]\n```", "[1,2]"},
		{"leading whitespace", "  ```json\n[]\n```  ", "[]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripFences(tt.in))
		})
	}
}

func TestGeneratedTaskDecoding(t *testing.T) {
	payload := "```json\n" + `[
		{"issue_number":"1","issue_title":"Core","task_number":"1.1",
		 "title":"Implement loader","depends_on":"","priority":2,
		 "estimated_hours":3.5}
	]` + "\n```"

	var got []generatedTask
	require.NoError(t, json.Unmarshal([]byte(stripFences(payload)), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "1.1", got[0].TaskNumber)
	assert.Equal(t, 3.5, got[0].EstimatedHours)
}
