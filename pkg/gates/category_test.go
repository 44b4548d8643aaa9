package gates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		want        Category
	}{
		{"testing wins", "Write tests for auth module", "pytest suite", CategoryTesting},
		{"refactoring", "Refactor payment handler", "restructure into smaller units", CategoryRefactoring},
		{"design", "Design the dashboard architecture", "produce a wireframe", CategoryDesign},
		{"documentation", "Update README", "document the new flags", CategoryDocumentation},
		{"configuration", "Set up CI environment", "deployment configuration", CategoryConfiguration},
		{"code", "Implement login endpoint", "add the API handler", CategoryCodeImplementation},
		{"mixed", "Design and implement the search feature", "architecture plus code", CategoryMixed},
		{"default is code", "Do the thing", "no recognisable keywords", CategoryCodeImplementation},
		{"spec maps to design", "Write the storage spec", "architecture notes", CategoryDesign},
		{"spec with tests is testing", "Spec coverage tests", "pytest", CategoryTesting},
		{"word boundary", "Contest submission handler", "implement scoring", CategoryCodeImplementation},
		{"case insensitive", "REFACTOR the parser", "", CategoryRefactoring},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.title, tt.description))
		})
	}
}
