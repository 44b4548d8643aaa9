package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFull(t *testing.T) {
	assert.True(t, strings.HasPrefix(Full(), AppName+"/"))
	assert.Equal(t, AppName+"/"+Commit(), Full())
	assert.LessOrEqual(t, len(Commit()), shortLen)
}
