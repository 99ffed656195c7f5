package bmeta

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfo_Print(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New("1.2.0", "", "abc123").Print(&buf))

	assert.Equal(t, "Build version: 1.2.0\nBuild date: N/A\nBuild commit: abc123\n", buf.String())
}
