package tutorial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/keks/internal/testutil"
)

func TestTutorialCmd(t *testing.T) {
	cmd := TutorialCmd()
	testutil.SetupCobraCommand(cmd, []string{})

	output, err := testutil.ExecuteCommand(t, cmd)
	require.NoError(t, err)
	assert.Contains(t, output, "keks import -f")
	assert.Contains(t, output, "%")
}

func TestOutputTutorialRendered(t *testing.T) {
	output := testutil.CaptureOutput(t, func() {
		outputTutorial(false)
	})
	assert.Contains(t, output, "keks")
	assert.Contains(t, output, "import")
}
