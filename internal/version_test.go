package internal

import (
	"bytes"
	"github.com/stretchr/testify/assert"
	"strings"
	"testing"
)

func TestNewVersionInfo(t *testing.T) {
	t.Parallel()

	t.Run("Substituted", func(t *testing.T) {
		t.Parallel()

		hash := strings.Repeat("a", 40)
		v := NewVersionInfo("0.1.0", "v0.2.0-3-gaaaaaaa", hash)
		assert.Equal(t, "0.2.0-3-gaaaaaaa", v.Version)
		assert.Equal(t, hash, v.Commit)
	})

	t.Run("Placeholders", func(t *testing.T) {
		t.Parallel()

		v := NewVersionInfo("0.1.0", "$Format:%(describe)$", "$Format:%H$")
		assert.Equal(t, "0.1.0", v.Version)
	})
}

func TestVersionInfo_Fprint(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	(&VersionInfo{Version: "1.2.3", Commit: "abc"}).Fprint(&buf, "Rules Search")

	assert.Contains(t, buf.String(), "Rules Search version: 1.2.3\n")
	assert.Contains(t, buf.String(), "Git commit: abc\n")
}
