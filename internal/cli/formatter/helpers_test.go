package formatter

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := stripANSI(RenderTable(
		[]string{"ID", "NAME"},
		[][]string{
			{"1", "short"},
			{"22", "a much longer name"},
		},
	))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4) // header, separator, two rows

	// Every NAME cell starts at the same column.
	idx := strings.Index(lines[0], "NAME")
	assert.Equal(t, idx, strings.Index(lines[2], "short"))
	assert.Equal(t, idx, strings.Index(lines[3], "a much longer name"))
}

func TestRenderTable_EmptyHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, nil))
}

func TestRenderQuotaBar_Clamps(t *testing.T) {
	full := stripANSI(RenderQuotaBar(12, 8))
	assert.Contains(t, full, strings.Repeat("█", 8))
	assert.NotContains(t, full, "░")

	empty := stripANSI(RenderQuotaBar(-1, 8))
	assert.Contains(t, empty, strings.Repeat("░", 8))
}

func TestRenderQuotaBar_ShowsWorkedAndQuota(t *testing.T) {
	out := stripANSI(RenderQuotaBar(4, 8))
	assert.Contains(t, out, "04h 00m")
	assert.Contains(t, out, "8h")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "a very ...", Truncate("a very long string", 10))
}

func TestRenderBox_IncludesTitleAndContent(t *testing.T) {
	out := stripANSI(RenderBox("Tasks", "hello"))
	assert.Contains(t, out, "TASKS")
	assert.Contains(t, out, "hello")
}
