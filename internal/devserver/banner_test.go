package devserver

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, "promptsandmore.com", "http://localhost:8080")

	want := "============================================================\n" +
		"promptsandmore.com development server\n" +
		"============================================================\n" +
		"Server running at: http://localhost:8080\n" +
		"Press Ctrl+C to stop the server\n" +
		"============================================================\n"
	assert.Equal(t, want, buf.String())
}
