package files

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractDramaName(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{"season and episode markers", "MyShow.S01E02.1080p.mkv", "Myshow"},
		{"bracketed annotation", "Crash.Landing.E05.[1080p].mkv", "Crash Landing"},
		{"parenthesized annotation", "Goblin_Ep12_(subbed).mp4", "Goblin"},
		{"separators collapse", "my-show_name.mkv", "My Show Name"},
		{"plain name", "Signal.mkv", "Signal"},
		{"only markers left", "S01E02.mkv", "New Drama Post"},
		{"empty input", "", "New Drama Post"},
		{"whitespace input", "   ", "New Drama Post"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractDramaName(tt.filename))
		})
	}
}
