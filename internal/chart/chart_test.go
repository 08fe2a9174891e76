package chart

import (
	"bytes"
	"testing"

	"github.com/Geetheshwar420/RandomWalk/internal/model"
	"github.com/Geetheshwar420/RandomWalk/internal/walk"
)

func TestFilename(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"  My Report  ", "My_Report"},
		{"My   Spaced\tReport", "My_Spaced_Report"},
		{"Report", "Report"},
		{"", DefaultFilename},
		{"   ", DefaultFilename},
		{"\t\n", DefaultFilename},
	}
	for _, tt := range tests {
		if got := Filename(tt.title); got != tt.want {
			t.Errorf("Filename(%q): expected %q, got %q", tt.title, tt.want, got)
		}
	}
}

func TestRenderPNG(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderPNG(walk.Generate(), "Test Chart", 800, 400, &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	// PNG magic bytes.
	sig := []byte{0x89, 'P', 'N', 'G'}
	if buf.Len() < len(sig) || !bytes.Equal(buf.Bytes()[:len(sig)], sig) {
		t.Error("output is not a PNG")
	}
}

func TestRenderPNG_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderPNG(model.Series{}, "Empty", 800, 400, &buf); err == nil {
		t.Error("expected error for empty series")
	}
}
