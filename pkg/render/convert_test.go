package render

import (
	"context"
	"testing"

	"github.com/matzehuels/seriescoord/pkg/errors"
)

func TestConvertMissingTool(t *testing.T) {
	old := converter
	converter = "seriescoord-no-such-rasterizer"
	t.Cleanup(func() { converter = old })

	if Available() {
		t.Fatal("Available() = true for a missing tool")
	}
	tests := []struct {
		name string
		run  func() ([]byte, error)
	}{
		{"png", func() ([]byte, error) { return ToPNG(context.Background(), []byte("<svg/>"), 2) }},
		{"pdf", func() ([]byte, error) { return ToPDF(context.Background(), []byte("<svg/>")) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.run()
			if !errors.Is(err, errors.ErrCodeUnsupported) {
				t.Errorf("err = %v, want UNSUPPORTED", err)
			}
		})
	}
}

func TestToPNG(t *testing.T) {
	if !Available() {
		t.Skip("rsvg-convert not installed")
	}
	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg" width="4" height="4"><rect width="4" height="4"/></svg>`)
	png, err := ToPNG(context.Background(), svg, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(png) < 8 || string(png[1:4]) != "PNG" {
		t.Errorf("output is not a PNG: % x", png[:min(len(png), 8)])
	}
}
