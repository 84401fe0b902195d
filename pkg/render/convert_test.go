package render

import (
	"bytes"
	"context"
	"os/exec"
	"testing"

	"github.com/Maxyme/gml-to-graphml/pkg/errors"
)

const tinySVG = `<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10"><rect width="10" height="10"/></svg>`

func TestToPNGRejectsScale(t *testing.T) {
	for _, scale := range []float64{0, -1} {
		if _, err := ToPNG(context.Background(), []byte(tinySVG), scale); !errors.Is(err, errors.ErrCodeInvalidConfig) {
			t.Errorf("ToPNG(scale=%g) error = %v, want INVALID_CONFIG", scale, err)
		}
	}
}

func TestConvert(t *testing.T) {
	if _, err := exec.LookPath(rsvgTool); err != nil {
		t.Skip("rsvg-convert not installed")
	}
	ctx := context.Background()

	png, err := ToPNG(ctx, []byte(tinySVG), 2)
	if err != nil {
		t.Fatalf("ToPNG: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Errorf("ToPNG output is not a PNG: % x", png[:min(8, len(png))])
	}

	pdf, err := ToPDF(ctx, []byte(tinySVG))
	if err != nil {
		t.Fatalf("ToPDF: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Errorf("ToPDF output is not a PDF: %q", pdf[:min(8, len(pdf))])
	}
}

func TestConvertMissingTool(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	_, err := ToPDF(context.Background(), []byte(tinySVG))
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("error = %v, want UNSUPPORTED", err)
	}
}
