package certificate

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		date time.Time
		want string
	}{
		{time.Date(2024, time.March, 14, 0, 0, 0, 0, time.UTC), "14 Maret 2024"},
		{time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), "1 Januari 2025"},
		{time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC), "31 Agustus 2026"},
		{time.Date(2023, time.December, 9, 0, 0, 0, 0, time.UTC), "9 Desember 2023"},
	}
	for _, tt := range tests {
		if got := FormatDate(tt.date); got != tt.want {
			t.Errorf("FormatDate(%v) = %q, want %q", tt.date, got, tt.want)
		}
	}
}

func TestFilename_EmbedsDate(t *testing.T) {
	c := Certificate{Date: time.Date(2024, time.March, 14, 0, 0, 0, 0, time.UTC)}
	if got := c.Filename(); got != "Sertifikat-APBN-14 Maret 2024.png" {
		t.Errorf("Filename() = %q", got)
	}
}

func TestNew_Defaults(t *testing.T) {
	c := New(5, 5)
	if c.Recipient != Recipient {
		t.Errorf("recipient = %q, want %q", c.Recipient, Recipient)
	}
	if c.Score != 5 || c.Total != 5 {
		t.Errorf("score = %d/%d, want 5/5", c.Score, c.Total)
	}
	if c.Date.IsZero() {
		t.Error("date must be set")
	}
}

func TestSavePNG_WritesDoubleResolutionSheet(t *testing.T) {
	dir := t.TempDir()
	c := New(5, 5)
	c.Date = time.Date(2024, time.March, 14, 0, 0, 0, 0, time.UTC)

	path, err := c.SavePNG(dir)
	if err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	if filepath.Base(path) != c.Filename() {
		t.Errorf("path %q does not end in %q", path, c.Filename())
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("written file missing: %v", err)
	}

	dc, err := c.render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	img := dc.Image()
	b := img.Bounds()
	if b.Dx() != baseWidth*scale || b.Dy() != baseHeight*scale {
		t.Errorf("image size %dx%d, want %dx%d", b.Dx(), b.Dy(), baseWidth*scale, baseHeight*scale)
	}

	// The sheet corner outside the rounded parchment stays white.
	r, g, bl, _ := img.At(1, 1).RGBA()
	if (color.RGBA64{R: uint16(r), G: uint16(g), B: uint16(bl)} != color.RGBA64{R: 0xffff, G: 0xffff, B: 0xffff}) {
		t.Errorf("background corner not white: %v", img.At(1, 1))
	}
}
