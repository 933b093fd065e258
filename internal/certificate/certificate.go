// Package certificate renders the perfect-score certificate to a PNG file.
// The layout is a landscape A-series sheet drawn at double resolution so the
// exported image stays crisp when shared.
package certificate

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Recipient is the learner the certificate is made out to.
const Recipient = "Nasywa Aura Adiba"

const (
	baseWidth  = 800
	baseHeight = 566 // 1.414:1, landscape A-series
	scale      = 2
)

var indonesianMonths = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// FormatDate renders a date the Indonesian way, e.g. "14 Maret 2024".
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), indonesianMonths[t.Month()-1], t.Year())
}

// Certificate holds everything printed on the sheet.
type Certificate struct {
	Recipient string
	Score     int
	Total     int
	Date      time.Time
}

// New builds a certificate for the default recipient, dated today.
func New(score, total int) Certificate {
	return Certificate{
		Recipient: Recipient,
		Score:     score,
		Total:     total,
		Date:      time.Now(),
	}
}

// Filename returns the download name, with the date embedded.
func (c Certificate) Filename() string {
	return fmt.Sprintf("Sertifikat-APBN-%s.png", FormatDate(c.Date))
}

// SavePNG renders the certificate and writes it into dir, returning the full
// path of the written file.
func (c Certificate) SavePNG(dir string) (string, error) {
	dc, err := c.render()
	if err != nil {
		return "", err
	}
	if dir == "" {
		dir, err = os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolve output dir: %w", err)
		}
	}
	path := filepath.Join(dir, c.Filename())
	if err := dc.SavePNG(path); err != nil {
		return "", fmt.Errorf("write certificate: %w", err)
	}
	return path, nil
}

func (c Certificate) render() (*gg.Context, error) {
	w, h := baseWidth*scale, baseHeight*scale
	dc := gg.NewContext(w, h)

	face := func(ttf []byte, size float64) (font.Face, error) {
		f, err := opentype.Parse(ttf)
		if err != nil {
			return nil, err
		}
		return opentype.NewFace(f, &opentype.FaceOptions{
			Size:    size * scale,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}

	titleFace, err := face(gobold.TTF, 56)
	if err != nil {
		return nil, fmt.Errorf("load title font: %w", err)
	}
	nameFace, err := face(gobold.TTF, 40)
	if err != nil {
		return nil, fmt.Errorf("load name font: %w", err)
	}
	headingFace, err := face(goitalic.TTF, 24)
	if err != nil {
		return nil, fmt.Errorf("load heading font: %w", err)
	}
	bodyFace, err := face(goregular.TTF, 15)
	if err != nil {
		return nil, fmt.Errorf("load body font: %w", err)
	}
	smallFace, err := face(gobold.TTF, 13)
	if err != nil {
		return nil, fmt.Errorf("load small font: %w", err)
	}
	scoreFace, err := face(gobold.TTF, 40)
	if err != nil {
		return nil, fmt.Errorf("load score font: %w", err)
	}

	fw, fh := float64(w), float64(h)
	cx := fw / 2

	// Warm parchment background on a white sheet.
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetHexColor("#fffbeb")
	dc.DrawRoundedRectangle(0, 0, fw, fh, 24*scale)
	dc.Fill()

	// Double amber border.
	dc.SetHexColor("#fbbf24")
	dc.SetLineWidth(3 * scale)
	dc.DrawRoundedRectangle(16*scale, 16*scale, fw-32*scale, fh-32*scale, 16*scale)
	dc.Stroke()
	dc.SetLineWidth(1.5 * scale)
	dc.DrawRoundedRectangle(22*scale, 22*scale, fw-44*scale, fh-44*scale, 12*scale)
	dc.Stroke()

	// Corner stars.
	dc.SetHexColor("#f59e0b")
	for _, pt := range [][2]float64{
		{44 * scale, 44 * scale},
		{fw - 44*scale, 44 * scale},
		{44 * scale, fh - 44*scale},
		{fw - 44*scale, fh - 44*scale},
	} {
		drawStar(dc, pt[0], pt[1], 10*scale)
	}

	// Header.
	dc.SetFontFace(titleFace)
	dc.SetHexColor("#b45309")
	dc.DrawStringAnchored("SERTIFIKAT", cx, 96*scale, 0.5, 0.5)

	dc.SetFontFace(headingFace)
	dc.SetHexColor("#78350f")
	dc.DrawStringAnchored("Pencapaian Sempurna", cx, 136*scale, 0.5, 0.5)

	drawDivider(dc, cx, 158*scale, 120*scale)

	// Recipient block.
	dc.SetFontFace(bodyFace)
	dc.SetHexColor("#b45309")
	dc.DrawStringAnchored("Dengan bangga diberikan kepada", cx, 192*scale, 0.5, 0.5)

	dc.SetFontFace(nameFace)
	dc.SetHexColor("#78350f")
	dc.DrawStringAnchored(c.Recipient, cx, 228*scale, 0.5, 0.5)

	nameW, _ := dc.MeasureString(c.Recipient)
	dc.SetHexColor("#fbbf24")
	dc.SetLineWidth(2 * scale)
	dc.DrawLine(cx-nameW/2, 250*scale, cx+nameW/2, 250*scale)
	dc.Stroke()

	dc.SetFontFace(bodyFace)
	dc.SetHexColor("#92400e")
	dc.DrawStringWrapped(
		"Telah menunjukkan keunggulan luar biasa dengan menyelesaikan kuis Belajar APBN dengan pencapaian sempurna",
		cx, 286*scale, 0.5, 0.5, 480*scale, 1.5, gg.AlignCenter)

	// Score badge.
	badgeW, badgeH := float64(220*scale), float64(86*scale)
	badgeY := float64(330 * scale)
	dc.SetHexColor("#fef3c7")
	dc.DrawRoundedRectangle(cx-badgeW/2, badgeY, badgeW, badgeH, 14*scale)
	dc.Fill()
	dc.SetHexColor("#f59e0b")
	dc.SetLineWidth(3 * scale)
	dc.DrawRoundedRectangle(cx-badgeW/2, badgeY, badgeW, badgeH, 14*scale)
	dc.Stroke()

	dc.SetFontFace(smallFace)
	dc.SetHexColor("#b45309")
	dc.DrawStringAnchored("SKOR SEMPURNA", cx, badgeY+22*scale, 0.5, 0.5)
	dc.SetFontFace(scoreFace)
	dc.SetHexColor("#78350f")
	dc.DrawStringAnchored(fmt.Sprintf("%d/%d", c.Score, c.Total), cx, badgeY+58*scale, 0.5, 0.5)

	// Closing note.
	dc.SetFontFace(bodyFace)
	dc.SetHexColor("#78350f")
	dc.DrawStringWrapped(
		"Pencapaian gemilang ini merupakan bukti nyata dari dedikasi, kerja keras, dan pemahaman mendalam tentang Anggaran Pendapatan dan Belanja Negara",
		cx, 456*scale, 0.5, 0.5, 560*scale, 1.5, gg.AlignCenter)

	// Footer.
	drawDivider(dc, cx, 494*scale, 140*scale)
	dc.SetFontFace(smallFace)
	dc.SetHexColor("#78350f")
	dc.DrawStringAnchored("Karsa - Asisten Belajar APBN", cx, 512*scale, 0.5, 0.5)
	dc.SetFontFace(bodyFace)
	dc.SetHexColor("#b45309")
	dc.DrawStringAnchored(FormatDate(c.Date), cx, 532*scale, 0.5, 0.5)

	return dc, nil
}

// drawDivider draws a horizontal rule with a small star at its center.
func drawDivider(dc *gg.Context, cx, y, halfWidth float64) {
	dc.SetHexColor("#f59e0b")
	dc.SetLineWidth(1.5 * scale)
	dc.DrawLine(cx-halfWidth, y, cx-14*scale, y)
	dc.DrawLine(cx+14*scale, y, cx+halfWidth, y)
	dc.Stroke()
	drawStar(dc, cx, y, 6*scale)
}

// drawStar fills a five-pointed star centered at (cx, cy).
func drawStar(dc *gg.Context, cx, cy, r float64) {
	inner := r * 0.4
	for i := 0; i < 10; i++ {
		radius := r
		if i%2 == 1 {
			radius = inner
		}
		angle := float64(i)*math.Pi/5 - math.Pi/2
		x := cx + radius*math.Cos(angle)
		y := cy + radius*math.Sin(angle)
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.ClosePath()
	dc.Fill()
}
