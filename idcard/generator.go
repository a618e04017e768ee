// Package idcard renders a resident record into a printable photo-ID
// card: a single-page PDF at standard card size with the photo, the
// labeled record fields, a QR code and a generation footer.
package idcard

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "image/jpeg"
	_ "image/png"

	"github.com/go-pdf/fpdf"
	"github.com/skip2/go-qrcode"

	"github.com/Shaman-786/Hostel-Management-System-Desktop-Application/models"
)

// Standard ID-1 card size in mm, landscape.
const (
	cardWidth  = 85.6
	cardHeight = 54
	margin     = 5

	photoWidth  = 20
	photoHeight = 25
	qrSize      = 15
)

const defaultInstitution = "UNIVERSITY HOSTEL"

// RenderError tags a card-generation failure with the stage it
// happened in. A failed Generate leaves no output artifact behind.
type RenderError struct {
	Stage string
	Err   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render id card: %s: %v", e.Stage, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// Generator lays out ID cards. Logo and background are optional; they
// are drawn only when the files exist.
type Generator struct {
	LogoPath string
	BgPath   string

	now func() time.Time
}

// New probes assetDir for the optional logo and background pattern,
// matching the asset names the card has always used.
func New(assetDir string) *Generator {
	g := &Generator{now: time.Now}
	if p := filepath.Join(assetDir, "logo.png"); fileExists(p) {
		g.LogoPath = p
	}
	if p := filepath.Join(assetDir, "bg_pattern.png"); fileExists(p) {
		g.BgPath = p
	}
	return g
}

// CardPath is the deterministic artifact location for a registration
// number; regenerating overwrites the previous card.
func CardPath(cardDir, regNo string) string {
	return filepath.Join(cardDir, regNo+"_id_card.pdf")
}

// Generate renders the card for r under the given institution name
// (empty falls back to the default header) and writes it to
// outputPath. The PDF is written to a temp file in the destination
// directory and renamed into place, so a failure never leaves a
// partial artifact. A missing photo file skips the photo block but
// still produces a card.
func (g *Generator) Generate(r models.Resident, institution, outputPath string) error {
	if r.RegistrationNo == "" || r.FirstName == "" || r.LastName == "" {
		return &RenderError{Stage: "record", Err: fmt.Errorf("registration number and name are required")}
	}

	if institution == "" {
		institution = defaultInstitution
	}
	now := g.now
	if now == nil {
		now = time.Now
	}

	// fpdf takes the page size in portrait terms and swaps it for
	// landscape, so Wd/Ht are given flipped here.
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "L",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: cardHeight, Ht: cardWidth},
	})
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	// Background: supplied pattern full-extent, else a solid fill.
	if g.BgPath != "" {
		pdf.ImageOptions(g.BgPath, 0, 0, cardWidth, cardHeight, false,
			fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	} else {
		pdf.SetFillColor(240, 248, 255)
		pdf.Rect(0, 0, cardWidth, cardHeight, "F")
	}

	if g.LogoPath != "" {
		pdf.ImageOptions(g.LogoPath, margin, margin, 15, 0, false,
			fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	}

	// Header, centered at the top.
	pdf.SetXY(0, margin)
	pdf.SetFont("Arial", "B", 10)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(cardWidth, 5, strings.ToUpper(institution)+" ID CARD", "", 1, "C", false, 0, "")

	// Photo on the right side, aspect-fit into its rectangle. A photo
	// that no longer exists on disk is skipped, not an error.
	g.drawPhoto(pdf, r.PhotoPath)

	// Labeled fields on the left, fixed order.
	pdf.SetXY(margin, margin+13)
	fields := []struct{ label, value string }{
		{"Reg No:", r.RegistrationNo},
		{"Name:", r.FullName()},
		{"Father:", r.FatherName},
		{"Dept:", r.Department},
		{"Room:", r.RoomNo},
		{"Valid:", r.ExpiryDate},
	}
	for _, f := range fields {
		pdf.SetX(margin)
		pdf.SetFont("Arial", "", 7)
		pdf.CellFormat(13, 4.5, f.label, "", 0, "", false, 0, "")
		pdf.SetFont("Arial", "B", 7)
		pdf.CellFormat(40, 4.5, f.value, "", 1, "", false, 0, "")
	}

	// QR code in the bottom-right corner. The PNG never touches disk;
	// it is registered with the document straight from memory.
	png, err := qrcode.Encode(QRPayload(institution, r), qrcode.Low, 256)
	if err != nil {
		return &RenderError{Stage: "encode-qr", Err: err}
	}
	pdf.RegisterImageOptionsReader("qr-"+r.RegistrationNo,
		fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(png))
	pdf.ImageOptions("qr-"+r.RegistrationNo,
		cardWidth-margin-qrSize, cardHeight-margin-qrSize, qrSize, qrSize, false,
		fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	// Footer with the render timestamp, centered near the bottom.
	pdf.SetXY(0, cardHeight-4.5)
	pdf.SetFont("Arial", "I", 5)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(cardWidth, 3, "Generated on: "+now().Format("2006-01-02 15:04"), "", 0, "C", false, 0, "")

	if err := pdf.Error(); err != nil {
		return &RenderError{Stage: "layout", Err: err}
	}
	return writeAtomic(pdf, outputPath)
}

// QRPayload builds the canonical text block embedded in the card's QR
// code. The field set and order are fixed so decoding stays stable.
func QRPayload(institution string, r models.Resident) string {
	return strings.Join([]string{
		strings.ToUpper(institution) + " ID",
		"Reg No: " + r.RegistrationNo,
		"Name: " + r.FullName(),
		"Dept: " + r.Department,
		"Valid Until: " + r.ExpiryDate,
	}, "\n")
}

func (g *Generator) drawPhoto(pdf *fpdf.Fpdf, photoPath string) {
	if photoPath == "" || !fileExists(photoPath) {
		return
	}
	boxX, boxY := cardWidth-margin-photoWidth, margin+10.0
	w, h := fitBox(photoPath, photoWidth, photoHeight)
	if w <= 0 || h <= 0 {
		return
	}
	// center inside the photo rectangle
	x := boxX + (photoWidth-w)/2
	y := boxY + (photoHeight-h)/2
	pdf.ImageOptions(photoPath, x, y, w, h, false,
		fpdf.ImageOptions{ImageType: imageType(photoPath)}, 0, "")
}

// fitBox scales the image at path to fit a boxW x boxH rectangle while
// preserving aspect ratio. Returns zeros when the image is unreadable.
func fitBox(path string, boxW, boxH float64) (float64, float64) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	if err != nil || cfg.Width <= 0 || cfg.Height <= 0 {
		return 0, 0
	}
	scale := boxW / float64(cfg.Width)
	if s := boxH / float64(cfg.Height); s < scale {
		scale = s
	}
	return float64(cfg.Width) * scale, float64(cfg.Height) * scale
}

func imageType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "JPG"
	default:
		return "PNG"
	}
}

// writeAtomic outputs the document to a temp file next to outputPath
// and renames it into place.
func writeAtomic(pdf *fpdf.Fpdf, outputPath string) error {
	dir := filepath.Dir(outputPath)
	tmp, err := os.CreateTemp(dir, ".card-*.pdf")
	if err != nil {
		return &RenderError{Stage: "open-sink", Err: err}
	}
	tmpName := tmp.Name()
	if err := pdf.Output(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &RenderError{Stage: "write", Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &RenderError{Stage: "write", Err: err}
	}
	if err := os.Rename(tmpName, outputPath); err != nil {
		os.Remove(tmpName)
		return &RenderError{Stage: "write", Err: err}
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
