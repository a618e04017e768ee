package idcard

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shaman-786/Hostel-Management-System-Desktop-Application/models"
)

func writeTestPhoto(t *testing.T, dir string) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 40, 50))
	for x := 0; x < 40; x++ {
		for y := 0; y < 50; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 180, B: 160, A: 255})
		}
	}
	path := filepath.Join(dir, "photo.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func testResident(photoPath string) models.Resident {
	return models.Resident{
		RegistrationNo: "CS-2023001",
		FirstName:      "Ali",
		LastName:       "Khan",
		FatherName:     "Ahmed Khan",
		Department:     "COMPUTER SCIENCE",
		RoomNo:         "A101",
		Phone:          "03001234567",
		PhotoPath:      photoPath,
		JoinDate:       "2023-01-01",
		ExpiryDate:     "2024-01-01",
	}
}

func TestGenerate_WritesPDF(t *testing.T) {
	dir := t.TempDir()
	photo := writeTestPhoto(t, dir)

	g := New(dir) // no assets in the temp dir; solid fill, no logo
	g.now = func() time.Time { return time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC) }

	out := CardPath(dir, "CS-2023001")
	require.NoError(t, g.Generate(testResident(photo), "", out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"), "output should be a PDF")
	assert.Greater(t, len(data), 1000)
}

func TestGenerate_MissingPhotoStillRenders(t *testing.T) {
	dir := t.TempDir()

	r := testResident(filepath.Join(dir, "deleted.png"))
	out := CardPath(dir, r.RegistrationNo)
	require.NoError(t, New(dir).Generate(r, "", out))

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestGenerate_NoScratchOrPartialFiles(t *testing.T) {
	dir := t.TempDir()
	photo := writeTestPhoto(t, dir)
	out := CardPath(dir, "CS-2023001")
	require.NoError(t, New(dir).Generate(testResident(photo), "", out))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.Contains(t, []string{"photo.png", "CS-2023001_id_card.pdf"}, e.Name(),
			"no temp or scratch file may remain")
	}
}

func TestGenerate_OverwritesOnRegenerate(t *testing.T) {
	dir := t.TempDir()
	photo := writeTestPhoto(t, dir)
	g := New(dir)
	out := CardPath(dir, "CS-2023001")

	require.NoError(t, g.Generate(testResident(photo), "", out))
	first, err := os.Stat(out)
	require.NoError(t, err)

	require.NoError(t, g.Generate(testResident(photo), "", out))
	second, err := os.Stat(out)
	require.NoError(t, err)
	assert.False(t, second.ModTime().Before(first.ModTime()))
}

func TestGenerate_MalformedRecord(t *testing.T) {
	dir := t.TempDir()
	out := CardPath(dir, "X")

	err := New(dir).Generate(models.Resident{}, "", out)
	var rerr *RenderError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "record", rerr.Stage)

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr), "failed render must leave no artifact")
}

func TestGenerate_UnwritableSink(t *testing.T) {
	dir := t.TempDir()
	photo := writeTestPhoto(t, dir)

	err := New(dir).Generate(testResident(photo), "", filepath.Join(dir, "missing", "out.pdf"))
	var rerr *RenderError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "open-sink", rerr.Stage)
}

func TestQRPayload_CanonicalOrder(t *testing.T) {
	r := testResident("unused.png")
	got := QRPayload("University Hostel", r)

	lines := strings.Split(got, "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "UNIVERSITY HOSTEL ID", lines[0])
	assert.Equal(t, "Reg No: CS-2023001", lines[1])
	assert.Equal(t, "Name: Ali Khan", lines[2])
	assert.Equal(t, "Dept: COMPUTER SCIENCE", lines[3])
	assert.Equal(t, "Valid Until: 2024-01-01", lines[4])
}
