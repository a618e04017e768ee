// Package registration runs the resident-registration workflow:
// validate every field, normalize, derive the credential validity
// window and persist. Card generation is a separate caller action so a
// renderer failure can never undo a successful registration.
package registration

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Shaman-786/Hostel-Management-System-Desktop-Application/models"
	"github.com/Shaman-786/Hostel-Management-System-Desktop-Application/store"
	"github.com/Shaman-786/Hostel-Management-System-Desktop-Application/validator"
)

// Input carries the raw form fields exactly as submitted.
type Input struct {
	RegistrationNo string `json:"registration_no"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	FatherName     string `json:"father_name"`
	Department     string `json:"department"`
	RoomNo         string `json:"room_no"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	Address        string `json:"address"`
	PhotoPath      string `json:"photo_path"`
	JoinDate       string `json:"join_date"` // YYYY-MM-DD
}

// ValidationError carries every field failure from one validation
// pass; callers get the complete list, not just the first problem.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Fields))
}

// PhotoResolver reports whether a photo reference points at a stored
// image. The workflow requires the photo to exist at registration
// time; the card renderer tolerates it disappearing later.
type PhotoResolver interface {
	Exists(path string) bool
}

// OSPhotoResolver resolves photo references against the local
// filesystem.
type OSPhotoResolver struct{}

func (OSPhotoResolver) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// titleCase folds a name to Title Case ("ahmed KHAN" -> "Ahmed Khan").
// A fresh Caser per call: Casers are not safe for concurrent use.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

type Workflow struct {
	store  store.ResidentStore
	photos PhotoResolver
}

func NewWorkflow(s store.ResidentStore, photos PhotoResolver) *Workflow {
	if photos == nil {
		photos = OSPhotoResolver{}
	}
	return &Workflow{store: s, photos: photos}
}

// Register validates in, normalizes it, derives the expiry date and
// inserts the record. It returns the stored (normalized) record, or a
// *ValidationError, store.ErrDuplicate, or a storage failure.
func (w *Workflow) Register(ctx context.Context, in Input) (models.Resident, error) {
	if errs := validate(in, w.photos); len(errs) > 0 {
		return models.Resident{}, &ValidationError{Fields: errs}
	}

	r := normalize(in)
	joined, err := time.Parse("2006-01-02", r.JoinDate)
	if err != nil {
		// unreachable after validation; kept as a hard guard
		return models.Resident{}, fmt.Errorf("parse join date: %w", err)
	}
	r.ExpiryDate = joined.AddDate(1, 0, 0).Format("2006-01-02")

	if err := w.store.Insert(ctx, r); err != nil {
		return models.Resident{}, err
	}
	return r, nil
}

func validate(in Input, photos PhotoResolver) map[string]string {
	errs := map[string]string{}

	required := []struct {
		field, value string
	}{
		{"registration_no", in.RegistrationNo},
		{"first_name", in.FirstName},
		{"last_name", in.LastName},
		{"father_name", in.FatherName},
		{"department", in.Department},
		{"room_no", in.RoomNo},
		{"phone", in.Phone},
		{"join_date", in.JoinDate},
		{"photo_path", in.PhotoPath},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			errs[f.field] = "field is required"
		}
	}

	check := func(field, value string, ok func(string) bool, reason string) {
		if _, already := errs[field]; already {
			return
		}
		if !ok(value) {
			errs[field] = reason
		}
	}
	check("registration_no", in.RegistrationNo, validator.IsValidRegistrationID,
		"must be 2-3 letters, an optional hyphen and 4-8 digits")
	check("first_name", in.FirstName, validator.IsValidName,
		"must be 2-50 letters, spaces, dots or hyphens")
	check("last_name", in.LastName, validator.IsValidName,
		"must be 2-50 letters, spaces, dots or hyphens")
	check("father_name", in.FatherName, validator.IsValidName,
		"must be 2-50 letters, spaces, dots or hyphens")
	check("department", in.Department, validator.IsValidName,
		"must be 2-50 letters, spaces, dots or hyphens")
	check("room_no", in.RoomNo, validator.IsValidRoom,
		"must be 1-10 letters, digits or hyphens")
	check("phone", in.Phone, validator.IsValidPhone,
		"must be 10-15 digits, spaces or hyphens with an optional leading +")
	check("join_date", in.JoinDate, validator.IsValidDate,
		"must be a valid date in YYYY-MM-DD format")
	if in.Email != "" && !validator.IsValidEmail(in.Email) {
		errs["email"] = "must be a valid email address or empty"
	}
	if _, already := errs["photo_path"]; !already && !photos.Exists(strings.TrimSpace(in.PhotoPath)) {
		errs["photo_path"] = "photo file does not exist"
	}
	return errs
}

// normalize folds each field into its canonical stored form. Only runs
// after validation has passed.
func normalize(in Input) models.Resident {
	return models.Resident{
		RegistrationNo: strings.ToUpper(strings.TrimSpace(in.RegistrationNo)),
		FirstName:      titleCase(strings.TrimSpace(in.FirstName)),
		LastName:       titleCase(strings.TrimSpace(in.LastName)),
		FatherName:     titleCase(strings.TrimSpace(in.FatherName)),
		Department:     strings.ToUpper(strings.TrimSpace(in.Department)),
		RoomNo:         strings.ToUpper(strings.TrimSpace(in.RoomNo)),
		Phone:          strings.TrimSpace(in.Phone),
		Email:          strings.TrimSpace(in.Email),
		Address:        strings.TrimSpace(in.Address),
		PhotoPath:      strings.TrimSpace(in.PhotoPath),
		JoinDate:       strings.TrimSpace(in.JoinDate),
	}
}
