package application

import "mime/multipart"

// Field names a validated form field.
type Field string

const (
	FieldName       Field = "name"
	FieldEmail      Field = "email"
	FieldPhone      Field = "phone"
	FieldBirthDate  Field = "birthDate"
	FieldSpecialty  Field = "specialty"
	FieldExperience Field = "experience"
	FieldPassword   Field = "password"
)

// Form is a submitted application as entered by the applicant.
// Values stay raw strings; the rules decide what is acceptable.
type Form struct {
	Name            string `json:"name" form:"name"`
	Phone           string `json:"phone" form:"phone"`
	Email           string `json:"email" form:"email"`
	BirthDate       string `json:"birthDate" form:"birthDate"`
	Photo           string `json:"photo" form:"photo"`
	Specialty       string `json:"specialty" form:"specialty"`
	CustomSpecialty string `json:"customSpecialty" form:"customSpecialty"`
	Experience      string `json:"experience" form:"experience"`
	Password        string `json:"password" form:"password"`

	PhotoFile *multipart.FileHeader `json:"-" file:"photo"`
}

// photoName returns the uploaded file name when no photo value was sent.
func (f Form) photoName() string {
	if f.Photo == "" && f.PhotoFile != nil {
		return f.PhotoFile.Filename
	}
	return f.Photo
}
