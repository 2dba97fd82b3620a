package model

// NotSpecified is the placeholder shown for optional form fields the
// applicant left empty.
const NotSpecified = "Not specified"

// Submission is the raw application form payload as received from the web
// form. All fields are captured verbatim; DOB is expected in YYYY-MM-DD.
type Submission struct {
	Name     string
	Email    string
	Phone    string
	DOB      string
	Location string
	Role     string
	Skills   string
	Why      string
}

// Normalize fills the optional fields with the placeholder value so the
// review notification never renders an empty embed field.
func (s *Submission) Normalize() {
	if s.Skills == "" {
		s.Skills = NotSpecified
	}
	if s.Why == "" {
		s.Why = NotSpecified
	}
}

// Application is the registry record for an eligible submission awaiting a
// reviewer decision. Only the fields needed to announce the decision are
// retained; everything else lives solely in the review channel message.
type Application struct {
	ID    string
	Name  string
	Email string
	Phone string
	Role  string
}
