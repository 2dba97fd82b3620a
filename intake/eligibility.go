package intake

import (
	"fmt"
	"time"
)

// DateLayout is the expected wire format for dates of birth.
const DateLayout = "2006-01-02"

// Policy is the eligibility rule: applicants must be at least MinAge whole
// years old as of Reference. The reference date is a fixed program rule, not
// the current date, and must stay that way.
type Policy struct {
	Reference time.Time
	MinAge    int
}

// Decision is the outcome of evaluating a submission's date of birth.
type Decision struct {
	Age      int
	Eligible bool
}

// Evaluate parses dob and computes the applicant's age in whole years as of
// the reference date. A dob that fails to parse returns an error; callers
// treat that as ineligible and log it.
func (p Policy) Evaluate(dob string) (Decision, error) {
	birth, err := time.Parse(DateLayout, dob)
	if err != nil {
		return Decision{}, fmt.Errorf("parse date of birth %q: %w", dob, err)
	}

	age := Age(birth, p.Reference)
	return Decision{Age: age, Eligible: age >= p.MinAge}, nil
}

// Age returns whole years elapsed between birth and ref, decrementing when
// ref's month/day falls before the birthday within the year.
func Age(birth, ref time.Time) int {
	age := ref.Year() - birth.Year()
	if ref.Month() < birth.Month() ||
		(ref.Month() == birth.Month() && ref.Day() < birth.Day()) {
		age--
	}
	return age
}
