// Package form models the seven-step registration flow: a Draft value
// accumulates the partial input of each step, and Assemble turns the
// accumulated state into the nested submission payload.
package form

import (
	"edureg/models"
)

// Step identifies one screen of the registration flow
type Step int

const (
	StepProfile Step = iota + 1
	StepAddress
	StepEducation
	StepHigherEducation
	StepExperience
	StepOrganization
	StepReview
)

const TotalSteps = 7

// Draft is the accumulator threaded through step transitions. It is a value
// type: every mutation returns a new Draft, so going back and forward never
// loses previously entered data.
type Draft struct {
	step             Step
	fields           map[string]string
	pg               []models.DegreeQualification
	previousClasses  []string
	previousSubjects []string
}

func NewDraft() Draft {
	return Draft{step: StepProfile, fields: map[string]string{}}
}

func (d Draft) Step() Step {
	return d.step
}

// Next moves forward one step. Forward navigation is unconditional; only the
// final submission is validated as a whole.
func (d Draft) Next() Draft {
	if d.step < StepReview {
		d.step++
	}
	return d
}

// Back moves backward one step, preserving everything entered so far
func (d Draft) Back() Draft {
	if d.step > StepProfile {
		d.step--
	}
	return d
}

// WithFields merges flat field values into the draft
func (d Draft) WithFields(fields map[string]string) Draft {
	merged := make(map[string]string, len(d.fields)+len(fields))
	for k, v := range d.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	d.fields = merged
	return d
}

// WithPG replaces the postgraduate qualification list
func (d Draft) WithPG(pg []models.DegreeQualification) Draft {
	d.pg = append([]models.DegreeQualification(nil), pg...)
	return d
}

// WithPreviousClasses replaces the previously-taught classes list
func (d Draft) WithPreviousClasses(classes []string) Draft {
	d.previousClasses = append([]string(nil), classes...)
	return d
}

// WithPreviousSubjects replaces the previously-taught subjects list
func (d Draft) WithPreviousSubjects(subjects []string) Draft {
	d.previousSubjects = append([]string(nil), subjects...)
	return d
}

// Field returns one accumulated flat value
func (d Draft) Field(name string) string {
	return d.fields[name]
}

// Assemble is a pure function from the accumulated state to the submission
// payload, building the nested qualification blocks from the flat step inputs
func (d Draft) Assemble() *models.Teacher {
	f := d.Field

	return &models.Teacher{
		AadharNumber: f("aadhar_number"),
		ProfilePic:   f("profilePic"),

		FullName:                 f("full_name"),
		Email:                    f("email"),
		Phone:                    f("phone"),
		DateOfBirth:              f("date_of_birth"),
		Gender:                   f("gender"),
		BloodGroup:               f("blood_group"),
		EmergencyContactName:     f("emergency_contact_name"),
		EmergencyContactRelation: f("emergency_contact_relation"),
		EmergencyContactMobile:   f("emergency_contact_mobile"),

		Street:  f("street"),
		Pincode: f("pincode"),
		State:   f("state"),

		Tenth: models.SchoolQualification{
			Board:       f("tenth_board"),
			Year:        f("tenth_year"),
			Percentage:  f("tenth_percentage"),
			Certificate: f("tenth_certificate"),
		},
		Twelfth: models.SchoolQualification{
			Board:       f("twelfth_board"),
			Year:        f("twelfth_year"),
			Percentage:  f("twelfth_percentage"),
			Certificate: f("twelfth_certificate"),
		},
		UG: models.DegreeQualification{
			Degree:      f("ug_degree"),
			University:  f("ug_university"),
			Year:        f("ug_year"),
			Percentage:  f("ug_percentage"),
			Certificate: f("ug_certificate"),
		},
		PG: append([]models.DegreeQualification(nil), d.pg...),
		Bed: models.SchoolQualification{
			Board:       f("bed_board"),
			Year:        f("bed_year"),
			Percentage:  f("bed_percentage"),
			Certificate: f("bed_certificate"),
		},
		Med: models.SchoolQualification{
			Board:       f("med_board"),
			Year:        f("med_year"),
			Percentage:  f("med_percentage"),
			Certificate: f("med_certificate"),
		},

		PreviousSchoolName:     f("previous_school_name"),
		PreviousClassesTaught:  append([]string(nil), d.previousClasses...),
		PreviousSubjectsTaught: append([]string(nil), d.previousSubjects...),

		CurrentSchool:  f("current_school"),
		CurrentBranch:  f("current_branch"),
		CurrentClass:   f("current_class"),
		CurrentSubject: f("current_subject"),

		BankName:      f("bank_name"),
		AccountNumber: f("account_number"),
		IFSCCode:      f("ifsc_code"),
		PANNumber:     f("pan_number"),
		PFNumber:      f("pf_number"),
		ESINumber:     f("esi_number"),
	}
}
