package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Review status values for a teacher application
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// IsValidStatus reports whether s is one of the review statuses
func IsValidStatus(s string) bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// SchoolQualification is a board-based credential (10th, 12th, B.Ed, M.Ed)
type SchoolQualification struct {
	Board       string `json:"board" gorm:"default:''"`
	Year        string `json:"year" gorm:"default:''"`
	Percentage  string `json:"percentage" gorm:"default:''"`
	Certificate string `json:"certificate" gorm:"default:''"` // hosted file URL
}

// DegreeQualification is a university credential (UG, PG entries)
type DegreeQualification struct {
	Degree      string `json:"degree" gorm:"default:''"`
	University  string `json:"university" gorm:"default:''"`
	Year        string `json:"year" gorm:"default:''"`
	Percentage  string `json:"percentage" gorm:"default:''"`
	Certificate string `json:"certificate" gorm:"default:''"`
}

// Teacher is one registration submission and its review status
type Teacher struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`

	// Unique identifier, immutable after creation
	AadharNumber string `json:"aadhar_number" gorm:"uniqueIndex;not null"`

	// Profile
	ProfilePic string `json:"profilePic" gorm:"default:''"`

	// Personal Information
	FullName                 string `json:"full_name" gorm:"not null"`
	Email                    string `json:"email" gorm:"not null"`
	Phone                    string `json:"phone" gorm:"not null"`
	DateOfBirth              string `json:"date_of_birth" gorm:"not null"`
	Gender                   string `json:"gender" gorm:"not null"`
	BloodGroup               string `json:"blood_group" gorm:"default:''"`
	EmergencyContactName     string `json:"emergency_contact_name" gorm:"default:''"`
	EmergencyContactRelation string `json:"emergency_contact_relation" gorm:"default:''"`
	EmergencyContactMobile   string `json:"emergency_contact_mobile" gorm:"default:''"`

	// Address
	Street  string `json:"street" gorm:"not null"`
	Pincode string `json:"pincode" gorm:"not null"`
	State   string `json:"state" gorm:"not null"`

	// Educational Qualifications
	Tenth   SchoolQualification                      `json:"tenth" gorm:"embedded;embeddedPrefix:tenth_"`
	Twelfth SchoolQualification                      `json:"twelfth" gorm:"embedded;embeddedPrefix:twelfth_"`
	UG      DegreeQualification                      `json:"ug" gorm:"embedded;embeddedPrefix:ug_"`
	PG      datatypes.JSONSlice[DegreeQualification] `json:"pg"`

	// Professional Qualifications
	Bed SchoolQualification `json:"bed" gorm:"embedded;embeddedPrefix:bed_"`
	Med SchoolQualification `json:"med" gorm:"embedded;embeddedPrefix:med_"`

	// Previous Employment
	PreviousSchoolName     string                      `json:"previous_school_name" gorm:"default:''"`
	PreviousClassesTaught  datatypes.JSONSlice[string] `json:"previous_classes_taught"`
	PreviousSubjectsTaught datatypes.JSONSlice[string] `json:"previous_subjects_taught"`

	// Current School Details
	CurrentSchool  string `json:"current_school" gorm:"not null"`
	CurrentBranch  string `json:"current_branch" gorm:"not null"`
	CurrentClass   string `json:"current_class" gorm:"default:''"`
	CurrentSubject string `json:"current_subject" gorm:"default:''"`

	// Bank & Official Details
	BankName      string `json:"bank_name" gorm:"not null"`
	AccountNumber string `json:"account_number" gorm:"not null"`
	IFSCCode      string `json:"ifsc_code" gorm:"not null"`
	PANNumber     string `json:"pan_number" gorm:"not null"`
	PFNumber      string `json:"pf_number" gorm:"default:''"`
	ESINumber     string `json:"esi_number" gorm:"default:''"`

	// Review status
	Status string `json:"status" gorm:"default:'pending'"`
}

// BeforeCreate assigns the generated record identifier
func (t *Teacher) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
