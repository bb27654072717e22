package services

import (
	"edureg/models"
	teacherValidator "edureg/validators/teacher"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeacherService orchestrates the application record lifecycle against the
// persistence layer. Validation and the duplicate check run before any write;
// the unique index on aadhar_number is the final arbiter for races.
type TeacherService struct {
	Db *gorm.DB
}

func NewTeacherService(db *gorm.DB) *TeacherService {
	return &TeacherService{Db: db}
}

// Submit validates and persists a new application with status pending
func (s *TeacherService) Submit(teacher *models.Teacher) (*models.Teacher, error) {
	if fields := teacherValidator.ValidateTeacher(teacher); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	// Authoritative duplicate check at commit time. An advisory check may have
	// reported "available" earlier; recheck so the common case fails cleanly
	// before the insert even reaches the constraint.
	exists, err := s.Exists(teacher.AadharNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateIdentity
	}

	teacher.ID = ""
	teacher.Status = models.StatusPending
	teacher.CreatedAt = time.Time{} // stamped by autoCreateTime

	if err := s.Db.Create(teacher).Error; err != nil {
		// Two concurrent submissions can both pass the recheck; the unique
		// index rejects the loser and that rejection is still a duplicate,
		// not a persistence failure.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateIdentity
		}
		return nil, err
	}

	return teacher, nil
}

// List returns all applications, newest first
func (s *TeacherService) List() ([]models.Teacher, error) {
	var teachers []models.Teacher
	if err := s.Db.Order("created_at DESC").Find(&teachers).Error; err != nil {
		return nil, err
	}
	return teachers, nil
}

// Get returns one application by its record identifier
func (s *TeacherService) Get(id string) (*models.Teacher, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidIdentifier
	}

	var teacher models.Teacher
	if err := s.Db.Where("id = ?", id).First(&teacher).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &teacher, nil
}

// Update merges the given partial JSON payload into the existing record and
// re-validates the merged result. The identity key, review status and creation
// time never change through this path.
func (s *TeacherService) Update(id string, patch []byte) (*models.Teacher, error) {
	teacher, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	aadhar := teacher.AadharNumber
	status := teacher.Status
	createdAt := teacher.CreatedAt
	recordID := teacher.ID

	if err := json.Unmarshal(patch, teacher); err != nil {
		return nil, &ValidationError{Fields: map[string]string{"body": "Invalid request body!"}}
	}

	teacher.AadharNumber = aadhar
	teacher.Status = status
	teacher.CreatedAt = createdAt
	teacher.ID = recordID

	if fields := teacherValidator.ValidateTeacher(teacher); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	if err := s.Db.Save(teacher).Error; err != nil {
		return nil, err
	}
	return teacher, nil
}

// SetStatus applies an explicit review decision. Any status is reachable from
// any other and repeating a decision is a no-op success. The previous status
// is returned so callers can react to actual transitions only.
func (s *TeacherService) SetStatus(id, status string) (*models.Teacher, string, error) {
	if !models.IsValidStatus(status) {
		return nil, "", &ValidationError{Fields: map[string]string{
			"status": "Status must be one of pending, approved, rejected",
		}}
	}

	teacher, err := s.Get(id)
	if err != nil {
		return nil, "", err
	}

	previous := teacher.Status
	if previous == status {
		return teacher, previous, nil
	}

	if err := s.Db.Model(teacher).Update("status", status).Error; err != nil {
		return nil, "", err
	}
	teacher.Status = status

	return teacher, previous, nil
}

// Remove permanently deletes an application
func (s *TeacherService) Remove(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidIdentifier
	}

	result := s.Db.Where("id = ?", id).Delete(&models.Teacher{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Exists reports whether an application with the given Aadhar number is registered
func (s *TeacherService) Exists(aadhar string) (bool, error) {
	var count int64
	if err := s.Db.Model(&models.Teacher{}).Where("aadhar_number = ?", aadhar).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
