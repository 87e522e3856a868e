package learning

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/campusbridge/campus-bridge/internal/domain/user"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Course struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	InstructorID uuid.UUID  `gorm:"type:uuid;not null;index;column:instructor_id" json:"instructor_id"`
	Instructor   *user.User `gorm:"foreignKey:InstructorID;references:ID" json:"instructor,omitempty"`

	Title       string `gorm:"column:title;not null;index" json:"title"`
	Description string `gorm:"column:description;type:text" json:"description"`

	// Ordered section titles shown on the course page.
	Syllabus datatypes.JSON `gorm:"column:syllabus" json:"syllabus"`

	// Enrollments is the students set: one row per enrolled student.
	Enrollments []CourseStudent `gorm:"foreignKey:CourseID;references:ID" json:"-"`

	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Course) TableName() string { return "course" }

func (c *Course) BeforeCreate(*gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// SyllabusSections decodes Syllabus. Malformed or empty JSON yields nil.
func (c *Course) SyllabusSections() []string {
	if c == nil || len(c.Syllabus) == 0 {
		return nil
	}
	var sections []string
	if err := json.Unmarshal(c.Syllabus, &sections); err != nil {
		return nil
	}
	return sections
}

// InstructorName is the display name of the populated instructor, empty when
// the reference was not loaded.
func (c *Course) InstructorName() string {
	if c == nil {
		return ""
	}
	return c.Instructor.DisplayName()
}

func SyllabusJSON(sections []string) datatypes.JSON {
	if sections == nil {
		sections = []string{}
	}
	raw, _ := json.Marshal(sections)
	return datatypes.JSON(raw)
}
