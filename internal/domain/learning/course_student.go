package learning

import (
	"time"

	"github.com/google/uuid"
)

// CourseStudent records enrollment. The composite primary key keeps the
// students set free of duplicates.
type CourseStudent struct {
	CourseID  uuid.UUID `gorm:"type:uuid;primaryKey;column:course_id" json:"course_id"`
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey;column:user_id;index" json:"user_id"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (CourseStudent) TableName() string { return "course_student" }
