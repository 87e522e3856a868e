package testutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
	types "github.com/campusbridge/campus-bridge/internal/domain"
	"gorm.io/gorm"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, email string, role types.Role) *types.User {
	tb.Helper()
	u := &types.User{
		ID:        uuid.New(),
		Email:     email,
		Password:  "pw",
		Role:      role,
		FirstName: "A",
		LastName:  "B",
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedCourse(tb testing.TB, ctx context.Context, tx *gorm.DB, instructorID uuid.UUID, title string) *types.Course {
	tb.Helper()
	c := &types.Course{
		ID:           uuid.New(),
		InstructorID: instructorID,
		Title:        title,
		Description:  "description",
		Syllabus:     types.SyllabusJSON([]string{"Week 1"}),
	}
	if err := tx.WithContext(ctx).Omit("Instructor", "Enrollments").Create(c).Error; err != nil {
		tb.Fatalf("seed course: %v", err)
	}
	return c
}

func SeedEnrollment(tb testing.TB, ctx context.Context, tx *gorm.DB, courseID, studentID uuid.UUID) {
	tb.Helper()
	row := &types.CourseStudent{CourseID: courseID, UserID: studentID}
	if err := tx.WithContext(ctx).Create(row).Error; err != nil {
		tb.Fatalf("seed enrollment: %v", err)
	}
}
