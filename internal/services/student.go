package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/campusbridge/campus-bridge/internal/data/repos"
	types "github.com/campusbridge/campus-bridge/internal/domain"
	"github.com/campusbridge/campus-bridge/internal/platform/apierr"
	"github.com/campusbridge/campus-bridge/internal/platform/logger"
)

func errCourseNotFound() *apierr.Error {
	return apierr.NotFound("course_not_found", "Course not found")
}

type CourseDetail struct {
	Course        *types.Course
	EnrolledCount int
}

type StudentService interface {
	Dashboard(ctx context.Context, studentID uuid.UUID) ([]*types.Course, error)
	AvailableCourses(ctx context.Context, studentID uuid.UUID) ([]*types.Course, error)
	Enroll(ctx context.Context, courseID, studentID uuid.UUID) error
	CourseDetail(ctx context.Context, courseID, studentID uuid.UUID) (*CourseDetail, error)
}

type studentService struct {
	log        *logger.Logger
	courseRepo repos.CourseRepo
}

func NewStudentService(baseLog *logger.Logger, courseRepo repos.CourseRepo) StudentService {
	return &studentService{
		log:        baseLog.With("service", "StudentService"),
		courseRepo: courseRepo,
	}
}

func (s *studentService) Dashboard(ctx context.Context, studentID uuid.UUID) ([]*types.Course, error) {
	courses, err := s.courseRepo.ListEnrolled(ctx, nil, studentID, repos.ProjectInstructorName)
	if err != nil {
		return nil, apierr.Internal("load_enrolled_courses_failed", fmt.Errorf("list enrolled courses: %w", err))
	}
	return courses, nil
}

func (s *studentService) AvailableCourses(ctx context.Context, studentID uuid.UUID) ([]*types.Course, error) {
	courses, err := s.courseRepo.ListNotEnrolled(ctx, nil, studentID, repos.ProjectInstructorName)
	if err != nil {
		return nil, apierr.Internal("load_available_courses_failed", fmt.Errorf("list available courses: %w", err))
	}
	return courses, nil
}

// Enroll adds studentID to the course's students set. A student already in
// the set gets KindAlreadyEnrolled and nothing is written; the insert itself
// is conditional, so a concurrent duplicate lands on the same error.
func (s *studentService) Enroll(ctx context.Context, courseID, studentID uuid.UUID) error {
	courses, err := s.courseRepo.GetByIDs(ctx, nil, []uuid.UUID{courseID})
	if err != nil {
		return apierr.Internal("load_course_failed", fmt.Errorf("load course: %w", err))
	}
	if len(courses) == 0 || courses[0] == nil {
		return errCourseNotFound()
	}

	enrolled, err := s.courseRepo.IsEnrolled(ctx, nil, courseID, studentID)
	if err != nil {
		return apierr.Internal("check_enrollment_failed", fmt.Errorf("check enrollment: %w", err))
	}
	if enrolled {
		return apierr.AlreadyEnrolled()
	}

	added, err := s.courseRepo.AddStudent(ctx, nil, courseID, studentID)
	if err != nil {
		return apierr.Internal("enroll_failed", fmt.Errorf("add student: %w", err))
	}
	if !added {
		s.log.Warn("Concurrent enrollment lost race", "course_id", courseID, "student_id", studentID)
		return apierr.AlreadyEnrolled()
	}

	s.log.Info("Student enrolled", "course_id", courseID, "student_id", studentID)
	return nil
}

func (s *studentService) CourseDetail(ctx context.Context, courseID, studentID uuid.UUID) (*CourseDetail, error) {
	course, err := s.courseRepo.GetEnrolled(ctx, nil, courseID, studentID, repos.ProjectInstructorName)
	if err != nil {
		return nil, apierr.Internal("load_course_failed", fmt.Errorf("load enrolled course: %w", err))
	}
	if course == nil {
		return nil, errCourseNotFound()
	}
	students, err := s.courseRepo.StudentIDs(ctx, nil, courseID)
	if err != nil {
		return nil, apierr.Internal("load_course_students_failed", fmt.Errorf("list course students: %w", err))
	}
	return &CourseDetail{Course: course, EnrolledCount: len(students)}, nil
}
