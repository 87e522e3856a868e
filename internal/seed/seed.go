package seed

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/campusbridge/campus-bridge/internal/data/repos"
	types "github.com/campusbridge/campus-bridge/internal/domain"
	"github.com/campusbridge/campus-bridge/internal/platform/logger"
	"github.com/campusbridge/campus-bridge/internal/services"
)

type Result struct {
	UsersCreated     int
	CoursesCreated   int
	EnrollmentsAdded int
}

type Seeder struct {
	log        *logger.Logger
	db         *gorm.DB
	userRepo   repos.UserRepo
	courseRepo repos.CourseRepo
}

func NewSeeder(log *logger.Logger, db *gorm.DB, userRepo repos.UserRepo, courseRepo repos.CourseRepo) *Seeder {
	return &Seeder{
		log:        log.With("service", "Seeder"),
		db:         db,
		userRepo:   userRepo,
		courseRepo: courseRepo,
	}
}

// Apply writes the fixture in one transaction. Rows that already exist
// (users by email, courses by title and instructor, memberships) are left
// alone, so applying the same fixture twice is a no-op.
func (s *Seeder) Apply(ctx context.Context, fx *Fixture) (Result, error) {
	var res Result
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, u := range fx.Users {
			created, err := s.ensureUser(ctx, tx, u)
			if err != nil {
				return err
			}
			if created {
				res.UsersCreated++
			}
		}
		for _, c := range fx.Courses {
			created, added, err := s.ensureCourse(ctx, tx, c)
			if err != nil {
				return err
			}
			if created {
				res.CoursesCreated++
			}
			res.EnrollmentsAdded += added
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}
	s.log.Info("Seed applied",
		"users_created", res.UsersCreated,
		"courses_created", res.CoursesCreated,
		"enrollments_added", res.EnrollmentsAdded,
	)
	return res, nil
}

func (s *Seeder) ensureUser(ctx context.Context, tx *gorm.DB, u UserFixture) (bool, error) {
	exists, err := s.userRepo.EmailExists(ctx, tx, u.Email)
	if err != nil {
		return false, fmt.Errorf("check user %s: %w", u.Email, err)
	}
	if exists {
		return false, nil
	}
	hash, err := services.HashPassword(u.Password)
	if err != nil {
		return false, err
	}
	_, err = s.userRepo.Create(ctx, tx, []*types.User{{
		Email:     u.Email,
		Password:  hash,
		Role:      types.ParseRole(u.Role),
		FirstName: strings.TrimSpace(u.FirstName),
		LastName:  strings.TrimSpace(u.LastName),
	}})
	if err != nil {
		return false, fmt.Errorf("create user %s: %w", u.Email, err)
	}
	return true, nil
}

func (s *Seeder) ensureCourse(ctx context.Context, tx *gorm.DB, c CourseFixture) (bool, int, error) {
	instructor, err := s.userByEmail(ctx, tx, c.Instructor)
	if err != nil {
		return false, 0, err
	}
	if instructor.Role != types.RoleInstructor {
		return false, 0, fmt.Errorf("course %q: %s is not an instructor", c.Title, c.Instructor)
	}

	title := strings.TrimSpace(c.Title)
	course, err := s.courseRepo.GetByTitleAndInstructor(ctx, tx, title, instructor.ID)
	if err != nil {
		return false, 0, fmt.Errorf("look up course %q: %w", title, err)
	}
	created := false
	if course == nil {
		out, err := s.courseRepo.Create(ctx, tx, []*types.Course{{
			InstructorID: instructor.ID,
			Title:        title,
			Description:  strings.TrimSpace(c.Description),
			Syllabus:     types.SyllabusJSON(c.Syllabus),
		}})
		if err != nil {
			return false, 0, fmt.Errorf("create course %q: %w", title, err)
		}
		course = out[0]
		created = true
	}

	added := 0
	for _, email := range c.Students {
		student, err := s.userByEmail(ctx, tx, email)
		if err != nil {
			return false, 0, err
		}
		if student.Role != types.RoleStudent {
			return false, 0, fmt.Errorf("course %q: %s is not a student", title, email)
		}
		ok, err := s.courseRepo.AddStudent(ctx, tx, course.ID, student.ID)
		if err != nil {
			return false, 0, fmt.Errorf("enroll %s in %q: %w", email, title, err)
		}
		if ok {
			added++
		}
	}
	return created, added, nil
}

func (s *Seeder) userByEmail(ctx context.Context, tx *gorm.DB, email string) (*types.User, error) {
	users, err := s.userRepo.GetByEmails(ctx, tx, []string{email})
	if err != nil {
		return nil, fmt.Errorf("look up user %s: %w", email, err)
	}
	if len(users) == 0 || users[0] == nil {
		return nil, fmt.Errorf("unknown user %s", email)
	}
	return users[0], nil
}
