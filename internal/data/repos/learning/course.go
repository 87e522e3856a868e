package learning

import (
	"context"
	"errors"

	"github.com/google/uuid"
	types "github.com/campusbridge/campus-bridge/internal/domain"
	"github.com/campusbridge/campus-bridge/internal/platform/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InstructorProjection narrows the populated instructor to the columns a view
// needs. A nil projection leaves the instructor unloaded.
type InstructorProjection func(*gorm.DB) *gorm.DB

// ProjectInstructorName loads only the instructor's display name.
var ProjectInstructorName InstructorProjection = func(db *gorm.DB) *gorm.DB {
	return db.Select("id", "first_name", "last_name")
}

type CourseRepo interface {
	Create(ctx context.Context, tx *gorm.DB, courses []*types.Course) ([]*types.Course, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, courseIDs []uuid.UUID) ([]*types.Course, error)
	GetByTitleAndInstructor(ctx context.Context, tx *gorm.DB, title string, instructorID uuid.UUID) (*types.Course, error)
	ListEnrolled(ctx context.Context, tx *gorm.DB, studentID uuid.UUID, proj InstructorProjection) ([]*types.Course, error)
	ListNotEnrolled(ctx context.Context, tx *gorm.DB, studentID uuid.UUID, proj InstructorProjection) ([]*types.Course, error)
	GetEnrolled(ctx context.Context, tx *gorm.DB, courseID, studentID uuid.UUID, proj InstructorProjection) (*types.Course, error)
	IsEnrolled(ctx context.Context, tx *gorm.DB, courseID, studentID uuid.UUID) (bool, error)
	AddStudent(ctx context.Context, tx *gorm.DB, courseID, studentID uuid.UUID) (bool, error)
	StudentIDs(ctx context.Context, tx *gorm.DB, courseID uuid.UUID) ([]uuid.UUID, error)
}

type courseRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCourseRepo(db *gorm.DB, baseLog *logger.Logger) CourseRepo {
	repoLog := baseLog.With("repo", "CourseRepo")
	return &courseRepo{db: db, log: repoLog}
}

func (r *courseRepo) conn(ctx context.Context, tx *gorm.DB) *gorm.DB {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx)
}

func (r *courseRepo) Create(ctx context.Context, tx *gorm.DB, courses []*types.Course) ([]*types.Course, error) {
	if len(courses) == 0 {
		return []*types.Course{}, nil
	}
	if err := r.conn(ctx, tx).Omit("Instructor", "Enrollments").Create(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *courseRepo) GetByIDs(ctx context.Context, tx *gorm.DB, courseIDs []uuid.UUID) ([]*types.Course, error) {
	var results []*types.Course
	if len(courseIDs) == 0 {
		return results, nil
	}
	if err := r.conn(ctx, tx).
		Where("id IN ?", courseIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *courseRepo) GetByTitleAndInstructor(ctx context.Context, tx *gorm.DB, title string, instructorID uuid.UUID) (*types.Course, error) {
	var course types.Course
	err := r.conn(ctx, tx).
		Where("title = ? AND instructor_id = ?", title, instructorID).
		First(&course).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// ListEnrolled returns courses whose students set contains studentID.
func (r *courseRepo) ListEnrolled(ctx context.Context, tx *gorm.DB, studentID uuid.UUID, proj InstructorProjection) ([]*types.Course, error) {
	db := r.conn(ctx, tx)
	var results []*types.Course
	if err := withInstructor(db, proj).
		Where("id IN (?)", enrolledCourseIDs(db, studentID)).
		Order("title ASC, id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// ListNotEnrolled is the complement of ListEnrolled over live courses.
func (r *courseRepo) ListNotEnrolled(ctx context.Context, tx *gorm.DB, studentID uuid.UUID, proj InstructorProjection) ([]*types.Course, error) {
	db := r.conn(ctx, tx)
	var results []*types.Course
	if err := withInstructor(db, proj).
		Where("id NOT IN (?)", enrolledCourseIDs(db, studentID)).
		Order("title ASC, id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// GetEnrolled matches id and membership in one query; nil means either the
// course does not exist or studentID is not enrolled.
func (r *courseRepo) GetEnrolled(ctx context.Context, tx *gorm.DB, courseID, studentID uuid.UUID, proj InstructorProjection) (*types.Course, error) {
	db := r.conn(ctx, tx)
	var course types.Course
	err := withInstructor(db, proj).
		Where("id = ?", courseID).
		Where("id IN (?)", enrolledCourseIDs(db, studentID)).
		First(&course).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepo) IsEnrolled(ctx context.Context, tx *gorm.DB, courseID, studentID uuid.UUID) (bool, error) {
	var n int64
	if err := r.conn(ctx, tx).
		Model(&types.CourseStudent{}).
		Where("course_id = ? AND user_id = ?", courseID, studentID).
		Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// AddStudent inserts the membership row unless it already exists. It reports
// false when another writer got there first.
func (r *courseRepo) AddStudent(ctx context.Context, tx *gorm.DB, courseID, studentID uuid.UUID) (bool, error) {
	row := &types.CourseStudent{CourseID: courseID, UserID: studentID}
	res := r.conn(ctx, tx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(row)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *courseRepo) StudentIDs(ctx context.Context, tx *gorm.DB, courseID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.conn(ctx, tx).
		Model(&types.CourseStudent{}).
		Where("course_id = ?", courseID).
		Order("created_at ASC").
		Pluck("user_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func enrolledCourseIDs(db *gorm.DB, studentID uuid.UUID) *gorm.DB {
	return db.Session(&gorm.Session{NewDB: true}).
		Model(&types.CourseStudent{}).
		Select("course_id").
		Where("user_id = ?", studentID)
}

func withInstructor(db *gorm.DB, proj InstructorProjection) *gorm.DB {
	if proj == nil {
		return db
	}
	return db.Preload("Instructor", func(q *gorm.DB) *gorm.DB { return proj(q) })
}
