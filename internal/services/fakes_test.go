package services

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/campusbridge/campus-bridge/internal/data/repos"
	types "github.com/campusbridge/campus-bridge/internal/domain"
)

// fakeCourseRepo keeps students as a slice so duplicate inserts would show.
type fakeCourseRepo struct {
	courses  map[uuid.UUID]*types.Course
	students map[uuid.UUID][]uuid.UUID
	err      error
	writes   int
	// raceOnAdd simulates another request inserting between check and write.
	raceOnAdd bool
}

func newFakeCourseRepo(courses ...*types.Course) *fakeCourseRepo {
	r := &fakeCourseRepo{courses: map[uuid.UUID]*types.Course{}, students: map[uuid.UUID][]uuid.UUID{}}
	for _, c := range courses {
		r.courses[c.ID] = c
	}
	return r
}

func (r *fakeCourseRepo) Create(_ context.Context, _ *gorm.DB, courses []*types.Course) ([]*types.Course, error) {
	for _, c := range courses {
		r.courses[c.ID] = c
	}
	return courses, r.err
}

func (r *fakeCourseRepo) GetByIDs(_ context.Context, _ *gorm.DB, ids []uuid.UUID) ([]*types.Course, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*types.Course
	for _, id := range ids {
		if c, ok := r.courses[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCourseRepo) GetByTitleAndInstructor(_ context.Context, _ *gorm.DB, title string, instructorID uuid.UUID) (*types.Course, error) {
	for _, c := range r.courses {
		if c.Title == title && c.InstructorID == instructorID {
			return c, nil
		}
	}
	return nil, r.err
}

func (r *fakeCourseRepo) ListEnrolled(_ context.Context, _ *gorm.DB, studentID uuid.UUID, _ repos.InstructorProjection) ([]*types.Course, error) {
	return r.filter(func(c *types.Course) bool { return r.has(c.ID, studentID) })
}

func (r *fakeCourseRepo) ListNotEnrolled(_ context.Context, _ *gorm.DB, studentID uuid.UUID, _ repos.InstructorProjection) ([]*types.Course, error) {
	return r.filter(func(c *types.Course) bool { return !r.has(c.ID, studentID) })
}

func (r *fakeCourseRepo) GetEnrolled(_ context.Context, _ *gorm.DB, courseID, studentID uuid.UUID, _ repos.InstructorProjection) (*types.Course, error) {
	if r.err != nil {
		return nil, r.err
	}
	c, ok := r.courses[courseID]
	if !ok || !r.has(courseID, studentID) {
		return nil, nil
	}
	return c, nil
}

func (r *fakeCourseRepo) IsEnrolled(_ context.Context, _ *gorm.DB, courseID, studentID uuid.UUID) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	return r.has(courseID, studentID), nil
}

func (r *fakeCourseRepo) AddStudent(_ context.Context, _ *gorm.DB, courseID, studentID uuid.UUID) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	if r.raceOnAdd {
		r.students[courseID] = append(r.students[courseID], studentID)
	}
	if r.has(courseID, studentID) {
		return false, nil
	}
	r.writes++
	r.students[courseID] = append(r.students[courseID], studentID)
	return true, nil
}

func (r *fakeCourseRepo) StudentIDs(_ context.Context, _ *gorm.DB, courseID uuid.UUID) ([]uuid.UUID, error) {
	if r.err != nil {
		return nil, r.err
	}
	return append([]uuid.UUID(nil), r.students[courseID]...), nil
}

func (r *fakeCourseRepo) has(courseID, studentID uuid.UUID) bool {
	for _, id := range r.students[courseID] {
		if id == studentID {
			return true
		}
	}
	return false
}

func (r *fakeCourseRepo) filter(keep func(*types.Course) bool) ([]*types.Course, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*types.Course
	for _, c := range r.courses {
		if keep(c) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*types.User
	err   error
}

func newFakeUserRepo(users ...*types.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[uuid.UUID]*types.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, _ *gorm.DB, users []*types.User) ([]*types.User, error) {
	for _, u := range users {
		r.users[u.ID] = u
	}
	return users, r.err
}

func (r *fakeUserRepo) GetByIDs(_ context.Context, _ *gorm.DB, ids []uuid.UUID) ([]*types.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*types.User
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) GetByEmails(_ context.Context, _ *gorm.DB, emails []string) ([]*types.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*types.User
	for _, e := range emails {
		for _, u := range r.users {
			if u.Email == e {
				out = append(out, u)
			}
		}
	}
	return out, nil
}

func (r *fakeUserRepo) EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error) {
	users, err := r.GetByEmails(ctx, tx, []string{email})
	return len(users) > 0, err
}

type fakeRevoker struct {
	revoked map[string]time.Time
	err     error
}

func newFakeRevoker() *fakeRevoker { return &fakeRevoker{revoked: map[string]time.Time{}} }

func (f *fakeRevoker) Revoke(_ context.Context, tokenID string, expiresAt time.Time) error {
	if f.err != nil {
		return f.err
	}
	f.revoked[tokenID] = expiresAt
	return nil
}

func (f *fakeRevoker) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.revoked[tokenID]
	return ok, nil
}
