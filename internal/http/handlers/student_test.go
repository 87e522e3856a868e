package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/campusbridge/campus-bridge/internal/domain"
	"github.com/campusbridge/campus-bridge/internal/http/views"
	"github.com/campusbridge/campus-bridge/internal/platform/apierr"
	"github.com/campusbridge/campus-bridge/internal/platform/ctxutil"
	"github.com/campusbridge/campus-bridge/internal/platform/logger"
	"github.com/campusbridge/campus-bridge/internal/services"
)

type fakeStudentService struct {
	courses     []*domain.Course
	detail      *services.CourseDetail
	err         error
	enrollCalls int
	lastCourse  uuid.UUID
	lastStudent uuid.UUID
}

func (f *fakeStudentService) Dashboard(ctx context.Context, studentID uuid.UUID) ([]*domain.Course, error) {
	f.lastStudent = studentID
	return f.courses, f.err
}

func (f *fakeStudentService) AvailableCourses(ctx context.Context, studentID uuid.UUID) ([]*domain.Course, error) {
	f.lastStudent = studentID
	return f.courses, f.err
}

func (f *fakeStudentService) Enroll(ctx context.Context, courseID, studentID uuid.UUID) error {
	f.enrollCalls++
	f.lastCourse = courseID
	f.lastStudent = studentID
	return f.err
}

func (f *fakeStudentService) CourseDetail(ctx context.Context, courseID, studentID uuid.UUID) (*services.CourseDetail, error) {
	f.lastCourse = courseID
	f.lastStudent = studentID
	if f.err != nil {
		return nil, f.err
	}
	return f.detail, nil
}

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	t.Cleanup(log.Sync)
	return log
}

func withIdentity(id *ctxutil.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(ctxutil.WithIdentity(c.Request.Context(), id))
		c.Next()
	}
}

func newStudentRouter(t *testing.T, svc services.StudentService, id *ctxutil.Identity) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	tmpl, err := views.Load()
	if err != nil {
		t.Fatalf("load templates: %v", err)
	}
	h := NewStudentHandler(newTestLogger(t), svc)
	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(withIdentity(id))
	r.GET("/student/dashboard", h.Dashboard)
	r.GET("/student/courses", h.Courses)
	r.POST("/student/courses/:id/enroll", h.Enroll)
	r.GET("/student/courses/:id", h.CourseDetail)
	return r
}

func studentIdentity() *ctxutil.Identity {
	return &ctxutil.Identity{UserID: uuid.New(), Role: domain.RoleStudent, FirstName: "Ada", LastName: "Lovelace"}
}

func serve(r http.Handler, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestDashboardRendersEnrolledCourses(t *testing.T) {
	id := studentIdentity()
	svc := &fakeStudentService{courses: []*domain.Course{
		{ID: uuid.New(), Title: "Linear Algebra", Instructor: &domain.User{FirstName: "Grace", LastName: "Hopper"}},
	}}
	r := newStudentRouter(t, svc, id)

	rec := serve(r, http.MethodGet, "/student/dashboard")

	if rec.Code != http.StatusOK {
		t.Fatalf("status: want=200 got=%d body=%s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	for _, want := range []string{"Student Dashboard - Campus Bridge", "Linear Algebra", "Grace Hopper"} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q", want)
		}
	}
	if svc.lastStudent != id.UserID {
		t.Fatalf("service called with wrong student id")
	}
}

func TestCoursesTitle(t *testing.T) {
	r := newStudentRouter(t, &fakeStudentService{}, studentIdentity())

	rec := serve(r, http.MethodGet, "/student/courses")

	if rec.Code != http.StatusOK {
		t.Fatalf("status: want=200 got=%d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Available Courses - Campus Bridge") {
		t.Fatalf("title missing from courses page")
	}
}

func TestStoreFailureIsGeneric500(t *testing.T) {
	svc := &fakeStudentService{err: apierr.Internal("load_enrolled_courses_failed", errors.New("pq: connection refused"))}
	r := newStudentRouter(t, svc, studentIdentity())

	for _, path := range []string{"/student/dashboard", "/student/courses"} {
		rec := serve(r, http.MethodGet, path)
		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("%s status: want=500 got=%d", path, rec.Code)
		}
		if rec.Body.String() != "Server Error" {
			t.Fatalf("%s body leaked detail: %q", path, rec.Body.String())
		}
	}
}

func TestEnrollRedirectsToDashboard(t *testing.T) {
	id := studentIdentity()
	svc := &fakeStudentService{}
	r := newStudentRouter(t, svc, id)
	courseID := uuid.New()

	rec := serve(r, http.MethodPost, "/student/courses/"+courseID.String()+"/enroll")

	if rec.Code != http.StatusFound {
		t.Fatalf("status: want=302 got=%d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/student/dashboard" {
		t.Fatalf("location: got=%q", loc)
	}
	if svc.lastCourse != courseID || svc.lastStudent != id.UserID {
		t.Fatalf("enroll called with wrong ids")
	}
}

func TestEnrollErrorStatuses(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"unknown course", apierr.NotFound("course_not_found", "Course not found"), http.StatusNotFound, "Course not found"},
		{"already enrolled", apierr.AlreadyEnrolled(), http.StatusBadRequest, "Already enrolled"},
		{"store failure", errors.New("boom"), http.StatusInternalServerError, "Server Error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newStudentRouter(t, &fakeStudentService{err: tc.err}, studentIdentity())
			rec := serve(r, http.MethodPost, "/student/courses/"+uuid.NewString()+"/enroll")
			if rec.Code != tc.status {
				t.Fatalf("status: want=%d got=%d", tc.status, rec.Code)
			}
			if rec.Body.String() != tc.body {
				t.Fatalf("body: want=%q got=%q", tc.body, rec.Body.String())
			}
		})
	}
}

func TestMalformedCourseIDIsNotFound(t *testing.T) {
	svc := &fakeStudentService{}
	r := newStudentRouter(t, svc, studentIdentity())

	rec := serve(r, http.MethodPost, "/student/courses/not-a-uuid/enroll")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("enroll status: want=404 got=%d", rec.Code)
	}
	rec = serve(r, http.MethodGet, "/student/courses/not-a-uuid")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("detail status: want=404 got=%d", rec.Code)
	}
	if svc.enrollCalls != 0 {
		t.Fatalf("service must not be reached, enrollCalls=%d", svc.enrollCalls)
	}
}

func TestCourseDetailRendersCourse(t *testing.T) {
	course := &domain.Course{
		ID:          uuid.New(),
		Title:       "Compilers",
		Description: "Lexing to codegen.",
		Syllabus:    domain.SyllabusJSON([]string{"Lexing", "Parsing"}),
		Instructor:  &domain.User{FirstName: "Grace", LastName: "Hopper"},
		CreatedAt:   time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC),
	}
	svc := &fakeStudentService{detail: &services.CourseDetail{Course: course, EnrolledCount: 1}}
	r := newStudentRouter(t, svc, studentIdentity())

	rec := serve(r, http.MethodGet, "/student/courses/"+course.ID.String())

	if rec.Code != http.StatusOK {
		t.Fatalf("status: want=200 got=%d body=%s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	for _, want := range []string{"Compilers - Campus Bridge", "Grace Hopper", "Parsing", "1 student enrolled", "Jan 12, 2026"} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q", want)
		}
	}
}
