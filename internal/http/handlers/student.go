package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/campusbridge/campus-bridge/internal/http/response"
	"github.com/campusbridge/campus-bridge/internal/platform/apierr"
	"github.com/campusbridge/campus-bridge/internal/platform/ctxutil"
	"github.com/campusbridge/campus-bridge/internal/platform/logger"
	"github.com/campusbridge/campus-bridge/internal/services"
)

const (
	siteName      = "Campus Bridge"
	dashboardPath = "/student/dashboard"
)

func pageTitle(name string) string {
	return name + " - " + siteName
}

// StudentHandler serves the /student group. Every route sits behind
// AuthMiddleware.RequireStudent, so the identity is always present here.
type StudentHandler struct {
	log            *logger.Logger
	studentService services.StudentService
}

func NewStudentHandler(log *logger.Logger, studentService services.StudentService) *StudentHandler {
	return &StudentHandler{
		log:            log.With("handler", "StudentHandler"),
		studentService: studentService,
	}
}

// GET /student/dashboard
func (h *StudentHandler) Dashboard(c *gin.Context) {
	id := ctxutil.GetIdentity(c.Request.Context())
	courses, err := h.studentService.Dashboard(c.Request.Context(), id.UserID)
	if err != nil {
		response.Fail(c, h.log, err)
		return
	}
	response.Page(c, http.StatusOK, "student/dashboard", gin.H{
		"title":   pageTitle("Student Dashboard"),
		"user":    id,
		"courses": courses,
	})
}

// GET /student/courses
func (h *StudentHandler) Courses(c *gin.Context) {
	id := ctxutil.GetIdentity(c.Request.Context())
	courses, err := h.studentService.AvailableCourses(c.Request.Context(), id.UserID)
	if err != nil {
		response.Fail(c, h.log, err)
		return
	}
	response.Page(c, http.StatusOK, "student/courses", gin.H{
		"title":   pageTitle("Available Courses"),
		"user":    id,
		"courses": courses,
	})
}

// POST /student/courses/:id/enroll
func (h *StudentHandler) Enroll(c *gin.Context) {
	id := ctxutil.GetIdentity(c.Request.Context())
	// Unparseable ids are reported as an unknown course.
	courseID, ok := h.courseIDParam(c)
	if !ok {
		return
	}
	if err := h.studentService.Enroll(c.Request.Context(), courseID, id.UserID); err != nil {
		response.Fail(c, h.log, err)
		return
	}
	response.Redirect(c, dashboardPath)
}

// GET /student/courses/:id
func (h *StudentHandler) CourseDetail(c *gin.Context) {
	id := ctxutil.GetIdentity(c.Request.Context())
	// Unparseable ids are reported as an unknown course.
	courseID, ok := h.courseIDParam(c)
	if !ok {
		return
	}
	detail, err := h.studentService.CourseDetail(c.Request.Context(), courseID, id.UserID)
	if err != nil {
		response.Fail(c, h.log, err)
		return
	}
	response.Page(c, http.StatusOK, "student/course-details", gin.H{
		"title":         pageTitle(detail.Course.Title),
		"user":          id,
		"course":        detail.Course,
		"enrolledCount": detail.EnrolledCount,
	})
}

// courseIDParam answers 404 for ids that cannot name a course.
func (h *StudentHandler) courseIDParam(c *gin.Context) (uuid.UUID, bool) {
	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil || courseID == uuid.Nil {
		response.Fail(c, h.log, apierr.NotFound("course_not_found", "Course not found"))
		return uuid.Nil, false
	}
	return courseID, true
}
