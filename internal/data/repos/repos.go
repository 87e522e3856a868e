package repos

import (
	"github.com/campusbridge/campus-bridge/internal/data/repos/learning"
	"github.com/campusbridge/campus-bridge/internal/data/repos/user"
	"github.com/campusbridge/campus-bridge/internal/platform/logger"
	"gorm.io/gorm"
)

type UserRepo = user.UserRepo
type CourseRepo = learning.CourseRepo

type InstructorProjection = learning.InstructorProjection

var ProjectInstructorName = learning.ProjectInstructorName

func NewUserRepo(db *gorm.DB, log *logger.Logger) UserRepo {
	return user.NewUserRepo(db, log)
}

func NewCourseRepo(db *gorm.DB, log *logger.Logger) CourseRepo {
	return learning.NewCourseRepo(db, log)
}
