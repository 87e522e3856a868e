package app

import (
	"gorm.io/gorm"

	"github.com/campusbridge/campus-bridge/internal/data/repos"
	"github.com/campusbridge/campus-bridge/internal/platform/logger"
)

type Repos struct {
	User   repos.UserRepo
	Course repos.CourseRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:   repos.NewUserRepo(db, log),
		Course: repos.NewCourseRepo(db, log),
	}
}
