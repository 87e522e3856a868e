package domain

import (
	"github.com/campusbridge/campus-bridge/internal/domain/learning"
	"github.com/campusbridge/campus-bridge/internal/domain/user"
)

type User = user.User
type Role = user.Role

const (
	RoleStudent    = user.RoleStudent
	RoleInstructor = user.RoleInstructor
	RoleAdmin      = user.RoleAdmin
)

var ParseRole = user.ParseRole

type Course = learning.Course
type CourseStudent = learning.CourseStudent

var SyllabusJSON = learning.SyllabusJSON
