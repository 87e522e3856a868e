// Package seed loads users and courses from a YAML fixture file.
package seed

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	types "github.com/campusbridge/campus-bridge/internal/domain"
)

type Fixture struct {
	Users   []UserFixture   `yaml:"users"`
	Courses []CourseFixture `yaml:"courses"`
}

type UserFixture struct {
	Email     string `yaml:"email"`
	Password  string `yaml:"password"`
	Role      string `yaml:"role"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
}

type CourseFixture struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Instructor  string   `yaml:"instructor"`
	Syllabus    []string `yaml:"syllabus"`
	Students    []string `yaml:"students"`
}

// Parse decodes a fixture and rejects unknown keys.
func Parse(r io.Reader) (*Fixture, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var fx Fixture
	if err := dec.Decode(&fx); err != nil {
		if errors.Is(err, io.EOF) {
			return &fx, nil
		}
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	if err := fx.Validate(); err != nil {
		return nil, err
	}
	return &fx, nil
}

func (fx *Fixture) Validate() error {
	seen := map[string]bool{}
	for i, u := range fx.Users {
		email := strings.ToLower(strings.TrimSpace(u.Email))
		if email == "" {
			return fmt.Errorf("users[%d]: email is required", i)
		}
		if seen[email] {
			return fmt.Errorf("users[%d]: duplicate email %q", i, email)
		}
		seen[email] = true
		if u.Password == "" {
			return fmt.Errorf("users[%d]: password is required", i)
		}
		if !types.ParseRole(u.Role).Valid() {
			return fmt.Errorf("users[%d]: unknown role %q", i, u.Role)
		}
	}
	for i, c := range fx.Courses {
		if strings.TrimSpace(c.Title) == "" {
			return fmt.Errorf("courses[%d]: title is required", i)
		}
		if strings.TrimSpace(c.Instructor) == "" {
			return fmt.Errorf("courses[%d]: instructor is required", i)
		}
	}
	return nil
}
