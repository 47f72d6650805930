package models

import (
	"slices"
	"strings"

	"github.com/hilbertsen/teamcal/pkg/dto"
	"github.com/lucasb-eyer/go-colorful"
)

// ValidationError collects field level problems found before an intent is dispatched.
type ValidationError struct {
	FieldErrors map[string]string
}

func (v *ValidationError) Error() string {
	if v == nil || len(v.FieldErrors) == 0 {
		return "validation failed"
	}
	fields := make([]string, 0, len(v.FieldErrors))
	for field := range v.FieldErrors {
		fields = append(fields, field)
	}
	slices.Sort(fields)
	return "validation failed: " + strings.Join(fields, ", ")
}

func (v *ValidationError) HasErrors() bool {
	return v != nil && len(v.FieldErrors) > 0
}

func (v *ValidationError) add(field, message string) {
	if v.FieldErrors == nil {
		v.FieldErrors = make(map[string]string)
	}
	v.FieldErrors[field] = message
}

func (v *ValidationError) result() error {
	if v.HasErrors() {
		return v
	}
	return nil
}

func ValidateCreateEvent(e dto.CreateEvent) error {
	var v ValidationError
	if strings.TrimSpace(e.Title) == "" {
		v.add("title", "title is required")
	}
	if e.Start.IsZero() {
		v.add("start", "start is required")
	}
	if !e.End.IsZero() && e.End.Before(e.Start) {
		v.add("end", "end must not be before start")
	}
	return v.result()
}

func ValidateUpdateEvent(e dto.UpdateEvent) error {
	err := ValidateCreateEvent(e.CreateEvent)
	if e.ID > 0 {
		return err
	}
	v, ok := err.(*ValidationError)
	if !ok {
		v = &ValidationError{}
	}
	v.add("id", "id is required")
	return v
}

func ValidateCreateTeam(t dto.CreateTeam) error {
	var v ValidationError
	if strings.TrimSpace(t.Name) == "" {
		v.add("name", "name is required")
	}
	if !ValidColor(t.PrimaryColor) {
		v.add("primaryColor", "invalid color")
	}
	if !ValidColor(t.SecondaryColor) {
		v.add("secondaryColor", "invalid color")
	}
	return v.result()
}

func ValidateTeam(t Team) error {
	var v ValidationError
	if t.ID <= 0 {
		v.add("id", "id is required")
	}
	if err, ok := ValidateCreateTeam(dto.CreateTeam{
		Name:           t.Name,
		PrimaryColor:   t.PrimaryColor,
		SecondaryColor: t.SecondaryColor,
	}).(*ValidationError); ok {
		for field, msg := range err.FieldErrors {
			v.add(field, msg)
		}
	}
	return v.result()
}

func ValidateCreateEmployee(e dto.CreateEmployee) error {
	var v ValidationError
	if strings.TrimSpace(e.Name) == "" {
		v.add("name", "name is required")
	}
	if !ValidColor(e.Color) {
		v.add("color", "invalid color")
	}
	return v.result()
}

func ValidateEmployee(e Employee) error {
	var v ValidationError
	if e.ID <= 0 {
		v.add("id", "id is required")
	}
	if err, ok := ValidateCreateEmployee(dto.CreateEmployee{Name: e.Name, Color: e.Color}).(*ValidationError); ok {
		for field, msg := range err.FieldErrors {
			v.add(field, msg)
		}
	}
	return v.result()
}

func ValidateLogin(l dto.Login) error {
	var v ValidationError
	if l.Password == "" {
		v.add("password", "password is required")
	}
	return v.result()
}

func ValidateChangePassword(c dto.ChangePassword) error {
	var v ValidationError
	if c.OldPassword == "" {
		v.add("oldPassword", "old password is required")
	}
	if c.NewPassword == "" {
		v.add("newPassword", "new password is required")
	}
	return v.result()
}

// ValidColor reports whether s is a #rgb or #rrggbb hex color.
func ValidColor(s string) bool {
	_, err := colorful.Hex(s)
	return err == nil
}
