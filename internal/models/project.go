package models

import "time"

// ProjectTypes lists the options offered by the project form.
var ProjectTypes = []string{"Web Portal", "Mobile App", "Both", "Backend Service", "Other"}

const NotSpecified = "Not Specified"

// Project is a user-defined grouping label for chats.
type Project struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Overview string `json:"overview"`
	Type     string `json:"type"`
	Industry string `json:"industry"`
}

// ProjectInput carries the fields of the new-project and project-details forms.
type ProjectInput struct {
	Name     string `json:"name"`
	Overview string `json:"overview"`
	Type     string `json:"type"`
	Industry string `json:"industry"`
}

// Normalized fills the optional fields the way the form does on save.
func (in ProjectInput) Normalized() ProjectInput {
	if in.Type == "" {
		in.Type = NotSpecified
	}
	if in.Industry == "" {
		in.Industry = NotSpecified
	}
	return in
}

// ProjectRecord persists a project. The story API owns one table of these and the
// client reuses the same shape when projects are stored locally.
type ProjectRecord struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"index;not null"`
	Name      string `gorm:"size:255;not null"`
	Overview  string `gorm:"type:text"`
	Type      string `gorm:"size:64"`
	Industry  string `gorm:"size:128"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ProjectRecord) TableName() string { return "projects" }

// ToProject converts the record into the client shape.
func (r ProjectRecord) ToProject() Project {
	return Project{
		ID:       r.ID,
		Name:     r.Name,
		Overview: r.Overview,
		Type:     r.Type,
		Industry: r.Industry,
	}
}
