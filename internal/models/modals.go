package models

// Modal names a dialog the views can open.
type Modal string

const (
	ModalNewProject Modal = "newProject"
	ModalProfile    Modal = "profile"
	ModalSettings   Modal = "settings"
)

// Modals holds the visibility flags of the simple dialogs.
type Modals struct {
	NewProject bool `json:"newProject"`
	Profile    bool `json:"profile"`
	Settings   bool `json:"settings"`
}

// EntityKind distinguishes the targets of rename and delete.
type EntityKind string

const (
	EntityChat    EntityKind = "chat"
	EntityProject EntityKind = "project"
)

// ConfirmAction identifies what a pending confirmation will do.
type ConfirmAction string

const (
	ConfirmDeleteChat     ConfirmAction = "deleteChat"
	ConfirmDeleteProject  ConfirmAction = "deleteProject"
	ConfirmDeleteAllChats ConfirmAction = "deleteAllChats"
	ConfirmDeleteAccount  ConfirmAction = "deleteAccount"
)

// Confirmation is the content of the confirmation dialog.
type Confirmation struct {
	Action   ConfirmAction `json:"action"`
	Title    string        `json:"title"`
	Message  string        `json:"message"`
	TargetID uint          `json:"targetId,omitempty"`
}

// RenameRequest is the content of the rename dialog.
type RenameRequest struct {
	Kind        EntityKind `json:"kind"`
	ID          uint       `json:"id"`
	CurrentName string     `json:"currentName"`
}

// FieldErrors are the inline errors of the auth forms.
type FieldErrors struct {
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
}

// Empty reports whether no field carries an error.
func (f FieldErrors) Empty() bool {
	return f.Email == "" && f.Password == ""
}
