package model

import "strings"

// Placeholder and status labels shown by the user selection control
const (
	LabelLoading         = "Loading users..."
	LabelSelectUser      = "Select a user..."
	LabelNoUsers         = "No users available"
	LabelConnectionError = "Connection error"
	LabelUnknownError    = "unknown error"
)

// Option is one entry of the user selection control
type Option struct {
	Value  string
	Label  string
	Hidden bool
}

// UserSelect models the user selection control of the add-member dialog
// together with the state of its submit action.
type UserSelect struct {
	Options       []Option
	Disabled      bool
	SubmitEnabled bool
	selected      string
}

// NewUserSelect creates an empty, disabled control
func NewUserSelect() *UserSelect {
	return &UserSelect{Disabled: true}
}

// Reset replaces all options with a single placeholder and disables the
// control and its submit action.
func (s *UserSelect) Reset(placeholder string) {
	s.Options = []Option{{Value: "", Label: placeholder}}
	s.Disabled = true
	s.SubmitEnabled = false
	s.selected = ""
}

// ShowError replaces all options with a single error entry
func (s *UserSelect) ShowError(message string) {
	s.Reset(message)
}

// Populate fills the control with one option per user after a placeholder.
// With no users the control keeps a single placeholder and stays disabled.
func (s *UserSelect) Populate(users []UserOption) {
	if len(users) == 0 {
		s.Reset(LabelNoUsers)
		return
	}

	s.Reset(LabelSelectUser)
	for _, u := range users {
		s.Options = append(s.Options, Option{
			Value: u.ID.String(),
			Label: u.Label(),
		})
	}
	s.Disabled = false
}

// Select changes the selected value. Values that are not a visible option
// are ignored, and an empty value clears the selection. The submit action
// is enabled only when a non-empty value is selected.
func (s *UserSelect) Select(value string) {
	if s.Disabled {
		return
	}
	if value != "" && !s.visible(value) {
		return
	}
	s.selected = value
	s.SubmitEnabled = value != ""
}

func (s *UserSelect) visible(value string) bool {
	for _, o := range s.Options {
		if o.Value == value && !o.Hidden {
			return true
		}
	}
	return false
}

// Selected returns the selected value
func (s *UserSelect) Selected() string {
	return s.selected
}

// Filter hides options whose label and value both lack text, compared
// case-insensitively. An empty text shows every option.
func (s *UserSelect) Filter(text string) {
	needle := strings.ToLower(text)
	for i := range s.Options {
		label := strings.ToLower(s.Options[i].Label)
		value := strings.ToLower(s.Options[i].Value)
		s.Options[i].Hidden = !(strings.Contains(label, needle) || strings.Contains(value, needle))
	}
}

// Visible returns the options that are not hidden by the filter
func (s *UserSelect) Visible() []Option {
	var visible []Option
	for _, o := range s.Options {
		if !o.Hidden {
			visible = append(visible, o)
		}
	}
	return visible
}
