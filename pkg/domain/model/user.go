package model

import (
	"fmt"

	"github.com/taskflow/memberctl/pkg/domain/types"
)

// UserOption is a user that can be offered in the member selection control
type UserOption struct {
	ID       types.UserID `json:"id"`
	Username string       `json:"username"`
	Email    string       `json:"email"`
}

// Label returns the text displayed for the option
func (u UserOption) Label() string {
	return fmt.Sprintf("%s (%s)", u.Username, u.Email)
}
