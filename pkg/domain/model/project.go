package model

import "github.com/taskflow/memberctl/pkg/domain/types"

// Member is a user attached to a project
type Member struct {
	ID        types.UserID `json:"id"`
	Username  string       `json:"username"`
	Email     string       `json:"email"`
	FirstName string       `json:"first_name,omitempty"`
	LastName  string       `json:"last_name,omitempty"`
}

// Project is the project detail returned by the API
type Project struct {
	ID          types.ProjectID `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Status      string          `json:"status"`
	Owner       *Member         `json:"owner,omitempty"`
	Members     []Member        `json:"members"`
	StartDate   string          `json:"start_date,omitempty"`
	EndDate     string          `json:"end_date,omitempty"`
}
