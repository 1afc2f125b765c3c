package interfaces

//go:generate moq -out mocks/ui_mock.go -pkg mocks . Prompter Renderer

import (
	"context"

	"github.com/taskflow/memberctl/pkg/domain/model"
)

// Prompter asks the user a blocking yes/no question
type Prompter interface {
	Confirm(ctx context.Context, message string) (bool, error)
}

// Renderer draws the page state for the user
type Renderer interface {
	RenderBoard(board *model.Board)
	RenderSelect(sel *model.UserSelect)
	RenderProject(project *model.Project)
	RenderNavigation(nav *model.Navigation)
}
