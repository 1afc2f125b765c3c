package term

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/taskflow/memberctl/pkg/domain/interfaces"
	"github.com/taskflow/memberctl/pkg/domain/model"
	"github.com/taskflow/memberctl/pkg/domain/types"
)

var severityColors = map[types.Severity]*color.Color{
	types.SeveritySuccess: color.New(color.FgGreen, color.Bold),
	types.SeverityInfo:    color.New(color.FgCyan),
	types.SeverityWarning: color.New(color.FgYellow, color.Bold),
	types.SeverityDanger:  color.New(color.FgRed, color.Bold),
}

var (
	headerColor = color.New(color.Bold)
	dimColor    = color.New(color.Faint)
)

// Renderer draws page state as text
type Renderer struct {
	mu    sync.Mutex
	w     io.Writer
	shown map[string]struct{}
}

var _ interfaces.Renderer = (*Renderer)(nil)

// NewRenderer creates a renderer writing to w
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{
		w:     w,
		shown: make(map[string]struct{}),
	}
}

// RenderBoard prints the banners that have not been printed yet, oldest
// first so that the newest ends up last on screen
func (r *Renderer) RenderBoard(board *model.Board) {
	r.mu.Lock()
	defer r.mu.Unlock()

	banners := board.Banners()
	for i := len(banners) - 1; i >= 0; i-- {
		b := banners[i]
		if _, ok := r.shown[b.ID]; ok {
			continue
		}
		r.shown[b.ID] = struct{}{}

		c, ok := severityColors[b.Severity]
		if !ok {
			c = severityColors[types.SeverityInfo]
		}
		label := c.Sprintf("[%s]", strings.ToUpper(b.Severity.String()))
		fmt.Fprintf(r.w, "%s %s\n", label, b.Message)
	}
}

// RenderSelect prints the visible options of the selection control
func (r *Renderer) RenderSelect(sel *model.UserSelect) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, opt := range sel.Visible() {
		if opt.Value == "" {
			fmt.Fprintln(r.w, dimColor.Sprint(opt.Label))
			continue
		}
		marker := " "
		if opt.Value == sel.Selected() {
			marker = "*"
		}
		fmt.Fprintf(r.w, "%s %6s  %s\n", marker, opt.Value, opt.Label)
	}
	if sel.Disabled {
		fmt.Fprintln(r.w, dimColor.Sprint("(no user can be selected)"))
	}
}

// RenderProject prints the project with its owner and members
func (r *Renderer) RenderProject(project *model.Project) {
	r.mu.Lock()
	defer r.mu.Unlock()

	headerColor.Fprintf(r.w, "%s", project.Name)
	fmt.Fprintf(r.w, " (#%s)\n", project.ID)
	if project.Status != "" {
		fmt.Fprintf(r.w, "Status: %s\n", project.Status)
	}
	if project.Description != "" {
		fmt.Fprintln(r.w, project.Description)
	}
	if project.Owner != nil {
		fmt.Fprintf(r.w, "Owner:  %s <%s>\n", project.Owner.Username, project.Owner.Email)
	}

	headerColor.Fprintf(r.w, "Members (%d)\n", len(project.Members))
	for _, m := range project.Members {
		fmt.Fprintf(r.w, "  %6s  %s <%s>\n", m.ID, m.Username, m.Email)
	}
}

// RenderNavigation prints where a form submission led
func (r *Renderer) RenderNavigation(nav *model.Navigation) {
	r.mu.Lock()
	defer r.mu.Unlock()

	fmt.Fprintf(r.w, "-> %s %s\n", nav.Location, dimColor.Sprintf("(HTTP %d)", nav.StatusCode))
}
