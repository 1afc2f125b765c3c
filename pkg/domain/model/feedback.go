package model

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/taskflow/memberctl/pkg/domain/types"
)

// RelayedBannerLifetime is how long a banner relayed across a reload stays
// on the board
const RelayedBannerLifetime = 5 * time.Second

// Banner is a dismissible feedback message
type Banner struct {
	ID           string
	Severity     types.Severity
	Message      string
	CreatedAt    time.Time
	DismissAfter time.Duration // zero means the banner stays until dismissed
}

// NewBanner creates a banner that is never dismissed automatically
func NewBanner(severity types.Severity, message string) *Banner {
	return &Banner{
		ID:        uuid.New().String(),
		Severity:  severity,
		Message:   message,
		CreatedAt: time.Now(),
	}
}

// AutoDismissed reports whether the banner removes itself
func (b *Banner) AutoDismissed() bool {
	return b.DismissAfter > 0
}

// Board is the message container banners are rendered into.
// The newest banner is first.
type Board struct {
	mu      sync.RWMutex
	banners []*Banner
}

// NewBoard creates an empty board
func NewBoard() *Board {
	return &Board{}
}

// Prepend places a banner on top of the board
func (b *Board) Prepend(banner *Banner) {
	if banner == nil {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.banners = append([]*Banner{banner}, b.banners...)
}

// Dismiss removes the banner with the given ID. It returns false when the
// banner is not on the board.
func (b *Board) Dismiss(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, banner := range b.banners {
		if banner.ID == id {
			b.banners = append(b.banners[:i], b.banners[i+1:]...)
			return true
		}
	}
	return false
}

// Banners returns a snapshot of the banners on the board
func (b *Board) Banners() []Banner {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]Banner, 0, len(b.banners))
	for _, banner := range b.banners {
		out = append(out, *banner)
	}
	return out
}

// Len returns the number of banners on the board
func (b *Board) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.banners)
}
