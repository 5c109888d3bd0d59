package render

import (
	"time"

	"github.com/lixenwraith/eldritch-clicker/game"
)

// NoticeLevel selects the notice bar color
type NoticeLevel int

const (
	NoticeInfo NoticeLevel = iota
	NoticeWarn
	NoticeError
)

// Notice is a transient status line
type Notice struct {
	Text    string
	Level   NoticeLevel
	Expires time.Time
}

// Active reports whether the notice should still be shown at now
func (n Notice) Active(now time.Time) bool {
	return n.Text != "" && now.Before(n.Expires)
}

// View is everything a frame needs; the renderer never mutates it
type View struct {
	State    *game.State
	Notice   Notice
	LastSave time.Time // Zero until the first successful save
	Now      time.Time
}
