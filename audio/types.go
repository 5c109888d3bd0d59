package audio

// Cue identifies a game sound
type Cue int

const (
	CueClick    Cue = iota // Manual click
	CuePurchase            // Building or upgrade bought
	CueError               // Purchase rejected
	CueTierUp              // Click tier reached
	cueCount
)

func (c Cue) String() string {
	switch c {
	case CueClick:
		return "click"
	case CuePurchase:
		return "purchase"
	case CueError:
		return "error"
	case CueTierUp:
		return "tierup"
	}
	return "unknown"
}

// Player plays cues; implementations must not block the caller
type Player interface {
	Play(c Cue)
	Close()
}

// Silent is the Player used when audio is disabled or unavailable
type Silent struct{}

func (Silent) Play(Cue) {}
func (Silent) Close()   {}
