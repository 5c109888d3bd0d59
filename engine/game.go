// Package engine runs the single-owner game loop
package engine

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/eldritch-clicker/audio"
	"github.com/lixenwraith/eldritch-clicker/constants"
	"github.com/lixenwraith/eldritch-clicker/game"
	"github.com/lixenwraith/eldritch-clicker/input"
	"github.com/lixenwraith/eldritch-clicker/persist"
	"github.com/lixenwraith/eldritch-clicker/render"
)

// Drawer renders frames; implemented by render.TerminalRenderer
type Drawer interface {
	Draw(v render.View)
	Sync()
}

// Timing configures the loop intervals; zero fields take the constants defaults
type Timing struct {
	TickInterval     time.Duration
	AutosaveInterval time.Duration
	NoticeDuration   time.Duration
}

func (t Timing) withDefaults() Timing {
	if t.TickInterval <= 0 {
		t.TickInterval = constants.TickInterval
	}
	if t.AutosaveInterval <= 0 {
		t.AutosaveInterval = constants.AutosaveInterval
	}
	if t.NoticeDuration <= 0 {
		t.NoticeDuration = constants.NoticeDuration
	}
	return t
}

// Deps are the collaborators of the loop; nil Sounds and Clock take silent and real defaults
type Deps struct {
	Drawer Drawer
	Store  persist.Saver
	Sounds audio.Player
	Clock  TimeProvider
	Keys   *input.KeyTable
}

// Game owns the state and serializes every mutation through one goroutine
type Game struct {
	state  *game.State
	timing Timing

	clock     TimeProvider
	ticker    *TickEngine
	mapper    *input.Mapper
	drawer    Drawer
	store     persist.Saver
	autosaver *persist.Autosaver
	sounds    audio.Player

	notice        render.Notice
	lastSave      time.Time
	manualPending bool
	stopped       bool
}

// NewGame wires a loop around state
func NewGame(state *game.State, timing Timing, deps Deps) *Game {
	clock := deps.Clock
	if clock == nil {
		clock = NewMonotonicTimeProvider()
	}
	sounds := deps.Sounds
	if sounds == nil {
		sounds = audio.Silent{}
	}
	return &Game{
		state:     state,
		timing:    timing.withDefaults(),
		clock:     clock,
		ticker:    NewTickEngine(clock),
		mapper:    input.NewMapper(deps.Keys),
		drawer:    deps.Drawer,
		store:     deps.Store,
		autosaver: persist.NewAutosaver(deps.Store),
		sounds:    sounds,
	}
}

// State exposes the owned state; only the loop goroutine may touch it while Run is active
func (g *Game) State() *game.State {
	return g.state
}

// Run drives the loop until quit, context cancellation or a closed event channel
// Always finishes with a synchronous save; its error is returned after being logged
func (g *Game) Run(ctx context.Context, events <-chan tcell.Event) error {
	tick := time.NewTicker(g.timing.TickInterval)
	defer tick.Stop()
	autosave := time.NewTicker(g.timing.AutosaveInterval)
	defer autosave.Stop()

	g.autosaver.Start()
	g.ticker.Reset()
	g.draw()

	for {
		select {
		case <-ctx.Done():
			log.Printf("game: context done: %v", context.Cause(ctx))
			return g.Shutdown()

		case ev, ok := <-events:
			if !ok {
				return g.Shutdown()
			}
			if !g.HandleEvent(ev) {
				return g.Shutdown()
			}

		case <-tick.C:
			g.Tick()

		case <-autosave.C:
			g.Autosave()

		case r := <-g.autosaver.Results():
			g.handleSaveResult(r)
		}
	}
}

// HandleEvent applies one terminal event and returns false when the game should exit
func (g *Game) HandleEvent(ev tcell.Event) bool {
	intent := g.mapper.Map(ev)

	switch intent.Type {
	case input.IntentNone:
		return true

	case input.IntentQuit:
		return false

	case input.IntentResize:
		if g.drawer != nil {
			g.drawer.Sync()
		}

	case input.IntentClick:
		tier := g.state.ClickMultiplier
		g.state.Click()
		if g.state.ClickMultiplier > tier {
			g.sounds.Play(audio.CueTierUp)
			g.setNotice(render.NoticeInfo, "Your influence grows stronger")
		} else {
			g.sounds.Play(audio.CueClick)
		}

	case input.IntentSwitchMenu:
		g.state.SetMenu(intent.Menu)

	case input.IntentNavigateUp:
		g.state.MoveSelection(-1)

	case input.IntentNavigateDown:
		g.state.MoveSelection(1)

	case input.IntentConfirm:
		g.confirm()

	case input.IntentSave:
		g.manualPending = true
		g.autosaver.Request(g.state.Clone())
	}

	g.draw()
	return true
}

func (g *Game) confirm() {
	handled, err := g.state.ConfirmSelection()
	if !handled {
		return
	}
	switch {
	case err == nil:
		g.sounds.Play(audio.CuePurchase)
	case errors.Is(err, game.ErrInsufficientFunds):
		g.sounds.Play(audio.CueError)
		g.setNotice(render.NoticeWarn, "Not enough followers")
	case errors.Is(err, game.ErrAlreadyPurchased):
		g.sounds.Play(audio.CueError)
		g.setNotice(render.NoticeWarn, "Already acquired")
	default:
		g.sounds.Play(audio.CueError)
		g.setNotice(render.NoticeError, err.Error())
	}
}

// Tick applies idle production for the time since the previous tick and redraws
func (g *Game) Tick() {
	tier := g.state.ClickMultiplier
	g.ticker.Advance(g.state)
	if g.state.ClickMultiplier > tier {
		g.sounds.Play(audio.CueTierUp)
	}
	g.draw()
}

// Autosave hands a snapshot to the background saver without blocking
func (g *Game) Autosave() {
	g.autosaver.Request(g.state.Clone())
}

func (g *Game) handleSaveResult(r persist.Result) {
	if r.Err != nil {
		log.Printf("game: save %s failed: %v", r.SaveID, r.Err)
		g.setNotice(render.NoticeError, "Save failed, retrying on next autosave")
		g.manualPending = false
		g.draw()
		return
	}

	g.lastSave = r.At
	if g.manualPending {
		g.manualPending = false
		g.setNotice(render.NoticeInfo, "Recorded in the Necronomicon")
	}
	g.draw()
}

// Shutdown stops background saving and writes the state synchronously
// Safe to call more than once; later calls only repeat the save
func (g *Game) Shutdown() error {
	if !g.stopped {
		g.stopped = true
		g.autosaver.Stop()
	}

	if err := g.store.Save(g.state); err != nil {
		log.Printf("game: final save %s failed: %v", g.state.SaveID, err)
		return err
	}
	log.Printf("game: final save %s written", g.state.SaveID)
	return nil
}

func (g *Game) setNotice(level render.NoticeLevel, text string) {
	g.notice = render.Notice{
		Text:    text,
		Level:   level,
		Expires: g.clock.Now().Add(g.timing.NoticeDuration),
	}
}

// View builds the frame description for the current state
func (g *Game) View() render.View {
	return render.View{
		State:    g.state,
		Notice:   g.notice,
		LastSave: g.lastSave,
		Now:      g.clock.Now(),
	}
}

func (g *Game) draw() {
	if g.drawer == nil {
		return
	}
	g.drawer.Draw(g.View())
}
