package game

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/snakeflow/board"
)

// Listener receives simulation events in commit order, one callback at a time
// Callbacks run outside the game lock and may call back into the game
type Listener interface {
	OnEatFruit()
	OnGameOver()
	OnPhaseChange(phase int)
	// OnStateChange fires after every published state replacement
	OnStateChange(s State)
}

// NopListener ignores every event, embed it to implement a subset
type NopListener struct{}

func (NopListener) OnEatFruit()         {}
func (NopListener) OnGameOver()         {}
func (NopListener) OnPhaseChange(int)   {}
func (NopListener) OnStateChange(State) {}

// View is a committed state paired with the board it lives on
type View struct {
	State State
	Board board.Size
}

type noticeKind uint8

const (
	noticeEat noticeKind = iota
	noticePhase
	noticeOver
	noticeState
)

// notice is a listener callback queued at commit time
type notice struct {
	kind  noticeKind
	phase int
	state State
}

// Game owns the canonical simulation state
// Writers serialize on mu; readers load the last published aggregate without locking
type Game struct {
	// ===== PUBLISHED STATE (lock-free reads) =====
	view    atomic.Pointer[View]
	pending atomic.Uint32 // Direction requested by input, consumed by Tick

	// ===== WRITER STATE (mu protected) =====
	mu       sync.Mutex
	board    board.Size
	rules    Rules
	rng      Rand
	listener Listener
	roundID  string

	// ===== NOTIFICATION QUEUE (notifyMu protected) =====
	// Notices are queued under mu so queue order is commit order
	// A single drainer delivers them; writers arriving mid-drain leave theirs to it
	notifyMu sync.Mutex
	queue    []notice
	draining bool
}

// New creates an idle game for board b
func New(b board.Size, rules Rules, rng Rand, listener Listener) *Game {
	if listener == nil {
		listener = NopListener{}
	}
	g := &Game{
		board:    b,
		rules:    rules,
		rng:      rng,
		listener: listener,
	}
	initial := NewState(b, rules, rng)
	g.publish(initial)
	g.pending.Store(uint32(initial.Direction))
	return g
}

// ===== READERS =====

// Snapshot returns a copy of the last committed state
func (g *Game) Snapshot() State {
	return g.view.Load().State.Clone()
}

// View returns the last committed state together with its board from a single load
func (g *Game) View() View {
	v := *g.view.Load()
	v.State = v.State.Clone()
	return v
}

// Status returns the lifecycle position of the current round
func (g *Game) Status() Status {
	return g.view.Load().State.Status()
}

// Board returns the board the simulation runs on
func (g *Game) Board() board.Size {
	return g.view.Load().Board
}

// Rules returns the active rules
func (g *Game) Rules() Rules {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rules
}

// RoundID identifies the current round in logs and save files
func (g *Game) RoundID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.roundID
}

// PendingDirection returns the heading the next tick will use
func (g *Game) PendingDirection() Direction {
	return Direction(g.pending.Load())
}

// SaveData produces a checkpoint of the current state
func (g *Game) SaveData(now time.Time) SaveData {
	g.mu.Lock()
	defer g.mu.Unlock()

	b := g.board
	return SaveData{
		ID:         uuid.NewString(),
		GameState:  g.view.Load().State.Clone(),
		Difficulty: g.rules.Difficulty,
		Timestamp:  now.UnixMilli(),
		Board:      &b,
	}
}

// ===== INPUT =====

// ChangeDirection sets the heading for the next tick
// Reversals of the pending or committed heading are ignored and reported as false
func (g *Game) ChangeDirection(d Direction) bool {
	if !d.Valid() {
		return false
	}
	committed := g.view.Load().State.Direction
	for {
		cur := Direction(g.pending.Load())
		if d == cur.Opposite() || d == committed.Opposite() {
			return false
		}
		if g.pending.CompareAndSwap(uint32(cur), uint32(d)) {
			return true
		}
	}
}

// ===== WRITERS =====

// Start begins a new running round with the current rules and board
func (g *Game) Start() {
	g.mu.Lock()
	s := NewState(g.board, g.rules, g.rng)
	s.IsRunning = true
	g.roundID = uuid.NewString()
	g.pending.Store(uint32(s.Direction))
	g.publish(s)
	g.post(notice{kind: noticeState, state: s})
	log.Printf("round %s started: board=%v difficulty=%v training=%v", g.roundID, g.board, g.rules.Difficulty, g.rules.Training)
	g.mu.Unlock()

	g.flush()
}

// Restart discards the current round and starts a new one
func (g *Game) Restart() {
	g.Start()
}

// Resume continues a saved round on the current board
// Checkpoints of finished rounds start a fresh round instead
func (g *Game) Resume(save SaveData) {
	if !save.Resumable() {
		log.Printf("save %s not resumable, starting new round", save.ID)
		g.Start()
		return
	}

	g.mu.Lock()
	g.rules.Difficulty = save.Difficulty
	s := Resume(save, g.board, g.rules.Training, g.rng)
	g.roundID = uuid.NewString()
	g.pending.Store(uint32(s.Direction))
	g.publish(s)
	g.post(notice{kind: noticeState, state: s})
	log.Printf("round %s resumed from save %s: score=%d phase=%d", g.roundID, save.ID, s.Score, s.Phase)
	g.mu.Unlock()

	g.flush()
}

// SetRules replaces the rules used by the next round
func (g *Game) SetRules(r Rules) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rules = r
}

// SetPaused suspends or resumes a running round, returns false when nothing changed
func (g *Game) SetPaused(paused bool) bool {
	g.mu.Lock()
	prev := g.view.Load().State
	if !prev.IsRunning || prev.IsGameOver || prev.IsPaused == paused {
		g.mu.Unlock()
		return false
	}
	next := prev
	next.IsPaused = paused
	g.publish(next)
	g.post(notice{kind: noticeState, state: next})
	g.mu.Unlock()

	g.flush()
	return true
}

// Pause suspends a running round
func (g *Game) Pause() bool {
	return g.SetPaused(true)
}

// TogglePause flips the pause flag of a running round
func (g *Game) TogglePause() bool {
	return g.SetPaused(!g.view.Load().State.IsPaused)
}

// SetBoard moves the simulation onto a new board, rescaling live entities
// Refused while a round is actively ticking
func (g *Game) SetBoard(b board.Size) bool {
	if !b.Valid() {
		return false
	}

	g.mu.Lock()
	if b == g.board {
		g.mu.Unlock()
		return true
	}
	prev := g.view.Load().State
	if prev.Active() {
		g.mu.Unlock()
		return false
	}
	var next State
	if prev.IsRunning || prev.IsGameOver {
		next = Rescale(prev, g.board, b, g.rng)
	} else {
		// Idle rounds have nothing worth keeping, recentre on the new board
		next = NewState(b, g.rules, g.rng)
	}
	log.Printf("board resized %v -> %v", g.board, b)
	g.board = b
	g.publish(next)
	g.post(notice{kind: noticeState, state: next})
	g.mu.Unlock()

	g.flush()
	return true
}

// Tick advances the simulation by one step
func (g *Game) Tick() {
	g.mu.Lock()
	next, out := Step(g.view.Load().State, Direction(g.pending.Load()), g.board, g.rules, g.rng)
	if !out.Advanced {
		g.mu.Unlock()
		return
	}
	g.publish(next)

	notices := make([]notice, 0, 4)
	if out.Ate {
		notices = append(notices, notice{kind: noticeEat})
	}
	if out.PhaseChanged {
		notices = append(notices, notice{kind: noticePhase, phase: next.Phase})
	}
	if out.GameOver {
		notices = append(notices, notice{kind: noticeOver})
		log.Printf("round %s over: score=%d phase=%d length=%d won=%v", g.roundID, next.Score, next.Phase, len(next.Snake), next.IsWon)
	}
	notices = append(notices, notice{kind: noticeState, state: next})
	g.post(notices...)
	g.mu.Unlock()

	g.flush()
}

// publish stores s with the current board as the committed aggregate, caller holds mu
func (g *Game) publish(s State) {
	g.view.Store(&View{State: s, Board: g.board})
}

// post queues notices for delivery, caller holds mu
func (g *Game) post(ns ...notice) {
	g.notifyMu.Lock()
	g.queue = append(g.queue, ns...)
	g.notifyMu.Unlock()
}

// flush delivers queued notices in order unless another goroutine is already draining
// A stale state notice can therefore never overtake a newer one
func (g *Game) flush() {
	g.notifyMu.Lock()
	if g.draining {
		g.notifyMu.Unlock()
		return
	}
	g.draining = true
	for len(g.queue) > 0 {
		batch := g.queue
		g.queue = nil
		g.notifyMu.Unlock()
		for _, n := range batch {
			g.deliver(n)
		}
		g.notifyMu.Lock()
	}
	g.draining = false
	g.notifyMu.Unlock()
}

func (g *Game) deliver(n notice) {
	switch n.kind {
	case noticeEat:
		g.listener.OnEatFruit()
	case noticePhase:
		g.listener.OnPhaseChange(n.phase)
	case noticeOver:
		g.listener.OnGameOver()
	case noticeState:
		g.listener.OnStateChange(n.state)
	}
}
