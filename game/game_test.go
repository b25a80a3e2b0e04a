package game

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lixenwraith/snakeflow/board"
	"github.com/lixenwraith/snakeflow/engine"
	"github.com/lixenwraith/snakeflow/status"
)

// recorder captures listener callbacks in arrival order
type recorder struct {
	mu     sync.Mutex
	events []string
	phases []int
	states int
}

func (r *recorder) OnEatFruit() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, "eat")
}

func (r *recorder) OnGameOver() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, "over")
}

func (r *recorder) OnPhaseChange(phase int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, "phase")
	r.phases = append(r.phases, phase)
}

func (r *recorder) OnStateChange(State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states++
}

func newTestGame(t *testing.T, l Listener) *Game {
	t.Helper()
	return New(board20, medium, newRand(), l)
}

func TestNewGameIsIdle(t *testing.T) {
	g := newTestGame(t, nil)
	if g.Status() != StatusIdle {
		t.Fatalf("Status() = %v, want idle", g.Status())
	}
	before := g.Snapshot()
	g.Tick()
	if !g.Snapshot().Equal(before) {
		t.Error("idle tick changed state")
	}
}

func TestChangeDirection(t *testing.T) {
	g := newTestGame(t, nil)
	g.Start()

	if g.ChangeDirection(DirLeft) {
		t.Error("reversal of heading accepted")
	}
	if !g.ChangeDirection(DirUp) {
		t.Fatal("perpendicular turn rejected")
	}
	// Committed heading is still RIGHT, so LEFT stays illegal before the tick
	if g.ChangeDirection(DirLeft) {
		t.Error("reversal of committed heading accepted after pending turn")
	}
	if g.ChangeDirection(DirDown) {
		t.Error("reversal of pending heading accepted")
	}
	if g.ChangeDirection(Direction(9)) {
		t.Error("invalid direction accepted")
	}
	if g.PendingDirection() != DirUp {
		t.Errorf("PendingDirection() = %v, want UP", g.PendingDirection())
	}

	g.Tick()
	if g.Snapshot().Direction != DirUp {
		t.Errorf("committed direction = %v, want UP", g.Snapshot().Direction)
	}
	if !g.ChangeDirection(DirLeft) {
		t.Error("turn after commit rejected")
	}
}

func TestTickNotifiesListener(t *testing.T) {
	rec := &recorder{}
	g := newTestGame(t, rec)
	g.Start()

	// Plant fruit in front of the head so the next tick eats and crosses a phase
	g.mu.Lock()
	s := g.Snapshot()
	s.Score = 40
	s.Fruit = Position{X: s.Head().X + 1, Y: s.Head().Y}
	g.publish(s)
	g.mu.Unlock()

	g.Tick()

	rec.mu.Lock()
	defer rec.mu.Unlock()
	want := []string{"eat", "phase"}
	if len(rec.events) != len(want) {
		t.Fatalf("events = %v, want %v", rec.events, want)
	}
	for i := range want {
		if rec.events[i] != want[i] {
			t.Errorf("events[%d] = %s, want %s", i, rec.events[i], want[i])
		}
	}
	if len(rec.phases) != 1 || rec.phases[0] != 2 {
		t.Errorf("phases = %v, want [2]", rec.phases)
	}
	// Start and Tick each publish once
	if rec.states != 2 {
		t.Errorf("state changes = %d, want 2", rec.states)
	}
}

func TestTickGameOverNotifies(t *testing.T) {
	rec := &recorder{}
	g := newTestGame(t, rec)
	g.Start()

	g.mu.Lock()
	s := g.Snapshot()
	s.Snake = []Position{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 4}, {X: 5, Y: 4}}
	s.Direction = DirLeft
	s.Fruit = Position{X: 0, Y: 0}
	g.publish(s)
	g.mu.Unlock()
	g.pending.Store(uint32(DirUp))

	g.Tick()

	if g.Status() != StatusOver {
		t.Fatalf("Status() = %v, want over", g.Status())
	}
	rec.mu.Lock()
	if len(rec.events) != 1 || rec.events[0] != "over" {
		t.Errorf("events = %v, want [over]", rec.events)
	}
	rec.mu.Unlock()

	before := g.Snapshot()
	g.Tick()
	if !g.Snapshot().Equal(before) {
		t.Error("finished round advanced")
	}
}

func TestPauseStopsTicks(t *testing.T) {
	g := newTestGame(t, nil)

	if g.SetPaused(true) {
		t.Error("pausing an idle round succeeded")
	}

	g.Start()
	if !g.TogglePause() {
		t.Fatal("TogglePause on running round failed")
	}
	if g.Status() != StatusPaused {
		t.Fatalf("Status() = %v, want paused", g.Status())
	}
	before := g.Snapshot()
	g.Tick()
	if !g.Snapshot().Equal(before) {
		t.Error("paused round advanced")
	}
	if g.SetPaused(true) {
		t.Error("repeated pause reported a change")
	}
	if !g.TogglePause() || g.Status() != StatusRunning {
		t.Errorf("resume failed, status %v", g.Status())
	}
}

func TestSetBoard(t *testing.T) {
	g := newTestGame(t, nil)
	small := board.Size{Cols: 10, Rows: 10}

	if !g.SetBoard(small) {
		t.Fatal("SetBoard on idle round refused")
	}
	if g.Board() != small {
		t.Errorf("Board() = %v, want %v", g.Board(), small)
	}
	if head := g.Snapshot().Head(); head != (Position{X: 5, Y: 5}) {
		t.Errorf("idle head = %v, want recentred {5 5}", head)
	}

	g.Start()
	if g.SetBoard(board20) {
		t.Error("SetBoard accepted while round is ticking")
	}
	if g.Board() != small {
		t.Error("board changed despite refusal")
	}

	g.SetPaused(true)
	if !g.SetBoard(board20) {
		t.Fatal("SetBoard on paused round refused")
	}
	for _, seg := range g.Snapshot().Snake {
		if !board20.Contains(seg) {
			t.Errorf("segment %v outside new board", seg)
		}
	}
	if g.SetBoard(board.Size{}) {
		t.Error("invalid board accepted")
	}
}

// gateListener drives a real tick scheduler from state changes
// With hold set, the next running notification blocks until release is closed
type gateListener struct {
	NopListener
	ticker  *engine.TickScheduler
	hold    atomic.Bool
	entered chan struct{}
	release chan struct{}

	mu   sync.Mutex
	last Status
}

func (l *gateListener) OnStateChange(s State) {
	if s.Status() == StatusRunning && l.hold.CompareAndSwap(true, false) {
		close(l.entered)
		<-l.release
	}
	l.ticker.Sync(s.Active(), s.Interval())
	l.mu.Lock()
	l.last = s.Status()
	l.mu.Unlock()
}

func (l *gateListener) lastStatus() Status {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.last
}

func TestStateChangesDeliveredInCommitOrder(t *testing.T) {
	ticker := engine.NewTickScheduler(func() {}, status.NewRegistry())
	defer ticker.Stop()

	l := &gateListener{
		ticker:  ticker,
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	g := newTestGame(t, l)
	g.Start()
	if !ticker.Active() {
		t.Fatal("ticker idle after Start")
	}

	// Tick commits a running state, its notification stalls inside the listener
	l.hold.Store(true)
	tickDone := make(chan struct{})
	go func() {
		g.Tick()
		close(tickDone)
	}()
	select {
	case <-l.entered:
	case <-time.After(time.Second):
		t.Fatal("tick notification never reached the listener")
	}

	// Pause commits after the tick and must not be overtaken by it
	paused := make(chan bool, 1)
	go func() { paused <- g.Pause() }()
	select {
	case ok := <-paused:
		if !ok {
			t.Fatal("Pause() = false on a running round")
		}
	case <-time.After(time.Second):
		t.Fatal("Pause blocked behind a listener callback")
	}

	close(l.release)
	select {
	case <-tickDone:
	case <-time.After(time.Second):
		t.Fatal("Tick did not return")
	}

	if got := g.Status(); got != StatusPaused {
		t.Fatalf("Status() = %v, want paused", got)
	}
	if got := l.lastStatus(); got != StatusPaused {
		t.Errorf("last delivered status = %v, want paused", got)
	}
	if ticker.Active() {
		t.Error("ticker live while the round is paused")
	}
}

// reentrantListener resizes the board from inside a pause notification
type reentrantListener struct {
	NopListener
	g      *Game
	target board.Size
	states atomic.Int32
}

func (l *reentrantListener) OnStateChange(s State) {
	l.states.Add(1)
	if s.IsPaused && l.g.Board() != l.target {
		l.g.SetBoard(l.target)
	}
}

func TestListenerMayCallBack(t *testing.T) {
	small := board.Size{Cols: 10, Rows: 10}
	l := &reentrantListener{target: small}
	g := newTestGame(t, l)
	l.g = g

	g.Start()
	done := make(chan struct{})
	go func() {
		g.Pause()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("writer called from a listener deadlocked")
	}

	if g.Board() != small {
		t.Errorf("Board() = %v, want %v", g.Board(), small)
	}
	// Start, Pause and the nested SetBoard each publish once
	if got := l.states.Load(); got != 3 {
		t.Errorf("state changes = %d, want 3", got)
	}
}

func TestViewPairsStateWithBoard(t *testing.T) {
	g := newTestGame(t, nil)
	g.Start()
	g.Pause()

	small := board.Size{Cols: 10, Rows: 10}
	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; ; i++ {
			select {
			case <-stop:
				return
			default:
			}
			if i%2 == 0 {
				g.SetBoard(small)
			} else {
				g.SetBoard(board20)
			}
		}
	}()

	for range 2000 {
		v := g.View()
		for _, seg := range v.State.Snake {
			if !v.Board.Contains(seg) {
				close(stop)
				wg.Wait()
				t.Fatalf("segment %v outside board %v of the same view", seg, v.Board)
			}
		}
	}
	close(stop)
	wg.Wait()

	v := g.View()
	v.State.Snake[0] = Position{X: -1, Y: -1}
	if g.Snapshot().Head() == (Position{X: -1, Y: -1}) {
		t.Error("mutating a view leaked into the game")
	}
}

func TestSnapshotIsolation(t *testing.T) {
	g := newTestGame(t, nil)
	g.Start()
	snap := g.Snapshot()
	snap.Snake[0] = Position{X: -1, Y: -1}
	if g.Snapshot().Head() == (Position{X: -1, Y: -1}) {
		t.Error("mutating a snapshot leaked into the game")
	}
}

func TestSaveAndResume(t *testing.T) {
	g := newTestGame(t, nil)
	g.SetRules(Rules{Difficulty: DifficultyHard})
	g.Start()
	for range 3 {
		g.Tick()
	}

	now := time.UnixMilli(1_700_000_000_000)
	save := g.SaveData(now)
	if save.ID == "" {
		t.Error("save id empty")
	}
	if save.Difficulty != DifficultyHard || save.Timestamp != now.UnixMilli() {
		t.Errorf("save difficulty=%v ts=%d", save.Difficulty, save.Timestamp)
	}
	if save.Board == nil || *save.Board != board20 {
		t.Errorf("save board = %v, want %v", save.Board, board20)
	}
	if !save.SavedAt().Equal(now) {
		t.Errorf("SavedAt() = %v, want %v", save.SavedAt(), now)
	}

	other := New(board20, medium, newRand(), nil)
	other.Resume(save)
	if other.Rules().Difficulty != DifficultyHard {
		t.Errorf("resumed difficulty = %v, want hard", other.Rules().Difficulty)
	}
	got := other.Snapshot()
	if got.Status() != StatusRunning {
		t.Errorf("resumed status = %v, want running", got.Status())
	}
	if got.Head() != save.GameState.Head() || got.Score != save.GameState.Score {
		t.Errorf("resumed head=%v score=%d, want head=%v score=%d", got.Head(), got.Score, save.GameState.Head(), save.GameState.Score)
	}
	if other.RoundID() == "" || other.RoundID() == g.RoundID() {
		t.Errorf("resumed round id %q should be fresh", other.RoundID())
	}
}

func TestResumeFinishedRoundStartsFresh(t *testing.T) {
	g := newTestGame(t, nil)
	over := runningState([]Position{{X: 1, Y: 1}}, DirRight, Position{X: 4, Y: 4})
	over.IsRunning = false
	over.IsGameOver = true
	over.Score = 200

	g.Resume(SaveData{GameState: over, Difficulty: DifficultyEasy})

	s := g.Snapshot()
	if s.Status() != StatusRunning || s.Score != 0 {
		t.Errorf("status=%v score=%d, want fresh running round", s.Status(), s.Score)
	}
}
