package app

import (
	"errors"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/lixenwraith/snakeflow/board"
	"github.com/lixenwraith/snakeflow/game"
)

// journal records collaborator calls in order
type journal struct {
	mu      sync.Mutex
	entries []string
}

func (j *journal) add(e string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = append(j.entries, e)
}

func (j *journal) list() []string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return slices.Clone(j.entries)
}

func (j *journal) count(e string) int {
	n := 0
	for _, got := range j.list() {
		if got == e {
			n++
		}
	}
	return n
}

type fakePlayer struct{ j *journal }

func (p fakePlayer) PlayEat()      { p.j.add("eat") }
func (p fakePlayer) PlayGameOver() { p.j.add("gameover") }
func (p fakePlayer) PlayPhase()    { p.j.add("phase") }

type fakeBell struct {
	j   *journal
	err error
}

func (b fakeBell) Beep() error {
	b.j.add("beep")
	return b.err
}

type fakeRecords struct {
	j       *journal
	written []game.Record
}

func (r *fakeRecords) WriteRecord(rec game.Record) error {
	r.j.add("record")
	r.written = append(r.written, rec)
	return nil
}

type fakeHUD struct {
	j     *journal
	best  int
	phase int
}

func (h *fakeHUD) AnnouncePhase(phase int, _ time.Time) {
	h.j.add("announce")
	h.phase = phase
}

func (h *fakeHUD) SetBest(score int) { h.best = score }

type fakeTicker struct {
	active   bool
	interval time.Duration
	syncs    int
}

func (t *fakeTicker) Sync(active bool, interval time.Duration) {
	t.active, t.interval = active, interval
	t.syncs++
}

type fakeFrames struct{ requests int }

func (f *fakeFrames) Request() { f.requests++ }

type fakeTimer struct{ j *journal }

func (t fakeTimer) Reset()  { t.j.add("timer.reset") }
func (t fakeTimer) Pause()  { t.j.add("timer.pause") }
func (t fakeTimer) Resume() { t.j.add("timer.resume") }
func (t fakeTimer) Stop()   { t.j.add("timer.stop") }

type fakeSnapshot struct {
	state game.State
	rules game.Rules
}

func (s fakeSnapshot) Snapshot() game.State { return s.state }
func (s fakeSnapshot) Rules() game.Rules    { return s.rules }

type feedbackFixture struct {
	fb      *Feedback
	j       *journal
	records *fakeRecords
	hud     *fakeHUD
	ticker  *fakeTicker
	frames  *fakeFrames
	src     *fakeSnapshot
}

func newFeedbackFixture() *feedbackFixture {
	j := &journal{}
	fx := &feedbackFixture{
		j:       j,
		records: &fakeRecords{j: j},
		hud:     &fakeHUD{j: j},
		ticker:  &fakeTicker{},
		frames:  &fakeFrames{},
		src:     &fakeSnapshot{rules: game.Rules{Difficulty: game.DifficultyHard}},
	}
	fx.fb = &Feedback{
		game:    fx.src,
		player:  fakePlayer{j: j},
		bell:    fakeBell{j: j},
		records: fx.records,
		hud:     fx.hud,
		ticker:  fx.ticker,
		frames:  fx.frames,
		timer:   fakeTimer{j: j},
		now:     func() time.Time { return time.Unix(0, 0) },
	}
	return fx
}

func TestFeedbackEatAndPhase(t *testing.T) {
	fx := newFeedbackFixture()
	fx.fb.OnEatFruit()
	fx.fb.OnPhaseChange(4)

	if got, want := fx.j.list(), []string{"eat", "phase", "announce"}; !slices.Equal(got, want) {
		t.Errorf("calls = %v, want %v", got, want)
	}
	if fx.hud.phase != 4 {
		t.Errorf("announced phase %d, want 4", fx.hud.phase)
	}
}

func TestFeedbackGameOverRecord(t *testing.T) {
	fx := newFeedbackFixture()
	fx.fb.SetVibration(true)
	fx.fb.SetRecord(game.Record{HighScore: 50, MaxPhase: 2, Difficulty: game.DifficultyEasy})
	if fx.hud.best != 50 {
		t.Fatalf("SetRecord best = %d, want 50", fx.hud.best)
	}

	fx.src.state = game.State{Score: 120, Phase: 3, IsGameOver: true}
	fx.fb.OnGameOver()

	want := game.Record{HighScore: 120, MaxPhase: 3, Difficulty: game.DifficultyHard}
	if got := fx.fb.Record(); got != want {
		t.Errorf("Record() = %+v, want %+v", got, want)
	}
	if len(fx.records.written) != 1 || fx.records.written[0] != want {
		t.Errorf("written = %+v", fx.records.written)
	}
	if fx.hud.best != 120 {
		t.Errorf("best = %d, want 120", fx.hud.best)
	}
	if fx.j.count("beep") != 1 || fx.j.count("gameover") != 1 {
		t.Errorf("calls = %v, want one beep and one game over sound", fx.j.list())
	}

	// A worse round leaves the record alone
	fx.src.state = game.State{Score: 10, Phase: 1, IsGameOver: true}
	fx.fb.OnGameOver()
	if len(fx.records.written) != 1 {
		t.Errorf("record rewritten for a worse round: %+v", fx.records.written)
	}
}

func TestFeedbackVibrationOff(t *testing.T) {
	fx := newFeedbackFixture()
	fx.fb.bell = fakeBell{j: fx.j, err: errors.New("no tty")}
	fx.fb.OnGameOver()
	if fx.j.count("beep") != 0 {
		t.Error("bell rang with vibration off")
	}

	fx.fb.SetVibration(true)
	fx.fb.OnGameOver()
	if fx.j.count("beep") != 1 {
		t.Error("bell silent with vibration on")
	}
}

func TestFeedbackStateChangeSyncsTicker(t *testing.T) {
	fx := newFeedbackFixture()
	running := game.State{Snake: []game.Position{{X: 1, Y: 1}}, Speed: 240, Phase: 1, IsRunning: true}

	fx.fb.OnStateChange(running)
	if !fx.ticker.active || fx.ticker.interval != 240*time.Millisecond {
		t.Errorf("ticker = active %v interval %v, want active 240ms", fx.ticker.active, fx.ticker.interval)
	}

	paused := running
	paused.IsPaused = true
	fx.fb.OnStateChange(paused)
	if fx.ticker.active {
		t.Error("ticker active while paused")
	}
	if fx.frames.requests != 2 {
		t.Errorf("frame requests = %d, want 2", fx.frames.requests)
	}
}

func TestFeedbackRoundTimer(t *testing.T) {
	fx := newFeedbackFixture()
	running := game.State{Snake: []game.Position{{X: 1, Y: 1}}, Speed: 240, IsRunning: true}
	paused := running
	paused.IsPaused = true
	over := running
	over.IsRunning, over.IsGameOver = false, true

	for _, s := range []game.State{running, running, paused, running, over, running} {
		fx.fb.OnStateChange(s)
	}

	want := []string{"timer.reset", "timer.pause", "timer.resume", "timer.stop", "timer.reset"}
	if got := fx.j.list(); !slices.Equal(got, want) {
		t.Errorf("timer calls = %v, want %v", got, want)
	}
}

func TestFeedbackAppliesPendingResize(t *testing.T) {
	fx := newFeedbackFixture()
	target := &fakeBoarder{board: board.Size{Cols: 40, Rows: 23}, locked: true}
	fx.fb.resize = NewResizeAdapter(target, 1.0)
	fx.fb.resize.Viewport(60, 24)

	running := game.State{Snake: []game.Position{{X: 1, Y: 1}}, Speed: 240, IsRunning: true}
	target.locked = false
	fx.fb.OnStateChange(running)
	if target.board.Cols != 40 {
		t.Fatal("resize applied while the round was active")
	}

	paused := running
	paused.IsPaused = true
	fx.fb.OnStateChange(paused)
	if want := (board.Size{Cols: 30, Rows: 23}); target.board != want {
		t.Errorf("board = %v after pause, want %v", target.board, want)
	}
}
