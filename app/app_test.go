package app

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/flappy/asset"
	"github.com/lixenwraith/flappy/config"
	"github.com/lixenwraith/flappy/engine"
)

type soundLog struct {
	flaps, points, hits, dies int
	volume                    float64
}

func (s *soundLog) Volume() float64 { return s.volume }

func (s *soundLog) SetVolume(v float64) { s.volume = min(max(v, 0), 1) }

func (s *soundLog) PlayFlap()  { s.flaps++ }
func (s *soundLog) PlayPoint() { s.points++ }
func (s *soundLog) PlayHit()   { s.hits++ }
func (s *soundLog) PlayDie()   { s.dies++ }

func initScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(80, 24)
	return screen
}

func newTestApp(t *testing.T, screen tcell.Screen) (*App, *engine.Game, *engine.MockTimeProvider, *soundLog) {
	t.Helper()
	bird, err := asset.LoadBird(2)
	if err != nil {
		t.Fatalf("LoadBird: %v", err)
	}

	clock := engine.NewMockTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	game := engine.NewGame(engine.Options{
		Config:   config.Default(),
		BirdMask: bird.Mask(),
		Time:     clock,
		Rand:     rand.New(rand.NewSource(1)),
	})
	sounds := &soundLog{volume: 0.5}
	a := New(Options{Screen: screen, Game: game, Bird: bird, Sounds: sounds})
	return a, game, clock, sounds
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestTickAppliesQueuedFlap(t *testing.T) {
	screen := initScreen(t)
	defer screen.Fini()
	a, game, _, sounds := newTestApp(t, screen)

	a.events <- key(' ')
	if !a.Tick() {
		t.Fatal("Tick reported quit")
	}

	if game.Phase() != engine.PhasePlaying {
		t.Errorf("Expected Playing after space, got %s", game.Phase())
	}
	if sounds.flaps != 1 {
		t.Errorf("Expected one flap sound, got %d", sounds.flaps)
	}
}

func TestTickQuit(t *testing.T) {
	screen := initScreen(t)
	defer screen.Fini()
	a, _, _, _ := newTestApp(t, screen)

	a.events <- key('q')
	if a.Tick() {
		t.Error("Expected Tick to report quit")
	}
	if !a.Quitting() {
		t.Error("Expected quitting state")
	}
}

func TestCrashPlaysHitAndDie(t *testing.T) {
	screen := initScreen(t)
	defer screen.Fini()
	a, game, clock, sounds := newTestApp(t, screen)

	a.HandleIntent(a.input.HandleEvent(key(' ')))
	for i := 0; i < 1000 && game.Phase() == engine.PhasePlaying; i++ {
		a.Tick()
	}
	if game.Phase() != engine.PhaseGameOver {
		t.Fatalf("Expected GameOver after free fall, got %s", game.Phase())
	}
	if sounds.hits != 1 || sounds.dies != 1 {
		t.Errorf("Expected one hit and one die sound, got %d %d", sounds.hits, sounds.dies)
	}

	// Enter before the delay is ignored, after it restarts
	a.events <- tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)
	a.Tick()
	if game.Phase() != engine.PhaseGameOver {
		t.Errorf("Expected restart ignored before delay, got %s", game.Phase())
	}

	clock.Advance(time.Second)
	a.events <- tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)
	a.Tick()
	if game.Phase() != engine.PhaseWaiting {
		t.Errorf("Expected Waiting after restart, got %s", game.Phase())
	}
}

func TestPauseAndPointerToggle(t *testing.T) {
	screen := initScreen(t)
	defer screen.Fini()
	a, game, _, _ := newTestApp(t, screen)

	a.events <- key(' ')
	a.events <- key('p')
	a.Tick()
	if !game.Paused() {
		t.Error("Expected paused after p")
	}

	a.events <- key('p')
	a.events <- key('m')
	a.Tick()
	if game.Paused() {
		t.Error("Expected resumed after second p")
	}
	if game.PositionSource() == nil {
		t.Fatal("Expected pointer steering after m")
	}

	// Mouse on row 12 of 24 centers the bird on the middle of the world
	a.events <- tcell.NewEventMouse(10, 12, tcell.ButtonNone, tcell.ModNone)
	a.Tick()
	bird := game.Bird()
	if want := 12.5/24*512 - bird.H/2; bird.Y != want {
		t.Errorf("Expected bird y %v from pointer, got %v", want, bird.Y)
	}

	a.events <- key('m')
	a.Tick()
	if game.PositionSource() != nil {
		t.Error("Expected pointer steering off after second m")
	}
}

func TestTickRendersScore(t *testing.T) {
	screen := initScreen(t)
	defer screen.Fini()
	a, _, _, _ := newTestApp(t, screen)

	a.events <- key(' ')
	a.Tick()

	found := false
	for x := 35; x <= 45; x++ {
		if mainc, _, _, _ := screen.GetContent(x, 1); mainc == '0' {
			found = true
		}
	}
	if !found {
		t.Error("Expected score 0 near the top center")
	}
}

func TestRunQuitsOnKey(t *testing.T) {
	screen := initScreen(t)
	defer screen.Fini()
	a, _, _, _ := newTestApp(t, screen)

	errCh := make(chan error, 1)
	go func() { errCh <- a.Run(context.Background()) }()

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-errCh:
		if err != nil {
			t.Errorf("Expected nil error on quit, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after quit key")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	screen := initScreen(t)
	defer screen.Fini()
	a, _, _, _ := newTestApp(t, screen)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- a.Run(ctx) }()

	cancel()
	select {
	case err := <-errCh:
		if err != context.Canceled {
			t.Errorf("Expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRunStopsOnScreenClose(t *testing.T) {
	screen := initScreen(t)
	a, _, _, _ := newTestApp(t, screen)

	errCh := make(chan error, 1)
	go func() { errCh <- a.Run(context.Background()) }()

	// Let the loop start before closing
	time.Sleep(50 * time.Millisecond)
	screen.Fini()

	select {
	case err := <-errCh:
		if err != nil {
			t.Errorf("Expected nil error on screen close, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after screen close")
	}
}

func TestVolumeKeys(t *testing.T) {
	screen := initScreen(t)
	defer screen.Fini()
	a, _, _, sounds := newTestApp(t, screen)

	a.events <- key('+')
	a.events <- key('=')
	a.Tick()
	if sounds.volume < 0.69 || sounds.volume > 0.71 {
		t.Errorf("Expected volume 0.7 after two raises, got %v", sounds.volume)
	}

	for i := 0; i < 10; i++ {
		a.events <- key('-')
	}
	a.Tick()
	if sounds.volume != 0 {
		t.Errorf("Expected volume clamped to 0, got %v", sounds.volume)
	}
}

func TestVolumeKeysWithoutMixer(t *testing.T) {
	screen := initScreen(t)
	defer screen.Fini()
	a, _, _, _ := newTestApp(t, screen)
	a.sounds = silent{}

	a.events <- key('+')
	if !a.Tick() {
		t.Error("Expected loop to continue after volume key without a mixer")
	}
}
