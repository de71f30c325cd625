package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/bounce-paint/internal/sim"
)

type terminal struct {
	screen  tcell.Screen
	session *sim.Session
	driver  sim.Driver
	speed   float64
	sound   *sound

	prevButtons tcell.ButtonMask
}

// newTerminal takes an initialised screen. snd may be nil for silence.
func newTerminal(screen tcell.Screen, cfg sim.Config, seed int64, speed float64, snd *sound) *terminal {
	screen.EnableMouse()
	return &terminal{
		screen:  screen,
		session: sim.NewSession(cfg, sim.WithSeed(seed)),
		driver:  sim.NewDriver(cfg.Debug, speed),
		speed:   speed,
		sound:   snd,
	}
}

func (t *terminal) restart(debug bool) {
	t.session = t.session.Restart(debug)
	t.driver = sim.NewDriver(debug, t.speed)
}

// step runs one tick and plays a tone for every ball that scored.
func (t *terminal) step() {
	w, b := t.session.White(), t.session.Black()
	ws, bs := w.Score, b.Score
	t.session.Step()
	if w.Score > ws {
		t.sound.playPaint(sim.White)
	}
	if b.Score > bs {
		t.sound.playPaint(sim.Black)
	}
}

// trigger runs a manual step. Continuous mode ignores it so a key press
// never adds a frame's worth of ticks.
func (t *terminal) trigger() {
	if t.driver.Mode() != sim.DriveManual {
		return
	}
	for n := t.driver.Ticks(true); n > 0; n-- {
		t.step()
	}
}

// clickStarted reports a primary button press, ignoring held buttons and
// releases.
func clickStarted(prev, cur tcell.ButtonMask) bool {
	return cur&tcell.Button1 != 0 && prev&tcell.Button1 == 0
}

// handleInput returns false when the user asked to quit. triggered reports a
// step request from Space or a mouse click.
func (t *terminal) handleInput(ev tcell.Event) (keepRunning, triggered bool) {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		buttons := ev.Buttons()
		pressed := clickStarted(t.prevButtons, buttons)
		t.prevButtons = buttons
		return true, pressed
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false, false
		}
		if ev.Key() != tcell.KeyRune {
			return true, false
		}
		switch ev.Rune() {
		case 'q':
			return false, false
		case ' ':
			return true, true
		case 'r':
			t.restart(t.session.Debug())
		case 'd':
			t.restart(!t.session.Debug())
		case 'p':
			if cd, ok := t.driver.(*sim.ContinuousDriver); ok {
				cd.TogglePause()
			}
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true, false
}

func (t *terminal) run(fps int) {
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	t.draw()
	for {
		select {
		case ev := <-eventChan:
			keepRunning, triggered := t.handleInput(ev)
			if !keepRunning {
				return
			}
			if triggered {
				t.trigger()
				t.draw()
			}

		case <-ticker.C:
			if t.driver.Mode() == sim.DriveContinuous {
				for n := t.driver.Ticks(false); n > 0; n-- {
					t.step()
				}
			}
			t.draw()
		}
	}
}

func (t *terminal) draw() {
	s := t.screen
	s.Clear()

	a := t.session.Arena()
	debug := t.session.Debug()
	a.EachCell(func(row, col int, c sim.Color) {
		for sub := 0; sub < cellCols; sub++ {
			s.SetContent(col*cellCols+sub, hudRows+row, cellRune(debug, sub), nil, cellStyle(c))
		}
	})

	for _, b := range []*sim.Ball{t.session.White(), t.session.Black()} {
		x, y := ballPos(b, a.CellSize())
		under := a.CellAt(b.X, b.Y)
		bg := termBlack
		if a.InBounds(under.Row, under.Col) {
			bg = termColor(a.Color(under.Row, under.Col))
		}
		style := tcell.StyleDefault.Foreground(termColor(b.Color)).Background(bg)
		s.SetContent(x, hudRows+y, ballGlyph, nil, style)
	}

	leader := t.session.Leader()
	hud := tcell.StyleDefault
	drawText(s, 0, 0, fmt.Sprintf("WHITE %d%s", t.session.White().Score, leaderMark(leader, sim.White)), hud)
	black := fmt.Sprintf("BLACK %d%s", t.session.Black().Score, leaderMark(leader, sim.Black))
	drawText(s, a.N()*cellCols-len([]rune(black)), 0, black, hud)
	drawText(s, 0, hudRows+a.N(), fmt.Sprintf("tick %d  mode %s  [space] step  [r]estart  [d]ebug  [p]ause  [q]uit",
		t.session.Tick(), t.driver.Mode()), hud)

	s.Show()
}

func (t *terminal) cleanup() {
	t.sound.close()
	t.screen.Fini()
}
