package game

import (
	"image/color"
	"log"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/Garsondee/bounce-paint/internal/sim"
)

// borderWidth is the pixel gap between the window edge and the arena.
const borderWidth = 16

// hudHeight is the score bar above the arena.
const hudHeight = 40

// statusFrames is how long a status message stays on screen (~2s at 60 TPS).
const statusFrames = 120

var (
	cellWhite  = color.RGBA{R: 0xDD, G: 0xDD, B: 0xDD, A: 0xFF}
	cellBlack  = color.RGBA{A: 0xFF}
	gridStroke = color.RGBA{G: 0xFF, A: 0xFF}
	background = color.RGBA{R: 40, G: 44, B: 52, A: 255}
)

// Game is the Ebiten front end around a sim.Session.
type Game struct {
	width  int
	height int
	offX   int // arena left edge in window pixels
	offY   int // arena top edge in window pixels

	session *sim.Session
	driver  sim.Driver
	speed   float64
	events  *sim.EventLog

	hudFace  *text.GoXFace
	showHelp bool
	prevKeys map[ebiten.Key]bool

	// Transient status line, e.g. after copying the report.
	status       string
	statusFrames int

	copyText func(string) error
}

// New creates the game for a validated config. speed is the continuous
// driver speed; seed 0 picks a clock-based seed.
func New(cfg sim.Config, seed int64, speed float64) *Game {
	events := sim.NewEventLog()
	g := &Game{
		width:    borderWidth + cfg.ArenaSize + borderWidth + panelWidth,
		height:   borderWidth + hudHeight + cfg.ArenaSize + borderWidth,
		offX:     borderWidth,
		offY:     borderWidth + hudHeight,
		speed:    speed,
		events:   events,
		hudFace:  text.NewGoXFace(basicfont.Face7x13),
		showHelp: true,
		prevKeys: make(map[ebiten.Key]bool),
		copyText: clipboard.WriteAll,
	}
	g.session = sim.NewSession(cfg, sim.WithSeed(seed), sim.WithEventLog(events))
	g.driver = sim.NewDriver(cfg.Debug, speed)
	return g
}

// restart discards the current session and starts a new one.
func (g *Game) restart(debug bool) {
	g.session = g.session.Restart(debug)
	g.driver = sim.NewDriver(debug, g.speed)
}

// Session returns the running session.
func (g *Game) Session() *sim.Session { return g.session }

func (g *Game) Update() error {
	if err := g.handleInput(); err != nil {
		return err
	}

	triggered := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace)
	for n := g.driver.Ticks(triggered); n > 0; n-- {
		g.session.Step()
	}

	if g.statusFrames > 0 {
		g.statusFrames--
	}
	return nil
}

// copyReport puts the session report on the system clipboard.
func (g *Game) copyReport() {
	report := g.session.Report(20)
	if err := g.copyText(report); err != nil {
		log.Printf("clipboard: %v", err)
		g.setStatus("clipboard unavailable")
		return
	}
	g.setStatus("report copied")
}

func (g *Game) setStatus(msg string) {
	g.status = msg
	g.statusFrames = statusFrames
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	g.drawArena(screen)
	g.drawBalls(screen)
	g.drawHUD(screen)
	g.drawPanel(screen)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// WindowSize returns the window size the layout expects.
func (g *Game) WindowSize() (int, int) {
	return g.width, g.height
}
