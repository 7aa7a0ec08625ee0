package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/OpticalFlyer/pong/cli"
	"github.com/OpticalFlyer/pong/game"
	"github.com/OpticalFlyer/pong/logger"
	"github.com/OpticalFlyer/pong/render"
	"github.com/OpticalFlyer/pong/session"
	"github.com/OpticalFlyer/pong/ui"
)

// ticksPerSecond paces the window frontend at one frame every 10ms.
const ticksPerSecond = 100

// Pong implements ebiten.Game interface.
type Pong struct {
	ctx       context.Context
	session   *session.Session
	screen    *render.Screen
	ui        *ui.Controller
	log       *slog.Logger
	debugMode bool

	pointerY float64
	drawErr  error // reported by the next Update, which stops the game

	// Touch state; the touch that started first drives the paddle
	activeTouch   ebiten.TouchID
	touchTracking bool
}

func newPong(ctx context.Context, sess *session.Session, log *slog.Logger) *Pong {
	cfg := sess.State.Config()

	g := &Pong{
		ctx:      ctx,
		session:  sess,
		screen:   render.NewScreen(nil),
		ui:       ui.NewController(),
		log:      log,
		pointerY: cfg.ArenaHeight / 2,
	}

	// Status panel in the lower-left part of the arena
	panel := ui.NewPanel(cfg.BorderThickness+20, cfg.ArenaHeight-cfg.BorderThickness-110, 130, 90, "Pong")
	panel.AddChild(ui.NewLabel(func() string {
		return "Ticks: " + strconv.Itoa(sess.State.Ticks)
	}))
	panel.AddChild(ui.NewButton("Restart", sess.Restart))
	g.ui.AddPanel(panel)

	return g
}

func (g *Pong) Update() error {
	if g.drawErr != nil {
		return g.drawErr
	}
	if g.ctx.Err() != nil {
		g.log.Info("stopping window frontend", "reason", context.Cause(g.ctx))
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.log.Info("quit requested")
		return ebiten.Termination
	}

	// Update UI first to handle any panel interactions
	if err := g.ui.Update(); err != nil {
		return err
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debugMode = !g.debugMode
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Restart()
	}

	// The paddle holds still while a panel is being dragged
	if !g.ui.IsInteractingWithUI() {
		_, y := ebiten.CursorPosition()
		g.pointerY = float64(y)
		g.handleTouchEvents()
	}

	g.session.Frame(g.pointerY)
	return nil
}

func (g *Pong) Draw(screen *ebiten.Image) {
	g.screen.SetTarget(screen)
	if err := g.session.Render(g.screen); err != nil {
		g.log.Error("error drawing", "error", err)
		g.drawErr = err
		return
	}

	g.ui.Draw(screen)

	if g.debugMode {
		s := g.session.State
		g.ui.ShowDebugInfo(screen, fmt.Sprintf("Ball: (%.1f, %.1f) Speed: (%.2f, %.2f)\nPaddle: %.1f Ticks: %d",
			s.Ball.Pos.X, s.Ball.Pos.Y, s.Ball.Speed.X, s.Ball.Speed.Y,
			s.Paddle.Pos.Y, s.Ticks))
	}
}

// Layout keeps the logical screen at arena size; ebiten scales it to the
// window so pointer coordinates are always arena coordinates.
func (g *Pong) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg := g.session.State.Config()
	w, h := int(cfg.ArenaWidth), int(cfg.ArenaHeight)
	g.ui.UpdateWindowSize(w, h)
	return w, h
}

func runWindow(ctx context.Context, sess *session.Session, log *slog.Logger) error {
	cfg := sess.State.Config()
	app := newPong(ctx, sess, log)

	ebiten.SetWindowSize(int(cfg.ArenaWidth), int(cfg.ArenaHeight))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Pong")
	ebiten.SetTPS(ticksPerSecond)
	ebiten.SetVsyncEnabled(true)

	log.Info("window frontend started", "tps", ticksPerSecond)
	if err := ebiten.RunGame(app); err != nil {
		return fmt.Errorf("window frontend: %w", err)
	}
	return nil
}

func run(args []string, stdout, stderr io.Writer) error {
	config, err := cli.ParseArgs(args)
	if err != nil {
		return fmt.Errorf("failed to parse args: %w", err)
	}
	if config.ShowHelp {
		cli.PrintHelp(stdout)
		return nil
	}

	logOut := stderr
	if config.LogFile != "" {
		f, err := os.OpenFile(config.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	} else if config.Frontend == cli.FrontendTerminal {
		// stderr shares the terminal the game is drawn on
		logOut = io.Discard
	}
	if err := logger.InitLoggerTo(logOut, config.LogLevel); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.GetLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, config.Timeout)
		defer cancel()
	}

	sess := session.New(game.New(game.DefaultConfig()), log)
	log.Info("pong started", "frontend", config.Frontend)

	switch config.Frontend {
	case cli.FrontendTerminal:
		err = runTerminal(ctx, sess, log)
	case cli.FrontendHeadless:
		err = runHeadless(ctx, sess, config.Frames, log)
	default:
		err = runWindow(ctx, sess, log)
	}
	if err != nil {
		return err
	}

	log.Info("pong terminated normally", "frames", sess.Frames(), "ticks", sess.State.Ticks)
	return nil
}

func main() {
	start := time.Now()
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.GetLogger().Debug("exiting", "uptime", time.Since(start))
}
