package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/ttacon/chalk"
	"github.com/urfave/cli"

	"github.com/lixenwraith/space-blaster/config"
	"github.com/lixenwraith/space-blaster/core"
	"github.com/lixenwraith/space-blaster/engine"
)

const version = "0.1.0"

func main() {
	// The .env file must be in the environment before flags read their EnvVar
	if _, err := config.LoadEnvFile(config.EnvFilePath(os.Args[1:])); err != nil {
		fmt.Fprintln(os.Stderr, chalk.Red.Color(err.Error()))
	}

	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, chalk.Red.Color(err.Error()))
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "space-blaster"
	app.Usage = "Two-ship terminal arcade shooter"
	app.Version = version
	app.Flags = config.Flags()
	app.Action = run
	return app
}

func run(c *cli.Context) error {
	cfg, err := config.FromCLI(c)
	if err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}
	log.Printf("starting: difficulty=%s tick_rate=%d seed=%d mode=%q", cfg.Difficulty, cfg.TickRate, cfg.Seed, cfg.StartMode)

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "creating terminal screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "initializing terminal")
	}

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	core.SetCrashScreen(screen)
	defer func() {
		core.HandleCrash(recover())
	}()

	screen.SetStyle(tcell.StyleDefault)
	screen.HideCursor()
	screen.Clear()

	clock := engine.NewMonotonicTimeProvider()
	g := newGame(cfg, screen, clock)
	g.openAudio()
	defer g.sound.Cleanup()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	core.Go(func() { pollEvents(screen, g, clock, cancel) })

	scheduler := engine.NewClockScheduler(cfg.TickInterval(), clock, g.ctx.Status)
	runErr := scheduler.Run(ctx, g.step)

	screen.Fini()
	log.Printf("stopped after %d ticks: %s", scheduler.TickCount(), g.ctx.Status.Summary())
	fmt.Print(g.summary())

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}
	return nil
}

// pollEvents feeds terminal input to the key tracker until the screen closes
func pollEvents(screen tcell.Screen, g *game, clock engine.TimeProvider, stop context.CancelFunc) {
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			// Screen finalized
			stop()
			return
		case *tcell.EventKey:
			if !g.tracker.HandleKey(ev, clock.Now()) {
				log.Printf("unbound key %s", ev.Name())
			}
		case *tcell.EventResize:
			// Renderer re-reads the size every frame
			screen.Sync()
		}
	}
}
