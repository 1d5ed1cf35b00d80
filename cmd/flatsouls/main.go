package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/flatsouls/app"
	"github.com/lixenwraith/flatsouls/audio"
	"github.com/lixenwraith/flatsouls/core"
	"github.com/lixenwraith/flatsouls/engine"
	"github.com/lixenwraith/flatsouls/input"
	"github.com/lixenwraith/flatsouls/log"
	"github.com/lixenwraith/flatsouls/parameter"
	"github.com/lixenwraith/flatsouls/terminal"
)

var (
	configFlag      = flag.String("config", "", "YAML config file")
	sceneFlag       = flag.String("scene", "", "Scene: planar, spatial (overrides config)")
	debugFlag       = flag.Bool("debug", false, "Log at debug level")
	logFlag         = flag.String("log", "flatsouls.log", "Log file when log.file is unset")
	profileFlag     = flag.String("profile", "", "Profile mode: cpu, mem")
	writeConfigFlag = flag.String("write-config", "", "Write the default config to this path and exit")
)

func main() {
	flag.Parse()

	if *writeConfigFlag != "" {
		if err := app.WriteDefaultConfig(*writeConfigFlag); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "flatsouls: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	stopProfile, err := app.StartProfile(*profileFlag, ".")
	if err != nil {
		return err
	}
	defer stopProfile()

	a, err := app.Load(app.Options{
		ConfigPath:     *configFlag,
		Scene:          *sceneFlag,
		Debug:          *debugFlag,
		DefaultLogFile: *logFlag,
	})
	if err != nil {
		return err
	}
	defer a.Close()
	core.RegisterLogger(a.Logger)

	sound := audio.NewSoundManager()
	if a.Config.Audio.Enabled {
		if err := sound.Initialize(); err != nil {
			a.Logger.Warn("audio unavailable, continuing without sound", log.Error(err))
		} else {
			defer sound.Cleanup()
		}
	}

	screen, err := terminal.Open()
	if err != nil {
		return err
	}
	defer terminal.Close(screen)

	ctx, err := a.NewContext(engine.NewClock(engine.SystemTime{}), sound)
	if err != nil {
		return err
	}

	events := make(chan input.Event, parameter.InputQueueSize)
	poller := terminal.NewPoller(screen, a.Keys, events, a.Logger)
	raster := terminal.NewRasterizer(screen, a.Sheet, a.Glyphs())
	tracker := input.NewTracker(parameter.KeyHoldTimeout)
	driver := engine.NewDriver(ctx, tracker, events, raster, a.Config.FrameInterval())

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, gctx := errgroup.WithContext(sigCtx)
	runCtx, cancel := context.WithCancel(gctx)
	defer cancel()

	g.Go(func() error {
		defer core.Recover()
		return poller.Run(runCtx)
	})
	g.Go(func() error {
		defer core.Recover()
		defer cancel()
		return driver.Run(runCtx)
	})

	err = g.Wait()
	a.Logger.Info("shutdown", append(ctx.Stats.Fields(), log.Uint64("digest", ctx.Store.Digest()))...)
	return err
}
