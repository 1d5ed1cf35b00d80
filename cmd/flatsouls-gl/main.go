package main

import (
	"flag"
	"fmt"
	"os"


	"github.com/lixenwraith/flatsouls/app"
	"github.com/lixenwraith/flatsouls/audio"
	"github.com/lixenwraith/flatsouls/core"
	"github.com/lixenwraith/flatsouls/engine"
	"github.com/lixenwraith/flatsouls/log"
	"github.com/lixenwraith/flatsouls/window"
)

var (
	configFlag  = flag.String("config", "", "YAML config file")
	sceneFlag   = flag.String("scene", "", "Scene: planar, spatial (overrides config)")
	debugFlag   = flag.Bool("debug", false, "Log at debug level")
	profileFlag = flag.String("profile", "", "Profile mode: cpu, mem")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "flatsouls-gl: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	defer core.Recover()

	stopProfile, err := app.StartProfile(*profileFlag, ".")
	if err != nil {
		return err
	}
	defer stopProfile()

	// empty default log file: the window binary logs to stderr
	a, err := app.Load(app.Options{
		ConfigPath: *configFlag,
		Scene:      *sceneFlag,
		Debug:      *debugFlag,
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

	ctx, err := a.NewContext(engine.NewClock(engine.SystemTime{}), sound)
	if err != nil {
		return err
	}

	painter := window.NewPainter(a.Sheet, a.Font.Atlas)
	if err := window.NewGame(ctx, a.Keys, painter).Run(); err != nil {
		return err
	}
	a.Logger.Info("shutdown", append(ctx.Stats.Fields(), log.Uint64("digest", ctx.Store.Digest()))...)
	return nil
}
