package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/lixenwraith/balthazar/audio"
	"github.com/lixenwraith/balthazar/config"
	"github.com/lixenwraith/balthazar/core"
	"github.com/lixenwraith/balthazar/engine"
	"github.com/lixenwraith/balthazar/input"
	"github.com/lixenwraith/balthazar/logger"
	"github.com/lixenwraith/balthazar/network"
	"github.com/lixenwraith/balthazar/parameter"
	"github.com/lixenwraith/balthazar/render"
	"github.com/lixenwraith/balthazar/service"
	"github.com/lixenwraith/balthazar/system"
)

var (
	configFlag    = flag.String("config", "", "YAML config file layered over the defaults")
	envFlag       = flag.String("env", ".env", "Environment file loaded before the config")
	modeFlag      = flag.String("mode", "", "Cord mode: chain or trail")
	curveFlag     = flag.String("curve", "", "Cord curve: catmull or bezier")
	debugFlag     = flag.Bool("debug", false, "Write logs to logs/balthazar.log")
	debugAddrFlag = flag.String("debug-addr", "", "Telemetry websocket address, e.g. 127.0.0.1:8089")
	keymapFlag    = flag.String("keymap", "", "YAML key binding overrides")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "balthazar: %v\n", err)
		os.Exit(2)
	}
	keys, err := loadKeyTable(*keymapFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "balthazar: %v\n", err)
		os.Exit(2)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashReset(screen.Fini)

	err = run(screen, cfg, keys)
	screen.Fini()
	if err != nil {
		logger.Log.WithError(err).Error("exit with error")
		fmt.Fprintf(os.Stderr, "balthazar: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig layers .env, the YAML file, environment overrides and flags, in that order
func loadConfig() (config.Config, error) {
	if err := config.LoadEnvFile(*envFlag); err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return cfg, err
	}
	cfg.ApplyEnv()
	if *modeFlag != "" {
		cfg.Mode = *modeFlag
	}
	if *curveFlag != "" {
		cfg.Curve = *curveFlag
	}
	if *debugAddrFlag != "" {
		cfg.Debug.Addr = *debugAddrFlag
	}
	return cfg, cfg.Validate()
}

// loadKeyTable merges optional overrides from path onto the default bindings
func loadKeyTable(path string) (*input.KeyTable, error) {
	base := input.DefaultKeyTable()
	if path == "" {
		return base, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read keymap %s", path)
	}
	override, err := input.LoadKeyConfig(data)
	if err != nil {
		return nil, errors.Wrapf(err, "keymap %s", path)
	}
	return input.MergeKeyTable(base, override), nil
}

// run owns the game session until quit; the screen is initialized by the caller
func run(screen tcell.Screen, cfg config.Config, keys *input.KeyTable) error {
	log := logger.System("main")

	// Audio degrades to silent mode on device failure; only the feed can fail to start
	player := audio.NewPlayer(audio.LoadAudioConfig())
	netCfg := network.DefaultConfig()
	netCfg.Address = cfg.Debug.Addr
	feed := network.NewService(netCfg)

	hub := service.NewHub(player, feed)
	if err := hub.Start(); err != nil {
		return err
	}
	defer hub.Stop()

	state := input.NewState(keys, parameter.HoldWindow)
	world := engine.NewWorld()
	err := system.NewGame(world, cfg, system.Options{
		Input:     state,
		Commands:  feed.Commands(),
		Audio:     player,
		Publisher: feed,
	})
	if err != nil {
		return err
	}

	orchestrator := render.NewOrchestrator(screen)
	render.RegisterDefaults(orchestrator, world)

	scheduler, updateDone := engine.NewClockScheduler(world, parameter.GameUpdateInterval)
	scheduler.Start()
	defer scheduler.Stop()

	// Input polling runs in its own goroutine as PollEvent blocks until an event or Fini
	events := make(chan tcell.Event, 256)
	done := make(chan struct{})
	defer close(done)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	})

	frameTicker := time.NewTicker(parameter.FrameUpdateInterval)
	defer frameTicker.Stop()

	log.WithField("mode", cfg.Mode).Info("session started")
	orchestrator.RenderFrame(world, scheduler.IsPaused())

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				w, h := ev.Size()
				orchestrator.Resize(w, h)
			case *tcell.EventKey:
				switch state.HandleEvent(ev, time.Now()) {
				case input.ActionQuit:
					log.WithField("ticks", scheduler.TickCount()).Info("session ended")
					return nil
				case input.ActionPause:
					paused := scheduler.TogglePause()
					if !paused {
						// Drop input held across the pause
						state.Reset()
					}
					log.WithField("paused", paused).Info("pause toggled")
				case input.ActionMute:
					log.WithField("sound", player.ToggleMute()).Info("mute toggled")
				}
			}
		case <-updateDone:
			orchestrator.RenderFrame(world, scheduler.IsPaused())
		case <-frameTicker.C:
			// Paused or slow ticks still redraw
			orchestrator.RenderFrame(world, scheduler.IsPaused())
		}
	}
}
