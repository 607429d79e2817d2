package cmd

import (
	"fmt"
	"strconv"
	"time"

	"chyp8/config"
	"chyp8/emu/audio"
	"chyp8/emu/cpu"
	"chyp8/emu/host"
	"chyp8/emu/screen"
	"chyp8/emu/term"
	"chyp8/logger"

	"github.com/faiface/pixel/pixelgl"
	"github.com/retroenv/retrogolib/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var headless int

type startArgs struct {
	scale   int
	delay   time.Duration
	romPath string
}

func parseStartArgs(args []string) (startArgs, error) {
	scale, err := strconv.Atoi(args[0])
	if err != nil || scale <= 0 {
		return startArgs{}, fmt.Errorf("scale must be a positive integer, got %q", args[0])
	}
	delay, err := strconv.Atoi(args[1])
	if err != nil || delay < 0 {
		return startArgs{}, fmt.Errorf("delay must be a non-negative integer, got %q", args[1])
	}
	return startArgs{
		scale:   scale,
		delay:   time.Duration(delay) * time.Millisecond,
		romPath: args[2],
	}, nil
}

// chyp8 10 3 'path/to/ROM'
func Start(cmd *cobra.Command, args []string) error {
	sa, err := parseStartArgs(args)
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true

	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}
	l, err := logger.New(cfg.Log, cfg.Trace)
	if err != nil {
		return err
	}

	rom, err := host.ReadROM(sa.romPath)
	if err != nil {
		return err
	}
	emu := cpu.NewEMU()
	if err := emu.LoadROM(rom); err != nil {
		return err
	}
	l.Info("loaded rom", log.String("path", sa.romPath), log.Int("size", len(rom)))

	opts := host.Options{
		Delay:  sa.delay,
		Logger: l,
		Trace:  cfg.Trace,
	}
	if cfg.Beep {
		buzzer, err := audio.NewBuzzer(cfg.BeepFrequency)
		if err != nil {
			l.Warn("sound disabled", log.Err(err))
		} else {
			defer buzzer.Close()
			opts.Buzzer = buzzer
		}
	}

	if headless > 0 {
		opts.Display = term.New(cmd.OutOrStdout())
		return host.New(emu, opts).RunCycles(headless)
	}

	// pixelgl needs the main thread; Run blocks until the window loop returns.
	var runErr error
	pixelgl.Run(func() {
		runErr = runWindow(emu, opts, sa, cfg, l)
	})
	return runErr
}

func runWindow(emu *cpu.EMU, opts host.Options, sa startArgs, cfg config.Config, l *log.Logger) error {
	win, err := screen.NewWindow(screen.Config{
		Title:      "Chyp8",
		Scale:      sa.scale,
		VSync:      cfg.VSync,
		Foreground: cfg.Foreground,
		Background: cfg.Background,
		Keymap:     cfg.Keymap,
	})
	if err != nil {
		return err
	}
	defer win.Destroy()
	l.Info("window opened",
		log.Int("width", int(win.Bounds().W())),
		log.Int("height", int(win.Bounds().H())),
		log.String("delay", sa.delay.String()))

	opts.Display = win
	opts.Input = win
	return host.New(emu, opts).Run()
}
