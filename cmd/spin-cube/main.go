package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/lixenwraith/spin-cube/constant"
	"github.com/lixenwraith/spin-cube/render"
	"github.com/lixenwraith/spin-cube/terminal"
)

var (
	debugFlag   = flag.Bool("debug", false, "Write debug log to logs/")
	backendFlag = flag.String("backend", "ansi", "Presenter: ansi, tcell")
	framesFlag  = flag.Int("frames", 0, "Stop after N frames (0 = run until interrupted)")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the renderer crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mSPIN-CUBE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	if isTerm, w, h := terminal.Probe(os.Stdout); isTerm && w > 0 && h > 0 &&
		(w < constant.ScreenWidth || h < constant.ScreenHeight) {
		log.Printf("terminal %dx%d is smaller than the %dx%d frame; output will wrap",
			w, h, constant.ScreenWidth, constant.ScreenHeight)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	presenter, err := newPresenter(*backendFlag, cancel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create presenter: %v\n", err)
		os.Exit(1)
	}

	if err := presenter.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	log.Printf("rendering %dx%d with %s presenter", constant.ScreenWidth, constant.ScreenHeight, *backendFlag)
	err = render.NewRenderer().Run(ctx, presenter, *framesFlag)

	// Normal exit terminal cleanup; os.Exit below skips defers
	presenter.Fini()

	if err != nil {
		log.Printf("render loop: %v", err)
		fmt.Fprintf(os.Stderr, "Render failed: %v\n", err)
		os.Exit(1)
	}
	log.Printf("stopped")
}

// newPresenter resolves the backend flag; interrupt is called when the presenter sees a quit key
func newPresenter(backend string, interrupt context.CancelFunc) (terminal.Presenter, error) {
	switch backend {
	case "ansi", "":
		return terminal.NewANSIWriter(os.Stdout), nil
	case "tcell":
		ts, err := terminal.NewTcellScreen()
		if err != nil {
			return nil, err
		}
		go func() {
			<-ts.Done()
			interrupt()
		}()
		return ts, nil
	default:
		return nil, fmt.Errorf("unknown backend %q", backend)
	}
}
