// Command coninfo probes the console device: it prints the largest
// possible window size, then polls the input queue and dumps every
// event until interrupted.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/conio/wincon/pkg/console"
	"github.com/conio/wincon/pkg/handle"
)

func main() {
	verbose := flag.Bool("verbose", false, "log every poll cycle")
	interval := flag.Duration("interval", 25*time.Millisecond, "poll interval when the queue is empty")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		slog.Error("stdin is not a terminal")
		os.Exit(1)
	}

	out, err := console.New()
	if err != nil {
		slog.Error("open output console", slog.Any("error", err))
		os.Exit(1)
	}

	size := out.LargestWindowSize()
	fmt.Printf("largest window size: %dx%d\n", size.X, size.Y)

	in, err := handle.Get(handle.Input)
	if err != nil {
		slog.Error("resolve input channel", slog.Any("error", err))
		os.Exit(1)
	}
	events := console.From(in)

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM, syscall.SIGINT,
	)
	defer stop()

	fmt.Println("dumping input events, interrupt to stop")
	for ctx.Err() == nil {
		n, records, err := events.ReadConsoleInput()
		if err != nil {
			slog.Warn("read input", slog.Any("error", err))
			time.Sleep(*interval)
			continue
		}
		if n == 0 {
			time.Sleep(*interval)
			continue
		}
		slog.Debug("batch", slog.Int("records", int(n)))
		for _, rec := range records {
			fmt.Printf("%T %+v\n", rec, rec)
		}
	}
}
