package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/tinyrange/evwin/internal/config"
	"github.com/tinyrange/evwin/internal/window"
)

func main() {
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	configPath := fs.String("config", "evwin.yaml", "path to the YAML config file")

	if err := fs.Parse(os.Args[1:]); err != nil {
		log.Fatalf("parse flags: %v", err)
	}

	cfg, err := config.LoadFromPath(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	w, err := window.New(cfg.Title, cfg.Width, cfg.Height,
		window.WithGraphics(cfg.Loader()),
		window.WithDisplay(cfg.Display),
		window.WithLogger(logger),
	)
	if err != nil {
		log.Fatalf("create window: %v", err)
	}
	defer w.Close()

	for {
		ev, ok := w.PollEvent()
		if !ok {
			time.Sleep(10 * time.Millisecond)
			continue
		}
		fmt.Println(ev)

		switch ev := ev.(type) {
		case window.CloseEvent:
			return
		case window.KeyPressEvent:
			if ev.Key == window.KeyEscape {
				return
			}
		}
	}
}
