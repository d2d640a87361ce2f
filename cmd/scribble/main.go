package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sfomuseum/go-flags/flagset"

	"scribble-bot/config"
	app "scribble-bot/internal/application"
	"scribble-bot/internal/container"
	"scribble-bot/internal/infrastructure/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	fs := flagset.NewFlagSet("scribble")

	fs.StringVar(&cfg.InputDir, "input_dir", cfg.InputDir, "The path of the input directory containing segmentation masks.")
	fs.StringVar(&cfg.OutputDir, "output_dir", cfg.OutputDir, "The path of the directory for scribbles to be saved in.")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "Number of images processed in parallel.")
	fs.StringVar(&cfg.Backend, "backend", cfg.Backend, "Morphology backend: native or gocv.")

	flagset.Parse(fs)

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid arguments: %v", err)
	}

	services, err := container.New(cfg, storage.NewMemoryUserRepository())
	if err != nil {
		log.Fatalf("Failed to build services: %v", err)
	}

	code := run(cfg, services)
	if err := services.Close(); err != nil {
		log.Printf("Error releasing resources: %v", err)
	}
	os.Exit(code)
}

// run обрабатывает каталог и возвращает код завершения
func run(cfg *config.Config, services *container.Container) int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	report, err := services.ScribbleService.ProcessDirectory(ctx, cfg.InputDir, cfg.OutputDir)
	if errors.Is(err, app.ErrNoImages) {
		log.Printf("ERROR: No files discovered in input directory %s", cfg.InputDir)
		return 1
	}
	if err != nil {
		log.Printf("ERROR: Failed to process %s: %v", cfg.InputDir, err)
		return 1
	}

	for _, f := range report.Failed {
		log.Printf("ERROR: %s: %v", f.Path, f.Err)
	}
	log.Printf("INFO: Wrote %d of %d scribbles to %s", report.Processed(), report.Discovered, cfg.OutputDir)

	if len(report.Failed) > 0 {
		return 1
	}
	return 0
}
