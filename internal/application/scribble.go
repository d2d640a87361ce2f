package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"scribble-bot/internal/domain/entity"
	"scribble-bot/internal/domain/port"
	"scribble-bot/internal/infrastructure/imageio"
)

// ErrNoImages во входном каталоге нет подходящих файлов
var ErrNoImages = errors.New("no files discovered in input directory")

type ScribbleService struct {
	store     port.ImageStore
	generator port.ScribbleGenerator
	workers   int
}

// NewScribbleService создаёт сервис построения штрихов.
// workers ограничивает число одновременно обрабатываемых файлов.
func NewScribbleService(store port.ImageStore, generator port.ScribbleGenerator, workers int) *ScribbleService {
	if workers < 1 {
		workers = 1
	}
	return &ScribbleService{
		store:     store,
		generator: generator,
		workers:   workers,
	}
}

// ProcessDirectory строит штрихи для каждой маски каталога.
// Ошибка одного файла попадает в отчёт и не прерывает обработку остальных.
func (s *ScribbleService) ProcessDirectory(ctx context.Context, inputDir, outputDir string) (*entity.BatchReport, error) {
	if s.generator == nil {
		return nil, errors.New("generator is not configured")
	}

	paths, err := s.store.List(inputDir)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoImages, inputDir)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	report := &entity.BatchReport{Discovered: len(paths)}
	var mu sync.Mutex
	var wg sync.WaitGroup
	sem := make(chan struct{}, s.workers)

	for _, path := range paths {
		if ctx.Err() != nil {
			break
		}

		sem <- struct{}{}
		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			defer func() { <-sem }()

			out, err := s.processFile(ctx, path, outputDir)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log.Printf("Error processing %s: %v", path, err)
				report.Failed = append(report.Failed, entity.FileError{Path: path, Err: err})
				return
			}
			report.Written = append(report.Written, out)
		}(path)
	}
	wg.Wait()

	sort.Strings(report.Written)
	sort.Slice(report.Failed, func(i, j int) bool {
		return report.Failed[i].Path < report.Failed[j].Path
	})

	if err := ctx.Err(); err != nil {
		return report, err
	}
	return report, nil
}

func (s *ScribbleService) processFile(ctx context.Context, path, outputDir string) (string, error) {
	log.Printf("INFO: Processing image %s", path)

	img, err := s.store.Read(path)
	if err != nil {
		return "", err
	}

	result, err := s.generator.Generate(ctx, img)
	if err != nil {
		return "", fmt.Errorf("generate scribble: %w", err)
	}

	out := filepath.Join(outputDir, imageio.ScribbleName(path))
	if err := s.store.Write(out, result.Image); err != nil {
		return "", err
	}
	return out, nil
}

// ProcessImage строит штрихи по маске, переданной байтами, и возвращает PNG
func (s *ScribbleService) ProcessImage(ctx context.Context, data []byte) ([]byte, *entity.ScribbleResult, error) {
	if s.generator == nil {
		return nil, nil, errors.New("generator is not configured")
	}

	img, err := s.store.Decode(data)
	if err != nil {
		return nil, nil, err
	}

	result, err := s.generator.Generate(ctx, img)
	if err != nil {
		return nil, nil, fmt.Errorf("generate scribble: %w", err)
	}

	encoded, err := s.store.Encode(result.Image)
	if err != nil {
		return nil, nil, err
	}
	return encoded, result, nil
}
