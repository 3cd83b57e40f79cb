package driver

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/snirk-lang/protosnirk-sub001/internal/diag"
	"github.com/snirk-lang/protosnirk-sub001/internal/project"
	"github.com/snirk-lang/protosnirk-sub001/internal/source"
)

// FileSummary — итог проверки одного файла в батче.
type FileSummary struct {
	Path     string
	Errors   int
	Warnings int
	Lints    int
	Cached   bool
	Bag      *diag.Bag
	FileSet  *source.FileSet
	LoadErr  error
}

// Clean reports whether the file produced no errors.
func (s *FileSummary) Clean() bool {
	return s.LoadErr == nil && s.Errors == 0
}

// ListSourceFiles собирает *.snk под root в детерминированном порядке.
func ListSourceFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// Скрытые каталоги не сканируем.
			if name := d.Name(); name != "." && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(path, ".snk") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// CheckDir проверяет файлы параллельно: воркер на файл с лимитом jobs,
// собственный bag на файл, слияние после. events может быть nil.
func CheckDir(
	ctx context.Context,
	files []string,
	manifest project.Manifest,
	cache *DiskCache,
	events chan<- Event,
) ([]FileSummary, error) {
	jobs := manifest.Check.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	emit := func(ev Event) {
		if events != nil {
			select {
			case events <- ev:
			case <-ctx.Done():
			}
		}
	}

	// Результаты: индексы уникальны для каждой горутины, мьютекс не нужен.
	summaries := make([]FileSummary, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, max(len(files), 1)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			emit(Event{Path: path, Stage: StageParse})
			summaries[i] = checkOne(path, manifest, cache)
			s := &summaries[i]
			emit(Event{
				Path:     path,
				Stage:    StageDone,
				Errors:   s.Errors,
				Warnings: s.Warnings,
				Lints:    s.Lints,
				Cached:   s.Cached,
			})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return summaries, err
	}
	return summaries, nil
}

func checkOne(path string, manifest project.Manifest, cache *DiskCache) FileSummary {
	content, err := os.ReadFile(path)
	if err != nil {
		return FileSummary{Path: path, LoadErr: err, Errors: 1}
	}
	key := project.HashBytes(content)

	if payload, ok := cache.Get(key); ok && payload.Path == path {
		return FileSummary{Path: path, Cached: true}
	}

	fs := source.NewFileSet()
	fileID := fs.Add(path, content, 0)
	res, err := checkLoaded(fs, fs.Get(fileID), manifest)
	if err != nil {
		return FileSummary{Path: path, LoadErr: err, Errors: 1}
	}

	summary := FileSummary{
		Path:     path,
		Errors:   len(res.Bag.Errors()),
		Warnings: len(res.Bag.Warnings()),
		Lints:    len(res.Bag.Lints()),
		Bag:      res.Bag,
		FileSet:  fs,
	}
	// Кешируем только пустой итог: файл с любыми диагностиками
	// перепроверяется, чтобы воспроизвести их текст.
	if res.Bag.Len() == 0 {
		_ = cache.Put(key, &CheckPayload{Path: path, ContentHash: key})
	}
	return summary
}
