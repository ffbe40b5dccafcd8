// Package corpus locates and streams corpus input, in either supported
// shape, through context extraction and n-gram counting.
package corpus

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/TomerAberbach/wikipedia-ngrams/pkg/contexts"
	"github.com/TomerAberbach/wikipedia-ngrams/pkg/ngrams"
	"github.com/TomerAberbach/wikipedia-ngrams/pkg/sentences"
)

// Shape identifies which input shape a path holds.
type Shape int

const (
	// ShapeDirectory is a directory tree of newline-delimited JSON article
	// records, all treated as one corpus.
	ShapeDirectory Shape = iota
	// ShapeCacheFile is a single file of previously extracted contexts, one
	// per line.
	ShapeCacheFile
)

// DetectShape inspects path and reports which input shape it holds.
func DetectShape(path string) (Shape, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	if info.IsDir() {
		return ShapeDirectory, nil
	}
	return ShapeCacheFile, nil
}

// Processor drives context extraction and n-gram counting over a corpus
// directory. Corpus files carry no cross-file state, so they are processed
// in parallel: each worker counts into a private table merged into the
// shared one when its file is done, and extracted contexts are appended to
// the cache writer under a lock.
type Processor struct {
	workers   int
	logger    *zap.Logger
	extractor *contexts.Extractor
}

// NewProcessor creates a processor running up to workers corpus files in
// parallel. A nil logger disables logging.
func NewProcessor(workers int, logger *zap.Logger) *Processor {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Processor{
		workers:   workers,
		logger:    logger,
		extractor: contexts.NewExtractor(),
	}
}

// ExtractDirectory walks root recursively, extracts contexts from every
// record of every file, writes each context as one space-joined line to
// cache, and counts its n-grams into counter.
func (p *Processor) ExtractDirectory(ctx context.Context, root string, counter *ngrams.Counter, cache io.Writer) error {
	files, err := listFiles(root)
	if err != nil {
		return err
	}
	p.logger.Info("extracting contexts",
		zap.String("root", root),
		zap.Int("files", len(files)),
		zap.Int("workers", p.workers))

	var (
		mu      sync.Mutex // guards cache and counter
		emitted atomic.Int64
		skipped atomic.Int64
	)

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(p.workers)
	for _, path := range files {
		path := path
		group.Go(func() error {
			local, err := ngrams.NewCounter(counter.N())
			if err != nil {
				return err
			}
			n, s, err := p.extractFile(ctx, path, local, cache, &mu)
			emitted.Add(n)
			skipped.Add(s)
			if err != nil {
				return err
			}

			mu.Lock()
			defer mu.Unlock()
			return counter.Merge(local)
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	p.logger.Info("extraction complete",
		zap.Int64("contexts", emitted.Load()),
		zap.Int64("skipped_records", skipped.Load()),
		zap.Int("distinct_ngrams", counter.Len()))
	return nil
}

// extractFile streams one corpus file record by record. Contexts are
// buffered per record and flushed to the shared cache writer under the lock,
// so at any instant only one record's working set is live per worker.
func (p *Processor) extractFile(ctx context.Context, path string, counter *ngrams.Counter, cache io.Writer, mu *sync.Mutex) (emitted, skipped int64, err error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer file.Close()

	var buf bytes.Buffer
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), scannerBufSize)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return emitted, skipped, err
		}

		rec, ok := parseRecord(scanner.Bytes())
		if !ok {
			skipped++
			continue
		}

		buf.Reset()
		for _, sentence := range sentences.Split(rec.Text) {
			for _, tokens := range p.extractor.Extract(sentences.Tokenize(sentence)) {
				counter.Add(tokens)
				buf.WriteString(strings.Join(tokens, " "))
				buf.WriteByte('\n')
				emitted++
			}
		}
		if buf.Len() > 0 {
			mu.Lock()
			_, werr := cache.Write(buf.Bytes())
			mu.Unlock()
			if werr != nil {
				return emitted, skipped, werr
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return emitted, skipped, err
	}

	p.logger.Debug("file processed",
		zap.String("path", path),
		zap.Int64("contexts", emitted),
		zap.Int64("skipped_records", skipped))
	return emitted, skipped, nil
}

// listFiles collects every regular file under root, recursively.
func listFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}
