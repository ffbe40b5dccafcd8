package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"strconv"

	"go.uber.org/zap"

	"github.com/TomerAberbach/wikipedia-ngrams/pkg/corpus"
	"github.com/TomerAberbach/wikipedia-ngrams/pkg/ngrams"
)

func main() {
	var (
		contextsPath = flag.String("contexts", "contexts.txt", "output path for the extracted context cache")
		outPath      = flag.String("out", "", "output path for the n-gram frequency file (default <n>grams.txt)")
		fstPath      = flag.String("fst", "", "additionally write the frequency table as a vellum FST to this path")
		workers      = flag.Int("workers", runtime.NumCPU(), "corpus files processed in parallel")
		verbose      = flag.Bool("v", false, "enable debug logging")
	)
	flag.Usage = printUsage
	flag.Parse()

	// Bad arguments are informational, not an error signal: print usage and
	// leave without producing output.
	if flag.NArg() != 2 {
		printUsage()
		return
	}
	n, err := strconv.Atoi(flag.Arg(0))
	if err != nil || n <= 0 {
		printUsage()
		return
	}
	path := flag.Arg(1)
	shape, err := corpus.DetectShape(path)
	if err != nil {
		printUsage()
		return
	}

	logger := newLogger(*verbose)
	defer logger.Sync()

	counter, err := ngrams.NewCounter(n)
	if err != nil {
		printUsage()
		return
	}

	switch shape {
	case corpus.ShapeDirectory:
		cacheFile, err := os.Create(*contextsPath)
		if err != nil {
			logger.Fatal("cannot create context cache", zap.String("path", *contextsPath), zap.Error(err))
		}
		proc := corpus.NewProcessor(*workers, logger)
		if err := proc.ExtractDirectory(context.Background(), path, counter, cacheFile); err != nil {
			cacheFile.Close()
			logger.Fatal("context extraction failed", zap.Error(err))
		}
		if err := cacheFile.Close(); err != nil {
			logger.Fatal("cannot finalize context cache", zap.String("path", *contextsPath), zap.Error(err))
		}
		logger.Info("context cache written", zap.String("path", *contextsPath))

	case corpus.ShapeCacheFile:
		if err := corpus.CountCacheFile(path, counter); err != nil {
			logger.Fatal("cannot count cache file", zap.String("path", path), zap.Error(err))
		}
	}

	if *outPath == "" {
		*outPath = fmt.Sprintf("%dgrams.txt", n)
	}
	freqFile, err := os.Create(*outPath)
	if err != nil {
		logger.Fatal("cannot create frequency file", zap.String("path", *outPath), zap.Error(err))
	}
	if _, err := counter.WriteTo(freqFile); err != nil {
		freqFile.Close()
		logger.Fatal("cannot write frequency file", zap.String("path", *outPath), zap.Error(err))
	}
	if err := freqFile.Close(); err != nil {
		logger.Fatal("cannot finalize frequency file", zap.String("path", *outPath), zap.Error(err))
	}

	if *fstPath != "" {
		if err := counter.WriteFST(*fstPath); err != nil {
			logger.Fatal("cannot write FST", zap.String("path", *fstPath), zap.Error(err))
		}
	}

	logger.Info("frequency table written",
		zap.String("path", *outPath),
		zap.Int("n", n),
		zap.Int("distinct_ngrams", counter.Len()))
}

func newLogger(verbose bool) *zap.Logger {
	if verbose {
		logger, _ := zap.NewDevelopment()
		return logger
	}
	logger, _ := zap.NewProduction()
	return logger
}

func printUsage() {
	fmt.Println("Usage: ngrams [flags] <n> <path>")
	fmt.Println()
	fmt.Println("  n     n-gram window width (positive integer)")
	fmt.Println("  path  corpus directory of JSON-lines article records, or a")
	fmt.Println("        previously extracted context cache file")
	fmt.Println()
	fmt.Println("Given a directory, contexts are extracted and cached first, then")
	fmt.Println("counted. Given a cache file, counting runs directly on it. The")
	fmt.Println("frequency file is unsorted; pipe it through topgrams to sort.")
	fmt.Println()
	fmt.Println("Flags:")
	flag.PrintDefaults()
}
