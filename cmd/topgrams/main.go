package main

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/TomerAberbach/wikipedia-ngrams/pkg/ngrams"
)

// topgrams is the explicit post-processing step for callers that want the
// frequency file sorted: the counting stage itself emits table order.

func main() {
	if len(os.Args) < 2 || len(os.Args) > 3 {
		printUsage()
		return
	}

	path := os.Args[1]
	limit := -1
	if len(os.Args) == 3 {
		parsed, err := strconv.Atoi(os.Args[2])
		if err != nil || parsed < 1 {
			printUsage()
			return
		}
		limit = parsed
	}

	counter, err := readTable(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", path, err)
		os.Exit(1)
	}

	type entry struct {
		key   string
		count int
	}
	entries := make([]entry, 0, counter.Len())
	counter.Each(func(key string, count int) {
		entries = append(entries, entry{key, count})
	})
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].key < entries[j].key
	})

	if limit < 0 || limit > len(entries) {
		limit = len(entries)
	}
	w := bufio.NewWriter(os.Stdout)
	for _, e := range entries[:limit] {
		fmt.Fprintf(w, "%d %s\n", e.count, e.key)
	}
	w.Flush()
}

func readTable(path string) (*ngrams.Counter, error) {
	if strings.HasSuffix(path, ".fst") {
		return ngrams.ReadFST(path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ngrams.ReadFrequencies(file)
}

func printUsage() {
	fmt.Println("Usage: topgrams <frequency-file> [limit]")
	fmt.Println()
	fmt.Println("Sorts an n-gram frequency file (text, or .fst written with")
	fmt.Println("ngrams -fst) by descending count and prints the top entries,")
	fmt.Println("all of them when no limit is given.")
}
