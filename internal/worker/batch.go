package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
)

// TaskFunc processes one key
type TaskFunc[T any] func(ctx context.Context, key string) (T, error)

// TaskResult is the outcome of one key
type TaskResult[T any] struct {
	Key   string
	Index int
	Value T
	Err   error
}

// GetError returns the error from the task result
func (r *TaskResult[T]) GetError() error {
	return r.Err
}

type task[T any] struct {
	key   string
	index int
	fn    TaskFunc[T]
}

func (t *task[T]) Execute(ctx context.Context) Result {
	if err := ctx.Err(); err != nil {
		return &TaskResult[T]{Key: t.key, Index: t.index, Err: err}
	}
	value, err := t.fn(ctx, t.key)
	return &TaskResult[T]{Key: t.key, Index: t.index, Value: value, Err: err}
}

// Batch runs a function over many keys concurrently
type Batch[T any] struct {
	concurrency int
}

// NewBatch creates a batch runner with the given number of workers
func NewBatch[T any](concurrency int) *Batch[T] {
	return &Batch[T]{concurrency: concurrency}
}

// Run processes every key and returns one result per key in input order.
// A failing key never stops the others; keys not started before ctx is
// cancelled report ctx.Err().
func (b *Batch[T]) Run(ctx context.Context, keys []string, fn TaskFunc[T]) []*TaskResult[T] {
	if len(keys) == 0 {
		return []*TaskResult[T]{}
	}

	pool := NewPool(ctx, b.concurrency)
	pool.Start()

	for i, key := range keys {
		if !pool.Submit(&task[T]{key: key, index: i, fn: fn}) {
			break
		}
	}

	results := make([]*TaskResult[T], 0, len(keys))
	for _, r := range pool.Wait() {
		results = append(results, r.(*TaskResult[T]))
	}

	seen := make([]bool, len(keys))
	for _, r := range results {
		seen[r.Index] = true
	}
	for i, key := range keys {
		if !seen[i] {
			err := ctx.Err()
			if err == nil {
				err = context.Canceled
			}
			results = append(results, &TaskResult[T]{Key: key, Index: i, Err: err})
		}
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Index < results[j].Index
	})

	return results
}

// ReadKeysFromFile reads keys from a file (one per line), skipping blank
// lines and # comments and dropping duplicates
func ReadKeysFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var keys []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !seen[line] {
			seen[line] = true
			keys = append(keys, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return keys, nil
}
