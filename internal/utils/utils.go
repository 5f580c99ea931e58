package utils

import (
	"cmp"
	"fmt"
	"golang.org/x/exp/slices"
	"iter"
	"os"
)

// IterateOrderedMap iterates over the given map in the order of its keys.
func IterateOrderedMap[K cmp.Ordered, V any](m map[K]V) iter.Seq2[K, V] {
	keys := make([]K, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	return func(yield func(K, V) bool) {
		for _, key := range keys {
			if !yield(key, m[key]) {
				return
			}
		}
	}
}

// PrintErrorThenExit prints the given error to os.Stderr and exits with the given code.
func PrintErrorThenExit(err error, exitCode int) {
	_, _ = fmt.Fprintln(os.Stderr, err)
	os.Exit(exitCode)
}
