package internal

import (
	"iter"
)

// IterSeq2Concat concatenates key/value iterators into a single sequence.
// Each key is yielded once, with the value from the first sequence that has it.
func IterSeq2Concat[K comparable, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		seen := make(map[K]struct{})
		for _, seq := range seqs {
			for key, value := range seq {
				if _, ok := seen[key]; ok {
					continue
				}
				seen[key] = struct{}{}
				if !yield(key, value) {
					return
				}
			}
		}
	}
}
