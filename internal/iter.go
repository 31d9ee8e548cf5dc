// Package internal holds iterator helpers shared by the x86reg packages.
package internal

import (
	"iter"
)

// Concat joins multiple sequences into a single sequence.
func Concat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for val := range seq {
				if !yield(val) {
					return
				}
			}
		}
	}
}

// Concat2 joins multiple pair sequences into a single pair sequence.
func Concat2[K any, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, seq := range seqs {
			for key, val := range seq {
				if !yield(key, val) {
					return
				}
			}
		}
	}
}

// Pairs maps each value of seq to a (key, value) pair.
func Pairs[T any, K any, V any](seq iter.Seq[T], pair func(T) (K, V)) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for val := range seq {
			if !yield(pair(val)) {
				return
			}
		}
	}
}
