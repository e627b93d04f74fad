// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

// Package enumerable holds small generic helpers over slices.
package enumerable

// Filter returns the elements of slice for which predicate holds, in order.
func Filter[T any](slice []T, predicate func(T) bool) []T {
	filtered := make([]T, 0, len(slice))
	for _, elem := range slice {
		if predicate(elem) {
			filtered = append(filtered, elem)
		}
	}
	return filtered
}

func Map[T, R any](slice []T, mapper func(T) R) []R {
	mapped := make([]R, len(slice))
	for i, elem := range slice {
		mapped[i] = mapper(elem)
	}
	return mapped
}

// Reduce folds slice left to right starting from initial.
func Reduce[T, A any](slice []T, initial A, reducer func(A, T) A) A {
	acc := initial
	for _, elem := range slice {
		acc = reducer(acc, elem)
	}
	return acc
}
