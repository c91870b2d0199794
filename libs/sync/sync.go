//go:build !deadlock
// +build !deadlock

// Package sync provides the mutex types used throughout the library. Build
// with the "deadlock" tag to swap in deadlock-detecting implementations.
package sync

import "sync"

// A Mutex is a mutual exclusion lock.
type Mutex struct {
	sync.Mutex
}

// An RWMutex is a reader/writer mutual exclusion lock.
type RWMutex struct {
	sync.RWMutex
}
