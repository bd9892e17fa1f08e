// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package connectivity

import "sync"

// ManualSource is a [Source] whose signals are pushed by the caller.
type ManualSource struct {
	mu   sync.Mutex
	subs map[int]func(bool)
	next int
}

func NewManualSource() *ManualSource {
	return &ManualSource{subs: make(map[int]func(bool))}
}

// Subscribe implements [Source].
func (s *ManualSource) Subscribe(fn func(online bool)) func() {
	s.mu.Lock()
	id := s.next
	s.next++
	s.subs[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

// Emit delivers online to every current subscriber, synchronously.
func (s *ManualSource) Emit(online bool) {
	s.mu.Lock()
	subs := make([]func(bool), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(online)
	}
}

// Subscribers returns the number of live subscriptions.
func (s *ManualSource) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}
