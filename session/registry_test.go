/*
 * StingerQL
 *
 * Copyright 2016 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package session

import (
	"errors"
	"sync"
	"testing"
)

type fakeSession struct {
	mu         sync.Mutex
	requests   int
	destroyed  bool
	failParams bool
}

func (s *fakeSession) CheckParams(params map[string]interface{}) error {
	if s.failParams {
		return errors.New("missing required parameter")
	}
	return nil
}

func (s *fakeSession) OnRegister(params map[string]interface{}) (map[string]interface{}, error) {
	return map[string]interface{}{"kind_state": "ready"}, nil
}

func (s *fakeSession) OnRequest(params map[string]interface{}) (map[string]interface{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests++
	return map[string]interface{}{"requests": s.requests}, nil
}

func (s *fakeSession) OnDestroy() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.destroyed = true
}

func TestRegisterAndRequest(t *testing.T) {
	r := NewRegistry()
	fs := &fakeSession{}
	r.AddKind("fake", func() Session { return fs })

	id, result, err := r.Register("fake", nil)
	if err != nil {
		t.Fatal(err)
	}
	if id != 0 {
		t.Errorf("expected the first session to get id 0, got %d", id)
	}
	if result["kind_state"] != "ready" {
		t.Errorf("unexpected register result: %v", result)
	}

	reqResult, _, err := r.Request(id, nil)
	if err != nil {
		t.Fatal(err)
	}
	if reqResult["requests"] != 1 {
		t.Errorf("expected one request to be recorded, got %v", reqResult)
	}
}

func TestRegisterUnknownKind(t *testing.T) {
	r := NewRegistry()
	if _, _, err := r.Register("nope", nil); err == nil {
		t.Error("expected an error for an unregistered kind")
	}
}

func TestRegisterBadParams(t *testing.T) {
	r := NewRegistry()
	r.AddKind("fake", func() Session { return &fakeSession{failParams: true} })

	if _, _, err := r.Register("fake", nil); err == nil {
		t.Error("expected an error when CheckParams fails")
	}
}

func TestRequestUnknownSession(t *testing.T) {
	r := NewRegistry()
	if _, _, err := r.Request(42, nil); err == nil {
		t.Error("expected an error for an unknown session id")
	}
}

func TestRegisterAllocatesDistinctIDs(t *testing.T) {
	r := NewRegistry()
	r.AddKind("fake", func() Session { return &fakeSession{} })

	seen := map[int64]bool{}
	for i := 0; i < 10; i++ {
		id, _, err := r.Register("fake", nil)
		if err != nil {
			t.Fatal(err)
		}
		if seen[id] {
			t.Fatalf("id %d issued twice", id)
		}
		seen[id] = true
	}
}

func TestRegisterConcurrentDistinctIDs(t *testing.T) {
	r := NewRegistry()
	r.AddKind("fake", func() Session { return &fakeSession{} })

	const n = 50
	ids := make(chan int64, n)
	var wg sync.WaitGroup

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, _, err := r.Register("fake", nil)
			if err != nil {
				t.Error(err)
				return
			}
			ids <- id
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[int64]bool{}
	for id := range ids {
		if seen[id] {
			t.Fatalf("id %d issued twice under concurrent registration", id)
		}
		seen[id] = true
	}
	if len(seen) != n {
		t.Errorf("expected %d distinct ids, got %d", n, len(seen))
	}
}

func TestSweepReapsIdleSessions(t *testing.T) {
	r := NewRegistry()
	fs := &fakeSession{}
	r.AddKind("fake", func() Session { return fs })

	id, _, err := r.Register("fake", nil)
	if err != nil {
		t.Fatal(err)
	}

	// Force the entry's last touch far enough into the past to be idle
	// under any positive threshold.
	r.mu.Lock()
	r.sessions[id].lastTouch = "0"
	r.mu.Unlock()

	reaped := r.Sweep(1)
	if len(reaped) != 1 || reaped[0] != id {
		t.Fatalf("expected session %d to be reaped, got %v", id, reaped)
	}

	fs.mu.Lock()
	destroyed := fs.destroyed
	fs.mu.Unlock()
	if !destroyed {
		t.Error("expected OnDestroy to be called on the reaped session")
	}

	if _, _, err := r.Request(id, nil); err == nil {
		t.Error("expected the reaped session to be gone from the registry")
	}
}

func TestSweepLeavesActiveSessions(t *testing.T) {
	r := NewRegistry()
	r.AddKind("fake", func() Session { return &fakeSession{} })

	id, _, err := r.Register("fake", nil)
	if err != nil {
		t.Fatal(err)
	}

	reaped := r.Sweep(3600)
	if len(reaped) != 0 {
		t.Errorf("expected no sessions reaped, got %v", reaped)
	}

	if _, _, err := r.Request(id, nil); err != nil {
		t.Errorf("expected the active session to still be reachable: %v", err)
	}
}
