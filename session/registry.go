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
	"strconv"
	"sync"

	"github.com/krotik/common/sortutil"
	"github.com/krotik/common/timeutil"

	"github.com/krotik/stingerql/rpcerror"
	"github.com/krotik/stingerql/rpclog"
)

/*
entry is one registered session together with the bookkeeping the
registry needs: its own lock (serializing OnRegister/OnRequest) and its
last-touch timestamp for idle sweeping.
*/
type entry struct {
	mu        sync.Mutex
	kind      string
	session   Session
	lastTouch string
}

/*
Registry is the process-wide id->session map plus the kind->factory
table new sessions are created from.
*/
type Registry struct {
	mu        sync.Mutex
	factories map[string]Factory
	sessions  map[int64]*entry
	nextID    int64
}

/*
NewRegistry creates an empty registry.
*/
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
		sessions:  make(map[int64]*entry),
	}
}

/*
AddKind registers a session factory under a kind name. Intended to be
called during startup wiring, before any Register traffic arrives.
*/
func (r *Registry) AddKind(kind string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.factories[kind] = factory
}

/*
Register allocates a new session of the given kind, validates params
against it, publishes it under a fresh id, and runs its OnRegister hook.
It returns the new id and whatever fields OnRegister produced.
*/
func (r *Registry) Register(kind string, params map[string]interface{}) (int64, map[string]interface{}, error) {
	r.mu.Lock()
	factory, ok := r.factories[kind]
	r.mu.Unlock()

	if !ok {
		return 0, nil, rpcerror.KindUnknown(kind)
	}

	sess := factory()

	if params == nil {
		params = map[string]interface{}{}
	}

	if err := sess.CheckParams(params); err != nil {
		return 0, nil, rpcerror.BadParams(err.Error())
	}

	r.mu.Lock()
	id := r.nextID
	r.nextID++

	if _, exists := r.sessions[id]; exists {
		r.mu.Unlock()
		return 0, nil, rpcerror.IDCollision(id)
	}

	e := &entry{kind: kind, session: sess, lastTouch: timeutil.MakeTimestamp()}
	r.sessions[id] = e
	r.mu.Unlock()

	e.mu.Lock()
	result, err := sess.OnRegister(params)
	e.mu.Unlock()

	if err != nil {
		return 0, nil, rpcerror.Internal(err.Error())
	}

	rpclog.LogInfo("session: registered", kind, "as", id)

	return id, result, nil
}

/*
Request looks up an existing session, runs its OnRequest hook under its
lock and advances its last-touch timestamp. It returns the elapsed
milliseconds since the previous touch alongside whatever fields
OnRequest produced.
*/
func (r *Registry) Request(id int64, params map[string]interface{}) (map[string]interface{}, int64, error) {
	r.mu.Lock()
	e, ok := r.sessions[id]
	r.mu.Unlock()

	if !ok {
		return nil, 0, rpcerror.SessionUnknown(id)
	}

	if params == nil {
		params = map[string]interface{}{}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	prevTouch := e.lastTouch
	result, err := e.session.OnRequest(params)
	e.lastTouch = timeutil.MakeTimestamp()

	if err != nil {
		return nil, 0, rpcerror.Internal(err.Error())
	}

	return result, elapsedMillis(prevTouch, e.lastTouch), nil
}

/*
Sweep reaps every session whose last touch is at least maxIdleSeconds
old, invoking its Destroyer hook (if any) under its own lock. Reaped
ids are returned sorted, so sweeps are deterministic to log and test.
*/
func (r *Registry) Sweep(maxIdleSeconds int64) []int64 {
	now := timeutil.MakeTimestamp()

	r.mu.Lock()
	var idle []int64
	for id, e := range r.sessions {
		if elapsedMillis(e.lastTouch, now) >= maxIdleSeconds*1000 {
			idle = append(idle, id)
		}
	}
	r.mu.Unlock()

	sortutil.Int64s(idle)

	for _, id := range idle {
		r.mu.Lock()
		e, ok := r.sessions[id]
		if ok {
			delete(r.sessions, id)
		}
		r.mu.Unlock()

		if !ok {
			continue
		}

		e.mu.Lock()
		if d, ok := e.session.(Destroyer); ok {
			d.OnDestroy()
		}
		e.mu.Unlock()

		rpclog.LogInfo("session: reaped idle session", id)
	}

	return idle
}

func elapsedMillis(prev, now string) int64 {
	p, err1 := strconv.ParseInt(prev, 10, 64)
	n, err2 := strconv.ParseInt(now, 10, 64)
	if err1 != nil || err2 != nil {
		return 0
	}
	return n - p
}
