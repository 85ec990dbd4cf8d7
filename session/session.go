/*
 * StingerQL
 *
 * Copyright 2016 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

/*
Package session implements the long-lived client session registry: a
factory registry keyed by session kind, monotonic id allocation, and
per-session locking around the register/request hooks.
*/
package session

/*
Session is the opaque, analytic-specific state the registry hands
register and request calls through to. Implementations are responsible
for their own internal consistency. Once a Session is inserted, the
registry only touches it under that session's own lock; CheckParams
runs earlier, without that lock, before any other caller can see it.
*/
type Session interface {

	/*
		CheckParams validates the parameters of a Register call against
		this session's requirements before it is made visible to Request.
	*/
	CheckParams(params map[string]interface{}) error

	/*
		OnRegister runs once, right after the session is inserted into the
		registry, under this session's lock. It returns the fields to merge
		into the register response.
	*/
	OnRegister(params map[string]interface{}) (map[string]interface{}, error)

	/*
		OnRequest runs on every Request call, under this session's lock. It
		returns the fields to merge into the request response.
	*/
	OnRequest(params map[string]interface{}) (map[string]interface{}, error)
}

/*
Destroyer is implemented by sessions that need to release resources
when the idle-timeout sweeper reaps them. It is optional; sweeping a
Session that does not implement it simply drops the entry.
*/
type Destroyer interface {
	OnDestroy()
}

/*
Factory creates a fresh, zero-value Session for one Register call.
*/
type Factory func() Session
