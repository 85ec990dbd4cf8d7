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
Command graphqueryd wires up the idle-session sweeper, the one piece of
the query and session core that runs on its own instead of in response
to a call. Building a *dispatch.Context and handing it requests is the
JSON-RPC transport's job -- an external collaborator this command does
not implement -- see SPEC_FULL.md. Until that transport exists there is
nothing to hand a *dispatch.Context to, so main does not construct one;
dispatch.NewContext is exercised directly by dispatch's own tests.
*/
package main

import (
	"os"
	"time"

	"github.com/krotik/stingerql/config"
	"github.com/krotik/stingerql/rpclog"
	"github.com/krotik/stingerql/session"
)

func main() {
	if len(os.Args) > 1 {
		if err := config.LoadConfigFile(os.Args[1]); err != nil {
			rpclog.LogWarn("could not load config file", os.Args[1], ":", err, "- using defaults")
			config.LoadDefaultConfig()
		}
	} else {
		config.LoadDefaultConfig()
	}

	if config.Bool(config.EnableDebugLog) {
		rpclog.LogDebug = rpclog.LogInfo
	}

	rpclog.LogInfo("graphqueryd ready, RPCListen=", config.Str(config.RPCListen))

	sessions := session.NewRegistry()

	go sweepSessionsForever(sessions)

	select {}
}

/*
sweepSessionsForever runs the idle-session reaper on the configured
interval. It is started as its own goroutine rather than invoked inline
from the request path -- per spec.md §5, idle sessions are reaped by an
external sweeper, not as a side effect of handling a request.
*/
func sweepSessionsForever(sessions *session.Registry) {
	interval := time.Duration(config.Int(config.SessionSweepInterval)) * time.Second
	idleTimeout := int64(config.Int(config.SessionIdleTimeout))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		if reaped := sessions.Sweep(idleTimeout); len(reaped) > 0 {
			rpclog.LogInfo("swept", len(reaped), "idle sessions:", reaped)
		}
	}
}
