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
Package rpclog holds the swappable loggers used across the query and
session core. Tests replace these with a no-op or a capturing logger;
production wiring leaves them at their log.Print defaults.
*/
package rpclog

import "log"

/*
Logger is a function which processes a log message.
*/
type Logger func(v ...interface{})

/*
LogNull is a discarding logger used to silence a log level.
*/
var LogNull = Logger(func(v ...interface{}) {})

/*
LogInfo is called for informational messages (session registration,
idle-session reaping).
*/
var LogInfo = Logger(log.Print)

/*
LogWarn is called for the warnings spec.md calls out explicitly: a
clamped range end, a stride reset to 1. These never abort the call.
*/
var LogWarn = Logger(log.Print)

/*
LogDebug is called for low-level tracing (disabled by default).
*/
var LogDebug = LogNull
