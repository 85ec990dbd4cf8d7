/*
 * StingerQL
 *
 * Copyright 2016 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package config

import (
	"fmt"
	"io/ioutil"
	"os"
	"testing"
)

const testconf = "testconfig"

func TestConfig(t *testing.T) {

	Config = nil

	ioutil.WriteFile(testconf, []byte(`{
    "EnableDebugLog": true,
    "SessionIdleTimeout": "600"
}`), 0644)

	defer func() {
		if err := os.Remove(testconf); err != nil {
			fmt.Print("Could not remove test config file:", err.Error())
		}
	}()

	if err := LoadConfigFile(testconf); err != nil {
		t.Error(err)
		return
	}

	if res := Bool(EnableDebugLog); !res {
		t.Error("Unexpected result:", res)
		return
	}

	if res := Int(SessionIdleTimeout); res != 600 {
		t.Error("Unexpected result:", res)
		return
	}

	if res := Str(RPCListen); res != DefaultConfig[RPCListen] {
		t.Error("Unexpected result:", res)
		return
	}

	LoadDefaultConfig()

	if res := Bool(EnableDebugLog); res {
		t.Error("Unexpected result:", res)
		return
	}

	if res := Int(SessionSweepInterval); fmt.Sprint(res) != DefaultConfig[SessionSweepInterval] {
		t.Error("Unexpected result:", res)
		return
	}
}

func TestConfigMissingFile(t *testing.T) {
	if err := LoadConfigFile("does-not-exist.json"); err == nil {
		t.Error("Loading a missing config file should return an error")
	}
}
