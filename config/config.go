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
Package config manages the configuration of the query and session core.
Configuration is a flat string->string map loaded from a JSON file, with
typed accessors and built-in defaults for anything the file omits.
*/
package config

import (
	"encoding/json"
	"io/ioutil"
	"strconv"
)

// Known configuration keys.
const (
	RPCListen            = "RPCListen"
	SessionIdleTimeout   = "SessionIdleTimeout"
	SessionSweepInterval = "SessionSweepInterval"
	EnableDebugLog       = "EnableDebugLog"
)

/*
DefaultConfig is used for any key which is not set in the loaded
configuration file.
*/
var DefaultConfig = map[string]string{
	RPCListen:            ":8446",
	SessionIdleTimeout:   "300",
	SessionSweepInterval: "30",
	EnableDebugLog:       "false",
}

/*
Config is the currently loaded configuration. Nil until LoadConfigFile or
LoadDefaultConfig is called.
*/
var Config map[string]string

/*
LoadDefaultConfig loads the default configuration.
*/
func LoadDefaultConfig() {
	Config = make(map[string]string)
	for k, v := range DefaultConfig {
		Config[k] = v
	}
}

/*
LoadConfigFile loads configuration values from a JSON file. Keys absent
from the file fall back to DefaultConfig.
*/
func LoadConfigFile(filename string) error {
	data, err := ioutil.ReadFile(filename)
	if err != nil {
		return err
	}

	raw := make(map[string]interface{})
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	LoadDefaultConfig()

	for k, v := range raw {
		switch val := v.(type) {
		case string:
			Config[k] = val
		case bool:
			if val {
				Config[k] = "true"
			} else {
				Config[k] = "false"
			}
		default:
			b, _ := json.Marshal(val)
			Config[k] = string(b)
		}
	}

	return nil
}

/*
Str returns a configuration value as a string.
*/
func Str(key string) string {
	if Config == nil {
		LoadDefaultConfig()
	}
	return Config[key]
}

/*
Bool returns a configuration value as a bool.
*/
func Bool(key string) bool {
	return Str(key) == "true"
}

/*
Int returns a configuration value as an int. Unparsable or missing
values return 0.
*/
func Int(key string) int {
	n, _ := strconv.Atoi(Str(key))
	return n
}
