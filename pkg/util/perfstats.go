// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package util

import (
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
)

// PerfStats records the time and memory consumed by some stage of
// compilation, for reporting at debug level.
type PerfStats struct {
	// Indicates whether debug logging was enabled at the snapshot
	enabled   bool
	startTime time.Time
	// Starting total memory allocation (bytes)
	startMem uint64
}

// NewPerfStats takes a snapshot of the current time and total allocation.
// Nothing is measured unless debug logging is enabled.
func NewPerfStats() *PerfStats {
	var m runtime.MemStats
	//
	if !log.IsLevelEnabled(log.DebugLevel) {
		return &PerfStats{enabled: false}
	}
	//
	runtime.ReadMemStats(&m)
	//
	return &PerfStats{true, time.Now(), m.TotalAlloc}
}

// Log reports the time taken and memory allocated since this snapshot was
// taken, provided debug logging was enabled when it was taken.
func (p *PerfStats) Log(stage string) {
	if !p.enabled {
		return
	}
	//
	var m runtime.MemStats
	//
	runtime.ReadMemStats(&m)
	//
	alloc := float64(m.TotalAlloc-p.startMem) / 1024
	//
	log.WithFields(log.Fields{
		"stage":   stage,
		"elapsed": time.Since(p.startTime),
	}).Debugf("%s allocated %0.1f Kb", stage, alloc)
}
