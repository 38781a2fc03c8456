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
	"testing"

	log "github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerfStats_Disabled(t *testing.T) {
	hook := logtest.NewGlobal()
	defer hook.Reset()
	defer log.SetLevel(log.GetLevel())
	//
	log.SetLevel(log.InfoLevel)
	stats := NewPerfStats()
	// Enabling debug afterwards must not report a bogus snapshot
	log.SetLevel(log.DebugLevel)
	stats.Log("parsing")
	//
	assert.False(t, stats.enabled)
	assert.Empty(t, hook.AllEntries())
}

func TestPerfStats_Enabled(t *testing.T) {
	hook := logtest.NewGlobal()
	defer hook.Reset()
	defer log.SetLevel(log.GetLevel())
	//
	log.SetLevel(log.DebugLevel)
	NewPerfStats().Log("parsing")
	//
	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, "parsing", hook.LastEntry().Data["stage"])
	assert.Equal(t, log.DebugLevel, hook.LastEntry().Level)
}
