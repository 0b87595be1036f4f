// Copyright 2026 gorse Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newFlagSet(t *testing.T, args ...string) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	AddFlags(flagSet)
	assert.NoError(t, flagSet.Parse(args))
	return flagSet
}

func TestAddFlags(t *testing.T) {
	flagSet := newFlagSet(t)
	maxSize, err := flagSet.GetInt("log-max-size")
	assert.NoError(t, err)
	assert.Equal(t, 100, maxSize)
	assert.False(t, flagSet.Changed("log-path"))
}

func TestSetLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accuracy.log")
	flagSet := newFlagSet(t, "--log-path", path)

	SetLogger(flagSet, false)
	assert.False(t, Logger().Core().Enabled(zap.DebugLevel))
	Logger().Info("production", zap.Float64("rmse", 0.5))
	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Contains(t, string(data), `"rmse":0.5`)

	SetLogger(flagSet, true)
	assert.True(t, Logger().Core().Enabled(zap.DebugLevel))
	Logger().Debug("development")
	data, err = os.ReadFile(path)
	assert.NoError(t, err)
	assert.Contains(t, string(data), "development")
}

func TestCloseLogger(t *testing.T) {
	CloseLogger()
	assert.False(t, Logger().Core().Enabled(zap.ErrorLevel))
	assert.True(t, Logger().Core().Enabled(zap.FatalLevel))
}
