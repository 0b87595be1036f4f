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

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gorse-io/accuracy/accuracy"
	"github.com/gorse-io/accuracy/config"
	"github.com/gorse-io/accuracy/dataset"
	"github.com/juju/errors"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/pflag"
)

// overrideConfig overrides configuration by command line flags and the
// optional prediction file argument.
func overrideConfig(flagSet *pflag.FlagSet, args []string, conf *config.Config) error {
	if len(args) > 0 {
		conf.Input.Path = args[0]
	}
	if flagSet.Changed("csv-sep") {
		conf.Input.Sep, _ = flagSet.GetString("csv-sep")
	}
	if flagSet.Changed("csv-header") {
		conf.Input.Header, _ = flagSet.GetBool("csv-header")
	}
	if flagSet.Changed("metric") {
		metrics, _ := flagSet.GetStringArray("metric")
		conf.Evaluate.Metrics = lo.Map(metrics, func(name string, _ int) string {
			return strings.ToLower(strings.TrimSpace(name))
		})
	}
	if conf.Input.Path == "" {
		return errors.NotValidf("empty prediction file path")
	}
	return errors.Trace(conf.Validate())
}

func loadPredictions(conf config.InputConfig, progress bool) ([]accuracy.Prediction, error) {
	file, err := os.Open(conf.Path)
	if err != nil {
		return nil, errors.Trace(err)
	}
	defer file.Close()
	stat, err := file.Stat()
	if err != nil {
		return nil, errors.Trace(err)
	}
	var bar *progressbar.ProgressBar
	if progress {
		bar = progressbar.DefaultBytes(stat.Size(), "Loading predictions")
	} else {
		bar = progressbar.DefaultBytesSilent(stat.Size(), "Loading predictions")
	}
	pbReader := progressbar.NewReader(file, bar)
	predictions, err := dataset.LoadPredictions(&pbReader, conf.Sep, conf.Header)
	if err != nil {
		return nil, errors.Trace(err)
	}
	_ = bar.Finish()
	return predictions, nil
}

func evaluate(predictions []accuracy.Prediction, names []string, output bool) ([]float64, error) {
	metrics, err := accuracy.NewMetrics(names...)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return accuracy.Evaluate(predictions, output, metrics...)
}

// writeScores evaluates predictions and writes scores to w, either as report
// lines or as a table.
func writeScores(w io.Writer, predictions []accuracy.Prediction, conf config.EvaluateConfig) ([]float64, error) {
	if conf.Output {
		prev := accuracy.SetOutput(w)
		defer accuracy.SetOutput(prev)
		return evaluate(predictions, conf.Metrics, true)
	}
	scores, err := evaluate(predictions, conf.Metrics, false)
	if err != nil {
		return nil, errors.Trace(err)
	}
	if err = renderTable(w, conf.Metrics, scores); err != nil {
		return nil, errors.Trace(err)
	}
	return scores, nil
}

func renderTable(w io.Writer, names []string, scores []float64) error {
	table := tablewriter.NewWriter(w)
	table.Header("Metric", "Score")
	for i, name := range names {
		if err := table.Append([]string{strings.ToUpper(name), fmt.Sprintf("%1.4f", scores[i])}); err != nil {
			return errors.Trace(err)
		}
	}
	return errors.Trace(table.Render())
}
