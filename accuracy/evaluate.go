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

package accuracy

import (
	"sort"
	"strings"

	"github.com/juju/errors"
	"github.com/samber/lo"
)

// Metric reduces predictions to a score. The score is reported when output is set.
type Metric func(predictions []Prediction, output bool) (float64, error)

var builtInMetrics = map[string]Metric{
	"rmse": RMSE,
	"mae":  MAE,
	"fcp":  FCP,
}

// Names returns names of built-in metrics in alphabetical order.
func Names() []string {
	names := lo.Keys(builtInMetrics)
	sort.Strings(names)
	return names
}

// NewMetric finds a built-in metric by its case-insensitive name.
func NewMetric(name string) (Metric, error) {
	if metric, exist := builtInMetrics[strings.ToLower(strings.TrimSpace(name))]; exist {
		return metric, nil
	}
	return nil, errors.NotSupportedf("metric %s", name)
}

// NewMetrics finds built-in metrics by names.
func NewMetrics(names ...string) ([]Metric, error) {
	metrics := make([]Metric, len(names))
	for i, name := range names {
		metric, err := NewMetric(name)
		if err != nil {
			return nil, errors.Trace(err)
		}
		metrics[i] = metric
	}
	return metrics, nil
}

// Evaluate computes metrics on predictions in order. It stops at the first
// metric that fails.
func Evaluate(predictions []Prediction, output bool, metrics ...Metric) ([]float64, error) {
	scores := make([]float64, len(metrics))
	for i, metric := range metrics {
		score, err := metric(predictions, output)
		if err != nil {
			return nil, errors.Trace(err)
		}
		scores[i] = score
	}
	return scores, nil
}
