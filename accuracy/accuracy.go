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
	"fmt"
	"io"
	"math"
	"os"

	"github.com/juju/errors"
	"github.com/samber/lo"
)

var writer io.Writer = os.Stdout

// SetOutput replaces the writer that scores are reported to and returns the
// previous one.
func SetOutput(w io.Writer) io.Writer {
	prev := writer
	writer = w
	return prev
}

func report(name string, score float64) {
	_, _ = fmt.Fprintf(writer, "%s: %1.4f\n", name, score)
}

// RMSE is root mean squared error.
//
//	RMSE = \sqrt{\frac{1}{|R|} \sum_{r_{ui} \in R} (r_{ui} - \hat{r}_{ui})^2}
func RMSE(predictions []Prediction, output bool) (float64, error) {
	if err := checkPredictions(predictions); err != nil {
		return 0, err
	}
	mse := lo.MeanBy(predictions, func(p Prediction) float64 {
		return p.Residual() * p.Residual()
	})
	score := math.Sqrt(mse)
	if output {
		report("RMSE", score)
	}
	return score, nil
}

// MAE is mean absolute error.
//
//	MAE = \frac{1}{|R|} \sum_{r_{ui} \in R} |r_{ui} - \hat{r}_{ui}|
func MAE(predictions []Prediction, output bool) (float64, error) {
	if err := checkPredictions(predictions); err != nil {
		return 0, err
	}
	score := lo.MeanBy(predictions, func(p Prediction) float64 {
		return math.Abs(p.Residual())
	})
	if output {
		report("MAE", score)
	}
	return score, nil
}

// FCP is fraction of concordant pairs. Concordant and discordant pairs are
// counted per user, then averaged over users so that heavy raters do not
// dominate the score. The concordant mean only covers users with at least one
// concordant pair, and the discordant mean only users with at least one
// discordant pair.
func FCP(predictions []Prediction, output bool) (float64, error) {
	if err := checkPredictions(predictions); err != nil {
		return 0, err
	}
	userPredictions := lo.GroupBy(predictions, func(p Prediction) string {
		return p.UserId
	})
	concordant := make([]float64, 0, len(userPredictions))
	discordant := make([]float64, 0, len(userPredictions))
	for _, preds := range userPredictions {
		nc, nd := countPairs(preds)
		if nc > 0 {
			concordant = append(concordant, float64(nc))
		}
		if nd > 0 {
			discordant = append(discordant, float64(nd))
		}
	}
	// mean of an empty slice is 0
	nc, nd := lo.Mean(concordant), lo.Mean(discordant)
	if nc+nd == 0 {
		return 0, errors.Trace(ErrDegenerateFCP)
	}
	score := nc / (nc + nd)
	if output {
		report("FCP", score)
	}
	return score, nil
}

// countPairs scans every ordered pair of predictions of a user, including a
// prediction paired with itself. A tie in estimates with different true
// ratings counts as discordant.
func countPairs(preds []Prediction) (concordant, discordant int) {
	for _, i := range preds {
		for _, j := range preds {
			if i.Estimate > j.Estimate && i.Rating > j.Rating {
				concordant++
			}
			if i.Estimate >= j.Estimate && i.Rating < j.Rating {
				discordant++
			}
		}
	}
	return
}
