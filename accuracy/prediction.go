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

import "github.com/juju/errors"

var (
	// ErrEmptyPredictions is returned by every metric given no prediction.
	ErrEmptyPredictions = errors.New("prediction list is empty")

	// ErrDegenerateFCP is returned by FCP if no user has a concordant or discordant pair.
	ErrDegenerateFCP = errors.New("cannot compute FCP on this list of predictions; " +
		"does every user have at least two predictions?")
)

// Details is the auxiliary information a predictor attaches to an estimate.
// Metrics never read it.
type Details struct {
	Impossible bool
	Reason     string
}

// Prediction is an estimated rating of an item by a user, paired with the
// rating the user actually gave.
type Prediction struct {
	UserId   string
	ItemId   string
	Rating   float64
	Estimate float64
	Details  Details
}

// NewPrediction creates a prediction without details.
func NewPrediction(userId, itemId string, rating, estimate float64) Prediction {
	return Prediction{
		UserId:   userId,
		ItemId:   itemId,
		Rating:   rating,
		Estimate: estimate,
	}
}

// Residual returns the signed difference between the true and the estimated rating.
func (p Prediction) Residual() float64 {
	return p.Rating - p.Estimate
}

func checkPredictions(predictions []Prediction) error {
	if len(predictions) == 0 {
		return errors.Trace(ErrEmptyPredictions)
	}
	return nil
}
