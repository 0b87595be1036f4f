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

package dataset

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gorse-io/accuracy/accuracy"
	"github.com/juju/errors"
)

// ParsePrediction parses fields of a csv record:
//
//	<user_id>,<item_id>,<rating>,<estimate>[,<reason>]
//
// A non-empty reason marks the prediction as impossible.
func ParsePrediction(fields []string) (accuracy.Prediction, error) {
	if len(fields) < 4 {
		return accuracy.Prediction{}, errors.NotValidf("record with %d fields", len(fields))
	}
	userId, itemId := strings.TrimSpace(fields[0]), strings.TrimSpace(fields[1])
	if err := ValidateId(userId); err != nil {
		return accuracy.Prediction{}, errors.Annotate(err, "user id")
	}
	if err := ValidateId(itemId); err != nil {
		return accuracy.Prediction{}, errors.Annotate(err, "item id")
	}
	rating, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
	if err != nil {
		return accuracy.Prediction{}, errors.Annotate(err, "rating")
	}
	estimate, err := strconv.ParseFloat(strings.TrimSpace(fields[3]), 64)
	if err != nil {
		return accuracy.Prediction{}, errors.Annotate(err, "estimate")
	}
	prediction := accuracy.NewPrediction(userId, itemId, rating, estimate)
	if len(fields) > 4 {
		prediction.Details.Reason = strings.TrimSpace(fields[4])
		prediction.Details.Impossible = prediction.Details.Reason != ""
	}
	return prediction, nil
}

// LoadPredictions reads predictions from a csv stream. The first line is
// skipped if header is set.
func LoadPredictions(r io.Reader, sep string, header bool) ([]accuracy.Prediction, error) {
	var (
		predictions []accuracy.Prediction
		parseErr    error
	)
	sc := bufio.NewScanner(r)
	err := ReadLines(sc, sep, func(i int, fields []string) bool {
		if header && i == 0 {
			return true
		}
		// skip blank lines
		if len(fields) == 1 && strings.TrimSpace(fields[0]) == "" {
			return true
		}
		prediction, err := ParsePrediction(fields)
		if err != nil {
			parseErr = errors.Annotatef(err, "line %d", i+1)
			return false
		}
		predictions = append(predictions, prediction)
		return true
	})
	if err != nil {
		return nil, errors.Trace(err)
	}
	if parseErr != nil {
		return nil, parseErr
	}
	return predictions, nil
}

// LoadPredictionsFromCSV reads predictions from a csv file.
func LoadPredictionsFromCSV(path, sep string, header bool) ([]accuracy.Prediction, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Trace(err)
	}
	defer file.Close()
	return LoadPredictions(file, sep, header)
}

// Summary describes a list of predictions.
type Summary struct {
	NumPredictions int
	NumUsers       int
	NumItems       int
	// NumSingleUsers is the number of users with only one prediction. These
	// users contribute no pair to FCP.
	NumSingleUsers int
	NumImpossible  int

	// TopUserId is the user with the most predictions. The first seen wins ties.
	TopUserId          string
	TopUserPredictions int
}

// Summarize counts predictions, users and items in a list of predictions.
func Summarize(predictions []accuracy.Prediction) Summary {
	users, items := NewFreqDict(), NewFreqDict()
	summary := Summary{NumPredictions: len(predictions)}
	for _, prediction := range predictions {
		users.Id(prediction.UserId)
		items.Id(prediction.ItemId)
		if prediction.Details.Impossible {
			summary.NumImpossible++
		}
	}
	summary.NumUsers = users.Count()
	summary.NumItems = items.Count()
	summary.NumSingleUsers = users.CountLess(2)
	for id := 0; id < users.Count(); id++ {
		if freq := users.Freq(id); freq > summary.TopUserPredictions {
			summary.TopUserId, _ = users.String(id)
			summary.TopUserPredictions = freq
		}
	}
	return summary
}
