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
	"os"

	"github.com/gorse-io/accuracy/cmd/version"
	"github.com/gorse-io/accuracy/common/log"
	"github.com/gorse-io/accuracy/config"
	"github.com/gorse-io/accuracy/dataset"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

const longDescription = `Evaluate accuracy of rating predictions.

Scores are printed as "<NAME>: <score>" lines if evaluate.output is set,
otherwise as a table.`

var accuracyCommand = &cobra.Command{
	Use:   "gorse-accuracy [predictions]",
	Short: "Evaluate accuracy of rating predictions.",
	Long:  longDescription,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		// Show version
		if showVersion, _ := cmd.PersistentFlags().GetBool("version"); showVersion {
			fmt.Println(version.BuildInfo())
			return
		}

		// setup logger
		debug, _ := cmd.PersistentFlags().GetBool("debug")
		log.SetLogger(cmd.PersistentFlags(), debug)

		// load config
		configPath, _ := cmd.PersistentFlags().GetString("config")
		log.Logger().Info("load config", zap.String("config", configPath))
		conf, err := config.LoadConfig(configPath)
		if err != nil {
			log.Logger().Fatal("failed to load config", zap.Error(err))
		}
		if err = overrideConfig(cmd.PersistentFlags(), args, conf); err != nil {
			log.Logger().Fatal("invalid arguments", zap.Error(err))
		}
		quiet, _ := cmd.PersistentFlags().GetBool("quiet")

		// load predictions
		predictions, err := loadPredictions(conf.Input, !quiet)
		if err != nil {
			log.Logger().Fatal("failed to load predictions",
				zap.String("path", conf.Input.Path), zap.Error(err))
		}
		summary := dataset.Summarize(predictions)
		log.Logger().Info("load predictions",
			zap.String("path", conf.Input.Path),
			zap.Int("n_predictions", summary.NumPredictions),
			zap.Int("n_users", summary.NumUsers),
			zap.Int("n_items", summary.NumItems),
			zap.Int("n_impossible", summary.NumImpossible),
			zap.String("top_user", summary.TopUserId),
			zap.Int("top_user_predictions", summary.TopUserPredictions))
		if summary.NumSingleUsers > 0 && lo.Contains(conf.Evaluate.Metrics, "fcp") {
			log.Logger().Warn("users with a single prediction are ignored by FCP",
				zap.Int("n_single_users", summary.NumSingleUsers))
		}

		// evaluate
		scores, err := writeScores(os.Stdout, predictions, conf.Evaluate)
		if err != nil {
			log.Logger().Fatal("failed to evaluate predictions", zap.Error(err))
		}
		for i, name := range conf.Evaluate.Metrics {
			log.Logger().Debug("evaluate predictions", zap.String("metric", name), zap.Float64("score", scores[i]))
		}
	},
}

func addFlags(flagSet *pflag.FlagSet) {
	log.AddFlags(flagSet)
	flagSet.Bool("debug", false, "use debug log mode")
	flagSet.BoolP("version", "v", false, "gorse-accuracy version")
	flagSet.BoolP("quiet", "q", false, "hide progress bar")
	flagSet.StringP("config", "c", "", "configuration file path")
	flagSet.String("csv-sep", ",", "separator of prediction file")
	flagSet.Bool("csv-header", false, "skip the header of prediction file")
	flagSet.StringArrayP("metric", "m", nil, "metric to compute (rmse, mae or fcp)")
}

func init() {
	addFlags(accuracyCommand.PersistentFlags())
}

func main() {
	if err := accuracyCommand.Execute(); err != nil {
		log.Logger().Fatal("failed to execute", zap.Error(err))
	}
}
