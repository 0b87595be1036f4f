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

package config

import (
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/go-viper/mapstructure/v2"
	"github.com/juju/errors"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Config is the configuration for evaluation.
type Config struct {
	Input    InputConfig    `mapstructure:"input"`
	Evaluate EvaluateConfig `mapstructure:"evaluate"`
}

// InputConfig is the configuration of the prediction file.
type InputConfig struct {
	Path   string `mapstructure:"path"`
	Sep    string `mapstructure:"sep" validate:"required"`
	Header bool   `mapstructure:"header"`
}

// EvaluateConfig is the configuration of metrics.
type EvaluateConfig struct {
	Metrics []string `mapstructure:"metrics" validate:"required,min=1,dive,oneof=rmse mae fcp"`
	Output  bool     `mapstructure:"output"`
}

func GetDefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			Sep: ",",
		},
		Evaluate: EvaluateConfig{
			Metrics: []string{"rmse", "mae", "fcp"},
			Output:  true,
		},
	}
}

func setDefault(v *viper.Viper) {
	defaultConfig := GetDefaultConfig()
	// [input]
	v.SetDefault("input.path", defaultConfig.Input.Path)
	v.SetDefault("input.sep", defaultConfig.Input.Sep)
	v.SetDefault("input.header", defaultConfig.Input.Header)
	// [evaluate]
	v.SetDefault("evaluate.metrics", defaultConfig.Evaluate.Metrics)
	v.SetDefault("evaluate.output", defaultConfig.Evaluate.Output)
}

type configBinding struct {
	key string
	env string
}

func bindEnv(v *viper.Viper) error {
	bindings := []configBinding{
		{"input.path", "GORSE_INPUT_PATH"},
		{"input.sep", "GORSE_INPUT_SEP"},
		{"input.header", "GORSE_INPUT_HEADER"},
		{"evaluate.metrics", "GORSE_METRICS"},
		{"evaluate.output", "GORSE_OUTPUT"},
	}
	for _, binding := range bindings {
		if err := v.BindEnv(binding.key, binding.env); err != nil {
			return errors.Trace(err)
		}
	}
	return nil
}

// LoadConfig loads configuration from file and environment variables. Only
// defaults and environment variables are used if path is empty.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefault(v)
	if err := bindEnv(v); err != nil {
		return nil, errors.Trace(err)
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Annotatef(err, "read config %s", path)
		}
	}
	var conf Config
	if err := v.Unmarshal(&conf, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToSliceHookFunc(","),
		normalizeMetricsHook,
	))); err != nil {
		return nil, errors.Trace(err)
	}
	if err := conf.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	return &conf, nil
}

// normalizeMetricsHook trims and lower-cases metric names.
func normalizeMetricsHook(from, to reflect.Type, data any) (any, error) {
	if to != reflect.TypeOf([]string{}) {
		return data, nil
	}
	switch names := data.(type) {
	case []string:
		return lo.Map(names, func(name string, _ int) string {
			return strings.ToLower(strings.TrimSpace(name))
		}), nil
	case []any:
		return lo.Map(names, func(name any, _ int) any {
			if s, ok := name.(string); ok {
				return strings.ToLower(strings.TrimSpace(s))
			}
			return name
		}), nil
	}
	return data, nil
}

func (config *Config) Validate() error {
	locale := en.New()
	trans, _ := ut.New(locale, locale).GetTranslator("en")
	validate := validator.New()
	if err := entranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return errors.Trace(err)
	}
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		return field.Tag.Get("mapstructure")
	})
	err := validate.Struct(config)
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		messages := lo.Map(validationErrors, func(e validator.FieldError, _ int) string {
			return e.Translate(trans)
		})
		return errors.NewNotValid(nil, strings.Join(messages, "; "))
	}
	return errors.Trace(err)
}
