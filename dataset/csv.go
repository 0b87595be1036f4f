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
	"strings"

	"github.com/juju/errors"
)

// ValidateId validates user/item id. Id cannot be empty and contain [/].
func ValidateId(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return errors.NotValidf("empty id")
	} else if strings.Contains(text, "/") {
		return errors.NotValidf("id %q containing `/`", text)
	}
	return nil
}

// ReadLines splits each record of a csv stream into fields. Fields might be
// quoted and quoted fields might span lines. Reading stops once handler
// returns false.
func ReadLines(sc *bufio.Scanner, sep string, handler func(int, []string) bool) error {
	if sep == "" {
		return errors.NotValidf("empty separator")
	}
	sepRune := []rune(sep)[0]
	lineCount := 0
	fields := make([]string, 0)
	builder := strings.Builder{}
	quoted := false
	for sc.Scan() {
		line := []rune(sc.Text())
		if quoted {
			builder.WriteString("\r\n")
		}
		for i := 0; i < len(line); i++ {
			switch {
			case line[i] == sepRune && !quoted:
				fields = append(fields, builder.String())
				builder.Reset()
			case line[i] == '"' && quoted:
				if i+1 < len(line) && line[i+1] == '"' {
					// escaped quote
					i++
					builder.WriteRune('"')
				} else {
					quoted = false
				}
			case line[i] == '"':
				quoted = true
			default:
				builder.WriteRune(line[i])
			}
		}
		if !quoted {
			fields = append(fields, builder.String())
			builder.Reset()
			if !handler(lineCount, fields) {
				return nil
			}
			fields = []string{}
		}
		lineCount++
	}
	return errors.Trace(sc.Err())
}
