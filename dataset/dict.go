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

// FreqDict maps strings to dense ids in order of first appearance and counts
// how many times each string has been seen.
type FreqDict struct {
	si  map[string]int
	is  []string
	cnt []int
}

// NewFreqDict creates an empty FreqDict.
func NewFreqDict() *FreqDict {
	return &FreqDict{si: make(map[string]int)}
}

// Count returns the number of distinct strings.
func (d *FreqDict) Count() int {
	return len(d.is)
}

// Id returns the id of s and increases its frequency.
func (d *FreqDict) Id(s string) int {
	if id, ok := d.si[s]; ok {
		d.cnt[id]++
		return id
	}
	id := len(d.is)
	d.si[s] = id
	d.is = append(d.is, s)
	d.cnt = append(d.cnt, 1)
	return id
}

// String returns the string with the given id.
func (d *FreqDict) String(id int) (string, bool) {
	if id < 0 || id >= len(d.is) {
		return "", false
	}
	return d.is[id], true
}

// Freq returns the frequency of the string with the given id.
func (d *FreqDict) Freq(id int) int {
	if id < 0 || id >= len(d.cnt) {
		return 0
	}
	return d.cnt[id]
}

// CountLess returns the number of strings seen fewer than n times.
func (d *FreqDict) CountLess(n int) int {
	count := 0
	for _, c := range d.cnt {
		if c < n {
			count++
		}
	}
	return count
}
