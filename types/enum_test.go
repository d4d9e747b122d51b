/*
 * Copyright 2025 tomoncle.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type color int

const (
	red color = iota
	blue
)

func (c color) IsValid() bool  { return c == red || c == blue }
func (c color) Number() int    { return int(c) }
func (c color) String() string { return c.Name() }
func (c color) Desc() string   { return c.Name() }
func (c color) Name() string {
	if c == blue {
		return "blue"
	}
	return "red"
}

func TestParseEnum(t *testing.T) {
	values := []color{red, blue}

	assert.Equal(t, blue, ParseEnum("blue", values, red))
	assert.Equal(t, red, ParseEnum("BLUE", values, red))
	assert.Equal(t, red, ParseEnum(" blue ", values, red))
	assert.Equal(t, red, ParseEnum("green", values, red))
	assert.Equal(t, red, ParseEnum("", values, red))
}
