// Copyright 2025 The Cockroach Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package castfmt

import (
	"sync"
	"time"
)

// FormatCache memoizes tokenized format strings so that hot query paths do
// not re-scan the same format per row. The package-level entry points
// tokenize per call; callers with repeated formats route through a cache.
//
// The cache is safe for concurrent use. When full, an arbitrary entry is
// dropped to make room.
type FormatCache struct {
	capacity int

	mu      sync.Mutex
	entries map[string][]formatElement
}

// NewFormatCache returns a cache holding up to capacity compiled formats.
func NewFormatCache(capacity int) *FormatCache {
	return &FormatCache{
		capacity: capacity,
		entries:  make(map[string][]formatElement, capacity),
	}
}

// tokenize returns the element list for format, consulting the cache first.
// A nil receiver tokenizes directly.
func (c *FormatCache) tokenize(format string) ([]formatElement, error) {
	if c == nil {
		return tokenizeFormat(format)
	}
	c.mu.Lock()
	elements, ok := c.entries[format]
	c.mu.Unlock()
	if ok {
		return elements, nil
	}
	elements, err := tokenizeFormat(format)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	if len(c.entries) >= c.capacity {
		for k := range c.entries {
			delete(c.entries, k)
			break
		}
	}
	c.entries[format] = elements
	c.mu.Unlock()
	return elements, nil
}

// FormatTimestamp is CastFormatTimestampToString backed by the cache.
func (c *FormatCache) FormatTimestamp(
	format string, t time.Time, zone *time.Location,
) (string, error) {
	return castFormatTimestampToString(c, format, t, zone)
}

// ParseTimestamp is CastStringToTimestamp backed by the cache.
func (c *FormatCache) ParseTimestamp(
	format, input string, defaultZone *time.Location, now time.Time,
) (time.Time, error) {
	return castStringToTimestamp(c, format, input, defaultZone, now, scaleNanos)
}
