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

// elementTrie is a byte-keyed trie over the upper-cased element vocabulary.
// It is built once at package initialization and shared read-only by every
// tokenization afterwards.
type elementTrie struct {
	root *trieNode
}

type trieNode struct {
	children map[byte]*trieNode
	typ      elementType
	terminal bool
}

func newElementTrie() *elementTrie {
	return &elementTrie{root: &trieNode{}}
}

func (t *elementTrie) insert(key string, typ elementType) {
	n := t.root
	for i := 0; i < len(key); i++ {
		c := key[i]
		if n.children == nil {
			n.children = make(map[byte]*trieNode)
		}
		child, ok := n.children[c]
		if !ok {
			child = &trieNode{}
			n.children[c] = child
		}
		n = child
	}
	n.typ = typ
	n.terminal = true
}

// longestPrefix returns the element type of the longest vocabulary entry
// that prefixes s, along with the matched length. ok is false when no entry
// matches at all.
func (t *elementTrie) longestPrefix(s string) (typ elementType, matched int, ok bool) {
	n := t.root
	for i := 0; i < len(s); i++ {
		child, found := n.children[s[i]]
		if !found {
			break
		}
		n = child
		if n.terminal {
			typ = n.typ
			matched = i + 1
			ok = true
		}
	}
	return typ, matched, ok
}

// elementVocabulary is the process-wide element trie. Package-level variable
// initialization runs exactly once before any use, so the structure can be
// shared by any number of goroutines without synchronization.
var elementVocabulary = func() *elementTrie {
	t := newElementTrie()

	// Simple literals.
	for _, lit := range []string{"-", ".", "/", ",", "'", ";", ":"} {
		t.insert(lit, elemSimpleLiteral)
	}

	// A double quote opens a quoted literal; the tokenizer scans for the
	// closing quote itself.
	t.insert(`"`, elemDoubleQuotedLiteral)

	// A single ASCII space starts a whitespace run; the tokenizer extends
	// the run itself.
	t.insert(" ", elemWhitespace)

	// Year.
	t.insert("YYYY", elemYYYY)
	t.insert("YYY", elemYYY)
	t.insert("YY", elemYY)
	t.insert("Y", elemY)
	t.insert("RRRR", elemRRRR)
	t.insert("RR", elemRR)
	t.insert("Y,YYY", elemYCommaYYY)
	t.insert("IYYY", elemIYYY)
	t.insert("IYY", elemIYY)
	t.insert("IY", elemIY)
	t.insert("I", elemI)
	t.insert("SYYYY", elemSYYYY)
	t.insert("YEAR", elemYEAR)
	t.insert("SYEAR", elemSYEAR)

	// Month.
	t.insert("MM", elemMM)
	t.insert("MON", elemMON)
	t.insert("MONTH", elemMONTH)
	t.insert("RM", elemRM)

	// Day.
	t.insert("DDD", elemDDD)
	t.insert("DD", elemDD)
	t.insert("D", elemD)
	t.insert("DAY", elemDAY)
	t.insert("DY", elemDY)
	t.insert("J", elemJ)

	// Hour.
	t.insert("HH", elemHH)
	t.insert("HH12", elemHH12)
	t.insert("HH24", elemHH24)

	// Minute.
	t.insert("MI", elemMI)

	// Second.
	t.insert("SS", elemSS)
	t.insert("SSSSS", elemSSSSS)
	for d := byte('1'); d <= '9'; d++ {
		t.insert("FF"+string(d), elemFFN)
	}

	// Meridian indicator.
	t.insert("AM", elemAM)
	t.insert("PM", elemPM)
	t.insert("A.M.", elemAMDots)
	t.insert("P.M.", elemPMDots)

	// Time zone.
	t.insert("TZH", elemTZH)
	t.insert("TZM", elemTZM)

	// Century.
	t.insert("CC", elemCC)
	t.insert("SCC", elemSCC)

	// Quarter.
	t.insert("Q", elemQ)

	// Week.
	t.insert("IW", elemIW)
	t.insert("WW", elemWW)
	t.insert("W", elemW)

	// Era indicator.
	t.insert("AD", elemAD)
	t.insert("BC", elemBC)
	t.insert("A.D.", elemADDots)
	t.insert("B.C.", elemBCDots)

	// Misc.
	t.insert("SP", elemSP)
	t.insert("TH", elemTH)
	t.insert("SPTH", elemSPTH)
	t.insert("THSP", elemTHSP)
	t.insert("FM", elemFM)

	return t
}()
