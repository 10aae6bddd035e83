// Marquee - Movie Scoring and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package cache

import "strings"

// KeywordSet matches many keywords against a text in a single pass using
// the Aho-Corasick algorithm, in O(n + m + z) time where n is the text
// length, m the total keyword length and z the number of matches.
//
// Matching is case-insensitive and substring based: "porn" matches
// "pornography". A KeywordSet is immutable once built and safe for
// concurrent use.
type KeywordSet struct {
	root     *kwNode
	keywords []string
}

type kwNode struct {
	children map[rune]*kwNode
	failure  *kwNode
	output   []int // keyword indices ending here, including via failure links
}

// KeywordMatch is one occurrence of a keyword in a text.
type KeywordMatch struct {
	Keyword string
	// Position is the byte offset of the match in the lower-cased text.
	Position int
}

// NewKeywordSet builds the automaton. Empty and duplicate keywords are
// ignored.
func NewKeywordSet(keywords []string) *KeywordSet {
	ks := &KeywordSet{root: newKwNode()}

	seen := make(map[string]struct{}, len(keywords))
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		if _, dup := seen[kw]; dup {
			continue
		}
		seen[kw] = struct{}{}
		ks.insert(len(ks.keywords), kw)
		ks.keywords = append(ks.keywords, kw)
	}

	ks.link()
	return ks
}

func newKwNode() *kwNode {
	return &kwNode{children: make(map[rune]*kwNode)}
}

func (ks *KeywordSet) insert(index int, kw string) {
	node := ks.root
	for _, ch := range kw {
		next := node.children[ch]
		if next == nil {
			next = newKwNode()
			node.children[ch] = next
		}
		node = next
	}
	node.output = append(node.output, index)
}

// link builds failure links breadth-first.
func (ks *KeywordSet) link() {
	queue := make([]*kwNode, 0, len(ks.root.children))
	for _, child := range ks.root.children {
		child.failure = ks.root
		queue = append(queue, child)
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for ch, child := range current.children {
			queue = append(queue, child)

			fail := current.failure
			for fail != nil && fail.children[ch] == nil {
				fail = fail.failure
			}
			if fail == nil {
				child.failure = ks.root
				continue
			}
			child.failure = fail.children[ch]
			child.output = append(child.output, child.failure.output...)
		}
	}
}

// step advances the automaton by one rune.
func (ks *KeywordSet) step(node *kwNode, ch rune) *kwNode {
	for node != nil && node.children[ch] == nil {
		node = node.failure
	}
	if node == nil {
		return ks.root
	}
	return node.children[ch]
}

// Contains reports whether any keyword occurs in text.
func (ks *KeywordSet) Contains(text string) bool {
	_, ok := ks.First(text)
	return ok
}

// First returns the first keyword occurrence in text.
func (ks *KeywordSet) First(text string) (KeywordMatch, bool) {
	if len(ks.keywords) == 0 {
		return KeywordMatch{}, false
	}

	node := ks.root
	for i, ch := range strings.ToLower(text) {
		node = ks.step(node, ch)
		if len(node.output) > 0 {
			kw := ks.keywords[node.output[0]]
			return KeywordMatch{Keyword: kw, Position: i + runeLen(ch) - len(kw)}, true
		}
	}
	return KeywordMatch{}, false
}

// FindAll returns every keyword occurrence in text.
func (ks *KeywordSet) FindAll(text string) []KeywordMatch {
	if len(ks.keywords) == 0 {
		return nil
	}

	var matches []KeywordMatch
	node := ks.root
	for i, ch := range strings.ToLower(text) {
		node = ks.step(node, ch)
		for _, idx := range node.output {
			kw := ks.keywords[idx]
			matches = append(matches, KeywordMatch{Keyword: kw, Position: i + runeLen(ch) - len(kw)})
		}
	}
	return matches
}

// Keywords returns the normalized keyword list.
func (ks *KeywordSet) Keywords() []string {
	return append([]string(nil), ks.keywords...)
}

// Len returns the number of distinct keywords.
func (ks *KeywordSet) Len() int {
	return len(ks.keywords)
}

func runeLen(ch rune) int {
	return len(string(ch))
}
