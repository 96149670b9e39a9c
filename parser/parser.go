// Package parser splits an incoming message into the poll question and the
// reaction emojis offered as choices.
package parser

import (
	"regexp"
	"strings"
)

// skinToneMask temporarily hides the double-colon skin-tone delimiter so the
// generic "::" split cannot tear a skin-tone modifier off its base emoji.
const skinToneMask = "§§skin-tone-"

var (
	// trailingRun matches the longest trailing span of colon-delimited emoji
	// tokens, including separators and masked skin-tone modifiers.
	trailingRun = regexp.MustCompile(`:[:a-zA-Z0-9+\-_, §]+$`)

	// emojiToken recognizes one complete colon-delimited token inside a
	// candidate run. A trailing span without at least one of these is just
	// ordinary text ending in a colon, not a choice list.
	emojiToken = regexp.MustCompile(`:[a-zA-Z0-9+\-_§]+:`)
)

// Extract splits a message into the question and the emojis to be voted for.
// It is total over any input: when no trailing emoji run is found, the whole
// trimmed message is the question and the default :+1:/:heart: pair is
// offered. A message that is nothing but an emoji run yields an empty
// question.
func Extract(message string) (string, []string) {
	masked := strings.ReplaceAll(message, "::skin-tone-", skinToneMask)

	loc := trailingRun.FindStringIndex(masked)
	if loc == nil || !emojiToken.MatchString(masked[loc[0]:]) {
		return strings.TrimSpace(message), DefaultChoices()
	}

	question := strings.TrimSpace(masked[:loc[0]])
	question = strings.ReplaceAll(question, skinToneMask, "::skin-tone-")

	run := masked[loc[0]:]
	run = strings.ReplaceAll(run, "::", ": :")
	run = strings.ReplaceAll(run, "§§skin-tone", "::skin-tone")

	tokens := strings.FieldsFunc(run, func(r rune) bool {
		return r == ',' || r == ' '
	})

	return question, dedupe(tokens)
}

// DefaultChoices returns the fallback pair offered when a message carries no
// trailing emoji run.
func DefaultChoices() []string {
	return []string{":+1:", ":heart:"}
}

// dedupe removes repeated tokens, keeping first-occurrence order.
func dedupe(tokens []string) []string {
	seen := make(map[string]bool, len(tokens))
	result := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if seen[token] {
			continue
		}
		seen[token] = true
		result = append(result, token)
	}
	return result
}
