// File path: internal/docparse/parser.go
package docparse

import (
	"regexp"
	"strings"

	"github.com/bizdocai/bizdoc/internal/model"
	"github.com/bizdocai/bizdoc/internal/template"
)

// Parse splits a raw model response into its delimited document blocks.
// A block opens with "<!-- START_DOC:TAG -->" and closes with the matching
// "<!-- END_DOC:TAG -->"; the end marker must repeat the start tag exactly,
// whitespace included. Unterminated blocks are skipped. When no block is
// found the whole payload becomes a single fallback document.
func Parse(raw string) []model.Document {
	var docs []model.Document

	rest := raw
	for {
		start := strings.Index(rest, template.StartMarkerPrefix)
		if start < 0 {
			break
		}
		afterStart := rest[start+len(template.StartMarkerPrefix):]
		tagEnd := strings.Index(afterStart, template.MarkerSuffix)
		if tagEnd < 0 {
			break
		}
		rawTag := afterStart[:tagEnd]
		body := afterStart[tagEnd+len(template.MarkerSuffix):]

		endMarker := template.EndMarkerPrefix + rawTag + template.MarkerSuffix
		end := strings.Index(body, endMarker)
		if end < 0 {
			// No matching terminator; resume scanning after this start marker.
			rest = afterStart
			continue
		}

		docs = append(docs, model.Document{
			Type: template.Type(strings.TrimSpace(rawTag)),
			HTML: strings.TrimSpace(body[:end]),
		})
		rest = body[end+len(endMarker):]
	}

	if len(docs) == 0 {
		return []model.Document{{Type: template.TypeFallback, HTML: raw}}
	}
	return docs
}

// ErrorMarker flags a model response that reports a failure instead of
// carrying documents.
const ErrorMarker = "Error:"

// IsErrorPayload reports whether the raw response is an error report. The
// check runs on the raw payload before any parsing.
func IsErrorPayload(raw string) bool {
	return strings.Contains(raw, ErrorMarker)
}

var tagPattern = regexp.MustCompile(`<[^>]*>?`)

// StripTags removes HTML tags from an error payload so the message can be
// surfaced as plain text.
func StripTags(raw string) string {
	return strings.TrimSpace(tagPattern.ReplaceAllString(raw, ""))
}
