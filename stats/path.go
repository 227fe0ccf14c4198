package stats

import (
	"strings"

	"github.com/tidwall/gjson"

	"tba-stats-service/event"
)

// Placeholder tokens usable in path specs. They are replaced with concrete
// alliance colors for the row being evaluated.
const (
	AllianceToken = "##ALLIANCE"
	OpponentToken = "##OPPALLIANCE"
)

// ResolvePath substitutes the alliance placeholder tokens in a path spec.
// A leading slash marks a root-relative path: both tokens are substituted and
// the result is resolved from the match root. Without it the path is relative
// to the current alliance's score breakdown, and only the own-alliance token
// applies.
func ResolvePath(path string, alliance event.AllianceColor) (concrete string, fromRoot bool) {
	if strings.HasPrefix(path, "/") {
		concrete = strings.ReplaceAll(path, AllianceToken, string(alliance))
		concrete = strings.ReplaceAll(concrete, OpponentToken, string(alliance.Opponent()))
		return strings.TrimPrefix(concrete, "/"), true
	}
	return strings.ReplaceAll(path, AllianceToken, string(alliance)), false
}

// toGJSONPath converts a slash-separated path into gjson dot syntax. Empty
// segments are skipped; literal dots and wildcards inside segments are escaped
// so keys are always matched verbatim.
func toGJSONPath(slashPath string) string {
	segments := strings.Split(slashPath, "/")
	out := make([]string, 0, len(segments))
	for _, seg := range segments {
		if seg == "" {
			continue
		}
		out = append(out, escapeSegment(seg))
	}
	return strings.Join(out, ".")
}

func escapeSegment(seg string) string {
	var b strings.Builder
	for _, r := range seg {
		switch r {
		case '.', '*', '?', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// lookup resolves a slash path against a JSON document.
func lookup(doc []byte, slashPath string) (gjson.Result, bool) {
	if len(doc) == 0 {
		return gjson.Result{}, false
	}
	res := gjson.GetBytes(doc, toGJSONPath(slashPath))
	return res, res.Exists()
}
