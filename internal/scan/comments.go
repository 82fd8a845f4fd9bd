package scan

import (
	"regexp"
	"strings"
)

var (
	singleLineComment = regexp.MustCompile(`//.*`)
	multiLineComment  = regexp.MustCompile(`(?s)/\*.*?\*/`)
	hashComment       = regexp.MustCompile(`#.*`)
)

// SplitComments separates PHP source into code with comments removed and
// the text of the comments alone.
//
// The patterns are lexical only: a "//" or "#" inside a string literal
// (a URL, a CSS colour) is treated as a comment too.
func SplitComments(content string) (code, comments string) {
	code = multiLineComment.ReplaceAllString(content, "")
	code = singleLineComment.ReplaceAllString(code, "")
	code = hashComment.ReplaceAllString(code, "")

	var b strings.Builder
	for _, re := range []*regexp.Regexp{singleLineComment, multiLineComment, hashComment} {
		for _, m := range re.FindAllString(content, -1) {
			b.WriteString(m)
			b.WriteByte('\n')
		}
	}
	return code, b.String()
}
