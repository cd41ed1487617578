package render

import (
	"fmt"
	"os"

	"github.com/valyala/fasttemplate"
)

// Renderer substitutes placeholder tokens in text with
// literal string values.
type Renderer struct {
	StartTag string
	EndTag   string
}

// tags returns the configured start/end tags, falling
// back to double-brace defaults.
func (re *Renderer) tags() (string, string) {
	startTag := re.StartTag
	if startTag == "" {
		startTag = "{{"
	}

	endTag := re.EndTag
	if endTag == "" {
		endTag = "}}"
	}

	return startTag, endTag
}

// Render substitutes every token whose key is present in
// reps with its value, in a single pass. Tokens with
// unknown keys are preserved verbatim. An unterminated
// start tag passes through as literal text. Inserted
// values are never re-scanned, so a value containing a
// token-shaped substring stays literal in the output.
func (re *Renderer) Render(
	text string,
	reps map[string]string,
) string {
	startTag, endTag := re.tags()

	ctx := make(map[string]interface{}, len(reps))
	for key, val := range reps {
		ctx[key] = val
	}

	return fasttemplate.ExecuteStringStd(
		text, startTag, endTag, ctx,
	)
}

// RenderFile reads the file at inPath fully into memory,
// substitutes placeholders from reps, and writes the
// result to outPath, truncating any existing file.
func (re *Renderer) RenderFile(
	inPath string,
	outPath string,
	reps map[string]string,
) error {
	const errCtx = "rendering file"

	content, err := os.ReadFile(inPath) //nolint:gosec // paths from CLI flags
	if err != nil {
		return fmt.Errorf(
			"%s: reading %s: %w",
			errCtx, inPath, err,
		)
	}

	result := re.Render(string(content), reps)

	err = os.WriteFile( //nolint:gosec // paths from CLI flags
		outPath, []byte(result), 0o666,
	)
	if err != nil {
		return fmt.Errorf(
			"%s: writing %s: %w",
			errCtx, outPath, err,
		)
	}

	return nil
}
