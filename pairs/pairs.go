package pairs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
)

// Parse builds a replacement set from KEY=value arguments.
// Each argument splits on the first "=" into a non-empty
// key and a value. A value starting with "@" names a file
// whose content becomes the value. If a key repeats, the
// last occurrence wins.
func Parse(args []string) (map[string]string, error) {
	const errCtx = "parsing pairs"

	reps := make(map[string]string, len(args))

	for _, arg := range args {
		parts := strings.SplitN(arg, "=", 2)
		if len(parts) != 2 || parts[0] == "" {
			return nil, fmt.Errorf(
				"%s: invalid argument %q (expected KEY=value)",
				errCtx, arg,
			)
		}

		val, err := resolveValue(parts[1])
		if err != nil {
			return nil, fmt.Errorf(
				"%s: %w", errCtx, err,
			)
		}

		reps[parts[0]] = val
	}

	return reps, nil
}

// resolveValue returns the value verbatim unless it starts
// with "@", in which case the remainder names a file whose
// content becomes the value with a single trailing newline
// stripped.
func resolveValue(value string) (string, error) {
	const errCtx = "resolving value"

	if !strings.HasPrefix(value, "@") {
		return value, nil
	}

	content, err := os.ReadFile(value[1:]) //nolint:gosec // paths from CLI flags
	if err != nil {
		return "", fmt.Errorf(
			"%s: %w", errCtx, err,
		)
	}

	return strings.TrimSuffix(string(content), "\n"), nil
}

// LoadFile reads a whole replacement mapping from the file
// at path, decoded as JSON or YAML depending on the file
// extension. Values are taken verbatim, with no "@"
// resolution.
func LoadFile(path string) (map[string]string, error) {
	const errCtx = "loading pairs file"

	content, err := os.ReadFile(path) //nolint:gosec // paths from CLI flags
	if err != nil {
		return nil, fmt.Errorf(
			"%s: %w", errCtx, err,
		)
	}

	reps := make(map[string]string)

	switch filepath.Ext(path) {
	case ".json":
		if err := json.Unmarshal(content, &reps); err != nil {
			return nil, fmt.Errorf(
				"%s: decoding %s: %w",
				errCtx, path, err,
			)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &reps); err != nil {
			return nil, fmt.Errorf(
				"%s: decoding %s: %w",
				errCtx, path, err,
			)
		}
	default:
		return nil, fmt.Errorf(
			"%s: %s: unsupported extension"+
				" (want .json, .yaml or .yml)",
			errCtx, path,
		)
	}

	return reps, nil
}

// Merge copies src entries into dst, overriding keys
// already present.
func Merge(dst, src map[string]string) {
	for key, val := range src {
		dst[key] = val
	}
}
