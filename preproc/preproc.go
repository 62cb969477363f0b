// Package preproc implements the textual preprocessing stage: recursive
// `#include` expansion and `#define` macro-table extraction.  It runs before
// parsing and produces expanded source text plus a name-to-literal table; the
// rest of the compiler never re-reads files.
package preproc

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Source is the output of preprocessing.
type Source struct {
	// The fully include-expanded source text with directive lines blanked
	// out (blanking preserves line numbers for error spans).
	Text string

	// The macro table: define name to literal text.
	Defines map[string]string
}

// Preprocess expands the file at the given path and extracts its defines.
func Preprocess(path string) (*Source, error) {
	expanded, err := expandIncludes(path, make(map[string]struct{}))
	if err != nil {
		return nil, err
	}

	defines, text, err := extractDefines(expanded)
	if err != nil {
		return nil, err
	}

	return &Source{Text: text, Defines: defines}, nil
}

// -----------------------------------------------------------------------------

// expandIncludes recursively replaces `#include "file";` directives with the
// contents of the named file, resolved relative to the including file.  The
// chain set holds the absolute paths currently being expanded: re-entering one
// is a circular include.  Including the same file twice on separate branches
// is allowed.
func expandIncludes(path string, chain map[string]struct{}) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	if _, ok := chain[absPath]; ok {
		return "", fmt.Errorf("circular include detected: %s", path)
	}

	chain[absPath] = struct{}{}
	defer delete(chain, absPath)

	data, err := os.ReadFile(absPath)
	if err != nil {
		return "", fmt.Errorf("cannot read %s: %w", path, err)
	}

	baseDir := filepath.Dir(absPath)

	var out []string
	for lineNum, line := range strings.Split(string(data), "\n") {
		stripped := strings.TrimSpace(line)
		if !strings.HasPrefix(stripped, "#include") {
			out = append(out, strings.TrimRight(line, "\r"))
			continue
		}

		name, err := parseIncludeDirective(stripped)
		if err != nil {
			return "", fmt.Errorf("%s:%d: %w", path, lineNum+1, err)
		}

		included, err := expandIncludes(filepath.Join(baseDir, name), chain)
		if err != nil {
			return "", fmt.Errorf("%s:%d: %w", path, lineNum+1, err)
		}

		out = append(out, "// --- start include: "+name+" ---")
		out = append(out, included)
		out = append(out, "// --- end include: "+name+" ---")
	}

	return strings.Join(out, "\n"), nil
}

// parseIncludeDirective extracts the file name from an `#include "file";`
// line.
func parseIncludeDirective(line string) (string, error) {
	rest := strings.TrimSpace(strings.TrimPrefix(line, "#include"))

	if !strings.HasSuffix(rest, ";") {
		return "", fmt.Errorf("invalid #include: expected `#include \"filename\";`")
	}

	rest = strings.TrimSpace(strings.TrimSuffix(rest, ";"))
	if len(rest) < 2 || !strings.HasPrefix(rest, `"`) || !strings.HasSuffix(rest, `"`) {
		return "", fmt.Errorf("invalid #include: expected `#include \"filename\";`")
	}

	return rest[1 : len(rest)-1], nil
}

// extractDefines collects `#define NAME value` directives into the macro table
// and blanks the directive lines from the text.
func extractDefines(text string) (map[string]string, string, error) {
	defines := make(map[string]string)

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		stripped := strings.TrimSpace(line)
		if !strings.HasPrefix(stripped, "#define") {
			continue
		}

		parts := strings.Fields(stripped)
		if len(parts) != 3 {
			return nil, "", fmt.Errorf("line %d: invalid #define: expected `#define NAME value`", i+1)
		}

		defines[parts[1]] = parts[2]
		lines[i] = ""
	}

	return defines, strings.Join(lines, "\n"), nil
}
