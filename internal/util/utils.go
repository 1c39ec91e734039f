package util

import (
	"bytes"
	"fmt"
	"strings"
)

func GetLineAndColumn(src string, pos int) (line int, column int) {
	line = 1
	column = 1
	for i, char := range src {
		if i == pos {
			break
		}
		if char == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}
	return
}

// GetContextLines extracts and formats context lines around an error position
func GetContextLines(src string, errorLine, errorCol int) string {
	var result bytes.Buffer

	lines := strings.Split(strings.TrimSuffix(src, "\n"), "\n")

	// Show 2 lines before the error line (if available)
	startLine := errorLine - 2
	if startLine < 1 {
		startLine = 1
	}

	for i := startLine; i <= errorLine && i <= len(lines); i++ {
		lineContent := lines[i-1]

		if i == errorLine {
			margin := fmt.Sprintf("  >  %3d | ", i)
			result.WriteString(fmt.Sprintf("%s%s\n", margin, lineContent))

			// errorCol counts runes
			runes := []rune(lineContent)
			upTo := min(max(errorCol-1, 0), len(runes))
			result.WriteString(fmt.Sprintf("%s^ unexpected here",
				replaceVisibleWithSpaces(margin+string(runes[:upTo]))))
		} else {
			result.WriteString(fmt.Sprintf("     %3d | %s\n", i, lineContent))
		}
	}

	return result.String()
}

// replaceVisibleWithSpaces replaces all non-whitespace characters with spaces
// while preserving tabs for correct alignment.
func replaceVisibleWithSpaces(s string) string {
	var buf bytes.Buffer
	for _, c := range s {
		if c == '\t' {
			buf.WriteRune('\t')
		} else {
			buf.WriteRune(' ')
		}
	}
	return buf.String()
}
