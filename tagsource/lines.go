package tagsource

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/woozymasta/kubetags"
)

// maxLine bounds a single input line.
const maxLine = 10 * 1024 * 1024

// Lines reads one tag per line from r. Surrounding whitespace is trimmed and
// blank lines are skipped.
func Lines(r io.Reader) kubetags.TagSource {
	return func(yield func(string, error) bool) {
		sc := bufio.NewScanner(r)
		sc.Buffer(make([]byte, 0, 64*1024), maxLine)

		for sc.Scan() {
			s := strings.TrimSpace(sc.Text())
			if s == "" {
				continue
			}

			if !yield(s, nil) {
				return
			}
		}

		if err := sc.Err(); err != nil {
			yield("", errors.Wrap(err, "error reading tags"))
		}
	}
}
