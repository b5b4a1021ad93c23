package store

import (
	"fmt"
	"strconv"
	"strings"
)

// nextID derives the next identifier for a collection from the maximum
// numeric suffix among existing ids carrying the prefix. Ids whose suffix
// does not parse are excluded from the candidate set rather than treated as
// errors, so the sequence survives deletions and gaps.
//
// If the collection is non-empty but no id parses at all, the id falls back
// to prefix + zero-padded(count+1). That fallback only exists to keep a
// malformed data file usable; it does not guarantee uniqueness.
func nextID(prefix string, width int, ids []string) string {
	if len(ids) == 0 {
		return format(prefix, width, 1)
	}

	max := 0
	parsed := false
	for _, id := range ids {
		if !strings.HasPrefix(id, prefix) {
			continue
		}
		n, err := strconv.Atoi(strings.TrimPrefix(id, prefix))
		if err != nil {
			continue
		}
		parsed = true
		if n > max {
			max = n
		}
	}
	if !parsed {
		return format(prefix, width, len(ids)+1)
	}
	return format(prefix, width, max+1)
}

func format(prefix string, width, n int) string {
	return fmt.Sprintf("%s%0*d", prefix, width, n)
}
