package search

import (
	"bytes"
	"strconv"
	"strings"

	"example.com/lineedit/pkg/buffer"
)

// Lines returns the 1-based numbers of every line of doc containing query as
// a literal substring. Line terminators are not searched. An empty query
// returns nil.
func Lines(doc buffer.LineStorage, query string) []int {
	if query == "" {
		return nil
	}
	q := []byte(query)
	var res []int
	for pos := 1; pos <= doc.Len(); pos++ {
		content := bytes.TrimSuffix(doc.Line(pos), []byte{'\n'})
		if bytes.Contains(content, q) {
			res = append(res, pos)
		}
	}
	return res
}

// Format renders line numbers as a comma-separated list, or "none".
func Format(nums []int) string {
	if len(nums) == 0 {
		return "none"
	}
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}
