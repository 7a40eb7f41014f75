package format

import (
	"sort"
)

type edit struct {
	start int
	end   int
	data  string
}

// addEdit records a replacement of content[start:end] unless it is a no-op.
func addEdit(out *[]edit, content []byte, start, end int, data string) {
	if out == nil || start < 0 || end < start || end > len(content) {
		return
	}
	if string(content[start:end]) == data {
		return
	}
	*out = append(*out, edit{start: start, end: end, data: data})
}

// applyEdits splices non-overlapping edits into a copy of content, last
// edit first so earlier offsets stay valid.
func applyEdits(content []byte, edits []edit) []byte {
	out := append([]byte(nil), content...)
	if len(edits) == 0 {
		return out
	}
	sort.SliceStable(edits, func(i, j int) bool {
		return edits[i].start > edits[j].start
	})
	for _, e := range edits {
		if e.start < 0 || e.start > e.end || e.end > len(out) {
			continue
		}
		out = append(out[:e.start], append([]byte(e.data), out[e.end:]...)...)
	}
	return out
}
