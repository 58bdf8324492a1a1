package data

import (
	"strconv"
	"strings"
)

// GetPath navigates the tree along a dotted path and returns the value
// found there. Path segments name map keys; a segment that parses as an
// integer indexes into a list.
//
//	d.GetPath("a.b.0") // d.Get("a").Get("b").At(0)
//
// Like Get and At, GetPath is total: any segment that does not resolve
// yields Null. The empty path returns d itself.
func (d *Data) GetPath(path string) *Data {
	if path == "" {
		return d
	}
	res := d
	for _, seg := range strings.Split(path, ".") {
		switch res.kind {
		case MapKind:
			res = res.Get(seg)
		case ListKind:
			i, err := strconv.Atoi(seg)
			if err != nil {
				return Null()
			}
			res = res.At(i)
		default:
			return Null()
		}
	}
	return res
}
