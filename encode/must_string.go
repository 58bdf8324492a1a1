package encode

import (
	"strings"

	"github.com/flexon-format/go-flexon/data"
)

// MustString encodes to a string. The only failures Encode can produce
// come from the writer or an opaque codec; with a strings.Builder and no
// failing codec there are none, and any that do occur panic.
func MustString(d *data.Data, opts ...EncodeOption) string {
	var sb strings.Builder
	if err := Encode(d, &sb, opts...); err != nil {
		panic(err)
	}
	return sb.String()
}
