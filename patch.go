package flexon

import (
	"fmt"

	"github.com/flexon-format/go-flexon/data"
	"github.com/flexon-format/go-flexon/internal/debug"
	"github.com/flexon-format/go-flexon/parse"

	jsonpatch "github.com/evanphx/json-patch"
)

// Patch applies an RFC 6902 patch document to doc and returns the
// result. patch must be a list of operation maps; doc is not modified.
//
// The patch engine works on JSON, so both documents are bridged through
// the canonical encoding. Non-JSON niceties of the input, such as
// unquoted keys, survive the round trip because the canonical encoding
// is itself valid JSON.
func Patch(doc, patch *data.Data) (*data.Data, error) {
	if !patch.IsList() {
		return nil, fmt.Errorf("patch document must be a list, got %s", patch.Kind())
	}
	ops, err := jsonpatch.DecodePatch([]byte(patch.String()))
	if err != nil {
		return nil, fmt.Errorf("decoding patch: %w", err)
	}
	if debug.Patch() {
		debug.Logf("applying %d patch ops to %s\n", patch.Len(), doc.String())
	}
	out, err := ops.Apply([]byte(doc.String()))
	if err != nil {
		return nil, fmt.Errorf("applying patch: %w", err)
	}
	return parse.Decode(out), nil
}

// MergePatch applies an RFC 7386 merge patch to doc and returns the
// result. doc is not modified. Unlike Merge on data.Data, a null value
// in the patch removes the key from the target.
func MergePatch(doc, patch *data.Data) (*data.Data, error) {
	out, err := jsonpatch.MergePatch([]byte(doc.String()), []byte(patch.String()))
	if err != nil {
		return nil, fmt.Errorf("applying merge patch: %w", err)
	}
	return parse.Decode(out), nil
}
