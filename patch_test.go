package flexon

import (
	"testing"
)

func TestPatch(t *testing.T) {
	doc := DecodeString(`{name: "box", size: {w: 2, h: 3}, tags: ["a"]}`)
	patch := DecodeString(`[
		{op: replace, path: "/size/w", value: 5},
		{op: add, path: "/tags/-", value: "b"},
		{op: remove, path: "/name"}
	]`)
	got, err := Patch(doc, patch)
	if err != nil {
		t.Fatal(err)
	}
	want := DecodeString(`{size: {w: 5, h: 3}, tags: ["a", "b"]}`)
	if !got.Equal(want) {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestPatchNotAList(t *testing.T) {
	doc := DecodeString(`{a: 1}`)
	if _, err := Patch(doc, DecodeString(`{op: remove}`)); err == nil {
		t.Error("expected error for non-list patch")
	}
}

func TestPatchBadOp(t *testing.T) {
	doc := DecodeString(`{a: 1}`)
	patch := DecodeString(`[{op: remove, path: "/missing"}]`)
	if _, err := Patch(doc, patch); err == nil {
		t.Error("expected error removing a missing path")
	}
}

func TestMergePatch(t *testing.T) {
	doc := DecodeString(`{a: 1, b: {c: 2, d: 3}, e: "keep"}`)
	patch := DecodeString(`{a: 10, b: {c: null}}`)
	got, err := MergePatch(doc, patch)
	if err != nil {
		t.Fatal(err)
	}
	want := DecodeString(`{a: 10, b: {d: 3}, e: "keep"}`)
	if !got.Equal(want) {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestMergePatchScalarReplaces(t *testing.T) {
	got, err := MergePatch(DecodeString(`{a: 1}`), DecodeString(`"flat"`))
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(DecodeString(`"flat"`)) {
		t.Errorf("got %s", got)
	}
}
