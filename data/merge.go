package data

// Merge folds other into d. Nested maps merge recursively key by key;
// scalar and list values are overwritten by other's. Lists are never
// concatenated. Merge is a no-op unless both sides are maps.
func (d *Data) Merge(other *Data) *Data {
	if d.kind != MapKind || other == nil || other.kind != MapKind {
		return d
	}
	for i, k := range other.keys {
		ov := other.vals[i]
		j, ok := d.idx[k]
		if !ok {
			d.Put(k, ov)
			continue
		}
		cur := d.vals[j]
		if cur.kind == MapKind && ov.kind == MapKind {
			cur.Merge(ov)
			continue
		}
		d.vals[j] = ov
	}
	return d
}

// Clone returns a deep copy of the tree. Byte values share their backing
// segments through a fresh zero-copy sub-view; opaque handles are shared.
func (d *Data) Clone() *Data {
	switch d.kind {
	case ListKind:
		cp := List()
		for _, e := range d.list {
			cp.list = append(cp.list, e.Clone())
		}
		return cp
	case MapKind:
		cp := Map()
		for i, k := range d.keys {
			cp.Put(k, d.vals[i].Clone())
		}
		return cp
	default:
		cp := *d
		if d.view != nil {
			if sub, err := d.view.Substring(0, d.view.Len()); err == nil {
				cp.view = sub
			}
		}
		return &cp
	}
}
