package layout

// NamedLayout pairs a preset tree with a display name.
type NamedLayout struct {
	Name string
	Root *Node
}

// DefaultLayout returns the canonical 2x2 grid: two column halves, each
// split into two row halves. It is the fallback whenever no persisted
// layout exists or a persisted one fails the integrity check.
func DefaultLayout() *Node {
	return New(ColumnAt(0),
		New(ColumnAt(0.5),
			NewLeaf(RowAt(0.5)),
			NewLeaf(LastRow()),
		),
		New(LastColumn(),
			NewLeaf(RowAt(0.5)),
			NewLeaf(LastRow()),
		),
	)
}

// BuiltinPresets returns the fixed system presets, in slot order. User-saved
// presets shadow these slot by slot; slots past the end of this list start
// out empty.
func BuiltinPresets() []NamedLayout {
	return []NamedLayout{
		{Name: "Halves", Root: New(ColumnAt(0),
			NewLeaf(ColumnAt(0.5)),
			NewLeaf(LastColumn()),
		)},
		{Name: "Quarters", Root: DefaultLayout()},
		{Name: "Thirds", Root: New(ColumnAt(0),
			NewLeaf(ColumnAt(1.0/3)),
			NewLeaf(ColumnAt(2.0/3)),
			NewLeaf(LastColumn()),
		)},
		{Name: "Main and side", Root: New(ColumnAt(0),
			NewLeaf(ColumnAt(0.65)),
			NewLeaf(LastColumn()),
		)},
		{Name: "Main and stack", Root: New(ColumnAt(0),
			NewLeaf(ColumnAt(0.65)),
			New(LastColumn(),
				NewLeaf(RowAt(0.5)),
				NewLeaf(LastRow()),
			),
		)},
		{Name: "Rows", Root: New(ColumnAt(0),
			NewLeaf(RowAt(0.5)),
			NewLeaf(LastRow()),
		)},
		{Name: "Single", Root: NewLeaf(ColumnAt(0))},
	}
}
