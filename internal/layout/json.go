package layout

import "encoding/json"

// The wire format has no native infinity, so the two fill sentinels are
// written as reserved finite magnitudes: 99999 for a column sentinel and
// -99999 for a row sentinel. Stored edges keep the sign convention of the
// format: non-negative values are column fractions of the display width,
// negative values are row fractions of the display height.
const sentinelMagnitude = 99999

// nodeWire is the persisted shape of a node. Leaves omit children and a zero
// margin is omitted entirely, so an untouched node round-trips to the same
// bytes as one whose margin was never set.
type nodeWire struct {
	Children   []*nodeWire `json:"children,omitempty"`
	Percentage *float64    `json:"percentage,omitempty"`
	Margin     int         `json:"margin,omitempty"`
}

// MarshalJSON encodes the subtree in the persisted layout format.
func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.wire())
}

func (n *Node) wire() *nodeWire {
	v := encodePercentage(n.Percent)
	w := &nodeWire{Percentage: &v, Margin: n.Margin}
	for _, c := range n.Children {
		w.Children = append(w.Children, c.wire())
	}
	return w
}

// UnmarshalJSON decodes the persisted layout format. The result's structural
// integrity is not checked here; callers accepting trees from storage must
// run IntegrityError before trusting them.
func (n *Node) UnmarshalJSON(data []byte) error {
	var w nodeWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	w.into(n)
	return nil
}

func (w *nodeWire) into(n *Node) {
	*n = Node{Margin: w.Margin}
	if w.Percentage != nil {
		n.Percent = decodePercentage(*w.Percentage)
	}
	for _, cw := range w.Children {
		c := &Node{}
		cw.into(c)
		c.parent = n
		n.Children = append(n.Children, c)
	}
}

func encodePercentage(p Percentage) float64 {
	switch {
	case p.Last && p.Axis == Row:
		return -sentinelMagnitude
	case p.Last:
		return sentinelMagnitude
	case p.Axis == Row && p.Frac != 0:
		return -p.Frac
	default:
		return p.Frac
	}
}

func decodePercentage(v float64) Percentage {
	switch {
	case v >= sentinelMagnitude:
		return LastColumn()
	case v <= -sentinelMagnitude:
		return LastRow()
	case v < 0:
		return RowAt(-v)
	default:
		return ColumnAt(v)
	}
}
