package channels

// Layout is where the strip sits and how big each part is
type Layout struct {
	X, Y, Width int32
	TabHeight   int32
	MeterHeight int32
	Padding     int32
}

// DefaultLayout places the strip along the bottom of a w x h window
func DefaultLayout(w, h int32) Layout {
	l := Layout{
		TabHeight:   72,
		MeterHeight: 12,
		Padding:     16,
	}
	l.X = l.Padding
	l.Width = w - 2*l.Padding
	l.Y = h - l.Padding - l.TabHeight
	return l
}
