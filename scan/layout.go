package scan

import "keymatrix/key"

// DefaultTopology returns the stock key table. Cell order follows the flex
// connector wiring, not the printed layout, so rows look scrambled here.
func DefaultTopology() *Topology {
	return &Topology{
		Keys: [6][8]key.Code{
			{key.Space, '.', ',', 'm', 'n', '/', 'q', '0'},
			{'l', 'k', 'j', 'h', ';', key.Enter, 'p', '9'},
			{'o', 'i', 'u', 'y', 'r', 't', 'e', '8'},
			{'w', 's', 'd', 'f', 'g', 'a', 'x', '7'},
			{'z', 'c', 'v', 'b', '1', '2', '3', '4'},
			{'5', '6', key.Backspace, key.Tab, key.Escape, key.None, key.None, key.None},
		},
		ActiveCols: [6]int{8, 8, 8, 8, 8, 5},
	}
}
