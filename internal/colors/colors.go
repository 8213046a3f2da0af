// Package colors implements the automatic color assignment for categories.
package colors

// palette contains the display colors for categories, ordered across the
// color spectrum. The order is part of the contract: existing categories
// keep their color only if the palette order and the stride stay the same.
var palette = [...]string{
	"#E53935", // red
	"#EF5350",
	"#F4511E", // deep orange
	"#FF7043",
	"#FB8C00", // orange
	"#FFA726",
	"#FFB300", // amber
	"#FFCA28",
	"#FDD835", // yellow
	"#C0CA33", // lime
	"#9CCC65",
	"#7CB342", // light green
	"#43A047", // green
	"#66BB6A",
	"#26A69A", // teal
	"#00897B",
	"#00ACC1", // cyan
	"#26C6DA",
	"#039BE5", // light blue
	"#29B6F6",
	"#1E88E5", // blue
	"#42A5F5",
	"#3949AB", // indigo
	"#5C6BC0",
	"#5E35B1", // deep purple
	"#7E57C2",
	"#8E24AA", // purple
	"#AB47BC",
	"#D81B60", // pink
	"#EC407A",
}

// stride is the step width used to walk the palette. It is coprime with the
// palette size, so consecutive indices land on well separated hues instead
// of adjacent, similar ones, and the first len(palette) indices visit every
// entry exactly once.
const stride = 7

// ForIndex maps a creation-order index to a palette color.
//
// The mapping is pure and total: indices beyond the palette size wrap
// around, which is intentional.
func ForIndex(index uint) string {
	return palette[(index*stride)%uint(len(palette))]
}

// Len returns the number of colors in the palette.
func Len() int {
	return len(palette)
}
