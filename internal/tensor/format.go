package tensor

import (
	"math"
	"strconv"
	"strings"
)

const tensorPrefix = "tensor("

// String renders the tensor's values, e.g.
//
//	tensor([[1, 2],
//	        [4, 5]])
//
// Columns are right-aligned. Float values always carry a decimal point, and a
// dtype suffix is added for types other than float32 and int64.
func (t *Tensor[T, B]) String() string {
	cells, width := formatCells(t.Data(), t.DType())

	var sb strings.Builder
	sb.WriteString(tensorPrefix)
	writeNested(&sb, cells, width, t.Shape(), len(tensorPrefix))
	if dt := t.DType(); dt != Float32 && dt != Int64 {
		sb.WriteString(", dtype=")
		sb.WriteString(dt.String())
	}
	sb.WriteString(")")
	return sb.String()
}

func formatCells[T DType](data []T, dtype DataType) ([]string, int) {
	cells := make([]string, len(data))
	if !dtype.IsFloat() {
		for i, v := range data {
			cells[i] = strconv.FormatInt(int64(v), 10)
		}
		return cells, maxWidth(cells)
	}

	integral := true
	for _, v := range data {
		f := float64(v)
		if !math.IsInf(f, 0) && !math.IsNaN(f) && f != math.Trunc(f) {
			integral = false
			break
		}
	}
	for i, v := range data {
		cells[i] = formatFloat(float64(v), integral)
	}
	return cells, maxWidth(cells)
}

func formatFloat(f float64, integral bool) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case integral:
		return strconv.FormatFloat(f, 'f', 0, 64) + "."
	default:
		return strconv.FormatFloat(f, 'f', 4, 64)
	}
}

func maxWidth(cells []string) int {
	w := 0
	for _, c := range cells {
		w = max(w, len(c))
	}
	return w
}

func writeNested(sb *strings.Builder, cells []string, width int, shape Shape, indent int) {
	switch len(shape) {
	case 0:
		sb.WriteString(cells[0])
		return
	case 1:
		sb.WriteByte('[')
		for i, c := range cells {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strings.Repeat(" ", width-len(c)))
			sb.WriteString(c)
		}
		sb.WriteByte(']')
		return
	}

	block := shape[1:].NumElements()
	sb.WriteByte('[')
	for i := 0; i < shape[0]; i++ {
		if i > 0 {
			sb.WriteByte(',')
			sb.WriteString(strings.Repeat("\n", len(shape)-1))
			sb.WriteString(strings.Repeat(" ", indent+1))
		}
		writeNested(sb, cells[i*block:(i+1)*block], width, shape[1:], indent+1)
	}
	sb.WriteByte(']')
}
