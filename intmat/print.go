package intmat

import (
	"strings"
)

// isPow10 reports whether the printed magnitude is an exact power of ten of
// at least 10, i.e. a '1' followed by one or more zeros.
func isPow10(text string) bool {
	s := strings.TrimPrefix(text, "-")
	if len(s) < 2 || s[0] != '1' {
		return false
	}
	for _, c := range s[1:] {
		if c != '0' {
			return false
		}
	}
	return true
}

// String renders the matrix in the textual basis format: one row per line,
// "[ v1 v2 ... vn ]", entries right-aligned per column. Each column's width
// is the maximum printed width of its entries, with one extra slot reserved
// for entries whose magnitude is an exact power of ten of at least ten,
// keeping alignment stable across magnitude boundaries. The slot is not
// reserved for 1 and -1, so a column of single digits keeps width one.
func (m *Matrix) String() string {
	if m.rows == 0 {
		return ""
	}
	widths := make([]int, m.cols)
	cells := make([]string, m.rows*m.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			s := m.st.text(i*m.cols + j)
			cells[i*m.cols+j] = s
			w := len(s)
			if isPow10(s) {
				w++
			}
			if w > widths[j] {
				widths[j] = w
			}
		}
	}
	var sb strings.Builder
	for i := 0; i < m.rows; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteByte('[')
		for j := 0; j < m.cols; j++ {
			sb.WriteByte(' ')
			s := cells[i*m.cols+j]
			for p := len(s); p < widths[j]; p++ {
				sb.WriteByte(' ')
			}
			sb.WriteString(s)
		}
		sb.WriteString(" ]")
	}
	return sb.String()
}
