package wc

import (
	"fmt"
	"io"
)

// writeCounts writes one line holding the counts for modes in output order,
// followed by fname unless it is empty.
func writeCounts(w io.Writer, modes Mode, r Results, fname string) error {
	const fmtSpInt = " %d"

	fmtInt := "%d"
	for _, v := range r.Values(modes) {
		if _, err := fmt.Fprintf(w, fmtInt, v); err != nil {
			return err
		}
		fmtInt = fmtSpInt
	}
	if fname != "" {
		if _, err := fmt.Fprintf(w, " %s", fname); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}
