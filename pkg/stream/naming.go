package stream

import (
	"fmt"
	"strings"
)

// OutputExt is appended to the run name to form the image file name.
const OutputExt = ".jpeg"

// Title returns the plot title for a run.
//
// Runs whose name contains "sq" are square datasets, all others irregular.
// The suffix is the run name without its first three characters, so "sq1"
// gives an empty suffix and "irr2" gives "2".
func Title(runName string) string {
	kind := "irregular"
	if strings.Contains(runName, "sq") {
		kind = "Square"
	}
	var suffix string
	if r := []rune(runName); len(r) > 3 {
		suffix = string(r[3:])
	}
	return fmt.Sprintf("Part 3 %s Dataset%s", kind, suffix)
}

// OutputFile returns the image file name for a run.
func OutputFile(runName string) string {
	return runName + OutputExt
}
