package ticket

import (
	"fmt"
	"strconv"
)

// NextTicketNumber returns the next ticket number: the highest existing
// number plus one, zero-padded to 5 digits. Gaps are never filled and
// non-numeric numbers are ignored.
//
// The rule is optimistic. Two submissions that read the same set of
// existing numbers receive the same next number.
func NextTicketNumber(existing []string) string {
	highest := 0
	for _, n := range existing {
		v, err := strconv.Atoi(n)
		if err != nil {
			continue
		}
		if v > highest {
			highest = v
		}
	}
	return fmt.Sprintf("%05d", highest+1)
}
