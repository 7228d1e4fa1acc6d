package ticket

import "testing"

func TestNextTicketNumber(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		want     string
	}{
		{"first ticket", nil, "00001"},
		{"sequential", []string{"00001", "00002"}, "00003"},
		{"gaps are not filled", []string{"00001", "00003"}, "00004"},
		{"order does not matter", []string{"00007", "00002"}, "00008"},
		{"non numeric numbers are ignored", []string{"00002", "legacy"}, "00003"},
		{"grows past five digits", []string{"99999"}, "100000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextTicketNumber(tt.existing); got != tt.want {
				t.Errorf("NextTicketNumber() = %q, want %q", got, tt.want)
			}
		})
	}
}

// Two submissions that observe the same tickets are handed the same number.
// Numbering is optimistic and this collision is a known race.
func TestNextTicketNumberConcurrentSubmissionsCollide(t *testing.T) {
	seen := []string{"00001", "00002"}

	first := NextTicketNumber(seen)
	second := NextTicketNumber(seen)

	if first != second {
		t.Fatalf("expected colliding numbers, got %q and %q", first, second)
	}
	if first != "00003" {
		t.Errorf("NextTicketNumber() = %q, want 00003", first)
	}
}
