package domain

import (
	"sort"
	"strconv"
	"strings"
)

type MeetingKind string

const (
	KindNumbered MeetingKind = "numbered"
	KindAdHoc    MeetingKind = "adhoc"
)

// Meeting is one remote folder holding the documents of a single meeting,
// either a regular numbered meeting or an ad-hoc session discovered under the
// working group's ad-hoc folder.
type Meeting struct {
	DisplayName string
	RemotePath  string // absolute, always "/"-terminated
	Kind        MeetingKind
	Ordinal     int // meeting number, -1 for ad-hoc
	SubRank     int // base 0, bis 1, bis-e 2, -e 3
}

func (m Meeting) Numbered() bool {
	return m.Kind == KindNumbered
}

// ParseMeetingFolder extracts the meeting number and sub-rank from a folder
// name of the form <prefix><digits><suffix>, e.g. "TSGR1_100bis" -> (100, 1).
// Names that do not start with the prefix followed by at least one digit
// yield (-1, 0). The suffix is matched case-insensitively.
func ParseMeetingFolder(name, prefix string) (ordinal, subRank int) {
	if !strings.HasPrefix(name, prefix) {
		return -1, 0
	}

	rest := name[len(prefix):]
	digits := 0
	for digits < len(rest) && rest[digits] >= '0' && rest[digits] <= '9' {
		digits++
	}
	if digits == 0 {
		return -1, 0
	}

	number, err := strconv.Atoi(rest[:digits])
	if err != nil {
		return -1, 0
	}

	switch strings.ToLower(rest[digits:]) {
	case "b", "bis":
		return number, 1
	case "b-e", "bis-e", "b_e":
		return number, 2
	case "-e", "_e":
		return number, 3
	}

	return number, 0
}

// SortCatalog orders numbered meetings by (ordinal, sub-rank) ascending and
// places all ad-hoc meetings after them, keeping their discovery order.
func SortCatalog(meetings []Meeting) {
	sort.SliceStable(meetings, func(i, j int) bool {
		a, b := meetings[i], meetings[j]
		if a.Numbered() != b.Numbered() {
			return a.Numbered()
		}
		if !a.Numbered() {
			return false
		}
		if a.Ordinal != b.Ordinal {
			return a.Ordinal < b.Ordinal
		}
		return a.SubRank < b.SubRank
	})
}
