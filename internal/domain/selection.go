package domain

import (
	"fmt"
	"strings"
)

// SelectMeetings filters a sorted catalog down to the meetings to scan.
// The range endpoints are folder names ("TSGR1_107"); both must parse to a
// valid meeting number or the call fails with ErrInvalidRange. A reversed
// range is swapped, not rejected. Numbered meetings are kept when their
// number falls within the range, so every sub-rank variant of an in-range
// meeting is included. Ad-hoc meetings are kept only when includeAdHoc is
// set and their remote path contains adHocFilter (empty filter matches all).
// Catalog order is preserved.
func SelectMeetings(catalog []Meeting, fromFolder, toFolder, prefix string, includeAdHoc bool, adHocFilter string) ([]Meeting, error) {
	start, _ := ParseMeetingFolder(fromFolder, prefix)
	end, _ := ParseMeetingFolder(toFolder, prefix)
	if start == -1 || end == -1 {
		return nil, fmt.Errorf("%w: cannot extract a meeting number from %q..%q", ErrInvalidRange, fromFolder, toFolder)
	}
	if start > end {
		start, end = end, start
	}

	selected := make([]Meeting, 0, len(catalog))
	for _, meeting := range catalog {
		switch meeting.Kind {
		case KindNumbered:
			if meeting.Ordinal >= start && meeting.Ordinal <= end {
				selected = append(selected, meeting)
			}
		case KindAdHoc:
			if !includeAdHoc {
				continue
			}
			if adHocFilter == "" || strings.Contains(meeting.RemotePath, adHocFilter) {
				selected = append(selected, meeting)
			}
		}
	}

	return selected, nil
}
