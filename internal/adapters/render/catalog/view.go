package catalog

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/hskwon/tdocfetch/internal/domain"
)

func renderView(meetings []domain.Meeting, group string, s styles) string {
	lines := []string{
		s.title.Render(fmt.Sprintf("%s meeting folders", group)),
		s.header.Render(fmt.Sprintf("meetings: %d", len(meetings))),
	}

	if len(meetings) == 0 {
		lines = append(lines, s.empty.Render("No meeting folders found."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	numbered := make([]domain.Meeting, 0, len(meetings))
	adHoc := make([]domain.Meeting, 0)
	for _, meeting := range meetings {
		if meeting.Numbered() {
			numbered = append(numbered, meeting)
		} else {
			adHoc = append(adHoc, meeting)
		}
	}

	if len(numbered) > 0 {
		lines = append(lines, s.section.Render(renderSection("Numbered", numbered, s)))
	}
	if len(adHoc) > 0 {
		lines = append(lines, s.section.Render(renderSection("Ad-hoc", adHoc, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderSection(label string, meetings []domain.Meeting, s styles) string {
	parts := []string{s.header.Render(label)}
	for _, meeting := range meetings {
		parts = append(parts, renderMeeting(meeting, s))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderMeeting(meeting domain.Meeting, s styles) string {
	name := s.meeting.Render(meeting.DisplayName)
	path := s.path.Render(meeting.RemotePath)

	if !meeting.Numbered() {
		return lipgloss.JoinHorizontal(lipgloss.Top, "  ", name, "  ", path)
	}

	variant := s.variant.Render(fmt.Sprintf("#%d%s", meeting.Ordinal, subRankLabel(meeting.SubRank)))
	return lipgloss.JoinHorizontal(lipgloss.Top, "  ", name, " ", variant, "  ", path)
}

func subRankLabel(subRank int) string {
	switch subRank {
	case 1:
		return " (bis)"
	case 2:
		return " (bis, electronic)"
	case 3:
		return " (electronic)"
	default:
		return ""
	}
}
