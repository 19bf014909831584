package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() []Meeting {
	return []Meeting{
		{DisplayName: "TSGR1_99", RemotePath: "/base/TSGR1_99/", Kind: KindNumbered, Ordinal: 99},
		{DisplayName: "TSGR1_100", RemotePath: "/base/TSGR1_100/", Kind: KindNumbered, Ordinal: 100},
		{DisplayName: "TSGR1_100bis", RemotePath: "/base/TSGR1_100bis/", Kind: KindNumbered, Ordinal: 100, SubRank: 1},
		{DisplayName: "TSGR1_101", RemotePath: "/base/TSGR1_101/", Kind: KindNumbered, Ordinal: 101},
		{DisplayName: "TSGR1_AH/2023_NR_AH1", RemotePath: "/base/TSGR1_AH/2023_NR_AH1/", Kind: KindAdHoc, Ordinal: -1},
		{DisplayName: "TSGR1_AH/2016_LTE", RemotePath: "/base/TSGR1_AH/2016_LTE/", Kind: KindAdHoc, Ordinal: -1},
	}
}

func TestSelectMeetingsRangeIncludesAllSubRankVariants(t *testing.T) {
	selected, err := SelectMeetings(testCatalog(), "TSGR1_100", "TSGR1_100", "TSGR1_", false, "")
	require.NoError(t, err)

	require.Len(t, selected, 2)
	assert.Equal(t, "TSGR1_100", selected[0].DisplayName)
	assert.Equal(t, "TSGR1_100bis", selected[1].DisplayName)
}

func TestSelectMeetingsSwapsReversedRange(t *testing.T) {
	forward, err := SelectMeetings(testCatalog(), "TSGR1_99", "TSGR1_101", "TSGR1_", false, "")
	require.NoError(t, err)

	reversed, err := SelectMeetings(testCatalog(), "TSGR1_101", "TSGR1_99", "TSGR1_", false, "")
	require.NoError(t, err)

	assert.Equal(t, forward, reversed)
}

func TestSelectMeetingsAdHocFilter(t *testing.T) {
	selected, err := SelectMeetings(testCatalog(), "TSGR1_100", "TSGR1_100", "TSGR1_", true, "NR")
	require.NoError(t, err)

	names := make([]string, 0, len(selected))
	for _, meeting := range selected {
		names = append(names, meeting.DisplayName)
	}
	assert.Equal(t, []string{"TSGR1_100", "TSGR1_100bis", "TSGR1_AH/2023_NR_AH1"}, names)
}

func TestSelectMeetingsEmptyAdHocFilterMatchesAll(t *testing.T) {
	selected, err := SelectMeetings(testCatalog(), "TSGR1_200", "TSGR1_200", "TSGR1_", true, "")
	require.NoError(t, err)

	require.Len(t, selected, 2)
	assert.Equal(t, KindAdHoc, selected[0].Kind)
	assert.Equal(t, KindAdHoc, selected[1].Kind)
}

func TestSelectMeetingsAdHocDisabled(t *testing.T) {
	selected, err := SelectMeetings(testCatalog(), "TSGR1_99", "TSGR1_101", "TSGR1_", false, "")
	require.NoError(t, err)

	for _, meeting := range selected {
		assert.Equal(t, KindNumbered, meeting.Kind)
	}
}

func TestSelectMeetingsInvalidEndpoints(t *testing.T) {
	_, err := SelectMeetings(testCatalog(), "garbage", "TSGR1_100", "TSGR1_", false, "")
	require.ErrorIs(t, err, ErrInvalidRange)

	_, err = SelectMeetings(testCatalog(), "TSGR1_100", "TSGR1_AH", "TSGR1_", false, "")
	require.ErrorIs(t, err, ErrInvalidRange)
}

func TestSelectMeetingsIsIdempotent(t *testing.T) {
	first, err := SelectMeetings(testCatalog(), "TSGR1_99", "TSGR1_101", "TSGR1_", true, "NR")
	require.NoError(t, err)

	second, err := SelectMeetings(testCatalog(), "TSGR1_99", "TSGR1_101", "TSGR1_", true, "NR")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
