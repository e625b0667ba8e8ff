package credit_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmendezv/fiado/internal/credit"
)

func TestListFilter_Matches(t *testing.T) {
	c := &credit.Credit{
		ClientName:     "María",
		ClientLastName: "Pérez",
		IDNumber:       "10203040",
		Status:         credit.StatusActive,
		Date:           time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC),
	}

	paid := credit.StatusPaid
	active := credit.StatusActive
	mar15 := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	mar16 := time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		filter credit.ListFilter
		want   bool
	}{
		{name: "Empty", filter: credit.ListFilter{}, want: true},
		{name: "NameSubstring", filter: credit.ListFilter{Search: "mar"}, want: true},
		{name: "LastNameCaseInsensitive", filter: credit.ListFilter{Search: "PÉR"}, want: true},
		{name: "IDNumberSubstring", filter: credit.ListFilter{Search: "2030"}, want: true},
		{name: "NoMatch", filter: credit.ListFilter{Search: "carlos"}, want: false},
		{name: "WhitespaceOnlySearch", filter: credit.ListFilter{Search: "   "}, want: true},
		{name: "StatusMatch", filter: credit.ListFilter{Status: &active}, want: true},
		{name: "StatusMismatch", filter: credit.ListFilter{Status: &paid}, want: false},
		{name: "SameCalendarDay", filter: credit.ListFilter{Date: &mar15}, want: true},
		{name: "DifferentDay", filter: credit.ListFilter{Date: &mar16}, want: false},
		{name: "SearchAndStatus", filter: credit.ListFilter{Search: "maría", Status: &active}, want: true},
		{name: "SearchMatchStatusMismatch", filter: credit.ListFilter{Search: "maría", Status: &paid}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(c))
		})
	}
}

func TestListFilter_Matches_Overdue(t *testing.T) {
	c := &credit.Credit{
		ClientName: "María",
		IDNumber:   "10203040",
		Status:     credit.StatusOverdue,
	}

	overdue := credit.StatusOverdue
	active := credit.StatusActive

	assert.True(t, credit.ListFilter{Status: &overdue}.Matches(c))
	assert.False(t, credit.ListFilter{Status: &active}.Matches(c))
}
