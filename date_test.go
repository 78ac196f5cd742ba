package obfeed_test

import (
	"testing"

	"github.com/fwojciec/obfeed"
	"github.com/stretchr/testify/assert"
)

func TestMonthTable_Translate(t *testing.T) {
	t.Parallel()

	months := obfeed.FrenchMonths()

	tests := []struct {
		in   string
		want string
	}{
		{"3 mars 2023", "3 March 2023"},
		{"3 jxxx 2023", "3 jxxx 2023"},
		{"1 janvier 2023", "1 January 2023"},
		{"14 février 2023", "14 February 2023"},
		{"15 août 2022", "15 August 2022"},
		{"25 décembre 2022", "25 December 2022"},
		{"samedi 1 juillet 2023", "samedi 1 July 2023"},
		{"", ""},
		// Only the first month name is translated.
		{"mai ou juin", "May ou juin"},
		// Month names inside longer words are left alone.
		{"3 marsupial 2023", "3 marsupial 2023"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, months.Translate(tt.in))
		})
	}
}

func TestFrenchMonths(t *testing.T) {
	t.Parallel()

	months := obfeed.FrenchMonths()

	assert.Equal(t, 12, months.Len())
	for _, name := range []string{"janvier", "février", "mars", "avril", "mai", "juin", "juillet", "août", "septembre", "octobre", "novembre", "décembre"} {
		assert.NotEqual(t, name, months.Translate(name), "%s should be translated", name)
	}
}

func TestNewMonthTable(t *testing.T) {
	t.Parallel()

	t.Run("custom locale", func(t *testing.T) {
		t.Parallel()

		months := obfeed.NewMonthTable(map[string]string{"maart": "March", "mei": "May"})

		assert.Equal(t, "3 March 2023", months.Translate("3 maart 2023"))
		assert.Equal(t, 2, months.Len())
	})

	t.Run("empty table is identity", func(t *testing.T) {
		t.Parallel()

		months := obfeed.NewMonthTable(nil)

		assert.Equal(t, "3 mars 2023", months.Translate("3 mars 2023"))
		assert.Zero(t, months.Len())
	})

	t.Run("nil table is identity", func(t *testing.T) {
		t.Parallel()

		var months *obfeed.MonthTable

		assert.Equal(t, "3 mars 2023", months.Translate("3 mars 2023"))
	})
}
