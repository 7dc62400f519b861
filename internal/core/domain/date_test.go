package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HaroonAzizi/hadaf-accounting/internal/core/domain"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "plain date", in: "2026-01-15", want: "2026-01-15"},
		{name: "timestamp drops time", in: "2026-01-15T23:30:00+04:30", want: "2026-01-15"},
		{name: "space separated timestamp", in: "2026-01-15 08:00:00", want: "2026-01-15"},
		{name: "surrounding spaces", in: "  2026-01-15 ", want: "2026-01-15"},
		{name: "impossible day", in: "2026-02-30", wantErr: true},
		{name: "wrong layout", in: "15/01/2026", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseDate(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestDate_AddMonthsClamped(t *testing.T) {
	tests := []struct {
		from string
		n    int
		want string
	}{
		{"2026-01-15", 1, "2026-02-15"},
		{"2026-01-31", 1, "2026-02-28"},
		{"2024-01-31", 1, "2024-02-29"},
		{"2026-03-31", 1, "2026-04-30"},
		{"2026-12-31", 1, "2027-01-31"},
		{"2024-02-29", 12, "2025-02-28"},
		{"2026-05-31", -1, "2026-04-30"},
	}

	for _, tt := range tests {
		got := domain.MustParseDate(tt.from).AddMonthsClamped(tt.n)
		assert.Equal(t, tt.want, got.String(), "%s %+d months", tt.from, tt.n)
	}
}

func TestDate_DaysIgnoreDST(t *testing.T) {
	// 2026-03-29 is the EU switch to summer time.
	d := domain.MustParseDate("2026-03-28")
	assert.Equal(t, "2026-03-29", d.AddDays(1).String())
	assert.Equal(t, "2026-04-04", d.AddDays(7).String())
}

func TestDate_JSON(t *testing.T) {
	type payload struct {
		Date  domain.Date  `json:"date"`
		Maybe *domain.Date `json:"maybe"`
	}

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2026-01-15","maybe":null}`), &p))
	assert.Equal(t, "2026-01-15", p.Date.String())
	assert.Nil(t, p.Maybe)

	out, err := json.Marshal(payload{Date: domain.NewDate(2026, time.February, 1)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2026-02-01","maybe":null}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"date":20260115}`), &p))
}

func TestDate_Scan(t *testing.T) {
	var d domain.Date

	require.NoError(t, d.Scan("2026-01-15"))
	assert.Equal(t, "2026-01-15", d.String())

	require.NoError(t, d.Scan(time.Date(2026, 2, 1, 22, 0, 0, 0, time.FixedZone("AFT", 16200))))
	assert.Equal(t, "2026-02-01", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	v, err := domain.MustParseDate("2026-03-01").Value()
	require.NoError(t, err)
	assert.Equal(t, "2026-03-01", v)
}
