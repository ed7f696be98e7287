package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDateRange(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		preset        string
		startStr      string
		endStr        string
		expectedStart time.Time
		expectedEnd   time.Time
		wantErr       bool
	}{
		{
			name:          "Preset de 7 dias",
			preset:        DatePresetLast7Days,
			expectedStart: now.AddDate(0, 0, -7),
			expectedEnd:   now,
		},
		{
			name:          "Preset de 30 dias",
			preset:        DatePresetLast30Days,
			expectedStart: now.AddDate(0, 0, -30),
			expectedEnd:   now,
		},
		{
			name:          "Sem preset e sem datas cai nos últimos 30 dias",
			expectedStart: now.AddDate(0, 0, -30),
			expectedEnd:   now,
		},
		{
			name:          "Datas explícitas",
			startStr:      "2026-08-01",
			endStr:        "2026-08-15",
			expectedStart: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:          "Só a data inicial cai nos últimos 30 dias",
			startStr:      "2026-08-01",
			expectedStart: now.AddDate(0, 0, -30),
			expectedEnd:   now,
		},
		{
			name:    "Preset desconhecido",
			preset:  "last_90d",
			wantErr: true,
		},
		{
			name:     "Data final anterior à inicial",
			startStr: "2026-08-15",
			endStr:   "2026-08-01",
			wantErr:  true,
		},
		{
			name:     "Data inicial malformada",
			startStr: "01/08/2026",
			endStr:   "2026-08-15",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := ResolveDateRange(tt.preset, tt.startStr, tt.endStr, now)

			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, start)
				assert.Nil(t, end)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, start)
			require.NotNil(t, end)
			assert.True(t, start.Equal(tt.expectedStart), "start: esperado %s, obtido %s", tt.expectedStart, start)
			assert.True(t, end.Equal(tt.expectedEnd), "end: esperado %s, obtido %s", tt.expectedEnd, end)
		})
	}
}

func TestResolveDateRange_ClampsLongRange(t *testing.T) {
	now := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)

	// Intervalo de mais de 37 meses recua a data inicial até o limite
	start, end, err := ResolveDateRange("", "2020-01-01", "2026-08-01", now)

	require.NoError(t, err)
	assert.True(t, end.Equal(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, start.Equal(end.AddDate(0, 0, -maxRangeDays)))
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2026-08-10")

	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC), *date)

	_, err = ParseDate("10-08-2026")
	assert.Error(t, err)
}
