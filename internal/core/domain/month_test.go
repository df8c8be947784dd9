package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propertyops/property_billing_app/internal/core/domain"
)

func TestParseMonth(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    domain.Month
		wantErr bool
	}{
		{name: "year-month", input: "2024-02", want: domain.Month{Year: 2024, Month: time.February}},
		{name: "full date collapses to its month", input: "2024-02-17", want: domain.Month{Year: 2024, Month: time.February}},
		{name: "garbage", input: "february", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseMonth(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMonth_Bounds(t *testing.T) {
	feb := domain.Month{Year: 2024, Month: time.February}

	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), feb.Start())
	// 2024 is a leap year.
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), feb.End())
	assert.Equal(t, time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), feb.Date(10))
}

func TestMonth_NextPrevAcrossYearBoundary(t *testing.T) {
	dec := domain.Month{Year: 2023, Month: time.December}
	jan := domain.Month{Year: 2024, Month: time.January}

	assert.Equal(t, jan, dec.Next())
	assert.Equal(t, dec, jan.Prev())
	assert.True(t, dec.Before(jan))
	assert.True(t, jan.After(dec))
	assert.False(t, jan.Equal(dec))
}

func TestMonth_Contains(t *testing.T) {
	feb := domain.Month{Year: 2024, Month: time.February}

	assert.True(t, feb.Contains(time.Date(2024, 2, 29, 23, 59, 0, 0, time.UTC)))
	assert.False(t, feb.Contains(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, feb.Contains(time.Date(2023, 2, 15, 0, 0, 0, 0, time.UTC)))
}

func TestMonth_JSONRoundTrip(t *testing.T) {
	feb := domain.Month{Year: 2024, Month: time.February}

	data, err := feb.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"2024-02"`, string(data))

	var got domain.Month
	require.NoError(t, got.UnmarshalJSON(data))
	assert.Equal(t, feb, got)
}

func TestForecast_CarryForwardItems(t *testing.T) {
	f := domain.Forecast{
		LineItems: []domain.ForecastLineItem{
			{Name: "Water", Amount: decimal.NewFromInt(200), CarryForward: true},
			{Name: "Connection fee", Amount: decimal.NewFromInt(300)},
		},
	}

	items := f.CarryForwardItems()
	require.Len(t, items, 1)
	assert.Equal(t, "Water", items[0].Name)
}

func TestForecast_ItemsDueIn(t *testing.T) {
	march := domain.Month{Year: 2024, Month: time.March}
	f := domain.Forecast{
		LineItems: []domain.ForecastLineItem{
			{Name: "Water", DueDate: march.Date(10)},
			{Name: "Waste", DueDate: march.Next().Date(10)},
		},
	}

	items := f.ItemsDueIn(march)
	require.Len(t, items, 1)
	assert.Equal(t, "Water", items[0].Name)
}

func TestBalanceSheet_Balance(t *testing.T) {
	sheet := domain.TenantBalanceSheet{
		Owed: decimal.NewFromInt(2000),
		Paid: decimal.NewFromInt(2300),
	}

	assert.True(t, decimal.NewFromInt(-300).Equal(sheet.Balance()))
}
