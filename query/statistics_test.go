package query

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vegasq/querylab/dataset"
)

func TestCityStatistics(t *testing.T) {
	ds := &dataset.Dataset{Customers: []dataset.Customer{
		customer("A", "Berlin", "Germany", order("1997-01-01", "100"), order("1997-02-01", "200")),
		customer("B", "Madrid", "Spain"),
		customer("C", "Berlin", "Germany"),
		customer("D", "Paris", "France", order("1997-03-01", "50.50")),
	}}

	stats := CityStatistics(ds)

	require.Len(t, stats, 3)

	berlin := stats[0]
	assert.Equal(t, "Berlin", berlin.City)
	assert.Equal(t, 2, berlin.Customers)
	assert.Equal(t, 2, berlin.Orders)
	assert.True(t, berlin.HasOrders)
	assertDecimal(t, "300", berlin.Revenue)
	assertDecimal(t, "150", berlin.Profitability)
	assert.Equal(t, 1.0, berlin.Intensity)

	madrid := stats[1]
	assert.Equal(t, "Madrid", madrid.City)
	assert.Equal(t, 1, madrid.Customers)
	assert.Equal(t, 0, madrid.Orders)
	assert.False(t, madrid.HasOrders)
	assertDecimal(t, "0", madrid.Profitability)
	assert.Equal(t, 0.0, madrid.Intensity)

	paris := stats[2]
	assertDecimal(t, "50.50", paris.Profitability)
	assert.Equal(t, 1.0, paris.Intensity)
}

func TestCityStatistics_NonTerminatingMean(t *testing.T) {
	ds := &dataset.Dataset{Customers: []dataset.Customer{
		customer("A", "Oslo", "Norway", order("1997-01-01", "10"), order("1997-01-02", "10"), order("1997-01-03", "20")),
		customer("B", "Oslo", "Norway"),
	}}

	stats := CityStatistics(ds)

	require.Len(t, stats, 1)
	assert.True(t, strings.HasPrefix(stats[0].Profitability.String(), "13.3333"), stats[0].Profitability.String())
	assert.Equal(t, 1.5, stats[0].Intensity)
}

func TestCityStatistics_Sample(t *testing.T) {
	ds := loadSample(t)
	stats := CityStatistics(ds)

	byCity := make(map[string]CityStats)
	customers := 0
	for _, s := range stats {
		byCity[s.City] = s
		customers += s.Customers
	}
	assert.Equal(t, len(ds.Customers), customers)

	assert.False(t, byCity["Madrid"].HasOrders)
	assert.Equal(t, 2, byCity["London"].Customers)
	assert.Equal(t, 23, byCity["London"].Orders)
	assert.Equal(t, 11.5, byCity["London"].Intensity)
	assert.Equal(t, 2, byCity["Paris"].Customers)
	assert.Equal(t, 2.0, byCity["Paris"].Intensity)
}

func TestOrderVolume(t *testing.T) {
	ds := &dataset.Dataset{Customers: []dataset.Customer{
		customer("A", "Berlin", "Germany", order("1998-03-01", "1"), order("1997-01-10", "1")),
		customer("B", "Paris", "France", order("1997-03-05", "1"), order("1998-01-20", "1")),
		customer("C", "Madrid", "Spain"),
		customer("D", "Rome", "Italy", order("1997-03-30", "1")),
	}}

	report := OrderVolume(ds)

	assert.Equal(t, []MonthCount{
		{Month: time.January, Count: 2},
		{Month: time.March, Count: 3},
	}, report.ByMonth)

	assert.Equal(t, []YearCount{
		{Year: 1997, Count: 3},
		{Year: 1998, Count: 2},
	}, report.ByYear)

	assert.Equal(t, []YearMonths{
		{Year: 1997, Months: []MonthCount{{Month: time.January, Count: 1}, {Month: time.March, Count: 2}}},
		{Year: 1998, Months: []MonthCount{{Month: time.January, Count: 1}, {Month: time.March, Count: 1}}},
	}, report.ByYearMonth)
}

func TestOrderVolume_NoOrders(t *testing.T) {
	report := OrderVolume(&dataset.Dataset{Customers: []dataset.Customer{customer("A", "Rome", "Italy")}})

	assert.Empty(t, report.ByMonth)
	assert.Empty(t, report.ByYear)
	assert.Empty(t, report.ByYearMonth)
}

func TestOrderVolume_SampleTotals(t *testing.T) {
	ds := loadSample(t)
	report := OrderVolume(ds)

	sum := func(counts []MonthCount) int {
		n := 0
		for _, c := range counts {
			n += c.Count
		}
		return n
	}

	assert.Equal(t, ds.OrderCount(), sum(report.ByMonth))

	yearTotal := 0
	for i, y := range report.ByYear {
		yearTotal += y.Count
		assert.Equal(t, y.Year, report.ByYearMonth[i].Year)
		assert.Equal(t, y.Count, sum(report.ByYearMonth[i].Months))
	}
	assert.Equal(t, ds.OrderCount(), yearTotal)
	assert.Equal(t, []YearCount{{1996, 11}, {1997, 29}, {1998, 17}}, report.ByYear)
}

func TestIncompleteContacts(t *testing.T) {
	ds := &dataset.Dataset{Customers: []dataset.Customer{
		{ID: "A", PostalCode: "12209", Phone: "030-0074321"},
		{ID: "B", PostalCode: "WA1 1DP", Phone: "(171) 555-7788"},
		{ID: "C", PostalCode: "97403", Region: "OR", Phone: "(503) 555-7555"},
		{ID: "D", Region: "OR"},
		{ID: "E", PostalCode: `\d`, Region: "BC", Phone: "(604) 555-4729"},
	}}

	gaps := IncompleteContacts(ds)

	require.Len(t, gaps, 4)
	assert.Equal(t, ContactGap{
		CustomerID: "A",
		PostalCode: "12209",
		Phone:      "030-0074321",
		Reasons:    []GapReason{GapRegionMissing, GapPhoneWithoutOperatorCode},
	}, gaps[0])
	assert.Equal(t, "B", gaps[1].CustomerID)
	assert.Equal(t, []GapReason{GapPostalCodeNonNumeric, GapRegionMissing}, gaps[1].Reasons)
	assert.Equal(t, "D", gaps[2].CustomerID)
	assert.Equal(t, []GapReason{GapPhoneWithoutOperatorCode}, gaps[2].Reasons)
	assert.Equal(t, "E", gaps[3].CustomerID)
	assert.Equal(t, []GapReason{GapPostalCodeNonNumeric}, gaps[3].Reasons)
}
