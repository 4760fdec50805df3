package dashboard

import (
	"cmp"
	"maps"
	"slices"

	"github.com/shenikar/drone_analytics_dashboard/internal/models"
)

// Bucket - одна точка ряда графика
type Bucket struct {
	Key   string
	Count int
}

// TypeShare - доля типа нарушения в общем количестве
type TypeShare struct {
	Type    string
	Count   int
	Percent float64
}

func CountByDate(violations []models.Violation) map[string]int {
	counts := make(map[string]int)
	for _, v := range violations {
		counts[v.Date]++
	}
	return counts
}

func CountByType(violations []models.Violation) map[string]int {
	counts := make(map[string]int)
	for _, v := range violations {
		counts[v.Type]++
	}
	return counts
}

// DateSeries - ряд "нарушения по датам", даты по возрастанию
func DateSeries(violations []models.Violation) []Bucket {
	counts := CountByDate(violations)
	series := make([]Bucket, 0, len(counts))
	for _, date := range slices.Sorted(maps.Keys(counts)) {
		series = append(series, Bucket{Key: date, Count: counts[date]})
	}
	return series
}

// TypeBreakdown считает процент каждого типа от total.
// При total == 0 возвращается пустой список.
func TypeBreakdown(byType map[string]int, total int) []TypeShare {
	if total <= 0 {
		return []TypeShare{}
	}
	shares := make([]TypeShare, 0, len(byType))
	for t, count := range byType {
		shares = append(shares, TypeShare{
			Type:    t,
			Count:   count,
			Percent: float64(count) / float64(total) * 100,
		})
	}
	slices.SortFunc(shares, func(a, b TypeShare) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Type, b.Type)
	})
	return shares
}
