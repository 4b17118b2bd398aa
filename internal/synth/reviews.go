// Package synth builds the fixture datasets. Both generators return a
// table.Table whose content is fully determined by their parameters, so
// repeated runs produce identical fixtures.
package synth

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/vitruves/fixgen/internal/table"
)

// ReviewSeed is the fixed seed for the review dataset.
const ReviewSeed int64 = 42

// ReviewRows is the fixed row count for the review dataset.
const ReviewRows = 1000

var reviewStart = time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)

var (
	reviewSources     = []string{"source_A", "source_B", "source_C"}
	reviewConditions  = []string{"condition_1", "condition_2", "condition_3"}
	reviewSexes       = []string{"M", "F"}
	reviewPatients    = []string{"type_A", "type_B"}
	reviewINNs        = []string{"INN_1", "INN_2", "INN_3"}
	reviewPredictions = []string{"positive", "negative", "neutral"}
)

// ReviewColumns is the column schema of the review dataset.
func ReviewColumns() []table.Column {
	return []table.Column{
		{Name: "source", Kind: table.String},
		{Name: "product", Kind: table.String},
		{Name: "overall_rating", Kind: table.Int},
		{Name: "condition", Kind: table.String},
		{Name: "comment", Kind: table.String},
		{Name: "sex", Kind: table.String},
		{Name: "duration", Kind: table.Int},
		{Name: "date", Kind: table.Date},
		{Name: "age", Kind: table.Int},
		{Name: "username", Kind: table.String},
		{Name: "patient_type", Kind: table.String},
		{Name: "INN", Kind: table.String},
		{Name: "prediction", Kind: table.String},
		{Name: "predicted_label", Kind: table.Int},
	}
}

// Reviews synthesizes n rows of the review dataset from the given seed.
// Columns are filled one at a time so the draw sequence, and therefore the
// whole table, is a pure function of (n, seed).
func Reviews(n int, seed int64) *table.Table {
	f := gofakeit.New(seed)

	sources := pickColumn(f, reviewSources, n)
	ratings := intColumn(f, 1, 5, n)
	conditions := pickColumn(f, reviewConditions, n)
	sexes := pickColumn(f, reviewSexes, n)
	durations := intColumn(f, 1, 365, n)
	ages := intColumn(f, 18, 80, n)
	patients := pickColumn(f, reviewPatients, n)
	inns := pickColumn(f, reviewINNs, n)
	predictions := pickColumn(f, reviewPredictions, n)
	labels := intColumn(f, 0, 2, n)

	tbl := table.New(ReviewColumns()...)
	for i := 0; i < n; i++ {
		tbl.MustAppendRow(
			sources[i],
			fmt.Sprintf("product_%d", i),
			ratings[i],
			conditions[i],
			fmt.Sprintf("comment_%d", i),
			sexes[i],
			durations[i],
			reviewStart.AddDate(0, 0, i),
			ages[i],
			fmt.Sprintf("user_%d", i),
			patients[i],
			inns[i],
			predictions[i],
			labels[i],
		)
	}
	return tbl
}

func pickColumn(f *gofakeit.Faker, choices []string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = f.RandomString(choices)
	}
	return out
}

func intColumn(f *gofakeit.Faker, lo, hi, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = f.Number(lo, hi)
	}
	return out
}
