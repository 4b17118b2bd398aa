package synth

import (
	"fmt"
	"math"
	"time"

	"github.com/vitruves/fixgen/internal/table"
)

// sampleCategories is cycled per row index.
var sampleCategories = []string{"A", "B", "C"}

// SampleColumns is the column schema of the parameterized sample dataset.
func SampleColumns() []table.Column {
	return []table.Column{
		{Name: "id", Kind: table.Int},
		{Name: "name", Kind: table.String},
		{Name: "value", Kind: table.Float},
		{Name: "date", Kind: table.Date},
		{Name: "flag", Kind: table.Bool},
		{Name: "category", Kind: table.String},
	}
}

// Samples synthesizes n rows named from prefix, dated backward from today.
func Samples(prefix string, n int) *table.Table {
	return SamplesAt(prefix, n, time.Now())
}

// SamplesAt is Samples with an explicit reference day. For row i in [1, n]:
// id i, name "<prefix>_item_<i>", value round(i*1.1, 2), date today minus
// i days, flag i%2==0, category cycling A, B, C.
func SamplesAt(prefix string, n int, today time.Time) *table.Table {
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	tbl := table.New(SampleColumns()...)
	for i := 1; i <= n; i++ {
		tbl.MustAppendRow(
			i,
			fmt.Sprintf("%s_item_%d", prefix, i),
			round2(float64(i)*1.1),
			day.AddDate(0, 0, -i),
			i%2 == 0,
			sampleCategories[(i-1)%len(sampleCategories)],
		)
	}
	return tbl
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
