package csv_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/shapestone/csvsplit/pkg/csv"
)

func benchmarkInput(rows int) string {
	var sb strings.Builder
	sb.WriteString("id,name,comment\r\n")
	for i := 0; i < rows; i++ {
		fmt.Fprintf(&sb, "%d,name%d,\"a \"\"quoted\"\", multi\nline comment\"\r\n", i, i)
	}
	return sb.String()
}

func BenchmarkParseFromText(b *testing.B) {
	for _, rows := range []int{10, 1000} {
		input := benchmarkInput(rows)
		b.Run(fmt.Sprintf("rows=%d", rows), func(b *testing.B) {
			b.SetBytes(int64(len(input)))
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := csv.ParseFromText(input, csv.Comma); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkParseFieldsFromText(b *testing.B) {
	input := strings.Repeat("field,\"quoted, value\",", 100)
	b.SetBytes(int64(len(input)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := csv.ParseFieldsFromText(input, csv.Comma); err != nil {
			b.Fatal(err)
		}
	}
}
