// Package format renders agent replies as markdown. Every function is pure:
// it reads only its arguments and returns a string.
package format

import (
	"strings"

	"github.com/dustin/go-humanize"
)

// exampleAddress appears in usage examples.
const exampleAddress = "NiEtVMWVYgpXrWkRTMwRaMJtJ41gD3912N"

// exampleWIF is the sample key shown in wallet usage text. It is not funded.
const exampleWIF = "KxcgHRTc8SUcvwkG7V8HLoFrPHkUMskeV9nx5fvuTbsEU3z3kAS2"

func bullets(items []string) string {
	var b strings.Builder
	for i, it := range items {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("• ")
		b.WriteString(it)
	}
	return b.String()
}

func comma(n int64) string { return humanize.Comma(n) }
