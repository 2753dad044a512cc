// SPDX-License-Identifier: MIT
// Source: original_source/src/dict.h (phrase vocabulary used to build a representative fixture)

// Package corpus generates synthetic MediaWiki-flavored text for exercising
// every HPZT transform feature at once in tests, without committing a real
// multi-megabyte fixture file to the repository.
package corpus

import "strings"

// article is one repeating unit: it contains dictionary phrases, long
// space/newline/digit/dash/equal runs, and ordinary prose, in roughly the
// proportions real wiki markup exhibits.
const article = `<page>
<title>Example Article</title>
<id>1234567890</id>
<revision>
<timestamp>2024-01-01T00:00:00Z</timestamp>
<contributor>
<username>example</username>
</contributor>
<text xml:space="preserve">
== Introduction ==
This is a short paragraph of plain prose, the kind of text that the
transform leaves completely untouched              aside from whatever
space runs happen to land in it.

==== Section ====
Some bullet-like content follows, with numbers: 1234567890123 and a
dash-delimited aside ----------- plus a header rule ====================.

{{cite web
|title=Example
|url=https://example.org/
|accessdate=2024-01-01
}}

[[Category:Examples]]
</text>
</revision>
</page>
`

// Generate returns synthetic text at least n bytes long, built by
// repeating article. The returned slice may be slightly longer than n to
// avoid truncating mid-tag.
func Generate(n int) []byte {
	if n <= 0 {
		return nil
	}

	var b strings.Builder

	for b.Len() < n {
		b.WriteString(article)
	}

	return []byte(b.String())
}
