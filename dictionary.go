// SPDX-License-Identifier: MIT
// Source: original_source/src/dict.h (phrase table), github.com/woozymasta/lzo (index-on-init shape)

package hpzt

import "hash/crc32"

// defaultPhrases is the canonical HPZT phrase dictionary: short markup
// fragments from the MediaWiki/Wikipedia export format the transform was
// designed against. Order is stable and defines each phrase's 1-based ID;
// entries are never removed or reordered without changing every archive's
// DICT token meaning.
var defaultPhrases = []string{
	"<page>", "</page>", "<title>", "</title>", "<id>", "</id>",
	"<revision>", "</revision>", "<timestamp>", "</timestamp>",
	"<contributor>", "</contributor>", "<username>", "</username>",
	"<minor/>", "<minor />", "<comment>", "</comment>",
	"<model>wikitext</model>", "<format>text/x-wiki</format>",
	"<ns>", "</ns>", "<siteinfo>", "</siteinfo>",
	"<sitename>", "</sitename>", "<base>", "</base>",
	"<generator>", "</generator>", "<case>", "</case>",
	"<namespaces>", "</namespaces>", "<namespace key=\"", "</namespace>",
	"<mediawiki", "</mediawiki>",
	"<text xml:space=\"preserve\">", "</text>", "<text ",
	"[[", "]]", "{{", "}}", "[[Category:", "[[File:", "[[Image:",
	"<ref>", "</ref>", "<ref", "<!--", "-->",
	"==", "===", "====", "{{cite", "{{citation", "|author", "|title",
	"|url", "|publisher", "|date", "|accessdate", "|work", "|pages",
	"|isbn", "|doi", "|issue", "|volume", "|journal", "|language",
	"|archiveurl", "|archivedate", "|quote", "|trans-title", "|location",
	"|ref", "|last", "|first",
	"|year", "|month", "|day", "|access-date", "|access-date=",
	"{{Infobox", "{{infobox", "<redirect", "#REDIRECT",
	"http://", "https://", "://", "en.wikipedia.org", ".wikipedia.org",
	"<ref name=\"", "\"/>", "\" />",
	"&amp;", "&lt;", "&gt;",
	"== References ==", "== External links ==", "== See also ==",
	"{{cite web", "{{cite journal", "{{cite book",
	"{{reflist", "{{Reflist",
	"{{DEFAULTSORT:", "{{Convert", "{{convert",
	"<br/>", "<br />",
}

// Dictionary is the canonical, immutable phrase table used by both the
// encoder's DICT matcher and the decoder's token expander. IDs are
// 1-based and assigned in declaration order (§4.A).
type Dictionary struct {
	phrases     []string
	heads       [256][]int // candidate IDs (0-based), sorted by descending phrase length
	maxLen      int
	fingerprint uint32
}

// NewDictionary builds a Dictionary from an ordered phrase list. It
// returns ErrDictTooLarge if len(phrases) > maxDictSize, and
// ErrDictEmptyPhrase if any phrase is empty or begins with a reserved byte.
func NewDictionary(phrases []string) (*Dictionary, error) {
	if len(phrases) > maxDictSize {
		return nil, ErrDictTooLarge
	}

	d := &Dictionary{phrases: append([]string(nil), phrases...)}

	for i, p := range d.phrases {
		if len(p) == 0 {
			return nil, ErrDictEmptyPhrase
		}

		first := p[0]
		if first == escapeByte || (first >= tokenSpaceRun && first <= tokenEqualRun) {
			return nil, ErrDictEmptyPhrase
		}

		d.heads[first] = append(d.heads[first], i)
		if len(p) > d.maxLen {
			d.maxLen = len(p)
		}
	}

	for c := range d.heads {
		ids := d.heads[c]
		for i := 1; i < len(ids); i++ {
			for j := i; j > 0 && len(d.phrases[ids[j-1]]) < len(d.phrases[ids[j]]); j-- {
				ids[j-1], ids[j] = ids[j], ids[j-1]
			}
		}
	}

	d.fingerprint = dictionaryFingerprint(d.phrases)

	return d, nil
}

// defaultDictionary is the package-level dictionary every Encoder and
// Decoder uses unless a caller supplies its own via NewEncoderWithDictionary
// or NewDecoderWithDictionary.
var defaultDictionary = mustNewDictionary(defaultPhrases)

func mustNewDictionary(phrases []string) *Dictionary {
	d, err := NewDictionary(phrases)
	if err != nil {
		panic(err)
	}

	return d
}

// dictionaryFingerprint computes the §4.A fingerprint: CRC32(IEEE) of each
// phrase followed by a single 0x00 separator, in order.
func dictionaryFingerprint(phrases []string) uint32 {
	h := crc32.NewIEEE()
	for _, p := range phrases {
		_, _ = h.Write([]byte(p))
		_, _ = h.Write([]byte{0x00})
	}

	return h.Sum32()
}

// DefaultDictionaryFingerprint returns the fingerprint of the package's
// built-in dictionary, for callers (e.g. an archive inspector) that need
// to compare against a header's recorded value without constructing a
// Decoder.
func DefaultDictionaryFingerprint() uint32 { return defaultDictionary.Fingerprint() }

// Len returns the number of phrases in the dictionary.
func (d *Dictionary) Len() int { return len(d.phrases) }

// MaxLen returns the length of the longest phrase, used by the encoder to
// size its cross-block look-ahead reserve.
func (d *Dictionary) MaxLen() int { return d.maxLen }

// Fingerprint returns the dictionary's 32-bit CRC fingerprint.
func (d *Dictionary) Fingerprint() uint32 { return d.fingerprint }

// Lookup returns the phrase for a 1-based dictionary ID, or false if id is
// out of range.
func (d *Dictionary) Lookup(id int) (string, bool) {
	if id < 1 || id > len(d.phrases) {
		return "", false
	}

	return d.phrases[id-1], true
}

// candidates returns the 0-based phrase indices beginning with first,
// longest phrase first.
func (d *Dictionary) candidates(first byte) []int { return d.heads[first] }
