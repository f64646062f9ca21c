package reader

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"github.com/emersion/go-vcard"

	"blist_converter/internal/contacts"
	"blist_converter/platform/apperr"
	"blist_converter/platform/sanitize"
)

// VCardReader reads vCard 2.1/3.0/4.0 streams.
type VCardReader struct{}

// NewVCardReader creates a VCardReader.
func NewVCardReader() *VCardReader {
	return &VCardReader{}
}

// Read decodes every card in r. Cards without an FN property are skipped.
// Non-blank input that contains no card at all is rejected.
func (vr *VCardReader) Read(r io.Reader) ([]contacts.RawContact, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindBadInput, "failed to read vCard input", err).WithOp("reader.VCard")
	}

	dec := vcard.NewDecoder(strings.NewReader(expandBareParams(string(raw))))
	records := make([]contacts.RawContact, 0)
	decoded := 0

	for {
		card, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, apperr.Wrap(apperr.KindBadInput, "failed to decode vCard", err).WithOp("reader.VCard")
		}
		decoded++

		fn := card.Get(vcard.FieldFormattedName)
		if fn == nil {
			continue
		}

		records = append(records, contacts.RawContact{
			Name:       sanitize.Text(fn.Value),
			Categories: cardCategories(card),
			Numbers:    cardNumbers(card),
		})
	}

	if decoded == 0 && len(bytes.TrimSpace(raw)) > 0 {
		return nil, apperr.BadInput("input contains no vCard (wrong file type?)").WithOp("reader.VCard")
	}

	return records, nil
}

func cardCategories(card vcard.Card) []string {
	var categories []string
	for _, field := range card[vcard.FieldCategories] {
		for _, c := range strings.Split(field.Value, ",") {
			categories = append(categories, sanitize.Text(c))
		}
	}
	return categories
}

func cardNumbers(card vcard.Card) []contacts.RawNumber {
	fields := card[vcard.FieldTelephone]
	numbers := make([]contacts.RawNumber, 0, len(fields))
	for _, field := range fields {
		value := strings.TrimSpace(field.Value)
		if len(value) > 4 && strings.EqualFold(value[:4], "tel:") {
			value = value[4:]
		}
		if value == "" {
			continue
		}
		numbers = append(numbers, contacts.RawNumber{
			Value:  value,
			Params: cardParams(field.Params),
		})
	}
	return numbers
}

// cardParams copies vCard parameters, splitting comma lists.
func cardParams(in vcard.Params) contacts.Params {
	out := contacts.Params{}
	for name, values := range in {
		for _, v := range values {
			for _, part := range strings.Split(v, ",") {
				if part = strings.TrimSpace(part); part != "" {
					out.Add(name, part)
				}
			}
		}
	}
	return out
}

// vCard 2.1 encodings that may appear as bare parameters.
var bareEncodings = map[string]bool{
	"QUOTED-PRINTABLE": true,
	"BASE64":           true,
	"8BIT":             true,
	"7BIT":             true,
}

// expandBareParams rewrites vCard 2.1 bare parameters into named ones, so
// TEL;CELL;PREF:... becomes TEL;TYPE=CELL;TYPE=PREF:... and a bare encoding
// becomes ENCODING=.... Folded lines and quoted-printable soft line breaks
// are passed through untouched.
func expandBareParams(in string) string {
	lines := strings.SplitAfter(in, "\n")
	var out strings.Builder
	out.Grow(len(in))

	softBreak := false
	for _, line := range lines {
		if softBreak || strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t") {
			softBreak = softBreak && strings.HasSuffix(strings.TrimRight(line, "\r\n"), "=")
			out.WriteString(line)
			continue
		}

		colon := indexUnquoted(line, ':')
		if colon < 0 {
			out.WriteString(line)
			continue
		}

		segments := splitUnquoted(line[:colon], ';')
		quotedPrintable := false
		for i := 1; i < len(segments); i++ {
			seg := strings.TrimSpace(segments[i])
			if strings.Contains(seg, "=") {
				if strings.EqualFold(seg, "ENCODING=QUOTED-PRINTABLE") {
					quotedPrintable = true
				}
				continue
			}
			if bareEncodings[strings.ToUpper(seg)] {
				quotedPrintable = quotedPrintable || strings.EqualFold(seg, "QUOTED-PRINTABLE")
				segments[i] = "ENCODING=" + seg
			} else if seg != "" {
				segments[i] = "TYPE=" + seg
			}
		}

		out.WriteString(strings.Join(segments, ";"))
		out.WriteString(line[colon:])
		softBreak = quotedPrintable && strings.HasSuffix(strings.TrimRight(line, "\r\n"), "=")
	}

	return out.String()
}

func indexUnquoted(s string, sep byte) int {
	quoted := false
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"':
			quoted = !quoted
		case sep:
			if !quoted {
				return i
			}
		}
	}
	return -1
}

func splitUnquoted(s string, sep byte) []string {
	var parts []string
	for {
		i := indexUnquoted(s, sep)
		if i < 0 {
			return append(parts, s)
		}
		parts = append(parts, s[:i])
		s = s[i+1:]
	}
}
