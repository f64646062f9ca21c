// Package reader parses address book exports into contacts.RawContact records.
// Records without a name field are skipped here; everything else is left to
// the buddy list pipeline.
package reader

import (
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"blist_converter/internal/contacts"
	"blist_converter/platform/apperr"
)

// FileType identifies an input format.
type FileType string

const (
	FileTypeVCard FileType = "vcf"
	FileTypeCSV   FileType = "csv"
)

// RecordReader turns an input stream into raw contact records.
type RecordReader interface {
	Read(r io.Reader) ([]contacts.RawContact, error)
}

// Options selects and tunes a RecordReader.
type Options struct {
	FileType   FileType
	EscapeChar string
	Encoding   string
}

// DetectFileType returns explicit when set, otherwise derives the type from
// the path's extension. Unknown extensions and stdin fall back to vCard.
func DetectFileType(explicit, path string) FileType {
	if explicit != "" {
		return FileType(strings.ToLower(explicit))
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FileTypeCSV
	default:
		return FileTypeVCard
	}
}

// New returns the RecordReader for opts.FileType.
func New(opts Options) (RecordReader, error) {
	switch opts.FileType {
	case FileTypeCSV:
		return NewCSVReader(opts.EscapeChar), nil
	case FileTypeVCard, "":
		return NewVCardReader(), nil
	default:
		return nil, apperr.Validation("unsupported file type " + string(opts.FileType)).WithOp("reader.New")
	}
}

// Decode wraps r so that it yields UTF-8. label is a WHATWG encoding label
// such as "utf-8", "windows-1252" or "iso-8859-15"; empty means UTF-8.
// A leading byte order mark is honored and stripped.
func Decode(r io.Reader, label string) (io.Reader, error) {
	if label == "" {
		label = "utf-8"
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, "unknown input encoding "+label, err).WithOp("reader.Decode")
	}
	return transform.NewReader(r, unicode.BOMOverride(enc.NewDecoder())), nil
}

// ReadAll decodes r according to opts and parses it.
func ReadAll(r io.Reader, opts Options) ([]contacts.RawContact, error) {
	decoded, err := Decode(r, opts.Encoding)
	if err != nil {
		return nil, err
	}
	rr, err := New(opts)
	if err != nil {
		return nil, err
	}
	return rr.Read(decoded)
}
