// Package converter runs one conversion: read an address book export, build
// the buddy list and render it to the output.
package converter

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"blist_converter/internal/buddylist"
	"blist_converter/internal/contacts"
	"blist_converter/internal/reader"
	"blist_converter/internal/render"
	"blist_converter/platform/apperr"
	"blist_converter/platform/config"
	"blist_converter/platform/logger"
)

// Settings is everything a conversion run needs to know.
type Settings interface {
	config.PipelineConfig
	config.ReaderConfig
	config.RenderConfig
}

// Service converts contact exports into buddy list documents.
type Service struct {
	log    *logger.Logger
	stdin  io.Reader
	stdout io.Writer
}

// NewService creates a Service that falls back to stdin and stdout when no
// input or output file is configured.
func NewService(log *logger.Logger, stdin io.Reader, stdout io.Writer) *Service {
	return &Service{log: log, stdin: stdin, stdout: stdout}
}

// PipelineOptions maps configuration onto pipeline options.
func PipelineOptions(cfg config.PipelineConfig) buddylist.Options {
	return buddylist.Options{
		OwnNumber:         cfg.GetOwnNumber(),
		ExcludeCategories: cfg.GetExcludeCategories(),
		DefaultGroup:      cfg.GetDefaultGroup(),
		Region:            cfg.GetRegion(),
	}
}

// Run performs the conversion. The output file is only created once the
// input has been read and converted, so a failing run leaves it untouched.
func (s *Service) Run(cfg Settings) (buddylist.Stats, error) {
	renderer, err := render.New(cfg.GetTemplateFile(), render.DetectSyntax(cfg.GetTemplateSyntax(), cfg.GetTemplateFile()))
	if err != nil {
		s.log.FileError("load_template", cfg.GetTemplateFile(), err)
		return buddylist.Stats{}, err
	}

	records, err := s.readRecords(cfg)
	if err != nil {
		return buddylist.Stats{}, err
	}

	doc, stats := buddylist.Convert(records, PipelineOptions(cfg))

	if err := s.writeDocument(cfg.GetOutputFile(), renderer, doc); err != nil {
		return stats, err
	}

	s.log.ConversionSummary(
		slog.Int("contacts_read", stats.ContactsRead),
		slog.Int("contacts_accepted", stats.ContactsAccepted),
		slog.Int("dropped_empty_name", stats.DroppedEmptyName),
		slog.Int("dropped_excluded", stats.DroppedExcluded),
		slog.Int("dropped_no_numbers", stats.DroppedNoNumbers),
		slog.Int("numbers_kept", stats.NumbersKept),
		slog.Int("numbers_unparseable", stats.NumbersUnparseable),
		slog.Int("numbers_invalid", stats.NumbersInvalid),
		slog.Int("numbers_fixed_line", stats.NumbersFixedLine),
		slog.Int("numbers_duplicate", stats.NumbersDuplicate),
		slog.Int("groups", stats.Groups),
	)

	return stats, nil
}

func (s *Service) readRecords(cfg config.ReaderConfig) ([]contacts.RawContact, error) {
	path := cfg.GetInputFile()
	in := s.stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			s.log.FileError("open_input", path, err)
			if errors.Is(err, fs.ErrNotExist) {
				return nil, apperr.Wrap(apperr.KindNotFound, "input file not found", err).WithOp("converter.Run")
			}
			return nil, apperr.Wrap(apperr.KindInternal, "failed to open input file", err).WithOp("converter.Run")
		}
		defer f.Close()
		in = f
	}

	opts := reader.Options{
		FileType:   reader.DetectFileType(cfg.GetFileType(), path),
		EscapeChar: cfg.GetEscapeChar(),
		Encoding:   cfg.GetInputEncoding(),
	}
	s.log.Debug("reading contacts", "path", path, "file_type", opts.FileType, "encoding", opts.Encoding)

	return reader.ReadAll(in, opts)
}

func (s *Service) writeDocument(path string, renderer *render.Renderer, doc buddylist.Document) error {
	if path == "" {
		return renderer.Render(s.stdout, doc)
	}

	f, err := os.Create(path)
	if err != nil {
		s.log.FileError("create_output", path, err)
		return apperr.Wrap(apperr.KindInternal, "failed to create output file", err).WithOp("converter.Run")
	}

	if err := renderer.Render(f, doc); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		s.log.FileError("close_output", path, err)
		return apperr.Wrap(apperr.KindInternal, "failed to close output file", err).WithOp("converter.Run")
	}
	return nil
}
