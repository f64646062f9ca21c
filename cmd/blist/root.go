package main

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"blist_converter/internal/converter"
	"blist_converter/platform/config"
	"blist_converter/platform/logger"
	"blist_converter/platform/validator"
)

type flagValues struct {
	configFile        string
	ownNumber         string
	excludeCategories []string
	noCategory        string
	escapeChar        string
	countryCode       string
	fileType          string
	templateFile      string
	templateSyntax    string
	inputEncoding     string
}

func newRootCmd(stdin io.Reader, stdout io.Writer) *cobra.Command {
	var flags flagValues

	cmd := &cobra.Command{
		Use:   "blist [inputFile] [outputFile] [templateFile]",
		Short: "Convert a vCard or CSV contact export into a libpurple buddy list",
		Long: "Reads contacts from a vCard or CSV file (or stdin), keeps the ones with a valid\n" +
			"mobile number and writes a grouped buddy list through a template (to stdout\n" +
			"when no output file is given). Contact categories become buddy list groups.",
		Args:          cobra.MaximumNArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, &flags, args)
			if err != nil {
				return err
			}

			log := logger.New(cfg.Env).WithNewRunID()
			log.Debug("starting conversion", "input", cfg.InputFile, "output", cfg.OutputFile)

			_, err = converter.NewService(log, stdin, stdout).Run(cfg)
			return err
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.configFile, "config", "", "YAML file with configuration values")
	f.StringVarP(&flags.ownNumber, "own-number", "o", "0", "your own cellphone number in international format without leading zero, e.g. 43123456789")
	f.StringSliceVarP(&flags.excludeCategories, "exclude-categories", "x", []string{"Archiv"}, "contacts which have one of these categories set are ignored")
	f.StringVarP(&flags.noCategory, "no-category", "n", "others", "group name for contacts without a category")
	f.StringVarP(&flags.escapeChar, "escape-char", "e", `\`, "escape character used in the input CSV file")
	f.StringVarP(&flags.countryCode, "country-code", "c", "DE", "2-letter country code from which to interpret phone numbers")
	f.StringVarP(&flags.fileType, "file-type", "f", "", "type of the input file (vcf or csv); detected from the extension when empty")
	f.StringVarP(&flags.templateFile, "template", "t", "", "template file, Go text/template or mustache (.mustache/.template); the built-in blist.xml template when empty")
	f.StringVar(&flags.templateSyntax, "template-syntax", "", "template syntax (go or mustache); detected from the template extension when empty")
	f.StringVar(&flags.inputEncoding, "input-encoding", "utf-8", "character encoding of the input file, e.g. windows-1252")

	return cmd
}

// loadConfig builds the configuration: environment first, then the optional
// YAML file, then flags the user set explicitly, then positional arguments.
func loadConfig(cmd *cobra.Command, flags *flagValues, args []string) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if flags.configFile != "" {
		if err := cfg.MergeFile(flags.configFile); err != nil {
			return nil, err
		}
	}

	changed := cmd.Flags().Changed
	if changed("own-number") {
		cfg.OwnNumber = flags.ownNumber
	}
	if changed("exclude-categories") {
		cfg.ExcludeCategories = flags.excludeCategories
	}
	if changed("no-category") {
		cfg.DefaultGroup = flags.noCategory
	}
	if changed("escape-char") {
		cfg.EscapeChar = flags.escapeChar
	}
	if changed("country-code") {
		cfg.Region = flags.countryCode
	}
	if changed("file-type") {
		cfg.FileType = flags.fileType
	}
	if changed("template") {
		cfg.TemplateFile = flags.templateFile
	}
	if changed("template-syntax") {
		cfg.TemplateSyntax = strings.ToLower(flags.templateSyntax)
	}
	if changed("input-encoding") {
		cfg.InputEncoding = flags.inputEncoding
	}

	if len(args) > 0 {
		cfg.InputFile = args[0]
	}
	if len(args) > 1 {
		cfg.OutputFile = args[1]
	}
	if len(args) > 2 {
		cfg.TemplateFile = args[2]
	}

	if err := cfg.Validate(validator.New()); err != nil {
		return nil, err
	}
	return cfg, nil
}
