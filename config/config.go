package config

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	KeyImportPartialWarningRatio = "import.partial_warning_ratio"
	KeyImportHeadersSource       = "import.headers.source"
	KeyImportHeadersTarget       = "import.headers.target"
	KeyImportHeadersPronounce    = "import.headers.pronunciation"
	KeyImportHeadersExample      = "import.headers.example"
	KeyDrillKanaDirection        = "drill.kana_direction"
	KeyDrillVocabDirection       = "drill.vocab_direction"
	KeyDrillRandomOrder          = "drill.random_order"
	KeyDrillCount                = "drill.count"
	KeyOutputFormat              = "output.format"
	KeyOutputPageWidth           = "output.page_width"
	KeyOutputAnswers             = "output.answers"
	KeyVocabFillReadings         = "vocab.fill_readings"

	EnvPrefix = "KANADRILL"
)

var (
	DefaultSourceHeaders        = []string{"日语", "日本語", "japanese", "jp", "日文", "単語"}
	DefaultTargetHeaders        = []string{"中文", "chinese", "cn", "translation", "翻译", "意味"}
	DefaultPronunciationHeaders = []string{"发音", "読み", "reading", "pronunciation", "假名", "kana"}
	DefaultExampleHeaders       = []string{"例句", "例文", "example"}
)

type Config struct {
	Import ImportConfig `mapstructure:"import"`
	Drill  DrillConfig  `mapstructure:"drill"`
	Output OutputConfig `mapstructure:"output"`
	Vocab  VocabConfig  `mapstructure:"vocab"`
}

type ImportConfig struct {
	// PartialWarningRatio of half-filled rows above which an advisory is
	// reported. Zero disables the advisory.
	PartialWarningRatio float64       `mapstructure:"partial_warning_ratio" validate:"gte=0,lte=1"`
	Headers             HeadersConfig `mapstructure:"headers"`
}

type HeadersConfig struct {
	Source        []string `mapstructure:"source" validate:"required,min=1,dive,required"`
	Target        []string `mapstructure:"target" validate:"required,min=1,dive,required"`
	Pronunciation []string `mapstructure:"pronunciation" validate:"dive,required"`
	Example       []string `mapstructure:"example" validate:"dive,required"`
}

type DrillConfig struct {
	KanaDirection  string `mapstructure:"kana_direction" validate:"oneof=romaji-to-hiragana romaji-to-katakana hiragana-to-romaji katakana-to-romaji"`
	VocabDirection string `mapstructure:"vocab_direction" validate:"oneof=jp-to-cn cn-to-jp"`
	RandomOrder    bool   `mapstructure:"random_order"`
	Count          int    `mapstructure:"count" validate:"gte=0"`
}

type OutputConfig struct {
	Format    string `mapstructure:"format" validate:"oneof=html excel csv"`
	PageWidth string `mapstructure:"page_width" validate:"oneof=3in a4"`
	Answers   bool   `mapstructure:"answers"`
}

type VocabConfig struct {
	FillReadings bool `mapstructure:"fill_readings"`
}

// SetDefaults sets default values if not provided
func SetDefaults() {
	setDefaults(viper.GetViper())
}

// LoadAndValidate loads config from Viper and validates it
func LoadAndValidate() (*Config, error) {
	return loadAndValidateFromViper(viper.GetViper())
}

// Default returns the validated built-in configuration.
func Default() Config {
	local := viper.New()
	setDefaults(local)
	cfg, err := loadAndValidateFromViper(local)
	if err != nil {
		panic(fmt.Sprintf("built-in config is invalid: %v", err))
	}
	return *cfg
}

// ValidateYAMLContent validates configuration from raw YAML content.
func ValidateYAMLContent(content []byte) (*Config, error) {
	local := viper.New()
	setDefaults(local)
	local.SetConfigType("yaml")
	if err := local.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("read config content: %w", err)
	}
	return loadAndValidateFromViper(local)
}

// ExampleYAML returns the default configuration template.
func ExampleYAML() string {
	return `# kanadrill configuration
import:
  # Share of half-filled rows (0..1) above which an import prints an advisory; 0 disables it.
  partial_warning_ratio: 0
  headers:
    source: ["日语", "日本語", "japanese", "jp", "日文", "単語"]
    target: ["中文", "chinese", "cn", "translation", "翻译", "意味"]
    pronunciation: ["发音", "読み", "reading", "pronunciation", "假名", "kana"]
    example: ["例句", "例文", "example"]

drill:
  kana_direction: "romaji-to-hiragana"
  vocab_direction: "jp-to-cn"
  random_order: true
  count: 10

output:
  format: "html"
  page_width: "3in"
  answers: true

vocab:
  fill_readings: false
`
}

func loadAndValidateFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	normalize(&cfg)

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validateHeaders(cfg.Import.Headers); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyImportPartialWarningRatio, 0.0)
	v.SetDefault(KeyImportHeadersSource, DefaultSourceHeaders)
	v.SetDefault(KeyImportHeadersTarget, DefaultTargetHeaders)
	v.SetDefault(KeyImportHeadersPronounce, DefaultPronunciationHeaders)
	v.SetDefault(KeyImportHeadersExample, DefaultExampleHeaders)
	v.SetDefault(KeyDrillKanaDirection, "romaji-to-hiragana")
	v.SetDefault(KeyDrillVocabDirection, "jp-to-cn")
	v.SetDefault(KeyDrillRandomOrder, true)
	v.SetDefault(KeyDrillCount, 10)
	v.SetDefault(KeyOutputFormat, "html")
	v.SetDefault(KeyOutputPageWidth, "3in")
	v.SetDefault(KeyOutputAnswers, true)
	v.SetDefault(KeyVocabFillReadings, false)
}

func normalize(cfg *Config) {
	cfg.Drill.KanaDirection = strings.ToLower(strings.TrimSpace(cfg.Drill.KanaDirection))
	cfg.Drill.VocabDirection = strings.ToLower(strings.TrimSpace(cfg.Drill.VocabDirection))
	cfg.Output.Format = strings.ToLower(strings.TrimSpace(cfg.Output.Format))
	cfg.Output.PageWidth = strings.ToLower(strings.TrimSpace(cfg.Output.PageWidth))
}

// validateHeaders rejects a synonym that is listed for more than one field,
// since header mapping would then depend on field order alone.
func validateHeaders(headers HeadersConfig) error {
	groups := []struct {
		field    string
		synonyms []string
	}{
		{field: "source", synonyms: headers.Source},
		{field: "target", synonyms: headers.Target},
		{field: "pronunciation", synonyms: headers.Pronunciation},
		{field: "example", synonyms: headers.Example},
	}

	owner := make(map[string]string)
	for _, group := range groups {
		for i, synonym := range group.synonyms {
			key := strings.ToLower(strings.TrimSpace(synonym))
			if key == "" {
				return fmt.Errorf("validation failed: import.headers.%s[%d] is empty", group.field, i)
			}
			if previous, exists := owner[key]; exists && previous != group.field {
				return fmt.Errorf(
					"validation failed: header synonym %q is listed for both %s and %s",
					synonym,
					previous,
					group.field,
				)
			}
			owner[key] = group.field
		}
	}
	return nil
}
