package conf

import (
	"errors"
	"fmt"
	"github.com/1f349/kbflags/locale"
	"github.com/spf13/afero"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
	"strings"
	"time"
)

var ErrInvalidConf = errors.New("invalid config")

const (
	DefaultListen   = ":8080"
	DefaultCacheTtl = time.Hour
)

type Conf struct {
	Listen string `yaml:"listen"`
	// DisplayLanguage is the language used for labels, empty labels every
	// locale in its own language.
	DisplayLanguage string `yaml:"displayLanguage"`
	// Locales limits the listed locales, empty means all of them.
	Locales  []locale.Locale `yaml:"locales"`
	CacheTtl time.Duration   `yaml:"cacheTtl"`
	Compare  Compare         `yaml:"compare"`
}

type Compare struct {
	Print         bool   `yaml:"print"`
	MinConfidence string `yaml:"minConfidence"`
}

var confidences = map[string]language.Confidence{
	"no":    language.No,
	"low":   language.Low,
	"high":  language.High,
	"exact": language.Exact,
}

func Default() Conf {
	return Conf{
		Listen:   DefaultListen,
		CacheTtl: DefaultCacheTtl,
		Compare:  Compare{MinConfidence: "low"},
	}
}

// Load reads a yaml config file, missing values are filled from Default.
func Load(fs afero.Fs, path string) (Conf, error) {
	raw, err := afero.ReadFile(fs, path)
	if err != nil {
		return Conf{}, fmt.Errorf("read config: %w", err)
	}
	c := Default()
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return Conf{}, fmt.Errorf("%w: %w", ErrInvalidConf, err)
	}
	if c.Listen == "" {
		c.Listen = DefaultListen
	}
	if c.CacheTtl <= 0 {
		c.CacheTtl = DefaultCacheTtl
	}
	if c.Compare.MinConfidence == "" {
		c.Compare.MinConfidence = "low"
	}
	return c, c.Validate()
}

func (c Conf) Validate() error {
	if c.DisplayLanguage != "" {
		if _, err := language.Parse(c.DisplayLanguage); err != nil {
			return fmt.Errorf("%w: displayLanguage: %w", ErrInvalidConf, err)
		}
	}
	if _, ok := confidences[strings.ToLower(c.Compare.MinConfidence)]; !ok {
		return fmt.Errorf("%w: compare.minConfidence: unknown value '%s'", ErrInvalidConf, c.Compare.MinConfidence)
	}
	return nil
}

// DisplayTag returns the label language, the second value is false when
// locales are labelled in their own language.
func (c Conf) DisplayTag() (language.Tag, bool) {
	if c.DisplayLanguage == "" {
		return language.Und, false
	}
	t, err := language.Parse(c.DisplayLanguage)
	if err != nil {
		return language.Und, false
	}
	return t, true
}

func (c Conf) MinConfidence() language.Confidence {
	if v, ok := confidences[strings.ToLower(c.Compare.MinConfidence)]; ok {
		return v
	}
	return language.Low
}

// LocaleSet returns the configured locales or nil for all of them.
func (c Conf) LocaleSet() []locale.Locale {
	if len(c.Locales) == 0 {
		return nil
	}
	return c.Locales
}
