package checks

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

func init() {
	Register("ValEmail", func() Check { return Email{validate: validator.New()} })
	Register("ValUuid", func() Check { return UUID{} })
	Register("ValUrl", func() Check { return URL{} })
	Register("ValAlpha", func() Check { return Alpha{} })
	Register("ValAlphaNum", func() Check { return AlphaNum{} })
	Register("ValNumeric", func() Check { return Numeric{} })
	Register("ValRegex", func() Check { return Regex{} })
}

var (
	alphaRegex        = regexp.MustCompile(`^[a-zA-Z]+$`)
	alphanumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	numericRegex      = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)
)

// Email passes for string inputs holding a valid email address.
type Email struct {
	validate *validator.Validate
}

func (c Email) Run(_ string, input any, _ []any) bool {
	s, ok := input.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return false
	}
	return c.validate.Var(s, "required,email") == nil
}

// UUID passes for strings in the canonical 36 character UUID form.
type UUID struct{}

func (UUID) Run(_ string, input any, _ []any) bool {
	s := toString(input)

	// Fast rejection before parsing
	if len(s) != 36 {
		return false
	}
	if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return false
	}

	_, err := uuid.Parse(s)
	return err == nil
}

// URL passes for absolute URLs with a scheme and a host.
type URL struct{}

func (URL) Run(_ string, input any, _ []any) bool {
	s := toString(input)
	if strings.TrimSpace(s) == "" {
		return false
	}

	u, err := url.ParseRequestURI(s)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// Alpha passes for non-empty strings of ASCII letters.
type Alpha struct{}

func (Alpha) Run(_ string, input any, _ []any) bool {
	return alphaRegex.MatchString(toString(input))
}

// AlphaNum passes for non-empty strings of ASCII letters and digits.
type AlphaNum struct{}

func (AlphaNum) Run(_ string, input any, _ []any) bool {
	return alphanumericRegex.MatchString(toString(input))
}

// Numeric passes for numbers and for strings in decimal or exponent notation.
type Numeric struct{}

func (Numeric) Run(_ string, input any, _ []any) bool {
	switch v := input.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	case string:
		return numericRegex.MatchString(v)
	default:
		return false
	}
}

// Regex passes when the input matches the pattern given as first parameter.
// Delimited patterns such as "/^a+$/i" are accepted; the supported flags are
// i, m, s and U. Invalid patterns fail the check.
type Regex struct{}

func (Regex) Run(_ string, input any, params []any) bool {
	p, ok := firstParam(params)
	if !ok {
		return false
	}

	re, err := compilePattern(toString(p))
	if err != nil {
		return false
	}
	return re.MatchString(toString(input))
}

var closingDelimiters = map[byte]byte{
	'/': '/', '#': '#', '~': '~', '!': '!', '@': '@', '|': '|', '+': '+',
	'(': ')', '{': '}', '[': ']', '<': '>',
}

// compilePattern compiles a raw RE2 pattern or a delimited pattern with
// trailing flags.
func compilePattern(pattern string) (*regexp.Regexp, error) {
	if len(pattern) < 2 {
		return regexp.Compile(pattern)
	}

	closing, ok := closingDelimiters[pattern[0]]
	if !ok {
		return regexp.Compile(pattern)
	}
	end := strings.LastIndexByte(pattern, closing)
	if end <= 0 {
		return regexp.Compile(pattern)
	}

	var flags strings.Builder
	for _, f := range pattern[end+1:] {
		switch f {
		case 'i', 'm', 's', 'U':
			flags.WriteRune(f)
		}
	}

	body := pattern[1:end]
	if flags.Len() > 0 {
		body = "(?" + flags.String() + ")" + body
	}
	return regexp.Compile(body)
}
