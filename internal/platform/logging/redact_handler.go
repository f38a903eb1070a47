package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists the lowercase HTTP header names whose values never
// reach a log record. The request logging middleware consults it directly.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"x-api-key":     true,
	"cookie":        true,
}

// secretFields are attribute keys redacted wherever they appear. The sealed
// data file passphrase travels under "passphrase".
var secretFields = []string{"passphrase", "password", "secret", "token"}

var (
	bearerPattern     = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)
	inlineCredPattern = regexp.MustCompile(`(?i)(passphrase|password)\s*[:=]\s*\S+`)
)

// newRedactAttr builds the masq ReplaceAttr hook. Name, phone and category
// pass through untouched: add and remove records are the audit trail of the
// directory.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	var opts []masq.Option
	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range secretFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	opts = append(opts,
		masq.WithFieldPrefix("secret_"),
		masq.WithRegex(bearerPattern),
		masq.WithRegex(inlineCredPattern),
	)
	return masq.New(opts...)
}
