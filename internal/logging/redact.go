package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveFields are attribute keys whose values are always filtered
var SensitiveFields = []string{"phones", "phone_numbers", "numbers", "phone"}

// phoneRunPattern matches any digit run long enough to be a phone number
var phoneRunPattern = regexp.MustCompile(`[0-9]{10,15}`)

func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(SensitiveFields)+1)
	for _, name := range SensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	opts = append(opts, masq.WithRegex(phoneRunPattern))

	return masq.New(opts...)
}
