package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveFields lists attribute keys whose values are always redacted.
// Storage settings are logged at startup, so the DSN is included.
var SensitiveFields = []string{
	"dsn",
	"password",
	"secret",
	"token",
}

// urlCredentialPattern matches "scheme://user:password@" prefixes such as
// postgres connection URLs.
var urlCredentialPattern = regexp.MustCompile(`(?i)[a-z][a-z0-9+.\-]*://[^:/@\s]+:[^@\s]+@`)

// mysqlCredentialPattern matches go-sql-driver style "user:password@tcp(" DSNs.
var mysqlCredentialPattern = regexp.MustCompile(`[^:/@\s]+:[^@\s]+@(tcp|unix)\(`)

// keyValuePasswordPattern matches libpq keyword DSNs ("password=...").
var keyValuePasswordPattern = regexp.MustCompile(`(?i)\bpassword\s*=\s*\S+`)

// newRedactAttr returns a masq-powered ReplaceAttr function for use in
// slog.HandlerOptions. It redacts by field name for known sensitive fields
// and by regex for connection strings that reach other attributes, for
// example inside a driver error message.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(SensitiveFields)+4)

	for _, name := range SensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}

	opts = append(opts,
		masq.WithFieldPrefix("secret_"),
		masq.WithRegex(urlCredentialPattern),
		masq.WithRegex(mysqlCredentialPattern),
		masq.WithRegex(keyValuePasswordPattern),
	)

	return masq.New(opts...)
}
