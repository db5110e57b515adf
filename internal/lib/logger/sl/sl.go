package sl

import (
	"log/slog"
)

// Err — атрибут ошибки для slog.
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}
