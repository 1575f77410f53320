package registry

import "log/slog"

// Option is a functional configuration type for the Hub.
type Option func(*Hub)

// WithLogger replaces the default logger used for presence transitions.
func WithLogger(log *slog.Logger) Option {
	return func(h *Hub) {
		if log != nil {
			h.log = log
		}
	}
}
