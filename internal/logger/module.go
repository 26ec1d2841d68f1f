package logger

import "go.uber.org/fx"

// Module provides the shared slog.Logger to the fx container.
var Module = fx.Provide(New)
