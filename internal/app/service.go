// Package app contains the application services behind the HTTP handlers.
// Services validate input, call into the domain and reach files and remote
// calculators only through ports.
package app

import (
	"log/slog"
	"math"

	"github.com/jsamuelsen/exercises-service/internal/domain"
)

func defaultLogger(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.Default()
	}
	return l
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// finite reports whether every coefficient of q is a finite number.
func finite(q domain.Quaternion) bool {
	a, b, c, d := q.Coefficients()
	return isFinite(a) && isFinite(b) && isFinite(c) && isFinite(d)
}
