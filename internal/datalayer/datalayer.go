package datalayer

import (
	"context"
	"fmt"
	"log/slog"
)

// Mode names which backend serves traffic.
type Mode int

const (
	ModeRelational Mode = iota
	ModeSheets
)

func (m Mode) String() string {
	switch m {
	case ModeSheets:
		return "sheets"
	default:
		return "relational"
	}
}

// ParseMode reads a configured mode name.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "relational":
		return ModeRelational, nil
	case "sheets":
		return ModeSheets, nil
	default:
		return ModeRelational, fmt.Errorf("unknown data layer backend %q", s)
	}
}

// ModeInfo describes the facade's routing decision, for status endpoints.
type ModeInfo struct {
	Mode       string `json:"mode"`
	Configured string `json:"configured"`
	FellBack   bool   `json:"fell_back"`
}

// DataLayer routes every operation to the backend selected at construction.
// The selection is made exactly once; operations never branch on mode.
type DataLayer struct {
	Backend
	info ModeInfo
}

// New selects a backend and builds the facade. The configured mode wins
// when its backend is available; otherwise the facade falls back to the
// other backend and logs the degradation. With neither backend available
// construction fails outright, so a dead data layer is caught at startup
// rather than on first request.
func New(ctx context.Context, configured Mode, relational, sheets Backend, logger *slog.Logger) (*DataLayer, error) {
	primary, secondary := relational, sheets
	if configured == ModeSheets {
		primary, secondary = sheets, relational
	}

	if primary != nil && primary.Available(ctx) {
		return &DataLayer{
			Backend: primary,
			info:    ModeInfo{Mode: configured.String(), Configured: configured.String()},
		}, nil
	}

	if secondary != nil && secondary.Available(ctx) {
		fallback := ModeRelational
		if configured == ModeRelational {
			fallback = ModeSheets
		}
		logger.Warn("configured data layer backend unavailable, falling back",
			slog.String("configured", configured.String()),
			slog.String("fallback", fallback.String()))
		return &DataLayer{
			Backend: secondary,
			info:    ModeInfo{Mode: fallback.String(), Configured: configured.String(), FellBack: true},
		}, nil
	}

	return nil, fmt.Errorf("no data layer backend is available (configured: %s)", configured)
}

// ModeInfo reports which backend is serving and whether a fallback
// happened.
func (d *DataLayer) ModeInfo() ModeInfo {
	return d.info
}
