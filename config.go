package yuv

import (
	"log/slog"
	"os"
	"strings"

	"github.com/kevmo314/go-yuv/pkg/engine"
	"github.com/kevmo314/go-yuv/pkg/engine/libyuv"
	"github.com/kevmo314/go-yuv/pkg/engine/soft"
)

// YUV_ENGINE selects the default engine: soft (default) or libyuv. libyuv
// falls back to soft for keys it does not cover, and entirely when the package
// was built without the libyuv tag.
func engineFromEnv() engine.Engine {
	name := strings.ToLower(strings.TrimSpace(os.Getenv("YUV_ENGINE")))
	switch name {
	case "", "soft", "go":
		return soft.New()
	case "libyuv":
		lib, err := libyuv.New()
		if err != nil {
			Logger().Warn("yuv: libyuv unavailable, using soft engine", slog.Any("err", err))
			return soft.New()
		}
		return engine.Chain{lib, soft.New()}
	default:
		Logger().Warn("yuv: unknown YUV_ENGINE, using soft engine", slog.String("value", name))
		return soft.New()
	}
}

// defaultFilter comes from YUV_SCALE_FILTER; empty or unknown means BOX.
var defaultFilter = func() FilterMode {
	v := strings.TrimSpace(os.Getenv("YUV_SCALE_FILTER"))
	if v == "" {
		return FilterBox
	}
	f, err := engine.ParseFilterMode(v)
	if err != nil {
		return FilterBox
	}
	return f
}()

// DefaultFilter returns the scale filter configured by YUV_SCALE_FILTER.
func DefaultFilter() FilterMode {
	return defaultFilter
}

func init() {
	defaultConverter.Store(NewConverter(engineFromEnv()))
}
