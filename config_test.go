package yuv

import (
	"testing"

	"github.com/kevmo314/go-yuv/pkg/engine"
	"github.com/kevmo314/go-yuv/pkg/formats"
)

func TestEngineFromEnv(t *testing.T) {
	key := engine.Key{Op: engine.OpConvert, Src: formats.FormatNV12, Dst: formats.FormatI420}
	for _, v := range []string{"", "soft", "libyuv", "bogus"} {
		t.Setenv("YUV_ENGINE", v)
		e := engineFromEnv()
		if e == nil {
			t.Fatalf("YUV_ENGINE=%q: engine is nil", v)
		}
		if !e.Supports(key) {
			t.Errorf("YUV_ENGINE=%q: Supports(%s) = false, want true", v, key)
		}
	}
}

func TestDefaultFilter(t *testing.T) {
	if f := DefaultFilter(); f < FilterNone || f > FilterBox {
		t.Errorf("DefaultFilter() = %s, want a known filter", f)
	}
}

func TestSetEngineNil(t *testing.T) {
	prev := DefaultEngine()
	t.Cleanup(func() { SetEngine(prev) })
	SetEngine(nil)
	if DefaultEngine() == nil {
		t.Error("DefaultEngine() = nil after SetEngine(nil)")
	}
}
