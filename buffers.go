package yuv

type luma struct{ *buffer }

func (b luma) PlaneY() *Plane { return b.planes[0] }

// SetValue fills the crop rectangle of the Y plane with v.
func (b luma) SetValue(v byte) error {
	return b.PlaneY().SetValue(b.crop, v)
}

type planar struct{ *buffer }

func (b planar) PlaneY() *Plane { return b.planes[0] }
func (b planar) PlaneU() *Plane { return b.planes[1] }
func (b planar) PlaneV() *Plane { return b.planes[2] }

type semiPlanar struct{ *buffer }

func (b semiPlanar) PlaneY() *Plane      { return b.planes[0] }
func (b semiPlanar) PlaneChroma() *Plane { return b.planes[1] }

type packed struct{ *buffer }

func (b packed) Plane() *Plane { return b.planes[0] }

// I400Buffer is 8-bit grey with BT.601 limited range luma.
type I400Buffer struct{ luma }

// J400Buffer is 8-bit grey with full range luma.
type J400Buffer struct{ luma }

// I420Buffer is BT.601 YUV 4:2:0, 12 bits per pixel.
type I420Buffer struct{ planar }

// J420Buffer is full range (JPEG) YUV 4:2:0.
type J420Buffer struct{ planar }

// I422Buffer is BT.601 YUV 4:2:2, 16 bits per pixel.
type I422Buffer struct{ planar }

type J422Buffer struct{ planar }

// I444Buffer is BT.601 YUV 4:4:4, 24 bits per pixel.
type I444Buffer struct{ planar }

type J444Buffer struct{ planar }

// I420ABuffer is I420 with a full resolution alpha plane.
type I420ABuffer struct{ planar }

func (b *I420ABuffer) PlaneA() *Plane { return b.planes[3] }

// SetAlpha fills the crop rectangle of the alpha plane with v.
func (b *I420ABuffer) SetAlpha(v byte) error {
	return b.PlaneA().SetValue(b.crop, v)
}

// NV12Buffer is YUV 4:2:0 with interleaved U/V samples in the second plane.
type NV12Buffer struct{ semiPlanar }

func (b *NV12Buffer) PlaneUV() *Plane { return b.planes[1] }

// NV21Buffer is YUV 4:2:0 with interleaved V/U samples in the second plane.
type NV21Buffer struct{ semiPlanar }

func (b *NV21Buffer) PlaneVU() *Plane { return b.planes[1] }

// ARGBBuffer is 32-bit little endian ARGB, stored B, G, R, A in memory.
type ARGBBuffer struct{ packed }

// ABGRBuffer is 32-bit little endian ABGR, stored R, G, B, A in memory.
type ABGRBuffer struct{ packed }

// RGBABuffer is 32-bit little endian RGBA, stored A, B, G, R in memory.
type RGBABuffer struct{ packed }

// BGRABuffer is 32-bit little endian BGRA, stored A, R, G, B in memory.
type BGRABuffer struct{ packed }

// RGB24Buffer is 24-bit RGB stored B, G, R in memory.
type RGB24Buffer struct{ packed }

// RAWBuffer is 24-bit RGB stored R, G, B in memory.
type RAWBuffer struct{ packed }

// RGB565Buffer is 16-bit little endian RGB 5:6:5.
type RGB565Buffer struct{ packed }

// YUV24Buffer is packed 24-bit YUV 4:4:4, stored V, U, Y in memory.
type YUV24Buffer struct{ packed }

var (
	_ LumaBuffer       = (*I400Buffer)(nil)
	_ LumaBuffer       = (*J400Buffer)(nil)
	_ PlanarBuffer     = (*I420Buffer)(nil)
	_ PlanarBuffer     = (*J420Buffer)(nil)
	_ PlanarBuffer     = (*I422Buffer)(nil)
	_ PlanarBuffer     = (*J422Buffer)(nil)
	_ PlanarBuffer     = (*I444Buffer)(nil)
	_ PlanarBuffer     = (*J444Buffer)(nil)
	_ PlanarBuffer     = (*I420ABuffer)(nil)
	_ AlphaBuffer      = (*I420ABuffer)(nil)
	_ SemiPlanarBuffer = (*NV12Buffer)(nil)
	_ SemiPlanarBuffer = (*NV21Buffer)(nil)
	_ PackedBuffer     = (*ARGBBuffer)(nil)
	_ PackedBuffer     = (*ABGRBuffer)(nil)
	_ PackedBuffer     = (*RGBABuffer)(nil)
	_ PackedBuffer     = (*BGRABuffer)(nil)
	_ PackedBuffer     = (*RGB24Buffer)(nil)
	_ PackedBuffer     = (*RAWBuffer)(nil)
	_ PackedBuffer     = (*RGB565Buffer)(nil)
	_ PackedBuffer     = (*YUV24Buffer)(nil)
)
