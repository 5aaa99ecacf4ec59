package formats

import (
	"encoding/binary"

	"github.com/google/uuid"
)

// mediaSubtypeBase is the base GUID shared by FourCC-derived UVC and Media
// Foundation video subtypes. The first four bytes hold the FourCC, little endian.
var mediaSubtypeBase = uuid.MustParse("00000000-0000-0010-8000-00AA00389B71")

// Known subtype GUIDs that UVC devices and Media Foundation report.
var (
	GUIDNV12 = uuid.MustParse("3231564E-0000-0010-8000-00AA00389B71")
	GUIDNV21 = uuid.MustParse("3132564E-0000-0010-8000-00AA00389B71")
	GUIDI420 = uuid.MustParse("30323449-0000-0010-8000-00AA00389B71")
	GUIDY800 = uuid.MustParse("30303859-0000-0010-8000-00AA00389B71")
	GUIDRGB3 = uuid.MustParse("00000014-0000-0010-8000-00AA00389B71") // D3DFMT_R8G8B8
	GUIDARGB = uuid.MustParse("00000015-0000-0010-8000-00AA00389B71") // D3DFMT_A8R8G8B8
)

var aliasGUIDs = map[uuid.UUID]Format{
	GUIDY800: FormatI400,
	GUIDRGB3: FormatRGB24,
	GUIDARGB: FormatARGB,
}

// GUIDFromFourCC builds the subtype GUID for a FourCC code.
func GUIDFromFourCC(fcc [4]byte) uuid.UUID {
	g := mediaSubtypeBase
	binary.BigEndian.PutUint32(g[0:4], binary.LittleEndian.Uint32(fcc[:]))
	return g
}

// GUID returns the subtype GUID of the format.
func (f Format) GUID() uuid.UUID {
	if !f.Valid() {
		return uuid.Nil
	}
	return GUIDFromFourCC(f.FourCC())
}

// FromGUID maps a subtype GUID reported by a capture device to a format.
func FromGUID(g uuid.UUID) (Format, bool) {
	if f, ok := aliasGUIDs[g]; ok {
		return f, true
	}
	var fcc [4]byte
	binary.LittleEndian.PutUint32(fcc[:], binary.BigEndian.Uint32(g[0:4]))
	if GUIDFromFourCC(fcc) != g {
		return FormatUnknown, false
	}
	return FromFourCC(fcc)
}
