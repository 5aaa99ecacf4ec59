// Package yuv manages the memory of planar and packed images and hands it to
// a conversion engine.
//
// A buffer is built by the factory of its format. Allocate places every plane
// in one native region that the buffer frees on Close; Wrap and WrapPlanes
// alias memory the caller keeps ownership of.
//
//	src, err := yuv.I420.Allocate(640, 480)
//	if err != nil {
//		return err
//	}
//	defer src.Close()
//	dst, err := yuv.ARGB.Allocate(640, 480)
//	if err != nil {
//		return err
//	}
//	defer dst.Close()
//	if err := src.ConvertTo(dst); err != nil {
//		return err
//	}
//
// Operations act on the crop rectangles of both buffers. Convert, Mirror and
// Rotate use the overlap of the two crops; Scale maps the whole source crop
// onto the whole destination crop.
//
// The default engine is the pure Go engine in pkg/engine/soft. Setting
// YUV_ENGINE=libyuv selects the libyuv binding when the module was built with
// -tags libyuv.
package yuv
