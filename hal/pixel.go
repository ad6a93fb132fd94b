package hal

// PutPixel writes one opaque pixel into fb's back buffer. Out-of-bounds
// coordinates are ignored.
func PutPixel(fb Framebuffer, x, y int, r, g, b uint8) {
	if fb == nil || fb.Format() != PixelFormatRGBA8888 {
		return
	}
	if x < 0 || y < 0 || x >= fb.Width() || y >= fb.Height() {
		return
	}
	buf := fb.Buffer()
	off := y*fb.StrideBytes() + x*4
	if off < 0 || off+3 >= len(buf) {
		return
	}
	buf[off] = r
	buf[off+1] = g
	buf[off+2] = b
	buf[off+3] = 0xFF
}

// PixelAt reads one pixel from fb's back buffer.
func PixelAt(fb Framebuffer, x, y int) (r, g, b, a uint8) {
	if fb == nil || x < 0 || y < 0 || x >= fb.Width() || y >= fb.Height() {
		return 0, 0, 0, 0
	}
	buf := fb.Buffer()
	off := y*fb.StrideBytes() + x*4
	if off < 0 || off+3 >= len(buf) {
		return 0, 0, 0, 0
	}
	return buf[off], buf[off+1], buf[off+2], buf[off+3]
}
