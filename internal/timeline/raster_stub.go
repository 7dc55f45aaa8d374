//go:build notimeline

package timeline

// Builds tagged notimeline ship without the raster backend; Render reports the
// capability as unavailable.
func newBackend() backend {
	return nil
}
