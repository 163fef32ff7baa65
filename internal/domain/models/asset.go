package models

// AssetResult is the outcome of loading an optional decorative asset: either
// an encoded image or the reason it is unavailable. It never carries an error
// so a missing asset cannot abort rendering.
type AssetResult struct {
	Image       []byte
	ContentType string
	Width       int
	Height      int
	Warning     string

	// Detail is the underlying cause of Warning, for logs only.
	Detail string
}

func AssetOK(img []byte, contentType string, width, height int) AssetResult {
	return AssetResult{Image: img, ContentType: contentType, Width: width, Height: height}
}

func AssetWarning(reason, detail string) AssetResult {
	return AssetResult{Warning: reason, Detail: detail}
}

// OK reports whether the asset loaded.
func (a AssetResult) OK() bool {
	return a.Warning == "" && len(a.Image) > 0
}
