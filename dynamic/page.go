package dynamic

// Callback produces the replacement text for one marker. It runs on the
// connection goroutine, so blocking here blocks the response.
type Callback func() string

// Anchor binds a marker string to the callback that replaces it.
type Anchor struct {
	Marker   string
	Callback Callback
}

// Page declares the anchors to substitute into the body served for URL.
// The URL is matched against the request target by exact string
// equality, query string and all.
type Page struct {
	URL     string
	Anchors []Anchor
}
