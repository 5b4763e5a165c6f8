package dynamic

import "bytes"

// Apply substitutes anchors into body, in registration order. A
// callback runs exactly once per anchor whose marker occurs in the
// body, and its result replaces every occurrence. Anchors whose marker
// is absent are skipped without invoking the callback. Earlier
// substitutions are visible to later anchors.
func Apply(body []byte, anchors []Anchor) []byte {
	for _, anchor := range anchors {
		marker := []byte(anchor.Marker)
		if !bytes.Contains(body, marker) {
			continue
		}

		replacement := anchor.Callback()
		body = bytes.ReplaceAll(body, marker, []byte(replacement))
	}

	return body
}
