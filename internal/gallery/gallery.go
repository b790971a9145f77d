// Package gallery models the image lightbox: an index over a fixed image
// list with wraparound navigation.
package gallery

// Gallery is the media set of a shop.
type Gallery struct {
	Images []string `json:"images"`
	Videos []string `json:"videos,omitempty"`
}

// Lightbox is the open/closed browsing state over a gallery.
type Lightbox struct {
	images []string
	index  int
	open   bool
}

// NewLightbox creates a closed lightbox over the given images.
func NewLightbox(images []string) *Lightbox {
	return &Lightbox{images: images}
}

// Open shows the image at index. Out-of-range indexes clamp to the first
// image; an empty gallery cannot open.
func (l *Lightbox) Open(index int) {
	if len(l.images) == 0 {
		return
	}
	if index < 0 || index >= len(l.images) {
		index = 0
	}
	l.index = index
	l.open = true
}

// Close hides the lightbox, keeping the index.
func (l *Lightbox) Close() {
	l.open = false
}

// IsOpen reports whether the lightbox is shown.
func (l *Lightbox) IsOpen() bool {
	return l.open
}

// Index returns the current position.
func (l *Lightbox) Index() int {
	return l.index
}

// Current returns the shown image, or "" when the gallery is empty.
func (l *Lightbox) Current() string {
	if len(l.images) == 0 {
		return ""
	}
	return l.images[l.index]
}

// Next advances with wraparound from the last image to the first.
func (l *Lightbox) Next() {
	if len(l.images) == 0 {
		return
	}
	if l.index == len(l.images)-1 {
		l.index = 0
		return
	}
	l.index++
}

// Prev steps back with wraparound from the first image to the last.
func (l *Lightbox) Prev() {
	if len(l.images) == 0 {
		return
	}
	if l.index == 0 {
		l.index = len(l.images) - 1
		return
	}
	l.index--
}
