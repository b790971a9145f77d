package gallery

import "testing"

func images() []string {
	return []string{"/g/1.jpg", "/g/2.jpg", "/g/3.jpg"}
}

func TestLightboxOpenClose(t *testing.T) {
	l := NewLightbox(images())

	if l.IsOpen() {
		t.Error("new lightbox should be closed")
	}

	l.Open(1)
	if !l.IsOpen() {
		t.Error("Open() should open the lightbox")
	}
	if got := l.Current(); got != "/g/2.jpg" {
		t.Errorf("Current() = %q, want %q", got, "/g/2.jpg")
	}

	l.Close()
	if l.IsOpen() {
		t.Error("Close() should close the lightbox")
	}
	if got := l.Index(); got != 1 {
		t.Errorf("Index() after close = %d, want 1", got)
	}
}

func TestLightboxOpenOutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		index int
	}{
		{name: "negative", index: -1},
		{name: "pastEnd", index: 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLightbox(images())
			l.Open(tt.index)
			if got := l.Index(); got != 0 {
				t.Errorf("Index() = %d, want 0", got)
			}
		})
	}
}

func TestLightboxWraparound(t *testing.T) {
	l := NewLightbox(images())
	l.Open(0)

	l.Prev()
	if got := l.Index(); got != 2 {
		t.Errorf("Prev() from first: Index() = %d, want 2", got)
	}

	l.Next()
	if got := l.Index(); got != 0 {
		t.Errorf("Next() from last: Index() = %d, want 0", got)
	}

	// Full forward cycle lands back where it started.
	for i := 0; i < len(images()); i++ {
		l.Next()
	}
	if got := l.Index(); got != 0 {
		t.Errorf("full Next() cycle: Index() = %d, want 0", got)
	}
}

func TestLightboxEmpty(t *testing.T) {
	l := NewLightbox(nil)

	l.Open(0)
	if l.IsOpen() {
		t.Error("empty gallery must not open")
	}

	l.Next()
	l.Prev()
	if got := l.Current(); got != "" {
		t.Errorf("Current() = %q, want empty", got)
	}
}
