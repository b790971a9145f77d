package card

// Rotation returns the card rotation in degrees for a face. Payment sits at
// a full rotation so reaching it reads as a double flip.
func Rotation(face Face) int {
	switch face {
	case FaceInfo:
		return 180
	case FacePayment:
		return 360
	default:
		return 0
	}
}

// Style is the rendering contract of one face: whether it is drawn, whether
// it receives input, and its stacking position. Whatever animates the card
// must preserve this matrix, or hidden faces intercept touches.
type Style struct {
	Visible     bool `json:"visible"`
	Interactive bool `json:"interactive"` // pointer-events: auto
	ZIndex      int  `json:"z_index"`
}

// Styles computes the per-face rendering contract for a shown face. Exactly
// one face is interactive at any instant, and none while a flip is in
// flight.
func Styles(current Face, flipping bool) map[Face]Style {
	return map[Face]Style{
		FaceFront: {
			Visible:     current != FacePayment,
			Interactive: current == FaceFront && !flipping,
			ZIndex:      frontZ(current),
		},
		FaceInfo: {
			Visible:     current == FaceInfo,
			Interactive: current == FaceInfo && !flipping,
			ZIndex:      pick(current == FaceInfo, 15, 5),
		},
		FacePayment: {
			Visible:     current == FacePayment,
			Interactive: current == FacePayment && !flipping,
			ZIndex:      pick(current == FacePayment, 10, -1),
		},
	}
}

func frontZ(current Face) int {
	switch current {
	case FaceFront:
		return 20
	case FaceInfo:
		return 10
	default:
		return 1
	}
}

func pick(cond bool, yes, no int) int {
	if cond {
		return yes
	}
	return no
}

// Markers that exclude a subtree from the generic tap-to-flip handler.
// The outer handler inspects ancestors instead of trusting inner handlers
// to stop propagation; nested animated layers swallow stopPropagation
// inconsistently.
const (
	MarkerButton      = "button"
	MarkerLink        = "a"
	MarkerRoleButton  = "role=button"
	MarkerActionsRow  = "data-actions-row"
	MarkerSocialIcons = "data-social-icons"
)

// TapTarget describes where a generic tap landed: the element itself and
// the marker trail from it up to the card root.
type TapTarget struct {
	Element   string
	Ancestors []string
}

// Interactive reports whether the tap landed inside a subtree that handles
// its own input and therefore must not flip the card.
func (t TapTarget) Interactive() bool {
	if isInteractiveMarker(t.Element) {
		return true
	}
	for _, a := range t.Ancestors {
		if isInteractiveMarker(a) {
			return true
		}
	}
	return false
}

func isInteractiveMarker(m string) bool {
	switch m {
	case MarkerButton, MarkerLink, MarkerRoleButton, MarkerActionsRow, MarkerSocialIcons:
		return true
	}
	return false
}
