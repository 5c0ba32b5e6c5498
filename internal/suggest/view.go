package suggest

import "github.com/skovgaard/platepilot/internal/assist"

// Confidence tier boundaries and the low-confidence warning cutoff.
const (
	threeStarMin    = 90
	twoStarMin      = 60
	warningBelow    = 40
	ThreeStarMarker = "★★★"
	TwoStarMarker   = "★★"
	OneStarMarker   = "★"
)

// Item is one rendered candidate. Activating it sets the input field to the
// plate and clears all suggestions; it never auto-submits.
type Item struct {
	// Plate is the candidate plate.
	Plate string `json:"plate"`

	// Confidence is the ranker's 0-100 score, preserved verbatim.
	Confidence float64 `json:"confidence"`

	// Stars is the confidence tier: 3 at >=90, 2 at >=60, 1 below.
	Stars int `json:"stars"`
}

// Marker returns the tier marker for the item.
func (i Item) Marker() string {
	switch i.Stars {
	case 3:
		return ThreeStarMarker
	case 2:
		return TwoStarMarker
	default:
		return OneStarMarker
	}
}

// View is the rendered suggestion area for the current input.
type View struct {
	// Items are the candidates in the exact order the ranker returned them.
	Items []Item `json:"items"`

	// Placeholder is the non-destructive input hint: the top-confidence
	// candidate of the last non-empty render. Clearing suggestions does not
	// reset it.
	Placeholder string `json:"placeholder,omitempty"`

	// LowConfidence reports the single warning shown before the input field
	// when the best candidate scores below 40.
	LowConfidence bool `json:"low_confidence"`
}

// starsFor maps a confidence score to its tier.
func starsFor(confidence float64) int {
	switch {
	case confidence >= threeStarMin:
		return 3
	case confidence >= twoStarMin:
		return 2
	default:
		return 1
	}
}

// render applies the display policy to a ranked candidate list, carrying the
// previous placeholder forward when the list yields no hint.
func render(predictions []assist.Prediction, prevPlaceholder string) View {
	view := View{Placeholder: prevPlaceholder}
	if len(predictions) == 0 {
		return view
	}

	maxConfidence, topPlate := 0.0, ""
	view.Items = make([]Item, 0, len(predictions))
	for _, p := range predictions {
		if p.Confidence > maxConfidence {
			maxConfidence, topPlate = p.Confidence, p.Plate
		}
		view.Items = append(view.Items, Item{
			Plate:      p.Plate,
			Confidence: p.Confidence,
			Stars:      starsFor(p.Confidence),
		})
	}

	if topPlate != "" {
		view.Placeholder = topPlate
	}
	view.LowConfidence = maxConfidence < warningBelow
	return view
}
