package cast

import (
	"fmt"
	"strings"
)

// Window is the [Begin, End) time interval retained when cropping.
type Window struct {
	Begin float64
	End   float64
}

// DefaultWindow matches the window used to trim the demo recording.
var DefaultWindow = Window{Begin: 14, End: 41.5}

// Crop trims events to the window. Events before the window collapse, in
// order, into one synthetic "o" event at timestamp zero; events inside the
// window are rebased so the window start becomes zero; events at or past
// the window end are dropped. The synthetic event only appears when at
// least one in-window event survives.
func Crop(events []Event, win Window) ([]Event, error) {
	if win.End <= win.Begin {
		return nil, fmt.Errorf("invalid crop window: end %v is not after begin %v", win.End, win.Begin)
	}

	var prefix strings.Builder
	var cropped []Event
	for _, event := range events {
		switch {
		case event.Time < win.Begin:
			prefix.WriteString(event.Data)
		case event.Time < win.End:
			if cropped == nil {
				cropped = append(cropped, Event{Time: 0, Kind: "o", Data: prefix.String()})
			}
			cropped = append(cropped, Event{
				Time: event.Time - win.Begin,
				Kind: event.Kind,
				Data: event.Data,
			})
		}
	}

	return cropped, nil
}
