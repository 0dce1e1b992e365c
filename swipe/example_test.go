package swipe_test

import (
	"fmt"

	"github.com/jask/swipeview/swipe"
)

func ExampleLayout_Reconcile() {
	noop := func() {}
	l := swipe.NewLayout(
		[]swipe.Action{swipe.NewLabelAction("Archive", nil, nil, noop, swipe.WithWidth(100))},
		swipe.Actions().
			Label("Delete", nil, nil, noop).
			Label("Star", nil, nil, noop).
			Build(),
	)

	s := l.Initial()
	fmt.Println(s.Zone, s.Offset)

	s, _ = l.Reconcile(s, l.Offset(swipe.ZoneTrailing))
	fmt.Println(s.Zone, s.Offset, len(s.Leading), len(s.Trailing))

	s, recenter := l.Reconcile(s, l.Offset(swipe.ZoneCentered))
	fmt.Println(s.Zone, len(s.Leading), len(s.Trailing), recenter)
	// Output:
	// centered -100
	// trailing -260 0 2
	// centered 1 2 true
}
