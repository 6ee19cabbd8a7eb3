// Package progress implements a progress-bar widget bound to a host document.
//
// A Widget attaches to a container element, finds or creates three child
// elements and keeps them in sync with a bounded counter:
//
//	progress-bar-progress  (required) bar fill, width set to the percentage
//	progress-bar-text      (optional) status label
//	progress-bar-value     (optional) formatted readout, "50%" by default
//
// Typical use:
//
//	doc, _ := dom.ParseString(`<div class="abc"></div>`)
//	w, err := progress.Init(doc, ".abc",
//	    progress.WithMax(2),
//	    progress.WithValue(1),
//	    progress.WithText("Installing..."),
//	)
//	if err != nil {
//	    return err
//	}
//	_ = w.SetValue(1) // 100%
//
// # Events
//
// State changes never touch the elements directly. SetValue, SetProgress and
// SetText publish an Event on the widget's Bus, and handlers subscribed at
// Init update the elements. Publishing is synchronous: when a setter returns,
// every handler has run. Additional listeners can observe the same events
// with WithListener or Widget.On.
//
// # Values
//
// SetValue(delta) always dispatches start+delta. Calls do not accumulate:
// two SetValue(5) calls both report 5.
//
// Options that are nil, false, "", zero or NaN take their defaults, so
// WithMax(0) is a widget with max 1.
//
// A Widget is not safe for concurrent use.
package progress
