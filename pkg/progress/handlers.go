package progress

// progressChanged sets the bar width.
func (w *Widget) progressChanged(ev Event) error {
	w.progressNode.SetStyle("width", formatNumber(ev.Percentage)+"%")
	w.percentage = ev.Percentage
	w.metrics.recordPercentage(w.locator, ev.Percentage)
	return nil
}

// valueChanged renders the value element, then moves the bar to match. The
// stored value only changes once the formatter has succeeded.
func (w *Widget) valueChanged(ev Event) error {
	percentage, err := PercentageOf(ev.Value, w.max)
	if err != nil {
		return err
	}
	if w.valueNode != nil {
		text, err := w.formatter(Iteration{
			Value:      ev.Value,
			Max:        w.max,
			Percentage: percentage,
		})
		if err != nil {
			return err
		}
		w.valueNode.SetInnerText(text)
	}
	w.value = ev.Value

	return w.SetProgress(percentage)
}

// textChanged renders the label if the widget has one.
func (w *Widget) textChanged(ev Event) error {
	if w.textNode == nil {
		return nil
	}
	w.textNode.SetInnerText(ev.Text)
	return nil
}
