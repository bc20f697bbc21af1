package diag

// Reporter is the minimal contract for receiving diagnostics.
// Implementations: BagReporter (stores into a Bag), NopReporter.
type Reporter interface {
	Report(d Diagnostic)
}

// BagReporter forwards diagnostics into a *Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(d Diagnostic) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(d)
}

// NopReporter drops every diagnostic.
type NopReporter struct{}

func (NopReporter) Report(Diagnostic) {}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(d Diagnostic)

func (f ReporterFunc) Report(d Diagnostic) { f(d) }
