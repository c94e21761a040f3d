package rewrite

// Result describes one Rewrite call.
type Result struct {
	Input  string
	Output string
	// Applied lists the names of rules that fired, in table order
	Applied []string
}

// Changed reports whether any rule altered the text
func (r Result) Changed() bool {
	return r.Input != r.Output
}

// Engine applies a Table to text. It holds no mutable state, so one Engine can
// be shared by any number of goroutines.
type Engine struct {
	table *Table
}

// New returns an engine over table. A nil table means the built-in Default.
func New(table *Table) *Engine {
	if table == nil {
		table = Default
	}
	return &Engine{table: table}
}

// Transform applies every rule once, in order, and returns the final text.
func (e *Engine) Transform(text string) string {
	for _, rule := range e.table.rules {
		text = rule.Apply(text)
	}
	return text
}

// Rewrite is Transform plus a record of which rules fired.
func (e *Engine) Rewrite(text string) Result {
	res := Result{Input: text}
	for _, rule := range e.table.rules {
		next := rule.Apply(text)
		if next != text {
			res.Applied = append(res.Applied, rule.Name())
		}
		text = next
	}
	res.Output = text
	return res
}
