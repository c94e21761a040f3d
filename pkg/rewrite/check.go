package rewrite

import "fmt"

// Problem is one rule-authoring defect found by Check.
type Problem struct {
	Rule    string
	Message string
}

func (p Problem) String() string {
	return fmt.Sprintf("%s: %s", p.Rule, p.Message)
}

// Check verifies the authoring invariants the engine itself does not enforce:
// every rule rewrites its example, no later rule matches that rewrite, and
// running the whole table twice over an example changes nothing the second
// time.
func (t *Table) Check() []Problem {
	var problems []Problem
	engine := New(t)

	for i, rule := range t.rules {
		def := rule.def
		if def.Example == "" {
			problems = append(problems, Problem{def.Name, "no example"})
			continue
		}
		if !rule.Matches(def.Example) {
			problems = append(problems, Problem{def.Name, fmt.Sprintf("does not match its example %q", def.Example)})
			continue
		}

		out := rule.Apply(def.Example)
		for _, later := range t.rules[i+1:] {
			if later.Matches(out) {
				problems = append(problems, Problem{def.Name, fmt.Sprintf("output %q is matched again by %q", out, later.Name())})
			}
		}

		once := engine.Transform(def.Example)
		if twice := engine.Transform(once); twice != once {
			problems = append(problems, Problem{def.Name, fmt.Sprintf("not idempotent: %q then %q", once, twice)})
		}
	}
	return problems
}
