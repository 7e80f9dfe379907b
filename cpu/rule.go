package cpu

// Policy selects what a cycle does with a code no rule matches.
type Policy int

//go:generate go tool stringer -linecomment -type=Policy
const (
	POLICY_PERMISSIVE = Policy(0) // permissive
	POLICY_STRICT     = Policy(1) // strict
)

// Rule pairs a predicate over a code with the effect of that code.
type Rule struct {
	Mnemonic Mnemonic
	Match    func(code int) bool
	Effect   func(cpu *Cpu, code int) error
}

// Attempt runs the effect if, and only if, the code matches.
func (rule Rule) Attempt(cpu *Cpu, code int) (executed bool, err error) {
	if !rule.Match(code) {
		return
	}

	executed = true
	err = rule.Effect(cpu, code)
	return
}

// hundreds matches codes whose hundreds digit is digit.
func hundreds(digit int) func(code int) bool {
	return func(code int) bool {
		return code >= 0 && code/ADDRESS_SPAN == digit
	}
}

// exactly matches a single literal code.
func exactly(literal int) func(code int) bool {
	return func(code int) bool {
		return code == literal
	}
}

// below matches the non-negative codes under limit.
func below(limit int) func(code int) bool {
	return func(code int) bool {
		return code >= 0 && code < limit
	}
}

// Rules returns a fresh copy of the instruction table, in dispatch order.
func Rules() []Rule {
	return []Rule{
		{OP_ADD, hundreds(1), (*Cpu).doAdd},
		{OP_SUB, hundreds(2), (*Cpu).doSub},
		{OP_STA, hundreds(3), (*Cpu).doSta},
		{OP_LDA, hundreds(5), (*Cpu).doLda},
		{OP_BRA, hundreds(6), (*Cpu).doBra},
		{OP_BRZ, hundreds(7), (*Cpu).doBrz},
		{OP_BRP, hundreds(8), (*Cpu).doBrp},
		{OP_INP, exactly(CODE_INP), (*Cpu).doInp},
		{OP_OUT, exactly(CODE_OUT), (*Cpu).doOut},
		{OP_HLT, below(ADDRESS_SPAN), (*Cpu).doHlt},
	}
}

// Dispatcher is an ordered table of rules consulted every cycle.
type Dispatcher struct {
	Policy Policy
	Rules  []Rule
}

// NewDispatcher creates a dispatcher over the standard instruction table.
func NewDispatcher(policy Policy) *Dispatcher {
	return &Dispatcher{
		Policy: policy,
		Rules:  Rules(),
	}
}

// Dispatch executes the first rule matching code.
// An unmatched code is a no-op, unless the policy is POLICY_STRICT.
func (d *Dispatcher) Dispatch(cpu *Cpu, code int) (err error) {
	for _, rule := range d.Rules {
		var executed bool
		executed, err = rule.Attempt(cpu, code)
		if executed {
			return
		}
	}

	if d.Policy == POLICY_STRICT {
		err = ErrCode(code)
	}

	return
}

// Decode returns the instruction the first matching rule would execute.
func (d *Dispatcher) Decode(code int) (in Instruction, ok bool) {
	for _, rule := range d.Rules {
		if rule.Match(code) {
			in = MakeInstruction(rule.Mnemonic, addressOf(code))
			ok = true
			return
		}
	}

	return
}

// Disjoint verifies that every code in [0, modulus) is matched by at most one rule.
func (d *Dispatcher) Disjoint(modulus int) (err error) {
	for code := range modulus {
		var first *Rule
		for n := range d.Rules {
			if !d.Rules[n].Match(code) {
				continue
			}
			if first != nil {
				err = ErrRuleOverlap{Code: code, First: first.Mnemonic, Second: d.Rules[n].Mnemonic}
				return
			}
			first = &d.Rules[n]
		}
	}

	return
}
