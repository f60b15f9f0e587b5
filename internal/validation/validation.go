// Package validation provides field-level checks over a decoded request body.
//
// Validators are composed into ordered groups per endpoint. A group stops at the first
// failure and reports only that one.
package validation

// Validator checks a keyed input and returns the first problem it finds, or nil.
type Validator interface {
	Validate(input map[string]any) error
}

// Func adapts a plain function to the Validator interface.
type Func func(input map[string]any) error

// Validate calls f(input).
func (f Func) Validate(input map[string]any) error {
	return f(input)
}

// Composite runs validators in order and fails fast.
// A Composite is itself a Validator, so composites can be nested.
type Composite struct {
	validators []Validator
}

// NewComposite builds a composite from validators, kept in the given order.
func NewComposite(validators ...Validator) *Composite {
	return &Composite{validators: validators}
}

// Add appends validators to the end of the sequence.
func (c *Composite) Add(validators ...Validator) *Composite {
	c.validators = append(c.validators, validators...)

	return c
}

// Validate returns the first non-nil error, or nil when every validator passes.
func (c *Composite) Validate(input map[string]any) error {
	for _, v := range c.validators {
		if err := v.Validate(input); err != nil {
			return err
		}
	}

	return nil
}
