package ringct

import (
	"errors"
	"fmt"
)

var (
	ErrContractViolation = errors.New("contract violation")
	ErrAmountMismatch    = errors.New("amount decoded incorrectly, will be unable to spend")
)

// ContractViolation reports malformed input handed to a prover or verifier
// by the caller. It is never produced by a failing cryptographic check.
type ContractViolation struct {
	Op  string
	Msg string
}

func (e *ContractViolation) Error() string {
	return fmt.Sprintf("%s %s", e.Op, e.Msg)
}

func (e *ContractViolation) Unwrap() error {
	return ErrContractViolation
}

func violation(op, format string, args ...interface{}) *ContractViolation {
	return &ContractViolation{Op: op, Msg: fmt.Sprintf(format, args...)}
}

// check panics with a *ContractViolation when cond does not hold.
func check(cond bool, op, format string, args ...interface{}) {
	if !cond {
		panic(violation(op, format, args...))
	}
}
