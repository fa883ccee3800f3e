package pairhmm

import "github.com/pkg/errors"

// ContractError reports a violation of the aligner's input-shape
// precondition or a request for a backend the caller hasn't verified is
// available. It is a programmer error, not a run-time alignment failure --
// score overflow (see ScoreOnly, ScoreAndAlign) is signalled separately, by
// an ordinary sentinel return, precisely because it is not a contract
// violation.
type ContractError struct {
	msg string
}

func (e *ContractError) Error() string { return e.msg }

func newContractError(format string, args ...interface{}) error {
	return &ContractError{msg: errors.Errorf(format, args...).Error()}
}
