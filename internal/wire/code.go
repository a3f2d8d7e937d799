package wire

import "strings"

// Class is the meaning of a result code.
type Class int

const (
	// ClassSuccess means the command is done.
	ClassSuccess Class = iota
	// ClassPending means the command was accepted but is still being processed.
	ClassPending
	// ClassPollTimeout means the registrar gave up waiting for an asynchronous command.
	ClassPollTimeout
	// ClassError is any other code.
	ClassError
)

// Describe gives the name of the class.
func (c Class) Describe() string {
	switch c {
	case ClassSuccess:
		return "success"
	case ClassPending:
		return "pending"
	case ClassPollTimeout:
		return "poll timeout"
	default:
		return "error"
	}
}

// Codes are the literal result codes of the registrar. Codes are compared as strings.
type Codes struct {
	Success     string
	Pending     string
	PollTimeout string
}

// DefaultCodes returns the codes used by the registrar unless configured otherwise.
func DefaultCodes() Codes {
	return Codes{
		Success:     "1000",
		Pending:     "1001",
		PollTimeout: "2400",
	}
}

// Classify gives the class of a code.
func (c Codes) Classify(code string) Class {
	switch code {
	case c.Success:
		return ClassSuccess
	case c.Pending:
		return ClassPending
	case c.PollTimeout:
		return ClassPollTimeout
	default:
		return ClassError
	}
}

// IsServerTimeout checks whether the registrar declared a timeout. Some responses
// announce it only through their message while carrying a generic error code,
// so the message is consulted for any code other than the success code.
func (c Codes) IsServerTimeout(r Response) bool {
	switch c.Classify(r.Code) {
	case ClassSuccess:
		return false
	case ClassPollTimeout:
		return true
	default:
		return strings.Contains(strings.ToLower(r.Message), "timeout")
	}
}
