package billing

import "errors"

var (
	ErrInvalidStay   = errors.New("stay must have a positive number of nights and a non-negative rate")
	ErrInvalidAmount = errors.New("payment amount must be greater than zero")
	ErrOverpayment   = errors.New("payment exceeds the outstanding balance")
)
