package game

import "errors"

// Purchase validation outcomes; state is unchanged when any of these is returned
var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrAlreadyPurchased  = errors.New("already purchased")
	ErrUnknownItem       = errors.New("unknown item")
)
