package model

import "errors"

var (
	// ErrDecode marks a feed payload that is not a valid serialized transaction.
	ErrDecode = errors.New("decode transaction")
	// ErrClassification marks a witness script that could not be tokenized.
	ErrClassification = errors.New("classify witness script")
	// ErrLookupFailed marks a prevout whose value could not be resolved through the node.
	ErrLookupFailed = errors.New("prevout lookup failed")
	// ErrNoLongerPending marks a transaction that left the mempool before evaluation.
	ErrNoLongerPending = errors.New("transaction no longer pending")
	// ErrBroadcastRejected marks a replacement the node refused to accept.
	ErrBroadcastRejected = errors.New("broadcast rejected")
	// ErrAssociationNotFound marks a consumed input without a matching vulnerable input record.
	ErrAssociationNotFound = errors.New("vulnerable input not found")
)
