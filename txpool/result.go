// Copyright 2024 The Corechain Authors
// This file is part of Corechain.
//
// Corechain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Corechain is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Corechain. If not, see <http://www.gnu.org/licenses/>.

// Package txpool implements the admission and ordering core of the
// transaction pool: duplicate/size/gas/nonce/blob-fee admission, the
// fee-market comparator, replacement policy, and broadcast quota.
package txpool

// AcceptTxResult is the sole outcome surface for admission; only Accepted
// admits a transaction.
type AcceptTxResult struct {
	ID   int
	Code string
}

func (r AcceptTxResult) String() string { return r.Code }

var (
	Accepted                     = AcceptTxResult{0, "Accepted"}
	AlreadyKnown                 = AcceptTxResult{1, "AlreadyKnown"}
	FailedToResolveSender        = AcceptTxResult{2, "FailedToResolveSender"}
	FeeTooLow                    = AcceptTxResult{3, "FeeTooLow"}
	FeeTooLowToCompete           = AcceptTxResult{4, "FeeTooLowToCompete"}
	GasLimitReached              = AcceptTxResult{5, "gas limit reached"}
	InsufficientFunds            = AcceptTxResult{6, "InsufficientFunds"}
	Int256Overflow               = AcceptTxResult{7, "Int256Overflow"}
	Invalid                      = AcceptTxResult{8, "Invalid"}
	NonceTooHigh                 = AcceptTxResult{9, "nonce too high"}
	NonceTooLow                  = AcceptTxResult{10, "nonce too low"}
	ReplacementNotAllowed        = AcceptTxResult{11, "ReplacementNotAllowed"}
	SenderNotAnEOA               = AcceptTxResult{12, "sender not an eoa"}
	NonceTooFarInFuture          = AcceptTxResult{13, "NonceTooFarInFuture"}
	PendingTxsOfConflictingType  = AcceptTxResult{14, "PendingTxsOfConflictingType"}
	NotSupportedTxType           = AcceptTxResult{15, "NotSupportedTxType"}
	MaxTxSizeExceeded            = AcceptTxResult{16, "MaxTxSizeExceeded"}
	NotCurrentNonceForDelegation = AcceptTxResult{17, "NotCurrentNonceForDelegation"}
	DelegatorHasPendingTx        = AcceptTxResult{18, "DelegatorHasPendingTx"}
	Syncing                      = AcceptTxResult{503, "Syncing"}
)

// resultCatalog lists the package vars above, in id order; ByID looks
// entries up in it.
var resultCatalog = []AcceptTxResult{
	Accepted, AlreadyKnown, FailedToResolveSender, FeeTooLow, FeeTooLowToCompete,
	GasLimitReached, InsufficientFunds, Int256Overflow, Invalid, NonceTooHigh,
	NonceTooLow, ReplacementNotAllowed, SenderNotAnEOA, NonceTooFarInFuture,
	PendingTxsOfConflictingType, NotSupportedTxType, MaxTxSizeExceeded,
	NotCurrentNonceForDelegation, DelegatorHasPendingTx, Syncing,
}

// ByID looks up a catalog entry; ok is false for an id outside the table.
func ByID(id int) (AcceptTxResult, bool) {
	for _, r := range resultCatalog {
		if r.ID == id {
			return r, true
		}
	}
	return AcceptTxResult{}, false
}
