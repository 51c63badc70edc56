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

package txpool

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/evmts/corechain/common"
)

// fakeTx is a minimal Transaction double for admission/ordering tests,
// independent of core/types so these tests exercise the pure predicate
// and comparator logic in isolation.
type fakeTx struct {
	hash       common.Hash
	txType     byte
	nonce      uint64
	gasLimit   uint64
	size       int
	blob       bool
	blobCount  int
	gasPrice   *uint256.Int
	gasTipCap  *uint256.Int
	maxBlobFee *uint256.Int
}

func (t *fakeTx) Hash() common.Hash              { return t.hash }
func (t *fakeTx) TxType() byte                   { return t.txType }
func (t *fakeTx) GetNonce() uint64               { return t.nonce }
func (t *fakeTx) GetGasLimit() uint64            { return t.gasLimit }
func (t *fakeTx) EncodedSize() int               { return t.size }
func (t *fakeTx) IsBlob() bool                   { return t.blob }
func (t *fakeTx) BlobCount() int                 { return t.blobCount }
func (t *fakeTx) GasPriceOrFeeCap() *uint256.Int { return t.gasPrice }
func (t *fakeTx) GasTipCap() *uint256.Int        { return t.gasTipCap }
func (t *fakeTx) MaxFeePerBlobGas() *uint256.Int { return t.maxBlobFee }
func (t *fakeTx) IsLegacy() bool                 { return t.txType == legacyTxTypeByte }

func legacyTx(hash byte, nonce uint64, gasPrice uint64) *fakeTx {
	return &fakeTx{
		hash:      common.Hash{hash},
		txType:    legacyTxTypeByte,
		nonce:     nonce,
		gasLimit:  21000,
		size:      100,
		gasPrice:  uint256.NewInt(gasPrice),
		gasTipCap: uint256.NewInt(gasPrice),
	}
}

// --- fee replacement (legacy) ---

func TestCompareReplacedTransactionByFeeLegacyTenPercentBump(t *testing.T) {
	old := legacyTx(1, 0, 100)

	kept := legacyTx(2, 0, 110)
	require.Equal(t, 1, CompareReplacedTransactionByFee(kept, old))

	replaces := legacyTx(3, 0, 111)
	require.Equal(t, -1, CompareReplacedTransactionByFee(replaces, old))
}

func TestCompareReplacedTransactionByFeeIdentical(t *testing.T) {
	tx := legacyTx(1, 0, 100)
	require.Equal(t, 0, CompareReplacedTransactionByFee(tx, tx))
}

// --- compare_fee_market_priority property: antisymmetry ---

func TestCompareFeeMarketPriorityAntisymmetric(t *testing.T) {
	baseFee := uint256.NewInt(50)
	cases := [][2]uint64{{100, 120}, {120, 100}, {100, 100}, {1, 1000}}
	for _, c := range cases {
		x := legacyTx(1, 0, c[0])
		y := legacyTx(2, 0, c[1])
		cxy := CompareFeeMarketPriority(x, y, baseFee, true)
		cyx := CompareFeeMarketPriority(y, x, baseFee, true)
		require.Equal(t, -cxy, cyx)
	}
}

func TestCompareFeeMarketPriorityEIP1559EffectiveGasPrice(t *testing.T) {
	baseFee := uint256.NewInt(50)
	x := &fakeTx{hash: common.Hash{1}, txType: 2, gasPrice: uint256.NewInt(200), gasTipCap: uint256.NewInt(10)}
	y := &fakeTx{hash: common.Hash{2}, txType: 2, gasPrice: uint256.NewInt(200), gasTipCap: uint256.NewInt(30)}
	// x effective = min(200, 50+10)=60; y effective = min(200,50+30)=80 -> y sorts first
	require.Equal(t, 1, CompareFeeMarketPriority(x, y, baseFee, true))
	require.Equal(t, -1, CompareFeeMarketPriority(y, x, baseFee, true))
}

// --- blob replacement: 2x rule + blob-count monotonicity ---

func TestCompareReplacedBlobTransactionByFeeRequiresDouble(t *testing.T) {
	old := &fakeTx{hash: common.Hash{1}, txType: 3, blob: true, blobCount: 2,
		gasPrice: uint256.NewInt(100), gasTipCap: uint256.NewInt(10), maxBlobFee: uint256.NewInt(5)}

	notEnough := &fakeTx{hash: common.Hash{2}, txType: 3, blob: true, blobCount: 2,
		gasPrice: uint256.NewInt(199), gasTipCap: uint256.NewInt(19), maxBlobFee: uint256.NewInt(9)}
	require.Equal(t, 1, CompareReplacedBlobTransactionByFee(notEnough, old))

	enough := &fakeTx{hash: common.Hash{3}, txType: 3, blob: true, blobCount: 2,
		gasPrice: uint256.NewInt(200), gasTipCap: uint256.NewInt(20), maxBlobFee: uint256.NewInt(10)}
	require.Equal(t, -1, CompareReplacedBlobTransactionByFee(enough, old))

	fewerBlobs := &fakeTx{hash: common.Hash{4}, txType: 3, blob: true, blobCount: 1,
		gasPrice: uint256.NewInt(400), gasTipCap: uint256.NewInt(40), maxBlobFee: uint256.NewInt(20)}
	require.Equal(t, 1, CompareReplacedBlobTransactionByFee(fewerBlobs, old))
}

// --- broadcast policy ---

func TestCalculateBaseFeeThreshold(t *testing.T) {
	result := CalculateBaseFeeThreshold(uint256.NewInt(1000), 70)
	require.Equal(t, uint256.NewInt(700), result)
}

func TestCalculateBaseFeeThresholdSaturatesOnOverflow(t *testing.T) {
	huge := new(uint256.Int).Not(uint256.NewInt(0)) // max uint256
	result := CalculateBaseFeeThreshold(huge, 150)
	require.True(t, result.Eq(new(uint256.Int).Not(uint256.NewInt(0))))
}

func TestCalculatePersistentBroadcastQuota(t *testing.T) {
	require.Equal(t, 0, CalculatePersistentBroadcastQuota(0, 5))
	require.Equal(t, 0, CalculatePersistentBroadcastQuota(100, 0))
	require.Equal(t, 6, CalculatePersistentBroadcastQuota(100, 5))
	require.Equal(t, 100, CalculatePersistentBroadcastQuota(100, 99999))
}

func TestCalculatePersistentBroadcastQuotaNeverExceedsPoolSize(t *testing.T) {
	for _, n := range []int{1, 2, 7, 2048} {
		for _, p := range []uint64{0, 1, 50, 100, 1000} {
			require.LessOrEqual(t, CalculatePersistentBroadcastQuota(n, p), n)
		}
	}
}

// --- admission predicates ---

func TestEnforceNonceGap(t *testing.T) {
	require.NoError(t, EnforceNonceGap(5, 5, 0))
	require.NoError(t, EnforceNonceGap(3, 5, 0))
	require.NoError(t, EnforceNonceGap(6, 5, 1))
	require.ErrorIs(t, EnforceNonceGap(7, 5, 1), ErrNonceGap)
}

func TestFitsSizeLimits(t *testing.T) {
	cfg := DefaultConfig()
	small := &fakeTx{hash: common.Hash{1}, size: 100}
	require.NoError(t, FitsSizeLimits(small, cfg))

	tooBig := &fakeTx{hash: common.Hash{2}, size: cfg.MaxTxSize + 1}
	require.ErrorIs(t, FitsSizeLimits(tooBig, cfg), ErrMaxTxSizeExceeded)

	bigBlob := &fakeTx{hash: common.Hash{3}, blob: true, size: cfg.MaxTxSize + 1}
	require.NoError(t, FitsSizeLimits(bigBlob, cfg))

	tooBigBlob := &fakeTx{hash: common.Hash{4}, blob: true, size: cfg.MaxBlobTxSize + 1}
	require.ErrorIs(t, FitsSizeLimits(tooBigBlob, cfg), ErrMaxBlobTxSizeExceeded)
}

func TestFitsGasLimit(t *testing.T) {
	cfg := DefaultConfig()
	tx := &fakeTx{hash: common.Hash{1}, gasLimit: 100}
	require.NoError(t, FitsGasLimit(tx, cfg))

	limit := uint64(50)
	cfg.GasLimit = &limit
	require.ErrorIs(t, FitsGasLimit(tx, cfg), ErrTxGasLimitExceeded)
}

func TestEnforceMinPriorityFeeForBlobs(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinBlobTxPriorityFee = 10
	cfg.CurrentBlobBaseFeeRequired = true

	nonBlob := &fakeTx{hash: common.Hash{1}}
	require.NoError(t, EnforceMinPriorityFeeForBlobs(nonBlob, cfg, uint256.NewInt(5)))

	lowTip := &fakeTx{hash: common.Hash{2}, blob: true, gasTipCap: uint256.NewInt(5), maxBlobFee: uint256.NewInt(5)}
	require.ErrorIs(t, EnforceMinPriorityFeeForBlobs(lowTip, cfg, uint256.NewInt(5)), ErrMinBlobPriorityFee)

	lowBlobFee := &fakeTx{hash: common.Hash{3}, blob: true, gasTipCap: uint256.NewInt(20), maxBlobFee: uint256.NewInt(1)}
	require.ErrorIs(t, EnforceMinPriorityFeeForBlobs(lowBlobFee, cfg, uint256.NewInt(5)), ErrBlobBaseFeeTooLow)

	ok := &fakeTx{hash: common.Hash{4}, blob: true, gasTipCap: uint256.NewInt(20), maxBlobFee: uint256.NewInt(5)}
	require.NoError(t, EnforceMinPriorityFeeForBlobs(ok, cfg, uint256.NewInt(5)))
}

func TestPrecheckDuplicate(t *testing.T) {
	p, err := NewPool(DefaultConfig(), uint256.NewInt(10), true)
	require.NoError(t, err)

	tx := legacyTx(1, 0, 100)
	require.NoError(t, PrecheckDuplicate(p, tx))
	require.ErrorIs(t, PrecheckDuplicate(p, tx), ErrAlreadyKnown)
}

// --- TxHandlingOptions closed-domain tests ---

func TestTxHandlingOptionsClosedDomain(t *testing.T) {
	opts, err := FromBits(uint8(ManagedNonce | PreEIP155Signing))
	require.NoError(t, err)
	require.True(t, opts.Has(ManagedNonce))
	require.True(t, opts.Has(PreEIP155Signing))
	require.False(t, opts.Has(PersistentBroadcast))

	_, err = FromBits(0x80)
	require.Error(t, err)

	sanitized := Sanitize(0xFF)
	require.Equal(t, allHandlingOptions, sanitized)

	invalid := TxHandlingOptions(0x80)
	require.False(t, invalid.Has(ManagedNonce))
}

// --- AcceptTxResult catalog consistency ---

func TestAcceptTxResultCatalogConsistency(t *testing.T) {
	ids := map[int]bool{}
	for _, r := range resultCatalog {
		require.False(t, ids[r.ID], "duplicate id %d", r.ID)
		ids[r.ID] = true

		found, ok := ByID(r.ID)
		require.True(t, ok)
		require.Equal(t, r, found)
	}
	require.True(t, ids[0])
	require.True(t, ids[503])
}

// --- Pool.SubmitTx end-to-end admission + ordering ---

func TestSubmitTxAcceptsAndOrdersByFee(t *testing.T) {
	p, err := NewPool(DefaultConfig(), uint256.NewInt(10), true)
	require.NoError(t, err)

	senderA := common.Address{0xA}
	senderB := common.Address{0xB}

	low := legacyTx(1, 0, 20)
	high := legacyTx(2, 0, 200)

	require.Equal(t, Accepted, p.SubmitTx(low, senderA, 0))
	require.Equal(t, Accepted, p.SubmitTx(high, senderB, 0))

	pending := p.GetPendingTransactions()
	require.Len(t, pending, 2)
	require.Equal(t, high.Hash(), pending[0].Hash())
	require.Equal(t, low.Hash(), pending[1].Hash())
}

func TestSubmitTxReplacementFollowsTenPercentRule(t *testing.T) {
	p, err := NewPool(DefaultConfig(), uint256.NewInt(10), true)
	require.NoError(t, err)
	sender := common.Address{0xA}

	old := legacyTx(1, 0, 100)
	require.Equal(t, Accepted, p.SubmitTx(old, sender, 0))

	notEnough := legacyTx(2, 0, 110)
	require.Equal(t, ReplacementNotAllowed, p.SubmitTx(notEnough, sender, 0))

	enough := legacyTx(3, 0, 111)
	require.Equal(t, Accepted, p.SubmitTx(enough, sender, 0))

	pending := p.GetPendingTransactions()
	require.Len(t, pending, 1)
	require.Equal(t, enough.Hash(), pending[0].Hash())
}

func TestSubmitTxRejectsDuplicate(t *testing.T) {
	p, err := NewPool(DefaultConfig(), uint256.NewInt(10), true)
	require.NoError(t, err)
	sender := common.Address{0xA}

	tx := legacyTx(1, 0, 100)
	require.Equal(t, Accepted, p.SubmitTx(tx, sender, 0))
	require.Equal(t, AlreadyKnown, p.SubmitTx(tx, sender, 0))
}

func TestSubmitTxEnforcesNonceGap(t *testing.T) {
	p, err := NewPool(DefaultConfig(), uint256.NewInt(10), true)
	require.NoError(t, err)
	sender := common.Address{0xA}
	p.SetCurrentNonce(sender, 5)

	tooFar := legacyTx(1, 7, 100)
	require.Equal(t, NonceTooHigh, p.SubmitTx(tooFar, sender, 0))
}
