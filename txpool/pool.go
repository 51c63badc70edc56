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
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/btree"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/holiman/uint256"

	"github.com/evmts/corechain/common"
	"github.com/evmts/corechain/consensus/headervalidator"
)

// PoolVTable is the type-erased surface the admission and broadcast layers
// dispatch to, so callers never need a concrete *Pool.
type PoolVTable interface {
	PendingCount() int
	PendingBlobCount() int
	GetPendingTransactions() []Transaction
	SupportsBlobs() bool
	GetPendingCountForSender(addr common.Address) int
	GetPendingBlobCountForSender(addr common.Address) int
	GetPendingTransactionsBySender(addr common.Address) []Transaction
	IsKnown(hash common.Hash) bool
	MarkKnownForCurrentScope(hash common.Hash)
	ContainsTx(hash common.Hash, txType byte) bool
	SubmitTx(tx Transaction, sender common.Address, opts TxHandlingOptions) AcceptTxResult
}

// pendingEntry is the btree element ordering pending transactions by
// fee-market priority.
type pendingEntry struct {
	tx     Transaction
	sender common.Address
	seq    uint64 // tiebreak for otherwise-equal priority, insertion order
}

// Pool is the concrete admission and ordering core: a hash-keyed dedup
// cache plus a fee-ordered pending index, guarded by a single mutex.
type Pool struct {
	mu sync.Mutex

	cfg Config

	baseFee            *uint256.Int
	currentBlobBaseFee *uint256.Int
	eip1559Active      bool

	pending       *btree.BTreeG[*pendingEntry]
	bySender      map[common.Address]mapset.Set[common.Hash]
	byHash        map[common.Hash]*pendingEntry
	blobCount     int
	nextSeq       uint64
	currentNonces map[common.Address]uint64

	known *lru.Cache[common.Hash, struct{}]
}

// NewPool constructs an empty pool per cfg.
func NewPool(cfg Config, baseFee *uint256.Int, eip1559Active bool) (*Pool, error) {
	size := cfg.HashCacheSize
	if size <= 0 {
		size = 1
	}
	cache, err := lru.New[common.Hash, struct{}](size)
	if err != nil {
		return nil, err
	}
	p := &Pool{
		cfg:                cfg,
		baseFee:            baseFee,
		currentBlobBaseFee: uint256.NewInt(0),
		eip1559Active:      eip1559Active,
		bySender:           make(map[common.Address]mapset.Set[common.Hash]),
		byHash:             make(map[common.Hash]*pendingEntry),
		currentNonces:      make(map[common.Address]uint64),
		known:              cache,
	}
	p.pending = btree.NewG(32, p.less)
	return p, nil
}

func (p *Pool) less(a, b *pendingEntry) bool {
	c := CompareFeeMarketPriority(a.tx, b.tx, p.baseFee, p.eip1559Active)
	if c != 0 {
		return c < 0
	}
	return a.seq < b.seq
}

func (p *Pool) PendingCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pending.Len()
}

func (p *Pool) PendingBlobCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.blobCount
}

func (p *Pool) GetPendingTransactions() []Transaction {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Transaction, 0, p.pending.Len())
	p.pending.Ascend(func(e *pendingEntry) bool {
		out = append(out, e.tx)
		return true
	})
	return out
}

func (p *Pool) SupportsBlobs() bool {
	return p.cfg.BlobsSupport != BlobsDisabled
}

func (p *Pool) GetPendingCountForSender(addr common.Address) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	s, ok := p.bySender[addr]
	if !ok {
		return 0
	}
	return s.Cardinality()
}

// GetPendingBlobCountForSender reports how many of the sender's pending
// transactions carry blobs, separate from GetPendingCountForSender's total
// across all types.
func (p *Pool) GetPendingBlobCountForSender(addr common.Address) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	s, ok := p.bySender[addr]
	if !ok {
		return 0
	}
	count := 0
	for _, h := range s.ToSlice() {
		if e, ok := p.byHash[h]; ok && e.tx.IsBlob() {
			count++
		}
	}
	return count
}

func (p *Pool) GetPendingTransactionsBySender(addr common.Address) []Transaction {
	p.mu.Lock()
	defer p.mu.Unlock()
	s, ok := p.bySender[addr]
	if !ok {
		return nil
	}
	out := make([]Transaction, 0, s.Cardinality())
	for _, h := range s.ToSlice() {
		if e, ok := p.byHash[h]; ok {
			out = append(out, e.tx)
		}
	}
	return out
}

func (p *Pool) IsKnown(hash common.Hash) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.known.Get(hash)
	return ok
}

func (p *Pool) MarkKnownForCurrentScope(hash common.Hash) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.known.Add(hash, struct{}{})
}

func (p *Pool) ContainsTx(hash common.Hash, _ byte) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.byHash[hash]
	return ok
}

// SubmitTx runs the full admission pipeline and, on acceptance, inserts the
// transaction into the fee-ordered pending index, replacing any existing
// transaction from the same sender at the same nonce per the replacement
// comparators.
func (p *Pool) SubmitTx(tx Transaction, sender common.Address, _ TxHandlingOptions) AcceptTxResult {
	p.mu.Lock()
	defer p.mu.Unlock()

	ctx := AdmissionContext{
		CurrentNonce:       p.currentNonces[sender],
		PendingSender:      p.pendingCountForSenderLocked(sender),
		CurrentBlobBaseFee: p.currentBlobBaseFee,
	}

	if err := RunAdmissionPipeline(p, tx, p.cfg, ctx); err != nil {
		return ResultForError(err)
	}

	if existing := p.findBySenderNonce(sender, tx.GetNonce()); existing != nil {
		var cmp int
		if tx.IsBlob() || existing.tx.IsBlob() {
			cmp = CompareReplacedBlobTransactionByFee(tx, existing.tx)
		} else {
			cmp = CompareReplacedTransactionByFee(tx, existing.tx)
		}
		if cmp >= 0 {
			return ReplacementNotAllowed
		}
		p.removeLocked(existing)
	}

	p.insertLocked(tx, sender)
	return Accepted
}

// pendingCountForSenderLocked is the gap allowance EnforceNonceGap checks
// against: the number of transactions the sender already has queued, which
// may sit contiguously ahead of its current on-chain nonce.
func (p *Pool) pendingCountForSenderLocked(sender common.Address) uint64 {
	s, ok := p.bySender[sender]
	if !ok {
		return 0
	}
	return uint64(s.Cardinality())
}

func (p *Pool) findBySenderNonce(sender common.Address, nonce uint64) *pendingEntry {
	s, ok := p.bySender[sender]
	if !ok {
		return nil
	}
	for _, h := range s.ToSlice() {
		e, ok := p.byHash[h]
		if ok && e.tx.GetNonce() == nonce {
			return e
		}
	}
	return nil
}

func (p *Pool) insertLocked(tx Transaction, sender common.Address) {
	e := &pendingEntry{tx: tx, sender: sender, seq: p.nextSeq}
	p.nextSeq++
	p.pending.ReplaceOrInsert(e)
	p.byHash[tx.Hash()] = e
	s, ok := p.bySender[sender]
	if !ok {
		s = mapset.NewThreadUnsafeSet[common.Hash]()
		p.bySender[sender] = s
	}
	s.Add(tx.Hash())
	if tx.IsBlob() {
		p.blobCount++
	}
}

func (p *Pool) removeLocked(e *pendingEntry) {
	p.pending.Delete(e)
	delete(p.byHash, e.tx.Hash())
	if s, ok := p.bySender[e.sender]; ok {
		s.Remove(e.tx.Hash())
	}
	if e.tx.IsBlob() {
		p.blobCount--
	}
}

// SetCurrentNonce records the chain-observed nonce for a sender, used by
// the nonce-gap admission predicate.
func (p *Pool) SetCurrentNonce(sender common.Address, nonce uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.currentNonces[sender] = nonce
}

// SetBaseFee updates the base fee the fee-market comparator and the
// effective-priority-fee computation use.
func (p *Pool) SetBaseFee(baseFee *uint256.Int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.baseFee = baseFee
}

// SetCurrentBlobBaseFee updates the blob base fee enforce_min_priority_fee_for_blobs checks against.
func (p *Pool) SetCurrentBlobBaseFee(fee *uint256.Int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.currentBlobBaseFee = fee
}

// SetCurrentBlobBaseFeeFromExcess derives the blob base fee from a block's
// excess blob gas via the EIP-4844 fake-exponential formula, rather than
// requiring the caller to pre-compute it.
func (p *Pool) SetCurrentBlobBaseFeeFromExcess(excessBlobGas uint64) error {
	fee, err := headervalidator.BlobBaseFee(excessBlobGas)
	if err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.currentBlobBaseFee = fee
	return nil
}

var _ PoolVTable = (*Pool)(nil)
var _ KnownTxChecker = (*Pool)(nil)
