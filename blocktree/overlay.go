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

package blocktree

import (
	"fmt"

	"github.com/evmts/corechain/common"
	"github.com/evmts/corechain/core/types"
)

// BlockTreeOverlay composes a read-only base and a mutable delta tree.
// Writes materialize missing ancestry from base into the overlay before
// applying.
type BlockTreeOverlay struct {
	base    ReadOnlyBlockTree
	overlay *BlockTree

	newInOverlay        int // hashes written to overlay that base never had
	materializedOrphans int // materialized ancestors that were orphans in base
}

// NewOverlay fails with common.ErrSameInstance when base and overlay share
// an instance identity.
func NewOverlay(base ReadOnlyBlockTree, overlay *BlockTree) (*BlockTreeOverlay, error) {
	if base.InstanceID() == overlay.InstanceID() {
		return nil, common.ErrSameInstance
	}
	return &BlockTreeOverlay{base: base, overlay: overlay}, nil
}

func (o *BlockTreeOverlay) HasBlock(hash common.Hash) bool {
	return o.overlay.HasBlock(hash) || o.base.HasBlock(hash)
}

func (o *BlockTreeOverlay) IsOrphan(hash common.Hash) bool {
	return o.overlay.IsOrphan(hash) || o.base.IsOrphan(hash)
}

func (o *BlockTreeOverlay) GetBlock(hash common.Hash) (*types.Block, bool) {
	if b, ok := o.overlay.GetBlock(hash); ok {
		return b, ok
	}
	return o.base.GetBlock(hash)
}

func (o *BlockTreeOverlay) CanonicalHashAt(number uint64) (common.Hash, bool) {
	if h, ok := o.overlay.CanonicalHashAt(number); ok {
		return h, ok
	}
	return o.base.CanonicalHashAt(number)
}

func (o *BlockTreeOverlay) HeadBlockNumber() (uint64, bool) {
	if n, ok := o.overlay.HeadBlockNumber(); ok {
		return n, ok
	}
	return o.base.HeadBlockNumber()
}

// Count is the base count plus the hashes new to the overlay.
func (o *BlockTreeOverlay) Count() int {
	return o.base.Count() + o.newInOverlay
}

// OrphanCount excludes base orphans whose hash has been materialized
// non-orphan in the overlay.
func (o *BlockTreeOverlay) OrphanCount() int {
	return o.overlay.OrphanCount() + o.base.OrphanCount() - o.materializedOrphans
}

// PutBlock materializes b's ancestry from base into the overlay, then
// writes b to the overlay.
func (o *BlockTreeOverlay) PutBlock(b *types.Block) error {
	if b == nil || b.Header == nil {
		return fmt.Errorf("blocktree: %w: nil block", ErrBlockNotFound)
	}
	if b.Header.Number > 0 {
		if err := o.materialize(b.Header.ParentHash); err != nil {
			return err
		}
	}
	wasNew := !o.base.HasBlock(b.Hash) && !o.overlay.HasBlock(b.Hash)
	if err := o.overlay.PutBlock(b); err != nil {
		return err
	}
	if wasNew {
		o.newInOverlay++
	}
	return nil
}

// SetCanonicalHead materializes the full ancestry of h before delegating
// to the overlay tree, preserving contiguity when the canonical head is
// rooted in the base's genesis.
func (o *BlockTreeOverlay) SetCanonicalHead(h common.Hash) error {
	if err := o.materialize(h); err != nil {
		return err
	}
	return o.overlay.SetCanonicalHead(h)
}

// materialize recursively walks parent_hash in base, copying any ancestor
// missing from the overlay.
func (o *BlockTreeOverlay) materialize(hash common.Hash) error {
	if o.overlay.HasBlock(hash) {
		return nil
	}
	block, ok := o.base.GetBlock(hash)
	if !ok {
		return fmt.Errorf("blocktree: %w: %s", ErrBlockNotFound, hash)
	}
	if block.Header.Number > 0 {
		if err := o.materialize(block.Header.ParentHash); err != nil {
			return err
		}
	}
	if o.base.IsOrphan(hash) {
		o.materializedOrphans++
	}
	return o.overlay.PutBlock(block)
}
