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

package chainmanager

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/evmts/corechain/blockstore"
	"github.com/evmts/corechain/blocktree"
	"github.com/evmts/corechain/common"
	"github.com/evmts/corechain/core/types"
)

func mkBlock(number uint64, hash, parent byte) *types.Block {
	return &types.Block{
		Header: &types.Header{Number: number, ParentHash: common.Hash{parent}},
		Hash:   common.Hash{hash},
	}
}

func newTestManager() *ChainManager {
	store := blockstore.New()
	tree := blocktree.New(store)
	return New(store, tree)
}

func TestInitializeGenesisIsOneShot(t *testing.T) {
	cm := newTestManager()
	sub := Subscribe[GenesisInitialized](cm.Bus())
	defer sub.Close()

	g := mkBlock(0, 0x30, 0x00)
	require.NoError(t, cm.InitializeGenesis(g))
	require.ErrorIs(t, cm.InitializeGenesis(g), ErrGenesisAlreadyInitialized)

	select {
	case ev := <-sub.C():
		require.Equal(t, common.Hash{0x30}, ev.Hash)
	case <-time.After(time.Second):
		t.Fatal("expected GenesisInitialized event")
	}
}

func TestInitializeGenesisRejectsNonGenesis(t *testing.T) {
	cm := newTestManager()
	bad := mkBlock(1, 0x31, 0x30)
	require.ErrorIs(t, cm.InitializeGenesis(bad), ErrInvalidGenesisBlock)
}

func TestSetCanonicalHeadPublishesInOrder(t *testing.T) {
	cm := newTestManager()
	headSub := Subscribe[CanonicalHeadUpdated](cm.Bus())
	defer headSub.Close()

	g := mkBlock(0, 0x30, 0x00)
	require.NoError(t, cm.InitializeGenesis(g))

	first := <-headSub.C()
	require.Equal(t, uint64(0), first.Number)

	b1 := mkBlock(1, 0x31, 0x30)
	require.NoError(t, cm.tree.PutBlock(b1))
	require.NoError(t, cm.SetCanonicalHead(common.Hash{0x31}))

	second := <-headSub.C()
	require.Equal(t, uint64(1), second.Number)
	require.Equal(t, uint64(1), cm.HeadNumber())
}

func TestForkChoiceUpdatedRequiresKnownBlocks(t *testing.T) {
	cm := newTestManager()
	g := mkBlock(0, 0x30, 0x00)
	require.NoError(t, cm.InitializeGenesis(g))

	err := cm.ForkChoiceUpdated(ForkChoice{Head: common.Hash{0x99}})
	require.ErrorIs(t, err, ErrBlockNotFound)

	require.NoError(t, cm.ForkChoiceUpdated(ForkChoice{Head: common.Hash{0x30}}))
	require.Equal(t, common.Hash{0x30}, cm.ForkChoice().Head)
}

func TestSuggestBlockTracksBestSuggested(t *testing.T) {
	cm := newTestManager()
	g := mkBlock(0, 0x30, 0x00)
	require.NoError(t, cm.InitializeGenesis(g))

	bestSub := Subscribe[BestSuggestedBlock](cm.Bus())
	defer bestSub.Close()

	require.NoError(t, cm.SuggestBlock(mkBlock(5, 0x35, 0x34)))
	best := <-bestSub.C()
	require.Equal(t, uint64(5), best.Number)

	require.NoError(t, cm.SuggestBlock(mkBlock(3, 0x33, 0x32)))
	hash, number, ok := cm.BestSuggested()
	require.True(t, ok)
	require.Equal(t, uint64(5), number)
	require.Equal(t, common.Hash{0x35}, hash)
}
