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

package blockhash

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/evmts/corechain/common"
	"github.com/evmts/corechain/core/types"
)

type fakeHeaders struct {
	byHash map[common.Hash]*types.Header
}

func (f *fakeHeaders) HeaderByHash(h common.Hash) (*types.Header, bool) {
	v, ok := f.byHash[h]
	return v, ok
}

type legacySpec struct{}

func (legacySpec) IsBlockhashInStateAvailable(uint64) bool { return false }
func (legacySpec) RingBufferSize() uint64                  { return 8192 }

type postEIP2935Spec struct{}

func (postEIP2935Spec) IsBlockhashInStateAvailable(uint64) bool { return true }
func (postEIP2935Spec) RingBufferSize() uint64                  { return 8192 }

type fakeWorldState struct {
	code  map[common.Address]int
	state map[common.Address]map[common.Hash]common.Hash
}

func newFakeWorldState() *fakeWorldState {
	return &fakeWorldState{code: map[common.Address]int{}, state: map[common.Address]map[common.Hash]common.Hash{}}
}

func (w *fakeWorldState) CodeSize(a common.Address) int { return w.code[a] }
func (w *fakeWorldState) GetState(a common.Address, slot common.Hash) (common.Hash, bool) {
	m, ok := w.state[a]
	if !ok {
		return common.Hash{}, false
	}
	v, ok := m[slot]
	return v, ok
}
func (w *fakeWorldState) SetState(a common.Address, slot common.Hash, value common.Hash) {
	m, ok := w.state[a]
	if !ok {
		m = map[common.Hash]common.Hash{}
		w.state[a] = m
	}
	m[slot] = value
}

// buildChain constructs headers #0..#n where header #i has hash i+1
// (big-endian in the last two bytes, so hashes stay distinct past 255) and
// parent hash i (#0's parent is the zero hash).
func buildChain(n uint64) (*fakeHeaders, map[uint64]common.Hash) {
	fh := &fakeHeaders{byHash: map[common.Hash]*types.Header{}}
	hashes := map[uint64]common.Hash{}
	for i := uint64(0); i <= n; i++ {
		h := common.Hash{}
		h[common.HashLength-2] = byte((i + 1) >> 8)
		h[common.HashLength-1] = byte(i + 1)
		var parent common.Hash
		if i > 0 {
			parent = hashes[i-1]
		}
		hdr := &types.Header{Number: i, ParentHash: parent}
		fh.byHash[h] = hdr
		hashes[i] = h
	}
	return fh, hashes
}

func TestLegacyBlockhashDepthOneIsParentHash(t *testing.T) {
	fh, hashes := buildChain(5)
	p := NewBlockhashProvider(fh, newFakeWorldState(), legacySpec{})

	current := &types.Header{Number: 5, ParentHash: hashes[4]}
	h, ok, err := p.GetBlockhash(current, 4)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, hashes[4], h)
}

func TestBlockhashBoundaryRequests(t *testing.T) {
	fh, _ := buildChain(300)
	p := NewBlockhashProvider(fh, newFakeWorldState(), legacySpec{})

	current := &types.Header{Number: 300}
	_, ok, err := p.GetBlockhash(current, 300) // current block itself
	require.NoError(t, err)
	require.False(t, ok)

	_, ok, err = p.GetBlockhash(current, 301) // future block
	require.NoError(t, err)
	require.False(t, ok)

	_, ok, err = p.GetBlockhash(current, 43) // depth 257: excluded
	require.NoError(t, err)
	require.False(t, ok)
}

func TestGetLast256BlockHashesAscending(t *testing.T) {
	fh, hashes := buildChain(256)
	p := NewBlockhashProvider(fh, newFakeWorldState(), legacySpec{})

	current := &types.Header{Number: 256, ParentHash: hashes[255]}
	got, err := p.GetLast256BlockHashes(current)
	require.NoError(t, err)
	require.Len(t, got, 256)
	require.Equal(t, hashes[0], got[0])
	require.Equal(t, hashes[255], got[255])
}

func TestCacheEvictsOldestAfter32DistinctKeys(t *testing.T) {
	c := NewBlockhashCache()
	for i := 0; i < 33; i++ {
		var key common.Hash
		key[common.HashLength-1] = byte(i)
		c.put(key, []common.Hash{key})
	}
	require.Equal(t, 32, c.Len())

	var firstKey common.Hash
	firstKey[common.HashLength-1] = 0
	_, ok := c.get(firstKey)
	require.False(t, ok)
}

func TestEIP2935ModeReadsWorldState(t *testing.T) {
	world := newFakeWorldState()
	world.code[HistoryStorageAddress] = 1
	world.SetState(HistoryStorageAddress, uint64ToHash(41%8192), common.Hash{0x77})

	p := NewBlockhashProvider(&fakeHeaders{byHash: map[common.Hash]*types.Header{}}, world, postEIP2935Spec{})
	current := &types.Header{Number: 50}

	h, ok, err := p.GetBlockhash(current, 41)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, common.Hash{0x77}, h)
}

func TestApplyBlockhashStateChangesNoopWithoutCode(t *testing.T) {
	world := newFakeWorldState()
	p := NewBlockhashProvider(&fakeHeaders{byHash: map[common.Hash]*types.Header{}}, world, postEIP2935Spec{})
	header := &types.Header{Number: 10, ParentHash: common.Hash{0x09}}
	p.ApplyBlockhashStateChanges(header)
	_, ok := world.GetState(HistoryStorageAddress, uint64ToHash(9%8192))
	require.False(t, ok)
}
