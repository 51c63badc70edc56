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

import "github.com/evmts/corechain/common"

// ForkChoice is the consensus-layer pointer triple.
type ForkChoice struct {
	Head      common.Hash
	Safe      common.Hash
	Finalized common.Hash
}

type GenesisInitialized struct {
	Hash common.Hash
}

type CanonicalHeadUpdated struct {
	Hash   common.Hash
	Number uint64
}

type ForkChoiceUpdated struct {
	ForkChoice ForkChoice
}

type BlockSuggested struct {
	Hash   common.Hash
	Number uint64
}

type BestSuggestedBlock struct {
	Hash   common.Hash
	Number uint64
}
