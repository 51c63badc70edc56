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

// BlobsSupport is the blob storage mode.
type BlobsSupport int

const (
	BlobsDisabled BlobsSupport = iota
	BlobsInMemory
	BlobsStorage
	BlobsStorageWithReorgs
)

// Config is a plain struct holding every pool tunable, applied as a single
// value rather than threaded through individual constructor arguments.
type Config struct {
	PeerNotificationThreshold  uint64
	MinBaseFeeThreshold        uint64
	Size                       int
	BlobsSupport               BlobsSupport
	PersistentBlobStorageSize  int
	BlobCacheSize              int
	InMemoryBlobPoolSize       int
	MaxPendingTxsPerSender     int
	MaxPendingBlobTxsPerSender int
	HashCacheSize              int

	GasLimit *uint64 // nil: no per-tx gas cap

	MaxTxSize     int
	MaxBlobTxSize int

	ProofsTranslationEnabled   bool
	ReportMinutes              *int
	AcceptTxWhenNotSynced      bool
	PersistentBroadcastEnabled bool
	CurrentBlobBaseFeeRequired bool
	MinBlobTxPriorityFee       uint64
}

// DefaultConfig returns the pool's default tunables.
func DefaultConfig() Config {
	return Config{
		PeerNotificationThreshold:  5,
		MinBaseFeeThreshold:        70,
		Size:                       2048,
		BlobsSupport:               BlobsStorageWithReorgs,
		PersistentBlobStorageSize:  16384,
		BlobCacheSize:              256,
		InMemoryBlobPoolSize:       512,
		MaxPendingTxsPerSender:     0,
		MaxPendingBlobTxsPerSender: 16,
		HashCacheSize:              524288,
		GasLimit:                   nil,
		MaxTxSize:                  131072,
		MaxBlobTxSize:              1048576,
		ProofsTranslationEnabled:   false,
		ReportMinutes:              nil,
		AcceptTxWhenNotSynced:      false,
		PersistentBroadcastEnabled: true,
		CurrentBlobBaseFeeRequired: true,
		MinBlobTxPriorityFee:       0,
	}
}
