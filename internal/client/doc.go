// SPDX-License-Identifier: Apache-2.0

// Package client wires the mirror-sync engine into a runnable process.
//
// It assembles configuration, logging, the cursor database, the collection
// client and one synchronizer per configured collection, then keeps the
// mirrors fresh with an initial full sync followed by a periodic background
// job.
package client
