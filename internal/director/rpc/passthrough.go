package rpc

// passthroughMethods is the fixed table of chain read-only methods
// forwarded verbatim to the chain RPC, mirroring
// original_source/director-rpc/src/rpc/passthrough.rs. Each is forwarded
// with its raw params and returns the chain's raw result unchanged, so no
// typed response shape is required to stay byte-equivalent.
var passthroughMethods = map[string]bool{
	"getAccountInfo":                    true,
	"getBalance":                        true,
	"getBlock":                          true,
	"getBlockCommitment":                true,
	"getBlockHeight":                    true,
	"getBlockProduction":                true,
	"getBlockTime":                      true,
	"getBlocks":                         true,
	"getBlocksWithLimit":                true,
	"getClusterNodes":                   true,
	"getEpochInfo":                      true,
	"getEpochSchedule":                  true,
	"getFeeForMessage":                  true,
	"getFirstAvailableBlock":            true,
	"getGenesisHash":                    true,
	"getHealth":                         true,
	"getHighestSnapshotSlot":            true,
	"getIdentity":                       true,
	"getInflationGovernor":              true,
	"getInflationRate":                  true,
	"getInflationReward":                true,
	"getLargestAccounts":                true,
	"getLatestBlockhash":                true,
	"getLeaderSchedule":                 true,
	"getMaxRetransmitSlot":              true,
	"getMaxShredInsertSlot":             true,
	"getMinimumBalanceForRentExemption": true,
	"getMultipleAccounts":               true,
	"getProgramAccounts":                true,
	"getRecentPerformanceSamples":       true,
	"getRecentPrioritizationFees":       true,
	"getSignatureStatuses":              true,
	"getSignaturesForAddress":           true,
	"getSlot":                           true,
	"getSlotLeader":                     true,
	"getSlotLeaders":                    true,
	"getStakeActivation":                true,
	"getStakeMinimumDelegation":         true,
	"getSupply":                         true,
	"getTokenAccountBalance":            true,
	"getTokenAccountsByDelegate":        true,
	"getTokenAccountsByOwner":           true,
	"getTokenLargestAccounts":           true,
	"getTokenSupply":                    true,
	"getTransactionCount":               true,
	"getVersion":                        true,
	"getVoteAccounts":                   true,
	"isBlockhashValid":                  true,
	"minimumLedgerSlot":                 true,
	"requestAirdrop":                    true,
	"simulateTransaction":               true,
}

func isPassthroughMethod(method string) bool {
	return passthroughMethods[method]
}
