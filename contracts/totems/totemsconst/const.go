// Package totemsconst holds the method names the Totems contract uses to
// reach its mods.
package totemsconst

// Notification handlers every mod exposes. The Totems contract calls them
// by these names on each mod subscribed to the corresponding hook.
const (
	CreatedNotify  = "onCreated"
	MintNotify     = "onMint"
	BurnNotify     = "onBurn"
	TransferNotify = "onTransfer"
	OpenNotify     = "onOpen"
	CloseNotify    = "onClose"
)

// MintAction is the action a minter mod exposes to the Totems contract.
const MintAction = "mint"

// Number of parameters of every mod entry point.
const (
	MintParams     = 5
	CreatedParams  = 2
	BurnParams     = 3
	TransferParams = 4
	OpenParams     = 3
	CloseParams    = 2
)

// Hooks a mod may be attached to in the Totems mods table.
const (
	HookCreated  = "created"
	HookMint     = "mint"
	HookBurn     = "burn"
	HookTransfer = "transfer"
	HookOpen     = "open"
	HookClose    = "close"
)

// HookMethod returns the handler name called for the hook. Empty string is
// returned for unknown hooks.
func HookMethod(hook string) string {
	switch hook {
	case HookCreated:
		return CreatedNotify
	case HookMint:
		return MintNotify
	case HookBurn:
		return BurnNotify
	case HookTransfer:
		return TransferNotify
	case HookOpen:
		return OpenNotify
	case HookClose:
		return CloseNotify
	default:
		return ""
	}
}

// HookParams returns the parameter count of the hook's handler or -1 for
// unknown hooks.
func HookParams(hook string) int {
	switch hook {
	case HookCreated:
		return CreatedParams
	case HookMint:
		return MintParams
	case HookBurn:
		return BurnParams
	case HookTransfer:
		return TransferParams
	case HookOpen:
		return OpenParams
	case HookClose:
		return CloseParams
	default:
		return -1
	}
}
