package totems

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/totemsio/totems-mod/contracts/totems/asset"
	"github.com/totemsio/totems-mod/contracts/totems/totemsconst"
)

const (
	subscribersPrefix = "s"
	dispatchedKey     = "d"
)

// Subscribe attaches mod to every hook. The mod must expose all handlers.
func Subscribe(mod interop.Hash160) {
	if len(mod) != interop.Hash160Len {
		panic("invalid mod script hash")
	}

	hooks := []string{
		totemsconst.HookCreated,
		totemsconst.HookMint,
		totemsconst.HookBurn,
		totemsconst.HookTransfer,
		totemsconst.HookOpen,
		totemsconst.HookClose,
	}
	for _, hook := range hooks {
		if !management.HasMethod(mod, totemsconst.HookMethod(hook), totemsconst.HookParams(hook)) {
			panic("mod does not handle " + hook + " hook")
		}
	}

	ctx := storage.GetContext()
	key := append([]byte(subscribersPrefix), mod...)
	if storage.Get(ctx, key) != nil {
		panic("mod is already subscribed")
	}

	storage.Put(ctx, key, []byte{})
}

// Create notifies subscribed mods about a new totem.
func Create(creator interop.Hash160, ticker asset.Symbol) {
	ctx := storage.GetContext()
	for _, mod := range subscribers(ctx) {
		contract.Call(mod, totemsconst.CreatedNotify, contract.All, creator, ticker)
		countDispatch(ctx)
	}
}

// Mint calls the mint action of mod and notifies subscribed mods.
func Mint(mod, minter interop.Hash160, quantity, payment asset.Asset, memo string) {
	if !management.HasMethod(mod, totemsconst.MintAction, totemsconst.MintParams) {
		panic("mod is not a minter")
	}

	ctx := storage.GetContext()
	contract.Call(mod, totemsconst.MintAction, contract.All, mod, minter, quantity, payment, memo)
	countDispatch(ctx)

	for _, sub := range subscribers(ctx) {
		contract.Call(sub, totemsconst.MintNotify, contract.All, mod, minter, quantity, payment, memo)
		countDispatch(ctx)
	}
}

// Burn notifies subscribed mods about burnt totems.
func Burn(owner interop.Hash160, quantity asset.Asset, memo string) {
	ctx := storage.GetContext()
	for _, mod := range subscribers(ctx) {
		contract.Call(mod, totemsconst.BurnNotify, contract.All, owner, quantity, memo)
		countDispatch(ctx)
	}
}

// Transfer notifies subscribed mods about transferred totems.
func Transfer(from, to interop.Hash160, quantity asset.Asset, memo string) {
	ctx := storage.GetContext()
	for _, mod := range subscribers(ctx) {
		contract.Call(mod, totemsconst.TransferNotify, contract.All, from, to, quantity, memo)
		countDispatch(ctx)
	}
}

// Open notifies subscribed mods about an opened balance row.
func Open(owner interop.Hash160, ticker asset.Symbol, ramPayer interop.Hash160) {
	ctx := storage.GetContext()
	for _, mod := range subscribers(ctx) {
		contract.Call(mod, totemsconst.OpenNotify, contract.All, owner, ticker, ramPayer)
		countDispatch(ctx)
	}
}

// Close notifies subscribed mods about a closed balance row.
func Close(owner interop.Hash160, ticker asset.Symbol) {
	ctx := storage.GetContext()
	for _, mod := range subscribers(ctx) {
		contract.Call(mod, totemsconst.CloseNotify, contract.All, owner, ticker)
		countDispatch(ctx)
	}
}

// Dispatched returns the number of mod calls made so far.
func Dispatched() int {
	val := storage.Get(storage.GetReadOnlyContext(), dispatchedKey)
	if val == nil {
		return 0
	}
	return val.(int)
}

func subscribers(ctx storage.Context) []interop.Hash160 {
	res := []interop.Hash160{}

	it := storage.Find(ctx, []byte(subscribersPrefix), storage.KeysOnly|storage.RemovePrefix)
	for iterator.Next(it) {
		res = append(res, iterator.Value(it).(interop.Hash160))
	}

	return res
}

func countDispatch(ctx storage.Context) {
	n := 0
	if val := storage.Get(ctx, dispatchedKey); val != nil {
		n = val.(int)
	}
	storage.Put(ctx, dispatchedKey, n+1)
}
