package mod

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/totemsio/totems-mod/common"
	"github.com/totemsio/totems-mod/contracts/totems/asset"
)

// nolint:unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	runtime.Log("mod contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(nefFile, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic(common.ErrUpdateAccessDenied)
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("mod contract updated")
}

// Mint is an action the Totems contract invokes on the minter mod of a totem
// when minter requests quantity of it paying payment. It does nothing.
func Mint(mod, minter interop.Hash160, quantity, payment asset.Asset, memo string) {
}

// OnCreated handles creation of the totem with the ticker by creator.
func OnCreated(creator interop.Hash160, ticker asset.Symbol) {
}

// OnMint handles minting of quantity to minter through the mod.
func OnMint(mod, minter interop.Hash160, quantity, payment asset.Asset, memo string) {
}

// OnBurn handles burning of owner's quantity.
func OnBurn(owner interop.Hash160, quantity asset.Asset, memo string) {
}

// OnTransfer handles transfer of quantity between accounts.
func OnTransfer(from, to interop.Hash160, quantity asset.Asset, memo string) {
}

// OnOpen handles opening of owner's balance row for the ticker, ramPayer
// pays for the row storage.
func OnOpen(owner interop.Hash160, ticker asset.Symbol, ramPayer interop.Hash160) {
}

// OnClose handles closing of owner's balance row for the ticker.
func OnClose(owner interop.Hash160, ticker asset.Symbol) {
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}
