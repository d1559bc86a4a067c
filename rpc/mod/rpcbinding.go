// Package mod contains RPC wrappers for Totems Mod contract.
package mod

import (
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"math/big"
)

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// Mint creates a transaction invoking `mint` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Mint(mod util.Uint160, minter util.Uint160, quantity []any, payment []any, memo string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "mint", mod, minter, quantity, payment, memo)
}

// MintTransaction creates a transaction invoking `mint` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) MintTransaction(mod util.Uint160, minter util.Uint160, quantity []any, payment []any, memo string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "mint", mod, minter, quantity, payment, memo)
}

// MintUnsigned creates a transaction invoking `mint` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) MintUnsigned(mod util.Uint160, minter util.Uint160, quantity []any, payment []any, memo string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "mint", nil, mod, minter, quantity, payment, memo)
}

// OnBurn creates a transaction invoking `onBurn` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) OnBurn(owner util.Uint160, quantity []any, memo string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "onBurn", owner, quantity, memo)
}

// OnBurnTransaction creates a transaction invoking `onBurn` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) OnBurnTransaction(owner util.Uint160, quantity []any, memo string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "onBurn", owner, quantity, memo)
}

// OnBurnUnsigned creates a transaction invoking `onBurn` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) OnBurnUnsigned(owner util.Uint160, quantity []any, memo string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "onBurn", nil, owner, quantity, memo)
}

// OnClose creates a transaction invoking `onClose` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) OnClose(owner util.Uint160, ticker []any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "onClose", owner, ticker)
}

// OnCloseTransaction creates a transaction invoking `onClose` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) OnCloseTransaction(owner util.Uint160, ticker []any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "onClose", owner, ticker)
}

// OnCloseUnsigned creates a transaction invoking `onClose` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) OnCloseUnsigned(owner util.Uint160, ticker []any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "onClose", nil, owner, ticker)
}

// OnCreated creates a transaction invoking `onCreated` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) OnCreated(creator util.Uint160, ticker []any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "onCreated", creator, ticker)
}

// OnCreatedTransaction creates a transaction invoking `onCreated` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) OnCreatedTransaction(creator util.Uint160, ticker []any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "onCreated", creator, ticker)
}

// OnCreatedUnsigned creates a transaction invoking `onCreated` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) OnCreatedUnsigned(creator util.Uint160, ticker []any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "onCreated", nil, creator, ticker)
}

// OnMint creates a transaction invoking `onMint` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) OnMint(mod util.Uint160, minter util.Uint160, quantity []any, payment []any, memo string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "onMint", mod, minter, quantity, payment, memo)
}

// OnMintTransaction creates a transaction invoking `onMint` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) OnMintTransaction(mod util.Uint160, minter util.Uint160, quantity []any, payment []any, memo string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "onMint", mod, minter, quantity, payment, memo)
}

// OnMintUnsigned creates a transaction invoking `onMint` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) OnMintUnsigned(mod util.Uint160, minter util.Uint160, quantity []any, payment []any, memo string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "onMint", nil, mod, minter, quantity, payment, memo)
}

// OnOpen creates a transaction invoking `onOpen` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) OnOpen(owner util.Uint160, ticker []any, ramPayer util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "onOpen", owner, ticker, ramPayer)
}

// OnOpenTransaction creates a transaction invoking `onOpen` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) OnOpenTransaction(owner util.Uint160, ticker []any, ramPayer util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "onOpen", owner, ticker, ramPayer)
}

// OnOpenUnsigned creates a transaction invoking `onOpen` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) OnOpenUnsigned(owner util.Uint160, ticker []any, ramPayer util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "onOpen", nil, owner, ticker, ramPayer)
}

// OnTransfer creates a transaction invoking `onTransfer` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) OnTransfer(from util.Uint160, to util.Uint160, quantity []any, memo string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "onTransfer", from, to, quantity, memo)
}

// OnTransferTransaction creates a transaction invoking `onTransfer` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) OnTransferTransaction(from util.Uint160, to util.Uint160, quantity []any, memo string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "onTransfer", from, to, quantity, memo)
}

// OnTransferUnsigned creates a transaction invoking `onTransfer` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) OnTransferUnsigned(from util.Uint160, to util.Uint160, quantity []any, memo string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "onTransfer", nil, from, to, quantity, memo)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(nefFile []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", nefFile, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(nefFile []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", nefFile, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(nefFile []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, nefFile, manifest, data)
}
