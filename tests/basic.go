package tests

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
	modrpc "github.com/totemsio/totems-mod/rpc/mod"
)

func newExecutor(t *testing.T) *neotest.Executor {
	bc, acc := chain.NewSingle(t)
	return neotest.NewExecutor(t, bc, acc, acc)
}

// assetArg converts textual asset into a contract call argument.
func assetArg(tb testing.TB, s string) []any {
	a, err := modrpc.ParseAsset(s)
	require.NoError(tb, err)
	return a.Params()
}

// symbolArg converts textual symbol into a contract call argument.
func symbolArg(tb testing.TB, s string) []any {
	sym, err := modrpc.ParseSymbol(s)
	require.NoError(tb, err)
	return sym.Params()
}

// randomAccount returns random script hash not bound to any signer.
func randomAccount() util.Uint160 {
	var h util.Uint160
	copy(h[:], randomBytes(util.Uint160Size))
	return h
}

// checkNoop checks that the transaction invoking a void method halted
// without producing any notification and that the mod has no storage.
func checkNoop(tb testing.TB, c *neotest.ContractInvoker, h util.Uint256, mod util.Uint160) {
	aer := c.CheckHalt(tb, h, stackitem.Null{})
	require.Empty(tb, aer.Events)
	checkNoStorage(tb, c.Executor, mod)
}

// checkNoStorage checks that the contract has no storage items.
func checkNoStorage(tb testing.TB, e *neotest.Executor, contract util.Uint160) {
	cs := e.Chain.GetContractState(contract)
	require.NotNil(tb, cs, "contract %s is not deployed", contract.StringLE())

	var n int
	e.Chain.SeekStorage(cs.ID, nil, func(k, v []byte) bool {
		n++
		return true
	})
	require.Zero(tb, n, "unexpected storage items")
}
