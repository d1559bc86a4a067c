package tests

import (
	"path"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/require"
)

const totemsPath = "../internal/testcontracts/totems"

func deployTotemsContract(t *testing.T, e *neotest.Executor) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, totemsPath, path.Join(totemsPath, "config.yml"))
	e.DeployContract(t, c, nil)
	return c.Hash
}

// newTotemsInvoker deploys Totems notifier and mod contracts and returns
// invoker of the notifier along with the mod address.
func newTotemsInvoker(t *testing.T) (*neotest.ContractInvoker, util.Uint160) {
	e := newExecutor(t)
	modHash := deployModContract(t, e)
	totemsHash := deployTotemsContract(t, e)
	return e.CommitteeInvoker(totemsHash), modHash
}

func dispatched(t *testing.T, c *neotest.ContractInvoker) int64 {
	s, err := c.TestInvoke(t, "dispatched")
	require.NoError(t, err)
	return s.Pop().BigInt().Int64()
}

func TestTotems_Subscribe(t *testing.T) {
	c, modHash := newTotemsInvoker(t)

	c.InvokeFail(t, "mod does not handle created hook", "subscribe", c.Hash)
	c.InvokeFail(t, "mod does not handle created hook", "subscribe", randomAccount())
	c.InvokeFail(t, "invalid mod script hash", "subscribe", []byte{1, 2, 3})

	c.Invoke(t, nil, "subscribe", modHash)
	c.InvokeFail(t, "mod is already subscribed", "subscribe", modHash)
}

func TestTotems_NoSubscribers(t *testing.T) {
	c, _ := newTotemsInvoker(t)

	c.Invoke(t, nil, "create", randomAccount(), symbolArg(t, "4,TOK"))
	c.Invoke(t, nil, "burn", randomAccount(), assetArg(t, "1.0000 TOK"), "")
	require.EqualValues(t, 0, dispatched(t, c))
}

func TestTotems_Dispatch(t *testing.T) {
	c, modHash := newTotemsInvoker(t)
	c.Invoke(t, nil, "subscribe", modHash)

	var (
		owner    = randomAccount()
		receiver = randomAccount()
		expected int64
	)

	for _, tc := range []struct {
		name   string
		method string
		args   []any
		calls  int64
	}{
		{"create", "create", []any{owner, symbolArg(t, "4,TOK")}, 1},
		{"mint", "mint", []any{modHash, owner, assetArg(t, "10.0000 TOK"), assetArg(t, "1.0000 EOS"), "memo"}, 2},
		{"burn", "burn", []any{owner, assetArg(t, "-5.0000 TOK"), ""}, 1},
		{"transfer", "transfer", []any{owner, receiver, assetArg(t, "1.0000 TOK"), "gift"}, 1},
		{"open", "open", []any{owner, symbolArg(t, "4,TOK"), receiver}, 1},
		{"close", "close", []any{owner, symbolArg(t, "4,TOK")}, 1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			h := c.Invoke(t, nil, tc.method, tc.args...)
			checkNoop(t, c, h, modHash)

			expected += tc.calls
			require.Equal(t, expected, dispatched(t, c))
		})
	}
}

func TestTotems_MintNotMinter(t *testing.T) {
	c, modHash := newTotemsInvoker(t)
	c.Invoke(t, nil, "subscribe", modHash)

	c.InvokeFail(t, "mod is not a minter", "mint",
		randomAccount(), randomAccount(), assetArg(t, "10.0000 TOK"), assetArg(t, "1.0000 EOS"), "memo")
	require.EqualValues(t, 0, dispatched(t, c))
}
