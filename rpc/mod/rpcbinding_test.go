package mod

import (
	"errors"
	"math/big"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/stretchr/testify/require"
)

type call struct {
	contract util.Uint160
	method   string
	params   []any
}

type testActor struct {
	res   *result.Invoke
	err   error
	calls []call
}

func (a *testActor) Call(contract util.Uint160, method string, params ...any) (*result.Invoke, error) {
	a.calls = append(a.calls, call{contract, method, params})
	return a.res, a.err
}

func (a *testActor) MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error) {
	a.calls = append(a.calls, call{contract, method, params})
	return transaction.New([]byte{1}, 0), a.err
}

func (a *testActor) MakeRun([]byte) (*transaction.Transaction, error) {
	return nil, a.err
}

func (a *testActor) MakeUnsignedCall(contract util.Uint160, method string, _ []transaction.Attribute, params ...any) (*transaction.Transaction, error) {
	a.calls = append(a.calls, call{contract, method, params})
	return transaction.New([]byte{2}, 0), a.err
}

func (a *testActor) MakeUnsignedRun([]byte, []transaction.Attribute) (*transaction.Transaction, error) {
	return nil, a.err
}

func (a *testActor) SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error) {
	a.calls = append(a.calls, call{contract, method, params})
	return util.Uint256{1, 2, 3}, 42, a.err
}

func (a *testActor) SendRun([]byte) (util.Uint256, uint32, error) {
	return util.Uint256{}, 0, a.err
}

func (a *testActor) last(t *testing.T) call {
	require.NotEmpty(t, a.calls)
	return a.calls[len(a.calls)-1]
}

func TestReader_Version(t *testing.T) {
	hash := util.Uint160{9}
	ta := &testActor{res: &result.Invoke{
		State: vmstate.Halt.String(),
		Stack: []stackitem.Item{stackitem.Make(1_000)},
	}}

	v, err := NewReader(ta, hash).Version()
	require.NoError(t, err)
	require.Equal(t, big.NewInt(1_000), v)
	require.Equal(t, call{hash, "version", nil}, ta.last(t))

	ta.res = &result.Invoke{State: vmstate.Fault.String(), FaultException: "boom"}
	_, err = NewReader(ta, hash).Version()
	require.Error(t, err)

	ta.err = errors.New("connection lost")
	_, err = NewReader(ta, hash).Version()
	require.ErrorIs(t, err, ta.err)
}

func TestContract_Methods(t *testing.T) {
	var (
		hash   = util.Uint160{1}
		mod    = util.Uint160{2}
		minter = util.Uint160{3}
		ta     = new(testActor)
		c      = New(ta, hash)
	)

	quantity, err := ParseAsset("10.0000 TOK")
	require.NoError(t, err)
	payment, err := ParseAsset("1.0000 EOS")
	require.NoError(t, err)
	ticker, err := ParseSymbol("4,TOK")
	require.NoError(t, err)

	h, vub, err := c.Mint(mod, minter, quantity.Params(), payment.Params(), "memo")
	require.NoError(t, err)
	require.Equal(t, util.Uint256{1, 2, 3}, h)
	require.EqualValues(t, 42, vub)
	require.Equal(t, call{hash, "mint", []any{mod, minter, quantity.Params(), payment.Params(), "memo"}}, ta.last(t))

	_, err = c.MintTransaction(mod, minter, quantity.Params(), payment.Params(), "")
	require.NoError(t, err)
	require.Equal(t, "mint", ta.last(t).method)

	_, err = c.MintUnsigned(mod, minter, quantity.Params(), payment.Params(), "")
	require.NoError(t, err)
	require.Equal(t, "mint", ta.last(t).method)

	_, _, err = c.OnCreated(minter, ticker.Params())
	require.NoError(t, err)
	require.Equal(t, call{hash, "onCreated", []any{minter, ticker.Params()}}, ta.last(t))

	_, _, err = c.OnMint(mod, minter, quantity.Params(), payment.Params(), "memo")
	require.NoError(t, err)
	require.Equal(t, "onMint", ta.last(t).method)

	_, _, err = c.OnBurn(minter, quantity.Params(), "")
	require.NoError(t, err)
	require.Equal(t, call{hash, "onBurn", []any{minter, quantity.Params(), ""}}, ta.last(t))

	_, _, err = c.OnTransfer(mod, minter, quantity.Params(), "gift")
	require.NoError(t, err)
	require.Equal(t, call{hash, "onTransfer", []any{mod, minter, quantity.Params(), "gift"}}, ta.last(t))

	_, _, err = c.OnOpen(minter, ticker.Params(), mod)
	require.NoError(t, err)
	require.Equal(t, call{hash, "onOpen", []any{minter, ticker.Params(), mod}}, ta.last(t))

	_, _, err = c.OnClose(minter, ticker.Params())
	require.NoError(t, err)
	require.Equal(t, call{hash, "onClose", []any{minter, ticker.Params()}}, ta.last(t))

	_, err = c.UpdateUnsigned([]byte{1}, []byte{2}, nil)
	require.NoError(t, err)
	require.Equal(t, "update", ta.last(t).method)
}
