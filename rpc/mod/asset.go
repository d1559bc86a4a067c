package mod

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/encoding/fixedn"
)

const (
	// MaxPrecision is the largest number of decimal places a Symbol may have.
	MaxPrecision = 18

	maxCodeLen = 7
)

var (
	// ErrInvalidSymbol is returned by ParseSymbol for malformed symbols.
	ErrInvalidSymbol = errors.New("invalid symbol")

	// ErrInvalidAsset is returned by ParseAsset for malformed assets.
	ErrInvalidAsset = errors.New("invalid asset")
)

// Symbol is an off-chain representation of the totem ticker passed to mod
// handlers.
type Symbol struct {
	Code      string
	Precision int
}

// Asset is an off-chain representation of the totem amount passed to mod
// handlers. Amount is measured in minimal units of the Symbol.
type Asset struct {
	Amount *big.Int
	Symbol Symbol
}

// ParseSymbol parses "<precision>,<code>" form, e.g. "4,TOK".
func ParseSymbol(s string) (Symbol, error) {
	precStr, code, ok := strings.Cut(s, ",")
	if !ok {
		return Symbol{}, fmt.Errorf("%w: missing precision separator in %q", ErrInvalidSymbol, s)
	}

	if !isNumber(precStr) {
		return Symbol{}, fmt.Errorf("%w: malformed precision %q", ErrInvalidSymbol, precStr)
	}

	prec, err := strconv.Atoi(precStr)
	if err != nil {
		return Symbol{}, fmt.Errorf("%w: precision %q: %v", ErrInvalidSymbol, precStr, err)
	}
	if prec < 0 || prec > MaxPrecision {
		return Symbol{}, fmt.Errorf("%w: precision %d out of [0, %d]", ErrInvalidSymbol, prec, MaxPrecision)
	}

	if err := checkCode(code); err != nil {
		return Symbol{}, fmt.Errorf("%w: %v", ErrInvalidSymbol, err)
	}

	return Symbol{Code: code, Precision: prec}, nil
}

// String implements fmt.Stringer.
func (s Symbol) String() string {
	return strconv.Itoa(s.Precision) + "," + s.Code
}

// Params returns the Symbol as a contract call argument.
func (s Symbol) Params() []any {
	return []any{s.Code, int64(s.Precision)}
}

// ParseAsset parses "<amount> <code>" form, e.g. "10.0000 TOK" or
// "-5.0000 TOK". The number of fractional digits defines the precision.
// Leading zeros of the integer part and negative zero are rejected, so the
// result always formats back to s.
func ParseAsset(s string) (Asset, error) {
	amount, code, ok := strings.Cut(s, " ")
	if !ok {
		return Asset{}, fmt.Errorf("%w: missing symbol in %q", ErrInvalidAsset, s)
	}

	if err := checkCode(code); err != nil {
		return Asset{}, fmt.Errorf("%w: %v", ErrInvalidAsset, err)
	}

	negative := strings.HasPrefix(amount, "-")
	if negative {
		amount = amount[1:]
	}

	intPart, frac, hasPoint := strings.Cut(amount, ".")
	if !isNumber(intPart) || (hasPoint && !isDigits(frac)) {
		return Asset{}, fmt.Errorf("%w: malformed amount in %q", ErrInvalidAsset, s)
	}
	if len(frac) > MaxPrecision {
		return Asset{}, fmt.Errorf("%w: precision %d exceeds %d", ErrInvalidAsset, len(frac), MaxPrecision)
	}

	v, err := fixedn.FromString(amount, len(frac))
	if err != nil {
		return Asset{}, fmt.Errorf("%w: %v", ErrInvalidAsset, err)
	}
	if negative {
		if v.Sign() == 0 {
			return Asset{}, fmt.Errorf("%w: negative zero in %q", ErrInvalidAsset, s)
		}
		v.Neg(v)
	}

	return Asset{
		Amount: v,
		Symbol: Symbol{Code: code, Precision: len(frac)},
	}, nil
}

// String implements fmt.Stringer. Nil Amount is formatted as zero.
func (a Asset) String() string {
	amount := a.Amount
	if amount == nil {
		amount = new(big.Int)
	}

	prec := a.Symbol.Precision
	if prec < 0 {
		prec = 0
	}

	unit := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(prec)), nil)
	q, r := new(big.Int).QuoRem(new(big.Int).Abs(amount), unit, new(big.Int))

	var sb strings.Builder
	if amount.Sign() < 0 {
		sb.WriteByte('-')
	}
	sb.WriteString(q.String())
	if prec > 0 {
		frac := r.String()
		sb.WriteByte('.')
		sb.WriteString(strings.Repeat("0", prec-len(frac)))
		sb.WriteString(frac)
	}
	sb.WriteByte(' ')
	sb.WriteString(a.Symbol.Code)

	return sb.String()
}

// Params returns the Asset as a contract call argument. Nil Amount is
// passed as zero.
func (a Asset) Params() []any {
	amount := a.Amount
	if amount == nil {
		amount = new(big.Int)
	}
	return []any{amount, a.Symbol.Params()}
}

func checkCode(code string) error {
	if len(code) == 0 || len(code) > maxCodeLen {
		return fmt.Errorf("code %q length is not in [1, %d]", code, maxCodeLen)
	}
	for i := 0; i < len(code); i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return fmt.Errorf("code %q contains non-uppercase letter", code)
		}
	}
	return nil
}

// isNumber checks that s is a decimal number without sign and leading zeros.
func isNumber(s string) bool {
	return isDigits(s) && (s == "0" || s[0] != '0')
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
