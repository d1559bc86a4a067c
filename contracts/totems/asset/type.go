// Package asset describes the token values passed between the Totems
// contract and its mods.
package asset

// Symbol is a ticker code with the decimal precision of its amounts, e.g.
// "4,TOK".
type Symbol struct {
	Code      string
	Precision int
}

// Asset is a signed amount in minimal units of its Symbol. "10.0000 TOK" is
// Asset{Amount: 100000, Symbol: Symbol{Code: "TOK", Precision: 4}}.
type Asset struct {
	Amount int
	Symbol Symbol
}
