/*
Package common contains helpers shared by Totems mod contracts: version
control of contract updates and committee witness checks.

The package is compiled into contracts by the neo-go compiler, so it may use
only the interop API.
*/
package common
