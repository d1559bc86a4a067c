/*
Package mod implements a Totems mod contract.

A mod is a companion contract attached to totems through the hooks of the
Totems contract. Totems calls the mod's `mint` action when a totem for which
the mod is a minter is being minted, and calls the notification handlers of
every mod subscribed to the hook when a totem is created, minted, burned or
transferred, and when a balance row of a totem is opened or closed.

This mod reacts to nothing: every handler accepts any arguments from any
caller and returns without reading or changing state.

# Contract notifications

Mod contract does not produce notifications to process.
*/
package mod

/*
Contract storage model.

# Summary
The contract does not use storage.
*/
