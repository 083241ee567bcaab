/*
Package pmap implements a persistent key/value map built on a Hash Array
Mapped Trie (HAMT). Persistent is defined as immutable and structurally
shared: every update returns a new Map value that shares all unmodified
interior nodes with the Map it was derived from.

The Trie uses a 32 node branching factor. A key is hashed to a 32 bit value
and that hash is consumed 5 bits at a time, from the least significant bits
up, to index the table at each level of the Trie. A key/value pair is stored
as high in the Trie as a unique location exists for it, so the Trie is only
as deep as it needs to be; at most seven levels for a 32 bit hash. Two keys
whose full 32 bit hashes are equal share a collision node that holds their
entries in a flat list.

Writes follow the path-copy discipline: only the nodes on the path from the
root to the edited slot are copied, everything else is shared. A Map may
also be placed in a transient state with AsMutable or WithMutations; while
transient, nodes created within the current batch are edited in place under
an owner token, which makes bulk loading cheap without giving up the
persistent guarantee for any other Map value.
*/
package pmap
