/*
Package registry owns the process-wide presence directory: the mapping from
logical user identity to the single active connection for that user.

Key behaviors:
  - Last writer wins: a later join for an identity silently replaces the
    earlier connection handle without closing it.
  - Handle-equality removal: a disconnect removes the directory entry only
    when the stored handle is the disconnecting connection, so a late
    disconnect of a superseded connection never evicts the newer one.
  - Snapshot broadcasts: the online set observed by any broadcast is a
    snapshot taken at the instant of broadcast, not transactionally
    consistent with concurrently fired events.

The raw mapping is never exposed; every mutation goes through the Hub's
operations under one mutex.
*/
package registry
