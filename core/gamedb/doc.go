// Package gamedb defines the game database contract and the values its queries return.
//
// GameDatabase abstracts connection lifecycle, statement creation, transaction
// controls and the fixed set of queries the game servers rely on. The MySQL
// backend lives in core/gamedb/mysqldb; core/gamedb/mocks provides a testify
// mock for callers.
//
// # Absent Results
//
// A query that matches nothing returns a nil result with a nil error. A friends
// list is never an empty slice: a character without friends gets nil.
//
// # Friendship Status
//
// friends.best_friend holds a FriendStatus:
//
//	0  friends
//	1  left side requested best friend
//	2  right side requested best friend
//	3  both accepted
//
// Only 3 marks a best friend, for both characters of the pair.
//
// # Concurrency
//
// Implementations hold a single connection and no locks. Wrap a shared instance
// with Synchronized:
//
//	var mu sync.Mutex
//	db := gamedb.Synchronized(mysqldb.New(exec, logg), &mu)
//	master, err := db.GetMasterInfo(ctx)
package gamedb
