package gamedb

// MasterInfo is the address of the registered master server.
type MasterInfo struct {
	IP   string `json:"ip"`
	Port uint32 `json:"port"`
}

// ApprovedNames holds every approved character name.
type ApprovedNames struct {
	Names []string `json:"names"`
}

// FriendData is one entry of a friends list.
type FriendData struct {
	FriendID     uint32 `json:"friend_id"`
	IsBestFriend bool   `json:"is_best_friend"`
	FriendName   string `json:"friend_name"`
}

// FriendsList holds the friends of one character.
type FriendsList struct {
	Friends []FriendData `json:"friends"`
}

// FriendStatus is the value of friends.best_friend. The numbering is fixed by
// the schema.
type FriendStatus int

const (
	FriendStatusNone           FriendStatus = 0
	FriendStatusLeftRequested  FriendStatus = 1
	FriendStatusRightRequested FriendStatus = 2
	FriendStatusBestFriends    FriendStatus = 3
)

// IsBestFriend reports whether both sides accepted the best-friend request.
func (s FriendStatus) IsBestFriend() bool {
	return s == FriendStatusBestFriends
}
