package schema

// Server is a row of the servers table.
type Server struct {
	Name string `gorm:"column:name;type:varchar"`
	IP   string `gorm:"column:ip;type:varchar"`
	Port uint32 `gorm:"column:port;type:int"`
}

func (Server) TableName() string {
	return "servers"
}

// Character is the part of charinfo the game database reads.
type Character struct {
	ID   uint64 `gorm:"primaryKey;column:id;type:int"`
	Name string `gorm:"column:name;type:varchar"`
}

func (Character) TableName() string {
	return "charinfo"
}

// Friend is one unordered friendship pair. BestFriend holds a gamedb.FriendStatus.
type Friend struct {
	PlayerID   uint64 `gorm:"column:player_id;type:int"`
	FriendID   uint64 `gorm:"column:friend_id;type:int"`
	BestFriend int    `gorm:"column:best_friend;type:int"`
}

func (Friend) TableName() string {
	return "friends"
}

// Models lists the tables the game database depends on.
func Models() []any {
	return []any{Server{}, Character{}, Friend{}}
}
