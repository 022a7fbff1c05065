package mysqldb

const (
	queryMasterInfo = "SELECT ip, port FROM servers WHERE name='master' LIMIT 1;"

	queryApprovedNames = "SELECT name FROM charinfo;"

	// queryFriendsList takes the character ID three times. Each row of friends is
	// an unordered pair, so the CASE picks whichever side is not the character.
	queryFriendsList = `
		SELECT fr.requested_player, best_friend, ci.name FROM
		(
			SELECT CASE
			WHEN player_id = ? THEN friend_id
			WHEN friend_id = ? THEN player_id
			END AS requested_player, best_friend FROM friends
		) AS fr
		JOIN charinfo AS ci ON ci.id = fr.requested_player
		WHERE fr.requested_player IS NOT NULL AND fr.requested_player != ?;`

	queryCharacterExists = "SELECT name from charinfo where name = ?;"
)
