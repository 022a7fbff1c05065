package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

// queryCmd groups the domain lookups.
var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Run a game database lookup",
	Long:  `Runs one of the fixed game database queries and prints the result as JSON.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var queryMasterCmd = &cobra.Command{
	Use:   "master",
	Short: "Print the master server address",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(func(rt *runtime) (any, error) {
			info, err := rt.db.GetMasterInfo(cmd.Context())
			if err != nil || info == nil {
				return nil, err
			}
			return info, nil
		})
	},
}

var queryNamesCmd = &cobra.Command{
	Use:   "names",
	Short: "Print all character names",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(func(rt *runtime) (any, error) {
			names, err := rt.db.GetApprovedCharacterNames(cmd.Context())
			if err != nil || names == nil {
				return nil, err
			}
			return names, nil
		})
	},
}

var queryFriendsCmd = &cobra.Command{
	Use:   "friends <character-id>",
	Short: "Print the friends list of a character",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid character id %q: %w", args[0], err)
		}
		return runQuery(func(rt *runtime) (any, error) {
			friends, err := rt.db.GetFriendsList(cmd.Context(), uint32(id))
			if err != nil || friends == nil {
				return nil, err
			}
			return friends, nil
		})
	},
}

var queryExistsCmd = &cobra.Command{
	Use:   "exists <name>",
	Short: "Check whether a character name is taken",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(func(rt *runtime) (any, error) {
			exists, err := rt.db.DoesCharacterExist(cmd.Context(), args[0])
			if err != nil {
				return nil, err
			}
			return map[string]any{"name": args[0], "exists": exists}, nil
		})
	},
}

// runQuery prints the lookup result as indented JSON. A nil result prints null.
func runQuery(fn func(rt *runtime) (any, error)) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer rt.close("query")

	result, err := fn(rt)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func init() {
	RootCmd.AddCommand(queryCmd)
	queryCmd.AddCommand(queryMasterCmd)
	queryCmd.AddCommand(queryNamesCmd)
	queryCmd.AddCommand(queryFriendsCmd)
	queryCmd.AddCommand(queryExistsCmd)
}
