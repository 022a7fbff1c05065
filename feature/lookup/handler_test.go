package lookup

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"game-database/core/gamedb"
	"game-database/core/gamedb/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) (*fiber.App, *mocks.GameDatabase) {
	app := fiber.New()
	db := new(mocks.GameDatabase)
	feature := NewFeature(db, zap.NewNop())
	require.NoError(t, feature.Load(app))
	return app, db
}

func decode(t *testing.T, body io.Reader, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(body).Decode(v))
}

func TestHandleMasterInfo(t *testing.T) {
	t.Run("Registered", func(t *testing.T) {
		app, db := setupTestApp(t)
		db.On("GetMasterInfo", mock.Anything).Return(&gamedb.MasterInfo{IP: "10.0.0.5", Port: 3001}, nil)

		resp, err := app.Test(httptest.NewRequest("GET", "/master", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var body gamedb.MasterInfo
		decode(t, resp.Body, &body)
		assert.Equal(t, gamedb.MasterInfo{IP: "10.0.0.5", Port: 3001}, body)
	})

	t.Run("Absent", func(t *testing.T) {
		app, db := setupTestApp(t)
		db.On("GetMasterInfo", mock.Anything).Return(nil, nil)

		resp, err := app.Test(httptest.NewRequest("GET", "/master", nil))
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
	})

	t.Run("Engine Failure", func(t *testing.T) {
		app, db := setupTestApp(t)
		db.On("GetMasterInfo", mock.Anything).Return(nil, errors.New("Lost connection to MySQL server"))

		resp, err := app.Test(httptest.NewRequest("GET", "/master", nil))
		require.NoError(t, err)
		assert.Equal(t, 500, resp.StatusCode)

		var body map[string]string
		decode(t, resp.Body, &body)
		assert.Equal(t, "Lost connection to MySQL server", body["error"])
	})
}

func TestHandleApprovedNames(t *testing.T) {
	app, db := setupTestApp(t)
	db.On("GetApprovedCharacterNames", mock.Anything).Return(&gamedb.ApprovedNames{Names: []string{"Alpha", "Beta"}}, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/characters/names", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body gamedb.ApprovedNames
	decode(t, resp.Body, &body)
	assert.Equal(t, []string{"Alpha", "Beta"}, body.Names)
	db.AssertNotCalled(t, "DoesCharacterExist", mock.Anything, mock.Anything)
}

func TestHandleCharacterExists(t *testing.T) {
	app, db := setupTestApp(t)
	db.On("DoesCharacterExist", mock.Anything, "Alpha").Return(true, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/characters/Alpha/exists", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	decode(t, resp.Body, &body)
	assert.Equal(t, "Alpha", body["name"])
	assert.Equal(t, true, body["exists"])
}

func TestHandleFriendsList(t *testing.T) {
	t.Run("Friends", func(t *testing.T) {
		app, db := setupTestApp(t)
		db.On("GetFriendsList", mock.Anything, uint32(42)).Return(&gamedb.FriendsList{
			Friends: []gamedb.FriendData{{FriendID: 7, IsBestFriend: true, FriendName: "Beta"}},
		}, nil)

		resp, err := app.Test(httptest.NewRequest("GET", "/friends/42", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var body gamedb.FriendsList
		decode(t, resp.Body, &body)
		require.Len(t, body.Friends, 1)
		assert.True(t, body.Friends[0].IsBestFriend)
	})

	t.Run("No Friends", func(t *testing.T) {
		app, db := setupTestApp(t)
		db.On("GetFriendsList", mock.Anything, uint32(42)).Return(nil, nil)

		resp, err := app.Test(httptest.NewRequest("GET", "/friends/42", nil))
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
	})

	t.Run("Invalid ID", func(t *testing.T) {
		app, db := setupTestApp(t)

		for _, id := range []string{"abc", "-1", "4294967296"} {
			resp, err := app.Test(httptest.NewRequest("GET", "/friends/"+id, nil))
			require.NoError(t, err)
			assert.Equal(t, 400, resp.StatusCode, id)
		}
		db.AssertNotCalled(t, "GetFriendsList", mock.Anything, mock.Anything)
	})
}
