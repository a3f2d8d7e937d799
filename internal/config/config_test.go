package config_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/favonia/regrobot/internal/auth"
	"github.com/favonia/regrobot/internal/config"
	"github.com/favonia/regrobot/internal/mocks"
	"github.com/favonia/regrobot/internal/poller"
	"github.com/favonia/regrobot/internal/pp"
	"github.com/favonia/regrobot/internal/wire"
)

//nolint:gochecknoglobals
var allKeys = []string{
	"REGISTRAR_ENDPOINT", "REGISTRAR_FORMAT", "REGISTRAR_USER", "REGISTRAR_PASSWORD", "REGISTRAR_PASSWORD_FILE",
	"REQUEST_TIMEOUT", "POLL_MAX_ATTEMPTS", "POLL_INTERVAL", "POLL_VERBOSE", "CACHE_EXPIRATION",
	"CODE_SUCCESS", "CODE_PENDING", "CODE_POLL_TIMEOUT", "CODE_AUTH_FAILED",
}

func TestDefault(t *testing.T) {
	t.Parallel()

	require.Equal(t, &config.Config{
		Endpoint:        "",
		Format:          wire.Flat,
		Credentials:     auth.Credentials{Identity: "", Secret: ""},
		RequestTimeout:  30 * time.Second,
		Poll:            poller.Config{MaxAttempts: 10, Interval: 5 * time.Second, Verbose: false},
		CacheExpiration: 6 * time.Hour,
		Codes:           wire.Codes{Success: "1000", Pending: "1001", PollTimeout: "2400"},
		AuthFailedCode:  "2200",
	}, config.Default())
}

//nolint:paralleltest // environment vars are global
func TestReadEnv(t *testing.T) {
	unset(t, allKeys...)
	store(t, "REGISTRAR_ENDPOINT", "https://api.registrar.example/robot")
	store(t, "REGISTRAR_FORMAT", "markup")
	store(t, "REGISTRAR_USER", "alice")
	store(t, "REGISTRAR_PASSWORD", "S3cret")
	store(t, "POLL_MAX_ATTEMPTS", "3")
	store(t, "POLL_VERBOSE", "true")
	store(t, "CODE_POLL_TIMEOUT", "2401")

	mockCtrl := gomock.NewController(t)
	mockPP := mocks.NewMockPP(mockCtrl)
	innerMockPP := mocks.NewMockPP(mockCtrl)
	gomock.InOrder(
		mockPP.EXPECT().IsShowing(pp.Info).Return(true),
		mockPP.EXPECT().Infof(pp.EmojiEnvVars, "Reading settings . . ."),
		mockPP.EXPECT().Indent().Return(innerMockPP),
	)
	innerMockPP.EXPECT().Infof(pp.EmojiBullet, "Use default %s=%v", "REQUEST_TIMEOUT", 30*time.Second)
	innerMockPP.EXPECT().Infof(pp.EmojiBullet, "Use default %s=%v", "POLL_INTERVAL", 5*time.Second)
	innerMockPP.EXPECT().Infof(pp.EmojiBullet, "Use default %s=%v", "CACHE_EXPIRATION", 6*time.Hour)
	innerMockPP.EXPECT().Infof(pp.EmojiBullet, "Use default %s=%s", "CODE_SUCCESS", "1000")
	innerMockPP.EXPECT().Infof(pp.EmojiBullet, "Use default %s=%s", "CODE_PENDING", "1001")
	innerMockPP.EXPECT().Infof(pp.EmojiBullet, "Use default %s=%s", "CODE_AUTH_FAILED", "2200")

	c := config.Default()
	require.True(t, c.ReadEnv(mockPP))

	expected := config.Default()
	expected.Endpoint = "https://api.registrar.example/robot"
	expected.Format = wire.Markup
	expected.Credentials = auth.Credentials{Identity: "alice", Secret: "S3cret"}
	expected.Poll.MaxAttempts = 3
	expected.Poll.Verbose = true
	expected.Codes.PollTimeout = "2401"
	require.Equal(t, expected, c)
}

//nolint:paralleltest // environment vars are global
func TestReadEnvFailing(t *testing.T) {
	unset(t, allKeys...)

	mockCtrl := gomock.NewController(t)
	mockPP := mocks.NewMockPP(mockCtrl)
	gomock.InOrder(
		mockPP.EXPECT().IsShowing(pp.Info).Return(false),
		mockPP.EXPECT().Errorf(pp.EmojiUserError, "%s is not set", "REGISTRAR_ENDPOINT"),
	)

	require.False(t, config.Default().ReadEnv(mockPP))
}

func TestPrint(t *testing.T) {
	t.Parallel()

	c := config.Default()
	c.Endpoint = "https://api.registrar.example/robot"
	c.Credentials = auth.Credentials{Identity: "alice", Secret: "S3cret"}

	var buf strings.Builder
	c.Print(pp.New(&buf).SetEmoji(false))

	require.Equal(t, `Current settings:
   Registrar:
      Endpoint:                https://api.registrar.example/robot
      Wire format:             flat
      User:                    alice (secret set)
   Timeouts and polling:
      Request timeout:         30s
      Poll attempts:           10
      Poll interval:           5s
      Show poll progress?      false
      Cache expiration:        6h0m0s
   Result codes:
      Success:                 1000
      Pending:                 1001
      Poll timeout:            2400
      Authentication failed:   2200
`, buf.String())
	require.NotContains(t, buf.String(), "S3cret")
}

func TestPrintCacheDisabled(t *testing.T) {
	t.Parallel()

	c := config.Default()
	c.CacheExpiration = 0

	var buf strings.Builder
	c.Print(pp.New(&buf).SetEmoji(false))
	require.Contains(t, buf.String(), "      Cache expiration:        0s (caching disabled)\n")
}

func TestPrintHidden(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	config.Default().Print(pp.New(&buf).SetVerbosity(pp.Notice))
	require.Empty(t, buf.String())
}

func TestNewHandle(t *testing.T) {
	t.Parallel()

	mockCtrl := gomock.NewController(t)
	mockPP := mocks.NewMockPP(mockCtrl)

	c := config.Default()
	c.Endpoint = "https://api.registrar.example/robot"
	c.Credentials = auth.Credentials{Identity: "alice", Secret: "S3cret"}

	client, ok := c.NewClient(mockPP)
	require.True(t, ok)
	require.Equal(t, "https://api.registrar.example/robot/json", client.URL())
	require.Equal(t, c.Poll, c.NewPoller(client).Config())

	h, ok := c.NewHandle(mockPP)
	require.True(t, ok)
	h.Close()
}

func TestNewHandleInvalid(t *testing.T) {
	t.Parallel()

	mockCtrl := gomock.NewController(t)
	mockPP := mocks.NewMockPP(mockCtrl)
	mockPP.EXPECT().Errorf(pp.EmojiUserError, "The registrar endpoint %q does not look like a valid base URL", "robot")
	mockPP.EXPECT().Errorf(pp.EmojiUserError, `A valid example is "https://api.registrar.example/robot"`)

	c := config.Default()
	c.Endpoint = "robot"

	h, ok := c.NewHandle(mockPP)
	require.False(t, ok)
	require.Nil(t, h)
}
