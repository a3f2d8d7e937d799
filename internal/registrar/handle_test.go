package registrar_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/favonia/regrobot/internal/api"
	"github.com/favonia/regrobot/internal/mocks"
	"github.com/favonia/regrobot/internal/poller"
	"github.com/favonia/regrobot/internal/pp"
	"github.com/favonia/regrobot/internal/registrar"
	"github.com/favonia/regrobot/internal/tree"
	"github.com/favonia/regrobot/internal/wire"
)

const mockDomain = "example.com"

func field(key string, v tree.Value) tree.Field { return tree.Field{Key: key, Value: v} }

func domainParams(fields ...tree.Field) tree.Value {
	return tree.Object(append([]tree.Field{field("domain", tree.String(mockDomain))}, fields...)...)
}

func ok(data tree.Value) wire.Response {
	return wire.Response{Code: "1000", Message: "Command completed successfully", Data: data}
}

func infoData(ns ...string) tree.Value {
	return tree.Object(
		field("domain", tree.String(mockDomain)),
		field("status", tree.String("ok")),
		field("exDate", tree.String("2027-03-01")),
		field("ns", tree.Strings(ns...)),
	)
}

type sleepCounter struct{ count int }

func (s *sleepCounter) sleep(context.Context, pp.PP, time.Duration) bool {
	s.count++
	return true
}

func newHandle(t *testing.T, caller api.Caller, maxAttempts int) (*registrar.Handle, *sleepCounter) {
	t.Helper()

	counter := &sleepCounter{count: 0}
	p := poller.New(caller, wire.DefaultCodes(), poller.Config{
		MaxAttempts: maxAttempts,
		Interval:    time.Second,
		Verbose:     false,
	}).WithSleeper(counter.sleep)

	h := registrar.New(caller, p, registrar.DefaultOptions())
	t.Cleanup(h.Close)

	return h, counter
}

func TestDefaultOptions(t *testing.T) {
	t.Parallel()

	require.Equal(t, registrar.Options{
		Codes:           wire.DefaultCodes(),
		AuthFailedCode:  "2200",
		CacheExpiration: 6 * time.Hour,
	}, registrar.DefaultOptions())
}

func TestCall(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		code          string
		ok            bool
		prepareMockPP func(*mocks.MockPP)
	}{
		"success": {"1000", true, nil},
		"pending": {"1001", true, nil},
		"error": {
			"2303", false,
			func(m *mocks.MockPP) {
				m.EXPECT().Errorf(pp.EmojiError, "The command %q failed: %s", "contact.info", "2303 (oops)")
			},
		},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			mockCtrl := gomock.NewController(t)
			mockPP := mocks.NewMockPP(mockCtrl)
			if tc.prepareMockPP != nil {
				tc.prepareMockPP(mockPP)
			}
			mockCaller := mocks.NewMockCaller(mockCtrl)
			h, _ := newHandle(t, mockCaller, 3)

			resp := wire.Response{Code: tc.code, Message: "oops", Data: tree.Null()}
			mockCaller.EXPECT().Call(gomock.Any(), mockPP, "contact.info", tree.Null()).Return(resp, nil)

			got, err := h.Call(context.Background(), mockPP, "contact.info", tree.Null())
			require.Equal(t, resp, got)
			if tc.ok {
				require.NoError(t, err)
			} else {
				var resultErr *registrar.ResultError
				require.ErrorAs(t, err, &resultErr)
				require.Equal(t, "contact.info", resultErr.Command)
				require.Equal(t, "contact.info returned 2303 (oops)", err.Error())
			}
		})
	}
}

func TestCallAuthFailed(t *testing.T) {
	t.Parallel()

	mockCtrl := gomock.NewController(t)
	mockPP := mocks.NewMockPP(mockCtrl)
	mockCaller := mocks.NewMockCaller(mockCtrl)
	h, _ := newHandle(t, mockCaller, 3)

	resp := wire.Response{Code: "2200", Message: "Authentication error", Data: tree.Null()}
	gomock.InOrder(
		mockCaller.EXPECT().Call(gomock.Any(), mockPP, registrar.CommandDomainList, tree.Null()).Return(resp, nil),
		mockPP.EXPECT().Errorf(pp.EmojiUserError, "The registrar rejected the credentials: %s", "2200 (Authentication error)"),
		mockPP.EXPECT().Hintf(pp.HintAuthentication, gomock.Any()),
	)

	_, err := h.ListDomains(context.Background(), mockPP)
	require.ErrorIs(t, err, api.ErrAuthentication)
	var resultErr *registrar.ResultError
	require.ErrorAs(t, err, &resultErr)
	require.Equal(t, "2200", resultErr.Response.Code)
}

func TestPoll(t *testing.T) {
	t.Parallel()

	mockCtrl := gomock.NewController(t)
	mockPP := mocks.NewMockPP(mockCtrl)
	mockCaller := mocks.NewMockCaller(mockCtrl)
	h, counter := newHandle(t, mockCaller, 3)

	pending := wire.Response{Code: "1001", Message: "pending", Data: tree.Null()}
	gomock.InOrder(
		mockCaller.EXPECT().Call(gomock.Any(), mockPP, "domain.transfer", domainParams()).Return(pending, nil),
		mockCaller.EXPECT().Call(gomock.Any(), mockPP, "domain.transfer", domainParams()).Return(ok(tree.Null()), nil),
	)

	resp, err := h.Poll(context.Background(), mockPP, "domain.transfer", domainParams())
	require.NoError(t, err)
	require.Equal(t, ok(tree.Null()), resp)
	require.Equal(t, 1, counter.count)
}

func TestPollAuthFailed(t *testing.T) {
	t.Parallel()

	mockCtrl := gomock.NewController(t)
	mockPP := mocks.NewMockPP(mockCtrl)
	mockCaller := mocks.NewMockCaller(mockCtrl)
	h, counter := newHandle(t, mockCaller, 3)

	resp := wire.Response{Code: "2200", Message: "Authentication error", Data: tree.Null()}
	gomock.InOrder(
		mockCaller.EXPECT().Call(gomock.Any(), mockPP, "domain.transfer", domainParams()).Return(resp, nil),
		mockPP.EXPECT().Errorf(pp.EmojiUserError, "The registrar rejected the credentials: %s", gomock.Any()),
		mockPP.EXPECT().Hintf(pp.HintAuthentication, gomock.Any()),
	)

	_, err := h.Poll(context.Background(), mockPP, "domain.transfer", domainParams())
	require.ErrorIs(t, err, api.ErrAuthentication)
	require.Zero(t, counter.count)
}

func TestPollTimeout(t *testing.T) {
	t.Parallel()

	mockCtrl := gomock.NewController(t)
	mockPP := mocks.NewMockPP(mockCtrl)
	mockCaller := mocks.NewMockCaller(mockCtrl)
	h, counter := newHandle(t, mockCaller, 3)

	resp := wire.Response{Code: "2400", Message: "Command timed out", Data: tree.Null()}
	gomock.InOrder(
		mockCaller.EXPECT().Call(gomock.Any(), mockPP, "domain.transfer", domainParams()).Return(resp, nil),
		mockPP.EXPECT().Warningf(pp.EmojiTimeout, "The registrar gave up waiting for %q: %s", "domain.transfer", gomock.Any()),
	)

	got, err := h.Poll(context.Background(), mockPP, "domain.transfer", domainParams())
	require.ErrorIs(t, err, poller.ErrServerTimeout)
	require.ErrorIs(t, err, api.ErrTimeout)
	require.Equal(t, resp, got)
	require.Zero(t, counter.count)
}
