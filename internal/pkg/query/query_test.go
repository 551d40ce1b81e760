package query

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSentinel(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"all", true},
		{" all ", true},
		{"pending", false},
		{"0", false},
		{"allowed", false},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, Sentinel(tc.value), "value %q", tc.value)
	}
}

func TestSetStripsSentinels(t *testing.T) {
	v := url.Values{}
	Set(v, "status", "all")
	Set(v, "transaction_type", "")
	Set(v, "search", "  rent  ")
	require.Equal(t, "search=rent", v.Encode())
}

func TestSetPage(t *testing.T) {
	v := url.Values{}
	SetPage(v, 0, 0)
	require.Empty(t, v)

	SetPage(v, 2, 500)
	require.Equal(t, "2", v.Get("page"))
	require.Equal(t, "100", v.Get("per_page"))
}

func TestClean(t *testing.T) {
	v := Clean(map[string]string{
		"status":           "pending",
		"transaction_type": "all",
		"search":           "",
	})
	require.Equal(t, url.Values{"status": {"pending"}}, v)
}

func TestMetaPaging(t *testing.T) {
	m := Meta{CurrentPage: 1, LastPage: 3}
	require.True(t, m.HasNext())
	require.False(t, m.HasPrev())

	m = Meta{CurrentPage: 3, LastPage: 3}
	require.False(t, m.HasNext())
	require.True(t, m.HasPrev())
}
