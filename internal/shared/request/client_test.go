package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveClientType(t *testing.T) {
	cases := []struct {
		name   string
		header string
		ua     string
		want   ClientType
	}{
		{"explicit web header", "web", "", ClientWeb},
		{"explicit mobile header wins over browser ua", "MOBILE", "Mozilla/5.0", ClientMobile},
		{"browser user agent", "", "Mozilla/5.0 (X11; Linux x86_64)", ClientWeb},
		{"android http client", "", "okhttp/4.12.0", ClientMobile},
		{"curl", "", "curl/8.5.0", ClientAPI},
		{"no hints", "", "", ClientAPI},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ResolveClientType(tc.header, tc.ua)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.want == ClientWeb, IsWebClient(got))
		})
	}
}
