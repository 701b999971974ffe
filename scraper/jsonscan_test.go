// backend/scraper/jsonscan_test.go
package scraper

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractJSONArrayByKey(t *testing.T) {
	cases := []struct {
		name string
		html string
		key  string
		want string
	}{
		{
			name: "simple array",
			html: `<script>var x = {"mapPoints":[1,2,3],"other":true};</script>`,
			key:  "mapPoints",
			want: `[1,2,3]`,
		},
		{
			name: "nested arrays",
			html: `{"k":[[1,2],[3,[4]]],"tail":[9]}`,
			key:  "k",
			want: `[[1,2],[3,[4]]]`,
		},
		{
			name: "brackets inside strings",
			html: `{"k":["a]b","c[d"],"tail":1}`,
			key:  "k",
			want: `["a]b","c[d"]`,
		},
		{
			name: "escaped quotes inside strings",
			html: `{"k":["a\"]b"],"tail":1}`,
			key:  "k",
			want: `["a\"]b"]`,
		},
		{
			name: "backslash before closing quote",
			html: `{"k":["c:\\"],"tail":1}`,
			key:  "k",
			want: `["c:\\"]`,
		},
		{
			name: "key absent",
			html: `{"other":[1]}`,
			key:  "k",
			want: "",
		},
		{
			name: "unterminated array",
			html: `{"k":[1,2`,
			key:  "k",
			want: "",
		},
		{
			name: "key present but not an array",
			html: `{"k":{"a":1}}`,
			key:  "k",
			want: "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ExtractJSONArrayByKey(tc.html, tc.key)
			require.Equal(t, tc.want, got)
			if got != "" {
				var decoded []interface{}
				require.NoError(t, json.Unmarshal([]byte(got), &decoded))
			}
		})
	}
}
