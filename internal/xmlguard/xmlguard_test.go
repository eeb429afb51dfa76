package xmlguard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckRejectsDoctype(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{
			"external DTD",
			`<?xml version="1.0"?><!DOCTYPE foo SYSTEM "http://evil.example/foo.dtd"><foo/>`,
		},
		{
			"internal entity subset",
			`<!DOCTYPE foo [<!ENTITY xxe SYSTEM "file:///etc/passwd">]><foo>&xxe;</foo>`,
		},
		{
			"lower case doctype",
			`<!doctype foo><foo/>`,
		},
		{
			"doctype after declaration and comment",
			"<?xml version=\"1.0\"?>\n<!-- a comment -->\n<!DOCTYPE foo><foo/>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check([]byte(tt.src))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrDoctype)
		})
	}
}

func TestCheckAllowsPlainDocuments(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"no prolog", `<foo><bar/></foo>`},
		{"with declaration", `<?xml version="1.0" encoding="utf-8"?><foo/>`},
		{"with comment", `<!-- note --><foo/>`},
		{"doctype-like text content", `<foo>&lt;!DOCTYPE foo&gt;</foo>`},
		{"empty input", ``},
		{"truncated document", `<foo><bar`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, Check([]byte(tt.src)))
		})
	}
}
