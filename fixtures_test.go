package ecmalex

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v2"
	"gotest.tools/v3/assert"
)

type lexerFixture struct {
	Pattern string
	Flags   string
	U180E   bool `yaml:"u180e"`
	// Tokens holds the canonical renderings of the expected token
	// sequence; Error the expected syntax error message instead.
	Tokens []string
	Error  string
	Pos    *int
}

func TestLexerFixtures(t *testing.T) {
	content, err := os.ReadFile(filepath.Join("testdata", "lexer.yaml"))
	assert.NilError(t, err)
	var fixtures []lexerFixture
	assert.NilError(t, yaml.Unmarshal(content, &fixtures))

	for _, fixture := range fixtures {
		fixture := fixture
		t.Run("/"+fixture.Pattern+"/"+fixture.Flags, func(t *testing.T) {
			flags, err := ParseFlags(fixture.Flags)
			assert.NilError(t, err)
			lexer := NewLexer(fixture.Pattern, flags, Options{U180EWhitespace: fixture.U180E})
			var rendered []string
			for lexer.HasNext() {
				token, err := lexer.Next()
				if err != nil {
					assert.Assert(t, fixture.Error != "", "unexpected error: %v", err)
					syntaxErr := err.(*SyntaxError)
					assert.Equal(t, syntaxErr.Message, fixture.Error)
					if fixture.Pos != nil {
						assert.Equal(t, syntaxErr.Pos, *fixture.Pos)
					}
					return
				}
				rendered = append(rendered, token.String())
			}
			assert.Assert(t, fixture.Error == "", "expected error %q, lexed cleanly", fixture.Error)
			assert.DeepEqual(t, rendered, fixture.Tokens)
		})
	}
}
