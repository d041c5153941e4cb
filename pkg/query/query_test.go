package query

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xmlsmith/xmlsmith/pkg/document"
)

const fixture = `<config>
    <servers>
        <server>
            <host>alpha.example.com</host>
            <port>8080</port>
        </server>
        <server>
            <host>beta.example.com</host>
            <port>9090</port>
        </server>
    </servers>
    <timeout>abc</timeout>
    <empty/>
</config>`

func parseFixture(t *testing.T) *etree.Element {
	t.Helper()
	doc, err := document.NewLoader().Parse([]byte(fixture), nil)
	require.NoError(t, err)
	return &doc.Element
}

func TestAll(t *testing.T) {
	root := parseFixture(t)

	hosts, err := All(root, "//host")
	require.NoError(t, err)
	require.Len(t, hosts, 2)
	assert.Equal(t, "alpha.example.com", hosts[0].Text())
	assert.Equal(t, "beta.example.com", hosts[1].Text())
}

func TestAllNoMatch(t *testing.T) {
	root := parseFixture(t)

	none, err := All(root, "//missing")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestAllBadExpression(t *testing.T) {
	root := parseFixture(t)

	_, err := All(root, "//host[")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPath)
}

func TestFirst(t *testing.T) {
	root := parseFixture(t)

	el, found, err := First(root, "/config/servers/server/host")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "alpha.example.com", el.Text())

	el, found, err = First(root, "/config/missing")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, el)
}

func TestText(t *testing.T) {
	root := parseFixture(t)

	s, err := Text(root, "//server[2]/host")
	require.NoError(t, err)
	assert.Equal(t, "beta.example.com", s)
}

func TestTextNoMatch(t *testing.T) {
	root := parseFixture(t)

	_, err := Text(root, "//missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestTextEmptyElement(t *testing.T) {
	root := parseFixture(t)

	// The path matches, but the element has nothing to read. This must be
	// a checkable error, not a crash or a silent empty string.
	_, err := Text(root, "//empty")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestInt(t *testing.T) {
	root := parseFixture(t)

	n, err := Int(root, "//server[1]/port")
	require.NoError(t, err)
	assert.Equal(t, 8080, n)
}

func TestIntNotNumeric(t *testing.T) {
	root := parseFixture(t)

	_, err := Int(root, "//timeout")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotInt)
}

func TestIntNoMatch(t *testing.T) {
	root := parseFixture(t)

	_, err := Int(root, "//missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestQueriesRelativeToSubtree(t *testing.T) {
	root := parseFixture(t)

	servers, found, err := First(root, "//servers")
	require.NoError(t, err)
	require.True(t, found)

	ports, err := All(servers, ".//port")
	require.NoError(t, err)
	assert.Len(t, ports, 2)
}
