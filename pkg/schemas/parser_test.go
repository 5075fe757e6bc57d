package schemas

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func modelIDs(s *Schema) []string {
	var ids []string
	for _, m := range s.Models() {
		ids = append(ids, m.ID())
	}
	return ids
}

func TestParse_PreservesModelOrder(t *testing.T) {
	sch, err := Parse([]byte(`{"models": {"c": {}, "a": {"x": "int"}, "b": {}}}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a", "b"}, modelIDs(sch))
}

func TestParse_PreservesAttributeOrder(t *testing.T) {
	sch, err := Parse([]byte(`{"models": {"blog_post": {"title": "string", "int_views": "int?", "published_at": "date", "tags": "[string]"}}}`))
	require.NoError(t, err)
	require.Len(t, sch.Models(), 1)

	var got []string
	for _, na := range sch.Models()[0].Attributes() {
		got = append(got, na.Name+"="+na.Attribute.String())
	}
	assert.Equal(t, []string{"title=string", "int_views=int?", "published_at=date", "tags=[string]"}, got)
}

func TestParse_EscapedStrings(t *testing.T) {
	sch, err := Parse([]byte(`{"models": {"quotes": {"name": "str\"ing?"}}}`))
	require.NoError(t, err)

	m := sch.Models()[0]
	a, ok := m.Attribute("name")
	require.True(t, ok)
	assert.Equal(t, `str"ing?`, a.String())
	assert.True(t, a.Optional())
}

func TestParse_EmptyModels(t *testing.T) {
	sch, err := Parse([]byte(`{"models": {}}`))
	require.NoError(t, err)
	assert.Empty(t, sch.Models())
	assert.Equal(t, "", sch.String())
}

func TestParse_ExtraTopLevelKeysIgnored(t *testing.T) {
	sch, err := Parse([]byte(`{"version": 2, "models": {"users": {"name": "string"}}}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"users"}, modelIDs(sch))
}

func TestParse_InvalidJSON(t *testing.T) {
	for _, in := range []string{``, `{`, `{"models": {"a": }}`, `not json`, `{"models": {}} trailing`} {
		_, err := Parse([]byte(in))
		require.Error(t, err, in)

		var perr *ParseError
		assert.True(t, errors.As(err, &perr), "input %q: got %T", in, err)
	}
}

func TestParse_ShapeErrors(t *testing.T) {
	cases := map[string]string{
		"array root":        `[1, 2]`,
		"string root":       `"models"`,
		"missing models":    `{"modles": {}}`,
		"models is array":   `{"models": []}`,
		"models is null":    `{"models": null}`,
		"models is string":  `{"models": "users"}`,
		"model is string":   `{"models": {"users": "string"}}`,
		"model is an array": `{"models": {"users": ["string"]}}`,
	}

	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(in))
			require.Error(t, err)

			var serr *SchemaShapeError
			require.True(t, errors.As(err, &serr), "got %T: %v", err, err)
			var perr *ParseError
			assert.False(t, errors.As(err, &perr))
		})
	}
}

func TestParse_ShapeErrorNamesModel(t *testing.T) {
	_, err := Parse([]byte(`{"models": {"users": {"name": "string"}, "posts": 3}}`))

	var serr *SchemaShapeError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, "posts", serr.Model)
	assert.Contains(t, err.Error(), `"posts"`)
}

func TestSchema_CheckOutputNames(t *testing.T) {
	sch, err := Parse([]byte(`{"models": {"users": {}, "blog_posts": {}, "post": {}}}`))
	require.NoError(t, err)
	assert.NoError(t, sch.CheckOutputNames())

	sch, err = Parse([]byte(`{"models": {"blog_posts": {}, "users": {}, "blog_post": {}, "BlogPost": {}}}`))
	require.NoError(t, err)

	err = sch.CheckOutputNames()
	var derr *DuplicateModelNameError
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, "BlogPost", derr.OutputName)
	assert.Equal(t, []string{"blog_posts", "blog_post", "BlogPost"}, derr.Models)
}

func TestSchema_CheckOutputNames_IgnoresCase(t *testing.T) {
	sch, err := Parse([]byte(`{"models": {"ID": {}, "users": {}, "ids": {}}}`))
	require.NoError(t, err)

	err = sch.CheckOutputNames()
	var derr *DuplicateModelNameError
	require.True(t, errors.As(err, &derr), "got %v", err)
	assert.Equal(t, "ID", derr.OutputName)
	assert.Equal(t, []string{"ID", "ids"}, derr.Models)
}

func TestSchema_CheckOutputNames_EmptyName(t *testing.T) {
	for _, id := range []string{"", "___", "app."} {
		t.Run(id, func(t *testing.T) {
			sch, err := Parse([]byte(`{"models": {"users": {}, "` + id + `": {}}}`))
			require.NoError(t, err)

			err = sch.CheckOutputNames()
			var serr *SchemaShapeError
			require.True(t, errors.As(err, &serr), "got %v", err)
			assert.Equal(t, id, serr.Model)
		})
	}
}

func TestSchema_String(t *testing.T) {
	sch, err := Parse([]byte(`{"models": {"users": {"name": "string"}, "posts": {"title": "string", "tags": "[string]"}}}`))
	require.NoError(t, err)

	want := strings.Join([]string{
		"users:\n\t name: string",
		"posts:\n\t title: string\n\t tags: [string]",
	}, "\n\n")
	assert.Equal(t, want, sch.String())
}

func TestFromJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"models": {"users": {"name": "string"}}}`), 0o644))

	sch, err := FromJSONFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"users"}, modelIDs(sch))

	_, err = FromJSONFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestFromJSON(t *testing.T) {
	sch, err := FromJSON(strings.NewReader(`{"models": {"a": {}, "b": {}}}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, modelIDs(sch))
}
