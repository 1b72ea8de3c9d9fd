package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender_Variables(t *testing.T) {
	// Test plan:
	// - Plain variables substitute from the context
	// - Missing keys produce empty output, never an error

	out := Render("Hello {{name}}, you have {{count}} items.", Context{
		"name":  "World",
		"count": 5,
	})
	assert.Equal(t, "Hello World, you have 5 items.", out)

	out = Render("Hello {{missing}}!", Context{})
	assert.Equal(t, "Hello !", out)
}

func TestRender_DottedPaths(t *testing.T) {
	ctx := Context{
		"user": map[string]any{
			"name":    "Ada",
			"address": map[string]any{"city": "London"},
		},
	}
	assert.Equal(t, "Ada lives in London", Render("{{user.name}} lives in {{user.address.city}}", ctx))

	// Test: a path that dead-ends mid-way yields no output
	assert.Equal(t, "", Render("{{user.name.first}}", ctx))
	assert.Equal(t, "", Render("{{nope.deep.path}}", ctx))
}

func TestRender_Sections_Boolean(t *testing.T) {
	template := "{{#show}}visible{{/show}}"
	assert.Equal(t, "visible", Render(template, Context{"show": true}))
	assert.Equal(t, "", Render(template, Context{"show": false}))
	assert.Equal(t, "", Render(template, Context{}))
}

func TestRender_Sections_Truthiness(t *testing.T) {
	// Test plan:
	// - string falsy only when empty; integer falsy only when zero
	// - sequences falsy only when empty, whatever their element type
	// - mappings and floating-point values are always truthy

	template := "{{#v}}on{{/v}}"
	assert.Equal(t, "on", Render(template, Context{"v": "x"}))
	assert.Equal(t, "", Render(template, Context{"v": ""}))
	assert.Equal(t, "on", Render(template, Context{"v": 1}))
	assert.Equal(t, "", Render(template, Context{"v": 0}))
	assert.Equal(t, "", Render(template, Context{"v": []any{}}))
	assert.Equal(t, "", Render(template, Context{"v": []string{}}))
	assert.Equal(t, "on", Render(template, Context{"v": []string{"a"}}))
	assert.Equal(t, "on", Render(template, Context{"v": map[string]any{}}))
	assert.Equal(t, "on", Render(template, Context{"v": 0.0}))
	assert.Equal(t, "on", Render(template, Context{"v": 3.14}))
}

func TestRender_Sections_Loop(t *testing.T) {
	// Test plan:
	// - A sequence of mappings repeats the body once per element
	// - Element keys override the outer context; outer keys stay visible

	ctx := Context{
		"prefix": "- ",
		"items": []map[string]any{
			{"name": "alpha"},
			{"name": "beta"},
			{"name": "gamma"},
		},
	}
	out := Render("{{#items}}{{prefix}}{{name}}\n{{/items}}", ctx)
	assert.Equal(t, "- alpha\n- beta\n- gamma\n", out)
}

func TestRender_Sections_LoopOverridesOuter(t *testing.T) {
	ctx := Context{
		"name":  "outer",
		"items": []any{map[string]any{"name": "inner"}},
	}
	assert.Equal(t, "inner", Render("{{#items}}{{name}}{{/items}}", ctx))
	assert.Equal(t, "outer", Render("{{name}}", ctx))
}

func TestRender_Sections_TruthyNonSequence(t *testing.T) {
	// Test: a truthy non-sequence renders the body once against the
	// unmodified outer context
	ctx := Context{"user": map[string]any{"name": "Ada"}, "greeting": "hi"}
	assert.Equal(t, "hi", Render("{{#user}}{{greeting}}{{/user}}", ctx))
}

func TestRender_InvertedSections(t *testing.T) {
	template := "{{^empty}}has content{{/empty}}"
	assert.Equal(t, "has content", Render(template, Context{"empty": false}))
	assert.Equal(t, "has content", Render(template, Context{}))
	assert.Equal(t, "", Render(template, Context{"empty": true}))

	// Test: empty sequence triggers the inverted branch
	assert.Equal(t, "none", Render("{{^items}}none{{/items}}", Context{"items": []any{}}))
}

func TestRender_NestedSameNameSections(t *testing.T) {
	// Test: the per-name depth counter keeps an inner {{#x}} from closing
	// the outer {{#x}} prematurely
	ctx := Context{"x": true}
	out := Render("a{{#x}}b{{#x}}c{{/x}}d{{/x}}e", ctx)
	assert.Equal(t, "abcde", out)

	out = Render("a{{#x}}b{{#x}}c{{/x}}d{{/x}}e", Context{"x": false})
	assert.Equal(t, "ae", out)
}

func TestRender_NestedSections(t *testing.T) {
	ctx := Context{
		"types": []map[string]any{
			{
				"name": "User",
				"fields": []map[string]any{
					{"field": "id"},
					{"field": "name"},
				},
			},
			{
				"name":   "Empty",
				"fields": []map[string]any{},
			},
		},
	}
	out := Render("{{#types}}{{name}}:{{#fields}} {{field}}{{/fields}};{{/types}}", ctx)
	assert.Equal(t, "User: id name;Empty:;", out)
}

func TestRender_Comments(t *testing.T) {
	out := Render("before{{! this is ignored }}after", Context{})
	assert.Equal(t, "beforeafter", out)
}

func TestRender_UnterminatedDelimiter(t *testing.T) {
	// Test: a "{{" with no closing "}}" passes through as literal text
	out := Render("value: {{name", Context{"name": "x"})
	assert.Equal(t, "value: {{name", out)

	out = Render("{{done}} then {{broken", Context{"done": "ok"})
	assert.Equal(t, "ok then {{broken", out)
}

func TestRender_UnmatchedClose(t *testing.T) {
	// A stray close tag is dropped, not an error
	assert.Equal(t, "ab", Render("a{{/ghost}}b", Context{}))
}

func TestRender_MissingSectionClose(t *testing.T) {
	// An unclosed section consumes the rest of the template
	assert.Equal(t, "abody", Render("a{{#x}}body", Context{"x": true}))
	assert.Equal(t, "a", Render("a{{#x}}body", Context{"x": false}))
}

func TestRender_WhitespaceInTags(t *testing.T) {
	assert.Equal(t, "hi", Render("{{ name }}", Context{"name": "hi"}))
	assert.Equal(t, "on", Render("{{# show }}on{{/ show }}", Context{"show": true}))
}

func TestRender_Idempotence(t *testing.T) {
	// Test: rendering twice yields byte-identical output
	template := "{{#items}}{{name}},{{/items}}{{^items}}empty{{/items}}"
	ctx := Context{"items": []map[string]any{{"name": "a"}, {"name": "b"}}}

	first := Render(template, ctx)
	second := Render(template, ctx)
	assert.Equal(t, first, second)
	assert.Equal(t, "a,b,", first)
}

func TestRender_EmptyInputs(t *testing.T) {
	assert.Equal(t, "", Render("", Context{}))
	assert.Equal(t, "plain text", Render("plain text", nil))
	assert.Equal(t, "", Render("{{x}}", nil))
}
